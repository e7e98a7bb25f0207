package scoring

import (
	"testing"
	"time"
)

var searchNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestSearchMatch_BoundedAndFreshnessHeavy(t *testing.T) {
	post := basePosting()
	post.PostedAt = searchNow // posted today: full 30-point recency
	p := Profile{
		Skills:     []string{"React", "Node.js", "JavaScript", "Git"},
		Interests:  []string{"web", "react", "node"},
		University: "State University",
	}
	post.Location = "Remote"

	got := SearchMatch(p, post, searchNow)
	// 40 (skills) + 20 (interests capped) + 10 (remote) + 30 (fresh) = 100.
	if got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestSearchMatch_ClampedAt100(t *testing.T) {
	post := basePosting()
	post.PostedAt = searchNow.Add(12 * time.Hour) // future post still clamps
	p := Profile{Skills: post.Skills, Interests: []string{"react", "node"}, University: "MIT"}
	post.Location = "Remote"
	if got := SearchMatch(p, post, searchNow); got > 100 {
		t.Fatalf("score must be clamped to 100, got %d", got)
	}
}

func TestSearchMatch_EmptyPostingSkills(t *testing.T) {
	post := basePosting()
	post.Skills = nil
	post.PostedAt = searchNow.Add(-40 * 24 * time.Hour)
	if got := SearchMatch(Profile{Skills: []string{"Go"}}, post, searchNow); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestSearchMatch_NoRemoteBonusWithoutUniversity(t *testing.T) {
	post := basePosting()
	post.Location = "Remote"
	post.PostedAt = searchNow.Add(-40 * 24 * time.Hour)
	with := SearchMatch(Profile{University: "State University"}, post, searchNow)
	without := SearchMatch(Profile{}, post, searchNow)
	if with-without != 10 {
		t.Fatalf("expected 10-point remote bonus, got %d vs %d", with, without)
	}
}

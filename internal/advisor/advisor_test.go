package advisor

import (
	"strings"
	"testing"
)

func TestReplyTopics(t *testing.T) {
	cases := []struct {
		name     string
		message  string
		fragment string
	}{
		{"resume", "How do I improve my resume?", "Tailor your resume"},
		{"cv alias", "any tips for my CV", "Tailor your resume"},
		{"interview", "I have an INTERVIEW tomorrow", "Research the company"},
		{"skills", "what skill should I learn", "Continuous learning"},
		{"career", "not sure about my career path", "Career planning is a journey"},
		{"fallback", "hello there", "thoughtful question"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Reply(tc.message)
			if !strings.Contains(got, tc.fragment) {
				t.Fatalf("reply %q does not contain %q", got, tc.fragment)
			}
		})
	}
}

func TestReplyFirstTopicWins(t *testing.T) {
	// "resume" outranks "interview" when both appear.
	got := Reply("resume review before my interview")
	if !strings.Contains(got, "Tailor your resume") {
		t.Fatalf("expected resume reply, got %q", got)
	}
}

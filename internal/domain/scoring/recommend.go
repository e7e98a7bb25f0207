package scoring

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const day = 24 * time.Hour

type RecommendationResult struct {
	Score             int
	Reasons           []string
	SkillMatches      []string
	DaysUntilDeadline int
}

// Recommendation computes the weighted recommendation score for one
// posting. Terms accumulate in floating point in a fixed order (skill,
// interest, major, deadline, recency) and are rounded once at the end.
func Recommendation(p Profile, post Posting, now time.Time) RecommendationResult {
	var score float64
	reasons := make([]string, 0, 5)

	// Skill matching (40% weight). The unrounded percentage feeds the
	// composite; SkillMatch's rounded percentage is display-only.
	matched := matchSkills(p.Skills, post.Skills)
	if len(post.Skills) > 0 {
		score += float64(len(matched)) / float64(len(post.Skills)) * 100 * 0.4
	}
	if len(matched) > 0 {
		top := matched
		if len(top) > 3 {
			top = top[:3]
		}
		reasons = append(reasons, fmt.Sprintf("%d matching skills: %s", len(matched), strings.Join(top, ", ")))
	}

	// Interest matching (20% weight), capped at one full term.
	interests := MatchInterests(p.Interests, post.Title, post.Description, post.Industry)
	score += math.Min(float64(len(interests))*20, 20) * 0.2
	if len(interests) > 0 {
		top := interests
		if len(top) > 2 {
			top = top[:2]
		}
		reasons = append(reasons, "Matches your interests: "+strings.Join(top, ", "))
	}

	// Major relevance (20% weight).
	if p.Major != "" {
		title := strings.ToLower(post.Title)
		desc := strings.ToLower(post.Description)
		for _, kw := range strings.Fields(strings.ToLower(p.Major)) {
			if strings.Contains(title, kw) || strings.Contains(desc, kw) {
				score += 20 * 0.2
				reasons = append(reasons, fmt.Sprintf("Relevant to your %s major", p.Major))
				break
			}
		}
	}

	// Application deadline urgency (10% weight).
	daysUntilDeadline := daysBetween(now, post.ApplicationDeadline)
	if daysUntilDeadline > 0 && daysUntilDeadline <= 30 {
		score += float64(30-daysUntilDeadline) * 0.1
		if daysUntilDeadline <= 7 {
			reasons = append(reasons, "Application deadline approaching!")
		}
	}

	// Recency bonus (10% weight).
	daysSincePosted := daysBetween(post.PostedAt, now)
	if daysSincePosted >= 0 && daysSincePosted <= 7 {
		score += float64(7-daysSincePosted) * 0.1
		reasons = append(reasons, "Recently posted")
	}

	return RecommendationResult{
		Score:             int(math.Round(score)),
		Reasons:           reasons,
		SkillMatches:      matched,
		DaysUntilDeadline: daysUntilDeadline,
	}
}

// daysBetween is the whole number of days from a to b, floored, so a
// deadline 12 hours away counts as 0 days out.
func daysBetween(a, b time.Time) int {
	return int(math.Floor(float64(b.Sub(a)) / float64(day)))
}

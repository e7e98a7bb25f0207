package scoring

import (
	"math"
	"strings"
	"time"
)

// SearchMatch ranks a posting for full-text search results. It is a
// deliberately different composite from Recommendation: search weighs
// recency much more heavily and has no deadline term, so the two must
// stay separate.
func SearchMatch(p Profile, post Posting, now time.Time) int {
	var score float64

	// Skill matching on a 40-point scale.
	matched := matchSkills(p.Skills, post.Skills)
	if len(post.Skills) > 0 {
		score += float64(len(matched)) / float64(len(post.Skills)) * 40
	}

	// Interest matching against title and description only.
	interests := MatchInterests(p.Interests, post.Title, post.Description)
	score += math.Min(float64(len(interests))*10, 20)

	// Remote-friendly bonus for enrolled students.
	if p.University != "" && strings.Contains(post.Location, "Remote") {
		score += 10
	}

	// Recency bonus.
	daysSincePosted := daysBetween(post.PostedAt, now)
	score += math.Max(0, float64(30-daysSincePosted))

	return clampInt(int(math.Round(score)), 0, 100)
}

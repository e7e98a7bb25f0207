package scoring

import (
	"math"
	"strings"
)

// SkillMatch filters postingSkills down to those the user has, preserving
// posting order, and returns the rounded match percentage. An empty
// posting skill list yields 0, not a division by zero.
func SkillMatch(userSkills, postingSkills []string) ([]string, int) {
	matched := matchSkills(userSkills, postingSkills)
	if len(postingSkills) == 0 {
		return matched, 0
	}
	pct := int(math.Round(float64(len(matched)) / float64(len(postingSkills)) * 100))
	return matched, pct
}

func matchSkills(userSkills, postingSkills []string) []string {
	have := make(map[string]struct{}, len(userSkills))
	for _, s := range userSkills {
		have[s] = struct{}{}
	}
	matched := make([]string, 0, len(postingSkills))
	for _, s := range postingSkills {
		if _, ok := have[s]; ok {
			matched = append(matched, s)
		}
	}
	return matched
}

// MatchInterests returns the interests that appear, case-insensitively, as
// a substring of at least one of the supplied text fields.
func MatchInterests(interests []string, fields ...string) []string {
	lowered := make([]string, 0, len(fields))
	for _, f := range fields {
		lowered = append(lowered, strings.ToLower(f))
	}

	matched := make([]string, 0, len(interests))
	for _, interest := range interests {
		needle := strings.ToLower(interest)
		for _, f := range lowered {
			if strings.Contains(f, needle) {
				matched = append(matched, interest)
				break
			}
		}
	}
	return matched
}

type GapResult struct {
	Matching        []string
	Missing         []string
	MatchPercentage int
}

// SkillGap splits requiredSkills into matching and missing against the
// user's skills, keeping requiredSkills order. Callers must reject an
// empty requiredSkills list before calling.
func SkillGap(userSkills, requiredSkills []string) GapResult {
	have := make(map[string]struct{}, len(userSkills))
	for _, s := range userSkills {
		have[s] = struct{}{}
	}

	matching := make([]string, 0, len(requiredSkills))
	missing := make([]string, 0)
	for _, s := range requiredSkills {
		if _, ok := have[s]; ok {
			matching = append(matching, s)
		} else {
			missing = append(missing, s)
		}
	}

	pct := int(math.Round(float64(len(matching)) / float64(len(requiredSkills)) * 100))
	return GapResult{Matching: matching, Missing: missing, MatchPercentage: pct}
}

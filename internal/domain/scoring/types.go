// Package scoring holds the pure match/ranking functions. No I/O, no
// clocks: callers thread `now` explicitly so results are reproducible.
package scoring

import "time"

// Profile is the slice of a user the scoring functions read.
type Profile struct {
	Skills     []string
	Interests  []string
	Major      string
	University string
	FirstName  string
	LastName   string
	Email      string
	Bio        string
}

// Posting is the slice of an internship the scoring functions read.
// Skills keep posting order; matched-skill lists preserve it.
type Posting struct {
	Title               string
	Company             string
	Description         string
	Industry            string
	Location            string
	Skills              []string
	ApplicationDeadline time.Time
	PostedAt            time.Time
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

package internship

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeRemote = "Remote"
	TypeOnSite = "On-site"
	TypeHybrid = "Hybrid"
)

// Internship is immutable after seeding; skill order matters for the
// top-N matched-skill truncation in recommendation reasons.
type Internship struct {
	ID                  uuid.UUID
	Title               string
	Company             string
	Location            string
	Type                string
	Duration            string
	Description         string
	Requirements        []string
	Skills              []string
	Salary              string
	ApplicationDeadline time.Time
	PostedAt            time.Time
	Industry            string
}

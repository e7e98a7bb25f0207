package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

type searchCacheKeyInput struct {
	UserID   string `json:"user_id"`
	Query    string `json:"query"`
	Location string `json:"location"`
	Type     string `json:"type"`
	Industry string `json:"industry"`
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
}

func normalizeSearchValue(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}

// SearchCacheKey hashes the normalized parameters so equivalent
// queries share one cache entry. The user id participates because
// results carry per-user match scores.
func SearchCacheKey(userID string, params SearchParams) string {
	in := searchCacheKeyInput{
		UserID:   userID,
		Query:    normalizeSearchValue(params.Query),
		Location: normalizeSearchValue(params.Location),
		Type:     normalizeSearchValue(params.Type),
		Industry: normalizeSearchValue(params.Industry),
		Page:     params.Page,
		Limit:    params.Limit,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "internships:search:" + hex.EncodeToString(sum[:])
}

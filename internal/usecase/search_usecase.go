package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"internhub/internal/domain/internship"
	"internhub/internal/domain/scoring"
	"internhub/internal/repository"
)

const (
	searchDefaultPage  = 1
	searchDefaultLimit = 10
	searchMaxLimit     = 50

	searchFillLockTTL = 5 * time.Second
)

type SearchParams struct {
	Query    string
	Location string
	Type     string
	Industry string
	Page     int
	Limit    int
}

type SearchResultItem struct {
	Internship internship.Internship
	MatchScore int
}

type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

type SearchResult struct {
	Items      []SearchResultItem
	Pagination Pagination
}

type SearchUsecase interface {
	Search(ctx context.Context, userID uuid.UUID, params SearchParams) (SearchResult, error)
}

type Search struct {
	users       repository.UserRepository
	internships repository.InternshipRepository
	cache       SearchCache
	logger      *log.Logger

	now func() time.Time
}

func NewSearchUsecase(users repository.UserRepository, internships repository.InternshipRepository, cache SearchCache, logger *log.Logger) *Search {
	return &Search{users: users, internships: internships, cache: cache, logger: logger, now: time.Now}
}

// Search filters the catalog by query and filter fields, ranks the
// matches for the user when their profile resolves, and paginates
// after sorting. Out-of-range page/limit values are clamped rather
// than rejected.
func (u *Search) Search(ctx context.Context, userID uuid.UUID, params SearchParams) (SearchResult, error) {
	params = normalizeSearchParams(params)

	key := SearchCacheKey(userID.String(), params)
	if u.cache != nil {
		var cached SearchResult
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
		// Single-flight: if another request is already filling this
		// key, give the cache one more look before recomputing.
		if acquired, err := u.cache.SetIfNotExists(ctx, key+":fill", "1", searchFillLockTTL); err == nil && !acquired {
			if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
				return cached, nil
			}
		}
	}

	all, err := u.internships.ListAll(ctx)
	if err != nil {
		return SearchResult{}, ErrInternal
	}

	filtered := make([]internship.Internship, 0, len(all))
	for _, in := range all {
		if matchesSearch(in, params) {
			filtered = append(filtered, in)
		}
	}

	items := make([]SearchResultItem, 0, len(filtered))
	usr, err := u.users.GetByID(ctx, userID)
	if err == nil {
		now := u.now()
		profile := profileOf(usr)
		for _, in := range filtered {
			items = append(items, SearchResultItem{
				Internship: in,
				MatchScore: scoring.SearchMatch(profile, postingOf(in), now),
			})
		}
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].MatchScore > items[j].MatchScore
		})
	} else if errors.Is(err, repository.ErrNotFound) {
		// Anonymous-profile path: results stay in catalog order.
		for _, in := range filtered {
			items = append(items, SearchResultItem{Internship: in})
		}
	} else {
		return SearchResult{}, ErrInternal
	}

	total := len(items)
	start := (params.Page - 1) * params.Limit
	end := start + params.Limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	result := SearchResult{
		Items: items[start:end],
		Pagination: Pagination{
			Page:       params.Page,
			Limit:      params.Limit,
			Total:      total,
			TotalPages: (total + params.Limit - 1) / params.Limit,
			HasNext:    params.Page*params.Limit < total,
			HasPrev:    params.Page > 1,
		},
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, result, 0); err != nil && u.logger != nil {
			u.logger.Printf("[Search] cache write failed key=%s err=%v", key, err)
		}
	}

	return result, nil
}

func normalizeSearchParams(p SearchParams) SearchParams {
	if p.Page < 1 {
		p.Page = searchDefaultPage
	}
	if p.Limit < 1 {
		p.Limit = searchDefaultLimit
	}
	if p.Limit > searchMaxLimit {
		p.Limit = searchMaxLimit
	}
	return p
}

func matchesSearch(in internship.Internship, params SearchParams) bool {
	query := strings.ToLower(params.Query)
	matchesQuery := query == "" ||
		strings.Contains(strings.ToLower(in.Title), query) ||
		strings.Contains(strings.ToLower(in.Company), query) ||
		anySkillContains(in.Skills, query)
	if !matchesQuery {
		return false
	}

	if params.Location != "" && !strings.Contains(strings.ToLower(in.Location), strings.ToLower(params.Location)) {
		return false
	}
	if params.Type != "" && in.Type != params.Type {
		return false
	}
	if params.Industry != "" && in.Industry != params.Industry {
		return false
	}
	return true
}

func anySkillContains(skills []string, query string) bool {
	for _, s := range skills {
		if strings.Contains(strings.ToLower(s), query) {
			return true
		}
	}
	return false
}

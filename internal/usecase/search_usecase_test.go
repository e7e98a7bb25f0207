package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"internhub/internal/repository/memory"
)

func TestSearchQueryAndFilters(t *testing.T) {
	users := memory.NewUserRepository()
	internships := memory.NewInternshipRepository()

	u := seedUser(t, users, []string{"React"}, nil)
	seedInternship(t, internships, "Frontend Intern", []string{"React"}, 1, 30)
	seedInternship(t, internships, "Data Intern", []string{"Python"}, 1, 30)

	uc := NewSearchUsecase(users, internships, nil, nil)
	uc.now = func() time.Time { return fixedNow }

	res, err := uc.Search(context.Background(), u.ID, SearchParams{Query: "frontend"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(res.Items) != 1 || res.Items[0].Internship.Title != "Frontend Intern" {
		t.Fatalf("query filter failed: %+v", res.Items)
	}

	// Skill names participate in the query match.
	res, err = uc.Search(context.Background(), u.ID, SearchParams{Query: "python"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(res.Items) != 1 || res.Items[0].Internship.Title != "Data Intern" {
		t.Fatalf("skill query failed: %+v", res.Items)
	}

	res, err = uc.Search(context.Background(), u.ID, SearchParams{Industry: "Finance"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(res.Items) != 0 {
		t.Fatalf("industry filter failed: %+v", res.Items)
	}
}

func TestSearchPagination(t *testing.T) {
	users := memory.NewUserRepository()
	internships := memory.NewInternshipRepository()

	u := seedUser(t, users, []string{"Go"}, nil)
	for i := 0; i < 25; i++ {
		seedInternship(t, internships, "Backend Intern", []string{"Go"}, i, 30)
	}

	uc := NewSearchUsecase(users, internships, nil, nil)
	uc.now = func() time.Time { return fixedNow }

	res, err := uc.Search(context.Background(), u.ID, SearchParams{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	p := res.Pagination
	if p.Total != 25 || p.TotalPages != 3 {
		t.Fatalf("totals wrong: %+v", p)
	}
	if !p.HasNext || !p.HasPrev {
		t.Fatalf("page 2 of 3 must have next and prev: %+v", p)
	}
	if len(res.Items) != 10 {
		t.Fatalf("expected 10 items on page 2, got %d", len(res.Items))
	}

	res, _ = uc.Search(context.Background(), u.ID, SearchParams{Page: 3, Limit: 10})
	if res.Pagination.HasNext || len(res.Items) != 5 {
		t.Fatalf("last page wrong: %d items, hasNext=%v", len(res.Items), res.Pagination.HasNext)
	}
}

func TestSearchClampsPageAndLimit(t *testing.T) {
	users := memory.NewUserRepository()
	internships := memory.NewInternshipRepository()
	u := seedUser(t, users, nil, nil)

	uc := NewSearchUsecase(users, internships, nil, nil)
	uc.now = func() time.Time { return fixedNow }

	res, err := uc.Search(context.Background(), u.ID, SearchParams{Page: -3, Limit: 9999})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if res.Pagination.Page != 1 || res.Pagination.Limit != searchMaxLimit {
		t.Fatalf("clamping failed: %+v", res.Pagination)
	}
}

func TestSearchResultsSortedByMatchScore(t *testing.T) {
	users := memory.NewUserRepository()
	internships := memory.NewInternshipRepository()

	u := seedUser(t, users, []string{"React", "TypeScript"}, nil)
	seedInternship(t, internships, "Weak Match Intern", []string{"Rust", "C"}, 1, 30)
	seedInternship(t, internships, "Strong Match Intern", []string{"React", "TypeScript"}, 1, 30)

	uc := NewSearchUsecase(users, internships, nil, nil)
	uc.now = func() time.Time { return fixedNow }

	res, err := uc.Search(context.Background(), u.ID, SearchParams{})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(res.Items) != 2 {
		t.Fatalf("expected 2 results, got %d", len(res.Items))
	}
	if res.Items[0].Internship.Title != "Strong Match Intern" {
		t.Fatalf("expected strong match first, got %q", res.Items[0].Internship.Title)
	}
	if res.Items[0].MatchScore <= res.Items[1].MatchScore {
		t.Fatalf("scores not descending: %d then %d", res.Items[0].MatchScore, res.Items[1].MatchScore)
	}
}

type stubSearchCache struct {
	entries map[string][]byte
	locks   map[string]bool

	gets int
	sets int
}

func newStubSearchCache() *stubSearchCache {
	return &stubSearchCache{entries: map[string][]byte{}, locks: map[string]bool{}}
}

func (c *stubSearchCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.gets++
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (c *stubSearchCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.sets++
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *stubSearchCache) SetIfNotExists(_ context.Context, key, _ string, _ time.Duration) (bool, error) {
	if c.locks[key] {
		return false, nil
	}
	c.locks[key] = true
	return true, nil
}

func (c *stubSearchCache) Delete(_ context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

func TestSearchUsesCache(t *testing.T) {
	users := memory.NewUserRepository()
	internships := memory.NewInternshipRepository()

	u := seedUser(t, users, []string{"Go"}, nil)
	seedInternship(t, internships, "Backend Intern", []string{"Go"}, 1, 30)

	cache := newStubSearchCache()
	uc := NewSearchUsecase(users, internships, cache, nil)
	uc.now = func() time.Time { return fixedNow }

	params := SearchParams{Query: "backend"}

	first, err := uc.Search(context.Background(), u.ID, params)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}

	second, err := uc.Search(context.Background(), u.ID, params)
	if err != nil {
		t.Fatalf("cached search: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("cache hit recomputed the result, writes=%d", cache.sets)
	}
	if len(second.Items) != len(first.Items) || second.Pagination != first.Pagination {
		t.Fatalf("cached result differs: %+v vs %+v", second, first)
	}

	// A held fill lock with nothing cached yet must still fall through
	// to computing the result instead of failing or blocking.
	cache2 := newStubSearchCache()
	key := SearchCacheKey(u.ID.String(), normalizeSearchParams(params))
	cache2.locks[key+":fill"] = true
	uc2 := NewSearchUsecase(users, internships, cache2, nil)
	uc2.now = func() time.Time { return fixedNow }
	res, err := uc2.Search(context.Background(), u.ID, params)
	if err != nil {
		t.Fatalf("search with held lock: %v", err)
	}
	if len(res.Items) != 1 {
		t.Fatalf("held lock starved the request: %+v", res)
	}
}

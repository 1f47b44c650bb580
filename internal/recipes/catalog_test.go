package recipes

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCatalog_SuggestionsFuzzyMatchTitles(t *testing.T) {
	c := NewCatalog(nil)

	got, err := c.GetSuggestions(context.Background(), "piz")
	if err != nil {
		t.Fatalf("GetSuggestions returned error: %v", err)
	}
	if len(got) == 0 {
		t.Fatalf("GetSuggestions returned no results for piz")
	}
	titles := map[string]bool{}
	for _, s := range got {
		titles[s.Title] = true
	}
	for _, want := range []string{"Pizza Dough", "Margherita Pizza", "Pizzoccheri"} {
		if !titles[want] {
			t.Fatalf("GetSuggestions(piz) = %#v, missing %q", got, want)
		}
	}
}

func TestCatalog_SuggestionLimitAndBlankQuery(t *testing.T) {
	c := NewCatalog(nil)
	c.SuggestionLimit = 2

	got, err := c.GetSuggestions(context.Background(), "a")
	if err != nil {
		t.Fatalf("GetSuggestions returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	got, err = c.GetSuggestions(context.Background(), "   ")
	if err != nil || got != nil {
		t.Fatalf("blank query = %#v, %v; want nil, nil", got, err)
	}
}

func TestCatalog_ListPaginatesAndFilters(t *testing.T) {
	c := NewCatalog(nil)
	ctx := context.Background()

	page, err := c.ListRecipes(ctx, ListQuery{PageSize: 4})
	if err != nil {
		t.Fatalf("ListRecipes returned error: %v", err)
	}
	if page.Page != 1 || page.TotalPages != 4 || len(page.Items) != 4 || page.Total != 15 {
		t.Fatalf("page = %+v, want 1/4 with 4 items of 15", page)
	}
	if !page.HasNext() || page.HasPrev() {
		t.Fatalf("HasNext/HasPrev = %v/%v, want true/false", page.HasNext(), page.HasPrev())
	}

	page, err = c.ListRecipes(ctx, ListQuery{Search: "TOMATO"})
	if err != nil {
		t.Fatalf("ListRecipes returned error: %v", err)
	}
	if page.Total != 4 {
		t.Fatalf("tomato total = %d, want 4", page.Total)
	}

	_, err = c.ListRecipes(ctx, ListQuery{Page: 99})
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || !statusErr.NotFound() {
		t.Fatalf("page 99 error = %v, want 404", err)
	}
}

func TestCatalog_LatencyHonoursContext(t *testing.T) {
	c := NewCatalog(nil)
	c.Latency = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.GetSuggestions(ctx, "pizza"); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestCatalog_FavoritesAndSession(t *testing.T) {
	c := NewCatalog(nil)
	n, err := c.FavoritesCount(context.Background())
	if err != nil || n != 4 {
		t.Fatalf("FavoritesCount = %d, %v; want 4", n, err)
	}
	s, _ := c.Session(context.Background())
	if s.DisplayName() != "demo" {
		t.Fatalf("DisplayName = %q, want demo", s.DisplayName())
	}
}

func TestRecipeCookTime(t *testing.T) {
	cases := map[int]string{0: "", 45: "45m", 60: "1h", 90: "1h 30m"}
	for minutes, want := range cases {
		if got := (Recipe{Minutes: minutes}).CookTime(); got != want {
			t.Fatalf("CookTime(%d) = %q, want %q", minutes, got, want)
		}
	}
}

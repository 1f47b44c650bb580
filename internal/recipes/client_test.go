package recipes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultAPIBind {
		t.Fatalf("host = %q, want %q", u.Host, defaultAPIBind)
	}

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_FetchesEndpointsAndEncodesQueries(t *testing.T) {
	t.Parallel()

	var gotSuggestQuery url.Values
	var gotListQuery url.Values
	var gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/api/suggestions":
			gotSuggestQuery = r.URL.Query()
			_ = json.NewEncoder(w).Encode(SuggestionListResponse{Items: []Suggestion{
				{ID: "1", Title: "Pizza Dough", Category: "Baking"},
				{ID: "2", Title: "Pizzoccheri"},
			}})
		case "/api/recipes":
			gotListQuery = r.URL.Query()
			_ = json.NewEncoder(w).Encode(RecipePage{Items: []Recipe{{ID: "1", Title: "Pizza Dough"}}, TotalPages: 3})
		case "/api/favorites/count":
			_ = json.NewEncoder(w).Encode(FavoritesResponse{Count: 7})
		case "/api/session":
			_ = json.NewEncoder(w).Encode(Session{Authenticated: true, User: "ada"})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	items, err := c.GetSuggestions(ctx, "piz za")
	if err != nil {
		t.Fatalf("GetSuggestions returned error: %v", err)
	}
	if len(items) != 2 || items[0].Title != "Pizza Dough" || items[1].ID != "2" {
		t.Fatalf("GetSuggestions items = %#v, want service order", items)
	}
	if gotSuggestQuery.Get("q") != "piz za" {
		t.Fatalf("suggest q = %q, want %q", gotSuggestQuery.Get("q"), "piz za")
	}

	page, err := c.ListRecipes(ctx, ListQuery{Search: "  pizza ", Page: 2, PageSize: 12})
	if err != nil {
		t.Fatalf("ListRecipes returned error: %v", err)
	}
	if page.Page != 1 || len(page.Items) != 1 {
		t.Fatalf("ListRecipes page = %#v, want normalized page 1 with one item", page)
	}
	if gotListQuery.Get("search") != "pizza" || gotListQuery.Get("page") != "2" || gotListQuery.Get("limit") != "12" {
		t.Fatalf("ListRecipes query = %v, want params encoded", gotListQuery)
	}

	count, err := c.FavoritesCount(ctx)
	if err != nil || count != 7 {
		t.Fatalf("FavoritesCount = %d, %v; want 7, nil", count, err)
	}

	session, err := c.Session(ctx)
	if err != nil || session.DisplayName() != "ada" {
		t.Fatalf("Session = %#v, %v; want ada", session, err)
	}

	if gotUserAgent == "" || !strings.HasPrefix(gotUserAgent, "pantry/") {
		t.Fatalf("User-Agent = %q, want pantry/*", gotUserAgent)
	}
}

func TestClient_ListOmitsEmptyParams(t *testing.T) {
	t.Parallel()

	var raw string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(RecipePage{Page: 1, TotalPages: 1})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.ListRecipes(context.Background(), ListQuery{Search: "   ", Page: 1}); err != nil {
		t.Fatalf("ListRecipes returned error: %v", err)
	}
	if raw != "" {
		t.Fatalf("raw query = %q, want empty", raw)
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/suggestions":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		case "/api/recipes":
			http.Error(w, "nope", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.GetSuggestions(context.Background(), "pizza")
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("GetSuggestions error = %v, want decode response error", err)
	}

	_, err = c.ListRecipes(context.Background(), ListQuery{})
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("ListRecipes error = %v, want status 500 error", err)
	}

	_, err = c.Session(context.Background())
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || !statusErr.NotFound() {
		t.Fatalf("Session error = %v, want 404 StatusError", err)
	}
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	if _, err := c.GetSuggestions(context.Background(), "x"); err == nil {
		t.Fatalf("GetSuggestions on nil client returned nil error")
	}
}

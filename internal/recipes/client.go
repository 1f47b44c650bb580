package recipes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Service defines the recipe API surface the UI depends on.
// It is implemented by *Client and by *Catalog.
type Service interface {
	GetSuggestions(ctx context.Context, query string) ([]Suggestion, error)
	ListRecipes(ctx context.Context, query ListQuery) (RecipePage, error)
	FavoritesCount(ctx context.Context) (int, error)
	Session(ctx context.Context) (Session, error)
}

// Ensure Client implements Service at compile time.
var _ Service = (*Client)(nil)

// Client talks to the recipe HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIBind   = "127.0.0.1:8080"
	defaultUserAgent = "pantry/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client using the provided apiBind host:port value.
func NewClient(apiBind string) (*Client, error) {
	base, err := parseBaseURL(apiBind)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// GetSuggestions returns autocomplete candidates for query in service order.
func (c *Client) GetSuggestions(ctx context.Context, query string) ([]Suggestion, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("q", query)
	rel := &url.URL{Path: "/api/suggestions", RawQuery: values.Encode()}
	var payload SuggestionListResponse
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

// ListQuery configures /api/recipes requests.
type ListQuery struct {
	Search   string
	Page     int
	PageSize int
}

// ListRecipes retrieves one page of the recipe listing.
func (c *Client) ListRecipes(ctx context.Context, query ListQuery) (RecipePage, error) {
	if c == nil {
		return RecipePage{}, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	if search := strings.TrimSpace(query.Search); search != "" {
		values.Set("search", search)
	}
	if query.Page > 1 {
		values.Set("page", strconv.Itoa(query.Page))
	}
	if query.PageSize > 0 {
		values.Set("limit", strconv.Itoa(query.PageSize))
	}
	rel := &url.URL{Path: "/api/recipes", RawQuery: values.Encode()}
	var payload RecipePage
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return RecipePage{}, err
	}
	if payload.Page <= 0 {
		payload.Page = 1
	}
	return payload, nil
}

// FavoritesCount retrieves the number of recipes the current user favorited.
func (c *Client) FavoritesCount(ctx context.Context) (int, error) {
	if c == nil {
		return 0, fmt.Errorf("client is nil")
	}
	var payload FavoritesResponse
	if err := c.do(ctx, http.MethodGet, "/api/favorites/count", &payload); err != nil {
		return 0, err
	}
	return payload.Count, nil
}

// Session retrieves the signed-in user, if any.
func (c *Client) Session(ctx context.Context) (Session, error) {
	if c == nil {
		return Session{}, fmt.Errorf("client is nil")
	}
	var payload Session
	if err := c.do(ctx, http.MethodGet, "/api/session", &payload); err != nil {
		return Session{}, err
	}
	return payload, nil
}

func (c *Client) do(ctx context.Context, method, path string, dest any) error {
	rel := &url.URL{Path: path}
	return c.doURL(ctx, method, rel, dest)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return &StatusError{Path: rel.Path, Code: resp.StatusCode}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// StatusError reports a non-success HTTP status from the API.
type StatusError struct {
	Path string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.Path, e.Code)
}

// NotFound reports whether the API answered 404.
func (e *StatusError) NotFound() bool {
	return e.Code == http.StatusNotFound
}

func parseBaseURL(apiBind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBind)
	if trimmed == "" {
		trimmed = defaultAPIBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_bind %q: %w", apiBind, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

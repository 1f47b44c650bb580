package recipes

import (
	"fmt"
	"strings"
	"time"
)

// Suggestion is an autocomplete candidate returned by /api/suggestions.
// It is distinct from a full Recipe record.
type Suggestion struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category,omitempty"`
}

// SuggestionListResponse mirrors /api/suggestions.
type SuggestionListResponse struct {
	Items []Suggestion `json:"items"`
}

// Recipe describes a recipe card in the listing grid.
type Recipe struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Summary     string   `json:"summary"`
	Minutes     int      `json:"minutes"`
	Servings    int      `json:"servings"`
	Ingredients []string `json:"ingredients"`
	Favorite    bool     `json:"favorite"`
	UpdatedAt   string   `json:"updatedAt"`
}

// RecipePage mirrors /api/recipes.
type RecipePage struct {
	Items      []Recipe `json:"items"`
	Page       int      `json:"page"`
	TotalPages int      `json:"totalPages"`
	Total      int      `json:"total"`
}

// HasNext reports whether a later page exists.
func (p RecipePage) HasNext() bool {
	return p.Page < p.TotalPages
}

// HasPrev reports whether an earlier page exists.
func (p RecipePage) HasPrev() bool {
	return p.Page > 1
}

// Session mirrors /api/session.
type Session struct {
	Authenticated bool   `json:"authenticated"`
	User          string `json:"user"`
	Email         string `json:"email"`
}

// DisplayName returns the label shown in the navigation bar.
func (s Session) DisplayName() string {
	if !s.Authenticated {
		return "Guest"
	}
	if name := strings.TrimSpace(s.User); name != "" {
		return name
	}
	if email := strings.TrimSpace(s.Email); email != "" {
		return email
	}
	return "Signed in"
}

// FavoritesResponse mirrors /api/favorites/count.
type FavoritesResponse struct {
	Count int `json:"count"`
}

// CookTime renders Minutes as a compact duration label.
func (r Recipe) CookTime() string {
	if r.Minutes <= 0 {
		return ""
	}
	h, m := r.Minutes/60, r.Minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// ParsedUpdatedAt returns UpdatedAt as time.Time, or the zero value.
func (r Recipe) ParsedUpdatedAt() time.Time {
	return parseTime(r.UpdatedAt)
}

func parseTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

package search

import (
	"unicode/utf8"

	"github.com/five82/pantry/internal/recipes"
)

// Length thresholds, counted in runes.
const (
	// MinPanelLength opens the suggestion panel.
	MinPanelLength = 2
	// MinFetchLength triggers a suggestion request and allows the panel to
	// render.
	MinFetchLength = 3
)

// State is the controller's working set. The controller owns it and lends a
// pointer to the fetcher and the navigator; nothing else mutates it.
type State struct {
	Query           string
	Suggestions     []recipes.Suggestion
	ShowSuggestions bool
	Highlighted     int
	Loading         bool
}

func newState() State {
	return State{Highlighted: -1}
}

// Visible reports whether the suggestion panel should render.
func (s State) Visible() bool {
	return s.ShowSuggestions && utf8.RuneCountInString(s.Query) >= MinFetchLength
}

// Selected returns the highlighted suggestion, if any.
func (s State) Selected() (recipes.Suggestion, bool) {
	if s.Highlighted < 0 || s.Highlighted >= len(s.Suggestions) {
		return recipes.Suggestion{}, false
	}
	return s.Suggestions[s.Highlighted], true
}

func (s State) clone() State {
	out := s
	if s.Suggestions != nil {
		out.Suggestions = append([]recipes.Suggestion(nil), s.Suggestions...)
	}
	return out
}

func (s *State) closePanel() {
	s.ShowSuggestions = false
	s.Highlighted = -1
}

func (s *State) clearSuggestions() {
	s.Suggestions = nil
	s.Highlighted = -1
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

package search

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Segment is a run of display text, marked when it equals the search term.
type Segment struct {
	Text  string
	Match bool
}

// Highlight splits text around case-insensitive occurrences of term. The
// term is used as a pattern verbatim; when it does not compile the text is
// returned as a single unmarked segment. Segments concatenate back to text.
func Highlight(text, term string) []Segment {
	if term == "" {
		return []Segment{{Text: text}}
	}
	re, err := regexp.Compile("(?i)(" + term + ")")
	if err != nil {
		return []Segment{{Text: text}}
	}

	var out []Segment
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if loc[0] == loc[1] {
			continue
		}
		if loc[0] > last {
			out = append(out, Segment{Text: text[last:loc[0]]})
		}
		part := text[loc[0]:loc[1]]
		out = append(out, Segment{Text: part, Match: strings.EqualFold(part, term)})
		last = loc[1]
	}
	if last < len(text) || len(out) == 0 {
		out = append(out, Segment{Text: text[last:]})
	}
	return out
}

// Render styles matched segments with match and the rest with base.
func Render(segments []Segment, base, match lipgloss.Style) string {
	var b strings.Builder
	for _, s := range segments {
		if s.Text == "" {
			continue
		}
		if s.Match {
			b.WriteString(match.Render(s.Text))
		} else {
			b.WriteString(base.Render(s.Text))
		}
	}
	return b.String()
}

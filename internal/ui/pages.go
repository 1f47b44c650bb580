package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pantry/internal/recipes"
)

// statusKind classifies what the body shows instead of the grid.
type statusKind int

const (
	statusNone statusKind = iota
	statusLoading
	statusServiceError
	statusNotFound
	statusEmpty
)

func (m Model) status() statusKind {
	if m.loadErr != nil {
		var se *recipes.StatusError
		if errors.As(m.loadErr, &se) && se.NotFound() {
			return statusNotFound
		}
		return statusServiceError
	}
	if m.loading && len(m.page.Items) == 0 {
		return statusLoading
	}
	if !m.loading && len(m.page.Items) == 0 {
		return statusEmpty
	}
	return statusNone
}

// renderStatusPage renders the loading, error and empty pages, or "" when
// the grid should show.
func (m Model) renderStatusPage() string {
	styles := m.theme.Styles()
	var title, detail, hint string
	titleStyle := styles.Text.Bold(true)

	switch m.status() {
	case statusNone:
		return ""
	case statusLoading:
		title = "Loading recipes..."
		titleStyle = styles.MutedText
	case statusNotFound:
		title = fmt.Sprintf("Page %d not found", m.loc.Page())
		detail = "There are fewer pages of results than that."
		hint = "press b to go back"
	case statusServiceError:
		title = "Couldn't load recipes"
		titleStyle = styles.DangerText
		detail = m.loadErr.Error()
		hint = "press r to retry"
	case statusEmpty:
		if q := strings.TrimSpace(m.loc.Search()); q != "" {
			title = fmt.Sprintf("No recipes match %q", q)
			hint = "press / to search again"
		} else {
			title = "No recipes yet"
		}
	}

	lines := []string{titleStyle.Render(title)}
	if detail != "" {
		lines = append(lines, "", styles.MutedText.Render(truncate(detail, max(m.width-8, 10))))
	}
	if hint != "" {
		lines = append(lines, "", styles.FaintText.Render(hint))
	}
	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// renderFooter renders the key hints and page position, or the latest
// transient message.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	left := m.help.ShortHelpView(m.keys.ShortHelp())
	var right string
	switch {
	case m.flash != "":
		right = bg.Render(m.flash, styles.AccentText)
	case m.mode == viewShopping:
		right = bg.Render("Shopping list", styles.MutedText)
	case m.mode == viewDiagnostics:
		right = bg.Render("Diagnostics", styles.MutedText)
	case m.loadErr == nil && m.page.Total > 0:
		right = bg.Render(fmt.Sprintf("Page %d/%d · %s", m.page.Page, m.page.TotalPages, plural(m.page.Total, "recipe")), styles.MutedText)
	}

	inner := max(m.width-2, 0)
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return styles.Footer.Width(m.width).Render(fillLine(right, inner, lipgloss.NewStyle()))
	}
	return styles.Footer.Width(m.width).Render(left + bg.Spaces(gap) + right)
}

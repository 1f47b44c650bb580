package ui

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/five82/pantry/internal/recipes"
)

// renderNavbar renders the top bar: logo, session, favorites, shopping list
// count and theme. Connection problems replace the account details.
func (m Model) renderNavbar() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	left := []string{bg.Render("pantry", styles.Logo)}
	snap := m.snapshot
	switch {
	case snap.IsOffline():
		left = append(left,
			bg.Render("API "+classifyConnectionError(snap.LastError), styles.DangerText),
			bg.Render("Retrying...", styles.WarningText.Bold(true)),
		)
	case !snap.HasData:
		left = append(left, bg.Render("Connecting...", styles.WarningText.Bold(true)))
	default:
		user := snap.Session.DisplayName()
		userStyle := styles.Text
		if !snap.Session.Authenticated {
			userStyle = styles.MutedText
		}
		left = append(left,
			bg.Render("●", styles.SuccessText)+bg.Spaces(1)+bg.Render(user, userStyle),
			bg.Render("★", styles.WarningText)+bg.Spaces(1)+bg.Render(fmt.Sprintf("%d", snap.Favorites), styles.Text),
		)
	}

	listStyle := styles.MutedText
	if m.list.Len() > 0 {
		listStyle = styles.AccentText
	}
	right := []string{
		bg.Render("List:", styles.MutedText) + bg.Spaces(1) + bg.Render(fmt.Sprintf("%d", m.list.Len()), listStyle),
		bg.Render(m.theme.Name, styles.FaintText),
	}

	l := bg.Join(left, 2)
	r := bg.Join(right, 2)
	inner := max(m.width-2, 0)
	gap := inner - ansi.StringWidth(l) - ansi.StringWidth(r)
	if gap < 1 {
		return styles.Header.Width(m.width).Render(ansi.Truncate(l, inner, "…"))
	}
	return styles.Header.Width(m.width).Render(l + bg.Spaces(gap) + r)
}

// classifyConnectionError turns a poll error into a short label.
func classifyConnectionError(err error) string {
	if err == nil {
		return "UNREACHABLE"
	}
	var statusErr *recipes.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("HTTP %d", statusErr.Code)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "TIMEOUT"
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "DNS ERROR"
	case strings.Contains(msg, "deadline exceeded"):
		return "TIMEOUT"
	}
	return "UNREACHABLE"
}

package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// renderShopping renders the shopping list: recipes first, then the merged
// ingredient list with counts aligned in a column.
func (m Model) renderShopping() string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(styles.AccentText.Bold(true).Render("Shopping list"))
	b.WriteString("\n\n")
	if m.list.Len() == 0 {
		b.WriteString(styles.MutedText.Render("Nothing here yet. Press s on a recipe to add it."))
		return indent(b.String())
	}

	b.WriteString(styles.Text.Bold(true).Render("Recipes"))
	b.WriteString("\n")
	for _, e := range m.list.Entries {
		added := ""
		if !e.AddedAt.IsZero() {
			added = e.AddedAt.Local().Format("Jan 2")
		}
		b.WriteString("  " + styles.Text.Render(e.Title))
		if added != "" {
			b.WriteString("  " + styles.FaintText.Render(added))
		}
		b.WriteString("\n")
	}

	items := m.list.Ingredients()
	b.WriteString("\n")
	b.WriteString(styles.Text.Bold(true).Render("Ingredients"))
	b.WriteString("\n")
	nameW := 0
	for _, it := range items {
		nameW = max(nameW, runewidth.StringWidth(it.Name))
	}
	nameW = min(nameW, max(m.width-16, 10))
	for _, it := range items {
		name := runewidth.FillRight(runewidth.Truncate(it.Name, nameW, "…"), nameW)
		b.WriteString("  ☐ " + styles.Text.Render(name))
		if it.Count > 1 {
			b.WriteString("  " + styles.MutedText.Render(fmt.Sprintf("×%d", it.Count)))
		}
		b.WriteString("\n")
	}
	return indent(b.String())
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = " " + l
	}
	return strings.Join(lines, "\n")
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pantry/internal/prefs"
	"github.com/five82/pantry/internal/recipes"
	"github.com/five82/pantry/internal/search"
)

// Card geometry in the comfortable layout, borders included.
const (
	cardWidth  = 32
	cardHeight = 6
	cardGap    = 1
	gridX      = 1
)

func (m Model) compact() bool {
	return m.prefs.Density == prefs.DensityCompact
}

// gridColumns returns how many cards fit side by side.
func (m Model) gridColumns() int {
	if m.compact() {
		return 1
	}
	return max(1, (m.width-gridX+cardGap)/(cardWidth+cardGap))
}

// rowHeight is the height of one grid row; compact mode has a header line.
func (m Model) rowHeight() int {
	if m.compact() {
		return 1
	}
	return cardHeight
}

func (m Model) headerLines() int {
	if m.compact() {
		return 1
	}
	return 0
}

// visibleRows returns how many grid rows fit in the body.
func (m Model) visibleRows() int {
	return max((m.bodyHeight()-m.headerLines())/m.rowHeight(), 1)
}

// firstRow keeps the selected recipe on screen.
func (m Model) firstRow() int {
	selRow := m.selected / m.gridColumns()
	return max(selRow-m.visibleRows()+1, 0)
}

// cardRect returns the screen region of recipe i, or an empty rect when it is
// scrolled out of view.
func (m Model) cardRect(i int) search.Rect {
	cols := m.gridColumns()
	row := i/cols - m.firstRow()
	if row < 0 || row >= m.visibleRows() {
		return search.Rect{}
	}
	y := bodyTop + m.headerLines() + row*m.rowHeight()
	if m.compact() {
		return search.Rect{X: gridX, Y: y, W: max(m.width-2*gridX, 1), H: 1}
	}
	col := i % cols
	return search.Rect{X: gridX + col*(cardWidth+cardGap), Y: y, W: cardWidth, H: cardHeight}
}

// cardAt maps a screen cell to a recipe index, or -1.
func (m Model) cardAt(x, y int) int {
	for i := range m.page.Items {
		if m.cardRect(i).Contains(x, y) {
			return i
		}
	}
	return -1
}

func (m Model) renderGrid() string {
	if m.compact() {
		return m.renderCompact()
	}
	styles := m.theme.Styles()
	cols := m.gridColumns()
	first := m.firstRow()

	var rows []string
	for r := first; r < first+m.visibleRows(); r++ {
		var cards []string
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i >= len(m.page.Items) {
				break
			}
			if c > 0 {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
			cards = append(cards, m.renderCard(m.page.Items[i], i == m.selected, styles))
		}
		if len(cards) == 0 {
			break
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.NewStyle().PaddingLeft(gridX).Render(grid)
}

func (m Model) renderCard(r recipes.Recipe, selected bool, styles Styles) string {
	inner := cardWidth - 4
	box := styles.Card
	if selected {
		box = styles.CardSelected
	}

	title := styles.Text.Bold(true).Render(truncate(r.Title, inner))
	chip := styles.CategoryStyle(r.Category).Render(truncate(r.Category, inner/2))
	meta := chip + " " + styles.MutedText.Render(r.CookTime())

	serves := styles.MutedText.Render(fmt.Sprintf("serves %d", r.Servings))
	if m.list.Contains(r.ID) {
		serves += "  " + styles.SuccessText.Render("✓ on list")
	} else if r.Favorite {
		serves += "  " + styles.WarningText.Render("★")
	}
	summary := styles.FaintText.Render(truncate(r.Summary, inner))

	body := strings.Join([]string{title, meta, serves, summary}, "\n")
	return box.Width(cardWidth - 2).Height(cardHeight - 2).Render(body)
}

func (m Model) renderCompact() string {
	styles := m.theme.Styles()
	width := max(m.width-2*gridX, 20)
	titleW := max(width-12-8-10-4, 10)

	header := styles.FaintText.Render(
		fitCell("Recipe", titleW) + " " + fitCell("Category", 12) + " " + fitCell("Time", 8) + " " + fitCell("Serves", 10),
	)
	lines := []string{header}
	first := m.firstRow()
	for i := first; i < min(first+m.visibleRows(), len(m.page.Items)); i++ {
		r := m.page.Items[i]
		mark := " "
		if m.list.Contains(r.ID) {
			mark = "✓"
		}
		line := fitCell(r.Title, titleW) + " " + fitCell(r.Category, 12) + " " +
			fitCell(r.CookTime(), 8) + " " + fitCell(fmt.Sprintf("%d", r.Servings), 8) + " " + mark
		if i == m.selected {
			line = fillLine(styles.Selected.Render(line), width, styles.Selected)
		} else {
			line = styles.Text.Render(line)
		}
		lines = append(lines, line)
	}
	return lipgloss.NewStyle().PaddingLeft(gridX).Render(strings.Join(lines, "\n"))
}

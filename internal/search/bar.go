package search

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const clearGlyph = "✕"

// BarKeyMap binds the keys the search bar handles while focused.
type BarKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Accept  key.Binding
	Dismiss key.Binding
	Clear   key.Binding
}

// DefaultBarKeyMap returns the default search bar bindings.
func DefaultBarKeyMap() BarKeyMap {
	return BarKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("up", "Previous suggestion"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("down", "Next suggestion"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Search / pick suggestion"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close suggestions"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "Clear search"),
		),
	}
}

// BarStyles are the lipgloss styles the bar renders with.
type BarStyles struct {
	Prompt   lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Match    lipgloss.Style
	Selected lipgloss.Style
	Panel    lipgloss.Style
}

// DefaultBarStyles returns plain styles, used until a theme is applied.
func DefaultBarStyles() BarStyles {
	return BarStyles{
		Prompt:   lipgloss.NewStyle().Bold(true),
		Text:     lipgloss.NewStyle(),
		Muted:    lipgloss.NewStyle().Faint(true),
		Match:    lipgloss.NewStyle().Bold(true).Underline(true),
		Selected: lipgloss.NewStyle().Reverse(true),
		Panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()),
	}
}

// Bar is the search input with its suggestion panel. It renders the
// controller's state and turns terminal events into controller calls.
type Bar struct {
	ctrl   *Controller
	input  textinput.Model
	keys   BarKeyMap
	styles BarStyles

	x, y  int
	width int
}

// NewBar returns a bar driving ctrl.
func NewBar(ctrl *Controller) *Bar {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search recipes"
	ti.CharLimit = 120
	b := &Bar{
		ctrl:   ctrl,
		input:  ti,
		keys:   DefaultBarKeyMap(),
		styles: DefaultBarStyles(),
		width:  40,
	}
	b.applyStyles()
	return b
}

// Controller returns the controller behind the bar.
func (b *Bar) Controller() *Controller { return b.ctrl }

// Keys returns the bar's bindings, for help rendering.
func (b *Bar) Keys() BarKeyMap { return b.keys }

// SetStyles replaces the bar's styles.
func (b *Bar) SetStyles(s BarStyles) {
	b.styles = s
	b.applyStyles()
}

func (b *Bar) applyStyles() {
	b.input.PromptStyle = b.styles.Prompt
	b.input.TextStyle = b.styles.Text
	b.input.PlaceholderStyle = b.styles.Muted
}

// SetLayout places the input line at (x, y) with the given width.
func (b *Bar) SetLayout(x, y, width int) {
	b.x, b.y = x, y
	b.width = max(width, 12)
	b.input.Width = b.width - ansi.StringWidth(b.input.Prompt) - 3
	b.updateRegions()
}

// SetQuery seeds the input, e.g. from the address on startup, without
// triggering a fetch.
func (b *Bar) SetQuery(q string) {
	b.input.SetValue(q)
	b.input.CursorEnd()
}

// Focused reports whether the input has focus.
func (b *Bar) Focused() bool { return b.input.Focused() }

// Focus focuses the input and reopens the panel.
func (b *Bar) Focus() tea.Cmd {
	b.ctrl.OnToggleVisibility(true)
	b.updateRegions()
	return b.input.Focus()
}

// Blur removes focus and closes the panel.
func (b *Bar) Blur() {
	b.input.Blur()
	b.ctrl.OnToggleVisibility(false)
	b.updateRegions()
}

// Update handles keys (when focused), mouse events and the controller's own
// messages.
func (b *Bar) Update(msg tea.Msg) tea.Cmd {
	defer b.updateRegions()
	switch msg := msg.(type) {
	case resultMsg, urlSyncMsg:
		b.ctrl.Update(msg)
		return nil
	case tea.KeyMsg:
		if !b.input.Focused() {
			return nil
		}
		return b.handleKey(msg)
	case tea.MouseMsg:
		return b.handleMouse(msg)
	}
	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	return cmd
}

func (b *Bar) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, b.keys.Up):
		b.ctrl.OnKeyDown(KeyUp)
	case key.Matches(msg, b.keys.Down):
		b.ctrl.OnKeyDown(KeyDown)
	case key.Matches(msg, b.keys.Accept):
		b.ctrl.OnKeyDown(KeyEnter)
		b.syncInput()
	case key.Matches(msg, b.keys.Dismiss):
		b.ctrl.OnKeyDown(KeyEscape)
	case key.Matches(msg, b.keys.Clear):
		b.ctrl.OnClear()
		b.syncInput()
	default:
		before := b.input.Value()
		var cmd tea.Cmd
		b.input, cmd = b.input.Update(msg)
		if after := b.input.Value(); after != before {
			return tea.Batch(cmd, b.ctrl.OnInputChange(after))
		}
		return cmd
	}
	return nil
}

func (b *Bar) handleMouse(msg tea.MouseMsg) tea.Cmd {
	row := b.rowAt(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionMotion:
		if row >= 0 {
			b.ctrl.OnHover(row)
		}
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if row >= 0 {
			b.ctrl.OnSuggestionClick(row)
			b.syncInput()
			return nil
		}
		if b.clearRect().Contains(msg.X, msg.Y) {
			b.ctrl.OnClear()
			b.syncInput()
			return nil
		}
		if b.inputRect().Contains(msg.X, msg.Y) && !b.input.Focused() {
			return b.Focus()
		}
	}
	return nil
}

// syncInput copies a controller-side query change back into the input.
func (b *Bar) syncInput() {
	if q := b.ctrl.State().Query; q != b.input.Value() {
		b.input.SetValue(q)
		b.input.CursorEnd()
	}
}

func (b *Bar) inputRect() Rect {
	return Rect{X: b.x, Y: b.y, W: b.width, H: 1}
}

func (b *Bar) clearRect() Rect {
	if b.input.Value() == "" {
		return Rect{}
	}
	return Rect{X: b.x + b.width - 1, Y: b.y, W: 1, H: 1}
}

// panelRows returns how many rows the open panel shows, or 0 when closed.
func (b *Bar) panelRows(st State) int {
	if !st.Visible() {
		return 0
	}
	if n := len(st.Suggestions); n > 0 {
		return n
	}
	if st.Loading {
		return 1
	}
	return 0
}

func (b *Bar) panelRect() Rect {
	rows := b.panelRows(b.ctrl.State())
	if rows == 0 {
		return Rect{}
	}
	return Rect{X: b.x, Y: b.y + 1, W: b.width, H: rows + 2}
}

// rowAt maps a cell to a suggestion row, or -1.
func (b *Bar) rowAt(x, y int) int {
	st := b.ctrl.State()
	if !st.Visible() || len(st.Suggestions) == 0 {
		return -1
	}
	i := y - (b.y + 2)
	if i < 0 || i >= len(st.Suggestions) || x <= b.x || x >= b.x+b.width-1 {
		return -1
	}
	return i
}

func (b *Bar) updateRegions() {
	b.ctrl.SetRegions(b.inputRect(), b.panelRect())
}

// View renders the input line.
func (b *Bar) View() string {
	st := b.ctrl.State()
	line := b.input.View()
	suffix := " "
	if st.Loading {
		suffix = b.styles.Muted.Render("…")
	}
	if b.input.Value() != "" {
		suffix += b.styles.Muted.Render(clearGlyph)
	} else {
		suffix += " "
	}
	inner := b.width - 2
	line = ansi.Truncate(line, inner, "")
	if w := ansi.StringWidth(line); w < inner {
		line += strings.Repeat(" ", inner-w)
	}
	return line + suffix
}

// PanelView renders the suggestion panel, or "" when it is closed. It is
// drawn directly below the input line.
func (b *Bar) PanelView() string {
	st := b.ctrl.State()
	if b.panelRows(st) == 0 {
		return ""
	}
	inner := b.width - 2
	var rows []string
	if len(st.Suggestions) == 0 {
		rows = append(rows, fill(b.styles.Muted.Render("Searching…"), inner, b.styles.Text))
	}
	for i, s := range st.Suggestions {
		base, match, muted := b.styles.Text, b.styles.Match, b.styles.Muted
		if i == st.Highlighted {
			bg := b.styles.Selected.GetBackground()
			base = b.styles.Selected
			match = match.Background(bg)
			muted = muted.Background(bg)
		}
		line := Render(Highlight(s.Title, st.Query), base, match)
		if s.Category != "" {
			line += base.Render("  ") + muted.Render(s.Category)
		}
		line = ansi.Truncate(line, inner, "…")
		rows = append(rows, fill(line, inner, base))
	}
	return b.styles.Panel.Width(inner).Render(strings.Join(rows, "\n"))
}

func fill(line string, width int, style lipgloss.Style) string {
	if w := ansi.StringWidth(line); w < width {
		line += style.Render(strings.Repeat(" ", width-w))
	}
	return line
}

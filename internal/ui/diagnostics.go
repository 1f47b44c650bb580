package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pantry/internal/logtail"
)

const diagnosticsLines = 400

type diagnosticsMsg struct {
	lines []string
	err   error
}

// diagnostics shows the tail of pantry's own log, newest at the bottom.
type diagnostics struct {
	vp      viewport.Model
	entries []logtail.Entry
	err     error
	follow  bool
	theme   Theme
}

func newDiagnostics() diagnostics {
	return diagnostics{vp: viewport.New(0, 0), follow: true}
}

func (d diagnostics) load(path string) tea.Cmd {
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		lines, err := logtail.Read(path, diagnosticsLines)
		return diagnosticsMsg{lines: lines, err: err}
	}
}

func (d *diagnostics) apply(msg diagnosticsMsg, theme Theme) {
	d.err = msg.err
	d.entries = d.entries[:0]
	for _, line := range msg.lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		d.entries = append(d.entries, logtail.Parse(line))
	}
	d.restyle(theme)
}

func (d *diagnostics) resize(width, height int) {
	d.vp.Width, d.vp.Height = width, height
	d.render()
}

func (d *diagnostics) restyle(theme Theme) {
	d.theme = theme
	d.render()
}

func (d *diagnostics) update(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == " " {
		d.follow = !d.follow
		if d.follow {
			d.vp.GotoBottom()
		}
		return nil
	}
	var cmd tea.Cmd
	d.vp, cmd = d.vp.Update(msg)
	if !d.vp.AtBottom() {
		d.follow = false
	}
	return cmd
}

func (d *diagnostics) render() {
	if d.theme.Name == "" {
		return
	}
	styles := d.theme.Styles()
	var lines []string
	switch {
	case d.err != nil:
		lines = append(lines, styles.DangerText.Render("Couldn't read log: "+d.err.Error()))
	case len(d.entries) == 0:
		lines = append(lines, styles.MutedText.Render("No log entries yet."))
	}
	for _, e := range d.entries {
		lines = append(lines, formatEntry(e, styles, d.vp.Width))
	}
	d.vp.SetContent(strings.Join(lines, "\n"))
	if d.follow {
		d.vp.GotoBottom()
	}
}

func (d diagnostics) view() string {
	return d.vp.View()
}

func formatEntry(e logtail.Entry, styles Styles, width int) string {
	if e.Level == "" {
		return " " + styles.Text.Render(truncate(e.Raw, max(width-2, 10)))
	}
	var levelStyle lipgloss.Style
	switch e.Level {
	case "error":
		levelStyle = styles.DangerText
	case "warn":
		levelStyle = styles.WarningText
	case "debug":
		levelStyle = styles.AccentText
	default:
		levelStyle = styles.SuccessText
	}

	parts := []string{" "}
	if !e.Time.IsZero() {
		parts = append(parts, styles.FaintText.Render(e.Time.Local().Format("15:04:05")))
	}
	parts = append(parts, levelStyle.Render(fitCell(strings.ToUpper(e.Level), 5)))
	if e.Logger != "" {
		parts = append(parts, styles.AccentText.Render("["+e.Logger+"]"))
	}
	parts = append(parts, styles.Text.Render(e.Message))
	if e.Error != "" {
		parts = append(parts, styles.DangerText.Render(e.Error))
	}
	if f := e.FieldString(); f != "" {
		parts = append(parts, styles.MutedText.Render(f))
	}
	return strings.Join(parts, " ")
}

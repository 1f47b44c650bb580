package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// overlay draws top over base with its top-left corner at (x, y). Both are
// multi-line rendered strings; styled content on either side of the overlay
// is preserved.
func overlay(base, top string, x, y int) string {
	if top == "" {
		return base
	}
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(top, "\n") {
		row := y + i
		if row < 0 {
			continue
		}
		for row >= len(baseLines) {
			baseLines = append(baseLines, "")
		}
		under := baseLines[row]
		w := ansi.StringWidth(line)
		left := ansi.Truncate(under, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(under, x+w, "")
		baseLines[row] = left + line + right
	}
	return strings.Join(baseLines, "\n")
}

// fillLine pads rendered content to width using style for the padding.
func fillLine(content string, width int, style lipgloss.Style) string {
	w := ansi.StringWidth(content)
	if w >= width {
		return ansi.Truncate(content, width, "")
	}
	return content + style.Render(strings.Repeat(" ", width-w))
}

// clampLines keeps at most n lines of s, padding with empty lines.
func clampLines(s string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// BgStyle renders text segments on a shared background. Resets between
// lipgloss-rendered segments otherwise leave gaps in the bar color.
type BgStyle struct {
	bg lipgloss.Color
}

// NewBgStyle returns a helper for the given background color.
func NewBgStyle(bgColor string) BgStyle {
	return BgStyle{bg: lipgloss.Color(bgColor)}
}

// Render renders text with style on the background.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	return style.Background(b.bg).Render(text)
}

// Spaces returns n background-colored spaces.
func (b BgStyle) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Background(b.bg).Render(strings.Repeat(" ", n))
}

// Join joins parts with n background-colored spaces.
func (b BgStyle) Join(parts []string, n int) string {
	return strings.Join(parts, b.Spaces(n))
}

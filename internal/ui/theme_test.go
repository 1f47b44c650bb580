package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestGetTheme_FallsBack(t *testing.T) {
	if got := GetTheme("nope").Name; got != "Nightfox" {
		t.Fatalf("GetTheme fallback = %q, want Nightfox", got)
	}
	if got := GetTheme("Slate").Name; got != "Slate" {
		t.Fatalf("GetTheme(Slate) = %q", got)
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("expected 3 themes, got %d", len(names))
	}
	cur := names[0]
	for i := 0; i < len(names); i++ {
		cur = NextTheme(cur)
	}
	if cur != names[0] {
		t.Fatalf("cycle did not return to start, got %q", cur)
	}
	if got := NextTheme("unknown"); got != names[0] {
		t.Fatalf("NextTheme(unknown) = %q, want %q", got, names[0])
	}
}

func TestThemesDefineEveryCategory(t *testing.T) {
	categories := []string{"baking", "mains", "pasta", "sides", "sauces", "breakfast", "soups", "salads", "desserts"}
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, c := range categories {
			if th.CategoryColors[c] == "" {
				t.Errorf("theme %s has no color for %s", name, c)
			}
		}
	}
}

func TestCategoryStyle_UnknownUsesMuted(t *testing.T) {
	th := GetTheme("Nightfox")
	styles := th.Styles()
	if got := styles.CategoryStyle("  Baking "); got.GetBackground() != styles.CategoryStyle("baking").GetBackground() {
		t.Fatalf("category lookup should be case and space insensitive")
	}
	if got := styles.CategoryStyle("street food").GetBackground(); got != lipgloss.Color(th.Muted) {
		t.Fatalf("unknown category background = %v, want muted %s", got, th.Muted)
	}
}

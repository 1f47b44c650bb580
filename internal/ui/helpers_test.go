package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestTruncate(t *testing.T) {
	if got := truncate("  Chicken Tikka Masala ", 10); got != "Chicken T…" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("Ramen", 10); got != "Ramen" {
		t.Fatalf("short value changed: %q", got)
	}
	if got := truncate("Ramen", 0); got != "Ramen" {
		t.Fatalf("zero limit should not truncate: %q", got)
	}
}

func TestFitCell_WideRunes(t *testing.T) {
	got := fitCell("寿司とラーメン", 8)
	if w := ansi.StringWidth(got); w != 8 {
		t.Fatalf("fitCell width = %d (%q), want 8", w, got)
	}
}

func TestPlural(t *testing.T) {
	if got := plural(1, "recipe"); got != "1 recipe" {
		t.Fatalf("plural(1) = %q", got)
	}
	if got := plural(3, "recipe"); got != "3 recipes" {
		t.Fatalf("plural(3) = %q", got)
	}
}

func TestOverlay(t *testing.T) {
	base := "aaaaaaaa\nbbbbbbbb\ncccccccc"
	got := overlay(base, "XX\nYY", 3, 1)
	want := "aaaaaaaa\nbbbXXbbb\ncccYYccc"
	if got != want {
		t.Fatalf("overlay =\n%s\nwant\n%s", got, want)
	}
}

func TestOverlay_ExtendsShortBase(t *testing.T) {
	got := overlay("ab", "XY", 4, 1)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 || lines[1] != "    XY" {
		t.Fatalf("overlay = %q", got)
	}
}

func TestOverlay_PreservesStyledBase(t *testing.T) {
	base := lipgloss.NewStyle().Bold(true).Render("abcdefgh")
	got := ansi.Strip(overlay(base, "XY", 2, 0))
	if got != "abXYefgh" {
		t.Fatalf("overlay stripped = %q", got)
	}
}

func TestClampLines(t *testing.T) {
	if got := clampLines("a\nb\nc", 2); got != "a\nb" {
		t.Fatalf("clampLines = %q", got)
	}
	if got := clampLines("a", 3); got != "a\n\n" {
		t.Fatalf("clampLines pad = %q", got)
	}
}

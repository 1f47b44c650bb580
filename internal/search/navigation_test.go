package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/pantry/internal/recipes"
)

func openState(n int) *State {
	st := newState()
	st.Query = "piz"
	st.ShowSuggestions = true
	for i := 0; i < n; i++ {
		st.Suggestions = append(st.Suggestions, recipes.Suggestion{ID: string(rune('a' + i)), Title: "Pizza"})
	}
	return &st
}

func TestNavigator_DownStopsAtLast(t *testing.T) {
	var nav Navigator
	st := openState(3)
	for i := 0; i < 5; i++ {
		assert.Equal(t, ActionNone, nav.Transition(st, KeyDown))
	}
	assert.Equal(t, 2, st.Highlighted)
}

func TestNavigator_UpStopsAtNone(t *testing.T) {
	var nav Navigator
	st := openState(3)
	st.Highlighted = 1
	nav.Transition(st, KeyUp)
	nav.Transition(st, KeyUp)
	nav.Transition(st, KeyUp)
	assert.Equal(t, -1, st.Highlighted)
}

func TestNavigator_DownOnEmptyList(t *testing.T) {
	var nav Navigator
	st := openState(0)
	nav.Transition(st, KeyDown)
	assert.Equal(t, -1, st.Highlighted)
}

func TestNavigator_EnterAcceptsHighlighted(t *testing.T) {
	var nav Navigator
	st := openState(3)
	nav.Transition(st, KeyDown)
	nav.Transition(st, KeyDown)
	require.Equal(t, ActionAccept, nav.Transition(st, KeyEnter))
	sel, ok := st.Selected()
	require.True(t, ok)
	assert.Equal(t, "b", sel.ID)
}

func TestNavigator_EnterWithoutHighlightSubmits(t *testing.T) {
	var nav Navigator
	st := openState(3)
	assert.Equal(t, ActionSubmit, nav.Transition(st, KeyEnter))
	assert.False(t, st.ShowSuggestions)
	assert.Equal(t, -1, st.Highlighted)
}

func TestNavigator_EscapeCloses(t *testing.T) {
	var nav Navigator
	st := openState(3)
	nav.Transition(st, KeyDown)
	assert.Equal(t, ActionNone, nav.Transition(st, KeyEscape))
	assert.False(t, st.ShowSuggestions)
	assert.Equal(t, -1, st.Highlighted)
	assert.Len(t, st.Suggestions, 3)
}

func TestNavigator_ArrowsIgnoredWhileClosed(t *testing.T) {
	var nav Navigator
	st := openState(3)
	st.ShowSuggestions = false
	nav.Transition(st, KeyDown)
	assert.Equal(t, -1, st.Highlighted)
}

func TestNavigator_Hover(t *testing.T) {
	var nav Navigator
	st := openState(3)
	nav.Hover(st, 2)
	assert.Equal(t, 2, st.Highlighted)
	assert.True(t, st.ShowSuggestions)
	nav.Hover(st, 7)
	assert.Equal(t, 2, st.Highlighted)
}

func TestNavigator_IndexStaysInRange(t *testing.T) {
	var nav Navigator
	keys := []Key{KeyDown, KeyDown, KeyUp, KeyDown, KeyDown, KeyDown, KeyDown, KeyUp, KeyUp, KeyUp, KeyUp, KeyDown}
	for n := 0; n < 4; n++ {
		st := openState(n)
		for _, k := range keys {
			nav.Transition(st, k)
			assert.GreaterOrEqual(t, st.Highlighted, -1)
			assert.LessOrEqual(t, st.Highlighted, n-1)
		}
	}
}

func TestNavigator_Clamp(t *testing.T) {
	var nav Navigator
	st := openState(3)
	st.Highlighted = 2
	st.Suggestions = st.Suggestions[:1]
	nav.Clamp(st)
	assert.Equal(t, 0, st.Highlighted)
}

package search

// Key is a navigation key delivered to the controller.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyEscape
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "esc"
	default:
		return "other"
	}
}

// Action is what the controller must do after a key transition.
type Action int

const (
	ActionNone Action = iota
	// ActionAccept accepts the highlighted suggestion.
	ActionAccept
	// ActionSubmit schedules the debounced address update for the query.
	ActionSubmit
)

// Navigator moves the highlight through the suggestion list. The highlighted
// index stays within [-1, len(Suggestions)-1].
type Navigator struct{}

// Transition applies key to st and returns the follow-up action. Up, Down and
// Escape only act while the panel is open; Enter is always handled.
func (Navigator) Transition(st *State, key Key) Action {
	n := len(st.Suggestions)
	switch key {
	case KeyDown:
		if !st.ShowSuggestions || n == 0 {
			return ActionNone
		}
		st.Highlighted = min(st.Highlighted+1, n-1)
	case KeyUp:
		if !st.ShowSuggestions {
			return ActionNone
		}
		st.Highlighted = max(st.Highlighted-1, -1)
	case KeyEnter:
		if st.ShowSuggestions && st.Highlighted >= 0 && st.Highlighted < n {
			return ActionAccept
		}
		st.closePanel()
		return ActionSubmit
	case KeyEscape:
		st.closePanel()
	}
	return ActionNone
}

// Hover highlights row i without closing the panel. Out-of-range rows are
// ignored.
func (Navigator) Hover(st *State, i int) {
	if i < 0 || i >= len(st.Suggestions) {
		return
	}
	st.Highlighted = i
}

// Reset clears the highlight.
func (Navigator) Reset(st *State) {
	st.Highlighted = -1
}

// Clamp pulls the highlight back into range after the list shrank.
func (Navigator) Clamp(st *State) {
	if st.Highlighted >= len(st.Suggestions) {
		st.Highlighted = len(st.Suggestions) - 1
	}
	if st.Highlighted < -1 {
		st.Highlighted = -1
	}
}

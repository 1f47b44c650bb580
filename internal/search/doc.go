// Package search implements the recipe search bar: an incremental search
// input that fetches suggestions as the user types, lets them move through
// the suggestions with the keyboard or mouse, and writes the committed query
// to the navigable address.
//
// The Controller owns all state and is driven from the Bubble Tea event
// loop. Suggestion requests run as tea.Cmds and come back as messages; the
// address update is debounced by a Scheduler whose timers post messages
// through a Dispatcher. Bar is the presentational half.
package search

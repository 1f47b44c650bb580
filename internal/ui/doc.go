// Package ui implements pantry's terminal interface with Bubble Tea.
//
// The root Model lays the screen out as a navigation bar, the search bar
// (internal/search), a body and a footer:
//
//	┌ pantry  ● ana  ★ 4                           List: 2  Nightfox ┐
//	│ / piz                                                       ✕ │
//	│ ╭─ suggestions overlay the body while open ─╮                 │
//	│ recipe grid | shopping list | diagnostics log | status page   │
//	└ / Search · n Next page · ...                 Page 1/2 · 15 ... ┘
//
// The grid shows one page of recipes for the current location. Whenever the
// location changes (the search bar committing a query, paging, going back)
// the model requests that page again; responses for superseded requests are
// dropped by sequence number. Errors and empty results replace the grid with
// a status page.
//
// Mouse presses are published to a search.PointerHub before anything else
// handles them, which is how the search bar learns about clicks outside it.
//
// Preferences (theme, density) and the shopping list are saved as soon as
// they change.
package ui

// Package location holds the navigable address of the browser: the path and
// query parameters (search, page) that determine what the recipe grid shows.
//
// A Location is owned by the UI event loop and is not safe for concurrent
// use. Writers are expected to be serialized by their caller.
package location

import (
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names.
const (
	ParamSearch = "search"
	ParamPage   = "page"
)

const historyLimit = 50

// Listener is notified after every navigation.
type Listener func(u url.URL)

// Location is the current navigable address plus a bounded back history.
type Location struct {
	current   url.URL
	history   []string
	listeners map[int]Listener
	nextID    int
}

// New parses raw into a Location. An unparsable or empty value yields "/".
func New(raw string) *Location {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Path == "" {
		u = &url.URL{Path: "/", RawQuery: safeQuery(u)}
	}
	u.Fragment = ""
	return &Location{current: *u, listeners: make(map[int]Listener)}
}

func safeQuery(u *url.URL) string {
	if u == nil {
		return ""
	}
	return u.RawQuery
}

// String renders the current address, e.g. "/?page=2&search=pizza".
func (l *Location) String() string {
	return l.current.String()
}

// Params returns a copy of the current query parameters.
func (l *Location) Params() url.Values {
	return l.current.Query()
}

// Search returns the active search term, or "".
func (l *Location) Search() string {
	return l.current.Query().Get(ParamSearch)
}

// Page returns the active page number, defaulting to 1 for missing or
// invalid values.
func (l *Location) Page() int {
	n, err := strconv.Atoi(l.current.Query().Get(ParamPage))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Navigate replaces the query parameters and notifies listeners. It reports
// whether the address changed; unchanged navigations do not notify.
func (l *Location) Navigate(params url.Values) bool {
	next := l.current
	next.RawQuery = params.Encode()
	if next.String() == l.current.String() {
		return false
	}
	l.history = append(l.history, l.current.String())
	if len(l.history) > historyLimit {
		l.history = l.history[len(l.history)-historyLimit:]
	}
	l.current = next
	l.notify()
	return true
}

// SetPage navigates to page n, keeping other parameters. Page 1 removes the
// parameter.
func (l *Location) SetPage(n int) bool {
	params := l.Params()
	if n <= 1 {
		params.Del(ParamPage)
	} else {
		params.Set(ParamPage, strconv.Itoa(n))
	}
	return l.Navigate(params)
}

// Back restores the previous address. It reports false when there is none.
func (l *Location) Back() bool {
	if len(l.history) == 0 {
		return false
	}
	prev := l.history[len(l.history)-1]
	l.history = l.history[:len(l.history)-1]
	u, err := url.Parse(prev)
	if err != nil {
		return false
	}
	l.current = *u
	l.notify()
	return true
}

// Subscribe registers fn and returns a func that removes it.
func (l *Location) Subscribe(fn Listener) func() {
	id := l.nextID
	l.nextID++
	l.listeners[id] = fn
	return func() { delete(l.listeners, id) }
}

func (l *Location) notify() {
	for _, fn := range l.listeners {
		fn(l.current)
	}
}

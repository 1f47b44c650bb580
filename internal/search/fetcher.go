package search

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"

	"github.com/five82/pantry/internal/config"
	"github.com/five82/pantry/internal/recipes"
)

// DefaultFetchTimeout bounds a single suggestion request.
const DefaultFetchTimeout = 3 * time.Second

// Suggester is the slice of the recipe service the fetcher needs.
type Suggester interface {
	GetSuggestions(ctx context.Context, query string) ([]recipes.Suggestion, error)
}

// resultMsg carries a completed suggestion request back to the event loop.
type resultMsg struct {
	id    uint64
	query string
	items []recipes.Suggestion
	err   error
}

// Fetcher issues suggestion requests and applies their results. Every
// request is tagged with an increasing id so out-of-order responses can be
// recognised.
type Fetcher struct {
	service Suggester
	timeout time.Duration
	policy  config.StalePolicy
	log     logr.Logger

	parent   context.Context
	issued   uint64
	inflight map[uint64]context.CancelFunc
}

// NewFetcher returns a fetcher over service.
func NewFetcher(service Suggester, timeout time.Duration, policy config.StalePolicy, log logr.Logger) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	if policy == "" {
		policy = config.StaleLatestWins
	}
	return &Fetcher{
		service:  service,
		timeout:  timeout,
		policy:   policy,
		log:      log,
		parent:   context.Background(),
		inflight: make(map[uint64]context.CancelFunc),
	}
}

// Fetch starts a request for query. Blank or short queries clear the list
// and close the panel instead, returning nil.
func (f *Fetcher) Fetch(st *State, query string) tea.Cmd {
	if strings.TrimSpace(query) == "" || runeLen(query) < MinFetchLength {
		f.invalidate(st)
		st.clearSuggestions()
		st.closePanel()
		return nil
	}

	f.issued++
	id := f.issued
	ctx, cancel := context.WithTimeout(f.parent, f.timeout)
	f.inflight[id] = cancel
	st.Loading = true

	svc := f.service
	return func() tea.Msg {
		items, err := svc.GetSuggestions(ctx, query)
		return resultMsg{id: id, query: query, items: items, err: err}
	}
}

// apply folds msg into st. It reports whether st changed.
func (f *Fetcher) apply(st *State, msg resultMsg) bool {
	cancel, ok := f.inflight[msg.id]
	if !ok {
		// Cancelled by unmount or invalidation.
		return false
	}
	cancel()
	delete(f.inflight, msg.id)

	if f.policy == config.StaleLatestWins {
		st.Loading = len(f.inflight) > 0
		if msg.id != f.issued {
			f.log.V(1).Info("discarding stale suggestions", "query", msg.query, "id", msg.id, "latest", f.issued)
			return true
		}
	} else {
		st.Loading = false
		if runeLen(st.Query) < MinFetchLength {
			// The query shrank while this request was out.
			return true
		}
	}

	if msg.err != nil {
		f.log.V(1).Info("suggestion fetch failed", "query", msg.query, "error", msg.err.Error())
		st.clearSuggestions()
		return true
	}
	st.Suggestions = msg.items
	st.Highlighted = -1
	st.ShowSuggestions = true
	return true
}

// invalidate marks every outstanding request as stale. Under
// StaleLatestWins their contexts are cancelled and loading ends.
func (f *Fetcher) invalidate(st *State) {
	f.issued++
	if f.policy != config.StaleLatestWins {
		return
	}
	f.CancelAll()
	st.Loading = false
}

// InFlight returns the number of unresolved requests.
func (f *Fetcher) InFlight() int {
	return len(f.inflight)
}

// CancelAll cancels every outstanding request; their results are ignored.
func (f *Fetcher) CancelAll() {
	for id, cancel := range f.inflight {
		cancel()
		delete(f.inflight, id)
	}
}

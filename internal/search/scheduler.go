package search

import (
	"net/url"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pantry/internal/location"
)

// DefaultURLDebounce is the quiet period before the typed query is written to
// the address.
const DefaultURLDebounce = 500 * time.Millisecond

// Timer is a cancellable pending callback.
type Timer interface {
	Stop() bool
}

// Clock arms timers. The real clock uses time.AfterFunc.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// RealClock returns the wall clock.
func RealClock() Clock { return realClock{} }

// Dispatcher posts a message onto the program's event queue. It must be safe
// to call from any goroutine; tea.Program.Send qualifies.
type Dispatcher func(tea.Msg)

// urlSyncMsg reports that the debounce for seq elapsed.
type urlSyncMsg struct {
	seq   uint64
	query string
}

// Scheduler debounces address updates. At most one timer is pending; each
// Schedule supersedes the previous one.
type Scheduler struct {
	clock Clock
	delay time.Duration

	mu       sync.Mutex
	dispatch Dispatcher
	timer    Timer
	seq      uint64
}

// NewScheduler returns a scheduler firing after delay on clock.
func NewScheduler(clock Clock, delay time.Duration) *Scheduler {
	if clock == nil {
		clock = RealClock()
	}
	if delay <= 0 {
		delay = DefaultURLDebounce
	}
	return &Scheduler{clock: clock, delay: delay}
}

// SetDispatcher sets where fired timers post their message.
func (s *Scheduler) SetDispatcher(d Dispatcher) {
	s.mu.Lock()
	s.dispatch = d
	s.mu.Unlock()
}

// Schedule cancels any pending timer and arms a new one for query.
func (s *Scheduler) Schedule(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.seq++
	msg := urlSyncMsg{seq: s.seq, query: query}
	s.timer = s.clock.AfterFunc(s.delay, func() {
		s.mu.Lock()
		d := s.dispatch
		if d == nil && s.seq == msg.seq {
			s.timer = nil
		}
		s.mu.Unlock()
		if d != nil {
			d(msg)
		}
	})
}

// Cancel stops the pending timer. A message already posted by a timer that
// fired is rejected by take.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.seq++
}

// Pending reports whether a timer is armed and not yet consumed.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

// take consumes msg if it belongs to the current timer.
func (s *Scheduler) take(msg urlSyncMsg) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer == nil || msg.seq != s.seq {
		return false
	}
	s.timer = nil
	return true
}

func (s *Scheduler) stopLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// syncParams returns params with search set to the trimmed query (removed
// when blank) and page dropped.
func syncParams(params url.Values, query string) url.Values {
	out := url.Values{}
	for k, v := range params {
		out[k] = append([]string(nil), v...)
	}
	if q := strings.TrimSpace(query); q != "" {
		out.Set(location.ParamSearch, q)
	} else {
		out.Del(location.ParamSearch)
	}
	out.Del(location.ParamPage)
	return out
}

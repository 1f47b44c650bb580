package search

import (
	"net/url"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"

	"github.com/five82/pantry/internal/config"
	"github.com/five82/pantry/internal/recipes"
)

// Address is the navigable location the controller writes the query to.
// *location.Location implements it.
type Address interface {
	Params() url.Values
	Navigate(params url.Values) bool
}

// Options configures a Controller.
type Options struct {
	Service      Suggester
	Address      Address
	Clock        Clock
	URLDebounce  time.Duration
	FetchTimeout time.Duration
	StalePolicy  config.StalePolicy
	Logger       logr.Logger
}

// Controller turns search input events into state changes, suggestion
// requests and address updates. All methods must be called from the event
// loop; only the scheduler's timers run elsewhere, and they post messages.
type Controller struct {
	st        State
	nav       Navigator
	fetcher   *Fetcher
	scheduler *Scheduler
	addr      Address
	log       logr.Logger

	mounted     bool
	unsubscribe func()
	inputRect   Rect
	panelRect   Rect
}

// NewController returns an unmounted controller.
func NewController(opts Options) *Controller {
	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	return &Controller{
		st:        newState(),
		fetcher:   NewFetcher(opts.Service, opts.FetchTimeout, opts.StalePolicy, log.WithName("fetcher")),
		scheduler: NewScheduler(opts.Clock, opts.URLDebounce),
		addr:      opts.Address,
		log:       log,
	}
}

// SetDispatcher routes fired debounce timers to d, normally tea.Program.Send.
func (c *Controller) SetDispatcher(d Dispatcher) {
	c.scheduler.SetDispatcher(d)
}

// Mount starts observing pointer presses on hub. Calling Mount twice is a
// no-op.
func (c *Controller) Mount(hub *PointerHub) {
	if c.mounted {
		return
	}
	c.mounted = true
	if hub != nil {
		c.unsubscribe = hub.Subscribe(c.onPointer)
	}
}

// Unmount releases the pointer subscription, the pending timer and every
// in-flight request. Late results and timers are ignored afterwards.
func (c *Controller) Unmount() {
	if !c.mounted {
		return
	}
	c.mounted = false
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.scheduler.Cancel()
	c.fetcher.CancelAll()
	c.st.Loading = false
}

// Live reports what the controller currently holds.
func (c *Controller) Live() Live {
	l := Live{Fetches: c.fetcher.InFlight()}
	if c.scheduler.Pending() {
		l.Timers = 1
	}
	if c.unsubscribe != nil {
		l.Listeners = 1
	}
	return l
}

// State returns a copy of the current state for rendering.
func (c *Controller) State() State {
	return c.st.clone()
}

// SetRegions records where the input and the open panel are drawn. Presses
// outside both close the panel.
func (c *Controller) SetRegions(input, panel Rect) {
	c.inputRect = input
	c.panelRect = panel
}

// OnInputChange handles an edit of the search input.
func (c *Controller) OnInputChange(text string) tea.Cmd {
	if !c.mounted {
		return nil
	}
	c.st.Query = text
	c.nav.Reset(&c.st)

	var cmd tea.Cmd
	if runeLen(text) >= MinPanelLength {
		c.st.ShowSuggestions = true
		cmd = c.fetcher.Fetch(&c.st, text)
	} else {
		c.st.ShowSuggestions = false
		c.st.clearSuggestions()
		c.fetcher.invalidate(&c.st)
	}
	c.scheduler.Schedule(text)
	return cmd
}

// OnSuggestionAccepted commits s as the query and navigates immediately.
func (c *Controller) OnSuggestionAccepted(s recipes.Suggestion) {
	if !c.mounted {
		return
	}
	c.st.Query = s.Title
	c.st.closePanel()
	c.scheduler.Cancel()
	c.fetcher.invalidate(&c.st)
	c.navigate(s.Title)
}

// OnClear empties the query and removes the search from the address.
func (c *Controller) OnClear() {
	if !c.mounted {
		return
	}
	c.st.Query = ""
	c.st.clearSuggestions()
	c.st.closePanel()
	c.scheduler.Cancel()
	c.fetcher.invalidate(&c.st)
	c.navigate("")
}

// OnKeyDown applies a navigation key.
func (c *Controller) OnKeyDown(key Key) {
	if !c.mounted {
		return
	}
	switch c.nav.Transition(&c.st, key) {
	case ActionAccept:
		if s, ok := c.st.Selected(); ok {
			c.OnSuggestionAccepted(s)
		}
	case ActionSubmit:
		c.scheduler.Schedule(c.st.Query)
	}
}

// OnSuggestionClick accepts row i.
func (c *Controller) OnSuggestionClick(i int) {
	if !c.mounted || i < 0 || i >= len(c.st.Suggestions) {
		return
	}
	c.OnSuggestionAccepted(c.st.Suggestions[i])
}

// OnHover highlights row i.
func (c *Controller) OnHover(i int) {
	if !c.mounted || !c.st.ShowSuggestions {
		return
	}
	c.nav.Hover(&c.st, i)
}

// OnToggleVisibility opens or closes the panel, typically on focus changes.
func (c *Controller) OnToggleVisibility(open bool) {
	if !c.mounted {
		return
	}
	if open {
		c.st.ShowSuggestions = true
		c.nav.Reset(&c.st)
		return
	}
	c.st.closePanel()
}

// Update consumes the controller's own messages. It reports whether msg was
// one of them and changed state.
func (c *Controller) Update(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case resultMsg:
		if !c.mounted {
			return false
		}
		changed := c.fetcher.apply(&c.st, msg)
		c.nav.Clamp(&c.st)
		return changed
	case urlSyncMsg:
		if !c.mounted || !c.scheduler.take(msg) {
			return false
		}
		c.navigate(msg.query)
		return true
	}
	return false
}

func (c *Controller) navigate(query string) {
	if c.addr == nil {
		return
	}
	params := syncParams(c.addr.Params(), query)
	if c.addr.Navigate(params) {
		c.log.V(1).Info("navigated", "search", params.Get("search"))
	}
}

func (c *Controller) onPointer(ev PointerEvent) {
	if !c.mounted || !c.st.ShowSuggestions {
		return
	}
	if c.inputRect.Contains(ev.X, ev.Y) || c.panelRect.Contains(ev.X, ev.Y) {
		return
	}
	c.st.closePanel()
}

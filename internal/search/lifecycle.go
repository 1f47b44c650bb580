package search

import "sync"

// Rect is a screen region in terminal cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return r.W > 0 && r.H > 0 &&
		x >= r.X && x < r.X+r.W &&
		y >= r.Y && y < r.Y+r.H
}

// PointerEvent is a pointer press anywhere on screen.
type PointerEvent struct {
	X, Y int
}

// PointerHub fans pointer presses out to subscribers. The root model
// publishes every press; components observe the ones outside themselves.
type PointerHub struct {
	mu     sync.Mutex
	subs   map[int]func(PointerEvent)
	nextID int
}

// NewPointerHub returns an empty hub.
func NewPointerHub() *PointerHub {
	return &PointerHub{subs: make(map[int]func(PointerEvent))}
}

// Subscribe registers fn and returns a func that removes it. The returned
// func may be called more than once.
func (h *PointerHub) Subscribe(fn func(PointerEvent)) func() {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = fn
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
}

// Publish delivers ev to every subscriber.
func (h *PointerHub) Publish(ev PointerEvent) {
	h.mu.Lock()
	fns := make([]func(PointerEvent), 0, len(h.subs))
	for _, fn := range h.subs {
		fns = append(fns, fn)
	}
	h.mu.Unlock()
	for _, fn := range fns {
		fn(ev)
	}
}

// Len returns the number of live subscriptions.
func (h *PointerHub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Live counts resources a mounted controller holds.
type Live struct {
	Timers    int
	Listeners int
	Fetches   int
}

// Zero reports whether nothing is held.
func (l Live) Zero() bool {
	return l.Timers == 0 && l.Listeners == 0 && l.Fetches == 0
}

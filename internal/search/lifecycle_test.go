package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 1, W: 3, H: 2}
	assert.True(t, r.Contains(2, 1))
	assert.True(t, r.Contains(4, 2))
	assert.False(t, r.Contains(5, 1))
	assert.False(t, r.Contains(2, 3))
	assert.False(t, r.Contains(1, 1))
	assert.False(t, Rect{}.Contains(0, 0))
}

func TestPointerHub_SubscribeUnsubscribe(t *testing.T) {
	hub := NewPointerHub()
	var got []PointerEvent
	unsub := hub.Subscribe(func(ev PointerEvent) { got = append(got, ev) })
	assert.Equal(t, 1, hub.Len())

	hub.Publish(PointerEvent{X: 1, Y: 2})
	unsub()
	unsub()
	hub.Publish(PointerEvent{X: 3, Y: 4})

	assert.Equal(t, []PointerEvent{{X: 1, Y: 2}}, got)
	assert.Equal(t, 0, hub.Len())
}

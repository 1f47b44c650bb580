package search

import (
	"net/url"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inbox struct{ msgs []tea.Msg }

func (b *inbox) post(msg tea.Msg) { b.msgs = append(b.msgs, msg) }

func TestScheduler_FiresAfterDelay(t *testing.T) {
	clock := &fakeClock{}
	var box inbox
	s := NewScheduler(clock, 500*time.Millisecond)
	s.SetDispatcher(box.post)

	s.Schedule("pizza")
	clock.Advance(499 * time.Millisecond)
	assert.Empty(t, box.msgs)
	assert.True(t, s.Pending())

	clock.Advance(time.Millisecond)
	require.Len(t, box.msgs, 1)
	msg := box.msgs[0].(urlSyncMsg)
	assert.Equal(t, "pizza", msg.query)
	assert.True(t, s.take(msg))
	assert.False(t, s.Pending())
}

func TestScheduler_RescheduleSupersedes(t *testing.T) {
	clock := &fakeClock{}
	var box inbox
	s := NewScheduler(clock, 500*time.Millisecond)
	s.SetDispatcher(box.post)

	s.Schedule("p")
	clock.Advance(300 * time.Millisecond)
	s.Schedule("pi")
	clock.Advance(300 * time.Millisecond)
	s.Schedule("piz")
	assert.Equal(t, 1, clock.armed())
	clock.Advance(500 * time.Millisecond)

	require.Len(t, box.msgs, 1)
	assert.Equal(t, "piz", box.msgs[0].(urlSyncMsg).query)
}

func TestScheduler_CancelRejectsLateMessage(t *testing.T) {
	clock := &fakeClock{}
	var box inbox
	s := NewScheduler(clock, time.Second)
	s.SetDispatcher(box.post)

	s.Schedule("pizza")
	clock.Advance(time.Second)
	require.Len(t, box.msgs, 1)

	s.Cancel()
	assert.False(t, s.take(box.msgs[0].(urlSyncMsg)))
	assert.False(t, s.Pending())
}

func TestScheduler_FiredWithoutDispatcherIsNotPending(t *testing.T) {
	clock := &fakeClock{}
	s := NewScheduler(clock, 500*time.Millisecond)

	s.Schedule("pizza")
	assert.True(t, s.Pending())
	clock.Advance(time.Second)

	assert.Zero(t, clock.armed())
	assert.False(t, s.Pending())
}

func TestScheduler_DefaultDelay(t *testing.T) {
	clock := &fakeClock{}
	var box inbox
	s := NewScheduler(clock, 0)
	s.SetDispatcher(box.post)
	s.Schedule("x")
	clock.Advance(DefaultURLDebounce - time.Millisecond)
	assert.Empty(t, box.msgs)
	clock.Advance(time.Millisecond)
	assert.Len(t, box.msgs, 1)
}

func TestSyncParams(t *testing.T) {
	base := url.Values{"page": {"3"}, "sort": {"new"}}

	got := syncParams(base, "  pizza ")
	assert.Equal(t, "pizza", got.Get("search"))
	assert.Empty(t, got.Get("page"))
	assert.Equal(t, "new", got.Get("sort"))
	assert.Equal(t, "3", base.Get("page"), "input must not be mutated")

	got = syncParams(url.Values{"search": {"old"}}, "   ")
	_, ok := got["search"]
	assert.False(t, ok)
}

package search

import (
	"context"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/pantry/internal/config"
	"github.com/five82/pantry/internal/recipes"
)

type ctxSuggester struct {
	deadline time.Time
	hasDL    bool
	block    bool
}

func (s *ctxSuggester) GetSuggestions(ctx context.Context, query string) ([]recipes.Suggestion, error) {
	s.deadline, s.hasDL = ctx.Deadline()
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return []recipes.Suggestion{{ID: "r1", Title: "Pizza Dough"}}, nil
}

func TestFetcher_RequestHasDeadline(t *testing.T) {
	svc := &ctxSuggester{}
	f := NewFetcher(svc, time.Minute, config.StaleLatestWins, logr.Discard())
	st := newState()

	cmd := f.Fetch(&st, "pizza")
	require.NotNil(t, cmd)
	assert.Equal(t, 1, f.InFlight())
	f.apply(&st, cmd().(resultMsg))

	assert.True(t, svc.hasDL)
	assert.WithinDuration(t, time.Now().Add(time.Minute), svc.deadline, 5*time.Second)
	assert.Equal(t, 0, f.InFlight())
	assert.True(t, st.ShowSuggestions)
}

func TestFetcher_CancelAllUnblocksRequest(t *testing.T) {
	svc := &ctxSuggester{block: true}
	f := NewFetcher(svc, time.Minute, config.StaleLatestWins, logr.Discard())
	st := newState()
	cmd := f.Fetch(&st, "pizza")

	done := make(chan resultMsg, 1)
	go func() { done <- cmd().(resultMsg) }()
	f.CancelAll()

	select {
	case msg := <-done:
		assert.ErrorIs(t, msg.err, context.Canceled)
		assert.False(t, f.apply(&st, msg))
	case <-time.After(2 * time.Second):
		t.Fatal("request was not cancelled")
	}
}

func TestFetcher_Defaults(t *testing.T) {
	f := NewFetcher(&ctxSuggester{}, 0, "", logr.Discard())
	assert.Equal(t, DefaultFetchTimeout, f.timeout)
	assert.Equal(t, config.StaleLatestWins, f.policy)
}

func TestFetcher_ShortQueryClosesPanel(t *testing.T) {
	f := NewFetcher(&ctxSuggester{}, 0, "", logr.Discard())
	st := newState()
	st.ShowSuggestions = true
	st.Suggestions = []recipes.Suggestion{{ID: "x"}}
	assert.Nil(t, f.Fetch(&st, "ab"))
	assert.False(t, st.ShowSuggestions)
	assert.Empty(t, st.Suggestions)
}

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-logr/logr"

	"github.com/five82/pantry/internal/recipes"
	"github.com/five82/pantry/internal/state"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second}, // Would be 32s, capped to 30s
		{"many failures capped", 10, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	// Verify that backoff never exceeds maxBackoff regardless of input
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 20; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, baseInterval, got, maxBackoff)
		}
	}
}

type fakeSource struct {
	favorites  int
	session    recipes.Session
	favErr     error
	sessionErr error
}

func (f *fakeSource) FavoritesCount(context.Context) (int, error) {
	return f.favorites, f.favErr
}

func (f *fakeSource) Session(context.Context) (recipes.Session, error) {
	return f.session, f.sessionErr
}

func TestRefresh_UpdatesStore(t *testing.T) {
	store := &state.Store{}
	src := &fakeSource{favorites: 4, session: recipes.Session{Authenticated: true, User: "ana"}}

	refresh(context.Background(), store, src, logr.Discard())

	snap := store.Snapshot()
	if !snap.HasData || snap.Favorites != 4 || snap.Session.User != "ana" {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRefresh_RecordsFailures(t *testing.T) {
	store := &state.Store{}
	src := &fakeSource{favErr: errors.New("down")}

	refresh(context.Background(), store, src, logr.Discard())
	refresh(context.Background(), store, src, logr.Discard())

	snap := store.Snapshot()
	if snap.ConsecutiveFailures != 2 || !snap.IsOffline() {
		t.Fatalf("expected offline after two failures, got %+v", snap)
	}

	src.favErr = nil
	src.sessionErr = errors.New("no session")
	refresh(context.Background(), store, src, logr.Discard())
	if got := store.Snapshot().ConsecutiveFailures; got != 3 {
		t.Fatalf("session failure not counted, got %d", got)
	}
}

func TestStartPoller_StopsWithContext(t *testing.T) {
	store := &state.Store{}
	ctx, cancel := context.WithCancel(context.Background())
	StartPoller(ctx, store, &fakeSource{favorites: 1}, time.Hour)

	deadline := time.Now().Add(2 * time.Second)
	for !store.Snapshot().HasData {
		if time.Now().After(deadline) {
			t.Fatal("poller never refreshed")
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
}

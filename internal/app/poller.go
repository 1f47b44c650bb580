package app

import (
	"context"
	"time"

	"github.com/go-logr/logr"

	"github.com/five82/pantry/internal/logging"
	"github.com/five82/pantry/internal/recipes"
	"github.com/five82/pantry/internal/state"
)

const (
	defaultPollInterval = 15 * time.Second
	maxBackoff          = 30 * time.Second
	refreshTimeout      = 5 * time.Second
)

// accountSource is the part of the recipe service the poller reads.
type accountSource interface {
	FavoritesCount(ctx context.Context) (int, error)
	Session(ctx context.Context) (recipes.Session, error)
}

// StartPoller launches a background goroutine that refreshes the navigation
// bar data. Consecutive failures back off exponentially up to maxBackoff. It
// returns immediately.
func StartPoller(ctx context.Context, store *state.Store, source accountSource, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	log := logging.FromContext(ctx).WithName("poller")
	go func() {
		for {
			refresh(ctx, store, source, log)
			wait := calculateBackoff(store.Snapshot().ConsecutiveFailures, interval)
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

// calculateBackoff doubles base for every consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	d := base
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}

func refresh(ctx context.Context, store *state.Store, source accountSource, log logr.Logger) {
	ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	favorites, err := source.FavoritesCount(ctx)
	if err != nil {
		store.Update(0, recipes.Session{}, err)
		log.Error(err, "favorites poll failed")
		return
	}
	session, err := source.Session(ctx)
	if err != nil {
		store.Update(0, recipes.Session{}, err)
		log.Error(err, "session poll failed")
		return
	}
	store.Update(favorites, session, nil)
}

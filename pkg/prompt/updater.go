package prompt

import (
	"context"
	"time"

	"github.com/pzsh/pzsh/internal/logging"
)

// StatusFunc reports the current git branch and dirty state. An empty
// branch means "not in a repository". The function runs on the updater's
// goroutine, never on the render path.
type StatusFunc func(ctx context.Context) (branch string, dirty bool, err error)

// Updater polls a StatusFunc on a fixed interval and writes the result into
// a git cache. It is the single writer; the renderer is the single reader.
type Updater struct {
	cache    *GitCache
	interval time.Duration
	status   StatusFunc
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewUpdater creates an updater for cache, polling fn every interval. The
// interval is the configured git cache lifetime.
func NewUpdater(cache *GitCache, interval time.Duration, fn StatusFunc) *Updater {
	return &Updater{
		cache:    cache,
		interval: interval,
		status:   fn,
	}
}

// Start launches the polling goroutine. The first poll happens immediately
// so the prompt picks up git state without waiting a full interval.
func (u *Updater) Start(ctx context.Context) {
	ctx, u.cancel = context.WithCancel(ctx)
	u.done = make(chan struct{})

	go func() {
		defer close(u.done)

		u.poll(ctx)

		ticker := time.NewTicker(u.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				u.poll(ctx)
			}
		}
	}()
}

func (u *Updater) poll(ctx context.Context) {
	branch, dirty, err := u.status(ctx)
	if err != nil {
		// Degraded output is fine; the stored value stays but is marked
		// stale.
		logging.Debug().Err(err).Msg("git status poll failed")
		u.cache.Invalidate()
		return
	}
	u.cache.Update(branch, dirty)
}

// Stop cancels polling and waits for the goroutine to exit.
func (u *Updater) Stop() {
	if u.cancel != nil {
		u.cancel()
		<-u.done
	}
}

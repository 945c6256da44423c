package sync

import (
	"context"
	gosync "sync"
	"time"

	"go.uber.org/zap"

	"github.com/matchday/matchday/internal/readiness"
)

// Clock caches the current date in canonical form so status derivation
// does not consult the host clock on every request. A background ticker
// refreshes the cache; when the date rolls over, subscribers are told so
// they can refetch statuses that depend on it.
type Clock struct {
	mu     gosync.RWMutex
	today  string
	now    func() time.Time
	hub    *Hub
	logger *zap.SugaredLogger
}

// NewClock creates a clock seeded from the host time.
func NewClock(hub *Hub, logger *zap.SugaredLogger) *Clock {
	c := &Clock{
		now:    time.Now,
		hub:    hub,
		logger: logger,
	}
	c.today = c.now().Format(readiness.ISODate)
	return c
}

// Today returns the cached current date as yyyy-mm-dd.
func (c *Clock) Today() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.today
}

// Start refreshes the cached date at the given interval until the context
// is cancelled.
func (c *Clock) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.refresh()
			}
		}
	}()
}

// refresh re-reads the host clock and notifies subscribers if the date
// changed.
func (c *Clock) refresh() {
	date := c.now().Format(readiness.ISODate)

	c.mu.Lock()
	changed := date != c.today
	c.today = date
	c.mu.Unlock()

	if changed {
		c.logger.Infow("date rolled over", "today", date)
		c.hub.PublishAll("day_changed", map[string]string{"today": date})
	}
}

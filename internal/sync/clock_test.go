package sync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClock_Today(t *testing.T) {
	hub := NewHub(zap.NewNop().Sugar())
	clock := NewClock(hub, zap.NewNop().Sugar())

	clock.now = func() time.Time {
		return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	}
	clock.refresh()

	assert.Equal(t, "2025-03-01", clock.Today())
}

func TestClock_RolloverNotifiesSubscribers(t *testing.T) {
	hub := NewHub(zap.NewNop().Sugar())
	clock := NewClock(hub, zap.NewNop().Sugar())

	current := time.Date(2025, 3, 1, 23, 50, 0, 0, time.UTC)
	clock.now = func() time.Time { return current }
	clock.refresh()

	sub := hub.subscribe("fc-thunder")
	defer hub.unsubscribe(sub)

	// Same day: no notification.
	current = time.Date(2025, 3, 1, 23, 59, 0, 0, time.UTC)
	clock.refresh()
	select {
	case event := <-sub.send:
		t.Fatalf("unexpected event before rollover: %+v", event)
	default:
	}

	// Midnight passed.
	current = time.Date(2025, 3, 2, 0, 10, 0, 0, time.UTC)
	clock.refresh()

	select {
	case event := <-sub.send:
		assert.Equal(t, "day_changed", event.Type)
		payload, ok := event.Payload.(map[string]string)
		require.True(t, ok)
		assert.Equal(t, "2025-03-02", payload["today"])
	case <-time.After(time.Second):
		t.Fatal("expected day_changed event after rollover")
	}

	assert.Equal(t, "2025-03-02", clock.Today())
}

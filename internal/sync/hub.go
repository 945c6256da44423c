// Package sync delivers team-scoped change events to websocket subscribers
// and keeps the schedule's "today" reference fresh.
package sync

import (
	"sync"

	"go.uber.org/zap"
)

const sendBufferSize = 64

// Event is the wire format pushed to subscribers.
type Event struct {
	Type    string      `json:"type"`
	Team    string      `json:"team"`
	Payload interface{} `json:"payload,omitempty"`
}

type subscriber struct {
	teamSlug string
	send     chan Event
}

// Hub fans events out to the subscribers of each team slug. Broadcast per
// team is serialized under the hub lock, so subscribers observe mutations
// in publish order. A subscriber that cannot keep up is dropped rather
// than allowed to stall the rest.
type Hub struct {
	mu          sync.Mutex
	subscribers map[string]map[*subscriber]struct{}
	logger      *zap.SugaredLogger
}

// NewHub creates an empty hub.
func NewHub(logger *zap.SugaredLogger) *Hub {
	return &Hub{
		subscribers: make(map[string]map[*subscriber]struct{}),
		logger:      logger,
	}
}

// Publish sends an event to every subscriber of the team.
func (h *Hub) Publish(teamSlug, eventType string, payload interface{}) {
	event := Event{Type: eventType, Team: teamSlug, Payload: payload}

	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subscribers[teamSlug] {
		h.deliver(sub, event)
	}
}

// PublishAll sends an event to every subscriber of every team. Used for
// global notifications such as the day rolling over.
func (h *Hub) PublishAll(eventType string, payload interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for teamSlug, subs := range h.subscribers {
		event := Event{Type: eventType, Team: teamSlug, Payload: payload}
		for sub := range subs {
			h.deliver(sub, event)
		}
	}
}

// deliver pushes an event without blocking. Callers must hold h.mu.
func (h *Hub) deliver(sub *subscriber, event Event) {
	select {
	case sub.send <- event:
	default:
		h.logger.Warnw("dropping slow subscriber", "team", sub.teamSlug)
		h.remove(sub)
	}
}

// subscribe registers a new subscriber for a team slug.
func (h *Hub) subscribe(teamSlug string) *subscriber {
	sub := &subscriber{
		teamSlug: teamSlug,
		send:     make(chan Event, sendBufferSize),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.subscribers[teamSlug]
	if !ok {
		subs = make(map[*subscriber]struct{})
		h.subscribers[teamSlug] = subs
	}
	subs[sub] = struct{}{}
	return sub
}

// unsubscribe removes a subscriber and closes its channel.
func (h *Hub) unsubscribe(sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(sub)
}

// remove deletes a subscriber. Callers must hold h.mu.
func (h *Hub) remove(sub *subscriber) {
	subs, ok := h.subscribers[sub.teamSlug]
	if !ok {
		return
	}
	if _, ok := subs[sub]; !ok {
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(h.subscribers, sub.teamSlug)
	}
	close(sub.send)
}

// SubscriberCount reports how many clients follow the given team.
func (h *Hub) SubscriberCount(teamSlug string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers[teamSlug])
}

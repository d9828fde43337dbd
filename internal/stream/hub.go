// Package stream provides fan-out distribution of strategy lifecycle
// events to connected dashboard clients.
package stream

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventType identifies a strategy lifecycle event.
type EventType string

const (
	EventStrategyCreated  EventType = "strategy_created"
	EventStrategyDeleted  EventType = "strategy_deleted"
	EventSubmissionFailed EventType = "submission_failed"
)

// Event is one strategy lifecycle notification.
type Event struct {
	Type       EventType `json:"type"`
	StrategyID string    `json:"strategy_id,omitempty"`
	Name       string    `json:"name,omitempty"`
	Symbol     string    `json:"symbol,omitempty"`
	Message    string    `json:"message,omitempty"`
	Time       time.Time `json:"time"`
}

// HubConfig holds configuration for the event hub.
type HubConfig struct {
	// SubscriberBufferSize is the size of each subscriber's channel buffer.
	SubscriberBufferSize int
}

// DefaultHubConfig returns the default hub configuration.
func DefaultHubConfig() HubConfig {
	return HubConfig{SubscriberBufferSize: 64}
}

// Subscriber is one registered event consumer.
type Subscriber struct {
	ID           string
	Channel      chan Event
	DroppedCount int
	CreatedAt    time.Time
}

// Hub fans strategy events out to subscribers. A slow consumer never
// blocks publishing; events it cannot keep up with are dropped and
// counted.
type Hub struct {
	config      HubConfig
	mu          sync.RWMutex
	subscribers map[string]*Subscriber

	// Metrics
	published uint64
	delivered uint64
	dropped   uint64
}

// NewHub creates a hub with default configuration.
func NewHub() *Hub {
	return NewHubWithConfig(DefaultHubConfig())
}

// NewHubWithConfig creates a hub with custom configuration.
func NewHubWithConfig(config HubConfig) *Hub {
	return &Hub{
		config:      config,
		subscribers: make(map[string]*Subscriber),
	}
}

// Subscribe registers a consumer and returns its event channel together
// with an unsubscribe function.
func (h *Hub) Subscribe() (*Subscriber, func()) {
	sub := &Subscriber{
		ID:        uuid.NewString(),
		Channel:   make(chan Event, h.config.SubscriberBufferSize),
		CreatedAt: time.Now(),
	}

	h.mu.Lock()
	h.subscribers[sub.ID] = sub
	h.mu.Unlock()

	return sub, func() { h.unsubscribe(sub.ID) }
}

func (h *Hub) unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if sub, ok := h.subscribers[id]; ok {
		delete(h.subscribers, id)
		close(sub.Channel)
	}
}

// Publish delivers an event to every subscriber.
func (h *Hub) Publish(event Event) {
	if event.Time.IsZero() {
		event.Time = time.Now()
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.published++
	for _, sub := range h.subscribers {
		select {
		case sub.Channel <- event:
			h.delivered++
		default:
			sub.DroppedCount++
			h.dropped++
		}
	}
}

// SubscriberCount returns the number of active subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// Stats returns the published/delivered/dropped counters.
func (h *Hub) Stats() (published, delivered, dropped uint64) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.published, h.delivered, h.dropped
}

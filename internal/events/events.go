// Package events provides the in-process refresh bus. Publishers announce
// that a collection changed; subscribers re-fetch from the store rather than
// receiving payloads, so there is exactly one source of truth.
package events

import "sync"

// Topic identifies which collection changed.
type Topic string

const (
	TeamsUpdated    Topic = "teams-updated"
	BookingsUpdated Topic = "bookings-updated"
	PeopleUpdated   Topic = "people-updated"
	ProductsUpdated Topic = "products-updated"
)

// Bus is a minimal publish/subscribe hub. Safe for concurrent use.
type Bus struct {
	mu   sync.Mutex
	subs map[Topic][]chan Topic
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Topic][]chan Topic)}
}

// Subscribe registers interest in one or more topics and returns the channel
// notifications arrive on. The channel is buffered; a subscriber that falls
// behind drops notifications rather than blocking publishers, which is fine
// because every notification means the same thing: re-fetch.
func (b *Bus) Subscribe(topics ...Topic) <-chan Topic {
	ch := make(chan Topic, 8)

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, t := range topics {
		b.subs[t] = append(b.subs[t], ch)
	}

	return ch
}

// Publish notifies every subscriber of the topic. Never blocks.
func (b *Bus) Publish(topic Topic) {
	b.mu.Lock()
	subs := b.subs[topic]
	b.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- topic:
		default:
		}
	}
}

// Package events provides the synchronous in-process topic bus the entity editor talks through.
package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	"github.com/google/uuid"
)

// Topic names a notification stream.
type Topic string

const (
	// EditEntityDetails asks the editor to load an entity for editing.
	EditEntityDetails Topic = "EditEntityDetails"
	// SelectEntity announces an entity that other components may select.
	SelectEntity Topic = "SelectEntity"
	// EntitySelected is the topic results of SelectEntity are expected on.
	EntitySelected Topic = "EntitySelected"
)

// Notification is the unit of delivery on the bus.
type Notification struct {
	ID          string                        `json:"id"`
	Topic       Topic                         `json:"topic"`
	UserID      string                        `json:"userID"`
	Request     domain.EntityOperationRequest `json:"request"`
	PublishedAt time.Time                     `json:"publishedAt"`
}

// Handler receives notifications. It runs on the publisher's goroutine.
type Handler func(ctx context.Context, n Notification) error

type subscription struct {
	id int
	h  Handler
}

// Bus delivers notifications synchronously to the handlers subscribed to their topic,
// then to the handlers subscribed to every topic, each in subscription order.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	topics map[Topic][]subscription
	all    []subscription
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{topics: make(map[Topic][]subscription)}
}

// Subscribe registers h for topic and returns a function removing it again.
func (b *Bus) Subscribe(topic Topic, h Handler) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.topics[topic] = append(b.topics[topic], subscription{id: id, h: h})
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.topics[topic] = remove(b.topics[topic], id)
	}
}

// SubscribeAll registers h for every topic.
func (b *Bus) SubscribeAll(h Handler) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.all = append(b.all, subscription{id: id, h: h})
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.all = remove(b.all, id)
	}
}

// Publish delivers n to every matching handler. Missing ids and timestamps are filled in.
// All handlers run even if one fails; their errors are joined.
func (b *Bus) Publish(ctx context.Context, n Notification) error {
	if n.Topic == "" {
		return errors.New("notification topic is required")
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.PublishedAt.IsZero() {
		n.PublishedAt = time.Now()
	}

	// Snapshot under the lock so handlers may subscribe or publish themselves.
	b.mu.RLock()
	handlers := make([]subscription, 0, len(b.topics[n.Topic])+len(b.all))
	handlers = append(handlers, b.topics[n.Topic]...)
	handlers = append(handlers, b.all...)
	b.mu.RUnlock()

	var errs []error
	for _, s := range handlers {
		if err := s.h(ctx, n); err != nil {
			errs = append(errs, fmt.Errorf("%s handler: %w", n.Topic, err))
		}
	}
	return errors.Join(errs...)
}

func remove(subs []subscription, id int) []subscription {
	out := subs[:0:0]
	for _, s := range subs {
		if s.id != id {
			out = append(out, s)
		}
	}
	return out
}

// EntityOperation builds the before/after notification: published on requestTopic, it
// tells receivers to answer on expectedTopic.
func EntityOperation(userID string, entity domain.Entity, requestTopic, expectedTopic Topic) Notification {
	return Notification{
		Topic:  requestTopic,
		UserID: userID,
		Request: domain.EntityOperationRequest{
			SelectedEntity: entity.Clone(),
			ExpectedEvent:  string(expectedTopic),
		},
	}
}

// Reply builds the direct answer to a pending request, published on the topic the
// requester expects and tagged with its source.
func Reply(userID string, request domain.EntityOperationRequest, entity domain.Entity) Notification {
	return Notification{
		Topic:  Topic(request.ExpectedEvent),
		UserID: userID,
		Request: domain.EntityOperationRequest{
			SelectedEntity: entity.Clone(),
			Source:         request.Source,
		},
	}
}

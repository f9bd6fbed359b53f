package events

import (
	"context"
	"sync"
)

// Outbox keeps the most recent notifications per user so HTTP clients can poll them.
type Outbox struct {
	mu    sync.Mutex
	size  int
	boxes map[string][]Notification
}

// NewOutbox creates an outbox holding at most size notifications per user.
func NewOutbox(size int) *Outbox {
	if size <= 0 {
		size = 1
	}
	return &Outbox{size: size, boxes: make(map[string][]Notification)}
}

// Handle is a bus Handler recording n for its user. Begin-edit requests are inbound
// and not recorded.
func (o *Outbox) Handle(_ context.Context, n Notification) error {
	if n.UserID == "" || n.Topic == EditEntityDetails {
		return nil
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	box := append(o.boxes[n.UserID], n)
	if len(box) > o.size {
		box = box[len(box)-o.size:]
	}
	o.boxes[n.UserID] = box
	return nil
}

// List returns the user's notifications, oldest first.
func (o *Outbox) List(userID string) []Notification {
	o.mu.Lock()
	defer o.mu.Unlock()
	box := o.boxes[userID]
	out := make([]Notification, len(box))
	copy(out, box)
	return out
}

// Drain returns and forgets the user's notifications.
func (o *Outbox) Drain(userID string) []Notification {
	o.mu.Lock()
	defer o.mu.Unlock()
	box := o.boxes[userID]
	delete(o.boxes, userID)
	if box == nil {
		return []Notification{}
	}
	return box
}

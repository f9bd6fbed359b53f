package editor

import (
	"context"
	"fmt"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/apperrors"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/events"
)

// Dispatcher routes begin-edit requests from the bus to the editor of the requesting user.
type Dispatcher struct {
	bus         *events.Bus
	editors     *Registry
	unsubscribe func()
}

// NewDispatcher creates a dispatcher. Call Start to subscribe it.
func NewDispatcher(bus *events.Bus, editors *Registry) *Dispatcher {
	return &Dispatcher{bus: bus, editors: editors}
}

// Start subscribes to EditEntityDetails.
func (d *Dispatcher) Start() {
	if d.unsubscribe != nil {
		return
	}
	d.unsubscribe = d.bus.Subscribe(events.EditEntityDetails, d.handle)
}

// Stop unsubscribes again.
func (d *Dispatcher) Stop() {
	if d.unsubscribe != nil {
		d.unsubscribe()
		d.unsubscribe = nil
	}
}

// RequestEdit publishes a begin-edit request on behalf of userID. Errors of the
// receiving editor are returned.
func (d *Dispatcher) RequestEdit(ctx context.Context, userID string, req domain.EntityOperationRequest) error {
	return d.bus.Publish(ctx, events.Notification{
		Topic:   events.EditEntityDetails,
		UserID:  userID,
		Request: req,
	})
}

func (d *Dispatcher) handle(ctx context.Context, n events.Notification) error {
	if n.UserID == "" {
		return fmt.Errorf("%w: begin-edit request without user", apperrors.ErrValidation)
	}
	return d.editors.Do(n.UserID, func(e *Editor) error {
		return e.BeginEdit(ctx, n.Request)
	})
}

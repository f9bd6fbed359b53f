package repositories

import (
	"context"
	"time"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
)

// TicketTypeReader defines read operations for ticket types
type TicketTypeReader interface {
	// FindTicketTypeByID retrieves a ticket type with its entity type assignments.
	FindTicketTypeByID(ctx context.Context, ticketTypeID int64) (*domain.TicketType, error)
}

// TicketTypeWriter defines write operations for ticket types
type TicketTypeWriter interface {
	// SaveTicketType inserts a ticket type and its assignments atomically.
	SaveTicketType(ctx context.Context, ticketType domain.TicketType) (int64, error)
}

// TicketTypeRepositoryFacade combines the ticket type repository interfaces
type TicketTypeRepositoryFacade interface {
	TicketTypeReader
	TicketTypeWriter
}

// TicketWriter defines write operations on tickets
type TicketWriter interface {
	// UpdateAccountOfOpenTickets points every open ticket referencing entityID at accountID.
	// It returns the number of ticket assignments changed.
	UpdateAccountOfOpenTickets(ctx context.Context, entityID int64, accountID int64, userID string, now time.Time) (int64, error)
}

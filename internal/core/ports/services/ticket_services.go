package services

import (
	"context"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/dto"
)

// TicketTypeSvc manages ticket types.
type TicketTypeSvc interface {
	CreateTicketType(ctx context.Context, req dto.CreateTicketTypeRequest, userID string) (*domain.TicketType, error)
	GetTicketTypeByID(ctx context.Context, ticketTypeID int64) (*domain.TicketType, error)
}

// TicketSvcFacade combines all ticket-related service interfaces
type TicketSvcFacade interface {
	TicketTypeSvc
	TicketAccountUpdaterSvc
}

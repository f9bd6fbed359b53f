package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/apperrors"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	portsrepo "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/ports/repositories"
	portssvc "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/ports/services"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/dto"
)

type ticketService struct {
	BaseService
	ticketTypeRepo portsrepo.TicketTypeRepositoryFacade
	ticketRepo     portsrepo.TicketWriter
	entityTypeRepo portsrepo.EntityTypeReader
	cache          typeCacheInvalidator
}

// NewTicketService creates the service managing ticket types and the entity accounts of open tickets.
func NewTicketService(ticketTypeRepo portsrepo.TicketTypeRepositoryFacade, ticketRepo portsrepo.TicketWriter, entityTypeRepo portsrepo.EntityTypeReader, cache typeCacheInvalidator, permissions portssvc.PermissionCheckerSvc) portssvc.TicketSvcFacade {
	return &ticketService{
		BaseService:    BaseService{Permissions: permissions},
		ticketTypeRepo: ticketTypeRepo,
		ticketRepo:     ticketRepo,
		entityTypeRepo: entityTypeRepo,
		cache:          cache,
	}
}

var _ portssvc.TicketSvcFacade = (*ticketService)(nil)

func (s *ticketService) CreateTicketType(ctx context.Context, req dto.CreateTicketTypeRequest, userID string) (*domain.TicketType, error) {
	if err := s.RequirePermission(ctx, userID, domain.PermissionManageEntityTypes); err != nil {
		return nil, err
	}

	assignments := make([]int64, 0, len(req.EntityTypeAssignments))
	for _, id := range req.EntityTypeAssignments {
		if slices.Contains(assignments, id) {
			continue
		}
		if _, err := s.entityTypeRepo.FindEntityTypeByID(ctx, id); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: entity type %d does not exist", apperrors.ErrValidation, id)
			}
			return nil, err
		}
		assignments = append(assignments, id)
	}

	ticketType := domain.TicketType{Name: req.Name, EntityTypeAssignments: assignments}
	ticketType.Stamp(userID, time.Now())

	id, err := s.ticketTypeRepo.SaveTicketType(ctx, ticketType)
	if err != nil {
		s.LogError(ctx, err, "Failed to save ticket type", slog.String("name", ticketType.Name))
		return nil, err
	}
	ticketType.ID = id
	s.cache.InvalidateTicketType(id)

	s.LogInfo(ctx, "Ticket type created", slog.Int64("ticket_type_id", id))
	return &ticketType, nil
}

func (s *ticketService) GetTicketTypeByID(ctx context.Context, ticketTypeID int64) (*domain.TicketType, error) {
	ticketType, err := s.ticketTypeRepo.FindTicketTypeByID(ctx, ticketTypeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find ticket type", slog.Int64("ticket_type_id", ticketTypeID))
		}
		return nil, err
	}
	return ticketType, nil
}

// UpdateAccountOfOpenTickets points the open tickets of entity at its current account.
func (s *ticketService) UpdateAccountOfOpenTickets(ctx context.Context, entity domain.Entity, userID string) error {
	if entity.IsNew() {
		return fmt.Errorf("%w: entity must be saved before its tickets are updated", apperrors.ErrValidation)
	}
	updated, err := s.ticketRepo.UpdateAccountOfOpenTickets(ctx, entity.ID, entity.AccountID, userID, time.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to update open tickets", slog.Int64("entity_id", entity.ID))
		return err
	}
	s.LogInfo(ctx, "Open tickets moved to entity account",
		slog.Int64("entity_id", entity.ID),
		slog.Int64("account_id", entity.AccountID),
		slog.Int64("tickets", updated))
	return nil
}

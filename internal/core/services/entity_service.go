package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/apperrors"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	portsrepo "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/ports/repositories"
	portssvc "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/ports/services"
)

type entityService struct {
	BaseService
	entityRepo portsrepo.EntityRepositoryFacade
}

// NewEntityService creates the service loading and storing entities.
func NewEntityService(entityRepo portsrepo.EntityRepositoryFacade) portssvc.EntitySvcFacade {
	return &entityService{entityRepo: entityRepo}
}

var _ portssvc.EntitySvcFacade = (*entityService)(nil)

func (s *entityService) GetEntityByID(ctx context.Context, entityID int64) (*domain.Entity, error) {
	entity, err := s.entityRepo.FindEntityByID(ctx, entityID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find entity by ID", slog.Int64("entity_id", entityID))
		}
		return nil, err
	}
	return entity, nil
}

// SaveEntity inserts entity when it has no id yet and updates it otherwise.
func (s *entityService) SaveEntity(ctx context.Context, entity *domain.Entity, userID string) error {
	if entity.EntityTypeID <= 0 {
		return fmt.Errorf("%w: entity type is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(entity.Name) == "" {
		return fmt.Errorf("%w: entity name is required", apperrors.ErrValidation)
	}
	if entity.CustomData == nil {
		entity.CustomData = domain.CustomData{}
	}
	entity.Stamp(userID, time.Now())

	if entity.IsNew() {
		id, err := s.entityRepo.SaveEntity(ctx, *entity)
		if err != nil {
			s.LogError(ctx, err, "Failed to insert entity", slog.String("name", entity.Name))
			return fmt.Errorf("%w: insert entity %q: %w", apperrors.ErrStorage, entity.Name, err)
		}
		entity.ID = id
		s.LogInfo(ctx, "Entity created", slog.Int64("entity_id", id), slog.Int64("entity_type_id", entity.EntityTypeID))
		return nil
	}

	if err := s.entityRepo.UpdateEntity(ctx, *entity); err != nil {
		s.LogError(ctx, err, "Failed to update entity", slog.Int64("entity_id", entity.ID))
		return fmt.Errorf("%w: update entity %d: %w", apperrors.ErrStorage, entity.ID, err)
	}
	s.LogDebug(ctx, "Entity updated", slog.Int64("entity_id", entity.ID))
	return nil
}

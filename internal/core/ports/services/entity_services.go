package services

import (
	"context"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/dto"
)

// EntityReaderSvc defines read operations for entities
type EntityReaderSvc interface {
	GetEntityByID(ctx context.Context, entityID int64) (*domain.Entity, error)
}

// EntitySvcFacade combines all entity-related service interfaces
type EntitySvcFacade interface {
	EntityReaderSvc
	EntityStorageSvc
}

// EntityTypeSvcFacade manages entity type configuration.
type EntityTypeSvcFacade interface {
	CreateEntityType(ctx context.Context, req dto.CreateEntityTypeRequest, userID string) (*domain.EntityType, error)
	GetEntityTypeByID(ctx context.Context, entityTypeID int64) (*domain.EntityType, error)
	ListEntityTypes(ctx context.Context) ([]domain.EntityType, error)
}

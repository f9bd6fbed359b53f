package repositories

import (
	"context"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
)

// EntityReader defines read operations for entity data
type EntityReader interface {
	// FindEntityByID retrieves a specific entity by its unique identifier.
	FindEntityByID(ctx context.Context, entityID int64) (*domain.Entity, error)
}

// EntityWriter defines write operations for entity data
type EntityWriter interface {
	// SaveEntity inserts a new entity and returns the generated id.
	SaveEntity(ctx context.Context, entity domain.Entity) (int64, error)

	// UpdateEntity updates an existing entity, including its account link and custom data.
	UpdateEntity(ctx context.Context, entity domain.Entity) error
}

// EntityRepositoryFacade combines all entity-related repository interfaces
type EntityRepositoryFacade interface {
	EntityReader
	EntityWriter
}

// EntityTypeReader defines read operations for entity type data
type EntityTypeReader interface {
	// FindEntityTypeByID retrieves an entity type including its custom field schema.
	FindEntityTypeByID(ctx context.Context, entityTypeID int64) (*domain.EntityType, error)

	// ListEntityTypes retrieves all entity types ordered by name.
	ListEntityTypes(ctx context.Context) ([]domain.EntityType, error)
}

// EntityTypeWriter defines write operations for entity type data
type EntityTypeWriter interface {
	// SaveEntityType inserts a new entity type and returns the generated id.
	SaveEntityType(ctx context.Context, entityType domain.EntityType) (int64, error)
}

// EntityTypeRepositoryFacade combines all entity type repository interfaces
type EntityTypeRepositoryFacade interface {
	EntityTypeReader
	EntityTypeWriter
}

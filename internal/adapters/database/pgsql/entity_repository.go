package pgsql

import (
	"context"
	"fmt"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/apperrors"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	portsrepo "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/ports/repositories"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/models"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxEntityRepository stores entities; custom data lives in a JSONB column.
type PgxEntityRepository struct {
	BaseRepository
}

// newPgxEntityRepository creates a new repository for entity data.
func newPgxEntityRepository(pool *pgxpool.Pool) portsrepo.EntityRepositoryFacade {
	return &PgxEntityRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.EntityRepositoryFacade = (*PgxEntityRepository)(nil)

func (r *PgxEntityRepository) SaveEntity(ctx context.Context, entity domain.Entity) (int64, error) {
	m := mapping.ToModelEntity(entity)
	query := `
		INSERT INTO entities (entity_type_id, name, account_id, custom_data, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING entity_id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.EntityTypeID,
		m.Name,
		m.AccountID,
		m.CustomData,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	).Scan(&id)
	if err != nil {
		return 0, mapWriteError(err, fmt.Sprintf("entity %q", m.Name))
	}
	return id, nil
}

func (r *PgxEntityRepository) UpdateEntity(ctx context.Context, entity domain.Entity) error {
	m := mapping.ToModelEntity(entity)
	query := `
		UPDATE entities
		SET name = $2, account_id = $3, custom_data = $4, last_updated_at = $5, last_updated_by = $6
		WHERE entity_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.EntityID,
		m.Name,
		m.AccountID,
		m.CustomData,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("entity %d", m.EntityID))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: entity %d", apperrors.ErrNotFound, m.EntityID)
	}
	return nil
}

func (r *PgxEntityRepository) FindEntityByID(ctx context.Context, entityID int64) (*domain.Entity, error) {
	query := `
		SELECT entity_id, entity_type_id, name, account_id, custom_data, created_at, created_by, last_updated_at, last_updated_by
		FROM entities
		WHERE entity_id = $1;
	`
	var m models.Entity
	err := r.Pool.QueryRow(ctx, query, entityID).Scan(
		&m.EntityID,
		&m.EntityTypeID,
		&m.Name,
		&m.AccountID,
		&m.CustomData,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, mapReadError(err, fmt.Sprintf("entity %d", entityID))
	}
	entity := mapping.ToDomainEntity(m)
	return &entity, nil
}

package pgsql

import (
	"context"
	"fmt"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	portsrepo "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/ports/repositories"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/models"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const entityTypeColumns = `entity_type_id, name, entity_name, primary_field_name, primary_field_format, account_type_id,
		account_name_template, custom_fields, created_at, created_by, last_updated_at, last_updated_by`

// PgxEntityTypeRepository stores entity types; the custom field schema lives in a JSONB column.
type PgxEntityTypeRepository struct {
	BaseRepository
}

// newPgxEntityTypeRepository creates a new repository for entity types.
func newPgxEntityTypeRepository(pool *pgxpool.Pool) portsrepo.EntityTypeRepositoryFacade {
	return &PgxEntityTypeRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.EntityTypeRepositoryFacade = (*PgxEntityTypeRepository)(nil)

func (r *PgxEntityTypeRepository) SaveEntityType(ctx context.Context, entityType domain.EntityType) (int64, error) {
	m := mapping.ToModelEntityType(entityType)
	query := `
		INSERT INTO entity_types (name, entity_name, primary_field_name, primary_field_format, account_type_id,
			account_name_template, custom_fields, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING entity_type_id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.Name,
		m.EntityName,
		m.PrimaryFieldName,
		m.PrimaryFieldFormat,
		m.AccountTypeID,
		m.AccountNameTemplate,
		m.CustomFields,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	).Scan(&id)
	if err != nil {
		return 0, mapWriteError(err, fmt.Sprintf("entity type %q", m.Name))
	}
	return id, nil
}

func (r *PgxEntityTypeRepository) FindEntityTypeByID(ctx context.Context, entityTypeID int64) (*domain.EntityType, error) {
	query := "SELECT " + entityTypeColumns + " FROM entity_types WHERE entity_type_id = $1;"
	m, err := scanEntityType(r.Pool.QueryRow(ctx, query, entityTypeID))
	if err != nil {
		return nil, mapReadError(err, fmt.Sprintf("entity type %d", entityTypeID))
	}
	entityType := mapping.ToDomainEntityType(m)
	return &entityType, nil
}

func (r *PgxEntityTypeRepository) ListEntityTypes(ctx context.Context) ([]domain.EntityType, error) {
	query := "SELECT " + entityTypeColumns + " FROM entity_types ORDER BY name;"
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query entity types: %w", err)
	}
	defer rows.Close()

	entityTypes := []domain.EntityType{}
	for rows.Next() {
		m, err := scanEntityType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entity type: %w", err)
		}
		entityTypes = append(entityTypes, mapping.ToDomainEntityType(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entity types: %w", err)
	}
	return entityTypes, nil
}

func scanEntityType(row pgx.Row) (models.EntityType, error) {
	var m models.EntityType
	err := row.Scan(
		&m.EntityTypeID,
		&m.Name,
		&m.EntityName,
		&m.PrimaryFieldName,
		&m.PrimaryFieldFormat,
		&m.AccountTypeID,
		&m.AccountNameTemplate,
		&m.CustomFields,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

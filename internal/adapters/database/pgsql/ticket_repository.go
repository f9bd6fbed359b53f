package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	portsrepo "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/ports/repositories"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/models"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTicketTypeRepository struct {
	BaseRepository
}

func newPgxTicketTypeRepository(pool *pgxpool.Pool) portsrepo.TicketTypeRepositoryFacade {
	return &PgxTicketTypeRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TicketTypeRepositoryFacade = (*PgxTicketTypeRepository)(nil)

// SaveTicketType inserts the ticket type and its entity type assignments in one transaction.
func (r *PgxTicketTypeRepository) SaveTicketType(ctx context.Context, ticketType domain.TicketType) (id int64, err error) {
	m := mapping.ToModelTicketType(ticketType)

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	query := `
		INSERT INTO ticket_types (name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ticket_type_id;
	`
	if err = tx.QueryRow(ctx, query,
		m.Name,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	).Scan(&id); err != nil {
		return 0, mapWriteError(err, fmt.Sprintf("ticket type %q", m.Name))
	}

	batch := &pgx.Batch{}
	for _, entityTypeID := range m.EntityTypeIDs {
		batch.Queue("INSERT INTO ticket_type_entity_types (ticket_type_id, entity_type_id) VALUES ($1, $2);", id, entityTypeID)
	}
	if batch.Len() > 0 {
		if err = tx.SendBatch(ctx, batch).Close(); err != nil {
			return 0, mapWriteError(err, fmt.Sprintf("entity type assignments of ticket type %q", m.Name))
		}
	}

	if err = r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return id, nil
}

// FindTicketTypeByID loads a ticket type together with its assigned entity type ids.
func (r *PgxTicketTypeRepository) FindTicketTypeByID(ctx context.Context, ticketTypeID int64) (*domain.TicketType, error) {
	query := `
		SELECT ticket_type_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM ticket_types
		WHERE ticket_type_id = $1;
	`
	var m models.TicketType
	err := r.Pool.QueryRow(ctx, query, ticketTypeID).Scan(
		&m.TicketTypeID,
		&m.Name,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, mapReadError(err, fmt.Sprintf("ticket type %d", ticketTypeID))
	}

	rows, err := r.Pool.Query(ctx,
		"SELECT entity_type_id FROM ticket_type_entity_types WHERE ticket_type_id = $1 ORDER BY entity_type_id;",
		ticketTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments of ticket type %d: %w", ticketTypeID, err)
	}
	m.EntityTypeIDs, err = pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("failed to scan assignments of ticket type %d: %w", ticketTypeID, err)
	}

	ticketType := mapping.ToDomainTicketType(m)
	return &ticketType, nil
}

type PgxTicketRepository struct {
	BaseRepository
}

func newPgxTicketRepository(pool *pgxpool.Pool) portsrepo.TicketWriter {
	return &PgxTicketRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TicketWriter = (*PgxTicketRepository)(nil)

// UpdateAccountOfOpenTickets re-points the entity assignments of every open ticket at accountID
// and touches the audit columns of the affected tickets.
func (r *PgxTicketRepository) UpdateAccountOfOpenTickets(ctx context.Context, entityID int64, accountID int64, userID string, now time.Time) (int64, error) {
	query := `
		WITH changed AS (
			UPDATE ticket_entities te
			SET account_id = $2
			FROM tickets t
			WHERE te.ticket_id = t.ticket_id
			  AND te.entity_id = $1
			  AND NOT t.is_closed
			RETURNING te.ticket_id
		)
		UPDATE tickets
		SET last_updated_at = $3, last_updated_by = $4
		WHERE ticket_id IN (SELECT ticket_id FROM changed);
	`
	tag, err := r.Pool.Exec(ctx, query, entityID, accountID, now, userID)
	if err != nil {
		return 0, mapWriteError(err, fmt.Sprintf("open tickets of entity %d", entityID))
	}
	return tag.RowsAffected(), nil
}

package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/apperrors"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	portsrepo "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/ports/repositories"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/models"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `user_id, username, password_hash, name, permissions,
		created_at, created_by, last_updated_at, last_updated_by, deleted_at`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (user_id, username, password_hash, name, permissions, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Username,
		m.PasswordHash,
		m.Name,
		m.Permissions,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("user %q", m.Username))
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE user_id = $1 AND deleted_at IS NULL;"
	return r.findOne(ctx, query, userID, "user "+userID)
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE username = $1 AND deleted_at IS NULL;"
	return r.findOne(ctx, query, username, fmt.Sprintf("user %q", username))
}

func (r *PgxUserRepository) findOne(ctx context.Context, query string, arg any, what string) (*domain.User, error) {
	var m models.User
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&m.UserID,
		&m.Username,
		&m.PasswordHash,
		&m.Name,
		&m.Permissions,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	if err != nil {
		return nil, mapReadError(err, what)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) UpdateUserPermissions(ctx context.Context, userID string, permissions []string, updatedBy string, now time.Time) error {
	if permissions == nil {
		permissions = []string{}
	}
	query := `
		UPDATE users
		SET permissions = $1, last_updated_at = $2, last_updated_by = $3
		WHERE user_id = $4 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, permissions, now, updatedBy, userID)
	if err != nil {
		return fmt.Errorf("failed to update permissions of user %s: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

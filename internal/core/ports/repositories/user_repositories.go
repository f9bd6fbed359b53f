package repositories

import (
	"context"
	"time"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	SaveUser(ctx context.Context, user domain.User) error
	// UpdateUserPermissions replaces the stored permission set of a user.
	UpdateUserPermissions(ctx context.Context, userID string, permissions []string, updatedBy string, now time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}

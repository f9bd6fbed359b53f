package services

import (
	"context"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/dto"
)

// UserSvcFacade combines user registration, lookup and authentication.
type UserSvcFacade interface {
	// CreateUser registers a new user with the configured default permissions.
	CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// AuthenticateUser checks credentials and returns the user on success.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)
}

// PermissionSvcFacade checks and grants permissions.
type PermissionSvcFacade interface {
	PermissionCheckerSvc

	// GrantPermissions replaces the permission set of targetUserID. The requesting user
	// needs ManagePermissions.
	GrantPermissions(ctx context.Context, targetUserID string, permissions []string, requestingUserID string) (*domain.User, error)
}

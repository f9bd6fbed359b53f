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
)

type permissionService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewPermissionService creates the service answering permission checks from stored user permissions.
func NewPermissionService(userRepo portsrepo.UserRepositoryFacade) portssvc.PermissionSvcFacade {
	s := &permissionService{userRepo: userRepo}
	s.Permissions = s
	return s
}

var _ portssvc.PermissionSvcFacade = (*permissionService)(nil)

// IsPermitted denies unknown and deleted users instead of failing.
func (s *permissionService) IsPermitted(ctx context.Context, userID string, permission string) (domain.PermissionDecision, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.Denied(permission, "unknown user"), nil
		}
		return domain.PermissionDecision{}, err
	}
	if user.DeletedAt != nil {
		return domain.Denied(permission, "user deleted"), nil
	}
	if !user.HasPermission(permission) {
		return domain.Denied(permission, "not granted"), nil
	}
	return domain.Granted(permission), nil
}

func (s *permissionService) GrantPermissions(ctx context.Context, targetUserID string, permissions []string, requestingUserID string) (*domain.User, error) {
	if err := s.RequirePermission(ctx, requestingUserID, domain.PermissionManagePermissions); err != nil {
		return nil, err
	}

	granted := make([]string, 0, len(permissions))
	for _, p := range permissions {
		if !slices.Contains(domain.KnownPermissions, p) {
			return nil, fmt.Errorf("%w: unknown permission %q", apperrors.ErrValidation, p)
		}
		if !slices.Contains(granted, p) {
			granted = append(granted, p)
		}
	}
	slices.Sort(granted)

	if err := s.userRepo.UpdateUserPermissions(ctx, targetUserID, granted, requestingUserID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update permissions", slog.String("target_user_id", targetUserID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Permissions updated",
		slog.String("target_user_id", targetUserID),
		slog.Any("permissions", granted))
	return s.userRepo.FindUserByID(ctx, targetUserID)
}

package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/apperrors"
	portssvc "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/ports/services"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Permissions portssvc.PermissionCheckerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RequirePermission returns apperrors.ErrForbidden unless userID holds permission.
func (s *BaseService) RequirePermission(ctx context.Context, userID, permission string) error {
	if s.Permissions == nil {
		s.LogDebug(ctx, "No permission checker provided, access granted by default",
			slog.String("user_id", userID),
			slog.String("permission", permission))
		return nil
	}
	decision, err := s.Permissions.IsPermitted(ctx, userID, permission)
	if err != nil {
		s.LogError(ctx, err, "Permission check failed", slog.String("user_id", userID), slog.String("permission", permission))
		return fmt.Errorf("check %s permission: %w", permission, err)
	}
	if !decision.Granted {
		return fmt.Errorf("%w: %s (%s)", apperrors.ErrForbidden, permission, decision.Reason)
	}
	return nil
}

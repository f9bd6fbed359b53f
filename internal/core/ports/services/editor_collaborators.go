package services

import (
	"context"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/events"
)

// The interfaces in this file are everything the entity editor needs from the rest of
// the application. Implementations run synchronously on the caller's goroutine.

// CacheLookupSvc resolves immutable type configuration by id.
type CacheLookupSvc interface {
	// GetEntityTypeByID returns apperrors.ErrLookup for unknown ids.
	GetEntityTypeByID(ctx context.Context, entityTypeID int64) (*domain.EntityType, error)

	// GetTicketTypeByID returns apperrors.ErrLookup for unknown ids.
	GetTicketTypeByID(ctx context.Context, ticketTypeID int64) (*domain.TicketType, error)
}

// EntityStorageSvc persists entities.
type EntityStorageSvc interface {
	// SaveEntity inserts new entities (assigning entity.ID) and updates existing ones.
	// Failures wrap apperrors.ErrStorage.
	SaveEntity(ctx context.Context, entity *domain.Entity, userID string) error
}

// AccountCreatorSvc creates financial accounts.
type AccountCreatorSvc interface {
	// CreateAccount creates an account of the given type and returns its id.
	CreateAccount(ctx context.Context, accountTypeID int64, name string, userID string) (int64, error)
}

// PermissionCheckerSvc answers capability checks for a user.
type PermissionCheckerSvc interface {
	IsPermitted(ctx context.Context, userID string, permission string) (domain.PermissionDecision, error)
}

// TicketAccountUpdaterSvc keeps open tickets in line with an entity's account.
type TicketAccountUpdaterSvc interface {
	UpdateAccountOfOpenTickets(ctx context.Context, entity domain.Entity, userID string) error
}

// ApplicationStateSvc exposes per-user UI context.
type ApplicationStateSvc interface {
	// CurrentScreen returns the user's current screen, if any.
	CurrentScreen(ctx context.Context, userID string) (*domain.ScreenConfig, bool)
	SetCurrentScreen(ctx context.Context, userID string, screen domain.ScreenConfig)
	ClearCurrentScreen(ctx context.Context, userID string)
}

// NotificationPublisher hands notifications to the bus.
type NotificationPublisher interface {
	Publish(ctx context.Context, n events.Notification) error
}

var _ NotificationPublisher = (*events.Bus)(nil)

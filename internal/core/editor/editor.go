// Package editor holds the entity editor: the edit session of one user, the commands
// operating on it and the gates deciding when they may run.
package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/apperrors"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/events"
	portssvc "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/ports/services"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/middleware"
)

// Deps are the collaborators an Editor works with.
type Deps struct {
	Cache       portssvc.CacheLookupSvc
	Entities    portssvc.EntityStorageSvc
	Accounts    portssvc.AccountCreatorSvc
	Permissions portssvc.PermissionCheckerSvc
	Tickets     portssvc.TicketAccountUpdaterSvc
	AppState    portssvc.ApplicationStateSvc
	Publisher   portssvc.NotificationPublisher
}

// Changes are staged edits to the loaded entity. Nil Name leaves the name alone.
type Changes struct {
	Name   *string
	Fields map[string]string
}

// Editor is the edit session of a single user. It is not safe for concurrent use;
// Registry serializes access.
type Editor struct {
	userID  string
	deps    Deps
	linker  *AccountLinker
	session *EditSession
	view    View
}

// NewEditor creates an idle editor for userID.
func NewEditor(userID string, deps Deps) *Editor {
	return &Editor{
		userID: userID,
		deps:   deps,
		linker: NewAccountLinker(deps.Accounts),
		view:   idleView(),
	}
}

// UserID is the owner of the session.
func (e *Editor) UserID() string { return e.userID }

// Snapshot returns a copy of the current state.
func (e *Editor) Snapshot() Snapshot { return snapshotOf(e.session, e.view) }

// BeginEdit replaces the session with one for req.SelectedEntity. The reply topic must
// not be EditEntityDetails or the broadcast SelectEntity topic. If the entity type
// or the ticket type of the current screen cannot be resolved the previous session
// is kept and the error wraps apperrors.ErrLookup.
func (e *Editor) BeginEdit(ctx context.Context, req domain.EntityOperationRequest) error {
	if req.ExpectedEvent == "" {
		req.ExpectedEvent = string(events.EntitySelected)
	}
	switch events.Topic(req.ExpectedEvent) {
	case events.EditEntityDetails, events.SelectEntity:
		return fmt.Errorf("%w: expected event cannot be %s", apperrors.ErrValidation, req.ExpectedEvent)
	}

	entityType, err := e.deps.Cache.GetEntityTypeByID(ctx, req.SelectedEntity.EntityTypeID)
	if err != nil {
		return fmt.Errorf("begin edit of entity %d: %w", req.SelectedEntity.ID, err)
	}

	session := newEditSession(req, *entityType)
	view, err := e.deriveView(ctx, session)
	if err != nil {
		return fmt.Errorf("begin edit of entity %d: %w", req.SelectedEntity.ID, err)
	}

	e.session = session
	e.view = view
	e.logger(ctx).Info("Entity loaded for editing",
		slog.Int64("entity_id", session.Entity.ID),
		slog.Int64("entity_type_id", entityType.ID),
		slog.String("expected_event", req.ExpectedEvent))
	return nil
}

// Update stages name and custom field edits. Field names are checked against the
// schema up front and nothing is staged if one is unknown; values are validated on flush.
func (e *Editor) Update(ctx context.Context, ch Changes) error {
	if e.session == nil {
		return fmt.Errorf("%w: no entity is being edited", apperrors.ErrPreconditionNotMet)
	}
	for _, name := range slices.Sorted(maps.Keys(ch.Fields)) {
		if err := e.session.Fields.CheckName(name); err != nil {
			return err
		}
	}
	if ch.Name != nil {
		e.session.Entity.Name = *ch.Name
	}
	for name, value := range ch.Fields {
		if err := e.session.Fields.Set(name, value); err != nil {
			return err
		}
	}
	e.refresh(ctx)
	return nil
}

// Save persists the entity and announces it on SelectEntity. The session stays loaded.
// executed is false when the command was not available.
func (e *Editor) Save(ctx context.Context) (executed bool, err error) {
	if !CanSave(e.session) {
		return false, nil
	}
	defer e.refresh(ctx)

	if err := e.persist(ctx, e.session.Entity.Clone()); err != nil {
		return true, err
	}
	if err := e.publish(ctx, events.EntityOperation(e.userID, e.session.Entity, events.SelectEntity, events.EntitySelected)); err != nil {
		return true, err
	}
	return true, nil
}

// Select persists the entity, answers the pending begin-edit request with it and
// clears the session.
func (e *Editor) Select(ctx context.Context) (executed bool, err error) {
	if !CanSelect(e.session) {
		return false, nil
	}
	defer e.refresh(ctx)

	if err := e.persist(ctx, e.session.Entity.Clone()); err != nil {
		return true, err
	}
	if err := e.publish(ctx, events.Reply(e.userID, e.session.Request, e.session.Entity)); err != nil {
		return true, err
	}
	e.session = nil
	return true, nil
}

// CreateAccount creates and links an account for the entity, persisting it before
// (when new) and after linking. Open tickets of the entity are moved to the account
// and the entity is announced on SelectEntity.
func (e *Editor) CreateAccount(ctx context.Context) (executed bool, err error) {
	s := e.session
	if s == nil || s.Fields == nil {
		return false, nil
	}
	decision, err := e.deps.Permissions.IsPermitted(ctx, e.userID, domain.PermissionCreateAccount)
	if err != nil {
		return false, fmt.Errorf("check %s permission: %w", domain.PermissionCreateAccount, err)
	}
	if !CanCreateAccount(s, decision) {
		return false, nil
	}
	defer e.refresh(ctx)

	if s.Entity.IsNew() {
		if err := e.persist(ctx, s.Entity.Clone()); err != nil {
			return true, err
		}
	}

	entity := s.Entity.Clone()
	if err := s.Fields.Flush(&entity); err != nil {
		return true, err
	}
	if _, err := e.linker.LinkAccount(ctx, &entity, s.EntityType, e.userID); err != nil {
		return true, err
	}
	if err := e.persist(ctx, entity); err != nil {
		// The account exists; keep the link so the next Save stores it.
		s.Entity.AccountID = entity.AccountID
		return true, err
	}

	if err := e.deps.Tickets.UpdateAccountOfOpenTickets(ctx, s.Entity, e.userID); err != nil {
		return true, fmt.Errorf("update open tickets of entity %d: %w", s.Entity.ID, err)
	}
	if err := e.publish(ctx, events.EntityOperation(e.userID, s.Entity, events.SelectEntity, events.EntitySelected)); err != nil {
		return true, err
	}

	e.logger(ctx).Info("Account linked to entity",
		slog.Int64("entity_id", s.Entity.ID),
		slog.Int64("account_id", s.Entity.AccountID))
	return true, nil
}

// persist flushes staged fields into entity, stores it and only then makes it the
// session entity.
func (e *Editor) persist(ctx context.Context, entity domain.Entity) error {
	if err := e.session.Fields.Flush(&entity); err != nil {
		return err
	}
	if err := e.deps.Entities.SaveEntity(ctx, &entity, e.userID); err != nil {
		e.logger(ctx).Error("Failed to save entity", slog.String("error", err.Error()), slog.Int64("entity_id", entity.ID))
		if !errors.Is(err, apperrors.ErrStorage) && !errors.Is(err, apperrors.ErrValidation) {
			err = fmt.Errorf("%w: %w", apperrors.ErrStorage, err)
		}
		return err
	}
	e.session.Entity = entity
	return nil
}

func (e *Editor) publish(ctx context.Context, n events.Notification) error {
	if err := e.deps.Publisher.Publish(ctx, n); err != nil {
		return fmt.Errorf("publish %s: %w", n.Topic, err)
	}
	return nil
}

// Refresh recomputes the view, e.g. after the user switched screens.
func (e *Editor) Refresh(ctx context.Context) { e.refresh(ctx) }

func (e *Editor) refresh(ctx context.Context) {
	view, err := e.deriveView(ctx, e.session)
	if err != nil {
		e.logger(ctx).Warn("Failed to resolve entity selector visibility", slog.String("error", err.Error()))
	}
	e.view = view
}

// deriveView computes the display properties of s. The error is a ticket type lookup
// failure; the returned view is still usable with the selector hidden.
func (e *Editor) deriveView(ctx context.Context, s *EditSession) (View, error) {
	v := idleView()
	if s == nil {
		return v, nil
	}
	entityName := s.EntityType.EntityName
	if entityName == "" {
		entityName = "Entity"
	}
	v.SelectCaption = "Select " + entityName
	v.PrimaryFieldName = s.EntityType.DisplayPrimaryFieldName()
	v.PrimaryFieldFormat = s.EntityType.PrimaryFieldFormat
	v.CanSave = CanSave(s)
	v.CanSelect = CanSelect(s)
	v.CanCreateAccount = e.canCreateAccount(ctx, s)

	screen, ok := e.deps.AppState.CurrentScreen(ctx, e.userID)
	if !ok {
		return v, nil
	}
	ticketType, err := e.deps.Cache.GetTicketTypeByID(ctx, screen.TicketTypeID)
	if err != nil {
		return v, fmt.Errorf("ticket type of screen %q: %w", screen.Name, err)
	}
	v.EntitySelectorVisible = IsEntitySelectorVisible(screen, ticketType, s)
	return v, nil
}

func (e *Editor) canCreateAccount(ctx context.Context, s *EditSession) bool {
	if s == nil || s.Fields == nil {
		return false
	}
	decision, err := e.deps.Permissions.IsPermitted(ctx, e.userID, domain.PermissionCreateAccount)
	if err != nil {
		e.logger(ctx).Warn("Permission check failed", slog.String("error", err.Error()))
		return false
	}
	return CanCreateAccount(s, decision)
}

func (e *Editor) logger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx).With(slog.String("editor_user_id", e.userID))
}

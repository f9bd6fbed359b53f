package editor

import (
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
)

// CanSelect reports whether an entity is loaded and has a name. Save is gated the same way.
func CanSelect(s *EditSession) bool {
	return s != nil && s.Entity.Name != ""
}

// CanSave reports whether the Save command may run.
func CanSave(s *EditSession) bool { return CanSelect(s) }

// CanCreateAccount reports whether an account can be created and linked to the loaded
// entity. Besides the account checks it requires a named entity: a new entity is saved
// before linking and the save refuses unnamed entities, which would leave an orphaned
// account behind. The account name is generated from the entity with pending field
// edits applied; nothing is flushed.
func CanCreateAccount(s *EditSession, decision domain.PermissionDecision) bool {
	if !CanSelect(s) || s.Fields == nil || !decision.Granted {
		return false
	}
	if s.Entity.HasAccount() || s.EntityType.AccountTypeID <= 0 {
		return false
	}
	return s.EntityType.GenerateAccountName(s.Fields.Preview(s.Entity)) != ""
}

// IsEntitySelectorVisible reports whether the loaded entity's type is assigned to the
// ticket type of the current screen.
func IsEntitySelectorVisible(screen *domain.ScreenConfig, ticketType *domain.TicketType, s *EditSession) bool {
	if s == nil || screen == nil || ticketType == nil {
		return false
	}
	return ticketType.AssignsEntityType(s.EntityType.ID)
}

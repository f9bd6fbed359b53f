package editor

import (
	"context"
	"fmt"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/apperrors"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	portssvc "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/ports/services"
)

// AccountLinker derives an account name for an entity, creates the account and links it.
type AccountLinker struct {
	accounts portssvc.AccountCreatorSvc
}

// NewAccountLinker creates an AccountLinker backed by accounts.
func NewAccountLinker(accounts portssvc.AccountCreatorSvc) *AccountLinker {
	return &AccountLinker{accounts: accounts}
}

// LinkAccount creates the account for entity and assigns its id to entity.AccountID.
// On failure entity is left untouched and the error wraps apperrors.ErrAccount.
// Persisting the entity is the caller's job.
func (l *AccountLinker) LinkAccount(ctx context.Context, entity *domain.Entity, entityType domain.EntityType, userID string) (int64, error) {
	if entityType.AccountTypeID <= 0 {
		return 0, fmt.Errorf("%w: entity type %q has no account type", apperrors.ErrAccount, entityType.Name)
	}
	name := entityType.GenerateAccountName(*entity)
	if name == "" {
		return 0, fmt.Errorf("%w: account name for entity %q is blank", apperrors.ErrAccount, entity.Name)
	}

	accountID, err := l.accounts.CreateAccount(ctx, entityType.AccountTypeID, name, userID)
	if err != nil {
		return 0, fmt.Errorf("%w: create account %q: %w", apperrors.ErrAccount, name, err)
	}
	if accountID == 0 {
		return 0, fmt.Errorf("%w: account %q was created without an id", apperrors.ErrAccount, name)
	}

	entity.AccountID = accountID
	return accountID, nil
}

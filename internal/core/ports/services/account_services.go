package services

import (
	"context"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)
}

// AccountTypeSvc manages account types.
type AccountTypeSvc interface {
	CreateAccountType(ctx context.Context, req dto.CreateAccountTypeRequest, userID string) (*domain.AccountType, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountCreatorSvc
	AccountTypeSvc
}

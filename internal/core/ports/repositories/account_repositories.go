package repositories

import (
	"context"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account and returns the generated id.
	SaveAccount(ctx context.Context, account domain.Account) (int64, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}

// AccountTypeReader defines read operations for account types
type AccountTypeReader interface {
	FindAccountTypeByID(ctx context.Context, accountTypeID int64) (*domain.AccountType, error)
}

// AccountTypeWriter defines write operations for account types
type AccountTypeWriter interface {
	SaveAccountType(ctx context.Context, accountType domain.AccountType) (int64, error)
}

// AccountTypeRepositoryFacade combines the account type repository interfaces
type AccountTypeRepositoryFacade interface {
	AccountTypeReader
	AccountTypeWriter
}

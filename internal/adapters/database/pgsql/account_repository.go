package pgsql

import (
	"context"
	"fmt"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	portsrepo "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/ports/repositories"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/models"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (int64, error) {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (account_type_id, name, currency_code, balance, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING account_id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.AccountTypeID,
		m.Name,
		m.CurrencyCode,
		m.Balance,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	).Scan(&id)
	if err != nil {
		return 0, mapWriteError(err, fmt.Sprintf("account %q", m.Name))
	}
	return id, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `
		SELECT account_id, account_type_id, name, currency_code, balance, created_at, created_by, last_updated_at, last_updated_by
		FROM accounts
		WHERE account_id = $1;
	`
	var m models.Account
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(
		&m.AccountID,
		&m.AccountTypeID,
		&m.Name,
		&m.CurrencyCode,
		&m.Balance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, mapReadError(err, fmt.Sprintf("account %d", accountID))
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

type PgxAccountTypeRepository struct {
	BaseRepository
}

// newPgxAccountTypeRepository creates a new repository for account types.
func newPgxAccountTypeRepository(pool *pgxpool.Pool) portsrepo.AccountTypeRepositoryFacade {
	return &PgxAccountTypeRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountTypeRepositoryFacade = (*PgxAccountTypeRepository)(nil)

func (r *PgxAccountTypeRepository) SaveAccountType(ctx context.Context, accountType domain.AccountType) (int64, error) {
	m := mapping.ToModelAccountType(accountType)
	query := `
		INSERT INTO account_types (name, default_currency_code, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING account_type_id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.Name,
		m.DefaultCurrencyCode,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	).Scan(&id)
	if err != nil {
		return 0, mapWriteError(err, fmt.Sprintf("account type %q", m.Name))
	}
	return id, nil
}

func (r *PgxAccountTypeRepository) FindAccountTypeByID(ctx context.Context, accountTypeID int64) (*domain.AccountType, error) {
	query := `
		SELECT account_type_id, name, default_currency_code, created_at, created_by, last_updated_at, last_updated_by
		FROM account_types
		WHERE account_type_id = $1;
	`
	var m models.AccountType
	err := r.Pool.QueryRow(ctx, query, accountTypeID).Scan(
		&m.AccountTypeID,
		&m.Name,
		&m.DefaultCurrencyCode,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, mapReadError(err, fmt.Sprintf("account type %d", accountTypeID))
	}
	accountType := mapping.ToDomainAccountType(m)
	return &accountType, nil
}

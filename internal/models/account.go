package models

import (
	"github.com/shopspring/decimal"
)

// AccountType is the row of the account_types table.
type AccountType struct {
	AccountTypeID       int64  `db:"account_type_id"`
	Name                string `db:"name"`
	DefaultCurrencyCode string `db:"default_currency_code"`
	AuditFields
}

// Account represents a financial account within the ledger.
type Account struct {
	AccountID     int64           `db:"account_id"`
	AccountTypeID int64           `db:"account_type_id"`
	Name          string          `db:"name"`
	CurrencyCode  string          `db:"currency_code"`
	Balance       decimal.Decimal `db:"balance"`
	AuditFields
}

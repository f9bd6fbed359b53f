package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType groups accounts created for entities of a given kind.
type AccountType struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	DefaultCurrencyCode string `json:"defaultCurrencyCode"`
	AuditFields
}

// Account is a financial ledger record optionally linked to an entity.
type Account struct {
	ID            int64           `json:"id"`
	AccountTypeID int64           `json:"accountTypeID"`
	Name          string          `json:"name"`
	CurrencyCode  string          `json:"currencyCode"`
	Balance       decimal.Decimal `json:"balance"`
	AuditFields
}

package dto

import (
	"time"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountTypeRequest defines the data needed to create an account type.
type CreateAccountTypeRequest struct {
	Name                string `json:"name" binding:"required"`
	DefaultCurrencyCode string `json:"defaultCurrencyCode" binding:"required,len=3"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     int64           `json:"accountID"`
	AccountTypeID int64           `json:"accountTypeID"`
	Name          string          `json:"name"`
	CurrencyCode  string          `json:"currencyCode"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.ID,
		AccountTypeID: acc.AccountTypeID,
		Name:          acc.Name,
		CurrencyCode:  acc.CurrencyCode,
		Balance:       acc.Balance,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
	}
}

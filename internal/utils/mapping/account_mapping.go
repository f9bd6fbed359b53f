package mapping

import (
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/models"
)

// ToModelAccount converts a domain.Account to a models.Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:     d.ID,
		AccountTypeID: d.AccountTypeID,
		Name:          d.Name,
		CurrencyCode:  d.CurrencyCode,
		Balance:       d.Balance,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a models.Account to a domain.Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		ID:            m.AccountID,
		AccountTypeID: m.AccountTypeID,
		Name:          m.Name,
		CurrencyCode:  m.CurrencyCode,
		Balance:       m.Balance,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAccountType converts a domain.AccountType to a models.AccountType
func ToModelAccountType(d domain.AccountType) models.AccountType {
	return models.AccountType{
		AccountTypeID:       d.ID,
		Name:                d.Name,
		DefaultCurrencyCode: d.DefaultCurrencyCode,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccountType converts a models.AccountType to a domain.AccountType
func ToDomainAccountType(m models.AccountType) domain.AccountType {
	return domain.AccountType{
		ID:                  m.AccountTypeID,
		Name:                m.Name,
		DefaultCurrencyCode: m.DefaultCurrencyCode,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

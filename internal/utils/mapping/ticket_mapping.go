package mapping

import (
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/models"
)

// ToModelTicketType converts a domain.TicketType to a models.TicketType
func ToModelTicketType(d domain.TicketType) models.TicketType {
	return models.TicketType{
		TicketTypeID:  d.ID,
		Name:          d.Name,
		EntityTypeIDs: append([]int64(nil), d.EntityTypeAssignments...),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTicketType converts a models.TicketType to a domain.TicketType
func ToDomainTicketType(m models.TicketType) domain.TicketType {
	assignments := m.EntityTypeIDs
	if assignments == nil {
		assignments = []int64{}
	}
	return domain.TicketType{
		ID:                    m.TicketTypeID,
		Name:                  m.Name,
		EntityTypeAssignments: assignments,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}

package mapping

import (
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/models"
)

// ToModelEntity converts a domain.Entity to a models.Entity
func ToModelEntity(d domain.Entity) models.Entity {
	customData := make(map[string]string, len(d.CustomData))
	for k, v := range d.CustomData {
		customData[k] = v
	}
	return models.Entity{
		EntityID:     d.ID,
		EntityTypeID: d.EntityTypeID,
		Name:         d.Name,
		AccountID:    ToNullableID(d.AccountID),
		CustomData:   customData,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEntity converts a models.Entity to a domain.Entity
func ToDomainEntity(m models.Entity) domain.Entity {
	return domain.Entity{
		ID:           m.EntityID,
		Name:         m.Name,
		EntityTypeID: m.EntityTypeID,
		AccountID:    m.AccountID.Int64,
		CustomData:   domain.CustomData(m.CustomData).Clone(),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelEntityType converts a domain.EntityType to a models.EntityType
func ToModelEntityType(d domain.EntityType) models.EntityType {
	fields := make([]models.CustomField, len(d.CustomFields))
	for i, f := range d.CustomFields {
		fields[i] = models.CustomField{
			Name:          f.Name,
			Type:          string(f.Type),
			Required:      f.Required,
			ValidationTag: f.ValidationTag,
		}
	}
	return models.EntityType{
		EntityTypeID:        d.ID,
		Name:                d.Name,
		EntityName:          d.EntityName,
		PrimaryFieldName:    d.PrimaryFieldName,
		PrimaryFieldFormat:  d.PrimaryFieldFormat,
		AccountTypeID:       ToNullableID(d.AccountTypeID),
		AccountNameTemplate: d.AccountNameTemplate,
		CustomFields:        fields,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEntityType converts a models.EntityType to a domain.EntityType
func ToDomainEntityType(m models.EntityType) domain.EntityType {
	fields := make([]domain.EntityCustomField, len(m.CustomFields))
	for i, f := range m.CustomFields {
		fields[i] = domain.EntityCustomField{
			Name:          f.Name,
			Type:          domain.FieldType(f.Type),
			Required:      f.Required,
			ValidationTag: f.ValidationTag,
		}
	}
	return domain.EntityType{
		ID:                  m.EntityTypeID,
		Name:                m.Name,
		EntityName:          m.EntityName,
		PrimaryFieldName:    m.PrimaryFieldName,
		PrimaryFieldFormat:  m.PrimaryFieldFormat,
		AccountTypeID:       m.AccountTypeID.Int64,
		AccountNameTemplate: m.AccountNameTemplate,
		CustomFields:        fields,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

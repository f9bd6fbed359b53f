package dto

import "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"

// CustomFieldRequest describes one custom field of a new entity type.
type CustomFieldRequest struct {
	Name          string           `json:"name" binding:"required"`
	Type          domain.FieldType `json:"type" binding:"omitempty,oneof=STRING NUMBER DATE"`
	Required      bool             `json:"required"`
	ValidationTag string           `json:"validationTag"`
}

// CreateEntityTypeRequest defines the data needed to create an entity type.
type CreateEntityTypeRequest struct {
	Name                string               `json:"name" binding:"required"`
	EntityName          string               `json:"entityName" binding:"required"`
	PrimaryFieldName    string               `json:"primaryFieldName"`
	PrimaryFieldFormat  string               `json:"primaryFieldFormat"`
	AccountTypeID       int64                `json:"accountTypeID" binding:"gte=0"`
	AccountNameTemplate string               `json:"accountNameTemplate"`
	CustomFields        []CustomFieldRequest `json:"customFields" binding:"dive"`
}

// ListEntityTypesResponse wraps the list of entity types.
type ListEntityTypesResponse struct {
	EntityTypes []domain.EntityType `json:"entityTypes"`
}

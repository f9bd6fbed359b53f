package domain

import "strings"

// FieldType is the value kind of a custom field.
type FieldType string

const (
	FieldString FieldType = "STRING"
	FieldNumber FieldType = "NUMBER"
	FieldDate   FieldType = "DATE"
)

// DateLayout is the expected layout of DATE custom field values.
const DateLayout = "2006-01-02"

// EntityCustomField describes one entry of an entity type's custom field schema.
type EntityCustomField struct {
	Name     string    `json:"name"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
	// ValidationTag is a go-playground/validator tag, e.g. "email" or "max=40".
	ValidationTag string `json:"validationTag,omitempty"`
}

// EntityType is the immutable configuration of a class of entities.
type EntityType struct {
	ID                  int64               `json:"id"`
	Name                string              `json:"name"`       // e.g. "Customers"
	EntityName          string              `json:"entityName"` // e.g. "Customer"
	PrimaryFieldName    string              `json:"primaryFieldName"`
	PrimaryFieldFormat  string              `json:"primaryFieldFormat"`
	AccountTypeID       int64               `json:"accountTypeID"`
	AccountNameTemplate string              `json:"accountNameTemplate"`
	CustomFields        []EntityCustomField `json:"customFields"`
	AuditFields
}

// CustomField returns the schema entry called name.
func (t EntityType) CustomField(name string) (EntityCustomField, bool) {
	for _, f := range t.CustomFields {
		if f.Name == name {
			return f, true
		}
	}
	return EntityCustomField{}, false
}

// DisplayPrimaryFieldName is the label of the entity's primary field.
func (t EntityType) DisplayPrimaryFieldName() string {
	if t.PrimaryFieldName == "" {
		return "Name"
	}
	return t.PrimaryFieldName
}

// GenerateAccountName derives the name of the account to create for e.
//
// An empty template yields the entity name. Otherwise "[Name]" expands to the entity
// name and "[:Field]" to the value of custom field Field (empty when unset). A blank
// result means no account can be created yet.
func (t EntityType) GenerateAccountName(e Entity) string {
	if t.AccountNameTemplate == "" {
		return strings.TrimSpace(e.Name)
	}
	name := strings.ReplaceAll(t.AccountNameTemplate, "[Name]", e.Name)
	for _, f := range t.CustomFields {
		name = strings.ReplaceAll(name, "[:"+f.Name+"]", e.CustomData[f.Name])
	}
	return strings.TrimSpace(name)
}

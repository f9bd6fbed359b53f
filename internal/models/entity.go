package models

import "database/sql"

// Entity is the row of the entities table.
type Entity struct {
	EntityID     int64             `db:"entity_id"`
	EntityTypeID int64             `db:"entity_type_id"`
	Name         string            `db:"name"`
	AccountID    sql.NullInt64     `db:"account_id"` // NULL when no account is linked
	CustomData   map[string]string `db:"custom_data"` // JSONB
	AuditFields
}

// CustomField is one element of the entity_types.custom_fields JSONB array.
type CustomField struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	Required      bool   `json:"required,omitempty"`
	ValidationTag string `json:"validationTag,omitempty"`
}

// EntityType is the row of the entity_types table.
type EntityType struct {
	EntityTypeID        int64         `db:"entity_type_id"`
	Name                string        `db:"name"`
	EntityName          string        `db:"entity_name"`
	PrimaryFieldName    string        `db:"primary_field_name"`
	PrimaryFieldFormat  string        `db:"primary_field_format"`
	AccountTypeID       sql.NullInt64 `db:"account_type_id"`
	AccountNameTemplate string        `db:"account_name_template"`
	CustomFields        []CustomField `db:"custom_fields"` // JSONB
	AuditFields
}

package editor

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/apperrors"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// CustomFields is the editor state of an entity's dynamic fields: a key/value store
// keyed by field name, validated against the entity type's schema when flushed.
type CustomFields struct {
	entityType domain.EntityType
	values     domain.CustomData
}

// NewCustomFields seeds the editor with the entity's stored values for every schema field.
func NewCustomFields(entity domain.Entity, entityType domain.EntityType) *CustomFields {
	values := make(domain.CustomData, len(entityType.CustomFields))
	for _, f := range entityType.CustomFields {
		if v, ok := entity.CustomData[f.Name]; ok {
			values[f.Name] = v
		}
	}
	return &CustomFields{entityType: entityType, values: values}
}

// EntityTypeID is the id of the schema the fields belong to.
func (c *CustomFields) EntityTypeID() int64 { return c.entityType.ID }

// Set stages a value. An empty value clears the field on flush. Names outside the
// entity type's schema are refused with apperrors.ErrValidation.
func (c *CustomFields) Set(name, value string) error {
	if err := c.CheckName(name); err != nil {
		return err
	}
	c.values[name] = value
	return nil
}

// CheckName reports an apperrors.ErrValidation error if name is not a schema field.
func (c *CustomFields) CheckName(name string) error {
	if _, ok := c.entityType.CustomField(name); !ok {
		return fmt.Errorf("%w: unknown custom field %q for entity type %q", apperrors.ErrValidation, name, c.entityType.Name)
	}
	return nil
}

// Values returns a copy of the staged values.
func (c *CustomFields) Values() domain.CustomData { return c.values.Clone() }

// Preview returns a copy of entity with the staged values applied, without validating.
func (c *CustomFields) Preview(entity domain.Entity) domain.Entity {
	out := entity.Clone()
	c.apply(&out)
	return out
}

// Validate checks every staged value against the schema.
func (c *CustomFields) Validate() error {
	for _, name := range slices.Sorted(maps.Keys(c.values)) {
		field, _ := c.entityType.CustomField(name)
		if err := validateValue(field, c.values[name]); err != nil {
			return err
		}
	}
	for _, field := range c.entityType.CustomFields {
		if field.Required && c.values[field.Name] == "" {
			return fmt.Errorf("%w: custom field %q is required", apperrors.ErrValidation, field.Name)
		}
	}
	return nil
}

// Flush validates the staged values and writes them into entity.
func (c *CustomFields) Flush(entity *domain.Entity) error {
	if err := c.Validate(); err != nil {
		return err
	}
	c.apply(entity)
	return nil
}

func (c *CustomFields) apply(entity *domain.Entity) {
	if entity.CustomData == nil {
		entity.CustomData = make(domain.CustomData, len(c.values))
	}
	for name, value := range c.values {
		if value == "" {
			delete(entity.CustomData, name)
			continue
		}
		entity.CustomData[name] = value
	}
}

func validateValue(field domain.EntityCustomField, value string) error {
	if value == "" {
		return nil
	}
	switch field.Type {
	case domain.FieldNumber:
		if _, err := decimal.NewFromString(value); err != nil {
			return fmt.Errorf("%w: custom field %q must be a number", apperrors.ErrValidation, field.Name)
		}
	case domain.FieldDate:
		if _, err := time.Parse(domain.DateLayout, value); err != nil {
			return fmt.Errorf("%w: custom field %q must be a date (%s)", apperrors.ErrValidation, field.Name, domain.DateLayout)
		}
	}
	if field.ValidationTag != "" {
		if err := validate.Var(value, field.ValidationTag); err != nil {
			return fmt.Errorf("%w: custom field %q: %s", apperrors.ErrValidation, field.Name, err.Error())
		}
	}
	return nil
}

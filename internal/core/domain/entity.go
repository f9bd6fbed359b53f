package domain

// Entity is a business record (customer, vendor, table...) being edited.
type Entity struct {
	ID           int64      `json:"id"` // 0 until persisted
	Name         string     `json:"name"`
	EntityTypeID int64      `json:"entityTypeID"`
	AccountID    int64      `json:"accountID"` // 0 when no account is linked
	CustomData   CustomData `json:"customData"`
	AuditFields
}

// IsNew reports whether the entity has never been persisted.
func (e Entity) IsNew() bool { return e.ID == 0 }

// HasAccount reports whether an account is linked to the entity.
func (e Entity) HasAccount() bool { return e.AccountID != 0 }

// Clone returns a copy of e that shares no custom data with it.
func (e Entity) Clone() Entity {
	e.CustomData = e.CustomData.Clone()
	return e
}

// CustomData maps custom field names to their values.
type CustomData map[string]string

// Clone copies the map. A nil map clones to an empty one.
func (d CustomData) Clone() CustomData {
	out := make(CustomData, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

package domain

// TicketType configures which entity types can be assigned to its tickets.
type TicketType struct {
	ID                    int64   `json:"id"`
	Name                  string  `json:"name"`
	EntityTypeAssignments []int64 `json:"entityTypeAssignments"`
	AuditFields
}

// AssignsEntityType reports whether entities of the given type can be assigned to tickets of this type.
func (t TicketType) AssignsEntityType(entityTypeID int64) bool {
	for _, id := range t.EntityTypeAssignments {
		if id == entityTypeID {
			return true
		}
	}
	return false
}

// ScreenConfig is the screen a user currently works on.
type ScreenConfig struct {
	Name         string `json:"name"`
	TicketTypeID int64  `json:"ticketTypeID"`
}

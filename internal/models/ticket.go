package models

// TicketType is the row of the ticket_types table. Its entity type assignments live in
// ticket_type_entity_types.
type TicketType struct {
	TicketTypeID  int64   `db:"ticket_type_id"`
	Name          string  `db:"name"`
	EntityTypeIDs []int64 `db:"-"`
	AuditFields
}

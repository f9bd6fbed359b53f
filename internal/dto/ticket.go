package dto

// CreateTicketTypeRequest defines the data needed to create a ticket type.
type CreateTicketTypeRequest struct {
	Name                  string  `json:"name" binding:"required"`
	EntityTypeAssignments []int64 `json:"entityTypeAssignments" binding:"dive,gt=0"`
}

// SetScreenRequest selects the screen the caller works on.
type SetScreenRequest struct {
	Name         string `json:"name"`
	TicketTypeID int64  `json:"ticketTypeID" binding:"required,gt=0"`
}

package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/ports/services"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/dto"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ticketHandler struct {
	ticketService portssvc.TicketSvcFacade
}

func registerTicketRoutes(rg *gin.RouterGroup, ticketService portssvc.TicketSvcFacade) {
	h := &ticketHandler{ticketService: ticketService}

	ticketTypes := rg.Group("/ticket-types")
	{
		ticketTypes.POST("", h.createTicketType)
		ticketTypes.GET("/:id", h.getTicketType)
	}
}

// createTicketType godoc
// @Summary Create a ticket type
// @Description Creates a ticket type and assigns the entity types its tickets reference. Requires ManageEntityTypes.
// @Tags ticket-types
// @Accept json
// @Produce json
// @Param ticketType body dto.CreateTicketTypeRequest true "Ticket type"
// @Success 201 {object} domain.TicketType
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /ticket-types [post]
func (h *ticketHandler) createTicketType(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateTicketTypeRequest
	if !bindJSON(c, &req, "CreateTicketType") {
		return
	}

	ticketType, err := h.ticketService.CreateTicketType(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create ticket type")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Ticket type created", slog.Int64("ticket_type_id", ticketType.ID))
	c.JSON(http.StatusCreated, ticketType)
}

// getTicketType godoc
// @Summary Get a ticket type by ID
// @Tags ticket-types
// @Produce json
// @Param id path int true "Ticket type ID"
// @Success 200 {object} domain.TicketType
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /ticket-types/{id} [get]
func (h *ticketHandler) getTicketType(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	ticketType, err := h.ticketService.GetTicketTypeByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to retrieve ticket type")
		return
	}
	c.JSON(http.StatusOK, ticketType)
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/editor"
	portssvc "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/ports/services"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/dto"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/middleware"
	"github.com/gin-gonic/gin"
)

// screenHandler switches the screen the caller works on. The screen's ticket type decides
// whether the entity selector is shown in the editor.
type screenHandler struct {
	appState portssvc.ApplicationStateSvc
	cache    portssvc.CacheLookupSvc
	sessions *editor.Registry
}

func registerScreenRoutes(rg *gin.RouterGroup, appState portssvc.ApplicationStateSvc, cache portssvc.CacheLookupSvc, sessions *editor.Registry) {
	h := &screenHandler{appState: appState, cache: cache, sessions: sessions}

	rg.PUT("/screen", h.setScreen)
	rg.DELETE("/screen", h.clearScreen)
}

// setScreen godoc
// @Summary Set the current screen
// @Description Selects the screen (and thereby the ticket type) the caller works on and refreshes the edit session.
// @Tags screen
// @Accept json
// @Produce json
// @Param screen body dto.SetScreenRequest true "Screen"
// @Success 200 {object} dto.EditorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Unknown ticket type"
// @Security BearerAuth
// @Router /screen [put]
func (h *screenHandler) setScreen(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.SetScreenRequest
	if !bindJSON(c, &req, "SetScreen") {
		return
	}
	ctx := c.Request.Context()

	if _, err := h.cache.GetTicketTypeByID(ctx, req.TicketTypeID); err != nil {
		respondError(c, err, "Failed to resolve ticket type")
		return
	}

	h.appState.SetCurrentScreen(ctx, userID, domain.ScreenConfig{Name: req.Name, TicketTypeID: req.TicketTypeID})
	middleware.GetLoggerFromCtx(ctx).Info("Current screen set", slog.Int64("ticket_type_id", req.TicketTypeID))
	c.JSON(http.StatusOK, toEditorResponse(h.refresh(c, userID)))
}

// clearScreen godoc
// @Summary Clear the current screen
// @Tags screen
// @Produce json
// @Success 200 {object} dto.EditorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /screen [delete]
func (h *screenHandler) clearScreen(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	h.appState.ClearCurrentScreen(c.Request.Context(), userID)
	c.JSON(http.StatusOK, toEditorResponse(h.refresh(c, userID)))
}

func (h *screenHandler) refresh(c *gin.Context, userID string) editor.Snapshot {
	var snap editor.Snapshot
	_ = h.sessions.Do(userID, func(e *editor.Editor) error {
		e.Refresh(c.Request.Context())
		snap = e.Snapshot()
		return nil
	})
	return snap
}

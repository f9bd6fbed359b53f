package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/editor"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/events"
	portssvc "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/ports/services"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/dto"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/middleware"
	"github.com/gin-gonic/gin"
)

// EditorComponents are the long lived editor objects shared by all requests.
type EditorComponents struct {
	Sessions   *editor.Registry
	Dispatcher *editor.Dispatcher
	Outbox     *events.Outbox
}

type editorCommand func(*editor.Editor, context.Context) (bool, error)

// editorHandler exposes the edit session of the authenticated user.
type editorHandler struct {
	sessions   *editor.Registry
	dispatcher *editor.Dispatcher
	outbox     *events.Outbox
	entities   portssvc.EntityReaderSvc
}

func newEditorHandler(ec EditorComponents, entities portssvc.EntityReaderSvc) *editorHandler {
	return &editorHandler{
		sessions:   ec.Sessions,
		dispatcher: ec.Dispatcher,
		outbox:     ec.Outbox,
		entities:   entities,
	}
}

func registerEditorRoutes(rg *gin.RouterGroup, ec EditorComponents, entities portssvc.EntityReaderSvc) {
	h := newEditorHandler(ec, entities)

	ed := rg.Group("/editor")
	{
		ed.GET("", h.getEditor)
		ed.PATCH("", h.updateEditor)
		ed.DELETE("", h.closeEditor)
		ed.POST("/begin", h.beginEdit)
		ed.POST("/save", h.command("Save", (*editor.Editor).Save))
		ed.POST("/select", h.command("Select", (*editor.Editor).Select))
		ed.POST("/create-account", h.command("CreateAccount", (*editor.Editor).CreateAccount))
		ed.GET("/notifications", h.listNotifications)
	}
}

// beginEdit godoc
// @Summary Begin editing an entity
// @Description Publishes a begin-edit request for the caller. Either entityID names a stored entity or entityTypeID describes a new one.
// @Tags editor
// @Accept json
// @Produce json
// @Param request body dto.BeginEditRequest true "Entity to edit"
// @Success 200 {object} dto.EditorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Entity not found"
// @Failure 422 {object} ErrorResponse "Entity type or ticket type unknown"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /editor/begin [post]
func (h *editorHandler) beginEdit(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.BeginEditRequest
	if !bindJSON(c, &req, "BeginEdit") {
		return
	}
	ctx := c.Request.Context()

	entity := domain.Entity{
		EntityTypeID: req.EntityTypeID,
		Name:         req.Name,
		CustomData:   domain.CustomData(req.CustomData),
	}
	if req.EntityID > 0 {
		stored, err := h.entities.GetEntityByID(ctx, req.EntityID)
		if err != nil {
			respondError(c, err, "Failed to load entity")
			return
		}
		entity = *stored
	} else if req.EntityTypeID == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "entityID or entityTypeID is required"})
		return
	}

	err := h.dispatcher.RequestEdit(ctx, userID, domain.EntityOperationRequest{
		SelectedEntity: entity,
		ExpectedEvent:  req.ExpectedEvent,
		Source:         req.Source,
	})
	if err != nil {
		respondError(c, err, "Failed to begin edit")
		return
	}

	c.JSON(http.StatusOK, toEditorResponse(h.sessions.Snapshot(userID)))
}

// getEditor godoc
// @Summary Get the edit session
// @Description Returns the caller's edit session including command availability.
// @Tags editor
// @Produce json
// @Success 200 {object} dto.EditorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /editor [get]
func (h *editorHandler) getEditor(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toEditorResponse(h.sessions.Snapshot(userID)))
}

// updateEditor godoc
// @Summary Stage edits
// @Description Stages a new name and custom field values. Values are validated when the entity is saved.
// @Tags editor
// @Accept json
// @Produce json
// @Param request body dto.UpdateEditorRequest true "Staged edits"
// @Success 200 {object} dto.EditorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "No entity is being edited"
// @Security BearerAuth
// @Router /editor [patch]
func (h *editorHandler) updateEditor(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateEditorRequest
	if !bindJSON(c, &req, "UpdateEditor") {
		return
	}
	ctx := c.Request.Context()

	var snap editor.Snapshot
	err := h.sessions.Do(userID, func(e *editor.Editor) error {
		err := e.Update(ctx, editor.Changes{Name: req.Name, Fields: req.CustomData})
		snap = e.Snapshot()
		return err
	})
	if err != nil {
		respondError(c, err, "Failed to update edit session")
		return
	}
	c.JSON(http.StatusOK, toEditorResponse(snap))
}

// closeEditor godoc
// @Summary Close the edit session
// @Description Discards the caller's edit session, including staged edits, and drops queued notifications. The next request starts from an idle editor.
// @Tags editor
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /editor [delete]
func (h *editorHandler) closeEditor(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	h.sessions.Forget(userID)
	dropped := h.outbox.Drain(userID)
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Edit session closed", slog.Int("dropped_notifications", len(dropped)))
	c.Status(http.StatusNoContent)
}

// command builds the handler of an editor command. A closed gate answers 409 with the
// unchanged session.
//
// @Summary Run an editor command
// @Description save, select and create-account run the named command on the caller's session.
// @Tags editor
// @Produce json
// @Success 200 {object} dto.CommandResponse
// @Failure 400 {object} ErrorResponse "Custom field validation failed"
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} dto.CommandResponse "Command not available"
// @Failure 500 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "Account creation failed"
// @Security BearerAuth
// @Router /editor/save [post]
// @Router /editor/select [post]
// @Router /editor/create-account [post]
func (h *editorHandler) command(name string, run editorCommand) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()
		logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("command", name))

		var (
			executed bool
			snap     editor.Snapshot
		)
		err := h.sessions.Do(userID, func(e *editor.Editor) error {
			var err error
			executed, err = run(e, ctx)
			snap = e.Snapshot()
			return err
		})
		if err != nil {
			respondError(c, err, "Failed to run "+name)
			return
		}

		resp := dto.CommandResponse{Executed: executed, Editor: toEditorResponse(snap)}
		if !executed {
			logger.Info("Command not available")
			c.JSON(http.StatusConflict, resp)
			return
		}
		logger.Info("Command executed")
		c.JSON(http.StatusOK, resp)
	}
}

// listNotifications godoc
// @Summary List outbound notifications
// @Description Returns the most recent notifications published for the caller. drain=true removes them.
// @Tags editor
// @Produce json
// @Param drain query bool false "Remove the returned notifications"
// @Success 200 {object} dto.NotificationsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /editor/notifications [get]
func (h *editorHandler) listNotifications(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var params dto.ListNotificationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	var notifications []events.Notification
	if params.Drain {
		notifications = h.outbox.Drain(userID)
	} else {
		notifications = h.outbox.List(userID)
	}
	c.JSON(http.StatusOK, dto.NotificationsResponse{Notifications: notifications})
}

func toEditorResponse(snap editor.Snapshot) dto.EditorResponse {
	return dto.EditorResponse{
		State:         string(snap.State),
		Entity:        snap.Entity,
		EntityType:    snap.EntityType,
		PendingFields: snap.PendingFields,
		Request:       snap.Request,
		View: dto.EditorViewResponse{
			EntitySelectorVisible: snap.View.EntitySelectorVisible,
			PrimaryFieldName:      snap.View.PrimaryFieldName,
			PrimaryFieldFormat:    snap.View.PrimaryFieldFormat,
			SaveCaption:           snap.View.SaveCaption,
			SelectCaption:         snap.View.SelectCaption,
			CreateAccountCaption:  snap.View.CreateAccountCaption,
			CanSave:               snap.View.CanSave,
			CanSelect:             snap.View.CanSelect,
			CanCreateAccount:      snap.View.CanCreateAccount,
		},
	}
}

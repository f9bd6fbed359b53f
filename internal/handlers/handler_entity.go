package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/ports/services"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/dto"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/middleware"
	"github.com/gin-gonic/gin"
)

// entityHandler serves entity types and stored entities.
type entityHandler struct {
	entityService     portssvc.EntitySvcFacade
	entityTypeService portssvc.EntityTypeSvcFacade
}

func registerEntityRoutes(rg *gin.RouterGroup, entityService portssvc.EntitySvcFacade, entityTypeService portssvc.EntityTypeSvcFacade) {
	h := &entityHandler{entityService: entityService, entityTypeService: entityTypeService}

	entityTypes := rg.Group("/entity-types")
	{
		entityTypes.POST("", h.createEntityType)
		entityTypes.GET("", h.listEntityTypes)
		entityTypes.GET("/:id", h.getEntityType)
	}
	rg.GET("/entities/:id", h.getEntity)
}

// createEntityType godoc
// @Summary Create an entity type
// @Description Creates an entity type with its custom field schema. Requires ManageEntityTypes.
// @Tags entity-types
// @Accept json
// @Produce json
// @Param entityType body dto.CreateEntityTypeRequest true "Entity type"
// @Success 201 {object} domain.EntityType
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /entity-types [post]
func (h *entityHandler) createEntityType(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateEntityTypeRequest
	if !bindJSON(c, &req, "CreateEntityType") {
		return
	}

	entityType, err := h.entityTypeService.CreateEntityType(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create entity type")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Entity type created", slog.Int64("entity_type_id", entityType.ID))
	c.JSON(http.StatusCreated, entityType)
}

// listEntityTypes godoc
// @Summary List entity types
// @Tags entity-types
// @Produce json
// @Success 200 {object} dto.ListEntityTypesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /entity-types [get]
func (h *entityHandler) listEntityTypes(c *gin.Context) {
	entityTypes, err := h.entityTypeService.ListEntityTypes(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list entity types")
		return
	}
	c.JSON(http.StatusOK, dto.ListEntityTypesResponse{EntityTypes: entityTypes})
}

// getEntityType godoc
// @Summary Get an entity type by ID
// @Tags entity-types
// @Produce json
// @Param id path int true "Entity type ID"
// @Success 200 {object} domain.EntityType
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /entity-types/{id} [get]
func (h *entityHandler) getEntityType(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	entityType, err := h.entityTypeService.GetEntityTypeByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to retrieve entity type")
		return
	}
	c.JSON(http.StatusOK, entityType)
}

// getEntity godoc
// @Summary Get an entity by ID
// @Tags entities
// @Produce json
// @Param id path int true "Entity ID"
// @Success 200 {object} dto.EntityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /entities/{id} [get]
func (h *entityHandler) getEntity(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	entity, err := h.entityService.GetEntityByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to retrieve entity")
		return
	}
	c.JSON(http.StatusOK, dto.EntityResponse{Entity: *entity})
}

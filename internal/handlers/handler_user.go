package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/ports/services"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/dto"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to users and their permissions.
type userHandler struct {
	userService       portssvc.UserSvcFacade
	permissionService portssvc.PermissionSvcFacade
}

func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, permissionService portssvc.PermissionSvcFacade) {
	h := &userHandler{userService: userService, permissionService: permissionService}

	users := rg.Group("/users")
	{
		users.GET("/me", h.getMe)
		users.PUT("/:userID/permissions", h.grantPermissions)
	}
}

// getMe godoc
// @Summary Get the logged-in user
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getMe(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// grantPermissions godoc
// @Summary Replace a user's permissions
// @Description Replaces the permission set of the user. Requires ManagePermissions.
// @Tags users
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param permissions body dto.GrantPermissionsRequest true "Permissions"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{userID}/permissions [put]
func (h *userHandler) grantPermissions(c *gin.Context) {
	requestingUserID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.GrantPermissionsRequest
	if !bindJSON(c, &req, "GrantPermissions") {
		return
	}
	targetUserID := c.Param("userID")

	user, err := h.permissionService.GrantPermissions(c.Request.Context(), targetUserID, req.Permissions, requestingUserID)
	if err != nil {
		respondError(c, err, "Failed to update permissions")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Permissions updated",
		slog.String("target_user_id", targetUserID), slog.Any("permissions", user.Permissions))
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/ports/services"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/dto"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts and account types.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := &accountHandler{accountService: accountService}

	rg.POST("/account-types", h.createAccountType)
	rg.GET("/accounts/:id", h.getAccount)
}

// createAccountType godoc
// @Summary Create an account type
// @Description Creates an account type entity types can provision accounts of. Requires ManageEntityTypes.
// @Tags accounts
// @Accept json
// @Produce json
// @Param accountType body dto.CreateAccountTypeRequest true "Account type"
// @Success 201 {object} domain.AccountType
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /account-types [post]
func (h *accountHandler) createAccountType(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateAccountTypeRequest
	if !bindJSON(c, &req, "CreateAccountType") {
		return
	}

	accountType, err := h.accountService.CreateAccountType(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create account type")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Account type created", slog.Int64("account_type_id", accountType.ID))
	c.JSON(http.StatusCreated, accountType)
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	account, err := h.accountService.GetAccountByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

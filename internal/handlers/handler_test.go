package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/editor"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/events"
	portssvc "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/ports/services"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/services"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/handlers"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/platform/config"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testUserID = "user-1"

// HandlerTestSuite wires the real router, bus and editor registry against mocked services.
type HandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	jwtSecret  string
	bus        *events.Bus
	outbox     *events.Outbox
	dispatcher *editor.Dispatcher

	entities    *MockEntityService
	entityTypes *MockEntityTypeService
	cache       *MockCacheService
	accounts    *MockAccountService
	tickets     *MockTicketService
	permissions *MockPermissionService
	users       *MockUserService
}

// generateTestToken creates a signed session token for userID.
func (suite *HandlerTestSuite) generateTestToken(userID string) string {
	signed, err := utils.GenerateJWT(domain.User{UserID: userID, Username: userID}, suite.jwtSecret, time.Hour, "entity-editor-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.entities = new(MockEntityService)
	suite.entityTypes = new(MockEntityTypeService)
	suite.cache = new(MockCacheService)
	suite.accounts = new(MockAccountService)
	suite.tickets = new(MockTicketService)
	suite.permissions = new(MockPermissionService)
	suite.users = new(MockUserService)

	appState := services.NewApplicationStateService()
	container := &portssvc.ServiceContainer{
		Entity:     suite.entities,
		EntityType: suite.entityTypes,
		Account:    suite.accounts,
		Ticket:     suite.tickets,
		Permission: suite.permissions,
		User:       suite.users,
		Cache:      suite.cache,
		AppState:   appState,
	}

	suite.bus = events.NewBus()
	suite.outbox = events.NewOutbox(10)
	suite.bus.SubscribeAll(suite.outbox.Handle)
	registry := editor.NewRegistry(editor.Deps{
		Cache:       suite.cache,
		Entities:    suite.entities,
		Accounts:    suite.accounts,
		Permissions: suite.permissions,
		Tickets:     suite.tickets,
		AppState:    appState,
		Publisher:   suite.bus,
	})
	suite.dispatcher = editor.NewDispatcher(suite.bus, registry)
	suite.dispatcher.Start()

	cfg := &config.Config{
		IsProduction:       true,
		JWTSecret:          suite.jwtSecret,
		JWTExpiryDuration:  time.Hour,
		JWTIssuer:          "entity-editor-test",
		CORSAllowedOrigins: []string{"http://localhost:3000"},
		LoginRateLimit:     "100-M",
	}
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container, handlers.EditorComponents{
		Sessions:   registry,
		Dispatcher: suite.dispatcher,
		Outbox:     suite.outbox,
	})

	customers := domain.EntityType{
		ID:                  1,
		Name:                "Customers",
		EntityName:          "Customer",
		AccountTypeID:       3,
		AccountNameTemplate: "[Name]-ACC",
		CustomFields:        []domain.EntityCustomField{{Name: "Phone", Type: domain.FieldString, ValidationTag: "numeric"}},
	}
	suite.cache.On("GetEntityTypeByID", mock.Anything, int64(1)).Return(&customers, nil).Maybe()
	suite.permissions.On("IsPermitted", mock.Anything, testUserID, domain.PermissionCreateAccount).
		Return(domain.Granted(domain.PermissionCreateAccount), nil).Maybe()
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.dispatcher.Stop()
}

// performRequest sends an authenticated request when userID is non-empty.
func (suite *HandlerTestSuite) performRequest(method, path string, body any, userID string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	}
	rr := httptest.NewRecorder()
	suite.router.ServeHTTP(rr, req)
	return rr
}

func (suite *HandlerTestSuite) decode(rr *httptest.ResponseRecorder, out any) {
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), out), rr.Body.String())
}

// expectSaves makes SaveEntity succeed and hand out id 42 to new entities.
func (suite *HandlerTestSuite) expectSaves() {
	suite.entities.On("SaveEntity", mock.Anything, mock.AnythingOfType("*domain.Entity"), testUserID).
		Run(func(args mock.Arguments) {
			if e := args.Get(1).(*domain.Entity); e.ID == 0 {
				e.ID = 42
			}
		}).
		Return(nil)
}

package handlers_test

import (
	"context"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	portssvc "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/ports/services"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock EntityService ---
type MockEntityService struct {
	mock.Mock
}

func (m *MockEntityService) GetEntityByID(ctx context.Context, entityID int64) (*domain.Entity, error) {
	args := m.Called(ctx, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entity), args.Error(1)
}

func (m *MockEntityService) SaveEntity(ctx context.Context, entity *domain.Entity, userID string) error {
	args := m.Called(ctx, entity, userID)
	return args.Error(0)
}

var _ portssvc.EntitySvcFacade = (*MockEntityService)(nil)

// --- Mock EntityTypeService ---
type MockEntityTypeService struct {
	mock.Mock
}

func (m *MockEntityTypeService) CreateEntityType(ctx context.Context, req dto.CreateEntityTypeRequest, userID string) (*domain.EntityType, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EntityType), args.Error(1)
}

func (m *MockEntityTypeService) GetEntityTypeByID(ctx context.Context, entityTypeID int64) (*domain.EntityType, error) {
	args := m.Called(ctx, entityTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EntityType), args.Error(1)
}

func (m *MockEntityTypeService) ListEntityTypes(ctx context.Context) ([]domain.EntityType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EntityType), args.Error(1)
}

var _ portssvc.EntityTypeSvcFacade = (*MockEntityTypeService)(nil)

// --- Mock CacheService ---
type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetEntityTypeByID(ctx context.Context, entityTypeID int64) (*domain.EntityType, error) {
	args := m.Called(ctx, entityTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EntityType), args.Error(1)
}

func (m *MockCacheService) GetTicketTypeByID(ctx context.Context, ticketTypeID int64) (*domain.TicketType, error) {
	args := m.Called(ctx, ticketTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TicketType), args.Error(1)
}

var _ portssvc.CacheLookupSvc = (*MockCacheService)(nil)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, accountTypeID int64, name string, userID string) (int64, error) {
	args := m.Called(ctx, accountTypeID, name, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) CreateAccountType(ctx context.Context, req dto.CreateAccountTypeRequest, userID string) (*domain.AccountType, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountType), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock TicketService ---
type MockTicketService struct {
	mock.Mock
}

func (m *MockTicketService) CreateTicketType(ctx context.Context, req dto.CreateTicketTypeRequest, userID string) (*domain.TicketType, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TicketType), args.Error(1)
}

func (m *MockTicketService) GetTicketTypeByID(ctx context.Context, ticketTypeID int64) (*domain.TicketType, error) {
	args := m.Called(ctx, ticketTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TicketType), args.Error(1)
}

func (m *MockTicketService) UpdateAccountOfOpenTickets(ctx context.Context, entity domain.Entity, userID string) error {
	args := m.Called(ctx, entity, userID)
	return args.Error(0)
}

var _ portssvc.TicketSvcFacade = (*MockTicketService)(nil)

// --- Mock PermissionService ---
type MockPermissionService struct {
	mock.Mock
}

func (m *MockPermissionService) IsPermitted(ctx context.Context, userID string, permission string) (domain.PermissionDecision, error) {
	args := m.Called(ctx, userID, permission)
	return args.Get(0).(domain.PermissionDecision), args.Error(1)
}

func (m *MockPermissionService) GrantPermissions(ctx context.Context, targetUserID string, permissions []string, requestingUserID string) (*domain.User, error) {
	args := m.Called(ctx, targetUserID, permissions, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.PermissionSvcFacade = (*MockPermissionService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

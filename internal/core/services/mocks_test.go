package services_test

import (
	"context"
	"time"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockEntityRepository is a mock type for the EntityRepositoryFacade interface
type MockEntityRepository struct {
	mock.Mock
}

func (m *MockEntityRepository) FindEntityByID(ctx context.Context, entityID int64) (*domain.Entity, error) {
	args := m.Called(ctx, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entity), args.Error(1)
}

func (m *MockEntityRepository) SaveEntity(ctx context.Context, entity domain.Entity) (int64, error) {
	args := m.Called(ctx, entity)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntityRepository) UpdateEntity(ctx context.Context, entity domain.Entity) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

// MockEntityTypeRepository is a mock type for the EntityTypeRepositoryFacade interface
type MockEntityTypeRepository struct {
	mock.Mock
}

func (m *MockEntityTypeRepository) FindEntityTypeByID(ctx context.Context, entityTypeID int64) (*domain.EntityType, error) {
	args := m.Called(ctx, entityTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EntityType), args.Error(1)
}

func (m *MockEntityTypeRepository) ListEntityTypes(ctx context.Context) ([]domain.EntityType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EntityType), args.Error(1)
}

func (m *MockEntityTypeRepository) SaveEntityType(ctx context.Context, entityType domain.EntityType) (int64, error) {
	args := m.Called(ctx, entityType)
	return args.Get(0).(int64), args.Error(1)
}

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (int64, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(int64), args.Error(1)
}

// MockAccountTypeRepository is a mock type for the AccountTypeRepositoryFacade interface
type MockAccountTypeRepository struct {
	mock.Mock
}

func (m *MockAccountTypeRepository) FindAccountTypeByID(ctx context.Context, accountTypeID int64) (*domain.AccountType, error) {
	args := m.Called(ctx, accountTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountType), args.Error(1)
}

func (m *MockAccountTypeRepository) SaveAccountType(ctx context.Context, accountType domain.AccountType) (int64, error) {
	args := m.Called(ctx, accountType)
	return args.Get(0).(int64), args.Error(1)
}

// MockTicketTypeRepository is a mock type for the TicketTypeRepositoryFacade interface
type MockTicketTypeRepository struct {
	mock.Mock
}

func (m *MockTicketTypeRepository) FindTicketTypeByID(ctx context.Context, ticketTypeID int64) (*domain.TicketType, error) {
	args := m.Called(ctx, ticketTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TicketType), args.Error(1)
}

func (m *MockTicketTypeRepository) SaveTicketType(ctx context.Context, ticketType domain.TicketType) (int64, error) {
	args := m.Called(ctx, ticketType)
	return args.Get(0).(int64), args.Error(1)
}

// MockTicketRepository is a mock type for the TicketWriter interface
type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) UpdateAccountOfOpenTickets(ctx context.Context, entityID int64, accountID int64, userID string, now time.Time) (int64, error) {
	args := m.Called(ctx, entityID, accountID, userID, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserPermissions(ctx context.Context, userID string, permissions []string, updatedBy string, now time.Time) error {
	args := m.Called(ctx, userID, permissions, updatedBy, now)
	return args.Error(0)
}

// MockPermissionChecker is a mock type for the PermissionCheckerSvc interface
type MockPermissionChecker struct {
	mock.Mock
}

func (m *MockPermissionChecker) IsPermitted(ctx context.Context, userID string, permission string) (domain.PermissionDecision, error) {
	args := m.Called(ctx, userID, permission)
	return args.Get(0).(domain.PermissionDecision), args.Error(1)
}

// MockInvalidator records cache invalidations.
type MockInvalidator struct {
	mock.Mock
}

func (m *MockInvalidator) InvalidateEntityType(entityTypeID int64) {
	m.Called(entityTypeID)
}

func (m *MockInvalidator) InvalidateTicketType(ticketTypeID int64) {
	m.Called(ticketTypeID)
}

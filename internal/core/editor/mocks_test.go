package editor_test

import (
	"context"
	"sync"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockCache is a mock type for the CacheLookupSvc interface
type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetEntityTypeByID(ctx context.Context, entityTypeID int64) (*domain.EntityType, error) {
	args := m.Called(ctx, entityTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EntityType), args.Error(1)
}

func (m *MockCache) GetTicketTypeByID(ctx context.Context, ticketTypeID int64) (*domain.TicketType, error) {
	args := m.Called(ctx, ticketTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TicketType), args.Error(1)
}

// MockEntityStorage is a mock type for the EntityStorageSvc interface
type MockEntityStorage struct {
	mock.Mock
}

func (m *MockEntityStorage) SaveEntity(ctx context.Context, entity *domain.Entity, userID string) error {
	args := m.Called(ctx, entity, userID)
	return args.Error(0)
}

// MockAccountCreator is a mock type for the AccountCreatorSvc interface
type MockAccountCreator struct {
	mock.Mock
}

func (m *MockAccountCreator) CreateAccount(ctx context.Context, accountTypeID int64, name string, userID string) (int64, error) {
	args := m.Called(ctx, accountTypeID, name, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockTicketUpdater is a mock type for the TicketAccountUpdaterSvc interface
type MockTicketUpdater struct {
	mock.Mock
}

func (m *MockTicketUpdater) UpdateAccountOfOpenTickets(ctx context.Context, entity domain.Entity, userID string) error {
	args := m.Called(ctx, entity, userID)
	return args.Error(0)
}

// fakePermissions grants or denies every permission.
type fakePermissions struct {
	granted bool
	err     error
}

func (f *fakePermissions) IsPermitted(_ context.Context, _ string, permission string) (domain.PermissionDecision, error) {
	if f.err != nil {
		return domain.PermissionDecision{}, f.err
	}
	if f.granted {
		return domain.Granted(permission), nil
	}
	return domain.Denied(permission, "not granted"), nil
}

// fakeScreens is an in-memory ApplicationStateSvc.
type fakeScreens struct {
	mu      sync.Mutex
	screens map[string]domain.ScreenConfig
}

func newFakeScreens() *fakeScreens {
	return &fakeScreens{screens: make(map[string]domain.ScreenConfig)}
}

func (f *fakeScreens) CurrentScreen(_ context.Context, userID string) (*domain.ScreenConfig, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	screen, ok := f.screens[userID]
	if !ok {
		return nil, false
	}
	return &screen, true
}

func (f *fakeScreens) SetCurrentScreen(_ context.Context, userID string, screen domain.ScreenConfig) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.screens[userID] = screen
}

func (f *fakeScreens) ClearCurrentScreen(_ context.Context, userID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.screens, userID)
}

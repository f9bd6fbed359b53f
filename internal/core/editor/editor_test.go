package editor_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/apperrors"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/editor"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/events"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testUserID = "user-1"

func customersType() domain.EntityType {
	return domain.EntityType{
		ID:                  1,
		Name:                "Customers",
		EntityName:          "Customer",
		PrimaryFieldName:    "Customer Name",
		PrimaryFieldFormat:  "(###) ###-####",
		AccountTypeID:       3,
		AccountNameTemplate: "[Name]-ACC",
		CustomFields: []domain.EntityCustomField{
			{Name: "Phone", Type: domain.FieldString, ValidationTag: "numeric"},
			{Name: "Credit Limit", Type: domain.FieldNumber},
			{Name: "Birthday", Type: domain.FieldDate},
		},
	}
}

func vendorsType() domain.EntityType {
	return domain.EntityType{
		ID:                  2,
		Name:                "Vendors",
		AccountTypeID:       4,
		AccountNameTemplate: "[:Code]",
		CustomFields: []domain.EntityCustomField{
			{Name: "Code", Type: domain.FieldString},
		},
	}
}

type EditorTestSuite struct {
	suite.Suite
	ctx         context.Context
	cache       *MockCache
	entities    *MockEntityStorage
	accounts    *MockAccountCreator
	tickets     *MockTicketUpdater
	permissions *fakePermissions
	screens     *fakeScreens
	bus         *events.Bus
	published   []events.Notification
	editor      *editor.Editor
}

func (s *EditorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.cache = new(MockCache)
	s.entities = new(MockEntityStorage)
	s.accounts = new(MockAccountCreator)
	s.tickets = new(MockTicketUpdater)
	s.permissions = &fakePermissions{granted: true}
	s.screens = newFakeScreens()
	s.bus = events.NewBus()
	s.published = nil
	s.bus.SubscribeAll(func(_ context.Context, n events.Notification) error {
		s.published = append(s.published, n)
		return nil
	})

	customers, vendors := customersType(), vendorsType()
	s.cache.On("GetEntityTypeByID", mock.Anything, int64(1)).Return(&customers, nil).Maybe()
	s.cache.On("GetEntityTypeByID", mock.Anything, int64(2)).Return(&vendors, nil).Maybe()
	s.cache.On("GetEntityTypeByID", mock.Anything, int64(99)).Return(nil, fmt.Errorf("%w: entity type 99", apperrors.ErrLookup)).Maybe()
	s.cache.On("GetTicketTypeByID", mock.Anything, int64(7)).Return(&domain.TicketType{ID: 7, EntityTypeAssignments: []int64{1}}, nil).Maybe()
	s.cache.On("GetTicketTypeByID", mock.Anything, int64(8)).Return(&domain.TicketType{ID: 8, EntityTypeAssignments: []int64{2}}, nil).Maybe()
	s.cache.On("GetTicketTypeByID", mock.Anything, int64(9)).Return(nil, fmt.Errorf("%w: ticket type 9", apperrors.ErrLookup)).Maybe()

	s.editor = editor.NewEditor(testUserID, editor.Deps{
		Cache:       s.cache,
		Entities:    s.entities,
		Accounts:    s.accounts,
		Permissions: s.permissions,
		Tickets:     s.tickets,
		AppState:    s.screens,
		Publisher:   s.bus,
	})
}

func (s *EditorTestSuite) begin(entity domain.Entity) {
	s.Require().NoError(s.editor.BeginEdit(s.ctx, domain.EntityOperationRequest{SelectedEntity: entity}))
}

// expectSaves makes SaveEntity succeed and hand out id 42 to new entities.
func (s *EditorTestSuite) expectSaves() {
	s.entities.On("SaveEntity", mock.Anything, mock.AnythingOfType("*domain.Entity"), testUserID).
		Run(func(args mock.Arguments) {
			if e := args.Get(1).(*domain.Entity); e.ID == 0 {
				e.ID = 42
			}
		}).
		Return(nil)
}

func (s *EditorTestSuite) TestBeginEdit_UnnamedNewEntity() {
	s.begin(domain.Entity{EntityTypeID: 1})

	snap := s.editor.Snapshot()
	s.Equal(editor.StatePopulated, snap.State)
	s.Require().NotNil(snap.Request)
	s.Equal(string(events.EntitySelected), snap.Request.ExpectedEvent)
	s.False(snap.View.CanSelect)
	s.False(snap.View.CanSave)
	s.False(snap.View.CanCreateAccount)
	s.Equal("Customer Name", snap.View.PrimaryFieldName)
	s.Equal("(###) ###-####", snap.View.PrimaryFieldFormat)
	s.Equal("Select Customer", snap.View.SelectCaption)
	s.Equal("Save", snap.View.SaveCaption)
	s.Equal("Create Account", snap.View.CreateAccountCaption)
}

func (s *EditorTestSuite) TestBeginEdit_NamedEntityEnablesCommands() {
	s.begin(domain.Entity{ID: 5, Name: "Acme", EntityTypeID: 1})

	view := s.editor.Snapshot().View
	s.True(view.CanSelect)
	s.True(view.CanSave)
	s.True(view.CanCreateAccount)
}

func (s *EditorTestSuite) TestBeginEdit_UnknownEntityTypeKeepsPreviousSession() {
	s.begin(domain.Entity{ID: 5, Name: "Acme", EntityTypeID: 1})

	err := s.editor.BeginEdit(s.ctx, domain.EntityOperationRequest{SelectedEntity: domain.Entity{ID: 6, EntityTypeID: 99}})

	s.ErrorIs(err, apperrors.ErrLookup)
	snap := s.editor.Snapshot()
	s.Require().NotNil(snap.Entity)
	s.Equal(int64(5), snap.Entity.ID)
}

func (s *EditorTestSuite) TestBeginEdit_UnknownTicketTypeCreatesNoSession() {
	s.screens.SetCurrentScreen(s.ctx, testUserID, domain.ScreenConfig{Name: "POS", TicketTypeID: 9})

	err := s.editor.BeginEdit(s.ctx, domain.EntityOperationRequest{SelectedEntity: domain.Entity{ID: 5, Name: "Acme", EntityTypeID: 1}})

	s.ErrorIs(err, apperrors.ErrLookup)
	s.Equal(editor.StateIdle, s.editor.Snapshot().State)
}

func (s *EditorTestSuite) TestBeginEdit_RejectsEditRequestAsReplyTopic() {
	for _, topic := range []events.Topic{events.EditEntityDetails, events.SelectEntity} {
		err := s.editor.BeginEdit(s.ctx, domain.EntityOperationRequest{
			SelectedEntity: domain.Entity{ID: 5, Name: "Acme", EntityTypeID: 1},
			ExpectedEvent:  string(topic),
		})

		s.ErrorIs(err, apperrors.ErrValidation, string(topic))
		s.Equal(editor.StateIdle, s.editor.Snapshot().State, string(topic))
	}
	s.Empty(s.published)
}

func (s *EditorTestSuite) TestEntitySelectorVisibility() {
	s.begin(domain.Entity{ID: 5, Name: "Acme", EntityTypeID: 1})
	s.False(s.editor.Snapshot().View.EntitySelectorVisible, "no current screen")

	s.screens.SetCurrentScreen(s.ctx, testUserID, domain.ScreenConfig{Name: "POS", TicketTypeID: 7})
	s.begin(domain.Entity{ID: 5, Name: "Acme", EntityTypeID: 1})
	s.True(s.editor.Snapshot().View.EntitySelectorVisible)

	s.screens.SetCurrentScreen(s.ctx, testUserID, domain.ScreenConfig{Name: "Delivery", TicketTypeID: 8})
	s.begin(domain.Entity{ID: 5, Name: "Acme", EntityTypeID: 1})
	s.False(s.editor.Snapshot().View.EntitySelectorVisible)
}

func (s *EditorTestSuite) TestRefresh_PicksUpScreenChange() {
	s.begin(domain.Entity{ID: 5, Name: "Acme", EntityTypeID: 1})

	s.screens.SetCurrentScreen(s.ctx, testUserID, domain.ScreenConfig{Name: "POS", TicketTypeID: 7})
	s.editor.Refresh(s.ctx)
	s.True(s.editor.Snapshot().View.EntitySelectorVisible)

	s.screens.SetCurrentScreen(s.ctx, testUserID, domain.ScreenConfig{Name: "Broken", TicketTypeID: 9})
	s.editor.Refresh(s.ctx)
	snap := s.editor.Snapshot()
	s.Equal(editor.StatePopulated, snap.State, "lookup failures after begin are not fatal")
	s.False(snap.View.EntitySelectorVisible)
}

func (s *EditorTestSuite) TestUpdate_WithoutSession() {
	name := "Acme"
	err := s.editor.Update(s.ctx, editor.Changes{Name: &name})
	s.ErrorIs(err, apperrors.ErrPreconditionNotMet)
}

func (s *EditorTestSuite) TestUpdate_NameOpensGates() {
	s.begin(domain.Entity{EntityTypeID: 1})
	name := "Bob"

	s.Require().NoError(s.editor.Update(s.ctx, editor.Changes{Name: &name}))

	snap := s.editor.Snapshot()
	s.Equal("Bob", snap.Entity.Name)
	s.True(snap.View.CanSave)
	s.True(snap.View.CanCreateAccount)
}

func (s *EditorTestSuite) TestUpdate_UnknownFieldIsRejectedAndNothingStaged() {
	s.begin(domain.Entity{ID: 5, Name: "Acme", EntityTypeID: 1})
	rename := "Acme Ltd"

	err := s.editor.Update(s.ctx, editor.Changes{Name: &rename, Fields: map[string]string{"Phone": "123", "Bogus": "x"}})
	s.ErrorIs(err, apperrors.ErrValidation)
	s.ErrorIs(s.editor.Update(s.ctx, editor.Changes{Fields: map[string]string{"Bogus": ""}}), apperrors.ErrValidation)

	snap := s.editor.Snapshot()
	s.Equal("Acme", snap.Entity.Name)
	s.Empty(snap.PendingFields)

	s.expectSaves()
	executed, err := s.editor.Save(s.ctx)
	s.Require().NoError(err)
	s.True(executed)
}

func (s *EditorTestSuite) TestSave_GateClosedIsNoop() {
	executed, err := s.editor.Save(s.ctx)
	s.NoError(err)
	s.False(executed)

	s.begin(domain.Entity{EntityTypeID: 1})
	executed, err = s.editor.Save(s.ctx)
	s.NoError(err)
	s.False(executed)

	s.entities.AssertNotCalled(s.T(), "SaveEntity", mock.Anything, mock.Anything, mock.Anything)
	s.Empty(s.published)
}

func (s *EditorTestSuite) TestSave_FlushesPendingFieldsAndPublishesPair() {
	s.begin(domain.Entity{ID: 5, Name: "Acme", EntityTypeID: 1, CustomData: domain.CustomData{"Phone": "555"}})
	s.Require().NoError(s.editor.Update(s.ctx, editor.Changes{Fields: map[string]string{"Credit Limit": "150.50", "Phone": ""}}))
	s.expectSaves()

	executed, err := s.editor.Save(s.ctx)

	s.Require().NoError(err)
	s.True(executed)
	s.entities.AssertNumberOfCalls(s.T(), "SaveEntity", 1)
	saved := s.entities.Calls[0].Arguments.Get(1).(*domain.Entity)
	s.Equal(domain.CustomData{"Credit Limit": "150.50"}, saved.CustomData)

	s.Require().Len(s.published, 1)
	s.Equal(events.SelectEntity, s.published[0].Topic)
	s.Equal(string(events.EntitySelected), s.published[0].Request.ExpectedEvent)
	s.Equal("150.50", s.published[0].Request.SelectedEntity.CustomData["Credit Limit"])

	s.Equal(editor.StatePopulated, s.editor.Snapshot().State)
}

func (s *EditorTestSuite) TestSave_InvalidFieldIsRejectedBeforeStorage() {
	s.begin(domain.Entity{ID: 5, Name: "Acme", EntityTypeID: 1})
	s.Require().NoError(s.editor.Update(s.ctx, editor.Changes{Fields: map[string]string{"Phone": "call me"}}))

	executed, err := s.editor.Save(s.ctx)

	s.True(executed)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.entities.AssertNotCalled(s.T(), "SaveEntity", mock.Anything, mock.Anything, mock.Anything)
	s.Empty(s.published)
}

func (s *EditorTestSuite) TestSave_StorageErrorLeavesSessionUnchanged() {
	dbErr := errors.New("connection reset")
	s.begin(domain.Entity{Name: "Bob", EntityTypeID: 1})
	s.Require().NoError(s.editor.Update(s.ctx, editor.Changes{Fields: map[string]string{"Birthday": "1990-04-01"}}))
	s.entities.On("SaveEntity", mock.Anything, mock.AnythingOfType("*domain.Entity"), testUserID).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Entity).ID = 42 }).
		Return(dbErr).Once()

	executed, err := s.editor.Save(s.ctx)

	s.True(executed)
	s.ErrorIs(err, apperrors.ErrStorage)
	s.ErrorIs(err, dbErr)
	snap := s.editor.Snapshot()
	s.Equal(int64(0), snap.Entity.ID)
	s.Empty(snap.Entity.CustomData)
	s.Equal("1990-04-01", snap.PendingFields["Birthday"])
	s.Empty(s.published)
}

func (s *EditorTestSuite) TestSave_StorageValidationErrorKeepsItsKind() {
	s.begin(domain.Entity{ID: 5, Name: "  ", EntityTypeID: 1})
	s.entities.On("SaveEntity", mock.Anything, mock.Anything, testUserID).
		Return(fmt.Errorf("%w: entity name is required", apperrors.ErrValidation)).Once()

	executed, err := s.editor.Save(s.ctx)

	s.True(executed)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.NotErrorIs(err, apperrors.ErrStorage)
	s.Empty(s.published)
}

func (s *EditorTestSuite) TestSaveThenEditAnother_LeavesNothingOfFirstEntity() {
	s.screens.SetCurrentScreen(s.ctx, testUserID, domain.ScreenConfig{Name: "POS", TicketTypeID: 7})
	s.expectSaves()
	s.begin(domain.Entity{ID: 5, Name: "Acme", EntityTypeID: 1, CustomData: domain.CustomData{"Phone": "555"}})
	s.Require().NoError(s.editor.Update(s.ctx, editor.Changes{Fields: map[string]string{"Credit Limit": "20"}}))
	s.True(s.editor.Snapshot().View.EntitySelectorVisible)

	executed, err := s.editor.Save(s.ctx)
	s.Require().NoError(err)
	s.True(executed)

	s.begin(domain.Entity{ID: 8, Name: "Supplier", EntityTypeID: 2})
	snap := s.editor.Snapshot()
	s.Equal(int64(8), snap.Entity.ID)
	s.Empty(snap.Entity.CustomData)
	s.Empty(snap.PendingFields)
	s.False(snap.View.EntitySelectorVisible)
	s.Equal("Name", snap.View.PrimaryFieldName)
	s.Empty(snap.View.PrimaryFieldFormat)
	s.Equal("Select Entity", snap.View.SelectCaption)

	executed, err = s.editor.Select(s.ctx)
	s.Require().NoError(err)
	s.True(executed)
	s.Require().Len(s.published, 2)
	reply := s.published[1]
	s.Equal(events.EntitySelected, reply.Topic)
	s.Equal(int64(8), reply.Request.SelectedEntity.ID)
	s.Equal("Supplier", reply.Request.SelectedEntity.Name)
	s.Empty(reply.Request.SelectedEntity.CustomData)
}

func (s *EditorTestSuite) TestSelect_PersistsOnceAndRepliesToRequester() {
	s.Require().NoError(s.editor.BeginEdit(s.ctx, domain.EntityOperationRequest{
		SelectedEntity: domain.Entity{ID: 5, Name: "Acme", EntityTypeID: 1},
		ExpectedEvent:  "TicketEntitySelected",
		Source:         "ticket-42",
	}))
	s.expectSaves()

	executed, err := s.editor.Select(s.ctx)

	s.Require().NoError(err)
	s.True(executed)
	s.entities.AssertNumberOfCalls(s.T(), "SaveEntity", 1)
	s.Require().Len(s.published, 1)
	s.Equal(events.Topic("TicketEntitySelected"), s.published[0].Topic)
	s.Equal("ticket-42", s.published[0].Request.Source)
	s.Equal(int64(5), s.published[0].Request.SelectedEntity.ID)
	s.Equal(editor.StateIdle, s.editor.Snapshot().State)
}

func (s *EditorTestSuite) TestSelect_StorageErrorKeepsSession() {
	s.begin(domain.Entity{ID: 5, Name: "Acme", EntityTypeID: 1})
	s.entities.On("SaveEntity", mock.Anything, mock.Anything, testUserID).Return(fmt.Errorf("%w: disk full", apperrors.ErrStorage)).Once()

	executed, err := s.editor.Select(s.ctx)

	s.True(executed)
	s.ErrorIs(err, apperrors.ErrStorage)
	s.Equal(editor.StatePopulated, s.editor.Snapshot().State)
	s.Empty(s.published)
}

func (s *EditorTestSuite) TestCreateAccount_ExistingEntity() {
	s.begin(domain.Entity{ID: 5, Name: "Acme", EntityTypeID: 1})
	s.expectSaves()
	s.accounts.On("CreateAccount", mock.Anything, int64(3), "Acme-ACC", testUserID).Return(int64(77), nil).Once()
	s.tickets.On("UpdateAccountOfOpenTickets", mock.Anything, mock.MatchedBy(func(e domain.Entity) bool {
		return e.ID == 5 && e.AccountID == 77
	}), testUserID).Return(nil).Once()

	executed, err := s.editor.CreateAccount(s.ctx)

	s.Require().NoError(err)
	s.True(executed)
	s.entities.AssertNumberOfCalls(s.T(), "SaveEntity", 1)
	s.accounts.AssertExpectations(s.T())
	s.tickets.AssertExpectations(s.T())

	snap := s.editor.Snapshot()
	s.Equal(int64(77), snap.Entity.AccountID)
	s.False(snap.View.CanCreateAccount)
	s.Require().Len(s.published, 1)
	s.Equal(events.SelectEntity, s.published[0].Topic)
	s.Equal(int64(77), s.published[0].Request.SelectedEntity.AccountID)
}

func (s *EditorTestSuite) TestCreateAccount_NewEntityIsSavedBeforeAndAfterLinking() {
	s.begin(domain.Entity{Name: "Bob", EntityTypeID: 1})
	s.expectSaves()
	s.accounts.On("CreateAccount", mock.Anything, int64(3), "Bob-ACC", testUserID).Return(int64(77), nil).Once()
	s.tickets.On("UpdateAccountOfOpenTickets", mock.Anything, mock.MatchedBy(func(e domain.Entity) bool {
		return e.ID == 42 && e.AccountID == 77
	}), testUserID).Return(nil).Once()

	executed, err := s.editor.CreateAccount(s.ctx)

	s.Require().NoError(err)
	s.True(executed)
	s.entities.AssertNumberOfCalls(s.T(), "SaveEntity", 2)
	first := s.entities.Calls[0].Arguments.Get(1).(*domain.Entity)
	second := s.entities.Calls[1].Arguments.Get(1).(*domain.Entity)
	s.Equal(int64(0), first.AccountID)
	s.Equal(int64(42), second.ID)
	s.Equal(int64(77), second.AccountID)
	s.tickets.AssertNumberOfCalls(s.T(), "UpdateAccountOfOpenTickets", 1)
	s.Len(s.published, 1)
}

func (s *EditorTestSuite) TestCreateAccount_NameFromPendingFields() {
	s.begin(domain.Entity{ID: 8, Name: "Supplier", EntityTypeID: 2})
	s.False(s.editor.Snapshot().View.CanCreateAccount, "template needs Code")

	s.Require().NoError(s.editor.Update(s.ctx, editor.Changes{Fields: map[string]string{"Code": "V-1"}}))
	snap := s.editor.Snapshot()
	s.True(snap.View.CanCreateAccount)
	s.Empty(snap.Entity.CustomData, "gate must not flush")

	s.expectSaves()
	s.accounts.On("CreateAccount", mock.Anything, int64(4), "V-1", testUserID).Return(int64(90), nil).Once()
	s.tickets.On("UpdateAccountOfOpenTickets", mock.Anything, mock.Anything, testUserID).Return(nil).Once()

	executed, err := s.editor.CreateAccount(s.ctx)

	s.Require().NoError(err)
	s.True(executed)
	saved := s.entities.Calls[0].Arguments.Get(1).(*domain.Entity)
	s.Equal("V-1", saved.CustomData["Code"])
	s.Equal(int64(90), saved.AccountID)
}

func (s *EditorTestSuite) TestCreateAccount_PermissionDenied() {
	s.permissions.granted = false
	s.begin(domain.Entity{ID: 5, Name: "Acme", EntityTypeID: 1})
	s.False(s.editor.Snapshot().View.CanCreateAccount)

	executed, err := s.editor.CreateAccount(s.ctx)

	s.NoError(err)
	s.False(executed)
	s.accounts.AssertNotCalled(s.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *EditorTestSuite) TestCreateAccount_PermissionCheckError() {
	s.begin(domain.Entity{ID: 5, Name: "Acme", EntityTypeID: 1})
	s.permissions.err = errors.New("user store down")

	executed, err := s.editor.CreateAccount(s.ctx)

	s.Error(err)
	s.False(executed)
}

func (s *EditorTestSuite) TestCreateAccount_AlreadyLinked() {
	s.begin(domain.Entity{ID: 5, Name: "Acme", EntityTypeID: 1, AccountID: 12})

	executed, err := s.editor.CreateAccount(s.ctx)

	s.NoError(err)
	s.False(executed)
}

func (s *EditorTestSuite) TestCreateAccount_AccountFailureLeavesEntityUnlinked() {
	s.begin(domain.Entity{ID: 5, Name: "Acme", EntityTypeID: 1})
	s.accounts.On("CreateAccount", mock.Anything, int64(3), "Acme-ACC", testUserID).Return(int64(0), errors.New("ledger offline")).Once()

	executed, err := s.editor.CreateAccount(s.ctx)

	s.True(executed)
	s.ErrorIs(err, apperrors.ErrAccount)
	s.Equal(int64(0), s.editor.Snapshot().Entity.AccountID)
	s.entities.AssertNotCalled(s.T(), "SaveEntity", mock.Anything, mock.Anything, mock.Anything)
	s.tickets.AssertNotCalled(s.T(), "UpdateAccountOfOpenTickets", mock.Anything, mock.Anything, mock.Anything)
	s.Empty(s.published)
}

func (s *EditorTestSuite) TestCreateAccount_SaveAfterLinkFailsKeepsAccountID() {
	s.begin(domain.Entity{ID: 5, Name: "Acme", EntityTypeID: 1})
	s.accounts.On("CreateAccount", mock.Anything, int64(3), "Acme-ACC", testUserID).Return(int64(77), nil).Once()
	s.entities.On("SaveEntity", mock.Anything, mock.Anything, testUserID).Return(errors.New("timeout")).Once()

	executed, err := s.editor.CreateAccount(s.ctx)

	s.True(executed)
	s.ErrorIs(err, apperrors.ErrStorage)
	snap := s.editor.Snapshot()
	s.Equal(int64(77), snap.Entity.AccountID)
	s.False(snap.View.CanCreateAccount)
	s.tickets.AssertNotCalled(s.T(), "UpdateAccountOfOpenTickets", mock.Anything, mock.Anything, mock.Anything)
	s.Empty(s.published)
}

func TestEditorTestSuite(t *testing.T) {
	suite.Run(t, new(EditorTestSuite))
}

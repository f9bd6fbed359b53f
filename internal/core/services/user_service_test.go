package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/apperrors"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	portssvc "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/ports/services"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/services"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/dto"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo, []string{domain.PermissionCreateAccount})
}

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{Username: "testuser", Password: "password123", Name: "Test User"}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "testuser").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == "testuser" && user.PasswordHash != "" && user.PasswordHash != req.Password
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.Equal([]string{domain.PermissionCreateAccount}, user.Permissions)
	suite.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_UsernameTaken() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "taken").Return(&domain.User{UserID: "x", Username: "taken"}, nil).Once()

	user, err := suite.service.CreateUser(ctx, dto.RegisterRequest{Username: "taken", Password: "password123", Name: "T"})

	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct horse")
	suite.Require().NoError(err)
	suite.mockUserRepo.On("FindUserByUsername", ctx, "alice").Return(&domain.User{UserID: "a1", Username: "alice", PasswordHash: hash}, nil)
	suite.mockUserRepo.On("FindUserByUsername", ctx, "nobody").Return(nil, apperrors.ErrNotFound)

	user, err := suite.service.AuthenticateUser(ctx, "alice", "correct horse")
	suite.Require().NoError(err)
	suite.Equal("a1", user.UserID)

	_, err = suite.service.AuthenticateUser(ctx, "alice", "wrong")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = suite.service.AuthenticateUser(ctx, "nobody", "whatever")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestGetUserByID_Error() {
	ctx := context.Background()
	dbErr := errors.New("db down")
	suite.mockUserRepo.On("FindUserByID", ctx, "u").Return(nil, dbErr).Once()

	_, err := suite.service.GetUserByID(ctx, "u")

	suite.ErrorIs(err, dbErr)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

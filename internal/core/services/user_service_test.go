package services_test

import (
	"context"
	"testing"

	"github.com/stackscout/stackscout/internal/apperrors"
	"github.com/stackscout/stackscout/internal/core/domain"
	portssvc "github.com/stackscout/stackscout/internal/core/ports/services"
	"github.com/stackscout/stackscout/internal/core/services"
	"github.com/stackscout/stackscout/internal/dto"
	"github.com/stackscout/stackscout/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	userRepo *MockUserRepository
	service  portssvc.UserSvcFacade
	ctx      context.Context
}

func (s *UserServiceTestSuite) SetupTest() {
	s.userRepo = new(MockUserRepository)
	s.service = services.NewUserService(s.userRepo)
	s.ctx = context.Background()
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) TestCreateUser_Success() {
	s.userRepo.On("FindUserByUsername", s.ctx, "alice@example.com").Return(nil, apperrors.ErrNotFound)

	var saved domain.User
	s.userRepo.On("SaveUser", s.ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.User)
		}).
		Return(nil)

	req := dto.CreateUserRequest{Username: "alice@example.com", Password: "s3cretpass", Name: "Alice"}
	user, err := s.service.CreateUser(s.ctx, req)

	s.Require().NoError(err)
	s.NotEmpty(user.UserID)
	s.Equal(domain.ProviderLocal, saved.AuthProvider)
	s.NotEqual("s3cretpass", saved.PasswordHash, "password must be stored hashed")
	s.True(utils.CheckPasswordHash("s3cretpass", saved.PasswordHash))
	s.True(saved.NotificationPrefs.JobAlerts, "notifications default on")
	s.True(saved.NotificationPrefs.Recommendations)
	s.True(saved.NotificationPrefs.SearchComplete)
}

func (s *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	existing := &domain.User{UserID: "u1", Username: "alice@example.com"}
	s.userRepo.On("FindUserByUsername", s.ctx, "alice@example.com").Return(existing, nil)

	req := dto.CreateUserRequest{Username: "alice@example.com", Password: "s3cretpass", Name: "Alice"}
	_, err := s.service.CreateUser(s.ctx, req)

	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.userRepo.AssertNotCalled(s.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestFindOrCreateOAuthUser_ExistingUserReturned() {
	existing := &domain.User{UserID: "u1", Username: "bob@example.com", AuthProvider: domain.ProviderGoogle}
	s.userRepo.On("FindUserByUsername", s.ctx, "bob@example.com").Return(existing, nil)

	user, err := s.service.FindOrCreateOAuthUser(s.ctx, domain.ProviderGoogle, "bob@example.com", "Bob")

	s.Require().NoError(err)
	s.Equal("u1", user.UserID)
	s.userRepo.AssertNotCalled(s.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestFindOrCreateOAuthUser_CreatesOnFirstLogin() {
	s.userRepo.On("FindUserByUsername", s.ctx, "bob@example.com").Return(nil, apperrors.ErrNotFound)

	var saved domain.User
	s.userRepo.On("SaveUser", s.ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.User)
		}).
		Return(nil)

	user, err := s.service.FindOrCreateOAuthUser(s.ctx, domain.ProviderGoogle, "bob@example.com", "Bob")

	s.Require().NoError(err)
	s.Equal(domain.ProviderGoogle, saved.AuthProvider)
	s.Empty(saved.PasswordHash, "oauth accounts have no local password")
	s.Equal(user.UserID, saved.UserID)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_Success() {
	hash, err := utils.HashPassword("s3cretpass")
	s.Require().NoError(err)
	existing := &domain.User{
		UserID:       "u1",
		Username:     "alice@example.com",
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
	}
	s.userRepo.On("FindUserByUsername", s.ctx, "alice@example.com").Return(existing, nil)

	user, err := s.service.AuthenticateUser(s.ctx, "alice@example.com", "s3cretpass")

	s.Require().NoError(err)
	s.Equal("u1", user.UserID)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	hash, err := utils.HashPassword("correct-password")
	s.Require().NoError(err)
	existing := &domain.User{
		UserID:       "u1",
		Username:     "alice@example.com",
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
	}
	s.userRepo.On("FindUserByUsername", s.ctx, "alice@example.com").Return(existing, nil)

	_, err = s.service.AuthenticateUser(s.ctx, "alice@example.com", "wrong-password")

	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_UnknownUser() {
	s.userRepo.On("FindUserByUsername", s.ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound)

	_, err := s.service.AuthenticateUser(s.ctx, "ghost@example.com", "whatever")

	s.ErrorIs(err, apperrors.ErrUnauthorized, "unknown users get the same error as bad passwords")
}

func (s *UserServiceTestSuite) TestAuthenticateUser_OAuthOnlyAccountRejected() {
	existing := &domain.User{
		UserID:       "u1",
		Username:     "bob@example.com",
		AuthProvider: domain.ProviderGoogle,
	}
	s.userRepo.On("FindUserByUsername", s.ctx, "bob@example.com").Return(existing, nil)

	_, err := s.service.AuthenticateUser(s.ctx, "bob@example.com", "anything")

	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *UserServiceTestSuite) TestUpdateUser_ForbiddenForOtherUsers() {
	name := "Mallory"
	_, err := s.service.UpdateUser(s.ctx, "victim", dto.UpdateUserRequest{Name: &name}, "attacker")

	s.ErrorIs(err, apperrors.ErrForbidden)
	s.userRepo.AssertNotCalled(s.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestDeleteUser_ForbiddenForOtherUsers() {
	err := s.service.DeleteUser(s.ctx, "victim", "attacker")

	s.ErrorIs(err, apperrors.ErrForbidden)
	s.userRepo.AssertNotCalled(s.T(), "MarkUserDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestUpdateNotificationPrefs() {
	prefs := domain.NotificationPreferences{JobAlerts: false, Recommendations: true, SearchComplete: false}
	s.userRepo.On("UpdateNotificationPrefs", s.ctx, "u1", prefs).Return(nil)

	err := s.service.UpdateNotificationPrefs(s.ctx, "u1", prefs)

	s.NoError(err)
	s.userRepo.AssertExpectations(s.T())
}

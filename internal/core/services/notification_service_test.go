package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stackscout/stackscout/internal/core/domain"
	portssvc "github.com/stackscout/stackscout/internal/core/ports/services"
	"github.com/stackscout/stackscout/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type NotificationServiceTestSuite struct {
	suite.Suite
	notificationRepo *MockNotificationRepository
	userRepo         *MockUserRepository
	sender           *MockSender
	service          portssvc.NotificationSvcFacade
	ctx              context.Context
}

func (s *NotificationServiceTestSuite) SetupTest() {
	s.notificationRepo = new(MockNotificationRepository)
	s.userRepo = new(MockUserRepository)
	s.sender = new(MockSender)
	s.service = services.NewNotificationService(s.notificationRepo, s.userRepo, s.sender)
	s.ctx = context.Background()
}

func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}

func userWithPrefs(prefs domain.NotificationPreferences) *domain.User {
	return &domain.User{UserID: "u1", Username: "alice@example.com", NotificationPrefs: prefs}
}

func (s *NotificationServiceTestSuite) TestNotify_PersistsAndForwards() {
	s.userRepo.On("FindUserByID", s.ctx, "u1").
		Return(userWithPrefs(domain.NotificationPreferences{JobAlerts: true}), nil)

	var saved domain.Notification
	s.notificationRepo.On("SaveNotification", s.ctx, mock.AnythingOfType("domain.Notification")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Notification)
		}).
		Return(nil)
	s.sender.On("Send", "New jobs", "5 new Go jobs found").Return(nil)

	err := s.service.Notify(s.ctx, "u1", domain.NotificationJobAlert, "New jobs", "5 new Go jobs found")

	s.Require().NoError(err)
	s.Equal("u1", saved.UserID)
	s.Equal(domain.NotificationJobAlert, saved.Type)
	s.False(saved.IsRead)
	s.sender.AssertExpectations(s.T())
}

func (s *NotificationServiceTestSuite) TestNotify_SuppressedByPreferences() {
	s.userRepo.On("FindUserByID", s.ctx, "u1").
		Return(userWithPrefs(domain.NotificationPreferences{JobAlerts: false}), nil)

	err := s.service.Notify(s.ctx, "u1", domain.NotificationJobAlert, "New jobs", "ignored")

	s.Require().NoError(err)
	s.notificationRepo.AssertNotCalled(s.T(), "SaveNotification", mock.Anything, mock.Anything)
	s.sender.AssertNotCalled(s.T(), "Send", mock.Anything, mock.Anything)
}

func (s *NotificationServiceTestSuite) TestNotify_SystemTypeIgnoresPreferences() {
	s.userRepo.On("FindUserByID", s.ctx, "u1").
		Return(userWithPrefs(domain.NotificationPreferences{}), nil)
	s.notificationRepo.On("SaveNotification", s.ctx, mock.AnythingOfType("domain.Notification")).Return(nil)
	s.sender.On("Send", mock.Anything, mock.Anything).Return(nil)

	err := s.service.Notify(s.ctx, "u1", domain.NotificationSystem, "Maintenance", "Scheduled downtime")

	s.Require().NoError(err)
	s.notificationRepo.AssertExpectations(s.T())
}

func (s *NotificationServiceTestSuite) TestNotify_SenderFailureDoesNotFail() {
	s.userRepo.On("FindUserByID", s.ctx, "u1").
		Return(userWithPrefs(domain.NotificationPreferences{Recommendations: true}), nil)
	s.notificationRepo.On("SaveNotification", s.ctx, mock.AnythingOfType("domain.Notification")).Return(nil)
	s.sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("telegram down"))

	err := s.service.Notify(s.ctx, "u1", domain.NotificationRecommendation, "Picks for you", "3 new matches")

	s.NoError(err, "external delivery is best-effort")
}

func (s *NotificationServiceTestSuite) TestMarkManyRead_ReturnsUpdatedCount() {
	ids := []string{"n1", "n2", "n3"}
	s.notificationRepo.On("MarkManyRead", s.ctx, "u1", ids).Return(2, nil)

	updated, err := s.service.MarkManyRead(s.ctx, "u1", ids)

	s.Require().NoError(err)
	s.Equal(2, updated)
}

func (s *NotificationServiceTestSuite) TestListNotifications_UnreadOnlyPassedThrough() {
	s.notificationRepo.On("ListNotificationsByUser", s.ctx, "u1", true, 20, 0).
		Return([]domain.Notification{{NotificationID: "n1"}}, nil)

	notifications, err := s.service.ListNotifications(s.ctx, "u1", true, 20, 0)

	s.Require().NoError(err)
	s.Len(notifications, 1)
	s.notificationRepo.AssertExpectations(s.T())
}

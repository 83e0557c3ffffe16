package services_test

import (
	"context"
	"time"

	"github.com/stackscout/stackscout/internal/core/domain"
	"github.com/stackscout/stackscout/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock JobRepository ---

type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) FindJobByID(ctx context.Context, jobID string) (*domain.Job, error) {
	args := m.Called(ctx, jobID)
	var job *domain.Job
	if args.Get(0) != nil {
		job = args.Get(0).(*domain.Job)
	}
	return job, args.Error(1)
}

func (m *MockJobRepository) FindJobBySourceURL(ctx context.Context, sourceURL string) (*domain.Job, error) {
	args := m.Called(ctx, sourceURL)
	var job *domain.Job
	if args.Get(0) != nil {
		job = args.Get(0).(*domain.Job)
	}
	return job, args.Error(1)
}

func (m *MockJobRepository) ListJobs(ctx context.Context, filter domain.JobFilter) ([]domain.Job, string, error) {
	args := m.Called(ctx, filter)
	var jobs []domain.Job
	if args.Get(0) != nil {
		jobs = args.Get(0).([]domain.Job)
	}
	return jobs, args.String(1), args.Error(2)
}

func (m *MockJobRepository) ListRecentJobs(ctx context.Context, since time.Time, limit int) ([]domain.Job, error) {
	args := m.Called(ctx, since, limit)
	var jobs []domain.Job
	if args.Get(0) != nil {
		jobs = args.Get(0).([]domain.Job)
	}
	return jobs, args.Error(1)
}

func (m *MockJobRepository) GetJobStats(ctx context.Context, since time.Time) (*domain.JobStats, error) {
	args := m.Called(ctx, since)
	var stats *domain.JobStats
	if args.Get(0) != nil {
		stats = args.Get(0).(*domain.JobStats)
	}
	return stats, args.Error(1)
}

func (m *MockJobRepository) UpsertJob(ctx context.Context, job domain.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) DeactivateJob(ctx context.Context, jobID string, userID string, now time.Time) error {
	args := m.Called(ctx, jobID, userID, now)
	return args.Error(0)
}

func (m *MockJobRepository) SaveJobForUser(ctx context.Context, userID, jobID string, now time.Time) error {
	args := m.Called(ctx, userID, jobID, now)
	return args.Error(0)
}

func (m *MockJobRepository) UnsaveJobForUser(ctx context.Context, userID, jobID string) error {
	args := m.Called(ctx, userID, jobID)
	return args.Error(0)
}

func (m *MockJobRepository) FindSavedJobIDs(ctx context.Context, userID string) (map[string]bool, error) {
	args := m.Called(ctx, userID)
	var ids map[string]bool
	if args.Get(0) != nil {
		ids = args.Get(0).(map[string]bool)
	}
	return ids, args.Error(1)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedBy string, now time.Time) error {
	args := m.Called(ctx, userID, deletedBy, now)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshTokenHash(ctx context.Context, userID string, tokenHash string, expiryTime time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshTokenHash(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateNotificationPrefs(ctx context.Context, userID string, prefs domain.NotificationPreferences) error {
	args := m.Called(ctx, userID, prefs)
	return args.Error(0)
}

// --- Mock NotificationRepository ---

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) SaveNotification(ctx context.Context, n domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) ListNotificationsByUser(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, unreadOnly, limit, offset)
	var notifications []domain.Notification
	if args.Get(0) != nil {
		notifications = args.Get(0).([]domain.Notification)
	}
	return notifications, args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, userID, notificationID string) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkManyRead(ctx context.Context, userID string, notificationIDs []string) (int, error) {
	args := m.Called(ctx, userID, notificationIDs)
	return args.Int(0), args.Error(1)
}

// --- Mock SearchRepository ---

type MockSearchRepository struct {
	mock.Mock
}

func (m *MockSearchRepository) SaveSearchQuery(ctx context.Context, q domain.SearchQuery) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *MockSearchRepository) ListRecentSearches(ctx context.Context, limit int) ([]domain.SearchQuery, error) {
	args := m.Called(ctx, limit)
	var searches []domain.SearchQuery
	if args.Get(0) != nil {
		searches = args.Get(0).([]domain.SearchQuery)
	}
	return searches, args.Error(1)
}

// --- Mock notifier.Sender ---

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(title, message string) error {
	args := m.Called(title, message)
	return args.Error(0)
}

// --- Mock JobWriterSvc ---

type MockJobWriterSvc struct {
	mock.Mock
}

func (m *MockJobWriterSvc) IngestJob(ctx context.Context, req dto.IngestJobRequest) (*domain.Job, error) {
	args := m.Called(ctx, req)
	var job *domain.Job
	if args.Get(0) != nil {
		job = args.Get(0).(*domain.Job)
	}
	return job, args.Error(1)
}

func (m *MockJobWriterSvc) DeactivateMissingJobs(ctx context.Context, platform string, seenURLs []string) (int, error) {
	args := m.Called(ctx, platform, seenURLs)
	return args.Int(0), args.Error(1)
}

// --- Mock UserReaderSvc ---

type MockUserReaderSvc struct {
	mock.Mock
}

func (m *MockUserReaderSvc) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserReaderSvc) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserReaderSvc) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

// --- Mock NotificationSvcFacade ---

type MockNotificationSvc struct {
	mock.Mock
}

func (m *MockNotificationSvc) Notify(ctx context.Context, userID string, typ domain.NotificationType, title, message string) error {
	args := m.Called(ctx, userID, typ, title, message)
	return args.Error(0)
}

func (m *MockNotificationSvc) ListNotifications(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, unreadOnly, limit, offset)
	var notifications []domain.Notification
	if args.Get(0) != nil {
		notifications = args.Get(0).([]domain.Notification)
	}
	return notifications, args.Error(1)
}

func (m *MockNotificationSvc) CountUnread(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationSvc) MarkRead(ctx context.Context, userID, notificationID string) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}

func (m *MockNotificationSvc) MarkManyRead(ctx context.Context, userID string, notificationIDs []string) (int, error) {
	args := m.Called(ctx, userID, notificationIDs)
	return args.Int(0), args.Error(1)
}

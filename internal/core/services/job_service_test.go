package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stackscout/stackscout/internal/apperrors"
	"github.com/stackscout/stackscout/internal/core/domain"
	portssvc "github.com/stackscout/stackscout/internal/core/ports/services"
	"github.com/stackscout/stackscout/internal/core/services"
	"github.com/stackscout/stackscout/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type JobServiceTestSuite struct {
	suite.Suite
	jobRepo *MockJobRepository
	service portssvc.JobSvcFacade
	ctx     context.Context
}

func (s *JobServiceTestSuite) SetupTest() {
	s.jobRepo = new(MockJobRepository)
	s.service = services.NewJobService(s.jobRepo)
	s.ctx = context.Background()
}

func TestJobServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JobServiceTestSuite))
}

func (s *JobServiceTestSuite) TestIngestJob_NormalizesSalary() {
	var upserted domain.Job
	s.jobRepo.On("UpsertJob", s.ctx, mock.AnythingOfType("domain.Job")).
		Run(func(args mock.Arguments) {
			upserted = args.Get(1).(domain.Job)
		}).
		Return(nil)
	s.jobRepo.On("FindJobBySourceURL", s.ctx, "https://example.com/jobs/1").
		Return(&domain.Job{JobID: "stored-id", SourceURL: "https://example.com/jobs/1"}, nil)

	req := dto.IngestJobRequest{
		Company:        "Acme",
		Role:           "Go Engineer",
		SalaryText:     "$100k-$150k",
		SourcePlatform: "remoteok",
		SourceURL:      "https://example.com/jobs/1",
		PostedDate:     time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	stored, err := s.service.IngestJob(s.ctx, req)

	s.Require().NoError(err)
	s.Equal("stored-id", stored.JobID)
	s.Require().NotNil(upserted.Salary.Min)
	s.Require().NotNil(upserted.Salary.Max)
	s.Equal(int64(100000), *upserted.Salary.Min)
	s.Equal(int64(150000), *upserted.Salary.Max)
	s.Equal("USD", string(upserted.Salary.Currency))
	s.Equal("$100k-$150k", upserted.SalaryText, "raw text is preserved alongside normalized values")
	s.True(upserted.IsActive)
	s.jobRepo.AssertExpectations(s.T())
}

func (s *JobServiceTestSuite) TestIngestJob_BlankSalaryTextSkipsNormalization() {
	var upserted domain.Job
	s.jobRepo.On("UpsertJob", s.ctx, mock.AnythingOfType("domain.Job")).
		Run(func(args mock.Arguments) {
			upserted = args.Get(1).(domain.Job)
		}).
		Return(nil)
	s.jobRepo.On("FindJobBySourceURL", s.ctx, mock.Anything).
		Return(&domain.Job{JobID: "stored-id"}, nil)

	req := dto.IngestJobRequest{
		Company:        "Acme",
		Role:           "Go Engineer",
		SalaryText:     "  ",
		SourcePlatform: "weworkremotely",
		SourceURL:      "https://example.com/jobs/2",
	}
	_, err := s.service.IngestJob(s.ctx, req)

	s.Require().NoError(err)
	s.True(upserted.Salary.Unspecified())
}

func (s *JobServiceTestSuite) TestIngestJob_UnparsableSalaryStoresRawTextOnly() {
	var upserted domain.Job
	s.jobRepo.On("UpsertJob", s.ctx, mock.AnythingOfType("domain.Job")).
		Run(func(args mock.Arguments) {
			upserted = args.Get(1).(domain.Job)
		}).
		Return(nil)
	s.jobRepo.On("FindJobBySourceURL", s.ctx, mock.Anything).
		Return(&domain.Job{JobID: "stored-id"}, nil)

	req := dto.IngestJobRequest{
		Company:        "Acme",
		Role:           "Go Engineer",
		SalaryText:     "competitive salary",
		SourcePlatform: "remoteok",
		SourceURL:      "https://example.com/jobs/3",
	}
	_, err := s.service.IngestJob(s.ctx, req)

	s.Require().NoError(err)
	s.True(upserted.Salary.Unspecified())
	s.Equal("competitive salary", upserted.SalaryText)
}

func (s *JobServiceTestSuite) TestListJobs_SalaryRangeFilterParsed() {
	var filter domain.JobFilter
	s.jobRepo.On("ListJobs", s.ctx, mock.AnythingOfType("domain.JobFilter")).
		Run(func(args mock.Arguments) {
			filter = args.Get(1).(domain.JobFilter)
		}).
		Return([]domain.Job{}, "", nil)

	_, _, err := s.service.ListJobs(s.ctx, dto.ListJobsParams{SalaryRange: "100k+", Limit: 20})

	s.Require().NoError(err)
	s.Require().NotNil(filter.SalaryMin)
	s.Equal(int64(100000), *filter.SalaryMin)
	s.Nil(filter.SalaryMax, "open-ended filter has no upper bound")
}

func (s *JobServiceTestSuite) TestListJobs_UnparsableSalaryFilterRejected() {
	_, _, err := s.service.ListJobs(s.ctx, dto.ListJobsParams{SalaryRange: "lots of money", Limit: 20})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.jobRepo.AssertNotCalled(s.T(), "ListJobs", mock.Anything, mock.Anything)
}

func (s *JobServiceTestSuite) TestListJobs_PassesPaginationThrough() {
	s.jobRepo.On("ListJobs", s.ctx, mock.AnythingOfType("domain.JobFilter")).
		Return([]domain.Job{{JobID: "j1"}}, "next-token", nil)

	jobs, nextToken, err := s.service.ListJobs(s.ctx, dto.ListJobsParams{Limit: 1})

	s.Require().NoError(err)
	s.Len(jobs, 1)
	s.Equal("next-token", nextToken)
}

func (s *JobServiceTestSuite) TestDeactivateMissingJobs_DelistsUnseenURLs() {
	stored := []domain.Job{
		{JobID: "job-1", SourceURL: "https://remoteok.com/l/1", SourcePlatform: "remoteok"},
		{JobID: "job-2", SourceURL: "https://remoteok.com/l/2", SourcePlatform: "remoteok"},
		{JobID: "job-3", SourceURL: "https://remoteok.com/l/3", SourcePlatform: "remoteok"},
	}
	var filter domain.JobFilter
	s.jobRepo.On("ListJobs", s.ctx, mock.AnythingOfType("domain.JobFilter")).
		Run(func(args mock.Arguments) {
			filter = args.Get(1).(domain.JobFilter)
		}).
		Return(stored, "", nil)
	s.jobRepo.On("DeactivateJob", s.ctx, "job-2", "remoteok", mock.AnythingOfType("time.Time")).Return(nil)

	seen := []string{"https://remoteok.com/l/1", "https://remoteok.com/l/3"}
	deactivated, err := s.service.DeactivateMissingJobs(s.ctx, "remoteok", seen)

	s.Require().NoError(err)
	s.Equal(1, deactivated)
	s.Equal("remoteok", filter.Platform)
	s.jobRepo.AssertExpectations(s.T())
	s.jobRepo.AssertNumberOfCalls(s.T(), "DeactivateJob", 1)
}

func (s *JobServiceTestSuite) TestDeactivateMissingJobs_FollowsPagination() {
	page1 := []domain.Job{{JobID: "job-1", SourceURL: "https://remoteok.com/l/1"}}
	page2 := []domain.Job{{JobID: "job-2", SourceURL: "https://remoteok.com/l/2"}}
	s.jobRepo.On("ListJobs", s.ctx, mock.MatchedBy(func(f domain.JobFilter) bool {
		return f.PageToken == ""
	})).Return(page1, "page-2", nil)
	s.jobRepo.On("ListJobs", s.ctx, mock.MatchedBy(func(f domain.JobFilter) bool {
		return f.PageToken == "page-2"
	})).Return(page2, "", nil)
	s.jobRepo.On("DeactivateJob", s.ctx, "job-1", "remoteok", mock.AnythingOfType("time.Time")).Return(nil)
	s.jobRepo.On("DeactivateJob", s.ctx, "job-2", "remoteok", mock.AnythingOfType("time.Time")).Return(nil)

	deactivated, err := s.service.DeactivateMissingJobs(s.ctx, "remoteok", nil)

	s.Require().NoError(err)
	s.Equal(2, deactivated)
	s.jobRepo.AssertExpectations(s.T())
}

func (s *JobServiceTestSuite) TestSaveJob_VerifiesJobExists() {
	s.jobRepo.On("FindJobByID", s.ctx, "missing").Return(nil, apperrors.ErrNotFound)

	err := s.service.SaveJob(s.ctx, "user-1", "missing")

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.jobRepo.AssertNotCalled(s.T(), "SaveJobForUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *JobServiceTestSuite) TestSaveJob_Success() {
	s.jobRepo.On("FindJobByID", s.ctx, "job-1").Return(&domain.Job{JobID: "job-1"}, nil)
	s.jobRepo.On("SaveJobForUser", s.ctx, "user-1", "job-1", mock.AnythingOfType("time.Time")).Return(nil)

	err := s.service.SaveJob(s.ctx, "user-1", "job-1")

	s.NoError(err)
	s.jobRepo.AssertExpectations(s.T())
}

func (s *JobServiceTestSuite) TestUnsaveJob_NotSavedReturnsNotFound() {
	s.jobRepo.On("UnsaveJobForUser", s.ctx, "user-1", "job-1").Return(apperrors.ErrNotFound)

	err := s.service.UnsaveJob(s.ctx, "user-1", "job-1")

	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
}

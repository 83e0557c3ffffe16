package services

import (
	"context"

	"github.com/stackscout/stackscout/internal/core/domain"
	"github.com/stackscout/stackscout/internal/dto"
)

// JobReaderSvc defines read operations for jobs.
type JobReaderSvc interface {
	// GetJobByID retrieves a single job.
	GetJobByID(ctx context.Context, jobID string) (*domain.Job, error)

	// ListJobs returns jobs matching the request filters. The salary
	// filter accepts the same free-text syntax the normalizer parses
	// ("100k+", "80k-120k").
	ListJobs(ctx context.Context, req dto.ListJobsParams) ([]domain.Job, string, error)
}

// JobWriterSvc defines write operations for jobs.
type JobWriterSvc interface {
	// IngestJob normalizes and upserts one scraped posting, returning the
	// stored job.
	IngestJob(ctx context.Context, req dto.IngestJobRequest) (*domain.Job, error)

	// DeactivateMissingJobs marks a platform's active jobs inactive when
	// their source URLs no longer appear in a full re-scrape, and returns
	// how many were deactivated.
	DeactivateMissingJobs(ctx context.Context, platform string, seenURLs []string) (int, error)
}

// SavedJobSvc manages per-user bookmarks.
type SavedJobSvc interface {
	SaveJob(ctx context.Context, userID, jobID string) error
	UnsaveJob(ctx context.Context, userID, jobID string) error
}

// JobSvcFacade combines all job-related service interfaces.
type JobSvcFacade interface {
	JobReaderSvc
	JobWriterSvc
	SavedJobSvc
}

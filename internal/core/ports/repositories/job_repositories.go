package repositories

import (
	"context"
	"time"

	"github.com/stackscout/stackscout/internal/core/domain"
)

// JobReader defines read operations for job data.
type JobReader interface {
	// FindJobByID retrieves a job by its ID.
	FindJobByID(ctx context.Context, jobID string) (*domain.Job, error)

	// FindJobBySourceURL retrieves a job by its unique source URL.
	FindJobBySourceURL(ctx context.Context, sourceURL string) (*domain.Job, error)

	// ListJobs returns jobs matching the filter ordered by posted date
	// descending, plus a token for the next page ("" when exhausted).
	ListJobs(ctx context.Context, filter domain.JobFilter) ([]domain.Job, string, error)

	// ListRecentJobs returns active jobs posted since the given time.
	ListRecentJobs(ctx context.Context, since time.Time, limit int) ([]domain.Job, error)

	// GetJobStats aggregates posting counts for the analytics overview;
	// since is the cutoff for the "recently scraped" bucket.
	GetJobStats(ctx context.Context, since time.Time) (*domain.JobStats, error)
}

// JobWriter defines write operations for job data.
type JobWriter interface {
	// UpsertJob inserts the job or, when a job with the same source URL
	// already exists, refreshes its scraped fields.
	UpsertJob(ctx context.Context, job domain.Job) error

	// DeactivateJob marks a job inactive (delisted at the source).
	DeactivateJob(ctx context.Context, jobID string, userID string, now time.Time) error
}

// SavedJobRepository manages per-user job bookmarks.
type SavedJobRepository interface {
	SaveJobForUser(ctx context.Context, userID, jobID string, now time.Time) error
	UnsaveJobForUser(ctx context.Context, userID, jobID string) error

	// FindSavedJobIDs returns the set of job IDs the user has saved.
	FindSavedJobIDs(ctx context.Context, userID string) (map[string]bool, error)
}

// JobRepository combines all job persistence interfaces.
type JobRepository interface {
	JobReader
	JobWriter
	SavedJobRepository
}

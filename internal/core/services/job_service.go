package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stackscout/stackscout/internal/apperrors"
	"github.com/stackscout/stackscout/internal/core/domain"
	portsrepo "github.com/stackscout/stackscout/internal/core/ports/repositories"
	portssvc "github.com/stackscout/stackscout/internal/core/ports/services"
	"github.com/stackscout/stackscout/internal/core/salary"
	"github.com/stackscout/stackscout/internal/dto"
)

type jobService struct {
	BaseService
	jobRepo portsrepo.JobRepository
}

// NewJobService creates the job service facade.
func NewJobService(jobRepo portsrepo.JobRepository) portssvc.JobSvcFacade {
	return &jobService{jobRepo: jobRepo}
}

var _ portssvc.JobSvcFacade = (*jobService)(nil)

func (s *jobService) GetJobByID(ctx context.Context, jobID string) (*domain.Job, error) {
	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

func (s *jobService) ListJobs(ctx context.Context, req dto.ListJobsParams) ([]domain.Job, string, error) {
	filter := domain.JobFilter{
		Keyword:   req.Keyword,
		Platform:  req.Platform,
		Location:  req.Location,
		Limit:     req.Limit,
		PageToken: req.PageToken,
	}

	// The salary filter reuses the normalizer's free-text syntax, so
	// "100k+" and "80k-120k" mean the same thing here as in scraped text.
	if strings.TrimSpace(req.SalaryRange) != "" {
		rng, err := salary.Parse(req.SalaryRange)
		if err != nil {
			return nil, "", fmt.Errorf("invalid salary filter: %w", err)
		}
		if rng.Unspecified() {
			return nil, "", fmt.Errorf("unparsable salary filter %q: %w", req.SalaryRange, apperrors.ErrValidation)
		}
		filter.SalaryMin = rng.Min
		filter.SalaryMax = rng.Max
	}

	jobs, nextToken, err := s.jobRepo.ListJobs(ctx, filter)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nextToken, nil
}

func (s *jobService) IngestJob(ctx context.Context, req dto.IngestJobRequest) (*domain.Job, error) {
	// Postings without salary text stay unnormalized rather than failing
	// ingestion; the normalizer treats blank input as invalid.
	var rng salary.Range
	if strings.TrimSpace(req.SalaryText) != "" {
		parsed, err := salary.Parse(req.SalaryText)
		if err != nil {
			return nil, fmt.Errorf("failed to normalize salary text: %w", err)
		}
		rng = parsed
	}

	now := time.Now()
	postedDate := req.PostedDate
	if postedDate.IsZero() {
		postedDate = now
	}

	job := domain.Job{
		JobID:          uuid.NewString(),
		Company:        req.Company,
		Role:           req.Role,
		TechStack:      req.TechStack,
		JobType:        req.JobType,
		SalaryText:     req.SalaryText,
		Salary:         rng,
		Location:       req.Location,
		Description:    req.Description,
		SourcePlatform: req.SourcePlatform,
		SourceURL:      req.SourceURL,
		PostedDate:     postedDate,
		Keywords:       req.Keywords,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     req.SourcePlatform,
			LastUpdatedAt: now,
			LastUpdatedBy: req.SourcePlatform,
		},
	}

	if err := s.jobRepo.UpsertJob(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to store job: %w", err)
	}

	// Re-read to pick up the canonical row: on a re-scrape the upsert
	// keeps the original job_id and created_at.
	stored, err := s.jobRepo.FindJobBySourceURL(ctx, job.SourceURL)
	if err != nil {
		return nil, fmt.Errorf("failed to read back stored job: %w", err)
	}

	s.LogDebug(ctx, "Job ingested",
		slog.String("job_id", stored.JobID),
		slog.String("platform", stored.SourcePlatform))
	return stored, nil
}

// DeactivateMissingJobs pages through a platform's active jobs and marks the
// ones whose source URL was not seen in the latest full scrape as delisted.
func (s *jobService) DeactivateMissingJobs(ctx context.Context, platform string, seenURLs []string) (int, error) {
	seen := make(map[string]bool, len(seenURLs))
	for _, u := range seenURLs {
		seen[u] = true
	}

	now := time.Now()
	deactivated := 0
	pageToken := ""
	for {
		jobs, nextToken, err := s.jobRepo.ListJobs(ctx, domain.JobFilter{
			Platform:  platform,
			Limit:     100,
			PageToken: pageToken,
		})
		if err != nil {
			return deactivated, fmt.Errorf("failed to list jobs for reconciliation: %w", err)
		}
		for i := range jobs {
			if seen[jobs[i].SourceURL] {
				continue
			}
			if err := s.jobRepo.DeactivateJob(ctx, jobs[i].JobID, platform, now); err != nil {
				return deactivated, fmt.Errorf("failed to deactivate delisted job %s: %w", jobs[i].JobID, err)
			}
			deactivated++
		}
		if nextToken == "" {
			break
		}
		pageToken = nextToken
	}

	if deactivated > 0 {
		s.LogInfo(ctx, "Delisted jobs deactivated",
			slog.String("platform", platform),
			slog.Int("count", deactivated))
	}
	return deactivated, nil
}

func (s *jobService) SaveJob(ctx context.Context, userID, jobID string) error {
	if _, err := s.jobRepo.FindJobByID(ctx, jobID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to verify job before saving: %w", err)
	}
	if err := s.jobRepo.SaveJobForUser(ctx, userID, jobID, time.Now()); err != nil {
		return fmt.Errorf("failed to save job for user: %w", err)
	}
	return nil
}

func (s *jobService) UnsaveJob(ctx context.Context, userID, jobID string) error {
	if err := s.jobRepo.UnsaveJobForUser(ctx, userID, jobID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to unsave job for user: %w", err)
	}
	return nil
}

package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stackscout/stackscout/internal/apperrors"
	"github.com/stackscout/stackscout/internal/core/domain"
	portsrepo "github.com/stackscout/stackscout/internal/core/ports/repositories"
	"github.com/stackscout/stackscout/internal/core/salary"
	"github.com/stackscout/stackscout/internal/models"
	"github.com/stackscout/stackscout/internal/utils/pagination"
)

type PgxJobRepository struct {
	BaseRepository
}

func newPgxJobRepository(pool *pgxpool.Pool) portsrepo.JobRepository {
	return &PgxJobRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxJobRepository implements portsrepo.JobRepository
var _ portsrepo.JobRepository = (*PgxJobRepository)(nil)

func toModelJob(d domain.Job) models.Job {
	var currency *string
	if d.Salary.Currency != "" {
		c := string(d.Salary.Currency)
		currency = &c
	}
	return models.Job{
		JobID:          d.JobID,
		Company:        d.Company,
		Role:           d.Role,
		TechStack:      d.TechStack,
		JobType:        d.JobType,
		SalaryText:     d.SalaryText,
		SalaryMin:      d.Salary.Min,
		SalaryMax:      d.Salary.Max,
		SalaryCurrency: currency,
		Location:       d.Location,
		Description:    d.Description,
		SourcePlatform: d.SourcePlatform,
		SourceURL:      d.SourceURL,
		PostedDate:     d.PostedDate,
		Keywords:       d.Keywords,
		IsActive:       d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainJob(m models.Job) domain.Job {
	var currency salary.Currency
	if m.SalaryCurrency != nil {
		currency = salary.Currency(*m.SalaryCurrency)
	}
	return domain.Job{
		JobID:          m.JobID,
		Company:        m.Company,
		Role:           m.Role,
		TechStack:      m.TechStack,
		JobType:        m.JobType,
		SalaryText:     m.SalaryText,
		Salary:         salary.Range{Min: m.SalaryMin, Max: m.SalaryMax, Currency: currency},
		Location:       m.Location,
		Description:    m.Description,
		SourcePlatform: m.SourcePlatform,
		SourceURL:      m.SourceURL,
		PostedDate:     m.PostedDate,
		Keywords:       m.Keywords,
		IsActive:       m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const jobColumns = `job_id, company, role, tech_stack, job_type, salary_text, salary_min, salary_max, salary_currency,
		location, description, source_platform, source_url, posted_date, keywords, is_active,
		created_at, created_by, last_updated_at, last_updated_by`

func scanJob(row pgx.Row) (models.Job, error) {
	var m models.Job
	err := row.Scan(
		&m.JobID,
		&m.Company,
		&m.Role,
		&m.TechStack,
		&m.JobType,
		&m.SalaryText,
		&m.SalaryMin,
		&m.SalaryMax,
		&m.SalaryCurrency,
		&m.Location,
		&m.Description,
		&m.SourcePlatform,
		&m.SourceURL,
		&m.PostedDate,
		&m.Keywords,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// UpsertJob inserts a job or refreshes the scraped fields of an existing one,
// keyed by source_url so re-scraped postings do not duplicate.
func (r *PgxJobRepository) UpsertJob(ctx context.Context, job domain.Job) error {
	m := toModelJob(job)
	query := `
		INSERT INTO jobs (` + jobColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		ON CONFLICT (source_url) DO UPDATE SET
			company = EXCLUDED.company,
			role = EXCLUDED.role,
			tech_stack = EXCLUDED.tech_stack,
			job_type = EXCLUDED.job_type,
			salary_text = EXCLUDED.salary_text,
			salary_min = EXCLUDED.salary_min,
			salary_max = EXCLUDED.salary_max,
			salary_currency = EXCLUDED.salary_currency,
			location = EXCLUDED.location,
			description = EXCLUDED.description,
			posted_date = EXCLUDED.posted_date,
			keywords = EXCLUDED.keywords,
			is_active = true,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.JobID,
		m.Company,
		m.Role,
		m.TechStack,
		m.JobType,
		m.SalaryText,
		m.SalaryMin,
		m.SalaryMax,
		m.SalaryCurrency,
		m.Location,
		m.Description,
		m.SourcePlatform,
		m.SourceURL,
		m.PostedDate,
		m.Keywords,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert job %s: %w", job.SourceURL, err)
	}
	return nil
}

func (r *PgxJobRepository) FindJobByID(ctx context.Context, jobID string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE job_id = $1;`
	m, err := scanJob(r.Pool.QueryRow(ctx, query, jobID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find job by ID %s: %w", jobID, err)
	}
	d := toDomainJob(m)
	return &d, nil
}

func (r *PgxJobRepository) FindJobBySourceURL(ctx context.Context, sourceURL string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE source_url = $1;`
	m, err := scanJob(r.Pool.QueryRow(ctx, query, sourceURL))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find job by source URL: %w", err)
	}
	d := toDomainJob(m)
	return &d, nil
}

// ListJobs returns active jobs matching the filter, newest first, with
// keyset pagination over (posted_date, created_at).
func (r *PgxJobRepository) ListJobs(ctx context.Context, filter domain.JobFilter) ([]domain.Job, string, error) {
	var conds []string
	var args []any

	addArg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	conds = append(conds, "is_active = true")

	if filter.Keyword != "" {
		p := addArg("%" + filter.Keyword + "%")
		conds = append(conds, fmt.Sprintf("(role ILIKE %s OR company ILIKE %s OR description ILIKE %s)", p, p, p))
	}
	if filter.Platform != "" {
		conds = append(conds, "source_platform = "+addArg(filter.Platform))
	}
	if filter.Location != "" {
		conds = append(conds, "location ILIKE "+addArg("%"+filter.Location+"%"))
	}
	// Salary overlap: a job qualifies when its normalized range intersects
	// the requested one. Jobs without normalized amounts never qualify
	// because COALESCE of two NULLs compares as NULL.
	if filter.SalaryMin != nil {
		conds = append(conds, "COALESCE(salary_max, salary_min) >= "+addArg(*filter.SalaryMin))
	}
	if filter.SalaryMax != nil {
		conds = append(conds, "COALESCE(salary_min, salary_max) <= "+addArg(*filter.SalaryMax))
	}
	if filter.PageToken != "" {
		postedDate, createdAt, err := pagination.DecodeToken(filter.PageToken)
		if err != nil {
			return nil, "", fmt.Errorf("invalid page token: %w", apperrors.ErrValidation)
		}
		conds = append(conds, fmt.Sprintf("(posted_date, created_at) < (%s, %s)", addArg(postedDate), addArg(createdAt)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + jobColumns + ` FROM jobs WHERE ` + strings.Join(conds, " AND ") +
		` ORDER BY posted_date DESC, created_at DESC LIMIT ` + addArg(limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		m, err := scanJob(rows)
		if err != nil {
			return nil, "", fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, toDomainJob(m))
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("failed to iterate job rows: %w", err)
	}

	nextToken := ""
	if len(jobs) > limit {
		jobs = jobs[:limit]
		last := jobs[len(jobs)-1]
		nextToken = pagination.EncodeToken(last.PostedDate, last.CreatedAt)
	}
	return jobs, nextToken, nil
}

func (r *PgxJobRepository) ListRecentJobs(ctx context.Context, since time.Time, limit int) ([]domain.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE is_active = true AND posted_date >= $1
		ORDER BY posted_date DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent jobs: %w", err)
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		m, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, toDomainJob(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate job rows: %w", err)
	}
	return jobs, nil
}

// GetJobStats aggregates the counters behind the analytics overview in two
// queries: one pass over jobs for the totals, one GROUP BY for per-platform
// counts.
func (r *PgxJobRepository) GetJobStats(ctx context.Context, since time.Time) (*domain.JobStats, error) {
	stats := &domain.JobStats{}

	totalsQuery := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE is_active),
			COUNT(*) FILTER (WHERE created_at >= $1),
			COUNT(*) FILTER (WHERE salary_min IS NOT NULL OR salary_max IS NOT NULL)
		FROM jobs;
	`
	err := r.Pool.QueryRow(ctx, totalsQuery, since).Scan(
		&stats.TotalJobs,
		&stats.ActiveJobs,
		&stats.JobsSince,
		&stats.WithSalaryData,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate job totals: %w", err)
	}

	platformQuery := `
		SELECT source_platform, COUNT(*)
		FROM jobs
		GROUP BY source_platform
		ORDER BY COUNT(*) DESC;
	`
	rows, err := r.Pool.Query(ctx, platformQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to count jobs per platform: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pc domain.PlatformJobCount
		if err := rows.Scan(&pc.Platform, &pc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan platform count row: %w", err)
		}
		stats.PerPlatform = append(stats.PerPlatform, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate platform count rows: %w", err)
	}
	return stats, nil
}

func (r *PgxJobRepository) DeactivateJob(ctx context.Context, jobID string, userID string, now time.Time) error {
	query := `
		UPDATE jobs
		SET is_active = false, last_updated_at = $2, last_updated_by = $3
		WHERE job_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, jobID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate job %s: %w", jobID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxJobRepository) SaveJobForUser(ctx context.Context, userID, jobID string, now time.Time) error {
	query := `
		INSERT INTO saved_jobs (user_id, job_id, saved_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, job_id) DO NOTHING;
	`
	_, err := r.Pool.Exec(ctx, query, userID, jobID, now)
	if err != nil {
		return fmt.Errorf("failed to save job %s for user %s: %w", jobID, userID, err)
	}
	return nil
}

func (r *PgxJobRepository) UnsaveJobForUser(ctx context.Context, userID, jobID string) error {
	query := `DELETE FROM saved_jobs WHERE user_id = $1 AND job_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, userID, jobID)
	if err != nil {
		return fmt.Errorf("failed to unsave job %s for user %s: %w", jobID, userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxJobRepository) FindSavedJobIDs(ctx context.Context, userID string) (map[string]bool, error) {
	query := `SELECT job_id FROM saved_jobs WHERE user_id = $1;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find saved jobs for user %s: %w", userID, err)
	}
	defer rows.Close()

	saved := make(map[string]bool)
	for rows.Next() {
		var jobID string
		if err := rows.Scan(&jobID); err != nil {
			return nil, fmt.Errorf("failed to scan saved job row: %w", err)
		}
		saved[jobID] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate saved job rows: %w", err)
	}
	return saved, nil
}

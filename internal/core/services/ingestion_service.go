package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stackscout/stackscout/internal/core/domain"
	portsrepo "github.com/stackscout/stackscout/internal/core/ports/repositories"
	portssvc "github.com/stackscout/stackscout/internal/core/ports/services"
	"github.com/stackscout/stackscout/internal/dto"
	"github.com/stackscout/stackscout/internal/scraper"
)

type ingestionService struct {
	BaseService
	sources         []scraper.Source
	jobService      portssvc.JobWriterSvc
	searchRepo      portsrepo.SearchRepository
	userService     portssvc.UserReaderSvc
	notificationSvc portssvc.NotificationSvcFacade
}

// NewIngestionService creates the ingestion pipeline over the given sources.
func NewIngestionService(
	sources []scraper.Source,
	jobService portssvc.JobWriterSvc,
	searchRepo portsrepo.SearchRepository,
	userService portssvc.UserReaderSvc,
	notificationSvc portssvc.NotificationSvcFacade,
) portssvc.IngestionSvcFacade {
	return &ingestionService{
		sources:         sources,
		jobService:      jobService,
		searchRepo:      searchRepo,
		userService:     userService,
		notificationSvc: notificationSvc,
	}
}

var _ portssvc.IngestionSvcFacade = (*ingestionService)(nil)

func (s *ingestionService) RunIngestion(ctx context.Context, keywords []string) (*dto.IngestionSummary, error) {
	summary := &dto.IngestionSummary{Counts: make(map[string]int)}

	for _, source := range s.sources {
		count, seenURLs, err := s.ingestFromSource(ctx, source, keywords)
		if err != nil {
			// One broken source must not sink the whole run.
			s.LogError(ctx, err, "Source ingestion failed", slog.String("platform", source.Name()))
			continue
		}
		summary.Counts[source.Name()] = count
		summary.Total += count

		// A keyword-filtered fetch only sees a subset of the board, so
		// delisting reconciliation runs on full scrapes alone.
		if len(keywords) == 0 {
			deactivated, err := s.jobService.DeactivateMissingJobs(ctx, source.Name(), seenURLs)
			summary.Deactivated += deactivated
			if err != nil {
				s.LogError(ctx, err, "Failed to reconcile delisted jobs", slog.String("platform", source.Name()))
			}
		}

		searchQuery := domain.SearchQuery{
			SearchID:    uuid.NewString(),
			Keywords:    keywords,
			Platform:    source.Name(),
			ResultCount: count,
			CreatedAt:   time.Now(),
		}
		if err := s.searchRepo.SaveSearchQuery(ctx, searchQuery); err != nil {
			s.LogError(ctx, err, "Failed to record search query", slog.String("platform", source.Name()))
		}
	}

	s.notifySearchComplete(ctx, keywords, summary.Total)

	s.LogInfo(ctx, "Ingestion run completed",
		slog.Int("total", summary.Total),
		slog.Any("keywords", keywords))
	return summary, nil
}

// ingestFromSource stores every fetched posting and returns how many were
// stored plus the source URLs seen in the fetch. A posting that fails
// ingestion still counts as seen; the fetch proves it is live at the source.
func (s *ingestionService) ingestFromSource(ctx context.Context, source scraper.Source, keywords []string) (int, []string, error) {
	postings, err := source.Fetch(ctx, keywords)
	if err != nil {
		return 0, nil, fmt.Errorf("fetch from %s failed: %w", source.Name(), err)
	}

	count := 0
	seenURLs := make([]string, 0, len(postings))
	for _, p := range postings {
		seenURLs = append(seenURLs, p.SourceURL)
		req := dto.IngestJobRequest{
			Company:        p.Company,
			Role:           p.Role,
			TechStack:      p.TechStack,
			JobType:        p.JobType,
			SalaryText:     p.SalaryText,
			Location:       p.Location,
			Description:    p.Description,
			SourcePlatform: source.Name(),
			SourceURL:      p.SourceURL,
			PostedDate:     p.PostedDate,
			Keywords:       keywords,
		}
		if _, err := s.jobService.IngestJob(ctx, req); err != nil {
			s.LogWarn(ctx, "Skipping posting that failed ingestion",
				slog.String("platform", source.Name()),
				slog.String("source_url", p.SourceURL),
				slog.String("error", err.Error()))
			continue
		}
		count++
	}
	return count, seenURLs, nil
}

// notifySearchComplete fans a SEARCH_COMPLETE notification out to users;
// per-user preference filtering happens inside the notification service.
func (s *ingestionService) notifySearchComplete(ctx context.Context, keywords []string, total int) {
	users, err := s.userService.ListUsers(ctx, 100, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users for search-complete notifications")
		return
	}

	title := "Job search complete"
	message := fmt.Sprintf("Found %d jobs for: %s", total, strings.Join(keywords, ", "))
	if len(keywords) == 0 {
		message = fmt.Sprintf("Found %d jobs across all sources", total)
	}

	for _, user := range users {
		if err := s.notificationSvc.Notify(ctx, user.UserID, domain.NotificationSearchComplete, title, message); err != nil {
			s.LogWarn(ctx, "Failed to notify user of completed search",
				slog.String("user_id", user.UserID),
				slog.String("error", err.Error()))
		}
	}
}

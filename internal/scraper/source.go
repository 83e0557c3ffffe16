package scraper

import (
	"context"
	"strings"
	"time"
)

// Posting is a raw job listing as scraped from a source, before salary
// normalization and persistence.
type Posting struct {
	Company     string
	Role        string
	Location    string
	Description string
	SalaryText  string
	JobType     string
	TechStack   []string
	SourceURL   string
	PostedDate  time.Time
}

// Source is a job board the ingestion pipeline can pull postings from.
type Source interface {
	// Name identifies the platform, e.g. "remoteok".
	Name() string

	// Fetch returns current postings matching the keywords. Sources that
	// cannot filter server-side filter locally instead.
	Fetch(ctx context.Context, keywords []string) ([]Posting, error)
}

// matchesKeywords reports whether the posting mentions any of the keywords
// in its role, company, description or tech stack. An empty keyword list
// matches everything.
func matchesKeywords(p Posting, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	haystack := strings.ToLower(p.Role + " " + p.Company + " " + p.Description + " " + strings.Join(p.TechStack, " "))
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(haystack, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

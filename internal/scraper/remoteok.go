package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const remoteOKAPIURL = "https://remoteok.com/api"

// RemoteOKSource pulls postings from the RemoteOK JSON API.
type RemoteOKSource struct {
	client *Client
	apiURL string
}

var _ Source = (*RemoteOKSource)(nil)

func NewRemoteOKSource(client *Client) *RemoteOKSource {
	return &RemoteOKSource{client: client, apiURL: remoteOKAPIURL}
}

func (s *RemoteOKSource) Name() string {
	return "remoteok"
}

func (s *RemoteOKSource) Fetch(ctx context.Context, keywords []string) ([]Posting, error) {
	body, err := s.client.Get(ctx, s.apiURL)
	if err != nil {
		return nil, fmt.Errorf("remoteok fetch failed: %w", err)
	}
	postings := parseRemoteOK(body)

	var matched []Posting
	for _, p := range postings {
		if matchesKeywords(p, keywords) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// parseRemoteOK extracts postings from the API payload. The first array
// element is a legal notice without a position field and is skipped.
func parseRemoteOK(body []byte) []Posting {
	var postings []Posting
	gjson.ParseBytes(body).ForEach(func(_, item gjson.Result) bool {
		role := item.Get("position").String()
		if role == "" {
			return true
		}

		var tags []string
		item.Get("tags").ForEach(func(_, tag gjson.Result) bool {
			tags = append(tags, strings.ToLower(tag.String()))
			return true
		})

		posted := time.Now().UTC()
		if epoch := item.Get("epoch").Int(); epoch > 0 {
			posted = time.Unix(epoch, 0).UTC()
		} else if t, err := time.Parse(time.RFC3339, item.Get("date").String()); err == nil {
			posted = t.UTC()
		}

		location := item.Get("location").String()
		if location == "" {
			location = "Remote"
		}

		postings = append(postings, Posting{
			Company:     item.Get("company").String(),
			Role:        role,
			Location:    location,
			Description: item.Get("description").String(),
			SalaryText:  remoteOKSalaryText(item),
			JobType:     "Full-time",
			TechStack:   tags,
			SourceURL:   item.Get("url").String(),
			PostedDate:  posted,
		})
		return true
	})
	return postings
}

// remoteOKSalaryText reconstructs a salary string from the API's numeric
// salary bounds so it can flow through the same normalizer as scraped text.
func remoteOKSalaryText(item gjson.Result) string {
	min := item.Get("salary_min").Int()
	max := item.Get("salary_max").Int()
	switch {
	case min > 0 && max > 0:
		return fmt.Sprintf("$%d - $%d", min, max)
	case min > 0:
		return fmt.Sprintf("$%d+", min)
	default:
		return ""
	}
}

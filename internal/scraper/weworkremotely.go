package scraper

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const weWorkRemotelyBaseURL = "https://weworkremotely.com"

// WeWorkRemotelySource scrapes the We Work Remotely search results page.
type WeWorkRemotelySource struct {
	client  *Client
	baseURL string
}

var _ Source = (*WeWorkRemotelySource)(nil)

func NewWeWorkRemotelySource(client *Client) *WeWorkRemotelySource {
	return &WeWorkRemotelySource{client: client, baseURL: weWorkRemotelyBaseURL}
}

func (s *WeWorkRemotelySource) Name() string {
	return "weworkremotely"
}

func (s *WeWorkRemotelySource) Fetch(ctx context.Context, keywords []string) ([]Posting, error) {
	term := strings.Join(keywords, " ")
	searchURL := fmt.Sprintf("%s/remote-jobs/search?term=%s", s.baseURL, url.QueryEscape(term))

	body, err := s.client.Get(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("weworkremotely fetch failed: %w", err)
	}
	return parseWeWorkRemotely(body, s.baseURL)
}

// parseWeWorkRemotely extracts postings from the search results HTML. The
// listing page carries no salary or full description; those stay empty
// until a detail scrape fills them in.
func parseWeWorkRemotely(body []byte, baseURL string) ([]Posting, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse weworkremotely HTML: %w", err)
	}

	var postings []Posting
	doc.Find("section.jobs li").Each(func(_ int, li *goquery.Selection) {
		title := strings.TrimSpace(li.Find("span.title").First().Text())
		if title == "" {
			return
		}
		company := strings.TrimSpace(li.Find("span.company").First().Text())
		region := strings.TrimSpace(li.Find("span.region").First().Text())
		if region == "" {
			region = "Remote"
		}

		href := ""
		li.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			h, ok := a.Attr("href")
			if ok && strings.HasPrefix(h, "/remote-jobs/") {
				href = h
				return false
			}
			return true
		})
		if href == "" {
			return
		}

		jobType := "Full-time"
		if t := strings.TrimSpace(li.Find("span.company").Last().Text()); strings.EqualFold(t, "contract") {
			jobType = "Contract"
		}

		postings = append(postings, Posting{
			Company:    company,
			Role:       title,
			Location:   region,
			JobType:    jobType,
			SourceURL:  baseURL + href,
			PostedDate: time.Now().UTC(),
		})
	})
	return postings, nil
}

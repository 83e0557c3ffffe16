package domain

import "time"

// SearchQuery records a single ingestion run against a source platform,
// kept for analytics over what was searched and how much came back.
type SearchQuery struct {
	SearchID    string    `json:"searchID"`
	Keywords    []string  `json:"keywords"`
	Platform    string    `json:"platform"`
	ResultCount int       `json:"resultCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

package models

import "time"

// SearchQuery mirrors the search_queries table.
type SearchQuery struct {
	SearchID    string
	Keywords    []string
	Platform    string
	ResultCount int
	CreatedAt   time.Time
}

package domain

// PlatformJobCount is the number of stored jobs on one source platform.
type PlatformJobCount struct {
	Platform string `json:"platform"`
	Count    int    `json:"count"`
}

// JobStats aggregates posting counts for the analytics overview. JobsSince
// counts jobs first scraped after the caller's cutoff, typically one week.
type JobStats struct {
	TotalJobs      int
	ActiveJobs     int
	JobsSince      int
	WithSalaryData int
	PerPlatform    []PlatformJobCount
}

// KeywordCount is how often a keyword appeared across recorded searches.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

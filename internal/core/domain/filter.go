package domain

// JobFilter narrows job listing queries. Zero values mean "no constraint".
type JobFilter struct {
	Keyword  string // Matched against role, company and description
	Platform string
	Location string

	// Salary bounds derived from a free-text filter such as "100k+" or
	// "80k-120k"; jobs qualify when their normalized range overlaps.
	SalaryMin *int64
	SalaryMax *int64

	Limit     int
	PageToken string
}

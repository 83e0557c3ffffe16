package dto

import (
	"time"

	"github.com/stackscout/stackscout/internal/core/domain"
)

// IngestJobRequest is one scraped posting submitted for storage.
type IngestJobRequest struct {
	Company        string    `json:"company" binding:"required"`
	Role           string    `json:"role" binding:"required"`
	TechStack      []string  `json:"techStack"`
	JobType        string    `json:"jobType"`
	SalaryText     string    `json:"salaryText"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
	SourcePlatform string    `json:"sourcePlatform" binding:"required"`
	SourceURL      string    `json:"sourceURL" binding:"required,url"`
	PostedDate     time.Time `json:"postedDate"`
	Keywords       []string  `json:"keywords"`
}

// ListJobsParams defines the query parameters for listing jobs.
type ListJobsParams struct {
	Keyword  string `form:"keyword"`
	Platform string `form:"platform"`
	Location string `form:"location"`

	// SalaryRange uses the normalizer's free-text syntax, e.g. "100k+" or
	// "80k-120k".
	SalaryRange string `form:"salaryRange"`

	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	PageToken string `form:"pageToken"`
}

// RunIngestionRequest triggers a scrape across the configured sources.
type RunIngestionRequest struct {
	Keywords []string `json:"keywords"`
}

// IngestionSummary reports how one ingestion run went per source platform.
// Deactivated counts previously stored jobs that vanished from their board
// and were delisted during the run; it stays zero on keyword-filtered runs.
type IngestionSummary struct {
	Counts      map[string]int `json:"counts"`
	Total       int            `json:"total"`
	Deactivated int            `json:"deactivated"`
}

// JobResponse is the job representation returned by the API. Salary fields
// are the normalized numeric values; SalaryText preserves the scraped string
// so unparsable salaries can still be displayed.
type JobResponse struct {
	JobID          string    `json:"jobID"`
	Company        string    `json:"company"`
	Role           string    `json:"role"`
	TechStack      []string  `json:"techStack"`
	JobType        string    `json:"jobType"`
	SalaryText     string    `json:"salaryText"`
	SalaryMin      *int64    `json:"salaryMin,omitempty"`
	SalaryMax      *int64    `json:"salaryMax,omitempty"`
	SalaryCurrency string    `json:"salaryCurrency,omitempty"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
	SourcePlatform string    `json:"sourcePlatform"`
	SourceURL      string    `json:"sourceURL"`
	PostedDate     time.Time `json:"postedDate"`
	Keywords       []string  `json:"keywords"`
	IsActive       bool      `json:"isActive"`
}

// ToJobResponse converts a domain.Job to a JobResponse DTO.
func ToJobResponse(j *domain.Job) JobResponse {
	return JobResponse{
		JobID:          j.JobID,
		Company:        j.Company,
		Role:           j.Role,
		TechStack:      j.TechStack,
		JobType:        j.JobType,
		SalaryText:     j.SalaryText,
		SalaryMin:      j.Salary.Min,
		SalaryMax:      j.Salary.Max,
		SalaryCurrency: string(j.Salary.Currency),
		Location:       j.Location,
		Description:    j.Description,
		SourcePlatform: j.SourcePlatform,
		SourceURL:      j.SourceURL,
		PostedDate:     j.PostedDate,
		Keywords:       j.Keywords,
		IsActive:       j.IsActive,
	}
}

// ListJobsResponse wraps a page of jobs.
type ListJobsResponse struct {
	Jobs          []JobResponse `json:"jobs"`
	NextPageToken string        `json:"nextPageToken,omitempty"`
}

// ToListJobsResponse converts domain jobs plus a pagination token.
func ToListJobsResponse(jobs []domain.Job, nextToken string) ListJobsResponse {
	jobResponses := make([]JobResponse, len(jobs))
	for i := range jobs {
		jobResponses[i] = ToJobResponse(&jobs[i])
	}
	return ListJobsResponse{Jobs: jobResponses, NextPageToken: nextToken}
}

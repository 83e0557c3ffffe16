package models

import "time"

// Job mirrors the jobs table.
type Job struct {
	JobID          string
	Company        string
	Role           string
	TechStack      []string
	JobType        string
	SalaryText     string
	SalaryMin      *int64
	SalaryMax      *int64
	SalaryCurrency *string
	Location       string
	Description    string
	SourcePlatform string
	SourceURL      string
	PostedDate     time.Time
	Keywords       []string
	IsActive       bool
	AuditFields
}

// SavedJob mirrors the saved_jobs table.
type SavedJob struct {
	UserID  string
	JobID   string
	SavedAt time.Time
}

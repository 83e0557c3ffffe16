package domain

import (
	"time"

	"github.com/stackscout/stackscout/internal/core/salary"
)

// Job represents a scraped job posting within the core domain.
// This is the primary representation used by services.
type Job struct {
	JobID          string       `json:"jobID"`          // Primary key (UUID)
	Company        string       `json:"company"`        //
	Role           string       `json:"role"`           //
	TechStack      []string     `json:"techStack"`      //
	JobType        string       `json:"jobType"`        // full-time, contract, ...
	SalaryText     string       `json:"salaryText"`     // Raw salary string as scraped
	Salary         salary.Range `json:"salary"`         // Normalized min/max/currency
	Location       string       `json:"location"`       //
	Description    string       `json:"description"`    //
	SourcePlatform string       `json:"sourcePlatform"` // e.g. remoteok, weworkremotely
	SourceURL      string       `json:"sourceURL"`      // Unique per posting, upsert key
	PostedDate     time.Time    `json:"postedDate"`     //
	Keywords       []string     `json:"keywords"`       // Search keywords that surfaced the job
	IsActive       bool         `json:"isActive"`       //
	AuditFields
}

// SavedJob marks a job a user has bookmarked.
type SavedJob struct {
	UserID  string    `json:"userID"`
	JobID   string    `json:"jobID"`
	SavedAt time.Time `json:"savedAt"`
}

// internal/models/job.go
package models

import "time"

type JobStatus string

const (
	JobStatusOpen           JobStatus = "Open/Accepting Applications"
	JobStatusClosedDeciding JobStatus = "Closed - Still Deciding"
	JobStatusClosedDecided  JobStatus = "Closed & Decided"
)

func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusOpen, JobStatusClosedDeciding, JobStatusClosedDecided:
		return true
	}
	return false
}

type Job struct {
	JobID       int64     `json:"job_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    *string   `json:"location"`
	PostedDate  time.Time `json:"posted_date"`
	Status      JobStatus `json:"status"`
	RecruiterID int64     `json:"recruiter_id"`
}

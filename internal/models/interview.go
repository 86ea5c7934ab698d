// internal/models/interview.go
package models

import "time"

type InterviewStatus string

const (
	InterviewStatusAwaiting InterviewStatus = "Awaiting Interview"
	InterviewStatusComplete InterviewStatus = "Complete"
	InterviewStatusNoShow   InterviewStatus = "No Show"
)

func (s InterviewStatus) IsValid() bool {
	switch s {
	case InterviewStatusAwaiting, InterviewStatusComplete, InterviewStatusNoShow:
		return true
	}
	return false
}

// Interview belongs to at most one application (application_id is unique).
type Interview struct {
	InterviewID   int64           `json:"interview_id"`
	ApplicationID int64           `json:"application_id"`
	InterviewerID int64           `json:"interviewer_id"`
	InterviewDate time.Time       `json:"interview_date"`
	InterviewTime time.Time       `json:"interview_time"`
	Status        InterviewStatus `json:"status"`
}

// internal/models/application.go
package models

import "time"

type ApplicationStatus string

const (
	ApplicationStatusIncomplete ApplicationStatus = "Incomplete"
	ApplicationStatusInReview   ApplicationStatus = "In Review"
	ApplicationStatusRejected   ApplicationStatus = "Rejected"
	ApplicationStatusAccepted   ApplicationStatus = "Accepted"
)

var (
	// InProgressStatuses are applications still awaiting a decision.
	InProgressStatuses = []ApplicationStatus{ApplicationStatusIncomplete, ApplicationStatusInReview}
	// CompletedStatuses are applications with a final decision.
	CompletedStatuses = []ApplicationStatus{ApplicationStatusAccepted, ApplicationStatusRejected}
)

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusIncomplete, ApplicationStatusInReview,
		ApplicationStatusRejected, ApplicationStatusAccepted:
		return true
	}
	return false
}

func (s ApplicationStatus) InProgress() bool {
	return s == ApplicationStatusIncomplete || s == ApplicationStatusInReview
}

func (s ApplicationStatus) Completed() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

// Application links one applicant to one job.
type Application struct {
	ApplicationID   int64             `json:"application_id"`
	JobID           int64             `json:"job_id"`
	ApplicantID     int64             `json:"applicant_id"`
	ApplicationDate time.Time         `json:"application_date"`
	Status          ApplicationStatus `json:"status"`
}

// internal/models/report.go
package models

const (
	DateLayout       = "2006-01-02"
	ReportTimeLayout = "15:04"
)

// BundleKind names the statistics bundle selected for a report.
type BundleKind string

const (
	BundleNone      BundleKind = "none"
	BundleJob       BundleKind = "job"
	BundleApplicant BundleKind = "applicant"
	BundleRecruiter BundleKind = "recruiter"
)

// ReportRow is one application joined to its applicant, job, recruiter,
// interview and interviewer. Columns reached through an outer join are
// pointers and encode as null when missing.
type ReportRow struct {
	ApplicationID     int64   `json:"application_id"`
	ApplicantID       int64   `json:"applicant_id"`
	ApplicantName     *string `json:"applicant_name"`
	JobID             int64   `json:"job_id"`
	JobTitle          *string `json:"job_title"`
	JobLocation       *string `json:"job_location"`
	PostedDate        *string `json:"posted_date"`
	RecruiterID       *int64  `json:"recruiter_id"`
	RecruiterName     *string `json:"recruiter_name"`
	ApplicationStatus string  `json:"application_status"`
	ApplicationDate   *string `json:"application_date"`
	InterviewDate     *string `json:"interview_date"`
	InterviewTime     *string `json:"interview_time"`
	InterviewerName   *string `json:"interviewer_name"`
}

// internal/models/contact.go
package models

// Contact is the shared shape of the people tables: recruiters, applicants
// and interviewers.
type Contact struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

type Recruiter struct {
	RecruiterID int64 `json:"recruiter_id"`
	Contact
}

type Applicant struct {
	ApplicantID int64 `json:"applicant_id"`
	Contact
}

type Interviewer struct {
	InterviewerID int64 `json:"interviewer_id"`
	Contact
}

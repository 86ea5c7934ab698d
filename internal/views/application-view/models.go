// internal/views/application-view/models.go
package applicationview

import (
	"time"

	"jobtracker/internal/models"
	"jobtracker/internal/views/application-view/queries"
)

// Input is a parsed, validated set of report filters. Nil fields are absent.
type Input struct {
	JobID       *int64
	ApplicantID *int64
	RecruiterID *int64
	StartDate   *time.Time
	EndDate     *time.Time
}

func (in *Input) Filter() queries.Filter {
	if in == nil {
		return queries.Filter{}
	}
	return queries.Filter{
		JobID:       in.JobID,
		ApplicantID: in.ApplicantID,
		RecruiterID: in.RecruiterID,
		Dates:       queries.DateRange{Start: in.StartDate, End: in.EndDate},
	}
}

type Output struct {
	Applications []models.ReportRow `json:"applications"`
	Statistics   queries.Bundle     `json:"statistics"`
}

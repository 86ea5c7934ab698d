// internal/views/application-view/queries/report.go
package queries

import (
	"context"
	"database/sql"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"jobtracker/internal/common/metrics"
	"jobtracker/internal/models"
)

var tracer = otel.Tracer("jobtracker/application-view/queries")

// Querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

const reportSelect = "SELECT a.application_id, a.applicant_id, app.name AS applicant_name, " +
	"a.job_id, j.title AS job_title, j.location AS job_location, j.posted_date, " +
	"j.recruiter_id, r.name AS recruiter_name, a.status AS application_status, " +
	"a.application_date, i.interview_date, i.interview_time, ir.name AS interviewer_name " +
	"FROM applications a " +
	"LEFT JOIN applicants app ON a.applicant_id = app.applicant_id " +
	"LEFT JOIN jobs j ON a.job_id = j.job_id " +
	"LEFT JOIN recruiters r ON j.recruiter_id = r.recruiter_id " +
	"LEFT JOIN interviews i ON a.application_id = i.application_id " +
	"LEFT JOIN interviewers ir ON i.interviewer_id = ir.interviewer_id"

// ReportQuery builds the row-level report query for filter.
func ReportQuery(filter Filter) (string, []interface{}) {
	query, args := Compose(reportSelect, filter.Predicates()...)
	return query + " ORDER BY a.application_id", args
}

// StreamReportRows runs the report query and hands each shaped row to fn as
// it is read. An error from fn stops the scan and is returned as is.
func StreamReportRows(ctx context.Context, q Querier, filter Filter, fn func(models.ReportRow) error) error {
	ctx, span := tracer.Start(ctx, "report_rows")
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.ReportQueryDuration.WithLabelValues("report_rows").Observe(time.Since(start).Seconds())
	}()

	query, args := ReportQuery(filter)
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer rows.Close()

	n := 0
	for rows.Next() {
		row, err := scanReportRow(rows)
		if err != nil {
			span.RecordError(err)
			return err
		}
		if err := fn(row); err != nil {
			return err
		}
		n++
	}
	span.SetAttributes(attribute.Int("rows", n))
	return rows.Err()
}

// FetchReportRows collects every report row for filter. The result is never
// nil so it encodes as [] when nothing matches.
func FetchReportRows(ctx context.Context, q Querier, filter Filter) ([]models.ReportRow, error) {
	result := make([]models.ReportRow, 0)
	err := StreamReportRows(ctx, q, filter, func(row models.ReportRow) error {
		result = append(result, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func scanReportRow(rows *sql.Rows) (models.ReportRow, error) {
	var (
		row                             models.ReportRow
		applicantName, jobTitle, jobLoc sql.NullString
		recruiterName, interviewerName  sql.NullString
		recruiterID                     sql.NullInt64
		postedDate, applicationDate     sql.NullTime
		interviewDate, interviewTime    sql.NullTime
	)

	err := rows.Scan(
		&row.ApplicationID, &row.ApplicantID, &applicantName,
		&row.JobID, &jobTitle, &jobLoc, &postedDate,
		&recruiterID, &recruiterName, &row.ApplicationStatus,
		&applicationDate, &interviewDate, &interviewTime, &interviewerName,
	)
	if err != nil {
		return row, err
	}

	row.ApplicantName = nullString(applicantName)
	row.JobTitle = nullString(jobTitle)
	row.JobLocation = nullString(jobLoc)
	row.PostedDate = nullTime(postedDate, models.DateLayout)
	row.RecruiterName = nullString(recruiterName)
	row.ApplicationDate = nullTime(applicationDate, models.DateLayout)
	row.InterviewDate = nullTime(interviewDate, models.DateLayout)
	row.InterviewTime = nullTime(interviewTime, models.ReportTimeLayout)
	row.InterviewerName = nullString(interviewerName)
	if recruiterID.Valid {
		id := recruiterID.Int64
		row.RecruiterID = &id
	}
	return row, nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullTime(v sql.NullTime, layout string) *string {
	if !v.Valid {
		return nil
	}
	s := v.Time.Format(layout)
	return &s
}

// internal/views/application-view/queries/statistics.go
package queries

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"jobtracker/internal/common/metrics"
	"jobtracker/internal/models"
)

// NoCompletedApplications is the success rate reported for an applicant
// with no accepted or rejected applications in scope.
const NoCompletedApplications = "No completed applications"

// Bundle is the statistics summary attached to a report. The set of
// implementations is closed: EmptyBundle, JobBundle, ApplicantBundle and
// RecruiterBundle.
type Bundle interface {
	Kind() models.BundleKind
	sealed()
}

// EmptyBundle is returned when no identifying filter is present. It encodes as {}.
type EmptyBundle struct{}

// JobBundle.AverageDaysAfterPosting is nil when no application is in scope.
type JobBundle struct {
	ApplicationCount        int64    `json:"application_count"`
	AverageDaysAfterPosting *float64 `json:"average_days_after_posting"`
	InterviewCount          int64    `json:"interview_count"`
}

type ApplicantBundle struct {
	JobCount               int64  `json:"job_count"`
	ApplicationsInProgress int64  `json:"applications_in_progress"`
	SuccessRate            string `json:"success_rate"`
}

type RecruiterBundle struct {
	TotalApplications         int64   `json:"total_applications"`
	ApplicationsInProgress    int64   `json:"applications_in_progress"`
	CompletedApplications     int64   `json:"completed_applications"`
	DistinctJobs              int64   `json:"distinct_jobs"`
	DistinctApplicants        int64   `json:"distinct_applicants"`
	AverageApplicationsPerJob float64 `json:"average_applications_per_job"`
}

func (EmptyBundle) Kind() models.BundleKind     { return models.BundleNone }
func (JobBundle) Kind() models.BundleKind       { return models.BundleJob }
func (ApplicantBundle) Kind() models.BundleKind { return models.BundleApplicant }
func (RecruiterBundle) Kind() models.BundleKind { return models.BundleRecruiter }

func (EmptyBundle) sealed()     {}
func (JobBundle) sealed()       {}
func (ApplicantBundle) sealed() {}
func (RecruiterBundle) sealed() {}

// Every aggregate counts applications joined to their job so the recruiter
// predicate and the row query share one scope.
const (
	scopeFrom          = " FROM applications a JOIN jobs j ON a.job_id = j.job_id"
	scopeWithInterview = scopeFrom + " JOIN interviews i ON a.application_id = i.application_id"
)

func inProgress() Predicate {
	return In("a.status", statusArgs(models.InProgressStatuses)...)
}

func completed() Predicate {
	return In("a.status", statusArgs(models.CompletedStatuses)...)
}

func statusArgs(statuses []models.ApplicationStatus) []interface{} {
	args := make([]interface{}, len(statuses))
	for i, s := range statuses {
		args[i] = string(s)
	}
	return args
}

// scalar runs one single-value aggregate over the filter scope narrowed by
// extra, scanning into dest.
func scalar(ctx context.Context, q Querier, name, selectExpr, from string, filter Filter, dest interface{}, extra ...Predicate) error {
	ctx, span := tracer.Start(ctx, name)
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.ReportQueryDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}()

	preds := append(filter.Predicates(), extra...)
	query, args := Compose("SELECT "+selectExpr+from, preds...)
	span.SetAttributes(attribute.Int("args", len(args)))

	if err := q.QueryRowContext(ctx, query, args...).Scan(dest); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func count(ctx context.Context, q Querier, name, expr string, filter Filter, extra ...Predicate) (int64, error) {
	var n int64
	err := scalar(ctx, q, name, "COUNT("+expr+")", scopeFrom, filter, &n, extra...)
	return n, err
}

// JobStatistics computes the job bundle.
func JobStatistics(ctx context.Context, q Querier, filter Filter) (Bundle, error) {
	var (
		b   JobBundle
		avg sql.NullFloat64
		err error
	)

	if b.ApplicationCount, err = count(ctx, q, "job_application_count", "*", filter); err != nil {
		return nil, err
	}

	// date - date is a whole number of days in PostgreSQL; AVG over no rows is NULL.
	if err = scalar(ctx, q, "job_average_days_after_posting",
		"AVG(a.application_date - j.posted_date)", scopeFrom, filter, &avg); err != nil {
		return nil, err
	}
	if avg.Valid {
		v := avg.Float64
		b.AverageDaysAfterPosting = &v
	}

	if err = scalar(ctx, q, "job_interview_count",
		"COUNT(i.interview_id)", scopeWithInterview, filter, &b.InterviewCount); err != nil {
		return nil, err
	}
	return b, nil
}

// ApplicantStatistics computes the applicant bundle.
func ApplicantStatistics(ctx context.Context, q Querier, filter Filter) (Bundle, error) {
	var (
		b                   ApplicantBundle
		accepted, completes int64
		err                 error
	)

	if b.JobCount, err = count(ctx, q, "applicant_job_count", "DISTINCT a.job_id", filter); err != nil {
		return nil, err
	}
	if b.ApplicationsInProgress, err = count(ctx, q, "applicant_in_progress", "*", filter, inProgress()); err != nil {
		return nil, err
	}
	if completes, err = count(ctx, q, "applicant_completed", "*", filter, completed()); err != nil {
		return nil, err
	}
	if accepted, err = count(ctx, q, "applicant_accepted", "*", filter,
		Eq("a.status", string(models.ApplicationStatusAccepted))); err != nil {
		return nil, err
	}

	b.SuccessRate = SuccessRate(accepted, completes)
	return b, nil
}

// RecruiterStatistics computes the recruiter bundle.
func RecruiterStatistics(ctx context.Context, q Querier, filter Filter) (Bundle, error) {
	var (
		b   RecruiterBundle
		err error
	)

	if b.TotalApplications, err = count(ctx, q, "recruiter_total_applications", "*", filter); err != nil {
		return nil, err
	}
	if b.ApplicationsInProgress, err = count(ctx, q, "recruiter_in_progress", "*", filter, inProgress()); err != nil {
		return nil, err
	}
	if b.CompletedApplications, err = count(ctx, q, "recruiter_completed", "*", filter, completed()); err != nil {
		return nil, err
	}
	if b.DistinctJobs, err = count(ctx, q, "recruiter_distinct_jobs", "DISTINCT a.job_id", filter); err != nil {
		return nil, err
	}
	if b.DistinctApplicants, err = count(ctx, q, "recruiter_distinct_applicants", "DISTINCT a.applicant_id", filter); err != nil {
		return nil, err
	}

	b.AverageApplicationsPerJob = AveragePerJob(b.TotalApplications, b.DistinctJobs)
	return b, nil
}

// SuccessRate formats accepted/completed with a two decimal percentage, or
// NoCompletedApplications when nothing is completed.
func SuccessRate(accepted, completed int64) string {
	if completed <= 0 {
		return NoCompletedApplications
	}
	pct := float64(accepted) / float64(completed) * 100
	return fmt.Sprintf("%d/%d (%.2f%%)", accepted, completed, pct)
}

// AveragePerJob is total/jobs, or 0 with no jobs.
func AveragePerJob(total, jobs int64) float64 {
	if jobs <= 0 {
		return 0
	}
	return float64(total) / float64(jobs)
}

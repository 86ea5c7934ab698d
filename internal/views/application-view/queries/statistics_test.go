package queries

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtracker/internal/models"
)

const (
	scopeSQL     = "FROM applications a JOIN jobs j ON a.job_id = j.job_id"
	interviewSQL = scopeSQL + " JOIN interviews i ON a.application_id = i.application_id"
)

func expectScalar(mock sqlmock.Sqlmock, query string, value interface{}, args ...interface{}) {
	driverArgs := make([]driver.Value, 0, len(args))
	for _, a := range args {
		driverArgs = append(driverArgs, a)
	}
	mock.ExpectQuery("^" + regexp.QuoteMeta(query) + "$").
		WithArgs(driverArgs...).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(value))
}

// ==========================
// Formatting Tests
// ==========================

func TestSuccessRate(t *testing.T) {
	assert.Equal(t, "3/4 (75.00%)", SuccessRate(3, 4))
	assert.Equal(t, "1/3 (33.33%)", SuccessRate(1, 3))
	assert.Equal(t, "0/2 (0.00%)", SuccessRate(0, 2))
	assert.Equal(t, NoCompletedApplications, SuccessRate(0, 0))
}

func TestAveragePerJob(t *testing.T) {
	assert.Equal(t, 1.5, AveragePerJob(6, 4))
	assert.Equal(t, float64(0), AveragePerJob(0, 0))
	assert.Equal(t, float64(0), AveragePerJob(5, 0))
}

// ==========================
// Bundle Tests
// ==========================

func TestJobStatistics_PostedDateExample(t *testing.T) {
	db, mock := newMockDB(t)

	expectScalar(mock, "SELECT COUNT(*) "+scopeSQL+" WHERE a.job_id = $1", 2, int64(7))
	expectScalar(mock, "SELECT AVG(a.application_date - j.posted_date) "+scopeSQL+" WHERE a.job_id = $1", 4.0, int64(7))
	expectScalar(mock, "SELECT COUNT(i.interview_id) "+interviewSQL+" WHERE a.job_id = $1", 1, int64(7))

	b, err := JobStatistics(context.Background(), db, Filter{JobID: id(7)})
	require.NoError(t, err)

	raw, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{"application_count":2,"average_days_after_posting":4.0,"interview_count":1}`, string(raw))
	assert.Equal(t, models.BundleJob, b.Kind())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobStatistics_NoApplicationsAverageIsNull(t *testing.T) {
	db, mock := newMockDB(t)

	expectScalar(mock, "SELECT COUNT(*) "+scopeSQL+" WHERE a.job_id = $1", 0, int64(7))
	expectScalar(mock, "SELECT AVG(a.application_date - j.posted_date) "+scopeSQL+" WHERE a.job_id = $1", nil, int64(7))
	expectScalar(mock, "SELECT COUNT(i.interview_id) "+interviewSQL+" WHERE a.job_id = $1", 0, int64(7))

	b, err := JobStatistics(context.Background(), db, Filter{JobID: id(7)})
	require.NoError(t, err)

	raw, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{"application_count":0,"average_days_after_posting":null,"interview_count":0}`, string(raw))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobStatistics_SharesDateRangeWithRows(t *testing.T) {
	db, mock := newMockDB(t)
	filter := Filter{JobID: id(7), Dates: DateRange{Start: day("2024-01-01"), End: day("2024-01-31")}}
	where := " WHERE a.job_id = $1 AND a.application_date BETWEEN $2 AND $3"

	expectScalar(mock, "SELECT COUNT(*) "+scopeSQL+where, 1, int64(7), "2024-01-01", "2024-01-31")
	expectScalar(mock, "SELECT AVG(a.application_date - j.posted_date) "+scopeSQL+where, 2.0, int64(7), "2024-01-01", "2024-01-31")
	expectScalar(mock, "SELECT COUNT(i.interview_id) "+interviewSQL+where, 0, int64(7), "2024-01-01", "2024-01-31")

	_, err := JobStatistics(context.Background(), db, filter)
	require.NoError(t, err)

	rowQuery, rowArgs := ReportQuery(filter)
	assert.Contains(t, rowQuery, where)
	assert.Equal(t, []interface{}{int64(7), "2024-01-01", "2024-01-31"}, rowArgs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicantStatistics_SuccessRate(t *testing.T) {
	db, mock := newMockDB(t)
	where := " WHERE a.applicant_id = $1"

	// 3 accepted, 1 rejected, 2 in review across 5 distinct jobs
	expectScalar(mock, "SELECT COUNT(DISTINCT a.job_id) "+scopeSQL+where, 5, int64(4))
	expectScalar(mock, "SELECT COUNT(*) "+scopeSQL+where+" AND a.status IN ($2, $3)", 2, int64(4), "Incomplete", "In Review")
	expectScalar(mock, "SELECT COUNT(*) "+scopeSQL+where+" AND a.status IN ($2, $3)", 4, int64(4), "Accepted", "Rejected")
	expectScalar(mock, "SELECT COUNT(*) "+scopeSQL+where+" AND a.status = $2", 3, int64(4), "Accepted")

	b, err := ApplicantStatistics(context.Background(), db, Filter{ApplicantID: id(4)})
	require.NoError(t, err)

	ab, ok := b.(ApplicantBundle)
	require.True(t, ok)
	assert.Equal(t, int64(5), ab.JobCount)
	assert.Equal(t, int64(2), ab.ApplicationsInProgress)
	assert.Equal(t, "3/4 (75.00%)", ab.SuccessRate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicantStatistics_NoCompletedApplications(t *testing.T) {
	db, mock := newMockDB(t)
	where := " WHERE a.applicant_id = $1 AND a.application_date >= $2"

	expectScalar(mock, "SELECT COUNT(DISTINCT a.job_id) "+scopeSQL+where, 1, int64(4), "2024-05-01")
	expectScalar(mock, "SELECT COUNT(*) "+scopeSQL+where+" AND a.status IN ($3, $4)", 1, int64(4), "2024-05-01", "Incomplete", "In Review")
	expectScalar(mock, "SELECT COUNT(*) "+scopeSQL+where+" AND a.status IN ($3, $4)", 0, int64(4), "2024-05-01", "Accepted", "Rejected")
	expectScalar(mock, "SELECT COUNT(*) "+scopeSQL+where+" AND a.status = $3", 0, int64(4), "2024-05-01", "Accepted")

	b, err := ApplicantStatistics(context.Background(), db, Filter{ApplicantID: id(4), Dates: DateRange{Start: day("2024-05-01")}})
	require.NoError(t, err)

	raw, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{"job_count":1,"applications_in_progress":1,"success_rate":"No completed applications"}`, string(raw))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecruiterStatistics(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		progress int
		done     int
		jobs     int
		people   int
		wantAvg  float64
	}{
		{"spread over jobs", 6, 2, 4, 4, 5, 1.5},
		{"no jobs in scope", 0, 0, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			where := " WHERE j.recruiter_id = $1 AND a.application_date <= $2"

			expectScalar(mock, "SELECT COUNT(*) "+scopeSQL+where, tt.total, int64(2), "2024-06-30")
			expectScalar(mock, "SELECT COUNT(*) "+scopeSQL+where+" AND a.status IN ($3, $4)", tt.progress, int64(2), "2024-06-30", "Incomplete", "In Review")
			expectScalar(mock, "SELECT COUNT(*) "+scopeSQL+where+" AND a.status IN ($3, $4)", tt.done, int64(2), "2024-06-30", "Accepted", "Rejected")
			expectScalar(mock, "SELECT COUNT(DISTINCT a.job_id) "+scopeSQL+where, tt.jobs, int64(2), "2024-06-30")
			expectScalar(mock, "SELECT COUNT(DISTINCT a.applicant_id) "+scopeSQL+where, tt.people, int64(2), "2024-06-30")

			b, err := RecruiterStatistics(context.Background(), db, Filter{RecruiterID: id(2), Dates: DateRange{End: day("2024-06-30")}})
			require.NoError(t, err)

			rb := b.(RecruiterBundle)
			assert.Equal(t, int64(tt.total), rb.TotalApplications)
			assert.Equal(t, int64(tt.progress), rb.ApplicationsInProgress)
			assert.Equal(t, int64(tt.done), rb.CompletedApplications)
			assert.Equal(t, int64(tt.jobs), rb.DistinctJobs)
			assert.Equal(t, int64(tt.people), rb.DistinctApplicants)
			assert.Equal(t, tt.wantAvg, rb.AverageApplicationsPerJob)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRecruiterStatistics_QueryErrorStops(t *testing.T) {
	db, mock := newMockDB(t)

	expectScalar(mock, "SELECT COUNT(*) "+scopeSQL+" WHERE j.recruiter_id = $1", 3, int64(2))
	mock.ExpectQuery(regexp.QuoteMeta("a.status IN ($2, $3)")).WillReturnError(errors.New("canceling statement"))

	b, err := RecruiterStatistics(context.Background(), db, Filter{RecruiterID: id(2)})
	assert.Nil(t, b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recruiter_in_progress")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ==========================
// Registry Tests
// ==========================

func TestCompute_EmptyBundleRunsNoQueries(t *testing.T) {
	db, mock := newMockDB(t)

	b, err := Compute(context.Background(), db, Filter{Dates: DateRange{Start: day("2024-01-01")}})
	require.NoError(t, err)
	assert.Equal(t, models.BundleNone, b.Kind())

	raw, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(raw))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompute_JobTakesPrecedenceOverRecruiter(t *testing.T) {
	db, mock := newMockDB(t)
	where := " WHERE a.job_id = $1 AND j.recruiter_id = $2"

	expectScalar(mock, "SELECT COUNT(*) "+scopeSQL+where, 1, int64(7), int64(2))
	expectScalar(mock, "SELECT AVG(a.application_date - j.posted_date) "+scopeSQL+where, 3.0, int64(7), int64(2))
	expectScalar(mock, "SELECT COUNT(i.interview_id) "+interviewSQL+where, 1, int64(7), int64(2))

	b, err := Compute(context.Background(), db, Filter{JobID: id(7), RecruiterID: id(2)})
	require.NoError(t, err)
	_, isJob := b.(JobBundle)
	assert.True(t, isJob)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecute_UnknownBundle(t *testing.T) {
	db, _ := newMockDB(t)

	_, err := Execute(context.Background(), db, models.BundleKind("team"), Filter{})
	assert.ErrorIs(t, err, ErrUnknownBundle)
}

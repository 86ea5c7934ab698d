package applicationview

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInput_NoParams(t *testing.T) {
	input, err := ParseInput(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, &Input{}, input)
	assert.True(t, input.Filter().Dates.IsZero())
}

func TestParseInput_AllParams(t *testing.T) {
	input, err := ParseInput(url.Values{
		"job_id":       {"12"},
		"applicant_id": {"7"},
		"recruiter_id": {"3"},
		"start_date":   {"2024-01-01"},
		"end_date":     {"2024-01-31"},
	})
	require.NoError(t, err)

	require.NotNil(t, input.JobID)
	assert.Equal(t, int64(12), *input.JobID)
	assert.Equal(t, int64(7), *input.ApplicantID)
	assert.Equal(t, int64(3), *input.RecruiterID)
	assert.Equal(t, "2024-01-01", input.StartDate.Format("2006-01-02"))
	assert.Equal(t, "2024-01-31", input.EndDate.Format("2006-01-02"))

	filter := input.Filter()
	assert.Equal(t, input.StartDate, filter.Dates.Start)
	assert.Equal(t, input.EndDate, filter.Dates.End)
}

func TestParseInput_BlankAndUnknownIgnored(t *testing.T) {
	input, err := ParseInput(url.Values{
		"job_id":     {""},
		"start_date": {"  "},
		"page":       {"abc"},
		"sort":       {"name; DROP TABLE jobs"},
	})
	require.NoError(t, err)
	assert.Nil(t, input.JobID)
	assert.Nil(t, input.StartDate)
}

func TestParseInput_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
	}{
		{"non numeric id", url.Values{"job_id": {"abc"}}},
		{"negative id", url.Values{"applicant_id": {"-4"}}},
		{"fractional id", url.Values{"recruiter_id": {"1.5"}}},
		{"id too long", url.Values{"job_id": {"12345678901234567890"}}},
		{"slash date", url.Values{"start_date": {"01/02/2024"}}},
		{"month out of range", url.Values{"end_date": {"2024-13-01"}}},
		{"impossible day", url.Values{"end_date": {"2024-02-30"}}},
		{"timestamp", url.Values{"start_date": {"2024-01-01T10:00:00Z"}}},
		{"good id bad date", url.Values{"job_id": {"1"}, "start_date": {"yesterday"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, err := ParseInput(tt.values)
			assert.Nil(t, input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidFilter))
		})
	}
}

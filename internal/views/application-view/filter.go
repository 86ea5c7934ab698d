// internal/views/application-view/filter.go
package applicationview

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"jobtracker/internal/common/validation"
	"jobtracker/internal/models"
)

const (
	ParamJobID       = "job_id"
	ParamApplicantID = "applicant_id"
	ParamRecruiterID = "recruiter_id"
	ParamStartDate   = "start_date"
	ParamEndDate     = "end_date"
)

const paramsSchema = `{
	"type": "object",
	"properties": {
		"job_id":       {"type": "string", "pattern": "^[0-9]{1,18}$"},
		"applicant_id": {"type": "string", "pattern": "^[0-9]{1,18}$"},
		"recruiter_id": {"type": "string", "pattern": "^[0-9]{1,18}$"},
		"start_date":   {"type": "string", "format": "date"},
		"end_date":     {"type": "string", "format": "date"}
	}
}`

var paramsValidator = validation.MustValidator(paramsSchema)

// ParseInput validates and parses the report query parameters. Blank
// values count as absent and unknown parameters are ignored.
func ParseInput(values url.Values) (*Input, error) {
	raw := make(map[string]interface{})
	for _, key := range []string{ParamJobID, ParamApplicantID, ParamRecruiterID, ParamStartDate, ParamEndDate} {
		if v := strings.TrimSpace(values.Get(key)); v != "" {
			raw[key] = v
		}
	}

	result, err := paramsValidator.Validate(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFilter, strings.Join(result.GetErrorMessages(), "; "))
	}

	var (
		input Input
		perr  error
	)
	parseID := func(key string) *int64 {
		s, ok := raw[key].(string)
		if !ok || perr != nil {
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			perr = fmt.Errorf("%w: %s: %v", ErrInvalidFilter, key, err)
			return nil
		}
		return &n
	}
	parseDate := func(key string) *time.Time {
		s, ok := raw[key].(string)
		if !ok || perr != nil {
			return nil
		}
		d, err := time.Parse(models.DateLayout, s)
		if err != nil {
			perr = fmt.Errorf("%w: %s: expected YYYY-MM-DD", ErrInvalidFilter, key)
			return nil
		}
		return &d
	}

	input.JobID = parseID(ParamJobID)
	input.ApplicantID = parseID(ParamApplicantID)
	input.RecruiterID = parseID(ParamRecruiterID)
	input.StartDate = parseDate(ParamStartDate)
	input.EndDate = parseDate(ParamEndDate)
	if perr != nil {
		return nil, perr
	}
	return &input, nil
}

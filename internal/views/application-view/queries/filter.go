// internal/views/application-view/queries/filter.go
package queries

import "jobtracker/internal/models"

// Filter is the set of optional report filters. Every set field narrows the
// result with one AND-ed predicate.
type Filter struct {
	JobID       *int64
	ApplicantID *int64
	RecruiterID *int64
	Dates       DateRange
}

// Predicates returns the row scope of f. The row query and every statistics
// aggregate are built from this same list.
func (f Filter) Predicates() []Predicate {
	var preds []Predicate
	if f.JobID != nil {
		preds = append(preds, Eq("a.job_id", *f.JobID))
	}
	if f.ApplicantID != nil {
		preds = append(preds, Eq("a.applicant_id", *f.ApplicantID))
	}
	if f.RecruiterID != nil {
		preds = append(preds, Eq("j.recruiter_id", *f.RecruiterID))
	}
	if p, ok := f.Dates.Predicate("a.application_date"); ok {
		preds = append(preds, p)
	}
	return preds
}

// SelectBundle picks the statistics bundle for f: job wins over applicant,
// which wins over recruiter.
func SelectBundle(f Filter) models.BundleKind {
	switch {
	case f.JobID != nil:
		return models.BundleJob
	case f.ApplicantID != nil:
		return models.BundleApplicant
	case f.RecruiterID != nil:
		return models.BundleRecruiter
	}
	return models.BundleNone
}

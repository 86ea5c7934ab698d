// internal/views/application-view/queries/registry.go
package queries

import (
	"context"
	"errors"
	"fmt"

	"jobtracker/internal/models"
)

var ErrUnknownBundle = errors.New("unknown statistics bundle")

// BundleFunc computes one statistics bundle over the scope of filter.
type BundleFunc func(ctx context.Context, q Querier, filter Filter) (Bundle, error)

var Registry = map[models.BundleKind]BundleFunc{
	models.BundleNone:      EmptyStatistics,
	models.BundleJob:       JobStatistics,
	models.BundleApplicant: ApplicantStatistics,
	models.BundleRecruiter: RecruiterStatistics,
}

func EmptyStatistics(context.Context, Querier, Filter) (Bundle, error) {
	return EmptyBundle{}, nil
}

// Compute selects the bundle for filter and runs it.
func Compute(ctx context.Context, q Querier, filter Filter) (Bundle, error) {
	return Execute(ctx, q, SelectBundle(filter), filter)
}

func Execute(ctx context.Context, q Querier, kind models.BundleKind, filter Filter) (Bundle, error) {
	fn, exists := Registry[kind]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBundle, kind)
	}
	return fn(ctx, q, filter)
}

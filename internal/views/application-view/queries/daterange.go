// internal/views/application-view/queries/daterange.go
package queries

import (
	"time"

	"jobtracker/internal/models"
)

// DateRange is an optional, inclusive bound on a date column. A nil end
// leaves that side open; both nil means no constraint at all.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

func (r DateRange) IsZero() bool {
	return r.Start == nil && r.End == nil
}

// Predicate returns the constraint on column, or ok=false when the range
// is unbounded. Dates are bound as YYYY-MM-DD strings.
func (r DateRange) Predicate(column string) (p Predicate, ok bool) {
	switch {
	case r.Start != nil && r.End != nil:
		return Between(column, r.Start.Format(models.DateLayout), r.End.Format(models.DateLayout)), true
	case r.Start != nil:
		return Gte(column, r.Start.Format(models.DateLayout)), true
	case r.End != nil:
		return Lte(column, r.End.Format(models.DateLayout)), true
	}
	return Predicate{}, false
}

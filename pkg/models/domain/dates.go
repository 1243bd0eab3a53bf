package domain

import "time"

// Period identifies one of the two compared imagery windows.
type Period string

const (
	PeriodBaseline   Period = "baseline"
	PeriodComparison Period = "comparison"
)

const DateLayout = "2006-01-02"

// DateRange is a calendar interval. Start > End is representable so the two
// bounds can be edited independently; it only fails validation at analysis
// time.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) Validate() error {
	if r.Start.After(r.End) {
		return NewInvalidDateRange(r)
	}
	return nil
}

func (r DateRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

func (r DateRange) String() string {
	return r.Start.Format(DateLayout) + " to " + r.End.Format(DateLayout)
}

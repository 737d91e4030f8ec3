// Package feecalc computes membership-fee coverage dates, balances and
// statuses. Everything here is a pure function over already-fetched data:
// no clock reads, no I/O. Malformed input surfaces as a typed error the
// caller must handle; it is never silently defaulted.
package feecalc

import (
	"errors"
	"time"
)

var (
	ErrUnknownPeriod = errors.New("unknown fee period")
	ErrInvalidDate   = errors.New("invalid start date")
)

// PeriodID identifies one of the fixed billing durations.
type PeriodID string

const (
	Period1Month   PeriodID = "1_month"
	Period3Months  PeriodID = "3_months"
	Period5Months  PeriodID = "5_months"
	Period12Months PeriodID = "12_months"
)

// Period is one entry of the billing catalog: a duration in calendar months,
// its fixed price and the savings versus paying month by month.
type Period struct {
	ID      PeriodID `json:"id"`
	Label   string   `json:"label"`
	Months  int      `json:"months"`
	Price   float64  `json:"price"`
	Savings float64  `json:"savings"`
}

// periods is the closed billing catalog. Defined once, never mutated.
var periods = map[PeriodID]Period{
	Period1Month:   {ID: Period1Month, Label: "1 month", Months: 1, Price: 50, Savings: 0},
	Period3Months:  {ID: Period3Months, Label: "3 months", Months: 3, Price: 140, Savings: 10},
	Period5Months:  {ID: Period5Months, Label: "5 months", Months: 5, Price: 225, Savings: 25},
	Period12Months: {ID: Period12Months, Label: "12 months", Months: 12, Price: 480, Savings: 120},
}

// periodOrder fixes catalog listing order (shortest first).
var periodOrder = []PeriodID{Period1Month, Period3Months, Period5Months, Period12Months}

// ResolvePeriod looks up a period by id. IDs outside the closed set fail with
// ErrUnknownPeriod; callers must refuse the operation rather than fall back
// to some default period.
func ResolvePeriod(id PeriodID) (Period, error) {
	p, ok := periods[id]
	if !ok {
		return Period{}, ErrUnknownPeriod
	}
	return p, nil
}

// Periods returns the full catalog, shortest period first.
func Periods() []Period {
	out := make([]Period, 0, len(periodOrder))
	for _, id := range periodOrder {
		out = append(out, periods[id])
	}
	return out
}

// PeriodDates is the coverage window derived from a start date and a period.
type PeriodDates struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	DueDate   time.Time `json:"due_date"`
}

// ComputePeriodDates derives the coverage window for a fee. Coverage is
// inclusive of both endpoints: the end date is the period length in calendar
// months after the start, minus one day. The due date equals the start date —
// payment is expected at period start. That is a policy constant, not a
// derived value; do not confuse it with the end date.
func ComputePeriodDates(start time.Time, id PeriodID) (PeriodDates, error) {
	p, err := ResolvePeriod(id)
	if err != nil {
		return PeriodDates{}, err
	}
	if start.IsZero() {
		return PeriodDates{}, ErrInvalidDate
	}

	start = truncateToDay(start)
	end := addMonths(start, p.Months).AddDate(0, 0, -1)

	return PeriodDates{
		StartDate: start,
		EndDate:   end,
		DueDate:   start,
	}, nil
}

// ParseStartDate parses a YYYY-MM-DD start date. Anything unparseable maps to
// ErrInvalidDate.
func ParseStartDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// addMonths advances a date by whole calendar months, clamping the day of
// month at shorter target months (Jan 31 + 1 month = Feb 28/29). This avoids
// the spill-over of naive normalization for periods crossing months of
// different lengths.
func addMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	firstOfTarget := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := daysInMonth(firstOfTarget); d > last {
		d = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, 0, 0, 0, 0, t.Location())
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

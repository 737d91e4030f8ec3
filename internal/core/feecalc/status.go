package feecalc

import "time"

// Status classifies payment progress on a single fee record.
type Status string

const (
	StatusPending Status = "pending"
	StatusPartial Status = "partial"
	StatusPaid    Status = "paid"
)

// MembershipState is the overall standing derived from a member's fee history.
type MembershipState string

const (
	MembershipActive  MembershipState = "active"
	MembershipExpired MembershipState = "expired"
	MembershipOverdue MembershipState = "overdue"
	MembershipPending MembershipState = "pending"
)

// Record is the calculator's view of one fee obligation. Services map their
// storage models onto this before calling Summarize.
type Record struct {
	StartDate  time.Time
	EndDate    time.Time
	DueDate    time.Time
	Amount     float64
	AmountPaid float64
}

// RemainingBalance is the outstanding amount on a record. Never negative:
// over-payment clamps to zero.
func RemainingBalance(amount, amountPaid float64) float64 {
	if rem := amount - amountPaid; rem > 0 {
		return rem
	}
	return 0
}

// ClassifyStatus derives the payment status for a record. Callers pass
// already-validated non-negative numbers; a negative amountPaid is a caller
// contract violation, not a case this function recovers.
func ClassifyStatus(amountPaid, amount float64) Status {
	switch {
	case amountPaid <= 0:
		return StatusPending
	case amountPaid >= amount:
		return StatusPaid
	default:
		return StatusPartial
	}
}

// Status returns the record's own payment status.
func (r Record) Status() Status {
	return ClassifyStatus(r.AmountPaid, r.Amount)
}

// covers reports whether day falls inside the record's inclusive coverage
// window.
func (r Record) covers(day time.Time) bool {
	return !day.Before(r.StartDate) && !day.After(r.EndDate)
}

// Summary is the overall membership standing for one member.
type Summary struct {
	State      MembershipState
	Current    *Record
	ExpiryDate time.Time
}

// Summarize derives the membership standing from all fee records of one
// member, relative to an explicit reference day (callers pass "today"; the
// calculator itself never reads the clock).
//
// The relevant record is the one covering the reference day; if several
// overlap (a data-entry anomaly) the latest start date wins. If none covers
// the day the most recently ended record is used instead; records that have
// not started yet never stand in, so a prepaid future period stays pending
// until its coverage begins.
func Summarize(records []Record, today time.Time) Summary {
	today = truncateToDay(today)

	var current *Record
	for i := range records {
		r := &records[i]
		if !r.covers(today) {
			continue
		}
		if current == nil || r.StartDate.After(current.StartDate) {
			current = r
		}
	}
	if current == nil {
		for i := range records {
			r := &records[i]
			if !r.EndDate.Before(today) {
				continue
			}
			if current == nil || r.EndDate.After(current.EndDate) {
				current = r
			}
		}
	}
	if current == nil {
		return Summary{State: MembershipPending}
	}

	summary := Summary{Current: current, ExpiryDate: current.EndDate}
	status := current.Status()

	switch {
	case !current.EndDate.Before(today) && (status == StatusPaid || status == StatusPartial):
		summary.State = MembershipActive
	case current.EndDate.Before(today):
		summary.State = MembershipExpired
	case current.DueDate.Before(today) && status != StatusPaid:
		summary.State = MembershipOverdue
	default:
		summary.State = MembershipPending
	}
	return summary
}

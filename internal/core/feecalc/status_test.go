package feecalc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemainingBalance(t *testing.T) {
	assert.Equal(t, 1000.0, RemainingBalance(1000, 0))
	assert.Equal(t, 500.0, RemainingBalance(1000, 500))
	assert.Equal(t, 0.0, RemainingBalance(1000, 1000))
	assert.Equal(t, 0.0, RemainingBalance(1000, 1500), "over-payment clamps to zero")
	assert.Equal(t, 0.0, RemainingBalance(0, 0))
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		paid   float64
		amount float64
		want   Status
	}{
		{0, 1000, StatusPending},
		{500, 1000, StatusPartial},
		{1000, 1000, StatusPaid},
		{1500, 1000, StatusPaid},
		{0.01, 1000, StatusPartial},
		{0, 0, StatusPending},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyStatus(tt.paid, tt.amount),
			"ClassifyStatus(%v, %v)", tt.paid, tt.amount)
	}
}

func paidRecord(start, end time.Time, amount float64) Record {
	return Record{StartDate: start, EndDate: end, DueDate: start, Amount: amount, AmountPaid: amount}
}

func TestSummarizeNoRecords(t *testing.T) {
	s := Summarize(nil, date(2024, time.June, 15))
	assert.Equal(t, MembershipPending, s.State)
	assert.Nil(t, s.Current)
}

func TestSummarizeActive(t *testing.T) {
	records := []Record{
		paidRecord(date(2024, time.June, 1), date(2024, time.August, 31), 140),
	}
	s := Summarize(records, date(2024, time.July, 10))
	require.NotNil(t, s.Current)
	assert.Equal(t, MembershipActive, s.State)
	assert.Equal(t, date(2024, time.August, 31), s.ExpiryDate)
}

func TestSummarizePartialStillActive(t *testing.T) {
	records := []Record{{
		StartDate:  date(2024, time.June, 1),
		EndDate:    date(2024, time.August, 31),
		DueDate:    date(2024, time.June, 1),
		Amount:     140,
		AmountPaid: 70,
	}}
	s := Summarize(records, date(2024, time.July, 10))
	assert.Equal(t, MembershipActive, s.State)
}

func TestSummarizeExpired(t *testing.T) {
	records := []Record{
		paidRecord(date(2023, time.January, 1), date(2023, time.March, 31), 140),
	}
	s := Summarize(records, date(2024, time.June, 15))
	assert.Equal(t, MembershipExpired, s.State)
	assert.Equal(t, date(2023, time.March, 31), s.ExpiryDate)
}

func TestSummarizeOverdue(t *testing.T) {
	// Covers today, nothing paid, due date passed.
	records := []Record{{
		StartDate: date(2024, time.June, 1),
		EndDate:   date(2024, time.August, 31),
		DueDate:   date(2024, time.June, 1),
		Amount:    140,
	}}
	s := Summarize(records, date(2024, time.July, 10))
	assert.Equal(t, MembershipOverdue, s.State)
}

func TestSummarizePendingOnDueDay(t *testing.T) {
	records := []Record{{
		StartDate: date(2024, time.June, 1),
		EndDate:   date(2024, time.August, 31),
		DueDate:   date(2024, time.June, 1),
		Amount:    140,
	}}
	s := Summarize(records, date(2024, time.June, 1))
	assert.Equal(t, MembershipPending, s.State)
}

func TestSummarizeOverlapPrefersLatestStart(t *testing.T) {
	older := paidRecord(date(2024, time.May, 1), date(2024, time.July, 31), 140)
	newer := paidRecord(date(2024, time.June, 1), date(2024, time.August, 31), 140)
	s := Summarize([]Record{older, newer}, date(2024, time.June, 15))
	require.NotNil(t, s.Current)
	assert.Equal(t, newer.StartDate, s.Current.StartDate)
	assert.Equal(t, newer.EndDate, s.ExpiryDate)
}

func TestSummarizeGapFallsBackToMostRecentlyEnded(t *testing.T) {
	first := paidRecord(date(2023, time.January, 1), date(2023, time.January, 31), 50)
	second := paidRecord(date(2023, time.March, 1), date(2023, time.March, 31), 50)
	s := Summarize([]Record{first, second}, date(2023, time.June, 15))
	require.NotNil(t, s.Current)
	assert.Equal(t, second.EndDate, s.ExpiryDate)
	assert.Equal(t, MembershipExpired, s.State)
}

// A prepaid period that has not started yet does not make the membership
// active early.
func TestSummarizeFutureRecordStaysPending(t *testing.T) {
	future := paidRecord(date(2024, time.September, 1), date(2024, time.November, 30), 140)
	s := Summarize([]Record{future}, date(2024, time.July, 10))
	assert.Equal(t, MembershipPending, s.State)
	assert.Nil(t, s.Current)
}

func TestSummarizeFallbackIgnoresFutureRecords(t *testing.T) {
	ended := paidRecord(date(2024, time.March, 1), date(2024, time.May, 31), 140)
	future := paidRecord(date(2024, time.September, 1), date(2024, time.November, 30), 140)
	s := Summarize([]Record{ended, future}, date(2024, time.July, 10))
	require.NotNil(t, s.Current)
	assert.Equal(t, ended.EndDate, s.ExpiryDate)
	assert.Equal(t, MembershipExpired, s.State)
}

// Registration-to-payment walkthrough: a 3 month fee starting 2024-06-01
// starts pending with the full amount outstanding, then flips to paid once
// the full amount is recorded.
func TestFeeLifecycle(t *testing.T) {
	dates, err := ComputePeriodDates(date(2024, time.June, 1), Period3Months)
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.August, 31), dates.EndDate)
	assert.Equal(t, date(2024, time.June, 1), dates.DueDate)

	period, err := ResolvePeriod(Period3Months)
	require.NoError(t, err)

	rec := Record{
		StartDate: dates.StartDate,
		EndDate:   dates.EndDate,
		DueDate:   dates.DueDate,
		Amount:    period.Price,
	}
	assert.Equal(t, StatusPending, rec.Status())
	assert.Equal(t, period.Price, RemainingBalance(rec.Amount, rec.AmountPaid))

	rec.AmountPaid += period.Price
	assert.Equal(t, StatusPaid, rec.Status())
	assert.Equal(t, 0.0, RemainingBalance(rec.Amount, rec.AmountPaid))
}

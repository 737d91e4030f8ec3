package feecalc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolvePeriod(t *testing.T) {
	p, err := ResolvePeriod(Period3Months)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Months)
	assert.Equal(t, 140.0, p.Price)

	_, err = ResolvePeriod(PeriodID("2_weeks"))
	assert.ErrorIs(t, err, ErrUnknownPeriod)

	_, err = ResolvePeriod("")
	assert.ErrorIs(t, err, ErrUnknownPeriod)
}

func TestPeriodsCatalogOrder(t *testing.T) {
	catalog := Periods()
	require.Len(t, catalog, 4)
	for i := 1; i < len(catalog); i++ {
		assert.Greater(t, catalog[i].Months, catalog[i-1].Months)
	}
}

func TestPeriodSavingsAgainstMonthly(t *testing.T) {
	monthly, err := ResolvePeriod(Period1Month)
	require.NoError(t, err)

	for _, p := range Periods() {
		assert.InDelta(t, monthly.Price*float64(p.Months)-p.Price, p.Savings, 0.001,
			"savings for %s should equal monthly price x months minus bundle price", p.ID)
	}
}

func TestComputePeriodDates(t *testing.T) {
	tests := []struct {
		name    string
		start   time.Time
		period  PeriodID
		wantEnd time.Time
	}{
		{"three months from january", date(2024, time.January, 1), Period3Months, date(2024, time.March, 31)},
		{"one month", date(2024, time.June, 1), Period1Month, date(2024, time.June, 30)},
		{"five months", date(2024, time.February, 1), Period5Months, date(2024, time.June, 30)},
		{"twelve months", date(2024, time.January, 1), Period12Months, date(2024, time.December, 31)},
		{"mid-month start", date(2024, time.January, 15), Period1Month, date(2024, time.February, 14)},
		{"clamps at short month", date(2024, time.January, 31), Period1Month, date(2024, time.February, 28)},
		{"leap year february", date(2024, time.January, 30), Period1Month, date(2024, time.February, 28)},
		{"across year boundary", date(2023, time.November, 10), Period3Months, date(2024, time.February, 9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputePeriodDates(tt.start, tt.period)
			require.NoError(t, err)
			assert.Equal(t, tt.start, got.StartDate)
			assert.Equal(t, tt.wantEnd, got.EndDate)
			assert.Equal(t, tt.start, got.DueDate, "due date is the period start by policy")
		})
	}
}

func TestComputePeriodDatesErrors(t *testing.T) {
	_, err := ComputePeriodDates(date(2024, time.January, 1), PeriodID("forever"))
	assert.ErrorIs(t, err, ErrUnknownPeriod)

	_, err = ComputePeriodDates(time.Time{}, Period1Month)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestComputePeriodDatesIdempotent(t *testing.T) {
	start := date(2024, time.June, 1)
	first, err := ComputePeriodDates(start, Period3Months)
	require.NoError(t, err)
	second, err := ComputePeriodDates(start, Period3Months)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputePeriodDatesDropsTimeOfDay(t *testing.T) {
	noisy := time.Date(2024, time.June, 1, 17, 45, 12, 999, time.UTC)
	got, err := ComputePeriodDates(noisy, Period1Month)
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.June, 1), got.StartDate)
	assert.Equal(t, date(2024, time.June, 30), got.EndDate)
}

func TestParseStartDate(t *testing.T) {
	got, err := ParseStartDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.June, 1), got)

	_, err = ParseStartDate("01/06/2024")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseStartDate("2024-13-40")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseStartDate("")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

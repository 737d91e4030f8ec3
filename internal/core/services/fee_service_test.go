package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"teamhub/internal/adapters/persistence/models"
	"teamhub/internal/core/feecalc"
)

// fakeMemberRepo is an in-memory MemberRepository covering only what the fee
// service touches.
type fakeMemberRepo struct {
	members map[uint]*models.Member
}

func newFakeMemberRepo(ids ...uint) *fakeMemberRepo {
	r := &fakeMemberRepo{members: make(map[uint]*models.Member)}
	for _, id := range ids {
		r.members[id] = &models.Member{ID: id, FullName: "Member", IsActive: true}
	}
	return r
}

func (r *fakeMemberRepo) Create(_ context.Context, m *models.Member) error {
	r.members[m.ID] = m
	return nil
}

func (r *fakeMemberRepo) GetByID(_ context.Context, id uint) (*models.Member, error) {
	m, ok := r.members[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *fakeMemberRepo) Update(_ context.Context, m *models.Member) error {
	r.members[m.ID] = m
	return nil
}

func (r *fakeMemberRepo) Delete(_ context.Context, id uint) error {
	delete(r.members, id)
	return nil
}

func (r *fakeMemberRepo) List(_ context.Context, _, _ int, _ bool) ([]*models.Member, int64, error) {
	return nil, 0, nil
}

func (r *fakeMemberRepo) ListAll(_ context.Context) ([]*models.Member, error) {
	return nil, nil
}

func (r *fakeMemberRepo) Search(_ context.Context, _ string, _ int) ([]*models.Member, error) {
	return nil, nil
}

func (r *fakeMemberRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := r.members[id]
	return ok, nil
}

// fakeFeeRepo is an in-memory FeeRepository.
type fakeFeeRepo struct {
	fees     map[uint]*models.MembershipFee
	payments []*models.FeePayment
	nextID   uint
}

func newFakeFeeRepo() *fakeFeeRepo {
	return &fakeFeeRepo{fees: make(map[uint]*models.MembershipFee), nextID: 1}
}

func (r *fakeFeeRepo) Create(_ context.Context, fee *models.MembershipFee) error {
	fee.ID = r.nextID
	r.nextID++
	cp := *fee
	r.fees[fee.ID] = &cp
	return nil
}

func (r *fakeFeeRepo) GetByID(_ context.Context, id uint) (*models.MembershipFee, error) {
	fee, ok := r.fees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *fee
	return &cp, nil
}

func (r *fakeFeeRepo) Update(_ context.Context, fee *models.MembershipFee) error {
	if _, ok := r.fees[fee.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *fee
	r.fees[fee.ID] = &cp
	return nil
}

func (r *fakeFeeRepo) Delete(_ context.Context, id uint) error {
	delete(r.fees, id)
	return nil
}

func (r *fakeFeeRepo) List(_ context.Context, _, _ int, _ string) ([]*models.MembershipFee, int64, error) {
	out := make([]*models.MembershipFee, 0, len(r.fees))
	for _, fee := range r.fees {
		cp := *fee
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (r *fakeFeeRepo) ListByMember(_ context.Context, memberID uint) ([]*models.MembershipFee, error) {
	var out []*models.MembershipFee
	for _, fee := range r.fees {
		if fee.MemberID == memberID {
			cp := *fee
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeFeeRepo) ListOverlapping(_ context.Context, memberID uint, start, end time.Time) ([]*models.MembershipFee, error) {
	var out []*models.MembershipFee
	for _, fee := range r.fees {
		if fee.MemberID != memberID {
			continue
		}
		if !fee.StartDate.After(end) && !fee.EndDate.Before(start) {
			cp := *fee
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeFeeRepo) ListOverdue(_ context.Context, asOf time.Time) ([]*models.MembershipFee, error) {
	var out []*models.MembershipFee
	for _, fee := range r.fees {
		if fee.Status != string(feecalc.StatusPaid) && fee.DueDate.Before(asOf) && !fee.EndDate.Before(asOf) {
			cp := *fee
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeFeeRepo) CreatePayment(_ context.Context, payment *models.FeePayment) error {
	payment.ID = uint(len(r.payments) + 1)
	r.payments = append(r.payments, payment)
	return nil
}

func (r *fakeFeeRepo) ListPayments(_ context.Context, feeID uint) ([]*models.FeePayment, error) {
	var out []*models.FeePayment
	for _, p := range r.payments {
		if p.FeeID == feeID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeFeeRepo) SumByStatus(_ context.Context) (float64, float64, error) {
	return 0, 0, nil
}

func newTestFeeService(memberIDs ...uint) (*FeeService, *fakeFeeRepo) {
	feeRepo := newFakeFeeRepo()
	return NewFeeService(feeRepo, newFakeMemberRepo(memberIDs...)), feeRepo
}

func TestRegisterFeeDerivesAmountAndDates(t *testing.T) {
	svc, _ := newTestFeeService(7)

	fee, err := svc.RegisterFee(context.Background(), 1, &RegisterFeeInput{
		MemberID:  7,
		Period:    "3_months",
		StartDate: "2024-06-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "3_months", fee.Period)
	assert.Equal(t, 140.0, fee.Amount)
	assert.Equal(t, 0.0, fee.AmountPaid)
	assert.Equal(t, 140.0, fee.RemainingBalance)
	assert.Equal(t, string(feecalc.StatusPending), fee.Status)
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), fee.StartDate)
	assert.Equal(t, time.Date(2024, time.August, 31, 0, 0, 0, 0, time.UTC), fee.EndDate)
	assert.Equal(t, fee.StartDate, fee.DueDate)
}

func TestRegisterFeeUnknownPeriod(t *testing.T) {
	svc, _ := newTestFeeService(7)

	_, err := svc.RegisterFee(context.Background(), 1, &RegisterFeeInput{
		MemberID:  7,
		Period:    "2_weeks",
		StartDate: "2024-06-01",
	})
	assert.ErrorIs(t, err, feecalc.ErrUnknownPeriod)
}

func TestRegisterFeeBadStartDate(t *testing.T) {
	svc, _ := newTestFeeService(7)

	_, err := svc.RegisterFee(context.Background(), 1, &RegisterFeeInput{
		MemberID:  7,
		Period:    "1_month",
		StartDate: "01/06/2024",
	})
	assert.ErrorIs(t, err, feecalc.ErrInvalidDate)
}

func TestRegisterFeeUnknownMember(t *testing.T) {
	svc, _ := newTestFeeService(7)

	_, err := svc.RegisterFee(context.Background(), 1, &RegisterFeeInput{
		MemberID:  99,
		Period:    "1_month",
		StartDate: "2024-06-01",
	})
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestRegisterFeeRejectsOverlap(t *testing.T) {
	svc, _ := newTestFeeService(7)
	ctx := context.Background()

	_, err := svc.RegisterFee(ctx, 1, &RegisterFeeInput{
		MemberID:  7,
		Period:    "3_months",
		StartDate: "2024-06-01",
	})
	require.NoError(t, err)

	// Starts inside the existing June-August window.
	_, err = svc.RegisterFee(ctx, 1, &RegisterFeeInput{
		MemberID:  7,
		Period:    "1_month",
		StartDate: "2024-08-15",
	})
	assert.ErrorIs(t, err, ErrFeeOverlap)

	// Back to back is fine: the next window starts the day after the
	// previous one ends.
	next, err := svc.RegisterFee(ctx, 1, &RegisterFeeInput{
		MemberID:  7,
		Period:    "1_month",
		StartDate: "2024-09-01",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.September, 30, 0, 0, 0, 0, time.UTC), next.EndDate)

	// A different member is unaffected.
	other := newFakeMemberRepo(8)
	svc2 := NewFeeService(newFakeFeeRepo(), other)
	_, err = svc2.RegisterFee(ctx, 1, &RegisterFeeInput{
		MemberID:  8,
		Period:    "3_months",
		StartDate: "2024-06-01",
	})
	assert.NoError(t, err)
}

func TestRecordPaymentLifecycle(t *testing.T) {
	svc, repo := newTestFeeService(7)
	ctx := context.Background()

	fee, err := svc.RegisterFee(ctx, 1, &RegisterFeeInput{
		MemberID:  7,
		Period:    "3_months",
		StartDate: "2024-06-01",
	})
	require.NoError(t, err)

	// Partial payment.
	partial, err := svc.RecordPayment(ctx, fee.ID, 1, &RecordPaymentInput{Amount: 40, Method: "cash"})
	require.NoError(t, err)
	assert.Equal(t, 40.0, partial.AmountPaid)
	assert.Equal(t, 100.0, partial.RemainingBalance)
	assert.Equal(t, string(feecalc.StatusPartial), partial.Status)

	// Remainder settles the fee.
	paid, err := svc.RecordPayment(ctx, fee.ID, 1, &RecordPaymentInput{Amount: 100, Method: "transfer", Reference: "TX-42"})
	require.NoError(t, err)
	assert.Equal(t, 140.0, paid.AmountPaid)
	assert.Equal(t, 0.0, paid.RemainingBalance)
	assert.Equal(t, string(feecalc.StatusPaid), paid.Status)

	payments, err := svc.ListPayments(ctx, fee.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 2)

	// A settled fee refuses further payments.
	_, err = svc.RecordPayment(ctx, fee.ID, 1, &RecordPaymentInput{Amount: 10})
	assert.ErrorIs(t, err, ErrFeeAlreadySettled)

	stored, err := repo.GetByID(ctx, fee.ID)
	require.NoError(t, err)
	assert.Equal(t, string(feecalc.StatusPaid), stored.Status)
}

func TestRecordPaymentToleratesOverPayment(t *testing.T) {
	svc, _ := newTestFeeService(7)
	ctx := context.Background()

	fee, err := svc.RegisterFee(ctx, 1, &RegisterFeeInput{
		MemberID:  7,
		Period:    "1_month",
		StartDate: "2024-06-01",
	})
	require.NoError(t, err)

	paid, err := svc.RecordPayment(ctx, fee.ID, 1, &RecordPaymentInput{Amount: 80})
	require.NoError(t, err)
	assert.Equal(t, 80.0, paid.AmountPaid)
	assert.Equal(t, 0.0, paid.RemainingBalance, "balance clamps at zero")
	assert.Equal(t, string(feecalc.StatusPaid), paid.Status)
}

func TestRecordPaymentValidation(t *testing.T) {
	svc, _ := newTestFeeService(7)
	ctx := context.Background()

	fee, err := svc.RegisterFee(ctx, 1, &RegisterFeeInput{
		MemberID:  7,
		Period:    "1_month",
		StartDate: "2024-06-01",
	})
	require.NoError(t, err)

	_, err = svc.RecordPayment(ctx, fee.ID, 1, &RecordPaymentInput{Amount: 0})
	assert.ErrorIs(t, err, ErrInvalidPayment)

	_, err = svc.RecordPayment(ctx, fee.ID, 1, &RecordPaymentInput{Amount: -5})
	assert.ErrorIs(t, err, ErrInvalidPayment)

	_, err = svc.RecordPayment(ctx, 999, 1, &RecordPaymentInput{Amount: 10})
	assert.ErrorIs(t, err, ErrFeeNotFound)
}

func TestGetMemberSummary(t *testing.T) {
	svc, _ := newTestFeeService(7)
	ctx := context.Background()

	fee, err := svc.RegisterFee(ctx, 1, &RegisterFeeInput{
		MemberID:  7,
		Period:    "3_months",
		StartDate: "2024-06-01",
	})
	require.NoError(t, err)
	_, err = svc.RecordPayment(ctx, fee.ID, 1, &RecordPaymentInput{Amount: 140})
	require.NoError(t, err)

	inside := time.Date(2024, time.July, 10, 0, 0, 0, 0, time.UTC)
	summary, err := svc.GetMemberSummary(ctx, 7, inside)
	require.NoError(t, err)
	assert.Equal(t, string(feecalc.MembershipActive), summary.State)
	require.NotNil(t, summary.Current)
	assert.Equal(t, fee.ID, summary.Current.ID)
	require.NotNil(t, summary.ExpiryDate)
	assert.Equal(t, time.Date(2024, time.August, 31, 0, 0, 0, 0, time.UTC), *summary.ExpiryDate)
	assert.Len(t, summary.History, 1)

	// Past the coverage window the membership reads expired, with the lapsed
	// record still reported so callers can show when it ended.
	after := time.Date(2024, time.September, 15, 0, 0, 0, 0, time.UTC)
	summary, err = svc.GetMemberSummary(ctx, 7, after)
	require.NoError(t, err)
	assert.Equal(t, string(feecalc.MembershipExpired), summary.State)
	require.NotNil(t, summary.Current)
	assert.Equal(t, fee.ID, summary.Current.ID)

	_, err = svc.GetMemberSummary(ctx, 99, inside)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestListOverdueFees(t *testing.T) {
	svc, _ := newTestFeeService(7)
	ctx := context.Background()

	fee, err := svc.RegisterFee(ctx, 1, &RegisterFeeInput{
		MemberID:  7,
		Period:    "3_months",
		StartDate: "2024-06-01",
	})
	require.NoError(t, err)

	// Past due, still inside the coverage window.
	overdue, err := svc.ListOverdueFees(ctx, time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, fee.ID, overdue[0].ID)

	// After the window ends it is expired, not overdue.
	overdue, err = svc.ListOverdueFees(ctx, time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, overdue)

	// Paid fees never show up.
	_, err = svc.RecordPayment(ctx, fee.ID, 1, &RecordPaymentInput{Amount: 140})
	require.NoError(t, err)
	overdue, err = svc.ListOverdueFees(ctx, time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, overdue)
}

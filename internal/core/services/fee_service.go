package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"teamhub/internal/adapters/persistence/models"
	"teamhub/internal/adapters/persistence/repositories"
	"teamhub/internal/core/feecalc"

	"gorm.io/gorm"
)

// Fee service errors
var (
	ErrFeeNotFound       = errors.New("fee record not found")
	ErrFeeOverlap        = errors.New("member already has a fee covering part of this period")
	ErrInvalidPayment    = errors.New("payment amount must be greater than zero")
	ErrFeeAlreadySettled = errors.New("fee is already fully paid")
)

// FeeService handles the membership fee ledger. Amounts and coverage dates
// are always derived from the period catalog, never accepted from the client.
type FeeService struct {
	feeRepo    repositories.FeeRepository
	memberRepo repositories.MemberRepository
}

// NewFeeService creates a new fee service
func NewFeeService(
	feeRepo repositories.FeeRepository,
	memberRepo repositories.MemberRepository,
) *FeeService {
	return &FeeService{
		feeRepo:    feeRepo,
		memberRepo: memberRepo,
	}
}

// RegisterFeeInput represents register fee input
type RegisterFeeInput struct {
	MemberID  uint   `json:"member_id" validate:"required"`
	Period    string `json:"period" validate:"required"`
	StartDate string `json:"start_date" validate:"required"`
}

// RecordPaymentInput represents record payment input
type RecordPaymentInput struct {
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Method    string  `json:"method"`
	Reference string  `json:"reference"`
}

// ListFeesInput represents list fees input
type ListFeesInput struct {
	Page   int
	Limit  int
	Status string
}

// ListFeesOutput represents list fees output
type ListFeesOutput struct {
	Fees       []*models.MembershipFeeResponse `json:"fees"`
	Total      int64                           `json:"total"`
	Page       int                             `json:"page"`
	Limit      int                             `json:"limit"`
	TotalPages int                             `json:"total_pages"`
}

// MemberFeeSummary represents one member's overall fee standing
type MemberFeeSummary struct {
	MemberID   uint                            `json:"member_id"`
	State      string                          `json:"state"`
	ExpiryDate *time.Time                      `json:"expiry_date,omitempty"`
	Current    *models.MembershipFeeResponse   `json:"current,omitempty"`
	History    []*models.MembershipFeeResponse `json:"history"`
}

// GetPeriodCatalog returns the fixed billing catalog, shortest period first
func (s *FeeService) GetPeriodCatalog() []feecalc.Period {
	return feecalc.Periods()
}

// RegisterFee registers a fee obligation for a member. The period must come
// from the catalog, the amount and coverage window are derived from it, and
// a fee whose window overlaps an existing one for the same member is refused.
func (s *FeeService) RegisterFee(ctx context.Context, createdBy uint, input *RegisterFeeInput) (*models.MembershipFeeResponse, error) {
	exists, err := s.memberRepo.Exists(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrMemberNotFound
	}

	periodID := feecalc.PeriodID(strings.TrimSpace(input.Period))
	period, err := feecalc.ResolvePeriod(periodID)
	if err != nil {
		return nil, err
	}

	start, err := feecalc.ParseStartDate(input.StartDate)
	if err != nil {
		return nil, err
	}

	dates, err := feecalc.ComputePeriodDates(start, periodID)
	if err != nil {
		return nil, err
	}

	overlapping, err := s.feeRepo.ListOverlapping(ctx, input.MemberID, dates.StartDate, dates.EndDate)
	if err != nil {
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, ErrFeeOverlap
	}

	fee := &models.MembershipFee{
		MemberID:  input.MemberID,
		Period:    string(period.ID),
		Amount:    period.Price,
		StartDate: dates.StartDate,
		EndDate:   dates.EndDate,
		DueDate:   dates.DueDate,
		Status:    string(feecalc.StatusPending),
		CreatedBy: createdBy,
	}

	if err := s.feeRepo.Create(ctx, fee); err != nil {
		return nil, err
	}

	log.Printf("✅ Fee registered: member %d period %s (%s to %s)",
		fee.MemberID, fee.Period,
		fee.StartDate.Format("2006-01-02"), fee.EndDate.Format("2006-01-02"))

	return fee.ToResponse(), nil
}

// GetFeeByID gets a fee with its payment history
func (s *FeeService) GetFeeByID(ctx context.Context, id uint) (*models.MembershipFee, error) {
	fee, err := s.feeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeeNotFound
		}
		return nil, err
	}
	return fee, nil
}

// RecordPayment records a payment against a fee. AmountPaid only grows; the
// status is re-derived from the new total. Over-payment is tolerated, the
// remaining balance just clamps at zero.
func (s *FeeService) RecordPayment(ctx context.Context, feeID, recordedBy uint, input *RecordPaymentInput) (*models.MembershipFeeResponse, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidPayment
	}

	fee, err := s.GetFeeByID(ctx, feeID)
	if err != nil {
		return nil, err
	}

	if fee.RemainingBalance() <= 0 {
		return nil, ErrFeeAlreadySettled
	}

	payment := &models.FeePayment{
		FeeID:      fee.ID,
		Amount:     input.Amount,
		Method:     strings.TrimSpace(input.Method),
		Reference:  strings.TrimSpace(input.Reference),
		PaidAt:     time.Now(),
		RecordedBy: recordedBy,
	}

	if err := s.feeRepo.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	fee.AmountPaid += input.Amount
	fee.Status = string(feecalc.ClassifyStatus(fee.AmountPaid, fee.Amount))

	if err := s.feeRepo.Update(ctx, fee); err != nil {
		return nil, err
	}

	log.Printf("✅ Payment recorded: fee %d amount %.2f -> %s", fee.ID, input.Amount, fee.Status)
	return fee.ToResponse(), nil
}

// ListPayments lists the payment history of a fee
func (s *FeeService) ListPayments(ctx context.Context, feeID uint) ([]*models.FeePayment, error) {
	if _, err := s.GetFeeByID(ctx, feeID); err != nil {
		return nil, err
	}
	return s.feeRepo.ListPayments(ctx, feeID)
}

// DeleteFee removes a fee record and its payments
func (s *FeeService) DeleteFee(ctx context.Context, id uint) error {
	if _, err := s.GetFeeByID(ctx, id); err != nil {
		return err
	}
	return s.feeRepo.Delete(ctx, id)
}

// ListFees lists fees with pagination, optionally filtered by status
func (s *FeeService) ListFees(ctx context.Context, input *ListFeesInput) (*ListFeesOutput, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.Limit < 1 {
		input.Limit = 20
	}
	if input.Limit > 100 {
		input.Limit = 100
	}

	offset := (input.Page - 1) * input.Limit

	fees, total, err := s.feeRepo.List(ctx, offset, input.Limit, strings.TrimSpace(input.Status))
	if err != nil {
		return nil, err
	}

	responses := make([]*models.MembershipFeeResponse, len(fees))
	for i, fee := range fees {
		responses[i] = fee.ToResponse()
	}

	totalPages := int(total) / input.Limit
	if int(total)%input.Limit > 0 {
		totalPages++
	}

	return &ListFeesOutput{
		Fees:       responses,
		Total:      total,
		Page:       input.Page,
		Limit:      input.Limit,
		TotalPages: totalPages,
	}, nil
}

// GetMemberSummary derives one member's overall fee standing from their full
// fee history, relative to the given day.
func (s *FeeService) GetMemberSummary(ctx context.Context, memberID uint, today time.Time) (*MemberFeeSummary, error) {
	exists, err := s.memberRepo.Exists(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrMemberNotFound
	}

	fees, err := s.feeRepo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	records := make([]feecalc.Record, len(fees))
	for i, fee := range fees {
		records[i] = fee.ToRecord()
	}

	summary := feecalc.Summarize(records, today)

	out := &MemberFeeSummary{
		MemberID: memberID,
		State:    string(summary.State),
		History:  make([]*models.MembershipFeeResponse, len(fees)),
	}
	for i, fee := range fees {
		out.History[i] = fee.ToResponse()
	}

	if summary.Current != nil {
		expiry := summary.ExpiryDate
		out.ExpiryDate = &expiry
		for _, fee := range fees {
			if fee.StartDate.Equal(summary.Current.StartDate) && fee.EndDate.Equal(summary.Current.EndDate) {
				out.Current = fee.ToResponse()
				break
			}
		}
	}

	return out, nil
}

// ListOverdueFees lists fees that are past due but still inside their
// coverage window, as of the given day.
func (s *FeeService) ListOverdueFees(ctx context.Context, asOf time.Time) ([]*models.MembershipFee, error) {
	return s.feeRepo.ListOverdue(ctx, asOf)
}

package repositories

import (
	"context"
	"time"

	"teamhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// feeRepository implements FeeRepository interface
type feeRepository struct {
	db *gorm.DB
}

// NewFeeRepository creates a new fee repository
func NewFeeRepository(db *gorm.DB) FeeRepository {
	return &feeRepository{db: db}
}

// Create creates a new membership fee
func (r *feeRepository) Create(ctx context.Context, fee *models.MembershipFee) error {
	return r.db.WithContext(ctx).Create(fee).Error
}

// GetByID gets a fee by ID, preloading the member and payment history
func (r *feeRepository) GetByID(ctx context.Context, id uint) (*models.MembershipFee, error) {
	var fee models.MembershipFee
	err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Payments").
		Where("id = ?", id).
		First(&fee).Error
	if err != nil {
		return nil, err
	}
	return &fee, nil
}

// Update updates a fee
func (r *feeRepository) Update(ctx context.Context, fee *models.MembershipFee) error {
	return r.db.WithContext(ctx).Save(fee).Error
}

// Delete soft deletes a fee
func (r *feeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.MembershipFee{}, id).Error
}

// List lists fees with pagination, optionally filtered by status
func (r *feeRepository) List(ctx context.Context, offset, limit int, status string) ([]*models.MembershipFee, int64, error) {
	var fees []*models.MembershipFee
	var total int64

	query := r.db.WithContext(ctx).Model(&models.MembershipFee{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Member").
		Order("start_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&fees).Error
	if err != nil {
		return nil, 0, err
	}

	return fees, total, nil
}

// ListByMember lists all fees for one member, newest coverage first
func (r *feeRepository) ListByMember(ctx context.Context, memberID uint) ([]*models.MembershipFee, error) {
	var fees []*models.MembershipFee
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("start_date DESC").
		Find(&fees).Error
	if err != nil {
		return nil, err
	}
	return fees, nil
}

// ListOverlapping lists fees for a member whose coverage window intersects
// [start, end] (both inclusive)
func (r *feeRepository) ListOverlapping(ctx context.Context, memberID uint, start, end time.Time) ([]*models.MembershipFee, error) {
	var fees []*models.MembershipFee
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Find(&fees).Error
	if err != nil {
		return nil, err
	}
	return fees, nil
}

// ListOverdue lists unpaid fees whose due date has passed as of the given day
func (r *feeRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]*models.MembershipFee, error) {
	var fees []*models.MembershipFee
	err := r.db.WithContext(ctx).
		Preload("Member").
		Where("status <> ?", "paid").
		Where("due_date < ?", asOf).
		Where("end_date >= ?", asOf).
		Order("due_date ASC").
		Find(&fees).Error
	if err != nil {
		return nil, err
	}
	return fees, nil
}

// CreatePayment appends a payment row
func (r *feeRepository) CreatePayment(ctx context.Context, payment *models.FeePayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// ListPayments lists payments recorded against a fee
func (r *feeRepository) ListPayments(ctx context.Context, feeID uint) ([]*models.FeePayment, error) {
	var payments []*models.FeePayment
	err := r.db.WithContext(ctx).
		Where("fee_id = ?", feeID).
		Order("paid_at ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// SumByStatus returns the collected and outstanding totals across the ledger
func (r *feeRepository) SumByStatus(ctx context.Context) (float64, float64, error) {
	var collected, billed float64

	err := r.db.WithContext(ctx).
		Model(&models.MembershipFee{}).
		Select("COALESCE(SUM(amount_paid), 0)").
		Scan(&collected).Error
	if err != nil {
		return 0, 0, err
	}

	err = r.db.WithContext(ctx).
		Model(&models.MembershipFee{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&billed).Error
	if err != nil {
		return 0, 0, err
	}

	outstanding := billed - collected
	if outstanding < 0 {
		outstanding = 0
	}
	return collected, outstanding, nil
}

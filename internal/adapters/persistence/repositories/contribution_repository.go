package repositories

import (
	"context"

	"teamhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// ContributionRepository handles contribution persistence
type ContributionRepository struct {
	db *gorm.DB
}

// NewContributionRepository creates a new contribution repository
func NewContributionRepository(db *gorm.DB) *ContributionRepository {
	return &ContributionRepository{db: db}
}

// Create creates a new contribution
func (r *ContributionRepository) Create(ctx context.Context, contribution *models.Contribution) error {
	return r.db.WithContext(ctx).Create(contribution).Error
}

// GetByID gets a contribution by ID
func (r *ContributionRepository) GetByID(ctx context.Context, id uint) (*models.Contribution, error) {
	var contribution models.Contribution
	err := r.db.WithContext(ctx).Preload("Member").Where("id = ?", id).First(&contribution).Error
	if err != nil {
		return nil, err
	}
	return &contribution, nil
}

// Update updates a contribution
func (r *ContributionRepository) Update(ctx context.Context, contribution *models.Contribution) error {
	return r.db.WithContext(ctx).Save(contribution).Error
}

// Delete soft deletes a contribution
func (r *ContributionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Contribution{}, id).Error
}

// List lists contributions with pagination
func (r *ContributionRepository) List(ctx context.Context, offset, limit int) ([]*models.Contribution, int64, error) {
	var contributions []*models.Contribution
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Contribution{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Member").
		Order("contributed_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&contributions).Error
	if err != nil {
		return nil, 0, err
	}

	return contributions, total, nil
}

// SumTotal returns the sum of all contributions
func (r *ContributionRepository) SumTotal(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.Contribution{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

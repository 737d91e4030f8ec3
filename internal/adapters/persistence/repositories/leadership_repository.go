package repositories

import (
	"context"

	"teamhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// LeadershipRepository handles leadership assignment persistence
type LeadershipRepository struct {
	db *gorm.DB
}

// NewLeadershipRepository creates a new leadership repository
func NewLeadershipRepository(db *gorm.DB) *LeadershipRepository {
	return &LeadershipRepository{db: db}
}

// Create creates a new leadership assignment
func (r *LeadershipRepository) Create(ctx context.Context, role *models.LeadershipRole) error {
	return r.db.WithContext(ctx).Create(role).Error
}

// GetByID gets an assignment by ID
func (r *LeadershipRepository) GetByID(ctx context.Context, id uint) (*models.LeadershipRole, error) {
	var role models.LeadershipRole
	err := r.db.WithContext(ctx).Preload("Member").Where("id = ?", id).First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// Update updates an assignment
func (r *LeadershipRepository) Update(ctx context.Context, role *models.LeadershipRole) error {
	return r.db.WithContext(ctx).Save(role).Error
}

// Delete soft deletes an assignment
func (r *LeadershipRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.LeadershipRole{}, id).Error
}

// List lists assignments, optionally only active ones
func (r *LeadershipRepository) List(ctx context.Context, activeOnly bool) ([]*models.LeadershipRole, error) {
	var roles []*models.LeadershipRole

	query := r.db.WithContext(ctx).Preload("Member")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	err := query.Order("since DESC").Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

// GetActiveByMemberAndTitle finds the live assignment of a title to a member
func (r *LeadershipRepository) GetActiveByMemberAndTitle(ctx context.Context, memberID uint, title string) (*models.LeadershipRole, error) {
	var role models.LeadershipRole
	err := r.db.WithContext(ctx).
		Where("member_id = ? AND title = ? AND is_active = ?", memberID, title, true).
		First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

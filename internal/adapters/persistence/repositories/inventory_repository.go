package repositories

import (
	"context"

	"teamhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// InventoryRepository handles inventory persistence
type InventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// Create creates a new inventory item
func (r *InventoryRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// GetByID gets an item by ID
func (r *InventoryRepository) GetByID(ctx context.Context, id uint) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update updates an item
func (r *InventoryRepository) Update(ctx context.Context, item *models.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete soft deletes an item
func (r *InventoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.InventoryItem{}, id).Error
}

// List lists items, optionally filtered by category
func (r *InventoryRepository) List(ctx context.Context, category string) ([]*models.InventoryItem, error) {
	var items []*models.InventoryItem

	query := r.db.WithContext(ctx)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	err := query.Order("name ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

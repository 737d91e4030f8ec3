package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"teamhub/internal/adapters/persistence/models"
	"teamhub/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Inventory service errors
var (
	ErrItemNotFound     = errors.New("inventory item not found")
	ErrItemNameRequired = errors.New("item name is required")
	ErrInvalidCondition = errors.New("condition must be GOOD, WORN or DAMAGED")
	ErrInvalidQuantity  = errors.New("quantity cannot be negative")
)

// InventoryService handles team equipment tracking
type InventoryService struct {
	inventoryRepo *repositories.InventoryRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(inventoryRepo *repositories.InventoryRepository) *InventoryService {
	return &InventoryService{inventoryRepo: inventoryRepo}
}

// CreateItemInput represents create item input
type CreateItemInput struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	Category  string `json:"category"`
	Quantity  int    `json:"quantity"`
	Condition string `json:"condition"`
	Notes     string `json:"notes"`
}

// UpdateItemInput represents update item input
type UpdateItemInput struct {
	Name      *string `json:"name"`
	Category  *string `json:"category"`
	Quantity  *int    `json:"quantity"`
	Condition *string `json:"condition"`
	Notes     *string `json:"notes"`
}

func normalizeCondition(condition string) (string, error) {
	condition = strings.ToUpper(strings.TrimSpace(condition))
	switch condition {
	case "":
		return models.ConditionGood, nil
	case models.ConditionGood, models.ConditionWorn, models.ConditionDamaged:
		return condition, nil
	default:
		return "", ErrInvalidCondition
	}
}

// CreateItem creates a new inventory item
func (s *InventoryService) CreateItem(ctx context.Context, input *CreateItemInput) (*models.InventoryItem, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrItemNameRequired
	}
	if input.Quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	condition, err := normalizeCondition(input.Condition)
	if err != nil {
		return nil, err
	}

	item := &models.InventoryItem{
		Name:      name,
		Category:  strings.TrimSpace(input.Category),
		Quantity:  input.Quantity,
		Condition: condition,
		Notes:     input.Notes,
	}

	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	log.Printf("✅ Inventory item created: %s x%d (ID: %d)", item.Name, item.Quantity, item.ID)
	return item, nil
}

// GetItemByID gets an item by ID
func (s *InventoryService) GetItemByID(ctx context.Context, id uint) (*models.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// UpdateItem updates an inventory item
func (s *InventoryService) UpdateItem(ctx context.Context, id uint, input *UpdateItemInput) (*models.InventoryItem, error) {
	item, err := s.GetItemByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrItemNameRequired
		}
		item.Name = name
	}
	if input.Category != nil {
		item.Category = strings.TrimSpace(*input.Category)
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, ErrInvalidQuantity
		}
		item.Quantity = *input.Quantity
	}
	if input.Condition != nil {
		condition, err := normalizeCondition(*input.Condition)
		if err != nil {
			return nil, err
		}
		item.Condition = condition
	}
	if input.Notes != nil {
		item.Notes = *input.Notes
	}

	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteItem removes an inventory item
func (s *InventoryService) DeleteItem(ctx context.Context, id uint) error {
	if _, err := s.GetItemByID(ctx, id); err != nil {
		return err
	}
	return s.inventoryRepo.Delete(ctx, id)
}

// ListItems lists inventory items, optionally filtered by category
func (s *InventoryService) ListItems(ctx context.Context, category string) ([]*models.InventoryItem, error) {
	return s.inventoryRepo.List(ctx, strings.TrimSpace(category))
}

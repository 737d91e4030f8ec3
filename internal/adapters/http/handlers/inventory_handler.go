package handlers

import (
	"errors"
	"strconv"

	"teamhub/internal/core/services"
	"teamhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// InventoryHandler handles equipment inventory endpoints
type InventoryHandler struct {
	inventoryService *services.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// ListItems lists inventory items
// @Summary List inventory
// @Description List equipment items, optionally filtered by category
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category filter"
// @Success 200 {object} response.Response
// @Router /inventory [get]
func (h *InventoryHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.inventoryService.ListItems(c.Context(), c.Query("category"))
	if err != nil {
		return response.InternalServerError(c, "Failed to list inventory")
	}

	return response.Success(c, "Inventory retrieved successfully", items)
}

// GetItem gets one item
// @Summary Get inventory item
// @Description Get one equipment item by ID
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /inventory/{id} [get]
func (h *InventoryHandler) GetItem(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid item ID")
	}

	item, err := h.inventoryService.GetItemByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			return response.NotFound(c, "Inventory item not found")
		}
		return response.InternalServerError(c, "Failed to get item")
	}

	return response.Success(c, "Item retrieved successfully", item)
}

// CreateItem creates an item (admin only)
// @Summary Create inventory item
// @Description Add an equipment item to the inventory
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateItemInput true "Item data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /inventory [post]
func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	var input services.CreateItemInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	item, err := h.inventoryService.CreateItem(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrItemNameRequired):
			return response.BadRequest(c, "Item name is required")
		case errors.Is(err, services.ErrInvalidCondition):
			return response.BadRequest(c, "Condition must be GOOD, WORN or DAMAGED")
		case errors.Is(err, services.ErrInvalidQuantity):
			return response.BadRequest(c, "Quantity cannot be negative")
		default:
			return response.InternalServerError(c, "Failed to create item")
		}
	}

	return response.Created(c, "Item created successfully", item)
}

// UpdateItem updates an item (admin only)
// @Summary Update inventory item
// @Description Update an equipment item
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Param body body services.UpdateItemInput true "Update data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /inventory/{id} [put]
func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid item ID")
	}

	var input services.UpdateItemInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	item, err := h.inventoryService.UpdateItem(c.Context(), uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			return response.NotFound(c, "Inventory item not found")
		case errors.Is(err, services.ErrItemNameRequired):
			return response.BadRequest(c, "Item name is required")
		case errors.Is(err, services.ErrInvalidCondition):
			return response.BadRequest(c, "Condition must be GOOD, WORN or DAMAGED")
		case errors.Is(err, services.ErrInvalidQuantity):
			return response.BadRequest(c, "Quantity cannot be negative")
		default:
			return response.InternalServerError(c, "Failed to update item")
		}
	}

	return response.Success(c, "Item updated successfully", item)
}

// DeleteItem deletes an item (admin only)
// @Summary Delete inventory item
// @Description Delete an equipment item
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /inventory/{id} [delete]
func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid item ID")
	}

	if err := h.inventoryService.DeleteItem(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			return response.NotFound(c, "Inventory item not found")
		}
		return response.InternalServerError(c, "Failed to delete item")
	}

	return response.Success(c, "Item deleted successfully", nil)
}

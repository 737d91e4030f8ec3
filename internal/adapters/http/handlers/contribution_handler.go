package handlers

import (
	"errors"
	"strconv"

	"teamhub/internal/core/services"
	"teamhub/internal/pkg/pagination"
	"teamhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ContributionHandler handles contribution endpoints
type ContributionHandler struct {
	contributionService *services.ContributionService
}

// NewContributionHandler creates a new contribution handler
func NewContributionHandler(contributionService *services.ContributionService) *ContributionHandler {
	return &ContributionHandler{contributionService: contributionService}
}

// ListContributions lists contributions
// @Summary List contributions
// @Description List contributions with pagination and the running total
// @Tags Contributions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /contributions [get]
func (h *ContributionHandler) ListContributions(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	result, err := h.contributionService.ListContributions(c.Context(), params.Page, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list contributions")
	}

	return response.Success(c, "Contributions retrieved successfully", result)
}

// GetContribution gets one contribution
// @Summary Get contribution
// @Description Get one contribution by ID
// @Tags Contributions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contribution ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /contributions/{id} [get]
func (h *ContributionHandler) GetContribution(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid contribution ID")
	}

	contribution, err := h.contributionService.GetContributionByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrContributionNotFound) {
			return response.NotFound(c, "Contribution not found")
		}
		return response.InternalServerError(c, "Failed to get contribution")
	}

	return response.Success(c, "Contribution retrieved successfully", contribution)
}

// RecordContribution records a contribution (admin only)
// @Summary Record contribution
// @Description Record a contribution from a member or external supporter
// @Tags Contributions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.RecordContributionInput true "Contribution data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /contributions [post]
func (h *ContributionHandler) RecordContribution(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.RecordContributionInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	contribution, err := h.contributionService.RecordContribution(c.Context(), userID, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidContributionAmt):
			return response.BadRequest(c, "Contribution amount must be greater than zero")
		case errors.Is(err, services.ErrContributorRequired):
			return response.BadRequest(c, "Contribution needs a member or a contributor name")
		case errors.Is(err, services.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		case errors.Is(err, services.ErrInvalidContributionDate):
			return response.BadRequest(c, "contributed_at must be YYYY-MM-DD")
		default:
			return response.InternalServerError(c, "Failed to record contribution")
		}
	}

	return response.Created(c, "Contribution recorded successfully", contribution)
}

// UpdateContribution corrects a contribution (admin only)
// @Summary Update contribution
// @Description Correct the amount, purpose or date of a contribution
// @Tags Contributions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contribution ID"
// @Param body body services.UpdateContributionInput true "Update data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /contributions/{id} [put]
func (h *ContributionHandler) UpdateContribution(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid contribution ID")
	}

	var input services.UpdateContributionInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	contribution, err := h.contributionService.UpdateContribution(c.Context(), uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrContributionNotFound):
			return response.NotFound(c, "Contribution not found")
		case errors.Is(err, services.ErrInvalidContributionAmt):
			return response.BadRequest(c, "Contribution amount must be greater than zero")
		case errors.Is(err, services.ErrInvalidContributionDate):
			return response.BadRequest(c, "contributed_at must be YYYY-MM-DD")
		default:
			return response.InternalServerError(c, "Failed to update contribution")
		}
	}

	return response.Success(c, "Contribution updated successfully", contribution)
}

// DeleteContribution deletes a contribution (admin only)
// @Summary Delete contribution
// @Description Delete a contribution record
// @Tags Contributions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contribution ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /contributions/{id} [delete]
func (h *ContributionHandler) DeleteContribution(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid contribution ID")
	}

	if err := h.contributionService.DeleteContribution(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrContributionNotFound) {
			return response.NotFound(c, "Contribution not found")
		}
		return response.InternalServerError(c, "Failed to delete contribution")
	}

	return response.Success(c, "Contribution deleted successfully", nil)
}

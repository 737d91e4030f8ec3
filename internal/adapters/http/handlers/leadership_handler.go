package handlers

import (
	"errors"
	"strconv"

	"teamhub/internal/core/services"
	"teamhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LeadershipHandler handles leadership assignment endpoints
type LeadershipHandler struct {
	leadershipService *services.LeadershipService
}

// NewLeadershipHandler creates a new leadership handler
func NewLeadershipHandler(leadershipService *services.LeadershipService) *LeadershipHandler {
	return &LeadershipHandler{leadershipService: leadershipService}
}

// ListLeadership lists leadership assignments
// @Summary List leadership
// @Description List leadership assignments, optionally only active ones
// @Tags Leadership
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Active assignments only"
// @Success 200 {object} response.Response
// @Router /leadership [get]
func (h *LeadershipHandler) ListLeadership(c *fiber.Ctx) error {
	roles, err := h.leadershipService.ListLeadership(c.Context(), c.QueryBool("active", false))
	if err != nil {
		return response.InternalServerError(c, "Failed to list leadership")
	}

	return response.Success(c, "Leadership retrieved successfully", roles)
}

// AssignLeadership assigns a leadership title (admin only)
// @Summary Assign leadership
// @Description Assign a leadership title to a member
// @Tags Leadership
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.AssignLeadershipInput true "Assignment data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /leadership [post]
func (h *LeadershipHandler) AssignLeadership(c *fiber.Ctx) error {
	var input services.AssignLeadershipInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	role, err := h.leadershipService.AssignLeadership(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLeadershipTitleRequired):
			return response.BadRequest(c, "Leadership title is required")
		case errors.Is(err, services.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		case errors.Is(err, services.ErrLeadershipDuplicate):
			return response.Conflict(c, "Member already holds this title")
		default:
			return response.BadRequest(c, err.Error())
		}
	}

	return response.Created(c, "Leadership assigned successfully", role)
}

// EndLeadership ends an active assignment (admin only)
// @Summary End leadership
// @Description End an active leadership assignment
// @Tags Leadership
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /leadership/{id}/end [put]
func (h *LeadershipHandler) EndLeadership(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid assignment ID")
	}

	role, err := h.leadershipService.EndLeadership(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrLeadershipNotFound) {
			return response.NotFound(c, "Leadership assignment not found")
		}
		return response.InternalServerError(c, "Failed to end leadership")
	}

	return response.Success(c, "Leadership ended successfully", role)
}

// DeleteLeadership deletes an assignment (admin only)
// @Summary Delete leadership
// @Description Delete a leadership assignment
// @Tags Leadership
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /leadership/{id} [delete]
func (h *LeadershipHandler) DeleteLeadership(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid assignment ID")
	}

	if err := h.leadershipService.DeleteLeadership(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrLeadershipNotFound) {
			return response.NotFound(c, "Leadership assignment not found")
		}
		return response.InternalServerError(c, "Failed to delete leadership")
	}

	return response.Success(c, "Leadership deleted successfully", nil)
}

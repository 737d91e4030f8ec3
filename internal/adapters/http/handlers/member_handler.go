package handlers

import (
	"errors"
	"strconv"

	"teamhub/internal/core/services"
	"teamhub/internal/pkg/pagination"
	"teamhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MemberHandler handles team member registry endpoints
type MemberHandler struct {
	memberService *services.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService *services.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// ListMembers lists team members
// @Summary List members
// @Description List team members with pagination
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param active query bool false "Active members only"
// @Success 200 {object} response.Response
// @Router /members [get]
func (h *MemberHandler) ListMembers(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	input := &services.ListMembersInput{
		Page:       params.Page,
		Limit:      params.Limit,
		ActiveOnly: c.QueryBool("active", false),
	}

	result, err := h.memberService.ListMembers(c.Context(), input)
	if err != nil {
		return response.InternalServerError(c, "Failed to list members")
	}

	return response.Success(c, "Members retrieved successfully", result)
}

// SearchMembers searches members by name
// @Summary Search members
// @Description Search team members by name
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search query"
// @Param limit query int false "Max results"
// @Success 200 {object} response.Response
// @Router /members/search [get]
func (h *MemberHandler) SearchMembers(c *fiber.Ctx) error {
	members, err := h.memberService.SearchMembers(c.Context(), c.Query("q"), c.QueryInt("limit", 20))
	if err != nil {
		return response.InternalServerError(c, "Failed to search members")
	}

	return response.Success(c, "Members retrieved successfully", members)
}

// GetMember gets one member
// @Summary Get member
// @Description Get one team member by ID
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{id} [get]
func (h *MemberHandler) GetMember(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	member, err := h.memberService.GetMemberByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to get member")
	}

	return response.Success(c, "Member retrieved successfully", member)
}

// CreateMember creates a member (admin only)
// @Summary Create member
// @Description Add a member to the team registry
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateMemberInput true "Member data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /members [post]
func (h *MemberHandler) CreateMember(c *fiber.Ctx) error {
	var input services.CreateMemberInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	member, err := h.memberService.CreateMember(c.Context(), &input)
	if err != nil {
		if errors.Is(err, services.ErrMemberNameRequired) {
			return response.BadRequest(c, "Member full name is required")
		}
		return response.BadRequest(c, err.Error())
	}

	return response.Created(c, "Member created successfully", member)
}

// UpdateMember updates a member (admin only)
// @Summary Update member
// @Description Update a team registry entry
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Param body body services.UpdateMemberInput true "Update data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{id} [put]
func (h *MemberHandler) UpdateMember(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	var input services.UpdateMemberInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	member, err := h.memberService.UpdateMember(c.Context(), uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		case errors.Is(err, services.ErrMemberNameRequired):
			return response.BadRequest(c, "Member full name is required")
		default:
			return response.InternalServerError(c, "Failed to update member")
		}
	}

	return response.Success(c, "Member updated successfully", member)
}

// DeleteMember deletes a member (admin only)
// @Summary Delete member
// @Description Soft delete a team registry entry
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{id} [delete]
func (h *MemberHandler) DeleteMember(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	if err := h.memberService.DeleteMember(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to delete member")
	}

	return response.Success(c, "Member deleted successfully", nil)
}

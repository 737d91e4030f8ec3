package handlers

import (
	"errors"
	"strconv"
	"time"

	"teamhub/internal/core/feecalc"
	"teamhub/internal/core/services"
	"teamhub/internal/pkg/pagination"
	"teamhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// FeeHandler handles membership fee endpoints
type FeeHandler struct {
	feeService          *services.FeeService
	notificationService *services.NotificationService
}

// NewFeeHandler creates a new fee handler
func NewFeeHandler(
	feeService *services.FeeService,
	notificationService *services.NotificationService,
) *FeeHandler {
	return &FeeHandler{
		feeService:          feeService,
		notificationService: notificationService,
	}
}

// GetPeriodCatalog returns the billing catalog
// @Summary Get fee periods
// @Description Get the fixed billing period catalog with prices and savings
// @Tags Fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /fees/periods [get]
func (h *FeeHandler) GetPeriodCatalog(c *fiber.Ctx) error {
	return response.Success(c, "Fee periods retrieved successfully", h.feeService.GetPeriodCatalog())
}

// ListFees lists fees
// @Summary List fees
// @Description List membership fees with pagination, optionally filtered by status
// @Tags Fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Status filter (pending, partial, paid)"
// @Success 200 {object} response.Response
// @Router /fees [get]
func (h *FeeHandler) ListFees(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	input := &services.ListFeesInput{
		Page:   params.Page,
		Limit:  params.Limit,
		Status: c.Query("status"),
	}

	result, err := h.feeService.ListFees(c.Context(), input)
	if err != nil {
		return response.InternalServerError(c, "Failed to list fees")
	}

	return response.Success(c, "Fees retrieved successfully", result)
}

// GetFee gets one fee with its payments
// @Summary Get fee
// @Description Get one membership fee with its payment history
// @Tags Fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fee ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /fees/{id} [get]
func (h *FeeHandler) GetFee(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid fee ID")
	}

	fee, err := h.feeService.GetFeeByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrFeeNotFound) {
			return response.NotFound(c, "Fee not found")
		}
		return response.InternalServerError(c, "Failed to get fee")
	}

	payments, err := h.feeService.ListPayments(c.Context(), fee.ID)
	if err != nil {
		return response.InternalServerError(c, "Failed to get fee payments")
	}

	return response.Success(c, "Fee retrieved successfully", fiber.Map{
		"fee":      fee.ToResponse(),
		"payments": payments,
	})
}

// RegisterFee registers a fee (admin only)
// @Summary Register fee
// @Description Register a membership fee for a member; amount and coverage dates come from the period catalog
// @Tags Fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.RegisterFeeInput true "Fee data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /fees [post]
func (h *FeeHandler) RegisterFee(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.RegisterFeeInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	fee, err := h.feeService.RegisterFee(c.Context(), userID, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		case errors.Is(err, feecalc.ErrUnknownPeriod):
			return response.UnprocessableEntity(c, "Unknown fee period")
		case errors.Is(err, feecalc.ErrInvalidDate):
			return response.UnprocessableEntity(c, "Start date must be YYYY-MM-DD")
		case errors.Is(err, services.ErrFeeOverlap):
			return response.Conflict(c, "Member already has a fee covering part of this period")
		default:
			return response.InternalServerError(c, "Failed to register fee")
		}
	}

	return response.Created(c, "Fee registered successfully", fee)
}

// RecordPayment records a payment against a fee (admin only)
// @Summary Record payment
// @Description Record a payment against a membership fee
// @Tags Fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fee ID"
// @Param body body services.RecordPaymentInput true "Payment data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /fees/{id}/payments [post]
func (h *FeeHandler) RecordPayment(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid fee ID")
	}

	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.RecordPaymentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	fee, err := h.feeService.RecordPayment(c.Context(), uint(id), userID, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPayment):
			return response.BadRequest(c, "Payment amount must be greater than zero")
		case errors.Is(err, services.ErrFeeNotFound):
			return response.NotFound(c, "Fee not found")
		case errors.Is(err, services.ErrFeeAlreadySettled):
			return response.Conflict(c, "Fee is already fully paid")
		default:
			return response.InternalServerError(c, "Failed to record payment")
		}
	}

	if fee.Status == string(feecalc.StatusPaid) {
		full, err := h.feeService.GetFeeByID(c.Context(), fee.ID)
		if err == nil && full.Member != nil {
			h.notificationService.NotifyFeePaid(full, full.Member.FullName)
		}
	}

	return response.Success(c, "Payment recorded successfully", fee)
}

// DeleteFee deletes a fee (admin only)
// @Summary Delete fee
// @Description Delete a membership fee and its payments
// @Tags Fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fee ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /fees/{id} [delete]
func (h *FeeHandler) DeleteFee(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid fee ID")
	}

	if err := h.feeService.DeleteFee(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrFeeNotFound) {
			return response.NotFound(c, "Fee not found")
		}
		return response.InternalServerError(c, "Failed to delete fee")
	}

	return response.Success(c, "Fee deleted successfully", nil)
}

// GetMemberFeeSummary returns one member's fee standing
// @Summary Get member fee summary
// @Description Get one member's overall fee standing and history
// @Tags Fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{id}/fees [get]
func (h *FeeHandler) GetMemberFeeSummary(c *fiber.Ctx) error {
	memberID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	summary, err := h.feeService.GetMemberSummary(c.Context(), uint(memberID), time.Now())
	if err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to get fee summary")
	}

	return response.Success(c, "Fee summary retrieved successfully", summary)
}

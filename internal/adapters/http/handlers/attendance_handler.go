package handlers

import (
	"errors"
	"strconv"

	"teamhub/internal/core/services"
	"teamhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AttendanceHandler handles attendance endpoints
type AttendanceHandler struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceService *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// MarkAttendance marks one member's attendance (admin only)
// @Summary Mark attendance
// @Description Mark or re-mark one member's attendance at an event
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param body body services.MarkAttendanceInput true "Attendance data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /events/{id}/attendance [post]
func (h *AttendanceHandler) MarkAttendance(c *fiber.Ctx) error {
	eventID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid event ID")
	}

	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.MarkAttendanceInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	record, err := h.attendanceService.MarkAttendance(c.Context(), uint(eventID), userID, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAttendanceStatus):
			return response.BadRequest(c, "Status must be PRESENT, ABSENT, LATE or EXCUSED")
		case errors.Is(err, services.ErrEventNotFound):
			return response.NotFound(c, "Event not found")
		case errors.Is(err, services.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		default:
			return response.InternalServerError(c, "Failed to mark attendance")
		}
	}

	return response.Success(c, "Attendance marked successfully", record)
}

// GetEventAttendance returns the attendance sheet for an event
// @Summary Get event attendance
// @Description Get the attendance sheet and per-status counts for an event
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /events/{id}/attendance [get]
func (h *AttendanceHandler) GetEventAttendance(c *fiber.Ctx) error {
	eventID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid event ID")
	}

	sheet, err := h.attendanceService.GetEventAttendance(c.Context(), uint(eventID))
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return response.NotFound(c, "Event not found")
		}
		return response.InternalServerError(c, "Failed to get attendance")
	}

	return response.Success(c, "Attendance retrieved successfully", sheet)
}

// GetMemberAttendance returns one member's attendance history
// @Summary Get member attendance
// @Description Get one member's attendance history across events
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{id}/attendance [get]
func (h *AttendanceHandler) GetMemberAttendance(c *fiber.Ctx) error {
	memberID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	records, err := h.attendanceService.GetMemberAttendance(c.Context(), uint(memberID))
	if err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to get attendance")
	}

	return response.Success(c, "Attendance retrieved successfully", records)
}

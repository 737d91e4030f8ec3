package handlers

import (
	"errors"
	"strconv"

	"teamhub/internal/core/services"
	"teamhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler handles CSV export endpoints
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func sendCSV(c *fiber.Ctx, filename string, data []byte) error {
	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// ExportMembers exports the member registry as CSV (admin only)
// @Summary Export members CSV
// @Description Download the member registry as a CSV file
// @Tags Reports
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV data"
// @Router /reports/members [get]
func (h *ReportHandler) ExportMembers(c *fiber.Ctx) error {
	data, err := h.reportService.ExportMembersCSV(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to export members")
	}

	return sendCSV(c, "members.csv", data)
}

// ExportFees exports the fee ledger as CSV (admin only)
// @Summary Export fees CSV
// @Description Download the fee ledger as a CSV file
// @Tags Reports
// @Produce text/csv
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Success 200 {string} string "CSV data"
// @Router /reports/fees [get]
func (h *ReportHandler) ExportFees(c *fiber.Ctx) error {
	data, err := h.reportService.ExportFeesCSV(c.Context(), c.Query("status"))
	if err != nil {
		return response.InternalServerError(c, "Failed to export fees")
	}

	return sendCSV(c, "fees.csv", data)
}

// ExportEventAttendance exports one event's attendance as CSV (admin only)
// @Summary Export attendance CSV
// @Description Download one event's attendance sheet as a CSV file
// @Tags Reports
// @Produce text/csv
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {string} string "CSV data"
// @Failure 404 {object} response.Response
// @Router /reports/events/{id}/attendance [get]
func (h *ReportHandler) ExportEventAttendance(c *fiber.Ctx) error {
	eventID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid event ID")
	}

	data, err := h.reportService.ExportEventAttendanceCSV(c.Context(), uint(eventID))
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return response.NotFound(c, "Event not found")
		}
		return response.InternalServerError(c, "Failed to export attendance")
	}

	return sendCSV(c, "attendance.csv", data)
}

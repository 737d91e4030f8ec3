package handlers

import (
	"errors"
	"strconv"

	"teamhub/internal/core/services"
	"teamhub/internal/pkg/pagination"
	"teamhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// EventHandler handles training and friendly match endpoints
type EventHandler struct {
	eventService        *services.EventService
	notificationService *services.NotificationService
}

// NewEventHandler creates a new event handler
func NewEventHandler(
	eventService *services.EventService,
	notificationService *services.NotificationService,
) *EventHandler {
	return &EventHandler{
		eventService:        eventService,
		notificationService: notificationService,
	}
}

// ListEvents lists events
// @Summary List events
// @Description List training sessions and friendly matches with pagination
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param type query string false "Event type (TRAINING or FRIENDLY)"
// @Success 200 {object} response.Response
// @Router /events [get]
func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	input := &services.ListEventsInput{
		Page:      params.Page,
		Limit:     params.Limit,
		EventType: c.Query("type"),
	}

	result, err := h.eventService.ListEvents(c.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidEventType) {
			return response.BadRequest(c, "Event type must be TRAINING or FRIENDLY")
		}
		return response.InternalServerError(c, "Failed to list events")
	}

	return response.Success(c, "Events retrieved successfully", result)
}

// ListUpcomingEvents lists upcoming events
// @Summary List upcoming events
// @Description List events from today onward
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max results"
// @Success 200 {object} response.Response
// @Router /events/upcoming [get]
func (h *EventHandler) ListUpcomingEvents(c *fiber.Ctx) error {
	events, err := h.eventService.ListUpcomingEvents(c.Context(), c.QueryInt("limit", 10))
	if err != nil {
		return response.InternalServerError(c, "Failed to list upcoming events")
	}

	return response.Success(c, "Upcoming events retrieved successfully", events)
}

// GetEvent gets one event
// @Summary Get event
// @Description Get one event by ID
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid event ID")
	}

	event, err := h.eventService.GetEventByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return response.NotFound(c, "Event not found")
		}
		return response.InternalServerError(c, "Failed to get event")
	}

	return response.Success(c, "Event retrieved successfully", event)
}

// CreateEvent creates an event (admin only)
// @Summary Create event
// @Description Schedule a training session or friendly match
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateEventInput true "Event data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.CreateEventInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	event, err := h.eventService.CreateEvent(c.Context(), userID, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidEventType):
			return response.BadRequest(c, "Event type must be TRAINING or FRIENDLY")
		case errors.Is(err, services.ErrOpponentRequired):
			return response.BadRequest(c, "Opponent is required for friendly matches")
		case errors.Is(err, services.ErrInvalidEventDate):
			return response.BadRequest(c, "Event date must be YYYY-MM-DD")
		case errors.Is(err, services.ErrEventTitleRequired):
			return response.BadRequest(c, "Event title is required")
		default:
			return response.InternalServerError(c, "Failed to create event")
		}
	}

	h.notificationService.NotifyNewEvent(event)

	return response.Created(c, "Event created successfully", event)
}

// UpdateEvent updates an event (admin only)
// @Summary Update event
// @Description Update a scheduled event
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param body body services.UpdateEventInput true "Update data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /events/{id} [put]
func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid event ID")
	}

	var input services.UpdateEventInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	event, err := h.eventService.UpdateEvent(c.Context(), uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEventNotFound):
			return response.NotFound(c, "Event not found")
		case errors.Is(err, services.ErrInvalidEventDate):
			return response.BadRequest(c, "Event date must be YYYY-MM-DD")
		case errors.Is(err, services.ErrOpponentRequired):
			return response.BadRequest(c, "Opponent is required for friendly matches")
		case errors.Is(err, services.ErrEventTitleRequired):
			return response.BadRequest(c, "Event title is required")
		default:
			return response.InternalServerError(c, "Failed to update event")
		}
	}

	return response.Success(c, "Event updated successfully", event)
}

// DeleteEvent deletes an event (admin only)
// @Summary Delete event
// @Description Soft delete a scheduled event
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /events/{id} [delete]
func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid event ID")
	}

	if err := h.eventService.DeleteEvent(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return response.NotFound(c, "Event not found")
		}
		return response.InternalServerError(c, "Failed to delete event")
	}

	return response.Success(c, "Event deleted successfully", nil)
}

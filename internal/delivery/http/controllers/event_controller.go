package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"eventpulse/internal/delivery/http/helpers"
	"eventpulse/internal/delivery/http/middleware"
	"eventpulse/internal/domain"
)

// eventDateLayout is the wire format for event dates.
const eventDateLayout = "2006-01-02"

func parseEventDate(s string) (time.Time, error) {
	if t, err := time.Parse(eventDateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// CreateEventRequest is the request body for POST /api/events.
type CreateEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"`
	Location    string `json:"location"`
}

// Validate implements Validator.
func (req CreateEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, "title is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		errs = append(errs, "description is required")
	}
	if strings.TrimSpace(req.Date) == "" {
		errs = append(errs, "date is required")
	} else if _, err := parseEventDate(req.Date); err != nil {
		errs = append(errs, "date must be YYYY-MM-DD")
	}
	if strings.TrimSpace(req.Time) == "" {
		errs = append(errs, "time is required")
	}
	if strings.TrimSpace(req.Location) == "" {
		errs = append(errs, "location is required")
	}
	return errs
}

// UpdateEventRequest is the request body for PUT /api/events/{id}.
// All fields are optional; omitted fields are unchanged.
type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Location    *string `json:"location"`
	Status      *string `json:"status"`
}

// Validate implements Validator.
func (req UpdateEventRequest) Validate() []string {
	var errs []string
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		errs = append(errs, "title cannot be empty")
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) == "" {
		errs = append(errs, "description cannot be empty")
	}
	if req.Date != nil {
		if _, err := parseEventDate(*req.Date); err != nil {
			errs = append(errs, "date must be YYYY-MM-DD")
		}
	}
	if req.Time != nil && strings.TrimSpace(*req.Time) == "" {
		errs = append(errs, "time cannot be empty")
	}
	if req.Location != nil && strings.TrimSpace(*req.Location) == "" {
		errs = append(errs, "location cannot be empty")
	}
	return errs
}

// DeleteEventResponse is the response body for DELETE /api/events/{id}.
type DeleteEventResponse struct {
	Message string `json:"message"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Create an event with title, description, date, time, and location. The authenticated admin becomes the organizer; status starts as "upcoming". Admin only.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateEventRequest true "Event data"
// @Success 201 {object} domain.Event
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 403 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	date, _ := parseEventDate(req.Date)
	now := time.Now()
	event := domain.NewEvent(
		strings.TrimSpace(req.Title),
		strings.TrimSpace(req.Description),
		date,
		strings.TrimSpace(req.Time),
		strings.TrimSpace(req.Location),
		userID,
		now, now,
	)
	created, err := c.Service.CreateEvent(r.Context(), userID, event)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Server error")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, created)
}

// ListEvents godoc
// @Summary List all events
// @Description Returns all events with the organizer resolved to a display name, ordered by date ascending.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.EventWithOrganizer
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Server error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// ListUpcoming godoc
// @Summary List upcoming events
// @Description Returns events dated today or later with status "upcoming", ordered by date ascending.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.EventWithOrganizer
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/upcoming [get]
func (c *EventController) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListUpcoming(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Server error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get an event by ID
// @Description Returns the event with organizer and attendees resolved to display names.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} domain.EventDetail
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{id} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "missing event id")
		return
	}
	detail, err := c.Service.GetEvent(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Server error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, detail)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Merges the supplied fields into the event. Omitted fields are unchanged. Admin only.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param body body UpdateEventRequest true "Fields to update (all optional)"
// @Success 200 {object} domain.Event
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 403 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{id} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "missing event id")
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	update := domain.EventUpdate{
		Title:       req.Title,
		Description: req.Description,
		Time:        req.Time,
		Location:    req.Location,
		Status:      req.Status,
	}
	if req.Date != nil {
		date, _ := parseEventDate(*req.Date)
		update.Date = &date
	}
	event, err := c.Service.UpdateEvent(r.Context(), id, update)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Server error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes the event and its attendee registrations. Admin only.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} DeleteEventResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 403 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{id} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "missing event id")
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Server error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, DeleteEventResponse{Message: "Event deleted"})
}

// RegisterForEvent godoc
// @Summary Register for an event
// @Description Adds the authenticated user to the event's attendees. Registering twice for the same event is rejected.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} domain.EventDetail
// @Failure 400 {object} helpers.ErrorResponse "already registered"
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{id}/register [post]
func (c *EventController) RegisterForEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "missing event id")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	detail, err := c.Service.RegisterForEvent(r.Context(), id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
			return
		}
		if errors.Is(err, domain.ErrAlreadyRegistered) {
			helpers.WriteJSONError(w, http.StatusBadRequest, "Already registered for this event")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Server error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, detail)
}

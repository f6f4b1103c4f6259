package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"eventpulse/internal/delivery/http/helpers"
	"eventpulse/internal/delivery/http/middleware"
	"eventpulse/internal/domain"
)

// SubmitFeedbackRequest is the request body for POST /api/feedback.
type SubmitFeedbackRequest struct {
	EventID string `json:"eventId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Mood    string `json:"mood"`
}

// Validate implements Validator.
func (req SubmitFeedbackRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(req.EventID) == "" {
		errs = append(errs, "eventId is required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		errs = append(errs, "rating must be between 1 and 5")
	}
	if strings.TrimSpace(req.Comment) == "" {
		errs = append(errs, "comment is required")
	}
	if !domain.ValidMood(strings.TrimSpace(strings.ToLower(req.Mood))) {
		errs = append(errs, "mood must be happy, neutral, or sad")
	}
	return errs
}

type FeedbackController struct {
	Logger  *slog.Logger
	Service domain.FeedbackService
}

func NewFeedbackController(logger *slog.Logger, svc domain.FeedbackService) *FeedbackController {
	return &FeedbackController{
		Logger:  logger,
		Service: svc,
	}
}

// SubmitFeedback godoc
// @Summary Submit feedback for an event
// @Description Stores a rating (1-5), comment, and mood (happy/neutral/sad) for an event, attributed to the authenticated user. The server assigns the timestamp and a sentiment label derived from the comment.
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SubmitFeedbackRequest true "Feedback data"
// @Success 201 {object} domain.Feedback
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/feedback [post]
func (c *FeedbackController) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req SubmitFeedbackRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	fb, err := c.Service.SubmitFeedback(r.Context(), userID, strings.TrimSpace(req.EventID), req.Rating, req.Comment, req.Mood)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Server error")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, fb)
}

// ListFeedbackForEvent godoc
// @Summary List feedback for an event
// @Description Returns feedback for the event with the submitter resolved to a display name, newest first.
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {array} domain.FeedbackWithUser
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/feedback/event/{eventID} [get]
func (c *FeedbackController) ListFeedbackForEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "missing event id")
		return
	}
	list, err := c.Service.ListFeedbackForEvent(r.Context(), eventID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Server error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, list)
}

// ListMyFeedback godoc
// @Summary List the authenticated user's feedback
// @Description Returns the caller's feedback with each event resolved to its title and date, newest first.
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.FeedbackWithEvent
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/feedback/my-feedback [get]
func (c *FeedbackController) ListMyFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	list, err := c.Service.ListMyFeedback(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Server error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, list)
}

// ListAllFeedback godoc
// @Summary List all feedback
// @Description Returns every feedback record with submitter and event resolved, newest first. Admin only.
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.FeedbackDetail
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 403 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/feedback/all [get]
func (c *FeedbackController) ListAllFeedback(w http.ResponseWriter, r *http.Request) {
	list, err := c.Service.ListAllFeedback(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Server error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, list)
}

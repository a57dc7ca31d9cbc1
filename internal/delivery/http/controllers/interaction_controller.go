package controllers

import (
	"log/slog"
	"net/http"

	h "eventscout/internal/delivery/http/helpers"
	"eventscout/internal/delivery/http/middleware"
	"eventscout/internal/domain"
)

// ToggleResponse reports the state of a toggle relation after the flip.
type ToggleResponse struct {
	Active bool `json:"active"`
}

type InteractionController struct {
	Logger  *slog.Logger
	Service domain.InteractionService
}

func NewInteractionController(logger *slog.Logger, svc domain.InteractionService) *InteractionController {
	return &InteractionController{
		Logger:  logger,
		Service: svc,
	}
}

// ToggleFavorite godoc
// @Summary Toggle the favorite relation for an event
// @Description Favorited events are unfavorited and vice versa. Returns the new state.
// @Tags interactions
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Catalog event ID"
// @Success 200 {object} helpers.APIResponse "data contains active"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/favorite [post]
func (c *InteractionController) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	favorited, err := c.Service.ToggleFavorite(r.Context(), userID, r.PathValue("eventID"))
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, ToggleResponse{Active: favorited})
}

// ToggleReminder godoc
// @Summary Toggle the reminder relation for an event
// @Description Sets or clears a reminder firing one day before the event date.
// @Tags interactions
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Catalog event ID"
// @Success 200 {object} helpers.APIResponse "data contains active"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/reminder [post]
func (c *InteractionController) ToggleReminder(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	set, err := c.Service.ToggleReminder(r.Context(), userID, r.PathValue("eventID"))
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, ToggleResponse{Active: set})
}

// RecordAttendance godoc
// @Summary Record a confirmed ticket purchase
// @Description Appends an attendance record and best-effort writes a purchase notification.
// @Tags interactions
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Catalog event ID"
// @Success 201 {object} helpers.APIResponse "data contains the attendance record"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/attendance [post]
func (c *InteractionController) RecordAttendance(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	rec, err := c.Service.RecordAttendance(r.Context(), userID, r.PathValue("eventID"))
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, rec)
}

// ListFavorites godoc
// @Summary List the caller's favorited events
// @Description Resolves stored favorites against the catalog, newest first. Events that no longer resolve are skipped.
// @Tags interactions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the event list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /me/favorites [get]
func (c *InteractionController) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	events, err := c.Service.ListFavoriteEvents(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, events)
}

// ListAttended godoc
// @Summary List the caller's attended events
// @Tags interactions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the event list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /me/attended [get]
func (c *InteractionController) ListAttended(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	events, err := c.Service.ListAttendedEvents(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, events)
}

// ListReminders godoc
// @Summary List the caller's reminders
// @Tags interactions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the reminder list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /me/reminders [get]
func (c *InteractionController) ListReminders(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	reminders, err := c.Service.ListReminders(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, reminders)
}

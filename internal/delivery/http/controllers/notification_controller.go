package controllers

import (
	"log/slog"
	"net/http"

	h "eventscout/internal/delivery/http/helpers"
	"eventscout/internal/delivery/http/middleware"
	"eventscout/internal/domain"
)

// NotificationListResponse is the paginated notification list.
type NotificationListResponse struct {
	Notifications []*domain.NotificationRecord `json:"notifications"`
	Pagination    h.PaginationMeta             `json:"pagination"`
}

// SettingsRequest is the request body for PUT /me/notifications/settings
type SettingsRequest struct {
	Enabled bool `json:"enabled"`
}

type NotificationController struct {
	Logger  *slog.Logger
	Service domain.NotificationService
}

func NewNotificationController(logger *slog.Logger, svc domain.NotificationService) *NotificationController {
	return &NotificationController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List the caller's notifications
// @Description Returns a page of notifications, newest first.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains notifications and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /me/notifications [get]
func (c *NotificationController) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	params := h.ParsePagination(r)
	recs, total, err := c.Service.List(r.Context(), userID, params)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, NotificationListResponse{
		Notifications: recs,
		Pagination:    h.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// Delete godoc
// @Summary Delete one of the caller's notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param notificationID path string true "Notification ID"
// @Success 200 {object} helpers.APIResponse "data contains deleted: true"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /me/notifications/{notificationID} [delete]
func (c *NotificationController) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	if err := c.Service.Delete(r.Context(), userID, r.PathValue("notificationID")); err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"deleted": true})
}

// MarkRead godoc
// @Summary Mark one of the caller's notifications as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param notificationID path string true "Notification ID"
// @Success 200 {object} helpers.APIResponse "data contains read: true"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /me/notifications/{notificationID}/read [post]
func (c *NotificationController) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	if err := c.Service.MarkRead(r.Context(), userID, r.PathValue("notificationID")); err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"read": true})
}

// GetSettings godoc
// @Summary Get the caller's notification settings
// @Description Users who never saved settings see the disabled default.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the settings"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /me/notifications/settings [get]
func (c *NotificationController) GetSettings(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	settings, err := c.Service.GetSettings(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, settings)
}

// UpdateSettings godoc
// @Summary Update the caller's notification settings
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SettingsRequest true "Settings"
// @Success 200 {object} helpers.APIResponse "data contains the saved settings"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /me/notifications/settings [put]
func (c *NotificationController) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	var req SettingsRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	settings, err := c.Service.UpdateSettings(r.Context(), userID, req.Enabled)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, settings)
}

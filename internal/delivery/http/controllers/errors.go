package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "eventscout/internal/delivery/http/helpers"
	"eventscout/internal/domain"
)

// writeDomainError maps service-layer errors onto the API error envelope.
// Unrecognized errors are logged and surface as 500.
func writeDomainError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid credentials")
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrDuplicateEmail):
		h.WriteJSONError(w, http.StatusConflict, h.ErrCodeConflict, "email already registered")
	case errors.Is(err, domain.ErrBadCatalogPayload):
		logger.ErrorContext(r.Context(), "catalog payload rejected", "path", r.URL.Path, "err", err)
		h.WriteJSONError(w, http.StatusBadGateway, h.ErrCodeInternalError, "catalog returned an unusable response")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
	}
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/isdelr/venture-manager-be/internal/auth"
	"github.com/isdelr/venture-manager-be/internal/services"
)

// WebhookHandler handles the outbound update push and the last-update query.
type WebhookHandler struct {
	service services.WebhookServiceProvider
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(service services.WebhookServiceProvider) *WebhookHandler {
	return &WebhookHandler{service: service}
}

// UpdateBase pushes the user's ventures to their configured webhook.
func (h *WebhookHandler) UpdateBase(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	if err := h.service.PushUpdate(r.Context(), userID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			writeError(w, http.StatusUnauthorized, "user not found")
			return
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to push webhook update")
		writeError(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	writeJSON(w, http.StatusOK, "base updated successfully")
}

// LastUpdate returns the timestamp of the last successful push, or null.
func (h *WebhookHandler) LastUpdate(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	ts, err := h.service.LastUpdate(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			writeError(w, http.StatusUnauthorized, "user not found")
			return
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to read last update")
		writeError(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	if ts == "" {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, ts)
}

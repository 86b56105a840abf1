package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/isdelr/venture-manager-be/internal/auth"
	"github.com/isdelr/venture-manager-be/internal/services"
	"github.com/isdelr/venture-manager-be/internal/ventures"
)

// VentureHandler handles HTTP requests for the venture list.
type VentureHandler struct {
	service services.VentureServiceProvider
}

// NewVentureHandler creates a new VentureHandler.
func NewVentureHandler(service services.VentureServiceProvider) *VentureHandler {
	return &VentureHandler{service: service}
}

// ManagePayload defines the structure for add/edit requests.
type ManagePayload struct {
	NewItem services.VentureInput `json:"newItem"`
	Images  []services.ImageLink  `json:"images"`
	Action  string                `json:"action"`
}

// Search returns the authenticated user's ventures, most recent first.
func (h *VentureHandler) Search(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	list, err := h.service.Search(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			writeError(w, http.StatusUnauthorized, "user not found")
			return
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to search ventures")
		writeError(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// Manage adds or edits one venture in the authenticated user's list.
func (h *VentureHandler) Manage(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var payload ManagePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.Manage(userID, payload.NewItem, payload.Images, payload.Action); err != nil {
		switch {
		case errors.Is(err, ventures.ErrDuplicateID):
			writeError(w, http.StatusBadRequest, "a venture with this id already exists")
		case errors.Is(err, ventures.ErrNotFound):
			writeError(w, http.StatusNotFound, "item not found for editing")
		case errors.Is(err, services.ErrUserNotFound):
			writeError(w, http.StatusUnauthorized, "user not found")
		default:
			log.Error().Err(err).Str("user_id", userID).Msg("Failed to manage venture")
			writeError(w, http.StatusInternalServerError, internalErrorMessage)
		}
		return
	}

	msg := "venture added successfully"
	if payload.Action == services.ActionEdit {
		msg = "venture edited successfully"
	}
	writeMessage(w, http.StatusOK, msg)
}

// Delete removes a venture and cascades to its stored images.
func (h *VentureHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	idSpace := r.URL.Query().Get("idSpace")

	if err := h.service.Delete(r.Context(), userID, idSpace); err != nil {
		switch {
		case errors.Is(err, ventures.ErrNotFound):
			writeError(w, http.StatusNotFound, "venture not found")
		case errors.Is(err, services.ErrUserNotFound):
			writeError(w, http.StatusUnauthorized, "user not found")
		default:
			log.Error().Err(err).Str("user_id", userID).Str("id_space", idSpace).Msg("Failed to delete venture")
			writeError(w, http.StatusInternalServerError, internalErrorMessage)
		}
		return
	}

	writeMessage(w, http.StatusOK, "files and records deleted successfully")
}

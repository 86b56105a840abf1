package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/isdelr/venture-manager-be/internal/models"
	"github.com/isdelr/venture-manager-be/internal/services"
)

// ImageHandler handles HTTP requests for venture images.
type ImageHandler struct {
	service services.ImageServiceProvider
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(service services.ImageServiceProvider) *ImageHandler {
	return &ImageHandler{service: service}
}

// UploadPayload defines the structure for image upload requests.
type UploadPayload struct {
	Images  []services.ImageUpload `json:"images"`
	IDSpace string                 `json:"idSpace"`
}

// Upload stores a batch of images for one venture.
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var payload UploadPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.Upload(r.Context(), payload.IDSpace, payload.Images); err != nil {
		log.Error().Err(err).Str("id_space", payload.IDSpace).Msg("Failed to upload images")
		writeError(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	writeMessage(w, http.StatusOK, "images saved successfully")
}

// Update overwrites the description of one stored image.
func (h *ImageHandler) Update(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	idSpace := q.Get("idSpace")
	imageID := q.Get("imageId")
	description := q.Get("description")

	if err := h.service.UpdateDescription(idSpace, imageID, description); err != nil {
		if errors.Is(err, services.ErrImageNotFound) {
			writeError(w, http.StatusNotFound, "image not found")
			return
		}
		log.Error().Err(err).Str("id_space", idSpace).Str("image_id", imageID).Msg("Failed to update image")
		writeError(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	writeMessage(w, http.StatusOK, "image updated successfully")
}

// List returns all stored images for one venture. No auth: image URLs are
// public anyway.
func (h *ImageHandler) List(w http.ResponseWriter, r *http.Request) {
	idSpace := chi.URLParam(r, "idSpace")

	files, err := h.service.List(idSpace)
	if err != nil {
		log.Error().Err(err).Str("id_space", idSpace).Msg("Failed to list images")
		writeError(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}
	if files == nil {
		files = []models.FileRecord{}
	}

	writeJSON(w, http.StatusOK, files)
}

// Delete removes one stored image: blob first, then the metadata row.
func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	idSpace := q.Get("idSpace")
	imageID := q.Get("imageId")

	if err := h.service.Delete(r.Context(), idSpace, imageID); err != nil {
		if errors.Is(err, services.ErrImageNotFound) {
			writeError(w, http.StatusNotFound, "image not found")
			return
		}
		log.Error().Err(err).Str("id_space", idSpace).Str("image_id", imageID).Msg("Failed to delete image")
		writeError(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	writeMessage(w, http.StatusOK, "image deleted successfully")
}

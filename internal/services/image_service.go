package services

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/isdelr/venture-manager-be/internal/models"
	"github.com/isdelr/venture-manager-be/internal/storage"
)

// ErrImageNotFound is returned when no file record matches the given idSpace
// and filename.
var ErrImageNotFound = errors.New("image not found")

const defaultContentType = "image/jpeg"

// ImageUpload is one image submitted for upload: the pixel data as a base64
// payload (optionally a full data URI) plus its declared content type.
type ImageUpload struct {
	Data string    `json:"data"`
	Meta ImageMeta `json:"meta"`
}

// ImageMeta carries the declared content type of an uploaded image.
type ImageMeta struct {
	Type string `json:"type"`
}

// ImageServiceProvider defines the interface for image management.
type ImageServiceProvider interface {
	Upload(ctx context.Context, idSpace string, images []ImageUpload) error
	List(idSpace string) ([]models.FileRecord, error)
	UpdateDescription(idSpace, filename, description string) error
	Delete(ctx context.Context, idSpace, filename string) error
}

// ImageService stores image blobs and their metadata rows.
type ImageService struct {
	db    *sql.DB
	blobs storage.BlobStore
}

// NewImageService creates a new ImageService.
func NewImageService(db *sql.DB, blobs storage.BlobStore) *ImageService {
	return &ImageService{db: db, blobs: blobs}
}

// Upload decodes and stores each image in turn: a fresh UUID filename, the
// blob under images/<idSpace>/, then the metadata row with the derived public
// URL. Images are processed strictly sequentially; a failure mid-list leaves
// the previous images committed.
func (s *ImageService) Upload(ctx context.Context, idSpace string, images []ImageUpload) error {
	for _, img := range images {
		data, err := decodeImageData(img.Data)
		if err != nil {
			return fmt.Errorf("failed to decode image payload: %w", err)
		}

		contentType := img.Meta.Type
		if contentType == "" {
			contentType = defaultContentType
		}

		filename := uuid.New().String()
		key := storage.ImageKey(idSpace, filename)

		if err := s.blobs.Upload(ctx, key, data, contentType); err != nil {
			log.Error().Err(err).Str("id_space", idSpace).Msg("Failed to store image blob")
			return fmt.Errorf("failed to store image: %w", err)
		}

		_, err = s.db.Exec("INSERT INTO venture_files(filename, url, id_space) VALUES(?, ?, ?)",
			filename, s.blobs.PublicURL(key), idSpace)
		if err != nil {
			log.Error().Err(err).Str("id_space", idSpace).Str("filename", filename).Msg("Failed to record image metadata")
			return fmt.Errorf("failed to record image metadata: %w", err)
		}
	}
	return nil
}

// List returns all file records for the given idSpace in storage order.
func (s *ImageService) List(idSpace string) ([]models.FileRecord, error) {
	rows, err := s.db.Query("SELECT filename, url, id_space, description FROM venture_files WHERE id_space = ?", idSpace)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []models.FileRecord
	for rows.Next() {
		var f models.FileRecord
		if err := rows.Scan(&f.Filename, &f.URL, &f.IDSpace, &f.Description); err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

// UpdateDescription overwrites the description of the matching file record.
func (s *ImageService) UpdateDescription(idSpace, filename, description string) error {
	res, err := s.db.Exec("UPDATE venture_files SET description = ? WHERE id_space = ? AND filename = ?",
		description, idSpace, filename)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrImageNotFound
	}
	return nil
}

// Delete removes the blob first, then the metadata row. If the blob removal
// fails the row is kept so the record still points somewhere inspectable.
func (s *ImageService) Delete(ctx context.Context, idSpace, filename string) error {
	if err := s.blobs.Remove(ctx, storage.ImageKey(idSpace, filename)); err != nil {
		log.Error().Err(err).Str("id_space", idSpace).Str("filename", filename).Msg("Failed to remove image blob")
		return fmt.Errorf("failed to remove image: %w", err)
	}

	res, err := s.db.Exec("DELETE FROM venture_files WHERE id_space = ? AND filename = ?", idSpace, filename)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrImageNotFound
	}
	return nil
}

// decodeImageData decodes a base64 payload, tolerating a data URI prefix
// ("data:image/png;base64,....").
func decodeImageData(payload string) ([]byte, error) {
	if i := strings.IndexByte(payload, ','); i != -1 {
		payload = payload[i+1:]
	}
	return base64.StdEncoding.DecodeString(payload)
}

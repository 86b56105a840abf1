package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/isdelr/venture-manager-be/internal/models"
	"github.com/isdelr/venture-manager-be/internal/storage"
	"github.com/isdelr/venture-manager-be/internal/ventures"
)

// Venture mutation actions. Anything other than ActionEdit adds.
const (
	ActionAdd  = "add"
	ActionEdit = "edit"
)

// VentureInput is the wire shape of a venture submitted by the client.
type VentureInput struct {
	IDSpace      string `json:"idSpace"`
	Name         string `json:"name"`
	Price        string `json:"price"`
	Description  string `json:"description"`
	Localization string `json:"localization"`
}

// ImageLink is one image reference submitted alongside a venture edit.
type ImageLink struct {
	URL         string `json:"url"`
	Description string `json:"description"`
}

// VentureServiceProvider defines the interface for venture list management.
type VentureServiceProvider interface {
	Search(userID string) ([]models.Venture, error)
	Manage(userID string, input VentureInput, images []ImageLink, action string) error
	Delete(ctx context.Context, userID, idSpace string) error
}

// VentureService applies venture list mutations over the user's ventures
// document. Every mutation is a read-modify-write of the whole document;
// userLocks serializes those cycles per user so concurrent edits cannot lose
// updates.
type VentureService struct {
	db    *sql.DB
	blobs storage.BlobStore
	locks userLocks
}

// NewVentureService creates a new VentureService.
func NewVentureService(db *sql.DB, blobs storage.BlobStore) *VentureService {
	return &VentureService{db: db, blobs: blobs}
}

// Search returns the user's ventures, most-recently-added first.
func (s *VentureService) Search(userID string) ([]models.Venture, error) {
	list, err := s.loadVentures(userID)
	if err != nil {
		return nil, err
	}
	return ventures.Reversed(list), nil
}

// Manage adds or edits one venture in the user's list. Add fails with
// ventures.ErrDuplicateID when the idSpace is taken; edit fails with
// ventures.ErrNotFound when it is absent.
func (s *VentureService) Manage(userID string, input VentureInput, images []ImageLink, action string) error {
	defer s.locks.lock(userID)()

	list, err := s.loadVentures(userID)
	if err != nil {
		return err
	}

	item := buildVenture(input, images)

	var next []models.Venture
	if action == ActionEdit {
		next, err = ventures.Edit(list, item)
	} else {
		next, err = ventures.Add(list, item)
	}
	if err != nil {
		return err
	}

	return s.storeVentures(userID, next)
}

// Delete removes one venture and cascades to its stored images: the file
// metadata rows are deleted first, then the blobs. The phases are not
// transactional; a failure partway is logged and surfaced but already
// completed phases are not rolled back.
func (s *VentureService) Delete(ctx context.Context, userID, idSpace string) error {
	defer s.locks.lock(userID)()

	list, err := s.loadVentures(userID)
	if err != nil {
		return err
	}

	next, err := ventures.Remove(list, idSpace)
	if err != nil {
		return err
	}
	if err := s.storeVentures(userID, next); err != nil {
		return err
	}

	rows, err := s.db.Query("SELECT filename FROM venture_files WHERE id_space = ?", idSpace)
	if err != nil {
		return fmt.Errorf("failed to list files for venture %s: %w", idSpace, err)
	}
	defer rows.Close()

	var filenames []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		filenames = append(filenames, name)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, name := range filenames {
		if _, err := s.db.Exec("DELETE FROM venture_files WHERE filename = ?", name); err != nil {
			return fmt.Errorf("failed to delete file record %s: %w", name, err)
		}
	}

	for _, name := range filenames {
		if err := s.blobs.Remove(ctx, storage.ImageKey(idSpace, name)); err != nil {
			log.Error().Err(err).Str("id_space", idSpace).Str("filename", name).Msg("Failed to remove blob during venture delete")
			return fmt.Errorf("failed to remove blob %s: %w", name, err)
		}
	}

	return nil
}

// buildVenture shapes the wire payload into the stored document form: the
// price is currency-formatted and the image list becomes snapshot copies,
// discarding whatever the previous document held.
func buildVenture(input VentureInput, images []ImageLink) models.Venture {
	refs := make([]models.ImageRef, 0, len(images))
	for _, img := range images {
		refs = append(refs, models.ImageRef{Link: img.URL, Description: img.Description})
	}
	return models.Venture{
		IDSpace:     input.IDSpace,
		Name:        input.Name,
		Price:       fmt.Sprintf("R$ %s", input.Price),
		Images:      refs,
		Description: input.Description,
		Location:    input.Localization,
	}
}

func (s *VentureService) loadVentures(userID string) ([]models.Venture, error) {
	var doc string
	err := s.db.QueryRow("SELECT ventures_json FROM users WHERE id = ?", userID).Scan(&doc)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var list []models.Venture
	if err := json.Unmarshal([]byte(doc), &list); err != nil {
		return nil, fmt.Errorf("corrupt ventures document for user %s: %w", userID, err)
	}
	return list, nil
}

func (s *VentureService) storeVentures(userID string, list []models.Venture) error {
	doc, err := json.Marshal(list)
	if err != nil {
		return err
	}
	_, err = s.db.Exec("UPDATE users SET ventures_json = ? WHERE id = ?", string(doc), userID)
	return err
}

// userLocks hands out one mutex per user id. The zero value is ready to use.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (l *userLocks) lock(userID string) (unlock func()) {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*sync.Mutex)
	}
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

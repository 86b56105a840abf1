package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/isdelr/venture-manager-be/internal/models"
)

// ErrWebhookNotConfigured is returned when the user has no webhook URL set.
var ErrWebhookNotConfigured = errors.New("no webhook configured for user")

// WebhookServiceProvider defines the interface for the outbound webhook relay.
type WebhookServiceProvider interface {
	PushUpdate(ctx context.Context, userID string) error
	LastUpdate(userID string) (string, error)
}

// WebhookService forwards a user's ventures document to their configured
// automation endpoint. One attempt per call, no retry; on success the user
// row is stamped with the push time.
type WebhookService struct {
	db     *sql.DB
	users  UserServiceProvider
	client *http.Client
}

// NewWebhookService creates a new WebhookService.
func NewWebhookService(db *sql.DB, users UserServiceProvider) *WebhookService {
	return &WebhookService{db: db, users: users, client: &http.Client{}}
}

// PushUpdate sends the user's full ventures array to <webhookURL>/webhook/update-base,
// authenticated via the x-api-key header, and stamps last_update on success.
func (s *WebhookService) PushUpdate(ctx context.Context, userID string) error {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return err
	}
	if user.WebhookURL == "" {
		return ErrWebhookNotConfigured
	}

	payload, err := json.Marshal(struct {
		Data []models.Venture `json:"data"`
	}{Data: user.Ventures})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		user.WebhookURL+"/webhook/update-base", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", user.WebhookAPIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Webhook call failed")
		return fmt.Errorf("webhook call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	_, err = s.db.Exec("UPDATE users SET last_update = ? WHERE id = ?",
		time.Now().UTC().Format(time.RFC3339), userID)
	return err
}

// LastUpdate returns the timestamp of the last successful push, or the empty
// string if no push ever succeeded.
func (s *WebhookService) LastUpdate(userID string) (string, error) {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return "", err
	}
	return user.LastUpdate, nil
}

package services

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/isdelr/venture-manager-be/internal/models"
)

var (
	// ErrEmailTaken is returned on registration when the email is already in use.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound is returned when no user matches the given email or id.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidPassword is returned when the password hash comparison fails.
	ErrInvalidPassword = errors.New("invalid password")
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	Register(email, password string) error
	Authenticate(email, password string) (models.User, error)
	GetUserByID(id string) (models.User, error)
}

// UserService provides business logic for account management.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// Register creates a new user, hashing their password. No credential is
// returned; the caller must log in separately.
func (s *UserService) Register(email, password string) error {
	var existing string
	err := s.db.QueryRow("SELECT id FROM users WHERE email = ?", email).Scan(&existing)
	if err == nil {
		return ErrEmailTaken
	}
	if err != sql.ErrNoRows {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = s.db.Exec("INSERT INTO users(id, email, password_hash) VALUES(?, ?, ?)",
		uuid.New().String(), email, string(hashedPassword))
	return err
}

// Authenticate verifies a user's credentials and returns the matching user.
func (s *UserService) Authenticate(email, password string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, email, password_hash FROM users WHERE email = ?", email)
	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash); err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidPassword
	}

	// Don't hand the password hash back to callers
	user.PasswordHash = ""
	return user, nil
}

// GetUserByID retrieves a single user by their ID, including the ventures
// document and webhook configuration.
func (s *UserService) GetUserByID(id string) (models.User, error) {
	var (
		user         models.User
		venturesJSON string
		lastUpdate   sql.NullString
		webhookURL   sql.NullString
		webhookKey   sql.NullString
	)
	row := s.db.QueryRow(
		"SELECT id, email, ventures_json, last_update, webhook_url, webhook_api_key FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Email, &venturesJSON, &lastUpdate, &webhookURL, &webhookKey)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}

	if err := json.Unmarshal([]byte(venturesJSON), &user.Ventures); err != nil {
		return models.User{}, fmt.Errorf("corrupt ventures document for user %s: %w", id, err)
	}
	user.LastUpdate = lastUpdate.String
	user.WebhookURL = webhookURL.String
	user.WebhookAPIKey = webhookKey.String
	return user, nil
}

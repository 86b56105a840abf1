package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature, malformed
// token or expired validity window.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims defines the JWT claims structure.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

type contextKey string

const userIDKey = contextKey("userID")

// Manager issues and verifies the signed tokens that bind a user id. The
// secret and validity window are injected at construction so handlers and
// tests never reach for ambient state.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a token manager signing with secret and issuing tokens
// valid for ttl.
func NewManager(secret []byte, ttl time.Duration) *Manager {
	return &Manager{secret: secret, ttl: ttl}
}

// GenerateToken creates a new signed token for the given user id.
func (m *Manager) GenerateToken(userID string) (string, error) {
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// VerifyToken parses and validates a token string and returns the bound user
// id.
func (m *Manager) VerifyToken(tokenStr string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}

// UserID returns the authenticated user id stored by the middleware.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// Middleware protects routes whose token travels in the request body as the
// "jwt" field. The body is buffered and restored so the next handler can
// decode its own payload; verification failure rejects the request before any
// data access.
func (m *Manager) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				unauthorized(w, "missing auth token")
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			var payload struct {
				JWT string `json:"jwt"`
			}
			if err := json.Unmarshal(body, &payload); err != nil || payload.JWT == "" {
				unauthorized(w, "missing auth token")
				return
			}

			userID, err := m.VerifyToken(payload.JWT)
			if err != nil {
				unauthorized(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

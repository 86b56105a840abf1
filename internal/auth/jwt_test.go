package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	t.Parallel()

	m := NewManager([]byte("super-secret"), time.Hour)

	tok, err := m.GenerateToken("user-123")
	require.NoError(t, err)

	userID, err := m.VerifyToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestVerifyToken_Expired(t *testing.T) {
	t.Parallel()

	m := NewManager([]byte("secret"), -1*time.Second)

	tok, err := m.GenerateToken("u1")
	require.NoError(t, err)

	_, err = m.VerifyToken(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewManager([]byte("right-secret"), time.Hour).GenerateToken("u2")
	require.NoError(t, err)

	_, err = NewManager([]byte("wrong-secret"), time.Hour).VerifyToken(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMiddleware_TokenInBody(t *testing.T) {
	t.Parallel()

	m := NewManager([]byte("secret"), time.Hour)
	tok, err := m.GenerateToken("user-42")
	require.NoError(t, err)

	var gotUserID, gotBody string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserID(r.Context())
		require.True(t, ok)
		gotUserID = id

		// the body must be readable again after the middleware
		var payload struct {
			JWT   string `json:"jwt"`
			Extra string `json:"extra"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		gotBody = payload.Extra
	})

	body, _ := json.Marshal(map[string]string{"jwt": tok, "extra": "payload"})
	req := httptest.NewRequest(http.MethodPost, "/search-ventures", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	m.Middleware()(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-42", gotUserID)
	assert.Equal(t, "payload", gotBody)
}

func TestMiddleware_RejectsBadTokens(t *testing.T) {
	t.Parallel()

	m := NewManager([]byte("secret"), time.Hour)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a valid token")
	})

	tests := []struct {
		name string
		body string
	}{
		{"missing token", `{}`},
		{"not json", `not-json`},
		{"garbage token", `{"jwt": "not.a.token"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/search-ventures", bytes.NewReader([]byte(tt.body)))
			rec := httptest.NewRecorder()

			m.Middleware()(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}

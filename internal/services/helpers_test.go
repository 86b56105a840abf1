package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/isdelr/venture-manager-be/internal/database"
)

// setupDB opens a fresh in-memory database with the schema applied.
func setupDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.New(":memory:")
	require.NoError(t, err)
	// one connection so every query sees the same in-memory database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// registerUser creates an account and returns its id.
func registerUser(t *testing.T, db *sql.DB, email string) string {
	t.Helper()

	users := NewUserService(db)
	require.NoError(t, users.Register(email, "password"))

	user, err := users.Authenticate(email, "password")
	require.NoError(t, err)
	return user.ID
}

// fakeBlobStore records uploads and removals in memory. failUploadAfter > 0
// makes every upload past that count fail; failRemove makes removals fail.
type fakeBlobStore struct {
	mu              sync.Mutex
	objects         map[string]string // key -> content type
	removed         []string
	uploads         int
	failRemove      bool
	failUploadAfter int
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: make(map[string]string)}
}

func (f *fakeBlobStore) Upload(_ context.Context, key string, _ []byte, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads++
	if f.failUploadAfter > 0 && f.uploads > f.failUploadAfter {
		return fmt.Errorf("blob store unavailable")
	}
	f.objects[key] = contentType
	return nil
}

func (f *fakeBlobStore) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failRemove {
		return fmt.Errorf("blob store unavailable")
	}
	delete(f.objects, key)
	f.removed = append(f.removed, key)
	return nil
}

func (f *fakeBlobStore) PublicURL(key string) string {
	return "http://blobs.local/venture-manager-files/" + key
}

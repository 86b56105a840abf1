package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_RegisterAndAuthenticate(t *testing.T) {
	db := setupDB(t)
	users := NewUserService(db)

	require.NoError(t, users.Register("a@x.com", "p1"))

	user, err := users.Authenticate("a@x.com", "p1")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Empty(t, user.PasswordHash, "hash must not leave the service")
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	db := setupDB(t)
	users := NewUserService(db)

	require.NoError(t, users.Register("a@x.com", "p1"))
	err := users.Register("a@x.com", "p2")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserService_AuthenticateFailures(t *testing.T) {
	db := setupDB(t)
	users := NewUserService(db)
	require.NoError(t, users.Register("a@x.com", "p1"))

	_, err := users.Authenticate("nobody@x.com", "p1")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = users.Authenticate("a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestUserService_GetUserByID(t *testing.T) {
	db := setupDB(t)
	users := NewUserService(db)
	id := registerUser(t, db, "a@x.com")

	user, err := users.GetUserByID(id)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Empty(t, user.Ventures)

	_, err = users.GetUserByID("missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

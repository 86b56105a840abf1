package ventures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isdelr/venture-manager-be/internal/models"
)

func venture(idSpace, name string) models.Venture {
	return models.Venture{IDSpace: idSpace, Name: name, Price: "R$ 100"}
}

func TestAdd_KeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	list, err := Add(nil, venture("s1", "first"))
	require.NoError(t, err)

	list, err = Add(list, venture("s2", "second"))
	require.NoError(t, err)

	require.Len(t, list, 2)
	assert.Equal(t, "s1", list[0].IDSpace)
	assert.Equal(t, "s2", list[1].IDSpace)
}

func TestAdd_DuplicateIDSpace(t *testing.T) {
	t.Parallel()

	list, err := Add(nil, venture("s1", "first"))
	require.NoError(t, err)

	_, err = Add(list, venture("s1", "other"))
	assert.ErrorIs(t, err, ErrDuplicateID)

	// original list untouched
	require.Len(t, list, 1)
	assert.Equal(t, "first", list[0].Name)
}

func TestEdit_ReplacesInPlace(t *testing.T) {
	t.Parallel()

	list := []models.Venture{
		venture("s1", "first"),
		venture("s2", "second"),
		venture("s3", "third"),
	}

	edited := models.Venture{
		IDSpace:  "s2",
		Name:     "renamed",
		Price:    "R$ 999",
		Location: "elsewhere",
		Images:   []models.ImageRef{{Link: "http://img/new", Description: "new"}},
	}
	next, err := Edit(list, edited)
	require.NoError(t, err)

	require.Len(t, next, 3)
	assert.Equal(t, "s1", next[0].IDSpace)
	assert.Equal(t, edited, next[1], "edit must fully overwrite the element at the same position")
	assert.Equal(t, "s3", next[2].IDSpace)

	// input slice not mutated
	assert.Equal(t, "second", list[1].Name)
}

func TestEdit_NotFound(t *testing.T) {
	t.Parallel()

	list := []models.Venture{venture("s1", "first")}
	_, err := Edit(list, venture("missing", "x"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemove_PreservesRelativeOrder(t *testing.T) {
	t.Parallel()

	list := []models.Venture{
		venture("s1", "first"),
		venture("s2", "second"),
		venture("s3", "third"),
	}

	next, err := Remove(list, "s2")
	require.NoError(t, err)

	require.Len(t, next, 2)
	assert.Equal(t, "s1", next[0].IDSpace)
	assert.Equal(t, "s3", next[1].IDSpace)
	require.Len(t, list, 3)
}

func TestRemove_NotFound(t *testing.T) {
	t.Parallel()

	_, err := Remove([]models.Venture{venture("s1", "first")}, "s2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReversed(t *testing.T) {
	t.Parallel()

	list := []models.Venture{
		venture("s1", "first"),
		venture("s2", "second"),
		venture("s3", "third"),
	}

	rev := Reversed(list)

	require.Len(t, rev, 3)
	assert.Equal(t, "s3", rev[0].IDSpace)
	assert.Equal(t, "s2", rev[1].IDSpace)
	assert.Equal(t, "s1", rev[2].IDSpace)

	// source order untouched
	assert.Equal(t, "s1", list[0].IDSpace)
}

func TestReversed_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Reversed(nil))
}

// Package ventures implements the mutation rules for a user's venture list.
// All functions are pure: they never modify the input slice and return a new
// one, so a failed mutation leaves the caller's copy untouched.
package ventures

import (
	"errors"

	"github.com/isdelr/venture-manager-be/internal/models"
)

var (
	// ErrDuplicateID is returned when adding a venture whose idSpace is
	// already taken within the same list.
	ErrDuplicateID = errors.New("a venture with this idSpace already exists")
	// ErrNotFound is returned when editing or removing an idSpace that is
	// not present in the list.
	ErrNotFound = errors.New("venture not found")
)

func indexOf(list []models.Venture, idSpace string) int {
	for i, v := range list {
		if v.IDSpace == idSpace {
			return i
		}
	}
	return -1
}

// Add appends v to the end of the list. It fails with ErrDuplicateID if any
// existing venture carries the same idSpace; insertion order is preserved.
func Add(list []models.Venture, v models.Venture) ([]models.Venture, error) {
	if indexOf(list, v.IDSpace) != -1 {
		return nil, ErrDuplicateID
	}
	next := make([]models.Venture, 0, len(list)+1)
	next = append(next, list...)
	next = append(next, v)
	return next, nil
}

// Edit replaces the venture matching v.IDSpace in place, keeping its position.
// All fields are overwritten with the supplied values; there is no partial
// merge. The input idSpace is the match key, so an edit can never move an item
// under a different idSpace.
func Edit(list []models.Venture, v models.Venture) ([]models.Venture, error) {
	i := indexOf(list, v.IDSpace)
	if i == -1 {
		return nil, ErrNotFound
	}
	next := make([]models.Venture, len(list))
	copy(next, list)
	next[i] = v
	return next, nil
}

// Remove deletes the venture matching idSpace, leaving the relative order of
// the remaining items unchanged.
func Remove(list []models.Venture, idSpace string) ([]models.Venture, error) {
	i := indexOf(list, idSpace)
	if i == -1 {
		return nil, ErrNotFound
	}
	next := make([]models.Venture, 0, len(list)-1)
	next = append(next, list[:i]...)
	next = append(next, list[i+1:]...)
	return next, nil
}

// Reversed returns the list most-recently-added first. This is a presentation
// transform only; the stored document keeps insertion order.
func Reversed(list []models.Venture) []models.Venture {
	next := make([]models.Venture, len(list))
	for i, v := range list {
		next[len(list)-1-i] = v
	}
	return next
}

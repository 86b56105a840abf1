package storage

import (
	"context"
	"fmt"
)

// BlobStore is the object storage holding raw image bytes. Services depend on
// this interface so tests can substitute a fake.
type BlobStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	Remove(ctx context.Context, key string) error
	PublicURL(key string) string
}

// ImageKey builds the storage key for one image, namespaced by the owning
// venture's idSpace.
func ImageKey(idSpace, filename string) string {
	return fmt.Sprintf("images/%s/%s", idSpace, filename)
}

package storage

import (
	"context"
	"io"
)

// Storage abstracts saving and deleting image blobs. The local filesystem
// implementation below can be swapped for a hosted image CDN (Cloudinary,
// S3, R2) without touching the services that use it.
type Storage interface {
	// Save stores the blob under key and returns its public URL.
	// key is a unique path within the store, e.g. "portfolio/<uuid>.jpg".
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete removes the blob stored under key. Deleting a missing key is
	// not an error.
	Delete(ctx context.Context, key string) error
}

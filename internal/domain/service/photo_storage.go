package service

import (
	"context"
	"io"
)

// PhotoStorage defines the interface for persisting photo binaries.
// This abstracts the underlying bucket (local disk, GCS, S3) from the use cases.
type PhotoStorage interface {
	// Save writes the photo content under the given key and returns the stored path.
	Save(ctx context.Context, key string, contentType string, r io.Reader) (string, error)

	// Delete removes the photo stored under the given key.
	Delete(ctx context.Context, key string) error
}

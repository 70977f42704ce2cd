// Package storage provides blob-backed persistence for profile photo binaries.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"rencontre/config"
	"rencontre/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Register bucket drivers for local development and GCS.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

// blobPhotoStorage implements PhotoStorage on top of a gocloud.dev bucket.
type blobPhotoStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// StorageParams holds dependencies for PhotoStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobPhotoStorage opens the configured bucket and returns a PhotoStorage.
func NewBlobPhotoStorage(params StorageParams) (service.PhotoStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Blob photo storage initialized",
		slog.String("bucket_url", cfg.BucketURL),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	return &blobPhotoStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Save writes the photo content under the given key and returns the stored path.
func (s *blobPhotoStorage) Save(ctx context.Context, key string, contentType string, r io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "open writer for %s", key)
	}

	if _, err := io.Copy(w, r); err != nil {
		w.Close()

		return "", errors.Wrapf(err, "write %s", key)
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "close writer for %s", key)
	}

	if s.publicBaseURL == "" {
		return key, nil
	}

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes the photo stored under the given key.
// A missing object is not treated as an error so retries stay idempotent.
func (s *blobPhotoStorage) Delete(ctx context.Context, key string) error {
	key = strings.TrimPrefix(strings.TrimPrefix(key, s.publicBaseURL), "/")

	if err := s.bucket.Delete(ctx, key); err != nil {
		if exists, existsErr := s.bucket.Exists(ctx, key); existsErr == nil && !exists {
			return nil
		}

		return errors.Wrapf(err, "delete %s", key)
	}

	return nil
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewBlobPhotoStorage),
)

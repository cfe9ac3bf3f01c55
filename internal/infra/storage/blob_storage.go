// Package storage implements the file-storage domain service on top of a
// gocloud.dev blob bucket. The default bucket URL points at the local
// filesystem (file://); swapping to a cloud bucket is a config change.
package storage

import (
	"context"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // registers the file:// bucket scheme
	_ "gocloud.dev/blob/memblob"  // registers the mem:// scheme, used in tests

	"bazaar/config"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
)

type blobStorage struct {
	bucket *blob.Bucket
}

// NewBlobStorage opens the configured bucket and returns it as a
// service.FileStorage. The bucket is closed through the returned closer
// when the application shuts down.
func NewBlobStorage(ctx context.Context, cfg *config.Config) (service.FileStorage, func() error, error) {
	if cfg.Storage.BucketURL == "" {
		return nil, nil, errors.New("storage bucket URL must be provided")
	}

	bucket, err := blob.OpenBucket(ctx, cfg.Storage.BucketURL)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open storage bucket")
	}

	return &blobStorage{bucket: bucket}, bucket.Close, nil
}

func (s *blobStorage) Store(ctx context.Context, key string, data []byte, contentType string) error {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return errors.Wrapf(err, "store blob %q", key)
	}

	return nil
}

func (s *blobStorage) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "load blob %q", key)
	}

	return data, nil
}

func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrapf(err, "delete blob %q", key)
	}

	return nil
}

package service

import "context"

// FileStorage defines the interface for storing product image bytes. The
// database keeps only filenames; the bytes live behind this interface.
type FileStorage interface {
	// Store writes the bytes under the given key, overwriting any previous
	// content.
	Store(ctx context.Context, key string, data []byte, contentType string) error

	// Load reads the bytes stored under the key.
	Load(ctx context.Context, key string) ([]byte, error)

	// Delete removes the stored bytes. Deleting a missing key is an error.
	Delete(ctx context.Context, key string) error
}

package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaar/config"
)

func testStorage(t *testing.T) *blobStorage {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.BucketURL = "mem://"

	store, closeBucket, err := NewBlobStorage(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeBucket() })

	return store.(*blobStorage)
}

func TestBlobStorage_RequiresBucketURL(t *testing.T) {
	_, _, err := NewBlobStorage(context.Background(), &config.Config{})
	assert.Error(t, err)
}

func TestBlobStorage_RoundTrip(t *testing.T) {
	store := testStorage(t)
	ctx := context.Background()

	payload := []byte{0x89, 0x50, 0x4e, 0x47}
	require.NoError(t, store.Store(ctx, "products/p1/a.png", payload, "image/png"))

	got, err := store.Load(ctx, "products/p1/a.png")
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	require.NoError(t, store.Delete(ctx, "products/p1/a.png"))

	_, err = store.Load(ctx, "products/p1/a.png")
	assert.Error(t, err)
}

func TestBlobStorage_DeleteMissingKeyFails(t *testing.T) {
	store := testStorage(t)

	err := store.Delete(context.Background(), "missing.png")
	assert.Error(t, err)
}

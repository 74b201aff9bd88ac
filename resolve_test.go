package layerline

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/convergeci/layerline/core"
	"github.com/convergeci/layerline/internal/checksum"
)

func TestResolveChecksum(t *testing.T) {
	t.Parallel()

	loc := core.ObjectLocation{Bucket: "deploy-bucket", Key: "bundle.zip"}
	ctx := context.Background()

	t.Run("absent object is a valid state", func(t *testing.T) {
		t.Parallel()
		store := newFakeStore(false)
		client := newTestClient(store, newFakeLayers(store))

		got, err := client.resolveChecksum(ctx, loc)
		require.NoError(t, err)
		assert.False(t, got.Exists)
		assert.False(t, got.Downloaded)
		assert.Empty(t, got.Value)
	})

	t.Run("metadata hit avoids a download", func(t *testing.T) {
		t.Parallel()
		store := newFakeStore(false)
		client := newTestClient(store, newFakeLayers(store))
		_, err := store.Put(ctx, loc, strings.NewReader("content"),
			map[string]string{DefaultMetadataKey: "recorded-checksum"})
		require.NoError(t, err)

		got, err := client.resolveChecksum(ctx, loc)
		require.NoError(t, err)
		assert.True(t, got.Exists)
		assert.False(t, got.Downloaded)
		assert.Equal(t, "recorded-checksum", got.Value)
	})

	t.Run("metadata miss downloads and hashes", func(t *testing.T) {
		t.Parallel()
		store := newFakeStore(false)
		client := newTestClient(store, newFakeLayers(store))
		_, err := store.Put(ctx, loc, strings.NewReader("content"), nil)
		require.NoError(t, err)
		want, err := checksum.Reader(strings.NewReader("content"))
		require.NoError(t, err)

		got, err := client.resolveChecksum(ctx, loc)
		require.NoError(t, err)
		assert.True(t, got.Exists)
		assert.True(t, got.Downloaded)
		assert.Equal(t, want, got.Value)
	})

	t.Run("pinned object version", func(t *testing.T) {
		t.Parallel()
		store := newFakeStore(true)
		client := newTestClient(store, newFakeLayers(store))
		first, err := store.Put(ctx, loc, strings.NewReader("old"),
			map[string]string{DefaultMetadataKey: "old-checksum"})
		require.NoError(t, err)
		_, err = store.Put(ctx, loc, strings.NewReader("new"),
			map[string]string{DefaultMetadataKey: "new-checksum"})
		require.NoError(t, err)

		pinned := loc
		pinned.VersionID = first
		got, err := client.resolveChecksum(ctx, pinned)
		require.NoError(t, err)
		assert.Equal(t, "old-checksum", got.Value)
	})
}

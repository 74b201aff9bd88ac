package layerline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	t.Parallel()

	t.Run("returns the newest version", func(t *testing.T) {
		t.Parallel()
		store := newFakeStore(false)
		layers := newFakeLayers(store)
		client := newTestClient(store, layers)
		sums := publishN(t, client, store, "findme", "old", "new")

		got, err := client.Search(context.Background(), "findme")
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.Version)
		assert.Equal(t, sums[1], got.Checksum)
		assert.NotEmpty(t, got.VersionArn)
	})

	t.Run("unknown layer", func(t *testing.T) {
		t.Parallel()
		store := newFakeStore(false)
		client := newTestClient(store, newFakeLayers(store))

		_, err := client.Search(context.Background(), "ghost")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

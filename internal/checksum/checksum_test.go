package checksum

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader(t *testing.T) {
	t.Parallel()

	t.Run("matches direct sha256", func(t *testing.T) {
		t.Parallel()
		data := []byte("layer bundle contents")
		sum := sha256.Sum256(data)
		want := base64.StdEncoding.EncodeToString(sum[:])

		got, err := Reader(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()
		data := []byte("same bytes")

		first, err := Reader(bytes.NewReader(data))
		require.NoError(t, err)
		second, err := Reader(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("different bytes differ", func(t *testing.T) {
		t.Parallel()
		a, err := Reader(strings.NewReader("bundle a"))
		require.NoError(t, err)
		b, err := Reader(strings.NewReader("bundle b"))
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("streams past one chunk", func(t *testing.T) {
		t.Parallel()
		data := bytes.Repeat([]byte("x"), chunkSize+512)
		sum := sha256.Sum256(data)
		want := base64.StdEncoding.EncodeToString(sum[:])

		got, err := Reader(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestFile(t *testing.T) {
	t.Parallel()

	t.Run("matches reader", func(t *testing.T) {
		t.Parallel()
		data := []byte("bundle on disk")
		path := filepath.Join(t.TempDir(), "layer.zip")
		require.NoError(t, os.WriteFile(path, data, 0o600))

		fromFile, err := File(path)
		require.NoError(t, err)
		fromReader, err := Reader(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, fromReader, fromFile)
	})

	t.Run("missing file fails", func(t *testing.T) {
		t.Parallel()
		_, err := File(filepath.Join(t.TempDir(), "absent.zip"))
		assert.Error(t, err)
	})
}

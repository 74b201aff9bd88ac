// Package checksum computes the content digests the management plane
// compares against: SHA-256, base64 encoded, matching the CodeSha256
// field on published layer versions.
package checksum

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"os"
)

// chunkSize bounds memory while hashing; blobs are streamed, never
// loaded whole.
const chunkSize = 1 << 20

// Reader hashes everything remaining in r.
func Reader(r io.Reader) (string, error) {
	h := sha256.New()
	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(h, r, buf); err != nil {
		return "", fmt.Errorf("hash content: %w", err)
	}
	return base64.StdEncoding.EncodeToString(h.Sum(nil)), nil
}

// File hashes the file at path.
func File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open bundle: %w", err)
	}
	defer f.Close()
	return Reader(f)
}

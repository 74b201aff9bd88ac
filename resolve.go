package layerline

import (
	"context"
	"errors"
	"fmt"

	"github.com/convergeci/layerline/core"
	"github.com/convergeci/layerline/internal/checksum"
)

// remoteChecksum is the outcome of resolving the checksum of a stored
// object. A missing object is a valid state, not an error: Exists is
// false and both other fields are zero.
type remoteChecksum struct {
	// Value is the base64 SHA-256 of the stored content.
	Value string
	// Exists reports whether the object was found at all.
	Exists bool
	// Downloaded reports the degraded path: the metadata key was absent
	// and the full body had to be transferred to compute the checksum.
	Downloaded bool
}

// resolveChecksum returns the checksum of the object at loc, preferring
// the value recorded in object metadata and falling back to downloading
// and hashing the body.
func (c *Client) resolveChecksum(ctx context.Context, loc core.ObjectLocation) (remoteChecksum, error) {
	obj, err := c.store.Get(ctx, loc)
	if errors.Is(err, core.ErrNotFound) {
		return remoteChecksum{}, nil
	}
	if err != nil {
		return remoteChecksum{}, fmt.Errorf("get s3://%s/%s: %w", loc.Bucket, loc.Key, err)
	}
	defer obj.Body.Close()

	if value := obj.Metadata[c.metadataKey]; value != "" {
		return remoteChecksum{Value: value, Exists: true}, nil
	}

	c.logger.Info("no checksum metadata, downloading to calculate",
		"bucket", loc.Bucket, "key", loc.Key, "metadataKey", c.metadataKey)
	value, err := checksum.Reader(obj.Body)
	if err != nil {
		return remoteChecksum{}, fmt.Errorf("checksum s3://%s/%s: %w", loc.Bucket, loc.Key, err)
	}
	return remoteChecksum{Value: value, Exists: true, Downloaded: true}, nil
}

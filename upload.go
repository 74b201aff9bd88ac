package layerline

import (
	"context"
	"fmt"
	"os"

	"github.com/convergeci/layerline/core"
	"github.com/convergeci/layerline/internal/checksum"
)

// uploadBundle puts the bundle at path to loc with its checksum attached
// as object metadata. Returns the store-assigned object version, or
// empty for unversioned buckets. When sum is empty it is computed first.
func (c *Client) uploadBundle(ctx context.Context, path string, loc core.ObjectLocation, sum string) (string, error) {
	if sum == "" {
		var err error
		sum, err = checksum.File(path)
		if err != nil {
			return "", err
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open bundle: %w", err)
	}
	defer f.Close()

	c.logger.Debug("uploading bundle",
		"path", path, "bucket", loc.Bucket, "key", loc.Key, "checksum", sum)
	versionID, err := c.store.Put(ctx, loc, f, map[string]string{c.metadataKey: sum})
	if err != nil {
		return "", fmt.Errorf("put s3://%s/%s: %w", loc.Bucket, loc.Key, err)
	}
	return versionID, nil
}

package layerline

import (
	"context"
	"fmt"
)

// EnsureBucket creates the bucket if it does not exist and reports
// whether it had to.
func (c *Client) EnsureBucket(ctx context.Context, bucket string) (bool, error) {
	exists, err := c.store.BucketExists(ctx, bucket)
	if err != nil {
		return false, fmt.Errorf("head bucket %s: %w", bucket, err)
	}
	if exists {
		return false, nil
	}

	if err := c.store.CreateBucket(ctx, bucket); err != nil {
		return false, fmt.Errorf("create bucket %s: %w", bucket, err)
	}
	c.logger.Info("bucket created", "bucket", bucket)
	return true, nil
}

// DestroyBucket drains every object version and delete marker from the
// bucket and then deletes the bucket itself. Versioned buckets cannot be
// deleted while any version remains, including delete markers.
func (c *Client) DestroyBucket(ctx context.Context, bucket string) error {
	objects, err := c.store.ListObjectVersions(ctx, bucket)
	if err != nil {
		return fmt.Errorf("list object versions in %s: %w", bucket, err)
	}

	if len(objects) > 0 {
		if err := c.store.DeleteObjects(ctx, bucket, objects); err != nil {
			return fmt.Errorf("drain bucket %s: %w", bucket, err)
		}
	}

	if err := c.store.DeleteBucket(ctx, bucket); err != nil {
		return fmt.Errorf("delete bucket %s: %w", bucket, err)
	}
	c.logger.Info("bucket destroyed", "bucket", bucket, "objectsRemoved", len(objects))
	return nil
}

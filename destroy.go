package layerline

import (
	"context"
	"fmt"
)

// Destroy deletes every published version of the named layer and reports
// whether any existed. Destroying a layer that never existed is a no-op.
// Deletion order is unspecified; a failure mid-loop propagates with the
// already-deleted versions left deleted.
func (c *Client) Destroy(ctx context.Context, name string) (bool, error) {
	numbers, err := c.versionNumbers(ctx, name)
	if err != nil {
		return false, fmt.Errorf("list versions of %s: %w", name, err)
	}

	c.logger.Info("destroying layer versions", "name", name, "count", len(numbers))
	for _, n := range numbers {
		if err := c.layers.DeleteVersion(ctx, name, n); err != nil {
			return len(numbers) > 0, fmt.Errorf("delete %s version %d: %w", name, n, err)
		}
	}
	return len(numbers) > 0, nil
}

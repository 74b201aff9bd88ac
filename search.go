package layerline

import (
	"context"
	"fmt"

	"github.com/convergeci/layerline/core"
)

// Search returns the newest published version of the named layer.
// Returns ErrNotFound when the layer has no published versions.
func (c *Client) Search(ctx context.Context, name string) (*LayerVersion, error) {
	last, err := c.latestMatching(ctx, name, "")
	if err != nil {
		return nil, fmt.Errorf("search layer %s: %w", name, err)
	}
	if last == nil {
		return nil, fmt.Errorf("layer %s: %w", name, core.ErrNotFound)
	}
	return last, nil
}

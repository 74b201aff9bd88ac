package layerline

import (
	"context"
	"fmt"

	"github.com/cenkalti/backoff/v4"

	"github.com/convergeci/layerline/core"
)

// CreateFunction creates a function from spec and returns its ARN.
//
// A layer version referenced right after publishing may not have
// propagated through the management plane yet, so the create call runs
// under the client's retry policy. When every attempt fails the error
// wraps ErrRetriesExhausted along with the last underlying failure.
func (c *Client) CreateFunction(ctx context.Context, spec FunctionSpec) (string, error) {
	var arn string
	attempt := 0

	operation := func() error {
		attempt++
		created, err := c.layers.CreateFunction(ctx, spec)
		if err != nil {
			c.logger.Warn("create function failed",
				"name", spec.Name, "attempt", attempt, "error", err)
			return err
		}
		arn = created
		return nil
	}

	err := backoff.Retry(operation, backoff.WithContext(c.retry.BackOff(), ctx))
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("create function %s: %w", spec.Name, err)
		}
		return "", fmt.Errorf("create function %s: %w after %d attempts: %w",
			spec.Name, core.ErrRetriesExhausted, attempt, err)
	}

	c.logger.Info("function created", "name", spec.Name, "arn", arn, "attempts", attempt)
	return arn, nil
}

// DeleteFunction removes the named function. Deleting a function that
// does not exist returns ErrNotFound.
func (c *Client) DeleteFunction(ctx context.Context, name string) error {
	if err := c.layers.DeleteFunction(ctx, name); err != nil {
		return fmt.Errorf("delete function %s: %w", name, err)
	}
	return nil
}

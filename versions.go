package layerline

import (
	"context"
	"errors"

	"github.com/convergeci/layerline/core"
)

// versionCursor walks the paginated version listing of a layer name,
// yielding each distinct version number exactly once. The listing API
// may repeat entries across pages, so the cursor dedups by version
// number. The walk is finite and not restartable.
type versionCursor struct {
	layers layerService
	name   string
	marker string
	buf    []int64
	seen   map[int64]struct{}
	done   bool
}

func newVersionCursor(layers layerService, name string) *versionCursor {
	return &versionCursor{
		layers: layers,
		name:   name,
		seen:   make(map[int64]struct{}),
	}
}

// next returns the next version number, or ok=false when the listing is
// exhausted. A name with no published versions is exhausted immediately;
// NotFound from the listing counts as exhaustion, not failure.
func (c *versionCursor) next(ctx context.Context) (int64, bool, error) {
	for {
		if len(c.buf) > 0 {
			n := c.buf[0]
			c.buf = c.buf[1:]
			if _, dup := c.seen[n]; dup {
				continue
			}
			c.seen[n] = struct{}{}
			return n, true, nil
		}
		if c.done {
			return 0, false, nil
		}

		page, err := c.layers.ListVersions(ctx, c.name, c.marker)
		if errors.Is(err, core.ErrNotFound) {
			c.done = true
			return 0, false, nil
		}
		if err != nil {
			return 0, false, err
		}
		c.buf = page.Versions
		c.marker = page.NextMarker
		if c.marker == "" {
			c.done = true
		}
	}
}

// latestMatching returns the highest-numbered published version whose
// content checksum equals sum, or nil when none matches. An empty sum
// matches every version, so the newest version overall is returned.
// Each candidate needs a detail fetch; the listing omits the checksum.
func (c *Client) latestMatching(ctx context.Context, name, sum string) (*core.LayerVersion, error) {
	cursor := newVersionCursor(c.layers, name)
	var best *core.LayerVersion
	for {
		n, ok, err := cursor.next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return best, nil
		}
		version, err := c.layers.GetVersion(ctx, name, n)
		if err != nil {
			return nil, err
		}
		if sum != "" && version.Checksum != sum {
			continue
		}
		if best == nil || version.Version > best.Version {
			best = &version
		}
	}
}

// versionNumbers collects every published version number for name.
func (c *Client) versionNumbers(ctx context.Context, name string) ([]int64, error) {
	cursor := newVersionCursor(c.layers, name)
	var numbers []int64
	for {
		n, ok, err := cursor.next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return numbers, nil
		}
		numbers = append(numbers, n)
	}
}

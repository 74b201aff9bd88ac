package layerline

import (
	"context"
	"fmt"
	"slices"

	"github.com/convergeci/layerline/core"
	"github.com/convergeci/layerline/internal/checksum"
)

// Reconcile converges the named layer to the desired state and reports
// what the current version is afterwards. It is idempotent: a second
// call with an identical bundle reports Changed=false and the same
// version.
//
// For Present, the local bundle checksum decides everything: the bundle
// is uploaded only when the stored object's checksum is absent or
// different, and a version is published when the bundle was uploaded,
// when no published version carries the local checksum, or when the
// matching version's runtime list differs from the requested one.
//
// For Absent, every published version is deleted; Changed reports
// whether any existed. Bucket, Key, and Path are not required.
//
// On failure the returned error is a *ReconcileError carrying whatever
// partial result had been computed. A succeeded upload before a failed
// publish is left in place; semantics are at-least-once.
func (c *Client) Reconcile(ctx context.Context, desired DesiredState) (*Result, error) {
	if desired.State == "" {
		desired.State = Present
	}

	switch desired.State {
	case Absent:
		return c.reconcileAbsent(ctx, desired)
	case Present:
		return c.reconcilePresent(ctx, desired)
	default:
		return nil, fmt.Errorf("unknown state %q", desired.State)
	}
}

func (c *Client) reconcileAbsent(ctx context.Context, desired DesiredState) (*Result, error) {
	// Resolve the newest version first so the result can report what was
	// torn down.
	last, err := c.latestMatching(ctx, desired.Name, "")
	if err != nil {
		return nil, &ReconcileError{Result: &Result{Name: desired.Name}, Err: err}
	}

	changed, err := c.Destroy(ctx, desired.Name)
	result := newResult(desired, last, changed, "", false)
	if err != nil {
		return nil, &ReconcileError{Result: result, Err: err}
	}
	return result, nil
}

func (c *Client) reconcilePresent(ctx context.Context, desired DesiredState) (*Result, error) {
	if desired.Path == "" {
		return nil, core.ErrBundleRequired
	}
	if desired.Bucket == "" || desired.Key == "" {
		return nil, core.ErrMissingLocation
	}

	// An unreadable bundle fails fast; without the local checksum no
	// upload or publish decision can be made.
	localSum, err := checksum.File(desired.Path)
	if err != nil {
		return nil, &ReconcileError{Result: &Result{Name: desired.Name}, Err: err}
	}

	// Has this exact content already been published, under any object
	// key, at any point in history?
	layer, err := c.latestMatching(ctx, desired.Name, localSum)
	if err != nil {
		return nil, &ReconcileError{Result: &Result{Name: desired.Name}, Err: err}
	}

	// The object at the target key may have been overwritten by
	// unrelated activity, so its checksum is resolved independently of
	// the published versions.
	loc := core.ObjectLocation{
		Bucket:    desired.Bucket,
		Key:       desired.Key,
		VersionID: desired.ObjectVersion,
	}
	remote, err := c.resolveChecksum(ctx, loc)
	if err != nil {
		return nil, &ReconcileError{Result: newResult(desired, layer, false, "", false), Err: err}
	}

	uploaded := false
	objectVersion := desired.ObjectVersion

	if !remote.Exists || remote.Value != localSum {
		versionID, uploadErr := c.uploadBundle(ctx, desired.Path, loc, localSum)
		if uploadErr != nil {
			return nil, &ReconcileError{
				Result: newResult(desired, layer, false, "", remote.Downloaded),
				Err:    uploadErr,
			}
		}
		objectVersion = versionID
		uploaded = true
		c.logger.Info("bundle uploaded",
			"name", desired.Name, "bucket", desired.Bucket, "key", desired.Key,
			"objectVersion", objectVersion)
	}

	changed := uploaded

	// A fresh upload always publishes, even when the checksum matches an
	// old version: the object at the key held other content until a
	// moment ago, and the new version pins the re-uploaded object.
	if uploaded || layer == nil || layer.Checksum != localSum || !runtimesEqual(layer.Runtimes, desired.Runtimes) {
		published, publishErr := c.layers.Publish(ctx, core.PublishInput{
			Name:          desired.Name,
			Bucket:        desired.Bucket,
			Key:           desired.Key,
			ObjectVersion: objectVersion,
			Runtimes:      desired.Runtimes,
		})
		if publishErr != nil {
			return nil, &ReconcileError{
				Result: newResult(desired, layer, changed, objectVersion, remote.Downloaded),
				Err:    fmt.Errorf("publish layer version: %w", publishErr),
			}
		}
		layer = &published
		changed = true
		c.logger.Info("layer version published",
			"name", desired.Name, "version", published.Version, "arn", published.VersionArn)
	}

	return newResult(desired, layer, changed, objectVersion, remote.Downloaded), nil
}

// newResult builds the single immutable result value. Layer fields stay
// zero when no version was resolved.
func newResult(desired DesiredState, layer *core.LayerVersion, changed bool, objectVersion string, downloaded bool) *Result {
	result := &Result{
		Name:          desired.Name,
		Changed:       changed,
		Bucket:        desired.Bucket,
		ObjectVersion: objectVersion,
		Downloaded:    downloaded,
	}
	if layer != nil {
		result.Arn = layer.LayerArn
		result.Version = layer.Version
		result.VersionArn = layer.VersionArn
		result.VersionChecksum = layer.Checksum
		result.Runtimes = layer.Runtimes
	}
	return result
}

// runtimesEqual treats nil and empty as the same; the management plane
// returns no runtime field for either.
func runtimesEqual(a, b []string) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return slices.Equal(a, b)
}

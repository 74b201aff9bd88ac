package layerline

import "github.com/convergeci/layerline/core"

// Sentinel errors for common failure conditions.
// Re-exported from core package.
var (
	// ErrNotFound indicates the requested object, layer, or bucket does not exist.
	ErrNotFound = core.ErrNotFound

	// ErrRetriesExhausted indicates a retried operation failed on every attempt.
	ErrRetriesExhausted = core.ErrRetriesExhausted

	// ErrBundleRequired indicates no bundle path was given for a present layer.
	ErrBundleRequired = core.ErrBundleRequired

	// ErrMissingLocation indicates the bucket or object key was not given.
	ErrMissingLocation = core.ErrMissingLocation
)

// ReconcileError carries the partial result accumulated before a
// reconciliation failed. Fields computed before the failure (layer info
// found, whether an upload already happened) are preserved so callers
// can report them alongside the error.
type ReconcileError struct {
	// Result holds whatever had been resolved when the failure occurred.
	Result *Result
	// Err is the underlying failure.
	Err error
}

func (e *ReconcileError) Error() string {
	return "reconcile " + e.Result.Name + ": " + e.Err.Error()
}

func (e *ReconcileError) Unwrap() error {
	return e.Err
}

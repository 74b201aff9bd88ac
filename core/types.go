// Package core provides the shared types and sentinel errors for layerline.
//
// This package exists to break import cycles between the root layerline
// package and internal implementation packages. The layerline package
// re-exports all public types from this package, so external users should
// import layerline directly, not layerline/core.
package core

import (
	"errors"
	"io"
)

// Sentinel errors for common failure conditions.
var (
	// ErrNotFound indicates the requested object, layer, or bucket does not exist.
	ErrNotFound = errors.New("layerline: not found")

	// ErrRetriesExhausted indicates a retried operation failed on every attempt.
	ErrRetriesExhausted = errors.New("layerline: retries exhausted")

	// ErrBundleRequired indicates no bundle path was given for a present layer.
	ErrBundleRequired = errors.New("layerline: bundle path required when state is present")

	// ErrMissingLocation indicates the bucket or object key was not given.
	ErrMissingLocation = errors.New("layerline: bucket and object key required when state is present")
)

// LayerVersion is an immutable published version of a named layer.
// Version numbers are assigned by the management plane, are monotonic,
// and are not reusable; they are not contiguous after deletions.
type LayerVersion struct {
	// LayerName is the unversioned layer identifier.
	LayerName string
	// Version is the number assigned by the management plane.
	Version int64
	// LayerArn identifies the layer independent of version.
	LayerArn string
	// VersionArn identifies this specific version.
	VersionArn string
	// Checksum is the base64 SHA-256 of the version's content (CodeSha256).
	Checksum string
	// Runtimes is the compatible runtime list recorded at publish time.
	Runtimes []string
}

// ObjectLocation addresses an object in the store, optionally pinned
// to a specific version of the object.
type ObjectLocation struct {
	Bucket    string
	Key       string
	VersionID string
}

// StoredObject is an object fetched from the store. The caller owns Body
// and must close it. Metadata keys are lowercase; S3 lowercases user
// metadata keys on the wire.
type StoredObject struct {
	Body      io.ReadCloser
	Metadata  map[string]string
	VersionID string
}

// VersionPage is one page of a layer version listing. NextMarker is empty
// on the final page. Entries may repeat across pages; callers dedup by
// version number.
type VersionPage struct {
	Versions   []int64
	NextMarker string
}

// PublishInput describes a new layer version to publish. ObjectVersion
// pins the content to a specific object version when the bucket is
// versioned. An empty Runtimes list is omitted from the publish call
// entirely; the management plane distinguishes omitted from empty.
type PublishInput struct {
	Name          string
	Bucket        string
	Key           string
	ObjectVersion string
	Runtimes      []string
}

// FunctionSpec describes a function to create against a published layer.
type FunctionSpec struct {
	Name    string
	Role    string
	Runtime string
	Handler string
	Timeout int32
	// Bucket and Key locate the function code bundle.
	Bucket string
	Key    string
	// Layers lists version ARNs to attach.
	Layers []string
	// Env is the function environment, if any.
	Env map[string]string
}

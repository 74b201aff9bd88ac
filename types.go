package layerline

import "github.com/convergeci/layerline/core"

// Re-exported core types. External users should not import layerline/core.
type (
	// LayerVersion is an immutable published version of a named layer.
	LayerVersion = core.LayerVersion

	// FunctionSpec describes a function to create against a published layer.
	FunctionSpec = core.FunctionSpec

	// RetryPolicy bounds a retried operation.
	RetryPolicy = core.RetryPolicy
)

// State says whether a layer should exist.
type State string

const (
	// Present means the layer should exist with the given bundle content.
	Present State = "present"
	// Absent means no version of the layer should exist.
	Absent State = "absent"
)

// DefaultMetadataKey is the S3 object metadata key the checksum is
// stored under.
const DefaultMetadataKey = "sha256"

// DesiredState declares what one reconciliation should converge to.
// It is supplied wholesale per invocation and never persisted.
type DesiredState struct {
	// Name is the layer name, unique per account and region.
	Name string
	// Bucket and Key locate the bundle in the object store. Required
	// for Present; ignored for Absent.
	Bucket string
	Key    string
	// ObjectVersion optionally pins the stored object version to compare
	// against before any upload.
	ObjectVersion string
	// Path is the local bundle. Required for Present; ignored for Absent.
	Path string
	// State defaults to Present when empty.
	State State
	// Runtimes is the compatible runtime list the published version
	// should carry. An empty list is omitted from the publish call.
	Runtimes []string
}

// Result is the outcome of one reconciliation. It is built once at the
// end of the run and always carries the now-current version fields, even
// when nothing changed, so callers can wire the layer downstream.
type Result struct {
	// Name is the layer name reconciled.
	Name string
	// Changed reports whether any remote mutation happened.
	Changed bool
	// Arn identifies the layer; VersionArn the current version.
	Arn        string
	Version    int64
	VersionArn string
	// VersionChecksum is the current version's content checksum.
	VersionChecksum string
	// Runtimes is the current version's compatible runtime list.
	Runtimes []string
	// Bucket and ObjectVersion locate the bundle the current version
	// points at. ObjectVersion is empty for unversioned buckets.
	Bucket        string
	ObjectVersion string
	// Downloaded reports whether resolving the stored checksum required
	// downloading the object body (metadata key missing).
	Downloaded bool
}

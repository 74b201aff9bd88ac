package layerline

import (
	"context"
	"io"

	"github.com/convergeci/layerline/core"
)

type objectStore interface {
	Get(ctx context.Context, loc core.ObjectLocation) (*core.StoredObject, error)
	Put(ctx context.Context, loc core.ObjectLocation, body io.Reader, metadata map[string]string) (string, error)
	BucketExists(ctx context.Context, bucket string) (bool, error)
	CreateBucket(ctx context.Context, bucket string) error
	DeleteBucket(ctx context.Context, bucket string) error
	ListObjectVersions(ctx context.Context, bucket string) ([]core.ObjectLocation, error)
	DeleteObjects(ctx context.Context, bucket string, objects []core.ObjectLocation) error
}

type layerService interface {
	ListVersions(ctx context.Context, name, marker string) (core.VersionPage, error)
	GetVersion(ctx context.Context, name string, number int64) (core.LayerVersion, error)
	Publish(ctx context.Context, in core.PublishInput) (core.LayerVersion, error)
	DeleteVersion(ctx context.Context, name string, number int64) error
	CreateFunction(ctx context.Context, spec core.FunctionSpec) (string, error)
	DeleteFunction(ctx context.Context, name string) error
}

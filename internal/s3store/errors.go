package s3store

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/convergeci/layerline/core"
)

// mapError converts S3 errors to layerline sentinel errors. Non-existence
// is a normal value for callers, so it must be recognizable regardless of
// which shape the SDK returns it in.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if isNotFound(err) {
		return core.ErrNotFound
	}
	return err
}

// isNotFound recognizes the S3 absence errors. GetObject returns NoSuchKey,
// HeadBucket returns an untyped 404 NotFound, and version-pinned reads on
// missing versions surface as a generic NoSuchVersion code.
func isNotFound(err error) bool {
	var noKey *types.NoSuchKey
	var noBucket *types.NoSuchBucket
	var notFound *types.NotFound
	if errors.As(err, &noKey) || errors.As(err, &noBucket) || errors.As(err, &notFound) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NoSuchBucket", "NoSuchVersion", "NotFound":
			return true
		}
	}
	return false
}

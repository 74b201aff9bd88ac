package lambdasvc

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/aws/smithy-go"

	"github.com/convergeci/layerline/core"
)

// mapError converts Lambda API errors to layerline sentinel errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var notFound *types.ResourceNotFoundException
	if errors.As(err, &notFound) {
		return core.ErrNotFound
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ResourceNotFoundException" {
		return core.ErrNotFound
	}
	return err
}

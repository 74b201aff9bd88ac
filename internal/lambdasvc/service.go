// Package lambdasvc provides the management plane adapter backed by
// AWS Lambda.
package lambdasvc

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"

	"github.com/convergeci/layerline/core"
)

// Service wraps a Lambda client behind the layerline layer service
// contract.
type Service struct {
	client *lambda.Client
}

// New creates a Service.
func New(client *lambda.Client) *Service {
	return &Service{client: client}
}

// ListVersions fetches one page of the version listing for a layer name.
// Pass the marker from the previous page, or empty for the first page.
// A name with no published versions yields an empty page, not an error.
func (s *Service) ListVersions(ctx context.Context, name, marker string) (core.VersionPage, error) {
	in := &lambda.ListLayerVersionsInput{LayerName: aws.String(name)}
	if marker != "" {
		in.Marker = aws.String(marker)
	}
	out, err := s.client.ListLayerVersions(ctx, in)
	if err != nil {
		return core.VersionPage{}, mapError(err)
	}
	page := core.VersionPage{NextMarker: aws.ToString(out.NextMarker)}
	for _, v := range out.LayerVersions {
		page.Versions = append(page.Versions, v.Version)
	}
	return page, nil
}

// GetVersion fetches the full detail for one version number. The listing
// call omits the content checksum, so this per-version fetch is required.
func (s *Service) GetVersion(ctx context.Context, name string, number int64) (core.LayerVersion, error) {
	out, err := s.client.GetLayerVersion(ctx, &lambda.GetLayerVersionInput{
		LayerName:     aws.String(name),
		VersionNumber: aws.Int64(number),
	})
	if err != nil {
		return core.LayerVersion{}, mapError(err)
	}
	version := core.LayerVersion{
		LayerName:  name,
		Version:    out.Version,
		LayerArn:   aws.ToString(out.LayerArn),
		VersionArn: aws.ToString(out.LayerVersionArn),
		Runtimes:   runtimeStrings(out.CompatibleRuntimes),
	}
	if out.Content != nil {
		version.Checksum = aws.ToString(out.Content.CodeSha256)
	}
	return version, nil
}

// Publish creates a new immutable version of the layer pointing at the
// given object. The runtime list is omitted from the call entirely when
// empty; the management plane treats omitted and empty differently.
func (s *Service) Publish(ctx context.Context, in core.PublishInput) (core.LayerVersion, error) {
	content := &types.LayerVersionContentInput{
		S3Bucket: aws.String(in.Bucket),
		S3Key:    aws.String(in.Key),
	}
	if in.ObjectVersion != "" {
		content.S3ObjectVersion = aws.String(in.ObjectVersion)
	}
	input := &lambda.PublishLayerVersionInput{
		LayerName: aws.String(in.Name),
		Content:   content,
	}
	if len(in.Runtimes) > 0 {
		runtimes := make([]types.Runtime, 0, len(in.Runtimes))
		for _, r := range in.Runtimes {
			runtimes = append(runtimes, types.Runtime(r))
		}
		input.CompatibleRuntimes = runtimes
	}

	out, err := s.client.PublishLayerVersion(ctx, input)
	if err != nil {
		return core.LayerVersion{}, mapError(err)
	}
	version := core.LayerVersion{
		LayerName:  in.Name,
		Version:    out.Version,
		LayerArn:   aws.ToString(out.LayerArn),
		VersionArn: aws.ToString(out.LayerVersionArn),
		Runtimes:   runtimeStrings(out.CompatibleRuntimes),
	}
	if out.Content != nil {
		version.Checksum = aws.ToString(out.Content.CodeSha256)
	}
	return version, nil
}

// DeleteVersion removes one published version.
func (s *Service) DeleteVersion(ctx context.Context, name string, number int64) error {
	_, err := s.client.DeleteLayerVersion(ctx, &lambda.DeleteLayerVersionInput{
		LayerName:     aws.String(name),
		VersionNumber: aws.Int64(number),
	})
	return mapError(err)
}

// CreateFunction creates a function from the given spec and returns its
// ARN. Callers retry this; a layer version referenced immediately after
// publishing may not have propagated yet.
func (s *Service) CreateFunction(ctx context.Context, spec core.FunctionSpec) (string, error) {
	in := &lambda.CreateFunctionInput{
		FunctionName: aws.String(spec.Name),
		Role:         aws.String(spec.Role),
		Runtime:      types.Runtime(spec.Runtime),
		Handler:      aws.String(spec.Handler),
		Publish:      true,
		Code: &types.FunctionCode{
			S3Bucket: aws.String(spec.Bucket),
			S3Key:    aws.String(spec.Key),
		},
		Layers: spec.Layers,
	}
	if spec.Timeout > 0 {
		in.Timeout = aws.Int32(spec.Timeout)
	}
	if len(spec.Env) > 0 {
		in.Environment = &types.Environment{Variables: spec.Env}
	}

	out, err := s.client.CreateFunction(ctx, in)
	if err != nil {
		return "", mapError(err)
	}
	return aws.ToString(out.FunctionArn), nil
}

// DeleteFunction removes a function by name.
func (s *Service) DeleteFunction(ctx context.Context, name string) error {
	_, err := s.client.DeleteFunction(ctx, &lambda.DeleteFunctionInput{
		FunctionName: aws.String(name),
	})
	return mapError(err)
}

func runtimeStrings(runtimes []types.Runtime) []string {
	if len(runtimes) == 0 {
		return nil
	}
	out := make([]string, 0, len(runtimes))
	for _, r := range runtimes {
		out = append(out, string(r))
	}
	return out
}

package layerline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/convergeci/layerline/core"
	"github.com/convergeci/layerline/internal/lambdasvc"
	"github.com/convergeci/layerline/internal/s3store"
)

// Client reconciles Lambda layers against S3-backed bundles.
type Client struct {
	store  objectStore
	layers layerService
	logger *slog.Logger

	// configuration applied before the AWS clients are built
	region         string
	s3Endpoint     string
	lambdaEndpoint string
	credentials    aws.CredentialsProvider
	metadataKey    string
	retry          core.RetryPolicy
}

// NewClient creates a layerline client.
//
// By default, AWS credentials and region are resolved from the
// environment, shared config files, and the instance metadata service.
// Use WithRegion, WithStaticCredentials, and the endpoint options to
// override.
func NewClient(ctx context.Context, opts ...ClientOption) (*Client, error) {
	c := &Client{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		metadataKey: DefaultMetadataKey,
		retry:       core.DefaultRetryPolicy,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	var loadOpts []func(*config.LoadOptions) error
	if c.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(c.region))
	}
	if c.credentials != nil {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(c.credentials))
	}
	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if c.s3Endpoint != "" {
			o.BaseEndpoint = aws.String(c.s3Endpoint)
			// localstack-style endpoints route by path, not virtual host
			o.UsePathStyle = true
		}
	})
	lambdaClient := lambda.NewFromConfig(cfg, func(o *lambda.Options) {
		if c.lambdaEndpoint != "" {
			o.BaseEndpoint = aws.String(c.lambdaEndpoint)
		}
	})

	c.store = s3store.New(s3Client, cfg.Region)
	c.layers = lambdasvc.New(lambdaClient)

	return c, nil
}

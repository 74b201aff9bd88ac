package layerline

import (
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"github.com/convergeci/layerline/core"
)

// ClientOption configures a Client.
type ClientOption func(*Client) error

// WithRegion sets the AWS region, overriding environment and shared
// config resolution.
func WithRegion(region string) ClientOption {
	return func(c *Client) error {
		c.region = region
		return nil
	}
}

// WithS3Endpoint overrides the S3 endpoint. Path-style addressing is
// enabled alongside, for localstack-style endpoints.
func WithS3Endpoint(endpoint string) ClientOption {
	return func(c *Client) error {
		c.s3Endpoint = endpoint
		return nil
	}
}

// WithLambdaEndpoint overrides the Lambda endpoint.
func WithLambdaEndpoint(endpoint string) ClientOption {
	return func(c *Client) error {
		c.lambdaEndpoint = endpoint
		return nil
	}
}

// WithStaticCredentials sets fixed AWS credentials instead of the
// default resolution chain.
func WithStaticCredentials(accessKeyID, secretAccessKey string) ClientOption {
	return func(c *Client) error {
		c.credentials = credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, "")
		return nil
	}
}

// WithCredentialsProvider sets a custom AWS credentials provider.
func WithCredentialsProvider(provider aws.CredentialsProvider) ClientOption {
	return func(c *Client) error {
		c.credentials = provider
		return nil
	}
}

// WithMetadataKey sets the S3 object metadata key the checksum is stored
// under. Defaults to DefaultMetadataKey. The key is lowercased; S3
// lowercases user metadata keys on the wire.
func WithMetadataKey(key string) ClientOption {
	return func(c *Client) error {
		c.metadataKey = strings.ToLower(key)
		return nil
	}
}

// WithRetryPolicy sets the retry policy used around function creation
// while a layer propagates. Defaults to core.DefaultRetryPolicy.
func WithRetryPolicy(policy core.RetryPolicy) ClientOption {
	return func(c *Client) error {
		c.retry = policy
		return nil
	}
}

// WithLogger sets a logger for the client. By default, logging is disabled.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) error {
		c.logger = logger
		return nil
	}
}

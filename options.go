// Package s3sink provides functional options for configuring S3 client behavior.
// These options follow the functional options pattern for clean, composable configuration.
package s3sink

import (
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/bjoernhaeuser/kafka-connect-storage-cloud/sinkconfig"
)

// WithRegion sets the AWS region for S3 operations.
// If not specified, uses the default AWS region from the credential chain.
func WithRegion(region string) sinkconfig.Option {
	return func(c *sinkconfig.ClientConfig) {
		c.Region = region
	}
}

// WithMaxRetries sets the maximum number of retry attempts for failed requests.
// Default is 3 retries. Set to 0 to disable retries.
func WithMaxRetries(maxRetries int) sinkconfig.Option {
	return func(c *sinkconfig.ClientConfig) {
		c.MaxRetries = maxRetries
	}
}

// WithTimeout sets the timeout for individual S3 requests.
// Default is no timeout (0). Values should be positive durations.
func WithTimeout(timeout time.Duration) sinkconfig.Option {
	return func(c *sinkconfig.ClientConfig) {
		c.Timeout = timeout
	}
}

// WithEndpoint sets a custom S3 endpoint URL.
// This is useful for S3-compatible services or local testing with LocalStack.
func WithEndpoint(endpoint string) sinkconfig.Option {
	return func(c *sinkconfig.ClientConfig) {
		c.Endpoint = endpoint
	}
}

// WithForcePathStyle forces the use of path-style URLs instead of virtual-hosted style.
// This is required for S3-compatible services that don't support virtual hosting.
// Default is false (uses virtual-hosted style).
func WithForcePathStyle(forcePathStyle bool) sinkconfig.Option {
	return func(c *sinkconfig.ClientConfig) {
		c.ForcePathStyle = forcePathStyle
	}
}

// WithHTTPClient sets a custom HTTP client for S3 requests.
// This takes precedence over WithTimeout.
func WithHTTPClient(client *http.Client) sinkconfig.Option {
	return func(c *sinkconfig.ClientConfig) {
		c.HTTPClient = client
	}
}

// WithAWSConfig allows providing a custom AWS configuration.
// This overrides the default configuration loading behavior.
// Use this when you need fine-grained control over AWS SDK configuration.
func WithAWSConfig(config *aws.Config) sinkconfig.Option {
	return func(c *sinkconfig.ClientConfig) {
		// Store the custom config for later use
		c.CustomAWSConfig = config
	}
}

// Package s3sink provides client initialization and configuration.
package s3sink

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	sinkerrors "github.com/bjoernhaeuser/kafka-connect-storage-cloud/errors"
	"github.com/bjoernhaeuser/kafka-connect-storage-cloud/internal/s3api"
	"github.com/bjoernhaeuser/kafka-connect-storage-cloud/internal/validation"
	"github.com/bjoernhaeuser/kafka-connect-storage-cloud/sinkconfig"
)

// Client wraps the AWS SDK S3 client with the narrow capability the sink
// validator needs: answering whether a bucket exists. It is safe for
// concurrent use.
type Client struct {
	// s3Client is the underlying AWS SDK S3 client
	s3Client s3api.S3API

	// config holds the AWS configuration
	config aws.Config
}

// New creates a new S3 client with the provided options.
// It loads AWS credentials using the default credential chain
// and applies the specified configuration options.
//
// Example:
//
//	client, err := s3sink.New(
//	    s3sink.WithRegion("us-west-2"),
//	    s3sink.WithMaxRetries(3),
//	)
func New(opts ...sinkconfig.Option) (*Client, error) {
	clientCfg := &sinkconfig.ClientConfig{
		MaxRetries: 3, // Default retry count
	}

	for _, opt := range opts {
		opt(clientCfg)
	}

	// Start with default AWS configuration or use custom config
	var cfg aws.Config
	var err error

	if clientCfg.CustomAWSConfig != nil {
		cfg = *clientCfg.CustomAWSConfig
	} else {
		cfg, err = config.LoadDefaultConfig(context.Background())
		if err != nil {
			return nil, sinkerrors.NewError("client initialization", err)
		}
	}

	// Apply region from options if specified, otherwise ensure a region is set
	if clientCfg.Region != "" {
		cfg.Region = clientCfg.Region
	} else if cfg.Region == "" {
		cfg.Region = "us-east-1" // AWS default region
	}

	if clientCfg.MaxRetries > 0 {
		cfg.RetryMaxAttempts = clientCfg.MaxRetries
	}

	var s3Opts []func(*s3.Options)

	if clientCfg.Endpoint != "" {
		endpoint := clientCfg.Endpoint
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		})
	}

	if clientCfg.ForcePathStyle {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.UsePathStyle = true
		})
	}

	// Handle custom HTTP client for timeout
	if clientCfg.HTTPClient != nil {
		httpClient := clientCfg.HTTPClient
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.HTTPClient = httpClient
		})
	} else if clientCfg.Timeout > 0 {
		httpClient := &http.Client{
			Timeout: clientCfg.Timeout,
		}
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.HTTPClient = httpClient
		})
	}

	return &Client{
		s3Client: s3.NewFromConfig(cfg, s3Opts...),
		config:   cfg,
	}, nil
}

// NewWithClient creates a new S3 client with a custom S3API implementation.
// This is primarily used for testing with mocked clients.
func NewWithClient(s3Client s3api.S3API) *Client {
	return &Client{
		s3Client: s3Client,
		config:   aws.Config{},
	}
}

// BucketExists reports whether the named bucket exists and is reachable.
//
// A name that fails S3 bucket-name syntax rules cannot name an existing
// bucket, so it reports false without a network call. An AWS "not found"
// response also reports false. Any other failure (network, auth) is
// returned as an error rather than conflated with non-existence, so the
// caller can tell a missing bucket from an unreachable one.
func (c *Client) BucketExists(ctx context.Context, bucket string) (bool, error) {
	if err := validation.ValidateBucketName(bucket); err != nil {
		return false, nil
	}

	input := &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	}

	_, err := c.s3Client.HeadBucket(ctx, input)
	if err != nil {
		if isBucketNotFound(err) {
			return false, nil
		}
		return false, sinkerrors.NewBucketError("bucketExists", bucket, c.convertAWSError(err))
	}

	return true, nil
}

// isBucketNotFound checks whether an AWS SDK error means the bucket does not exist.
func isBucketNotFound(err error) bool {
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return true
	}

	var noSuchBucket *types.NoSuchBucket
	if errors.As(err, &noSuchBucket) {
		return true
	}

	// Check for error messages that contain specific error codes
	errMsg := err.Error()
	return strings.Contains(errMsg, "NotFound") || strings.Contains(errMsg, "NoSuchBucket")
}

// convertAWSError converts AWS SDK errors to our custom error types
func (c *Client) convertAWSError(err error) error {
	if err == nil {
		return nil
	}

	errMsg := err.Error()
	switch {
	case strings.Contains(errMsg, "AccessDenied"), strings.Contains(errMsg, "Forbidden"):
		return sinkerrors.ErrAccessDenied
	case strings.Contains(errMsg, "connection refused"), strings.Contains(errMsg, "no such host"):
		return sinkerrors.ErrConnection
	}

	// Return the original error if we can't convert it
	return err
}

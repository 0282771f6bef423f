// Package testutil provides test utilities and mocks for sink validation.
// This package is internal and should only be used for testing within this module.
package testutil

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/bjoernhaeuser/kafka-connect-storage-cloud/internal/s3api"
)

// MockS3Client is a mock implementation of the S3API interface for testing.
// It allows customization of each S3 operation through function fields.
type MockS3Client struct {
	HeadBucketFunc func(context.Context, *s3.HeadBucketInput, ...func(*s3.Options)) (*s3.HeadBucketOutput, error)

	// HeadBucketCalls counts invocations, useful for asserting that
	// local bucket-name validation short-circuits the network call.
	HeadBucketCalls int
}

// HeadBucket mocks the S3 HeadBucket operation.
func (m *MockS3Client) HeadBucket(
	ctx context.Context,
	params *s3.HeadBucketInput,
	optFns ...func(*s3.Options),
) (*s3.HeadBucketOutput, error) {
	m.HeadBucketCalls++
	if m.HeadBucketFunc != nil {
		return m.HeadBucketFunc(ctx, params, optFns...)
	}
	return &s3.HeadBucketOutput{}, nil
}

// Verify that the mock implements our interface
var _ s3api.S3API = (*MockS3Client)(nil)

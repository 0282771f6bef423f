// Package errors provides error types and handling for S3 sink validation.
package errors

import (
	"errors"
	"fmt"
)

// Error represents a validation or storage operation error with context
// about the operation that failed. It wraps the underlying AWS SDK error
// or parse failure with additional context for better debugging.
type Error struct {
	// Op is the operation that failed (e.g., "bucketExists", "parseConfig")
	Op string

	// Bucket is the S3 bucket name (if applicable)
	Bucket string

	// Key is the configuration key involved (if applicable)
	Key string

	// Err is the underlying error from the AWS SDK or other source
	Err error
}

// Error implements the error interface by providing a formatted error message.
func (e *Error) Error() string {
	if e.Bucket != "" {
		return fmt.Sprintf("s3sink.%s bucket %s: %v", e.Op, e.Bucket, e.Err)
	}
	if e.Key != "" {
		return fmt.Sprintf("s3sink.%s %s: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("s3sink.%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithBucket adds bucket context to an existing error.
func (e *Error) WithBucket(bucket string) *Error {
	e.Bucket = bucket
	return e
}

// WithKey adds configuration key context to an existing error.
func (e *Error) WithKey(key string) *Error {
	e.Key = key
	return e
}

// WithMessage wraps the underlying error with a custom message.
func (e *Error) WithMessage(message string) *Error {
	e.Err = fmt.Errorf("%s: %w", message, e.Err)
	return e
}

// NewError creates a new Error with the given operation and underlying error.
func NewError(op string, err error) *Error {
	return &Error{
		Op:  op,
		Err: err,
	}
}

// NewBucketError creates a new Error with bucket context.
func NewBucketError(op, bucket string, err error) *Error {
	return &Error{
		Op:     op,
		Bucket: bucket,
		Err:    err,
	}
}

// Sentinel errors for common validation and storage failures.
// These can be used with errors.Is() for error checking.
var (
	// ErrBucketNotFound indicates that the requested bucket does not exist
	ErrBucketNotFound = errors.New("s3sink: bucket not found")

	// ErrAccessDenied indicates that access to the bucket is denied
	ErrAccessDenied = errors.New("s3sink: access denied")

	// ErrInvalidBucketName indicates that the bucket name is invalid
	ErrInvalidBucketName = errors.New("s3sink: invalid bucket name")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("s3sink: invalid input")

	// ErrInvalidConfig indicates that the connector configuration cannot be parsed
	ErrInvalidConfig = errors.New("s3sink: invalid configuration")

	// ErrConnection indicates a connection error while reaching S3
	ErrConnection = errors.New("s3sink: connection error")
)

// IsBucketNotFound checks if an error indicates that a bucket was not found.
// This is a convenience function that handles both sentinel errors and wrapped errors.
func IsBucketNotFound(err error) bool {
	return errors.Is(err, ErrBucketNotFound)
}

// IsAccessDenied checks if an error indicates access was denied.
// This is a convenience function that handles both sentinel errors and wrapped errors.
func IsAccessDenied(err error) bool {
	return errors.Is(err, ErrAccessDenied)
}

// IsInvalidConfig checks if an error indicates an unparseable configuration.
// This is a convenience function that handles both sentinel errors and wrapped errors.
func IsInvalidConfig(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}

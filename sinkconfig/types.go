// Package sinkconfig provides shared type definitions for the S3 sink
// connector configuration surface.
package sinkconfig

import (
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// Format identifies a serialization format implementation for data, keys,
// or headers. The value is an opaque token: the built-in identifiers below
// are what the stock connector ships, but user-supplied custom tokens are
// accepted everywhere a Format is consumed.
type Format string

// Built-in format identifiers
const (
	// FormatAvro writes records as Avro container files
	FormatAvro Format = "avro"

	// FormatParquet writes records as Parquet files
	FormatParquet Format = "parquet"

	// FormatJSON writes records as newline-delimited JSON
	FormatJSON Format = "json"

	// FormatByteArray writes record values as raw delimited bytes
	FormatByteArray Format = "bytearray"
)

// CompressionType represents the output compression codec.
type CompressionType string

// Supported compression codecs
const (
	// CompressionNone disables output compression
	CompressionNone CompressionType = "none"

	// CompressionGzip compresses output with gzip
	CompressionGzip CompressionType = "gzip"
)

// Configuration keys for the connector fields covered by validation.
// These are the stable identifiers used both to source values from the
// resolved configuration map and to key the per-field validation outcome.
const (
	// FormatClassKey selects the data format implementation
	FormatClassKey = "format.class"

	// StoreKeysKey enables persisting record keys alongside values
	StoreKeysKey = "store.kafka.keys"

	// KeysFormatClassKey selects the format implementation for record keys
	KeysFormatClassKey = "keys.format.class"

	// StoreHeadersKey enables persisting record headers alongside values
	StoreHeadersKey = "store.kafka.headers"

	// HeadersFormatClassKey selects the format implementation for record headers
	HeadersFormatClassKey = "headers.format.class"

	// CompressionTypeKey selects the output compression codec
	CompressionTypeKey = "s3.compression.type"

	// BucketNameKey names the destination S3 bucket
	BucketNameKey = "s3.bucket.name"
)

// Config is a fully-resolved connector configuration snapshot. It is
// immutable for the duration of one validation call; validation is a pure
// function of this snapshot plus the bucket-existence fact.
type Config struct {
	// Format is the data format implementation, always relevant
	Format Format

	// StoreKeys enables key persistence; KeysFormat only matters when set
	StoreKeys bool

	// KeysFormat is the format implementation for record keys
	KeysFormat Format

	// StoreHeaders enables header persistence; HeadersFormat only matters when set
	StoreHeaders bool

	// HeadersFormat is the format implementation for record headers
	HeadersFormat Format

	// CompressionType is the output compression codec
	CompressionType CompressionType

	// BucketName is the destination S3 bucket
	BucketName string
}

// ClientConfig holds the configuration for the S3 client.
type ClientConfig struct {
	// Region is the AWS region
	Region string

	// MaxRetries is the maximum retry attempts for failed requests
	MaxRetries int

	// Timeout is the per-request timeout
	Timeout time.Duration

	// Endpoint is a custom S3 endpoint URL for S3-compatible services
	Endpoint string

	// ForcePathStyle forces path-style URLs instead of virtual-hosted style
	ForcePathStyle bool

	// CustomAWSConfig overrides default AWS configuration loading
	CustomAWSConfig *aws.Config

	// HTTPClient is a custom HTTP client for S3 requests
	HTTPClient *http.Client
}

// Option is a functional option for configuring the S3 client.
type Option func(*ClientConfig)

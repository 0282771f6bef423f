// Package testutil provides a builder for creating test configuration snapshots.
package testutil

import (
	"github.com/bjoernhaeuser/kafka-connect-storage-cloud/sinkconfig"
)

// ConfigBuilder provides a fluent interface for building Config snapshots in tests.
// The zero builder produces a valid baseline: json data format, no key or
// header persistence, gzip disabled, and a well-formed bucket name.
type ConfigBuilder struct {
	cfg sinkconfig.Config
}

// NewConfigBuilder creates a ConfigBuilder with the valid baseline snapshot.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: sinkconfig.Config{
			Format:          sinkconfig.FormatJSON,
			KeysFormat:      sinkconfig.FormatJSON,
			HeadersFormat:   sinkconfig.FormatJSON,
			CompressionType: sinkconfig.CompressionNone,
			BucketName:      "test-sink-bucket",
		},
	}
}

// Build returns the configured snapshot.
func (b *ConfigBuilder) Build() sinkconfig.Config {
	return b.cfg
}

// WithFormat sets the data format.
func (b *ConfigBuilder) WithFormat(format sinkconfig.Format) *ConfigBuilder {
	b.cfg.Format = format
	return b
}

// WithKeys enables key persistence with the given keys format.
func (b *ConfigBuilder) WithKeys(format sinkconfig.Format) *ConfigBuilder {
	b.cfg.StoreKeys = true
	b.cfg.KeysFormat = format
	return b
}

// WithKeysFormat sets the keys format without enabling key persistence.
func (b *ConfigBuilder) WithKeysFormat(format sinkconfig.Format) *ConfigBuilder {
	b.cfg.KeysFormat = format
	return b
}

// WithHeaders enables header persistence with the given headers format.
func (b *ConfigBuilder) WithHeaders(format sinkconfig.Format) *ConfigBuilder {
	b.cfg.StoreHeaders = true
	b.cfg.HeadersFormat = format
	return b
}

// WithHeadersFormat sets the headers format without enabling header persistence.
func (b *ConfigBuilder) WithHeadersFormat(format sinkconfig.Format) *ConfigBuilder {
	b.cfg.HeadersFormat = format
	return b
}

// WithCompression sets the compression type.
func (b *ConfigBuilder) WithCompression(compression sinkconfig.CompressionType) *ConfigBuilder {
	b.cfg.CompressionType = compression
	return b
}

// WithBucket sets the destination bucket name.
func (b *ConfigBuilder) WithBucket(bucket string) *ConfigBuilder {
	b.cfg.BucketName = bucket
	return b
}

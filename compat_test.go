// Package s3sink provides tests for the compatibility rule engine.
package s3sink

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjoernhaeuser/kafka-connect-storage-cloud/internal/testutil"
	"github.com/bjoernhaeuser/kafka-connect-storage-cloud/sinkconfig"
)

// TestCompatibilityPolicy_Evaluate_NoneCompression tests that disabled
// compression suppresses every compatibility violation regardless of the
// format and flag values.
func TestCompatibilityPolicy_Evaluate_NoneCompression(t *testing.T) {
	policy := DefaultCompatibilityPolicy()

	formats := []sinkconfig.Format{
		sinkconfig.FormatAvro,
		sinkconfig.FormatParquet,
		sinkconfig.FormatJSON,
		sinkconfig.FormatByteArray,
		sinkconfig.Format("com.example.CustomFormat"),
	}

	for _, format := range formats {
		for _, storeKeys := range []bool{true, false} {
			for _, storeHeaders := range []bool{true, false} {
				name := fmt.Sprintf("%s/keys=%v/headers=%v", format, storeKeys, storeHeaders)
				t.Run(name, func(t *testing.T) {
					cfg := sinkconfig.Config{
						Format:          format,
						StoreKeys:       storeKeys,
						KeysFormat:      sinkconfig.FormatAvro,
						StoreHeaders:    storeHeaders,
						HeadersFormat:   sinkconfig.FormatParquet,
						CompressionType: sinkconfig.CompressionNone,
						BucketName:      "test-sink-bucket",
					}

					outcome := policy.Evaluate(cfg)
					assert.True(t, outcome.Valid())
					assert.Empty(t, outcome)
				})
			}
		}
	}
}

// TestCompatibilityPolicy_Evaluate_DataFormat tests the data format check
// under gzip compression.
func TestCompatibilityPolicy_Evaluate_DataFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    sinkconfig.Format
		wantError bool
	}{
		{
			name:      "avro is not compression safe",
			format:    sinkconfig.FormatAvro,
			wantError: true,
		},
		{
			name:      "parquet is not compression safe",
			format:    sinkconfig.FormatParquet,
			wantError: true,
		},
		{
			name:      "json is compression safe",
			format:    sinkconfig.FormatJSON,
			wantError: false,
		},
		{
			name:      "bytearray is compression safe",
			format:    sinkconfig.FormatByteArray,
			wantError: false,
		},
		{
			name:      "custom format is never compression safe",
			format:    sinkconfig.Format("com.example.CustomFormat"),
			wantError: true,
		},
	}

	policy := DefaultCompatibilityPolicy()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testutil.NewConfigBuilder().
				WithFormat(tt.format).
				WithCompression(sinkconfig.CompressionGzip).
				Build()

			outcome := policy.Evaluate(cfg)

			if !tt.wantError {
				assert.Empty(t, outcome.Messages(sinkconfig.FormatClassKey))
				assert.Empty(t, outcome.Messages(sinkconfig.CompressionTypeKey))
				return
			}

			want := fmt.Sprintf(
				"Compression type 'gzip' is not compatible with the data format class '%s'.",
				tt.format,
			)
			assert.Equal(t, []string{want}, outcome.Messages(sinkconfig.FormatClassKey))
			assert.Equal(t, []string{want}, outcome.Messages(sinkconfig.CompressionTypeKey))
		})
	}
}

// TestCompatibilityPolicy_Evaluate_KeysGating tests that the keys check only
// fires while key persistence is enabled.
func TestCompatibilityPolicy_Evaluate_KeysGating(t *testing.T) {
	policy := DefaultCompatibilityPolicy()

	t.Run("disabled keys ignore an unsafe keys format", func(t *testing.T) {
		cfg := testutil.NewConfigBuilder().
			WithKeysFormat(sinkconfig.FormatAvro).
			WithCompression(sinkconfig.CompressionGzip).
			Build()
		require.False(t, cfg.StoreKeys)

		outcome := policy.Evaluate(cfg)
		assert.True(t, outcome.Valid())
	})

	t.Run("enabled keys with unsafe format fire on three keys", func(t *testing.T) {
		cfg := testutil.NewConfigBuilder().
			WithKeys(sinkconfig.FormatAvro).
			WithCompression(sinkconfig.CompressionGzip).
			Build()

		outcome := policy.Evaluate(cfg)

		want := "Compression type 'gzip' is not compatible with the keys format class 'avro'."
		assert.Equal(t, []string{want}, outcome.Messages(sinkconfig.StoreKeysKey))
		assert.Equal(t, []string{want}, outcome.Messages(sinkconfig.KeysFormatClassKey))
		assert.Equal(t, []string{want}, outcome.Messages(sinkconfig.CompressionTypeKey))

		// The data format is json, so the data check stays silent.
		assert.Empty(t, outcome.Messages(sinkconfig.FormatClassKey))
	})

	t.Run("enabled keys with safe format stay silent", func(t *testing.T) {
		cfg := testutil.NewConfigBuilder().
			WithKeys(sinkconfig.FormatByteArray).
			WithCompression(sinkconfig.CompressionGzip).
			Build()

		outcome := policy.Evaluate(cfg)
		assert.True(t, outcome.Valid())
	})
}

// TestCompatibilityPolicy_Evaluate_HeadersGating tests that the headers check
// mirrors the keys check, gated on header persistence.
func TestCompatibilityPolicy_Evaluate_HeadersGating(t *testing.T) {
	policy := DefaultCompatibilityPolicy()

	t.Run("disabled headers ignore an unsafe headers format", func(t *testing.T) {
		cfg := testutil.NewConfigBuilder().
			WithHeadersFormat(sinkconfig.FormatParquet).
			WithCompression(sinkconfig.CompressionGzip).
			Build()

		outcome := policy.Evaluate(cfg)
		assert.True(t, outcome.Valid())
	})

	t.Run("enabled headers with unsafe format fire on three keys", func(t *testing.T) {
		cfg := testutil.NewConfigBuilder().
			WithHeaders(sinkconfig.FormatParquet).
			WithCompression(sinkconfig.CompressionGzip).
			Build()

		outcome := policy.Evaluate(cfg)

		want := "Compression type 'gzip' is not compatible with the headers format class 'parquet'."
		assert.Equal(t, []string{want}, outcome.Messages(sinkconfig.StoreHeadersKey))
		assert.Equal(t, []string{want}, outcome.Messages(sinkconfig.HeadersFormatClassKey))
		assert.Equal(t, []string{want}, outcome.Messages(sinkconfig.CompressionTypeKey))
	})
}

// TestCompatibilityPolicy_Evaluate_Additivity tests that independent checks
// accumulate without short-circuiting each other, and that the
// compression-type key collects one message per failing role in detection
// order.
func TestCompatibilityPolicy_Evaluate_Additivity(t *testing.T) {
	policy := DefaultCompatibilityPolicy()

	cfg := testutil.NewConfigBuilder().
		WithFormat(sinkconfig.FormatAvro).
		WithKeys(sinkconfig.FormatParquet).
		WithHeaders(sinkconfig.FormatAvro).
		WithCompression(sinkconfig.CompressionGzip).
		Build()

	outcome := policy.Evaluate(cfg)

	dataMsg := "Compression type 'gzip' is not compatible with the data format class 'avro'."
	keysMsg := "Compression type 'gzip' is not compatible with the keys format class 'parquet'."
	headersMsg := "Compression type 'gzip' is not compatible with the headers format class 'avro'."

	assert.Equal(t, []string{dataMsg}, outcome.Messages(sinkconfig.FormatClassKey))
	assert.Equal(t, []string{keysMsg}, outcome.Messages(sinkconfig.StoreKeysKey))
	assert.Equal(t, []string{keysMsg}, outcome.Messages(sinkconfig.KeysFormatClassKey))
	assert.Equal(t, []string{headersMsg}, outcome.Messages(sinkconfig.StoreHeadersKey))
	assert.Equal(t, []string{headersMsg}, outcome.Messages(sinkconfig.HeadersFormatClassKey))

	// All three roles land on the compression key, nothing merged away.
	assert.Equal(t,
		[]string{dataMsg, keysMsg, headersMsg},
		outcome.Messages(sinkconfig.CompressionTypeKey),
	)
}

// TestCompatibilityPolicy_Evaluate_ValidGzipSnapshot tests the fully valid
// gzip configuration: safe data format with keys and headers disabled.
func TestCompatibilityPolicy_Evaluate_ValidGzipSnapshot(t *testing.T) {
	policy := DefaultCompatibilityPolicy()

	cfg := testutil.NewConfigBuilder().
		WithCompression(sinkconfig.CompressionGzip).
		Build()

	outcome := policy.Evaluate(cfg)
	assert.True(t, outcome.Valid())
	assert.Empty(t, outcome)
}

// TestNewCompatibilityPolicy_CustomSafeSet tests that the safe set is
// injectable without touching engine logic.
func TestNewCompatibilityPolicy_CustomSafeSet(t *testing.T) {
	custom := sinkconfig.Format("com.example.SplittableFormat")
	policy := NewCompatibilityPolicy(sinkconfig.FormatJSON, custom)

	assert.True(t, policy.CompressionSafe(custom))
	assert.False(t, policy.CompressionSafe(sinkconfig.FormatByteArray))

	cfg := testutil.NewConfigBuilder().
		WithFormat(custom).
		WithCompression(sinkconfig.CompressionGzip).
		Build()

	outcome := policy.Evaluate(cfg)
	assert.True(t, outcome.Valid())
}

// TestCompatibilityPolicy_Evaluate_ZeroPolicy tests that the zero safe set
// treats every format as unsafe.
func TestCompatibilityPolicy_Evaluate_ZeroPolicy(t *testing.T) {
	policy := NewCompatibilityPolicy()

	cfg := testutil.NewConfigBuilder().
		WithCompression(sinkconfig.CompressionGzip).
		Build()

	outcome := policy.Evaluate(cfg)
	assert.Len(t, outcome.Messages(sinkconfig.FormatClassKey), 1)
}

// TestCompatibilityPolicy_Evaluate_Concurrent tests that one policy can be
// shared by concurrent callers with distinct snapshots.
func TestCompatibilityPolicy_Evaluate_Concurrent(t *testing.T) {
	policy := DefaultCompatibilityPolicy()

	const numGoroutines = 10
	const numEvaluations = 100

	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < numEvaluations; j++ {
				cfg := testutil.NewConfigBuilder().
					WithFormat(sinkconfig.FormatAvro).
					WithCompression(sinkconfig.CompressionGzip).
					Build()

				outcome := policy.Evaluate(cfg)
				assert.Len(t, outcome.Messages(sinkconfig.FormatClassKey), 1)
			}
		}(i)
	}
	wg.Wait()
}

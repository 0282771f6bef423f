package s3sink

import (
	"fmt"

	"github.com/bjoernhaeuser/kafka-connect-storage-cloud/sinkconfig"
)

// CompressionFormatErrorMessage is the template for every format/compression
// compatibility violation, parameterized by compression type, role, and the
// offending format identifier.
const CompressionFormatErrorMessage = "Compression type '%s' is not compatible with the %s format class '%s'."

// BucketNotExistsErrorMessage is the fixed message recorded against the
// bucket-name key when the destination bucket does not exist.
const BucketNotExistsErrorMessage = "The specified S3 bucket does not exist."

// Roles identify which value-stream a compatibility check concerns.
const (
	// RoleData is the record value stream
	RoleData = "data"

	// RoleKeys is the record key stream
	RoleKeys = "keys"

	// RoleHeaders is the record header stream
	RoleHeaders = "headers"
)

// CompatibilityPolicy decides which format selections are valid under
// output compression. Safety is a membership test on format identity: any
// identifier outside the safe set, including user-supplied custom ones, is
// treated as unsafe. The zero policy considers every format unsafe; use
// DefaultCompatibilityPolicy for the stock safe set.
//
// A policy is immutable after construction and safe for concurrent use.
type CompatibilityPolicy struct {
	safeFormats map[sinkconfig.Format]struct{}
}

// NewCompatibilityPolicy creates a policy with the given compression-safe
// format identifiers.
func NewCompatibilityPolicy(safeFormats ...sinkconfig.Format) *CompatibilityPolicy {
	safe := make(map[sinkconfig.Format]struct{}, len(safeFormats))
	for _, format := range safeFormats {
		safe[format] = struct{}{}
	}
	return &CompatibilityPolicy{safeFormats: safe}
}

// DefaultCompatibilityPolicy creates a policy with the stock safe set:
// json and bytearray are the only formats whose output stays readable
// under block compression.
func DefaultCompatibilityPolicy() *CompatibilityPolicy {
	return NewCompatibilityPolicy(sinkconfig.FormatJSON, sinkconfig.FormatByteArray)
}

// CompressionSafe reports whether a format identifier belongs to the safe set.
func (p *CompatibilityPolicy) CompressionSafe(format sinkconfig.Format) bool {
	_, ok := p.safeFormats[format]
	return ok
}

// Evaluate applies the compatibility rules to a configuration snapshot and
// returns the per-key violations. It is a pure function: no I/O, no state,
// and the bucket check is deliberately not part of it.
//
// Disabled compression is the universal escape clause: with compression set
// to none no combination of formats and flags produces a violation. Under
// compression, the data, keys, and headers checks are independent and
// additive, so one snapshot can fail several of them at once and the
// compression-type key accumulates one message per failing role.
func (p *CompatibilityPolicy) Evaluate(cfg sinkconfig.Config) sinkconfig.Outcome {
	outcome := sinkconfig.NewOutcome()

	if cfg.CompressionType == sinkconfig.CompressionNone {
		return outcome
	}

	if !p.CompressionSafe(cfg.Format) {
		message := formatViolation(cfg.CompressionType, RoleData, cfg.Format)
		outcome.Add(sinkconfig.FormatClassKey, message)
		outcome.Add(sinkconfig.CompressionTypeKey, message)
	}

	// An unsafe keys format is irrelevant while keys are not persisted.
	if cfg.StoreKeys && !p.CompressionSafe(cfg.KeysFormat) {
		message := formatViolation(cfg.CompressionType, RoleKeys, cfg.KeysFormat)
		outcome.Add(sinkconfig.StoreKeysKey, message)
		outcome.Add(sinkconfig.KeysFormatClassKey, message)
		outcome.Add(sinkconfig.CompressionTypeKey, message)
	}

	if cfg.StoreHeaders && !p.CompressionSafe(cfg.HeadersFormat) {
		message := formatViolation(cfg.CompressionType, RoleHeaders, cfg.HeadersFormat)
		outcome.Add(sinkconfig.StoreHeadersKey, message)
		outcome.Add(sinkconfig.HeadersFormatClassKey, message)
		outcome.Add(sinkconfig.CompressionTypeKey, message)
	}

	return outcome
}

// formatViolation renders the shared compatibility message template.
func formatViolation(compression sinkconfig.CompressionType, role string, format sinkconfig.Format) string {
	return fmt.Sprintf(CompressionFormatErrorMessage, compression, role, format)
}

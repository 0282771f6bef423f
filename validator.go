package s3sink

import (
	"context"

	"go.uber.org/zap"

	"github.com/bjoernhaeuser/kafka-connect-storage-cloud/sinkconfig"
)

// BucketChecker is the storage capability the validator needs: answering
// whether a named bucket exists. *Client implements it; hosts with their
// own storage client can supply any implementation.
type BucketChecker interface {
	BucketExists(ctx context.Context, bucket string) (bool, error)
}

// Validator combines the compatibility rule engine with the bucket
// reachability check and merges their results into one outcome. It holds
// no mutable state and is safe for concurrent use with distinct snapshots.
type Validator struct {
	policy  *CompatibilityPolicy
	checker BucketChecker
	logger  *zap.Logger
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithPolicy replaces the default compatibility policy. Use this to extend
// the compression-safe format set without touching engine logic.
func WithPolicy(policy *CompatibilityPolicy) ValidatorOption {
	return func(v *Validator) {
		v.policy = policy
	}
}

// WithLogger sets the logger used for validation diagnostics.
// Default is a no-op logger.
func WithLogger(logger *zap.Logger) ValidatorOption {
	return func(v *Validator) {
		v.logger = logger
	}
}

// NewValidator creates a Validator backed by the given bucket checker.
func NewValidator(checker BucketChecker, opts ...ValidatorOption) *Validator {
	v := &Validator{
		policy:  DefaultCompatibilityPolicy(),
		checker: checker,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate evaluates the compatibility rules and the bucket reachability
// check for one configuration snapshot and returns the merged per-key
// outcome. Every rule runs to completion; no violation stops another check
// from running, and the bucket check runs even when compression is
// disabled.
//
// A storage access failure while checking the bucket is returned as an
// error, never folded into the outcome: the caller decides whether to
// abort or surface it, but it must not masquerade as a missing bucket.
// Existence is re-checked on every call; results are not cached.
func (v *Validator) Validate(ctx context.Context, cfg sinkconfig.Config) (sinkconfig.Outcome, error) {
	outcome := v.policy.Evaluate(cfg)

	v.logger.Debug("evaluated compatibility rules",
		zap.String("compression", string(cfg.CompressionType)),
		zap.Int("keys_with_violations", len(outcome)))

	exists, err := v.checker.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, err
	}

	v.logger.Debug("checked bucket existence",
		zap.String("bucket", cfg.BucketName),
		zap.Bool("exists", exists))

	if !exists {
		outcome.Add(sinkconfig.BucketNameKey, BucketNotExistsErrorMessage)
	}

	return outcome, nil
}

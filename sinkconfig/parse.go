package sinkconfig

import (
	"fmt"
	"strconv"

	"github.com/bjoernhaeuser/kafka-connect-storage-cloud/errors"
)

// ParseConfig builds a Config snapshot from a resolved key-value
// configuration map, using the stable configuration keys declared in this
// package. Format tokens pass through verbatim so custom format
// implementations remain addressable. Boolean flags default to false when
// absent; the compression type defaults to none.
//
// Returns ErrInvalidConfig if a required key is missing, a flag is not a
// valid boolean, or the compression type names an unknown codec.
func ParseConfig(props map[string]string) (Config, error) {
	cfg := Config{
		CompressionType: CompressionNone,
	}

	format, ok := props[FormatClassKey]
	if !ok || format == "" {
		return Config{}, errors.NewError("parseConfig", errors.ErrInvalidConfig).
			WithKey(FormatClassKey).
			WithMessage("format class is required")
	}
	cfg.Format = Format(format)

	bucket, ok := props[BucketNameKey]
	if !ok || bucket == "" {
		return Config{}, errors.NewError("parseConfig", errors.ErrInvalidConfig).
			WithKey(BucketNameKey).
			WithMessage("bucket name is required")
	}
	cfg.BucketName = bucket

	var err error
	if cfg.StoreKeys, err = parseFlag(props, StoreKeysKey); err != nil {
		return Config{}, err
	}
	if cfg.StoreHeaders, err = parseFlag(props, StoreHeadersKey); err != nil {
		return Config{}, err
	}

	cfg.KeysFormat = Format(props[KeysFormatClassKey])
	cfg.HeadersFormat = Format(props[HeadersFormatClassKey])

	if raw, ok := props[CompressionTypeKey]; ok {
		switch CompressionType(raw) {
		case CompressionNone, CompressionGzip:
			cfg.CompressionType = CompressionType(raw)
		default:
			return Config{}, errors.NewError("parseConfig", errors.ErrInvalidConfig).
				WithKey(CompressionTypeKey).
				WithMessage(fmt.Sprintf("unknown compression type %q", raw))
		}
	}

	return cfg, nil
}

// parseFlag reads an optional boolean key, treating absence as false.
func parseFlag(props map[string]string, key string) (bool, error) {
	raw, ok := props[key]
	if !ok || raw == "" {
		return false, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.NewError("parseConfig", errors.ErrInvalidConfig).
			WithKey(key).
			WithMessage(fmt.Sprintf("expected boolean, got %q", raw))
	}
	return value, nil
}

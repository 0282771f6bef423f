package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// loadSettings reads a TOML connector settings file into the flat key-value
// map the validator consumes. Connector keys contain dots, so both quoted
// flat keys ("format.class" = "json") and nested tables ([s3] bucket.name)
// are accepted; nested tables are flattened with dot-joined paths. Scalar
// values are rendered as strings, matching the connector's property model.
func loadSettings(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings file: %w", err)
	}

	var tree map[string]any
	if err := toml.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("parsing settings file: %w", err)
	}

	props := make(map[string]string)
	flatten("", tree, props)
	return props, nil
}

func flatten(prefix string, tree map[string]any, props map[string]string) {
	for key, value := range tree {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]any:
			flatten(full, v, props)
		default:
			props[full] = fmt.Sprint(v)
		}
	}
}

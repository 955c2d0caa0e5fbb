package schematic

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Parse decodes a component schematic from JSON or YAML.
//
// YAML input is converted to JSON before decoding, so both forms share
// one set of field names, defaults, and enum domains. Decode failures are
// returned as a *SchemaError.
func Parse(data []byte) (*Component, error) {
	var c Component
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, &SchemaError{Err: err}
	}
	return &c, nil
}

// ParseString parses a schematic from a string, a convenience for tests
// and prototyping.
func ParseString(s string) (*Component, error) {
	return Parse([]byte(s))
}

// LoadFile reads a schematic file from disk and parses it.
func LoadFile(path string) (*Component, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schematic file: %w", err)
	}
	return Parse(data)
}

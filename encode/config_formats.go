package encode

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ToYAML marshals v to YAML.
func ToYAML[T any](v T) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("to yaml: %w", err)
	}
	return data, nil
}

// FromYAML unmarshals YAML data into a fresh T.
func FromYAML[T any](data []byte) (T, error) {
	var v T
	if err := yaml.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, fmt.Errorf("from yaml: %w", err)
	}
	return v, nil
}

// FromTOML unmarshals TOML data into a fresh T.
func FromTOML[T any](data []byte) (T, error) {
	var v T
	if err := toml.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, fmt.Errorf("from toml: %w", err)
	}
	return v, nil
}

package field

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// UnmarshalYAML implements goccy/go-yaml InterfaceUnmarshaler.
// Accepts:
//   - Scalar: "name"
//   - Single-key map: {display: upper}
func (s *Spec) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any

	err := unmarshal(&raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}

	if ordered, ok := raw.(yaml.MapSlice); ok {
		raw = ordered.ToMap()
	}

	spec, err := Parse(raw)
	if err != nil {
		return err
	}

	*s = spec

	return nil
}

// MarshalYAML implements goccy/go-yaml InterfaceMarshaler.
// Named specs are emitted as a scalar, aliases as a single-key map.
func (s Spec) MarshalYAML() (any, error) {
	if !s.aliased {
		return s.key, nil
	}

	return map[string]any{s.key: s.descriptor}, nil
}

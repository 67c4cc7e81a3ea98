package field

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSpec is returned when a value cannot be interpreted as a field spec.
var ErrInvalidSpec = errors.New("invalid field spec")

// ErrEmptyName is returned when a field name or alias key is empty.
var ErrEmptyName = errors.New("field name must not be empty")

// ErrMultiKeyAlias is returned when an alias mapping holds more than one key.
var ErrMultiKeyAlias = errors.New("alias mapping must have exactly one key")

// Spec declares one serializer output field.
// The zero value is not a valid spec; use Named or Aliased.
type Spec struct {
	key        string
	descriptor any
	aliased    bool
}

// Named returns a spec exposing the model attribute name under the same key.
func Named(name string) Spec {
	return Spec{key: name, descriptor: nil, aliased: false}
}

// Aliased returns a spec exposing key with the given descriptor.
func Aliased(key string, descriptor any) Spec {
	return Spec{key: key, descriptor: descriptor, aliased: true}
}

// Names converts attribute names to Named specs.
func Names(names ...string) []Spec {
	specs := make([]Spec, len(names))
	for i, name := range names {
		specs[i] = Named(name)
	}

	return specs
}

// Key returns the output key of the field.
func (s Spec) Key() string {
	return s.key
}

// IsAliased reports whether the spec is an alias rather than a bare attribute name.
func (s Spec) IsAliased() bool {
	return s.aliased
}

// Descriptor returns the alias descriptor. It is nil for Named specs.
func (s Spec) Descriptor() any {
	return s.descriptor
}

// String returns the key, prefixed with "~" for aliases.
func (s Spec) String() string {
	if s.aliased {
		return "~" + s.key
	}

	return s.key
}

// Validate checks that the spec has a non-empty key.
func (s Spec) Validate() error {
	if strings.TrimSpace(s.key) == "" {
		return ErrEmptyName
	}

	return nil
}

// Keys returns the output keys of specs, in order.
func Keys(specs []Spec) []string {
	keys := make([]string, len(specs))
	for i, spec := range specs {
		keys[i] = spec.key
	}

	return keys
}

// Parse converts a loose value into a Spec.
// Strings become Named specs; single-key maps become Aliased specs.
func Parse(value any) (Spec, error) {
	var (
		spec Spec
		err  error
	)

	switch typed := value.(type) {
	case Spec:
		spec = typed
	case string:
		spec = Named(typed)
	case map[string]any:
		spec, err = fromStringMap(typed)
	case map[any]any:
		spec, err = fromAnyMap(typed)
	default:
		return Spec{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidSpec, value)
	}

	if err != nil {
		return Spec{}, err
	}

	err = spec.Validate()
	if err != nil {
		return Spec{}, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}

	return spec, nil
}

// ParseList converts a loose list into specs.
// It accepts []Spec, []string and []any; nil yields an empty list.
func ParseList(value any) ([]Spec, error) {
	switch typed := value.(type) {
	case nil:
		return []Spec{}, nil
	case []Spec:
		for i, spec := range typed {
			err := spec.Validate()
			if err != nil {
				return nil, fmt.Errorf("%w: element %d: %w", ErrInvalidSpec, i, err)
			}
		}

		return append([]Spec{}, typed...), nil
	case []string:
		return ParseList(toAnySlice(typed))
	case []any:
		specs := make([]Spec, 0, len(typed))

		for i, item := range typed {
			spec, err := Parse(item)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}

			specs = append(specs, spec)
		}

		return specs, nil
	default:
		return nil, fmt.Errorf("%w: expected a list, got %T", ErrInvalidSpec, value)
	}
}

func fromStringMap(m map[string]any) (Spec, error) {
	if len(m) != 1 {
		return Spec{}, fmt.Errorf("%w: got %d keys", ErrMultiKeyAlias, len(m))
	}

	for key, descriptor := range m {
		return Aliased(key, descriptor), nil
	}

	return Spec{}, ErrInvalidSpec
}

func fromAnyMap(m map[any]any) (Spec, error) {
	if len(m) != 1 {
		return Spec{}, fmt.Errorf("%w: got %d keys", ErrMultiKeyAlias, len(m))
	}

	for rawKey, descriptor := range m {
		key, ok := rawKey.(string)
		if !ok {
			return Spec{}, fmt.Errorf("%w: alias key must be a string, got %T", ErrInvalidSpec, rawKey)
		}

		return Aliased(key, descriptor), nil
	}

	return Spec{}, ErrInvalidSpec
}

func toAnySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}

	return out
}

package serializer

import (
	"fmt"
	"maps"
	"slices"

	"github.com/0xalexb/hjarta-serializer/field"
	"github.com/0xalexb/hjarta-serializer/model"
)

// Declaration is the mutable, declaration-time configuration of a serializer.
// It is not safe for concurrent use.
type Declaration struct {
	name               string
	model              model.Schema
	fields             []field.Spec
	readOnlyFields     []field.Spec
	excludeFields      []string
	acceptedParameters []string
	extra              map[string]any
	pending            []IncludedFunc
}

// Declare creates a named Declaration and applies opts to it.
func Declare(name string, opts ...Option) (*Declaration, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	d := &Declaration{name: name}

	return d.Apply(opts...)
}

// Name returns the serializer name.
func (d *Declaration) Name() string {
	return d.name
}

// Apply merges opts into the declaration and then runs the included hooks
// registered by them, in order. A hook error is returned as is, wrapped.
func (d *Declaration) Apply(opts ...Option) (*Declaration, error) {
	for _, apply := range opts {
		apply(d)
	}

	hooks := d.pending
	d.pending = nil

	for _, hook := range hooks {
		err := hook(d)
		if err != nil {
			return nil, fmt.Errorf("%s: included hook: %w", d.name, err)
		}
	}

	return d, nil
}

// Extend creates a child declaration that starts from a copy of d.
func (d *Declaration) Extend(name string, opts ...Option) (*Declaration, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	child := &Declaration{
		name:               name,
		model:              d.model,
		fields:             slices.Clone(d.fields),
		readOnlyFields:     slices.Clone(d.readOnlyFields),
		excludeFields:      slices.Clone(d.excludeFields),
		acceptedParameters: slices.Clone(d.acceptedParameters),
		extra:              maps.Clone(d.extra),
		pending:            nil,
	}

	return child.Apply(opts...)
}

// Config snapshots the declaration into an immutable Config.
func (d *Declaration) Config() *Config {
	accepted := make(map[string]struct{}, len(d.acceptedParameters))
	for _, key := range d.acceptedParameters {
		accepted[key] = struct{}{}
	}

	extra := maps.Clone(d.extra)
	if extra == nil {
		extra = map[string]any{}
	}

	return &Config{
		name:           d.name,
		model:          d.model,
		fields:         cloneOrEmpty(d.fields),
		readOnlyFields: cloneOrEmpty(d.readOnlyFields),
		excludeFields:  cloneOrEmpty(d.excludeFields),
		acceptedList:   cloneOrEmpty(d.acceptedParameters),
		accepted:       accepted,
		extra:          extra,
	}
}

// New resolves a serializer from a snapshot of the declaration.
func (d *Declaration) New(params Params) (*Serializer, error) {
	return New(d.Config(), params)
}

func cloneOrEmpty[T any](values []T) []T {
	if values == nil {
		return []T{}
	}

	return slices.Clone(values)
}

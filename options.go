package serializer

import (
	"slices"

	"github.com/0xalexb/hjarta-serializer/field"
	"github.com/0xalexb/hjarta-serializer/model"
)

// Reserved lifecycle keys. They are never stored as configuration.
const (
	KeyExtended = "extended"
	KeyIncluded = "included"
)

// Option defines a function type for applying configuration to a Declaration.
type Option func(*Declaration)

// IncludedFunc customizes a declaration while it is being configured.
type IncludedFunc func(*Declaration) error

// WithModel sets the model the serializer validates its fields against.
func WithModel(schema model.Schema) Option {
	return func(d *Declaration) {
		d.model = schema
	}
}

// WithFields sets the exposed fields. A later call replaces the list.
func WithFields(specs ...field.Spec) Option {
	return func(d *Declaration) {
		d.fields = slices.Clone(specs)
	}
}

// WithFieldNames is WithFields for bare attribute names.
func WithFieldNames(names ...string) Option {
	return WithFields(field.Names(names...)...)
}

// WithReadOnlyFields sets the read-only fields. They are exposed alongside Fields.
func WithReadOnlyFields(specs ...field.Spec) Option {
	return func(d *Declaration) {
		d.readOnlyFields = slices.Clone(specs)
	}
}

// WithReadOnlyFieldNames is WithReadOnlyFields for bare attribute names.
func WithReadOnlyFieldNames(names ...string) Option {
	return WithReadOnlyFields(field.Names(names...)...)
}

// WithExcludeFields sets the keys removed from the resolved fields.
func WithExcludeFields(keys ...string) Option {
	return func(d *Declaration) {
		d.excludeFields = slices.Clone(keys)
	}
}

// WithAcceptedParameters sets the Params keys accepted by New.
func WithAcceptedParameters(keys ...string) Option {
	return func(d *Declaration) {
		d.acceptedParameters = slices.Clone(keys)
	}
}

// WithExtra stores an arbitrary configuration value under key.
// The reserved keys "extended" and "included" are ignored.
func WithExtra(key string, value any) Option {
	return func(d *Declaration) {
		if key == KeyExtended || key == KeyIncluded {
			return
		}

		if d.extra == nil {
			d.extra = make(map[string]any)
		}

		d.extra[key] = value
	}
}

// WithIncluded registers a hook run once by Apply after its other options.
func WithIncluded(hook IncludedFunc) Option {
	return func(d *Declaration) {
		if hook != nil {
			d.pending = append(d.pending, hook)
		}
	}
}

package serializer

import (
	"maps"
	"slices"

	"github.com/0xalexb/hjarta-serializer/field"
	"github.com/0xalexb/hjarta-serializer/model"
)

// Config is an immutable snapshot of a Declaration. Accessors return copies.
type Config struct {
	name           string
	model          model.Schema
	fields         []field.Spec
	readOnlyFields []field.Spec
	excludeFields  []string
	acceptedList   []string
	accepted       map[string]struct{}
	extra          map[string]any
}

// Name returns the serializer name.
func (c *Config) Name() string {
	return c.name
}

// Model returns the model schema, or nil when none was declared.
func (c *Config) Model() model.Schema {
	return c.model
}

// Fields returns the declared fields.
func (c *Config) Fields() []field.Spec {
	return slices.Clone(c.fields)
}

// ReadOnlyFields returns the declared read-only fields.
func (c *Config) ReadOnlyFields() []field.Spec {
	return slices.Clone(c.readOnlyFields)
}

// ExcludeFields returns the excluded keys.
func (c *Config) ExcludeFields() []string {
	return slices.Clone(c.excludeFields)
}

// AcceptedParameters returns the Params keys accepted by New.
func (c *Config) AcceptedParameters() []string {
	return slices.Clone(c.acceptedList)
}

// Accepts reports whether key is an accepted parameter.
func (c *Config) Accepts(key string) bool {
	_, ok := c.accepted[key]

	return ok
}

// Extra returns the extra configuration value stored under key.
func (c *Config) Extra(key string) (any, bool) {
	value, ok := c.extra[key]

	return value, ok
}

// ExtraKeys returns the extra configuration keys, sorted.
func (c *Config) ExtraKeys() []string {
	return slices.Sorted(maps.Keys(c.extra))
}

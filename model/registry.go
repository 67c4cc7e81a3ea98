package model

import (
	"errors"
	"fmt"
	"slices"

	"github.com/puzpuzpuz/xsync/v3"
)

// ErrDuplicateModel is returned when a model name is registered twice.
var ErrDuplicateModel = errors.New("model already registered")

// ErrEmptyModelName is returned when registering a model under an empty name.
var ErrEmptyModelName = errors.New("model name must not be empty")

// ErrNilSchema is returned when registering a nil schema.
var ErrNilSchema = errors.New("schema must not be nil")

// Registry maps model names to schemas. It is safe for concurrent use.
type Registry struct {
	schemas *xsync.MapOf[string, Schema]
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		schemas: xsync.NewMapOf[string, Schema](),
	}
}

// Register adds schema under name.
func (r *Registry) Register(name string, schema Schema) error {
	if name == "" {
		return ErrEmptyModelName
	}

	if schema == nil {
		return fmt.Errorf("model %q: %w", name, ErrNilSchema)
	}

	_, loaded := r.schemas.LoadOrStore(name, schema)
	if loaded {
		return fmt.Errorf("model %q: %w", name, ErrDuplicateModel)
	}

	return nil
}

// Lookup returns the schema registered under name.
func (r *Registry) Lookup(name string) (Schema, bool) {
	return r.schemas.Load(name)
}

// Names returns the registered model names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.schemas.Size())

	r.schemas.Range(func(name string, _ Schema) bool {
		names = append(names, name)

		return true
	})

	slices.Sort(names)

	return names
}

package serializer

import (
	"fmt"
	"slices"

	"github.com/puzpuzpuz/xsync/v3"
)

// Registry maps serializer names to their Config. It is safe for concurrent use.
type Registry struct {
	configs *xsync.MapOf[string, *Config]
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		configs: xsync.NewMapOf[string, *Config](),
	}
}

// Register adds cfg under its name.
func (r *Registry) Register(cfg *Config) error {
	if cfg == nil {
		return ErrNilConfig
	}

	_, loaded := r.configs.LoadOrStore(cfg.name, cfg)
	if loaded {
		return fmt.Errorf("serializer %q: %w", cfg.name, ErrDuplicateSerializer)
	}

	return nil
}

// Lookup returns the Config registered under name.
func (r *Registry) Lookup(name string) (*Config, bool) {
	return r.configs.Load(name)
}

// New resolves the serializer registered under name with params.
func (r *Registry) New(name string, params Params) (*Serializer, error) {
	cfg, ok := r.configs.Load(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSerializer, name)
	}

	return New(cfg, params)
}

// Names returns the registered serializer names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.configs.Size())

	r.configs.Range(func(name string, _ *Config) bool {
		names = append(names, name)

		return true
	})

	slices.Sort(names)

	return names
}

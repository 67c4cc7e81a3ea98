package serializer

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/0xalexb/hjarta-serializer/field"
	"github.com/0xalexb/hjarta-serializer/model"

	"github.com/agnivade/levenshtein"
)

// ParamFields is the Params key that overrides the configured fields for one instance.
const ParamFields = "fields"

// maxSuggestionDistance bounds the edit distance of a "did you mean" suggestion.
const maxSuggestionDistance = 2

// Params holds per-instance overrides. Every key must be accepted by the Config.
type Params map[string]any

// Serializer is a resolved serializer instance. Its fields never change after New.
type Serializer struct {
	config     *Config
	attributes Params
	fields     []field.Spec
	keys       []string

	mu   sync.RWMutex
	data any
}

// New resolves cfg and params into a Serializer.
// It fails with *UnacceptedParameterError, *SchemaMismatchError or *EmptyFieldSetError.
func New(cfg *Config, params Params) (*Serializer, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	err := checkParams(cfg, params)
	if err != nil {
		return nil, err
	}

	fields := cfg.fields

	override, err := fieldOverride(params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.name, err)
	}

	if len(override) > 0 {
		fields = override
	}

	err = checkSchema(cfg, slices.Concat(fields, cfg.readOnlyFields))
	if err != nil {
		return nil, err
	}

	effective, err := effectiveFields(cfg, fields)
	if err != nil {
		return nil, err
	}

	keys := fieldKeys(effective, cfg.excludeFields)
	if len(keys) == 0 {
		return nil, &EmptyFieldSetError{Serializer: cfg.name}
	}

	slog.Debug("serializer resolved", slog.String("name", cfg.name), slog.Any("keys", keys))

	return &Serializer{
		config:     cfg,
		attributes: maps.Clone(params),
		fields:     effective,
		keys:       keys,
		mu:         sync.RWMutex{},
		data:       nil,
	}, nil
}

// Name returns the serializer name.
func (s *Serializer) Name() string {
	return s.config.name
}

// Config returns the configuration the serializer was resolved from.
func (s *Serializer) Config() *Config {
	return s.config
}

// Attributes returns a copy of the Params the serializer was created with.
func (s *Serializer) Attributes() Params {
	return maps.Clone(s.attributes)
}

// Fields returns the effective fields, before exclusion.
func (s *Serializer) Fields() []field.Spec {
	return slices.Clone(s.fields)
}

// FieldKeys returns the resolved output keys.
func (s *Serializer) FieldKeys() []string {
	return slices.Clone(s.keys)
}

// SetData stores the record to serialize, replacing any previous one.
func (s *Serializer) SetData(data any) {
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
}

// Data returns the stored record.
func (s *Serializer) Data() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.data
}

// GetData returns a channel that yields the stored record once and is then closed.
func (s *Serializer) GetData() <-chan any {
	ch := make(chan any, 1)
	ch <- s.Data()
	close(ch)

	return ch
}

func checkParams(cfg *Config, params Params) error {
	for _, key := range slices.Sorted(maps.Keys(params)) {
		if !cfg.Accepts(key) {
			return &UnacceptedParameterError{Parameter: key, Serializer: cfg.name}
		}
	}

	return nil
}

func fieldOverride(params Params) ([]field.Spec, error) {
	raw, ok := params[ParamFields]
	if !ok {
		return nil, nil
	}

	specs, err := field.ParseList(raw)
	if err != nil {
		return nil, fmt.Errorf("parameter %q: %w", ParamFields, err)
	}

	return specs, nil
}

// effectiveFields merges fields and read-only fields by key, keeping the first
// occurrence. With both empty it exposes every model attribute.
func effectiveFields(cfg *Config, fields []field.Spec) ([]field.Spec, error) {
	if len(fields) == 0 && len(cfg.readOnlyFields) == 0 {
		if cfg.model == nil {
			return nil, fmt.Errorf("%s: %w", cfg.name, ErrMissingModel)
		}

		return field.Names(cfg.model.AttributeNames()...), nil
	}

	seen := make(map[string]struct{}, len(fields)+len(cfg.readOnlyFields))
	effective := make([]field.Spec, 0, len(fields)+len(cfg.readOnlyFields))

	for _, spec := range slices.Concat(fields, cfg.readOnlyFields) {
		if _, dup := seen[spec.Key()]; dup {
			continue
		}

		seen[spec.Key()] = struct{}{}
		effective = append(effective, spec)
	}

	return effective, nil
}

// checkSchema validates every declared spec, duplicates included, and matches
// named specs against the model attributes.
func checkSchema(cfg *Config, specs []field.Spec) error {
	var attributes map[string]struct{}

	for _, spec := range specs {
		err := spec.Validate()
		if err != nil {
			return fmt.Errorf("%s: %w: %q: %w", cfg.name, field.ErrInvalidSpec, spec.String(), err)
		}

		if spec.IsAliased() {
			continue
		}

		if cfg.model == nil {
			return fmt.Errorf("%s: %w", cfg.name, ErrMissingModel)
		}

		if attributes == nil {
			attributes = nameSet(cfg.model)
		}

		if _, ok := attributes[spec.Key()]; !ok {
			return &SchemaMismatchError{
				Field:      spec.Key(),
				Model:      cfg.model.DisplayName(),
				Suggestion: suggest(spec.Key(), cfg.model.AttributeNames()),
			}
		}
	}

	return nil
}

func fieldKeys(effective []field.Spec, exclude []string) []string {
	keys := make([]string, 0, len(effective))

	for _, spec := range effective {
		if slices.Contains(exclude, spec.Key()) {
			continue
		}

		keys = append(keys, spec.Key())
	}

	return keys
}

func nameSet(schema model.Schema) map[string]struct{} {
	names := schema.AttributeNames()

	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}

	return set
}

// suggest returns the closest candidate within maxSuggestionDistance, or "".
func suggest(name string, candidates []string) string {
	best := ""
	bestDistance := maxSuggestionDistance + 1

	for _, candidate := range candidates {
		distance := levenshtein.ComputeDistance(name, candidate)
		if distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}

	return best
}

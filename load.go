package serializer

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-serializer/config"
	"github.com/0xalexb/hjarta-serializer/model"
)

// FromFile builds a Registry from a declarations file.
//
// Models declared in the file are registered into models; a nil models starts from
// an empty model registry. Serializers reference models by registry name. Every
// serializer is resolved once without params so configuration errors surface here.
func FromFile(file *config.File, models *model.Registry) (*Registry, error) {
	if models == nil {
		models = model.NewRegistry()
	}

	for _, decl := range file.Models {
		err := models.Register(decl.Name, model.Names(decl.DisplayName, decl.Attributes...))
		if err != nil {
			return nil, err
		}
	}

	registry := NewRegistry()
	declarations := make(map[string]*Declaration, len(file.Serializers))

	for _, decl := range file.Serializers {
		opts, err := declOptions(decl, models)
		if err != nil {
			return nil, err
		}

		d, err := declare(decl, declarations, opts)
		if err != nil {
			return nil, err
		}

		cfg := d.Config()

		resolved, err := New(cfg, nil)
		if err != nil {
			return nil, fmt.Errorf("serializer %q: %w", decl.Name, err)
		}

		err = registry.Register(cfg)
		if err != nil {
			return nil, err
		}

		declarations[decl.Name] = d

		slog.Info("serializer registered",
			slog.String("name", decl.Name),
			slog.Any("keys", resolved.FieldKeys()),
		)
	}

	return registry, nil
}

func declare(decl config.SerializerDecl, declared map[string]*Declaration, opts []Option) (*Declaration, error) {
	if decl.Extends == "" {
		return Declare(decl.Name, opts...)
	}

	parent, ok := declared[decl.Extends]
	if !ok {
		return nil, fmt.Errorf("serializer %q extends %w: %s", decl.Name, ErrUnknownSerializer, decl.Extends)
	}

	return parent.Extend(decl.Name, opts...)
}

func declOptions(decl config.SerializerDecl, models *model.Registry) ([]Option, error) {
	var opts []Option

	if decl.Model != "" {
		schema, ok := models.Lookup(decl.Model)
		if !ok {
			return nil, fmt.Errorf("serializer %q: %w: %s", decl.Name, ErrUnknownModel, decl.Model)
		}

		opts = append(opts, WithModel(schema))
	}

	if decl.AcceptedParameters != nil {
		opts = append(opts, WithAcceptedParameters(decl.AcceptedParameters...))
	}

	if decl.Fields != nil {
		opts = append(opts, WithFields(decl.Fields...))
	}

	if decl.ReadOnlyFields != nil {
		opts = append(opts, WithReadOnlyFields(decl.ReadOnlyFields...))
	}

	if decl.ExcludeFields != nil {
		opts = append(opts, WithExcludeFields(decl.ExcludeFields...))
	}

	for key, value := range decl.Extra {
		opts = append(opts, WithExtra(key, value))
	}

	return opts, nil
}

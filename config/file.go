package config

import (
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-serializer/field"
)

// ErrInvalidFile is returned when a declarations file fails validation.
var ErrInvalidFile = errors.New("invalid declarations file")

// File is the declarations file: model schemas and the serializers built on them.
type File struct {
	Models      []ModelDecl      `yaml:"models"`
	Serializers []SerializerDecl `yaml:"serializers"`
}

// ModelDecl declares a model schema by its attribute names.
type ModelDecl struct {
	Name        string   `yaml:"name"`
	DisplayName string   `yaml:"display_name"`
	Attributes  []string `yaml:"attributes"`
}

// SerializerDecl declares one serializer.
// Extends names a serializer declared earlier in the file to start from.
// Omitted lists are inherited; an explicit empty list clears the inherited one.
type SerializerDecl struct {
	Name               string         `yaml:"name"`
	Extends            string         `yaml:"extends"`
	Model              string         `yaml:"model"`
	AcceptedParameters []string       `yaml:"accepted_parameters"`
	Fields             []field.Spec   `yaml:"fields"`
	ReadOnlyFields     []field.Spec   `yaml:"read_only_fields"`
	ExcludeFields      []string       `yaml:"exclude_fields"`
	Extra              map[string]any `yaml:"extra"`
}

// SetDefaults fills model display names from model names.
func (f *File) SetDefaults() bool {
	changed := false

	for i := range f.Models {
		if f.Models[i].DisplayName == "" {
			f.Models[i].DisplayName = f.Models[i].Name
			changed = true
		}
	}

	return changed
}

// Validate checks names are present and unique, and that every serializer
// has a model either directly or through the serializer it extends.
func (f *File) Validate() error {
	models := make(map[string]struct{}, len(f.Models))

	for i, decl := range f.Models {
		if decl.Name == "" {
			return fmt.Errorf("%w: models[%d]: name is empty", ErrInvalidFile, i)
		}

		if _, dup := models[decl.Name]; dup {
			return fmt.Errorf("%w: model %q declared twice", ErrInvalidFile, decl.Name)
		}

		models[decl.Name] = struct{}{}
	}

	serializers := make(map[string]struct{}, len(f.Serializers))

	for i, decl := range f.Serializers {
		if decl.Name == "" {
			return fmt.Errorf("%w: serializers[%d]: name is empty", ErrInvalidFile, i)
		}

		if _, dup := serializers[decl.Name]; dup {
			return fmt.Errorf("%w: serializer %q declared twice", ErrInvalidFile, decl.Name)
		}

		if decl.Extends != "" {
			if _, ok := serializers[decl.Extends]; !ok {
				return fmt.Errorf("%w: serializer %q extends %q which is not declared before it",
					ErrInvalidFile, decl.Name, decl.Extends)
			}
		} else if decl.Model == "" {
			return fmt.Errorf("%w: serializer %q has no model", ErrInvalidFile, decl.Name)
		}

		serializers[decl.Name] = struct{}{}
	}

	return nil
}

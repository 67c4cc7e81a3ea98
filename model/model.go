package model

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// ErrNotStruct is returned by FromStruct when the value is not a struct or pointer to struct.
var ErrNotStruct = errors.New("value is not a struct")

// Schema is the capability a serializer needs from a model.
type Schema interface {
	// AttributeNames returns the attribute names in declaration order.
	AttributeNames() []string
	// DisplayName returns a human-readable model name.
	DisplayName() string
}

// Attribute describes one model attribute.
type Attribute struct {
	Name string
	Kind string
}

// Model is a static Schema.
type Model struct {
	displayName string
	attributes  []Attribute
	index       map[string]int
}

// New creates a Model. A repeated attribute name replaces the earlier one in place.
func New(displayName string, attrs ...Attribute) *Model {
	m := &Model{
		displayName: displayName,
		attributes:  make([]Attribute, 0, len(attrs)),
		index:       make(map[string]int, len(attrs)),
	}

	for _, attr := range attrs {
		if i, ok := m.index[attr.Name]; ok {
			m.attributes[i] = attr

			continue
		}

		m.index[attr.Name] = len(m.attributes)
		m.attributes = append(m.attributes, attr)
	}

	return m
}

// Names creates a Model from bare attribute names.
func Names(displayName string, names ...string) *Model {
	attrs := make([]Attribute, len(names))
	for i, name := range names {
		attrs[i] = Attribute{Name: name, Kind: ""}
	}

	return New(displayName, attrs...)
}

// DisplayName implements Schema.
func (m *Model) DisplayName() string {
	return m.displayName
}

// AttributeNames implements Schema.
func (m *Model) AttributeNames() []string {
	names := make([]string, len(m.attributes))
	for i, attr := range m.attributes {
		names[i] = attr.Name
	}

	return names
}

// Attributes returns a copy of the attribute descriptors.
func (m *Model) Attributes() []Attribute {
	return slices.Clone(m.attributes)
}

// Attribute returns the descriptor for name.
func (m *Model) Attribute(name string) (Attribute, bool) {
	i, ok := m.index[name]
	if !ok {
		return Attribute{}, false
	}

	return m.attributes[i], true
}

// HasAttribute reports whether name is an attribute of the model.
func (m *Model) HasAttribute(name string) bool {
	_, ok := m.index[name]

	return ok
}

// FromStruct derives a Model from the exported fields of a struct.
// The attribute name is taken from tag (e.g. "json") when set; "-" skips the field.
// Anonymous struct fields without a tag name are flattened.
func FromStruct(displayName string, value any, tag string) (*Model, error) {
	typ := reflect.TypeOf(value)
	for typ != nil && typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	if typ == nil || typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T", ErrNotStruct, value)
	}

	if displayName == "" {
		displayName = typ.Name()
	}

	return New(displayName, structAttributes(typ, tag)...), nil
}

func structAttributes(typ reflect.Type, tag string) []Attribute {
	var attrs []Attribute

	for i := range typ.NumField() {
		sf := typ.Field(i)

		name, skip := tagName(sf, tag)
		if skip {
			continue
		}

		fieldType := sf.Type
		if fieldType.Kind() == reflect.Pointer {
			fieldType = fieldType.Elem()
		}

		if sf.Anonymous && name == "" && fieldType.Kind() == reflect.Struct {
			attrs = append(attrs, structAttributes(fieldType, tag)...)

			continue
		}

		if !sf.IsExported() {
			continue
		}

		if name == "" {
			name = sf.Name
		}

		attrs = append(attrs, Attribute{Name: name, Kind: sf.Type.String()})
	}

	return attrs
}

func tagName(sf reflect.StructField, tag string) (string, bool) {
	if tag == "" {
		return "", false
	}

	value, ok := sf.Tag.Lookup(tag)
	if !ok {
		return "", false
	}

	name, _, _ := strings.Cut(value, ",")
	if name == "-" {
		return "", true
	}

	return name, false
}

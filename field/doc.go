// Package field defines the declaration of a single serializer output field.
//
// A Spec is one of two variants:
//   - Named: a bare attribute name, checked against the model schema.
//   - Aliased: an output key bound to an arbitrary descriptor (a transform,
//     a computed value, a nested serializer). Aliased specs are not checked
//     against the model schema.
//
// Loose inputs (decoded YAML, JSON, request parameters) are converted with
// Parse and ParseList. Accepted shapes:
//
//	"name"               -> Named("name")
//	{display: upper}     -> Aliased("display", "upper")
//	{a: x, b: y}         -> ErrMultiKeyAlias
//
// YAML decoding follows the same rules through Spec.UnmarshalYAML.
package field

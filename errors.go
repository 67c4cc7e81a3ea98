package serializer

import (
	"errors"
	"fmt"
)

// ErrUnacceptedParameter is matched by *UnacceptedParameterError.
var ErrUnacceptedParameter = errors.New("parameter not accepted")

// ErrSchemaMismatch is matched by *SchemaMismatchError.
var ErrSchemaMismatch = errors.New("field does not match any model attribute")

// ErrEmptyFieldSet is matched by *EmptyFieldSetError.
var ErrEmptyFieldSet = errors.New("serializer has no fields")

// ErrMissingModel is returned when fields must be checked but no model is configured.
var ErrMissingModel = errors.New("serializer has no model")

// ErrNilConfig is returned when New is called with a nil Config.
var ErrNilConfig = errors.New("config must not be nil")

// ErrEmptyName is returned when declaring a serializer without a name.
var ErrEmptyName = errors.New("serializer name must not be empty")

// ErrDuplicateSerializer is returned when a serializer name is registered twice.
var ErrDuplicateSerializer = errors.New("serializer already registered")

// ErrUnknownSerializer is returned when looking up an unregistered serializer.
var ErrUnknownSerializer = errors.New("unknown serializer")

// ErrUnknownModel is returned when a declaration references an unregistered model.
var ErrUnknownModel = errors.New("unknown model")

// UnacceptedParameterError reports a Params key the serializer does not accept.
type UnacceptedParameterError struct {
	Parameter  string
	Serializer string
}

func (e *UnacceptedParameterError) Error() string {
	return fmt.Sprintf("parameter %q is not accepted in %s", e.Parameter, e.Serializer)
}

func (e *UnacceptedParameterError) Unwrap() error {
	return ErrUnacceptedParameter
}

// SchemaMismatchError reports a field that is not an attribute of the model.
// Suggestion holds the closest attribute name, if any is close enough.
type SchemaMismatchError struct {
	Field      string
	Model      string
	Suggestion string
}

func (e *SchemaMismatchError) Error() string {
	msg := fmt.Sprintf("key %q does not match any attribute of model %s", e.Field, e.Model)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}

	return msg
}

func (e *SchemaMismatchError) Unwrap() error {
	return ErrSchemaMismatch
}

// EmptyFieldSetError reports a serializer whose resolved field keys are empty.
type EmptyFieldSetError struct {
	Serializer string
}

func (e *EmptyFieldSetError) Error() string {
	return e.Serializer + " does not have any field specified"
}

func (e *EmptyFieldSetError) Unwrap() error {
	return ErrEmptyFieldSet
}

// Package serializer declares, per data model, which attributes are exposed when a
// record is converted to an output representation.
//
// # Declaring
//
// A Declaration binds a name to a model schema and a small declarative
// configuration:
//
//	users, err := serializer.Declare("UserSerializer",
//	    serializer.WithModel(userModel),
//	    serializer.WithFieldNames("id", "name"),
//	    serializer.WithReadOnlyFieldNames("email"),
//	    serializer.WithExcludeFields("password"),
//	    serializer.WithAcceptedParameters(serializer.ParamFields),
//	)
//
// Apply merges further options into the declaration. Later options overwrite
// earlier ones on conflict. WithIncluded registers a hook that runs once, after
// the other options of the same call, with the declaration as its argument.
//
// # Resolving
//
// Config snapshots a declaration into an immutable value. New resolves a Config
// plus optional per-instance Params into the final field keys:
//
//  1. every Params key must be an accepted parameter
//  2. a non-empty "fields" parameter replaces the configured fields
//  3. with neither fields nor read-only fields, every model attribute is exposed;
//     otherwise fields and read-only fields are merged in first-seen order
//  4. every Named field must be a model attribute; Aliased fields are not checked
//  5. excluded keys are dropped
//  6. an empty result is an error
//
// Failures are returned as *UnacceptedParameterError, *SchemaMismatchError and
// *EmptyFieldSetError, which match ErrUnacceptedParameter, ErrSchemaMismatch and
// ErrEmptyFieldSet with errors.Is.
//
// # Sharing
//
// A Declaration is not safe for concurrent use and should be finished at program
// start. Config values and Registry are safe to share between goroutines; mutating
// a Declaration after Config was called never affects earlier snapshots.
package serializer

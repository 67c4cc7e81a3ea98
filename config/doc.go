// Package config loads serializer declarations from configuration data.
//
// The loading pipeline has four extension points:
//   - Parser: deserializes raw data into a target struct, with path navigation support
//   - DataFetcher: retrieves raw config data (file, env, etc.)
//   - Defaulter: applies default values before validation
//   - Validator: validates config after parsing
//
// Provider runs them in that order for any target type. LoadFile runs them for File,
// the declarations document:
//
//	models:
//	  - name: user
//	    display_name: User
//	    attributes: [id, name, email, password]
//	serializers:
//	  - name: UserSerializer
//	    model: user
//	    accepted_parameters: [fields]
//	    fields: [id, name, {display: upper}]
//	    read_only_fields: [email]
//	    exclude_fields: [password]
//	  - name: AdminUserSerializer
//	    extends: UserSerializer
//	    exclude_fields: []
//
// # Path Navigation
//
// Paths use colon (:) as the separator, so a declarations document can live inside
// a larger application config:
//
//	"serialization"      -> config["serialization"]
//	"app:serialization"  -> config["app"]["serialization"]
//	""                   -> entire document
package config

// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml. Colon-separated paths
// (e.g., "app:serialization") are converted to YAML path format
// (e.g., "$.app.serialization") and resolved with PathString before decoding.
//
// Usage:
//
//	parser := yaml.NewParser(yaml.WithStrict())
//	var file config.File
//	err := parser.Parse(data, &file, "app:serialization")
//
// WithStrict makes unknown keys a decoding error, which catches misspelled
// declaration keys such as "readonly_fields".
package yaml

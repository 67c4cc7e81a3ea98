// Package logging builds the structured slog logger used by the serializer tooling.
// Output is JSON by default; LoggerConfig.Format "text" selects the key=value handler.
package logging

// Package model describes the attribute schema a serializer validates its fields against.
//
// Any model adapter satisfies Schema by exposing its ordered attribute names and a
// display name used in error messages. Model is a static implementation; FromStruct
// derives one from a Go struct type. Registry maps model names to schemas for
// declarations loaded from configuration files.
package model

// Command serializer-lint loads a serializer declarations file, resolves every
// serializer against its model and prints the resulting field keys.
//
// Flags can also be set through HJARTA_* environment variables, e.g.
// HJARTA_CONFIG or HJARTA_LOG_LEVEL. A .env file in the working directory is
// loaded first.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

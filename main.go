// Package main is the entry point for the jiradash CLI application.
package main

import (
	"fmt"
	"os"

	"github.com/danielolaszy/jiradash/cmd"
	"github.com/danielolaszy/jiradash/internal/logging"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

// main is the entry point of the application.
// It executes the root command and handles any errors that occur.
func main() {
	logging.Debug("starting jiradash", "version", version)

	if err := cmd.Execute(); err != nil {
		logging.Debug("command execution failed", "error", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

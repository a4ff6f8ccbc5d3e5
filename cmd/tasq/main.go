// Package main is the entry point for the tasq CLI.
package main

import (
	"fmt"
	"os"

	"github.com/qretaio/tasq/internal/app"
	"github.com/qretaio/tasq/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	container, err := app.New()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	return cli.NewRootCommand(container, version).Execute()
}

// Package main provides the entry point for the Taskify TUI application.
//
// Taskify is a terminal to-do list. Tasks carry a name, a priority and a due
// date and are kept sorted by priority, then due date.
//
// Usage:
//
//	taskify [--config file] [--log-file file] [--log-level level] [--demo]
//	taskify version
//	taskify config
package main

import (
	"fmt"
	"os"

	"github.com/riordanpawley/taskify/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := cli.NewRootCommand(version, cli.RunProgram).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

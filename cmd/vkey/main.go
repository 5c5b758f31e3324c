package main

import (
	"os"

	"github.com/zx06/vkey/internal/app"
	"github.com/zx06/vkey/internal/errors"
	"github.com/zx06/vkey/internal/log"
	"github.com/zx06/vkey/internal/output"
)

func main() {
	exit := run()
	os.Exit(exit)
}

// run is the main entry point
func run() int {
	// Initialize application
	a := app.New(version, commit, date)
	w := output.New(os.Stdout, os.Stderr)
	logger := log.New(os.Stderr)

	// Create root command
	root := NewRootCommand()

	// Add subcommands
	root.AddCommand(NewStoreCommand(&w, logger))
	root.AddCommand(NewLoadCommand(&w, logger))
	root.AddCommand(NewClearCommand(&w, logger))
	root.AddCommand(NewStatusCommand(&w, logger))
	root.AddCommand(NewSpecCommand(&a, &w))
	root.AddCommand(NewVersionCommand(&a, &w))
	root.AddCommand(NewMCPCommand(logger))

	// Execute and handle errors
	if err := root.Execute(); err != nil {
		xe := normalizeErr(err)
		format := resolveFormatForError(GlobalConfig.FormatStr)
		_ = w.WriteError(format, xe)
		return int(errors.ExitCodeFor(xe.Code))
	}

	return int(errors.ExitOK)
}

package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/idilsaglam/plaintodo/internal/cli"
	"github.com/idilsaglam/plaintodo/internal/config"
	"github.com/idilsaglam/plaintodo/internal/store/textstore"
	"github.com/idilsaglam/plaintodo/internal/tui"
	"github.com/idilsaglam/plaintodo/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		cfg = config.Default()
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:  cfg.LogLevel,
		Prefix: "todo",
	})

	// Files resolve against the working directory at call time.
	store := textstore.New(afero.NewOsFs(), textstore.WithLogger(logger))
	printer := ui.NewPrinter(os.Stdout, os.Stderr, cfg.Color)

	os.Exit(cli.Run(os.Args[1:], cli.Options{
		Store:   store,
		Printer: printer,
		Logger:  logger,
		Browse:  func() error { return tui.Run(store, printer.Theme()) },
	}))
}

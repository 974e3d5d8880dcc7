// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

// socdos is an interactive, in-memory file tree with MS-DOS limits:
// short names, a bounded number of files and directories per directory,
// and a fixed maximum file size. Nothing is written to disk; the tree
// disappears when the program exits.
//
// Usage:
//
//	socdos [--config <file>] [--log-level <level>] [--no-color] [--no-banner]
//
// Commands are read from standard input, one per line. Type "help" at
// the prompt for the list.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/socdos/socdos/lib/clock"
	"github.com/socdos/socdos/lib/config"
	"github.com/socdos/socdos/lib/fstree"
	"github.com/socdos/socdos/lib/shell"
	"github.com/socdos/socdos/lib/tui"
	"github.com/socdos/socdos/lib/version"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var (
		configPath  string
		logLevel    string
		noColor     bool
		noBanner    bool
		showVersion bool
	)
	flagSet := pflag.NewFlagSet("socdos", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&configPath, "config", "", "path to a YAML or JSONC config file (default: $"+config.EnvironmentVariable+")")
	flagSet.StringVar(&logLevel, "log-level", "", "override log.level (debug, info, warn, error)")
	flagSet.BoolVar(&noColor, "no-color", false, "disable colored output")
	flagSet.BoolVar(&noBanner, "no-banner", false, "do not print the banner on startup")
	flagSet.BoolVar(&showVersion, "version", false, "print version information and exit")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if flagSet.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q", flagSet.Arg(0))
	}

	if showVersion {
		fmt.Fprintf(stdout, "socdos %s\n", version.Info())
		return nil
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if noColor {
		cfg.Shell.Color = tui.ColorNever
	}
	if noBanner {
		cfg.Shell.Banner = false
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if !tui.KnownHighlightStyle(cfg.Shell.HighlightStyle) {
		return fmt.Errorf("invalid configuration: shell.highlight_style %q is not a known style", cfg.Shell.HighlightStyle)
	}

	logger, err := newLogger(stderr, cfg.Log)
	if err != nil {
		return err
	}
	styles, err := tui.NewStyles(stdout, tui.DefaultTheme, cfg.Shell.Color)
	if err != nil {
		return err
	}

	realClock := clock.Real()
	tree, err := fstree.New(cfg.TreeLimits(), fstree.WithClock(realClock), fstree.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Debug("tree created",
		"tree", tree.ID(),
		"max_children", cfg.Limits.MaxChildren,
		"max_entries", cfg.Limits.MaxEntries,
		"max_entry_size", cfg.Limits.MaxEntrySize.String(),
	)

	session := shell.New(tree, stdin, stdout, shell.Options{
		Banner:         cfg.Shell.Banner,
		Styles:         styles,
		HighlightStyle: cfg.Shell.HighlightStyle,
		Clock:          realClock,
		Logger:         logger,
	})
	return session.Run(context.Background())
}

// loadConfig reads the --config file when given, otherwise whatever
// SOCDOS_CONFIG names, otherwise the defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

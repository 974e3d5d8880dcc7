// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/socdos/socdos/lib/clock"
	"github.com/socdos/socdos/lib/fstree"
	"github.com/socdos/socdos/lib/tui"
)

// Options configures a Shell. The zero value is usable: no banner,
// plain output, real clock, no logging.
type Options struct {
	// Banner prints the command list and limits before the first
	// prompt.
	Banner bool

	// Styles renders prompts, listings and messages. Nil means plain
	// styles on the shell's output.
	Styles *tui.Styles

	// HighlightStyle is the chroma style cat uses when Styles are
	// colored.
	HighlightStyle string

	// Clock is the reference time for relative timestamps in ls -l and
	// stat. Nil means the real clock.
	Clock clock.Clock

	// Logger receives a Debug record per command. Nil means discard.
	Logger *slog.Logger
}

// Shell reads commands from one stream and writes results to another.
type Shell struct {
	tree     *fstree.Tree
	in       *bufio.Reader
	out      io.Writer
	options  Options
	styles   *tui.Styles
	clock    clock.Clock
	logger   *slog.Logger
	commands []*Command
	stopped  bool
}

// New returns a shell over tree reading commands from in and writing
// to out.
func New(tree *fstree.Tree, in io.Reader, out io.Writer, options Options) *Shell {
	shell := &Shell{
		tree:    tree,
		in:      bufio.NewReader(in),
		out:     out,
		options: options,
		styles:  options.Styles,
		clock:   options.Clock,
		logger:  options.Logger,
	}
	if shell.styles == nil {
		shell.styles = tui.PlainStyles(out)
	}
	if shell.clock == nil {
		shell.clock = clock.Real()
	}
	if shell.logger == nil {
		shell.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	shell.commands = shell.builtinCommands()
	return shell
}

// Commands returns the shell's command table in help order.
func (s *Shell) Commands() []*Command { return s.commands }

// Stopped reports whether quit has run.
func (s *Shell) Stopped() bool { return s.stopped }

// Prompt returns the prompt for the current directory, "/root/a> ".
func (s *Shell) Prompt() string {
	return s.styles.Prompt.Render("/" + s.tree.Path() + ">") + " "
}

// Run prints the banner if configured, then reads and executes lines
// until quit, end of input, or ctx is cancelled. End of input is a
// normal exit.
func (s *Shell) Run(ctx context.Context) error {
	if s.options.Banner {
		s.PrintBanner()
	}

	for !s.stopped {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, s.Prompt())
		line, err := s.in.ReadString('\n')
		if line == "" && err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out)
				return nil
			}
			return fmt.Errorf("reading command: %w", err)
		}

		if err := s.Execute(ctx, line); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs one command line. Problems the user can fix are printed
// and return nil; the returned error is reserved for input failures
// and cancellation inside a command.
func (s *Shell) Execute(ctx context.Context, line string) error {
	word, rest := splitWord(strings.TrimRight(line, "\r\n"))
	if word == "" {
		return nil
	}

	command := s.lookup(word)
	if command == nil {
		s.logger.Debug("unknown command", "command", word)
		message := "Unknown command: " + word
		if suggestion := suggestCommand(word, s.commands); suggestion != "" {
			message += fmt.Sprintf(" (did you mean %q?)", suggestion)
		}
		s.printError(message)
		return nil
	}

	s.logger.Debug("running command", "command", command.Name, "path", s.tree.Path())
	err := command.execute(ctx, rest, s.out)
	var usage *usageError
	if errors.As(err, &usage) {
		s.printError("Usage: " + usage.command.Usage)
		return nil
	}
	return err
}

// PrintBanner writes the program title, the command list and the
// limits in effect.
func (s *Shell) PrintBanner() {
	usages := make([]string, 0, len(s.commands))
	for _, command := range s.commands {
		usages = append(usages, command.Usage)
	}
	limits := s.tree.Limits()

	fmt.Fprintln(s.out, s.styles.Header.Render("File System CLI"))
	fmt.Fprintf(s.out, "Commands: %s\n", strings.Join(usages, ", "))
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.styles.Header.Render("--- MS-DOS Memory and File Size Constraints ---"))
	fmt.Fprintf(s.out, "RAM Size: %s\n", humanize.IBytes(uint64(limits.MemoryBudget)))
	fmt.Fprintf(s.out, "File Size Limit: %s (reflecting typical MS-DOS constraints)\n",
		humanize.IBytes(uint64(limits.MaxEntrySize)))
	if limits.MaxChildren == limits.MaxEntries {
		fmt.Fprintf(s.out, "Maximum Number of Files/Directories: %d\n", limits.MaxEntries)
	} else {
		fmt.Fprintf(s.out, "Maximum Number of Files: %d\n", limits.MaxEntries)
		fmt.Fprintf(s.out, "Maximum Number of Directories: %d\n", limits.MaxChildren)
	}
	fmt.Fprintf(s.out, "Maximum Name Length: %d\n", limits.MaxNameLength)
	fmt.Fprintln(s.out, s.styles.Header.Render("------------------------------------------------"))
}

func (s *Shell) lookup(word string) *Command {
	for _, command := range s.commands {
		if command.matches(word) {
			return command
		}
	}
	return nil
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) printError(message string) {
	fmt.Fprintln(s.out, s.styles.Error.Render(message))
}

func (s *Shell) printWarning(message string) {
	fmt.Fprintln(s.out, s.styles.Warning.Render(message))
}

// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/socdos/socdos/lib/tui"
)

// Command is one shell command.
type Command struct {
	// Name is the command word as typed (e.g., "mkdir").
	Name string

	// Aliases are further words that run the same command.
	Aliases []string

	// Summary is a one-line description shown by help.
	Summary string

	// Usage is the usage string (e.g., "mkdir <name>"), printed when
	// the arguments are wrong.
	Usage string

	// MinArgs and MaxArgs bound the positional arguments after flag
	// parsing. MaxArgs < 0 means no upper bound.
	MinArgs int
	MaxArgs int

	// RawArgs passes the rest of the line, untouched and unsplit, as
	// the only argument. Flags are not parsed.
	RawArgs bool

	// Flags returns a configured *pflag.FlagSet for this command. It is
	// called once per invocation so flag variables start from their
	// defaults every time. If nil, the command accepts no flags and
	// arguments starting with "-" are positional.
	Flags func() *pflag.FlagSet

	// Run executes the command with the remaining args.
	Run func(ctx context.Context, args []string) error
}

// usageError reports that a command was invoked with the wrong
// arguments. The shell prints the usage line instead of an error.
type usageError struct {
	command *Command
	reason  string
}

func (e *usageError) Error() string {
	return fmt.Sprintf("%s: %s", e.command.Name, e.reason)
}

// names returns the command name followed by its aliases.
func (c *Command) names() []string {
	return append([]string{c.Name}, c.Aliases...)
}

// matches reports whether word runs this command.
func (c *Command) matches(word string) bool {
	for _, name := range c.names() {
		if name == word {
			return true
		}
	}
	return false
}

// execute parses rest according to the command's argument rules and
// runs it. A -h or --help flag prints the command's help to out.
func (c *Command) execute(ctx context.Context, rest string, out io.Writer) error {
	var args []string
	switch {
	case c.RawArgs:
		if rest != "" {
			args = []string{rest}
		}
	case c.Flags != nil:
		flagSet := c.Flags()
		flagSet.SetOutput(io.Discard)
		if err := flagSet.Parse(strings.Fields(rest)); err != nil {
			if errors.Is(err, pflag.ErrHelp) {
				c.PrintHelp(out)
				return nil
			}
			return &usageError{command: c, reason: err.Error()}
		}
		args = flagSet.Args()
	default:
		args = strings.Fields(rest)
	}

	if len(args) < c.MinArgs {
		return &usageError{command: c, reason: "missing argument"}
	}
	if c.MaxArgs >= 0 && len(args) > c.MaxArgs {
		return &usageError{command: c, reason: "too many arguments"}
	}
	return c.Run(ctx, args)
}

// PrintHelp writes the command's summary, usage and flags to w.
func (c *Command) PrintHelp(w io.Writer) {
	if c.Summary != "" {
		fmt.Fprintf(w, "%s\n\n", c.Summary)
	}
	fmt.Fprintf(w, "Usage:\n  %s\n", c.Usage)
	if len(c.Aliases) > 0 {
		fmt.Fprintf(w, "\nAliases:\n  %s\n", strings.Join(c.Aliases, ", "))
	}
	if c.Flags != nil {
		flagSet := c.Flags()
		var flagHelp strings.Builder
		flagSet.SetOutput(&flagHelp)
		flagSet.PrintDefaults()
		if flagHelp.Len() > 0 {
			fmt.Fprintf(w, "\nFlags:\n%s", flagHelp.String())
		}
	}
}

// printCommandTable writes one aligned "usage  summary" line per
// command.
func printCommandTable(w io.Writer, commands []*Command) {
	rows := make([][]string, 0, len(commands))
	for _, command := range commands {
		rows = append(rows, []string{command.Usage, command.Summary})
	}
	for _, line := range tui.Columns(rows, 3) {
		fmt.Fprintf(w, "  %s\n", line)
	}
}

// splitWord splits line into its first whitespace-separated word and
// the rest, with the separating whitespace removed from both.
func splitWord(line string) (word, rest string) {
	line = strings.TrimLeft(line, " \t")
	index := strings.IndexAny(line, " \t")
	if index < 0 {
		return line, ""
	}
	return line[:index], strings.TrimLeft(line[index:], " \t")
}

// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

package shell

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/socdos/socdos/lib/digest"
	"github.com/socdos/socdos/lib/editor"
	"github.com/socdos/socdos/lib/fstree"
	"github.com/socdos/socdos/lib/tui"
)

// builtinCommands returns the command table. Flag variables live in
// this closure and are reset by each Flags call.
func (s *Shell) builtinCommands() []*Command {
	var (
		longListing bool
		rawSnapshot bool
	)

	return []*Command{
		{
			Name:    "mkdir",
			Summary: "Create a directory in the current directory",
			Usage:   "mkdir <name>",
			MinArgs: 1,
			MaxArgs: 1,
			Run: func(_ context.Context, args []string) error {
				return s.mkdir(args[0])
			},
		},
		{
			Name:    "touch",
			Summary: "Create a file holding the rest of the line",
			Usage:   "touch <name> <data>",
			MinArgs: 1,
			MaxArgs: 1,
			RawArgs: true,
			Run: func(_ context.Context, args []string) error {
				name, data := splitWord(args[0])
				return s.touch(name, data)
			},
		},
		{
			Name:    "ls",
			Summary: "List the current directory",
			Usage:   "ls [-l]",
			MaxArgs: 0,
			Flags: func() *pflag.FlagSet {
				flagSet := pflag.NewFlagSet("ls", pflag.ContinueOnError)
				flagSet.BoolVarP(&longListing, "long", "l", false, "show sizes and modification times")
				return flagSet
			},
			Run: func(_ context.Context, _ []string) error {
				s.list(longListing)
				return nil
			},
		},
		{
			Name:    "cd",
			Summary: "Enter a subdirectory, or the parent with ..",
			Usage:   "cd <dir>",
			MinArgs: 1,
			MaxArgs: 1,
			Run: func(_ context.Context, args []string) error {
				s.changeDirectory(args[0])
				return nil
			},
		},
		{
			Name:    "pwd",
			Summary: "Print the current directory",
			Usage:   "pwd",
			MaxArgs: 0,
			Run: func(_ context.Context, _ []string) error {
				s.printf("Current directory: /%s\n", s.tree.Path())
				return nil
			},
		},
		{
			Name:    "edit",
			Summary: "Replace a file's content line by line",
			Usage:   "edit <file>",
			MinArgs: 1,
			MaxArgs: 1,
			Run: func(ctx context.Context, args []string) error {
				return s.edit(ctx, args[0])
			},
		},
		{
			Name:    "cat",
			Summary: "Print a file's content",
			Usage:   "cat <file>",
			MinArgs: 1,
			MaxArgs: 1,
			Run: func(_ context.Context, args []string) error {
				return s.cat(args[0])
			},
		},
		{
			Name:    "stat",
			Summary: "Show a file's metadata, or the current directory's fingerprint",
			Usage:   "stat [--raw] [<file>]",
			MaxArgs: 1,
			Flags: func() *pflag.FlagSet {
				flagSet := pflag.NewFlagSet("stat", pflag.ContinueOnError)
				flagSet.BoolVar(&rawSnapshot, "raw", false, "print the directory snapshot in CBOR diagnostic notation")
				return flagSet
			},
			Run: func(_ context.Context, args []string) error {
				if len(args) == 1 {
					s.statEntry(args[0])
					return nil
				}
				return s.statDirectory(rawSnapshot)
			},
		},
		{
			Name:    "mem",
			Summary: "Show memory use against the budget",
			Usage:   "mem",
			MaxArgs: 0,
			Run: func(_ context.Context, _ []string) error {
				s.memory()
				return nil
			},
		},
		{
			Name:    "help",
			Summary: "List commands, or describe one",
			Usage:   "help [<command>]",
			MaxArgs: 1,
			Run: func(_ context.Context, args []string) error {
				s.help(args)
				return nil
			},
		},
		{
			Name:    "quit",
			Aliases: []string{"exit"},
			Summary: "Leave the shell",
			Usage:   "quit",
			MaxArgs: -1,
			Run: func(_ context.Context, _ []string) error {
				s.printf("Exiting program.\n")
				s.stopped = true
				return nil
			},
		},
	}
}

func (s *Shell) mkdir(name string) error {
	container, err := s.tree.Mkdir(name)
	switch {
	case errors.Is(err, fstree.ErrCapacityExceeded):
		s.printError("Cannot add more directories. Maximum limit reached.")
		return nil
	case err != nil:
		return err
	}
	s.printf("Directory '%s' created.\n", container.Name())
	return nil
}

func (s *Shell) touch(name, data string) error {
	entry, err := s.tree.Touch(name, []byte(data))
	switch {
	case errors.Is(err, fstree.ErrCapacityExceeded):
		s.printError("Cannot add more files. Maximum limit reached.")
		return nil
	case errors.Is(err, fstree.ErrSizeLimitReached):
		s.printError(fmt.Sprintf("File too large: %d bytes exceeds the %s limit.",
			len(data), humanize.IBytes(uint64(s.tree.Limits().MaxEntrySize))))
		return nil
	case err != nil:
		return err
	}
	s.printf("File '%s' created.\n", entry.Name())
	return nil
}

func (s *Shell) list(long bool) {
	cwd := s.tree.Cwd()
	s.printf("Directory: %s\n", s.styles.Directory.Render(cwd.Name()))

	if !long {
		listing := cwd.List()
		for _, name := range listing.Entries {
			s.printf("  File: %s\n", s.styles.File.Render(name))
		}
		for _, name := range listing.Children {
			s.printf("  Directory: %s\n", s.styles.Directory.Render(name))
		}
		return
	}

	now := s.clock.Now()
	var rows [][]string
	for _, entry := range cwd.Entries() {
		rows = append(rows, []string{
			"File:",
			s.styles.File.Render(entry.Name()),
			humanize.IBytes(uint64(entry.Size())),
			s.relativeTime(entry.Modified(), now),
		})
	}
	for _, child := range cwd.Children() {
		rows = append(rows, []string{
			"Directory:",
			s.styles.Directory.Render(child.Name()),
			"-",
			s.relativeTime(child.Created(), now),
		})
	}
	for _, line := range tui.Columns(rows, 1, 2) {
		s.printf("  %s\n", line)
	}
}

func (s *Shell) changeDirectory(segment string) {
	err := s.tree.ChangeDirectory(segment)
	switch {
	case errors.Is(err, fstree.ErrAlreadyAtRoot):
		s.printError("Already at root directory.")
	case errors.Is(err, fstree.ErrNotFound):
		s.printError("Directory not found: " + segment)
	}
}

func (s *Shell) edit(ctx context.Context, name string) error {
	entry, err := s.tree.Cwd().FindEntry(name)
	if err != nil {
		s.printError("File not found: " + name)
		return nil
	}

	session := editor.New(entry, s.tree.Limits().MaxEntrySize)
	state, err := session.Run(ctx, s.in, s.out)
	s.logger.Debug("edit finished",
		"entry", entry.Name(),
		"state", state.String(),
		"rejected_lines", session.Rejected(),
		"size", entry.Size(),
	)
	return err
}

func (s *Shell) cat(name string) error {
	entry, err := s.tree.Cwd().FindEntry(name)
	if err != nil {
		s.printError("File not found: " + name)
		return nil
	}

	content := string(entry.Content())
	if err := s.styles.Highlight(s.out, entry.Name(), content, s.options.HighlightStyle); err != nil {
		return fmt.Errorf("writing %q: %w", entry.Name(), err)
	}
	if content != "" && !strings.HasSuffix(content, "\n") {
		s.printf("\n")
	}
	return nil
}

func (s *Shell) statEntry(name string) {
	entry, err := s.tree.Cwd().FindEntry(name)
	if err != nil {
		s.printError("File not found: " + name)
		return
	}

	now := s.clock.Now()
	s.printKeyValues([][2]string{
		{"File", s.styles.File.Render(entry.Name())},
		{"Size", fmt.Sprintf("%d bytes", entry.Size())},
		{"Capacity", humanize.IBytes(uint64(entry.Capacity()))},
		{"Created", s.timestamp(entry.Created(), now)},
		{"Modified", s.timestamp(entry.Modified(), now)},
		{"Digest", digest.Format(entry.Digest())},
	})
}

func (s *Shell) statDirectory(raw bool) error {
	cwd := s.tree.Cwd()
	snapshot := fstree.TakeSnapshot(cwd)

	if raw {
		diagnostic, err := snapshot.Diagnostic()
		if err != nil {
			return fmt.Errorf("encoding snapshot of %q: %w", cwd.Name(), err)
		}
		s.printf("%s\n", diagnostic)
		return nil
	}

	fingerprint, err := snapshot.Fingerprint()
	if err != nil {
		return fmt.Errorf("fingerprinting %q: %w", cwd.Name(), err)
	}
	s.printKeyValues([][2]string{
		{"Directory", "/" + s.tree.Path()},
		{"Files", fmt.Sprintf("%d of %d", cwd.EntryCount(), s.tree.Limits().MaxEntries)},
		{"Directories", fmt.Sprintf("%d of %d", cwd.ChildCount(), s.tree.Limits().MaxChildren)},
		{"Created", s.timestamp(cwd.Created(), s.clock.Now())},
		{"Fingerprint", digest.Short(fingerprint)},
	})
	return nil
}

func (s *Shell) memory() {
	usage := s.tree.Usage()
	s.printKeyValues([][2]string{
		{"Directories", humanize.Comma(int64(usage.Containers))},
		{"Files", humanize.Comma(int64(usage.Entries))},
		{"Content", humanize.IBytes(uint64(usage.ContentBytes))},
		{"Allocated", humanize.IBytes(uint64(usage.AllocatedBytes))},
		{"Budget", humanize.IBytes(uint64(usage.Budget))},
	})
	if usage.OverBudget() {
		s.printWarning(fmt.Sprintf("Allocated memory exceeds the %s budget.",
			humanize.IBytes(uint64(usage.Budget))))
	}
}

func (s *Shell) help(args []string) {
	if len(args) == 1 {
		if command := s.lookup(args[0]); command != nil {
			command.PrintHelp(s.out)
			return
		}
		s.printError("Unknown command: " + args[0])
		return
	}
	s.printf("Commands:\n")
	printCommandTable(s.out, s.commands)
}

// printKeyValues writes "  Key: value" lines with the values aligned.
func (s *Shell) printKeyValues(pairs [][2]string) {
	rows := make([][]string, 0, len(pairs))
	for _, pair := range pairs {
		rows = append(rows, []string{pair[0] + ":", pair[1]})
	}
	for _, line := range tui.Columns(rows, 1) {
		s.printf("  %s\n", line)
	}
}

func (s *Shell) relativeTime(then, now time.Time) string {
	return s.styles.Faint.Render(humanize.RelTime(then, now, "ago", "from now"))
}

func (s *Shell) timestamp(then, now time.Time) string {
	return then.UTC().Format(time.RFC3339) + " " + s.relativeTime(then, now)
}

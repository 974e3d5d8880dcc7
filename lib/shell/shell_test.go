// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

package shell

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/socdos/socdos/lib/clock"
	"github.com/socdos/socdos/lib/digest"
	"github.com/socdos/socdos/lib/fstree"
	"github.com/socdos/socdos/lib/tui"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

type harness struct {
	tree  *fstree.Tree
	clock *clock.FakeClock
	out   *bytes.Buffer
}

func newHarness(t *testing.T, limits fstree.Limits) *harness {
	t.Helper()
	if limits == (fstree.Limits{}) {
		limits = fstree.DefaultLimits()
	}
	fakeClock := clock.Fake(epoch)
	tree, err := fstree.New(limits, fstree.WithClock(fakeClock))
	if err != nil {
		t.Fatalf("fstree.New: %v", err)
	}
	return &harness{tree: tree, clock: fakeClock, out: &bytes.Buffer{}}
}

// run feeds input to a fresh shell over the harness tree and returns
// the transcript.
func (h *harness) run(t *testing.T, input string) string {
	t.Helper()
	return h.runWith(t, input, Options{})
}

func (h *harness) runWith(t *testing.T, input string, options Options) string {
	t.Helper()
	h.out.Reset()
	if options.Clock == nil {
		options.Clock = h.clock
	}
	shell := New(h.tree, strings.NewReader(input), h.out, options)
	if err := shell.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return h.out.String()
}

func TestTranscript(t *testing.T) {
	h := newHarness(t, fstree.Limits{})

	got := h.run(t, "mkdir a\ncd a\nmkdir b\ncd b\npwd\nquit\n")
	want := "/root> Directory 'a' created.\n" +
		"/root> " +
		"/root/a> Directory 'b' created.\n" +
		"/root/a> " +
		"/root/a/b> Current directory: /root/a/b\n" +
		"/root/a/b> Exiting program.\n"
	if got != want {
		t.Errorf("transcript:\n%s\nwant:\n%s", got, want)
	}
}

func TestQuitStopsReading(t *testing.T) {
	h := newHarness(t, fstree.Limits{})

	got := h.run(t, "exit\nmkdir never\n")
	if !strings.HasSuffix(got, "Exiting program.\n") {
		t.Errorf("transcript = %q", got)
	}
	if h.tree.Root().ChildCount() != 0 {
		t.Error("a command after exit ran")
	}
}

func TestEndOfInputExits(t *testing.T) {
	h := newHarness(t, fstree.Limits{})

	got := h.run(t, "\n   \npwd")
	want := "/root> /root> /root> Current directory: /root\n/root> \n"
	if got != want {
		t.Errorf("transcript = %q, want %q", got, want)
	}
}

func TestMkdirFanOutLimit(t *testing.T) {
	limits := fstree.DefaultLimits()
	limits.MaxChildren = 3
	h := newHarness(t, limits)

	got := h.run(t, "mkdir a\nmkdir b\nmkdir c\nmkdir d\nls\n")
	if !strings.Contains(got, "Cannot add more directories. Maximum limit reached.\n") {
		t.Errorf("fourth mkdir was not rejected:\n%s", got)
	}
	if strings.Contains(got, "Directory 'd' created.") || strings.Contains(got, "  Directory: d\n") {
		t.Errorf("rejected directory appears:\n%s", got)
	}
	for _, name := range []string{"a", "b", "c"} {
		if !strings.Contains(got, "  Directory: "+name+"\n") {
			t.Errorf("ls lacks %s:\n%s", name, got)
		}
	}
}

func TestTouchFanOutLimit(t *testing.T) {
	limits := fstree.DefaultLimits()
	limits.MaxEntries = 1
	h := newHarness(t, limits)

	got := h.run(t, "touch one 1\ntouch two 2\n")
	if !strings.Contains(got, "Cannot add more files. Maximum limit reached.\n") {
		t.Errorf("second touch was not rejected:\n%s", got)
	}
	if h.tree.Root().EntryCount() != 1 {
		t.Errorf("EntryCount() = %d, want 1", h.tree.Root().EntryCount())
	}
}

func TestListOrder(t *testing.T) {
	h := newHarness(t, fstree.Limits{})

	got := h.run(t, "mkdir src\ntouch b.txt x\nmkdir docs\ntouch a.txt y\nls\n")
	want := "Directory: root\n" +
		"  File: b.txt\n" +
		"  File: a.txt\n" +
		"  Directory: src\n" +
		"  Directory: docs\n"
	if !strings.Contains(got, want) {
		t.Errorf("listing:\n%s\nwant:\n%s", got, want)
	}
}

func TestLongListing(t *testing.T) {
	h := newHarness(t, fstree.Limits{})
	h.run(t, "touch data.txt abcd\nmkdir src\n")
	h.clock.Advance(2 * time.Minute)

	got := h.run(t, "ls -l\n")
	lines := strings.Split(got, "\n")
	if len(lines) < 3 {
		t.Fatalf("transcript = %q", got)
	}
	file, directory := lines[1], lines[2]
	if !strings.HasPrefix(file, "  File:      data.txt") || !strings.Contains(file, "4 B") ||
		!strings.HasSuffix(file, "2 minutes ago") {
		t.Errorf("file line = %q", file)
	}
	if !strings.HasPrefix(directory, "  Directory: src") || !strings.HasSuffix(directory, "2 minutes ago") {
		t.Errorf("directory line = %q", directory)
	}
}

func TestListRejectsUnknownFlag(t *testing.T) {
	h := newHarness(t, fstree.Limits{})

	got := h.run(t, "ls --all\n")
	if !strings.Contains(got, "Usage: ls [-l]\n") {
		t.Errorf("transcript = %q", got)
	}
}

func TestChangeDirectoryUpAtRoot(t *testing.T) {
	h := newHarness(t, fstree.Limits{})

	got := h.run(t, "cd ..\npwd\n")
	if !strings.Contains(got, "Already at root directory.\n") {
		t.Errorf("transcript lacks root message:\n%s", got)
	}
	if !strings.Contains(got, "Current directory: /root\n") {
		t.Errorf("cursor moved:\n%s", got)
	}
}

func TestChangeDirectoryUnknown(t *testing.T) {
	h := newHarness(t, fstree.Limits{})

	got := h.run(t, "mkdir a\ncd a\npwd\ncd nowhere\npwd\n")
	if !strings.Contains(got, "Directory not found: nowhere\n") {
		t.Errorf("transcript lacks not-found message:\n%s", got)
	}
	if strings.Count(got, "Current directory: /root/a\n") != 2 {
		t.Errorf("pwd changed after failed cd:\n%s", got)
	}
}

func TestChangeDirectoryUp(t *testing.T) {
	h := newHarness(t, fstree.Limits{})

	h.run(t, "mkdir a\ncd a\nmkdir b\ncd b\ncd ..\n")
	if got := h.tree.Path(); got != "root/a" {
		t.Errorf("Path() = %q, want root/a", got)
	}
}

func TestTouchTakesRestOfLine(t *testing.T) {
	h := newHarness(t, fstree.Limits{})

	got := h.run(t, "touch greeting   hello  big world\ncat greeting\n")
	if !strings.Contains(got, "File 'greeting' created.\n") {
		t.Errorf("transcript = %q", got)
	}
	if !strings.Contains(got, "hello  big world\n") {
		t.Errorf("cat did not print the data:\n%s", got)
	}
}

func TestTouchWithoutData(t *testing.T) {
	h := newHarness(t, fstree.Limits{})

	h.run(t, "touch empty\n")
	entry, err := h.tree.Root().FindEntry("empty")
	if err != nil {
		t.Fatalf("FindEntry: %v", err)
	}
	if entry.Size() != 0 {
		t.Errorf("Size() = %d, want 0", entry.Size())
	}
}

func TestNamesAreTruncated(t *testing.T) {
	h := newHarness(t, fstree.Limits{})

	got := h.run(t, "mkdir thirteenchars\ncd thirteenchar\npwd\n")
	if !strings.Contains(got, "Directory 'thirteenchar' created.\n") {
		t.Errorf("transcript = %q", got)
	}
	if !strings.Contains(got, "Current directory: /root/thirteenchar\n") {
		t.Errorf("cd by truncated name failed:\n%s", got)
	}
}

func TestEditSave(t *testing.T) {
	h := newHarness(t, fstree.Limits{})

	got := h.run(t, "touch notes old\nedit notes\nhello\nworld\nSAVE\npwd\n")
	if !strings.Contains(got, "File saved.\n") {
		t.Errorf("transcript lacks save message:\n%s", got)
	}
	// The command loop resumes with the line after SAVE.
	if !strings.Contains(got, "/root> Current directory: /root\n") {
		t.Errorf("loop did not resume:\n%s", got)
	}

	entry, err := h.tree.Root().FindEntry("notes")
	if err != nil {
		t.Fatalf("FindEntry: %v", err)
	}
	if string(entry.Content()) != "hello\nworld\n" || entry.Size() != 12 {
		t.Errorf("content = %q, size %d", entry.Content(), entry.Size())
	}
}

func TestEditCancel(t *testing.T) {
	h := newHarness(t, fstree.Limits{})

	got := h.run(t, "touch notes keep\nedit notes\nreplaced\nCANCEL\n")
	if !strings.Contains(got, "Editing cancelled.\n") {
		t.Errorf("transcript lacks cancel message:\n%s", got)
	}
	entry, err := h.tree.Root().FindEntry("notes")
	if err != nil {
		t.Fatalf("FindEntry: %v", err)
	}
	if string(entry.Content()) != "keep" || entry.Size() != 4 {
		t.Errorf("content = %q, size %d", entry.Content(), entry.Size())
	}
}

func TestEditMissingFile(t *testing.T) {
	h := newHarness(t, fstree.Limits{})

	got := h.run(t, "edit ghost\n")
	if !strings.Contains(got, "File not found: ghost\n") {
		t.Errorf("transcript = %q", got)
	}
}

func TestMaxSizeTouchThenOverflowingEdit(t *testing.T) {
	limits := fstree.DefaultLimits()
	limits.MaxEntrySize = 16
	h := newHarness(t, limits)
	full := strings.Repeat("x", 16)

	got := h.run(t, "touch f "+full+"\nedit f\n"+strings.Repeat("y", 16)+"\nCANCEL\n")
	if !strings.Contains(got, "File 'f' created.\n") {
		t.Fatalf("exact-maximum touch failed:\n%s", got)
	}
	if !strings.Contains(got, "Not enough space to add more data.\n") {
		t.Errorf("overflowing line was not rejected:\n%s", got)
	}
	entry, err := h.tree.Root().FindEntry("f")
	if err != nil {
		t.Fatalf("FindEntry: %v", err)
	}
	if string(entry.Content()) != full {
		t.Errorf("content = %q, want %q", entry.Content(), full)
	}
}

func TestTouchTooLarge(t *testing.T) {
	limits := fstree.DefaultLimits()
	limits.MaxEntrySize = 16
	h := newHarness(t, limits)

	got := h.run(t, "touch f "+strings.Repeat("x", 17)+"\n")
	if !strings.Contains(got, "File too large: 17 bytes exceeds the 16 B limit.\n") {
		t.Errorf("transcript = %q", got)
	}
	if h.tree.Root().EntryCount() != 0 {
		t.Error("oversized file was added")
	}
}

func TestStatEntry(t *testing.T) {
	h := newHarness(t, fstree.Limits{})
	h.run(t, "touch data.txt abcd\n")

	got := h.run(t, "stat data.txt\n")
	for _, want := range []string{
		"  File:     data.txt\n",
		"  Size:     4 bytes\n",
		"  Capacity: 32 KiB\n",
		"  Created:  2026-01-01T00:00:00Z now\n",
		"  Digest:   " + digest.Format(digest.Content([]byte("abcd"))) + "\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("stat lacks %q:\n%s", want, got)
		}
	}
}

func TestStatDirectory(t *testing.T) {
	h := newHarness(t, fstree.Limits{})
	h.run(t, "touch readme hi\nmkdir src\n")

	fingerprint, err := fstree.TakeSnapshot(h.tree.Root()).Fingerprint()
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	got := h.run(t, "stat\n")
	for _, want := range []string{
		"Directory:   /root\n",
		"Files:       1 of 64\n",
		"Directories: 1 of 64\n",
		"Fingerprint: " + digest.Short(fingerprint) + "\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("stat lacks %q:\n%s", want, got)
		}
	}

	raw := h.run(t, "stat --raw\n")
	for _, want := range []string{`"root"`, `"readme"`, `"src"`} {
		if !strings.Contains(raw, want) {
			t.Errorf("stat --raw lacks %s:\n%s", want, raw)
		}
	}
}

func TestMemory(t *testing.T) {
	h := newHarness(t, fstree.Limits{})

	got := h.run(t, "touch a 1\nmem\n")
	for _, want := range []string{"Directories: 1\n", "Files:       1\n", "Budget:      640 KiB\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("mem lacks %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "exceeds") {
		t.Errorf("one file reported over budget:\n%s", got)
	}
}

func TestMemoryOverBudget(t *testing.T) {
	limits := fstree.DefaultLimits()
	limits.MemoryBudget = 1024
	h := newHarness(t, limits)

	got := h.run(t, "touch a 1\nmem\n")
	if !strings.Contains(got, "Allocated memory exceeds the 1.0 KiB budget.\n") {
		t.Errorf("transcript = %q", got)
	}
	// The budget is descriptive; creation still works.
	h.run(t, "touch b 2\n")
	if h.tree.Root().EntryCount() != 2 {
		t.Error("budget was enforced")
	}
}

func TestUnknownCommand(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"mkdri x\n", "Unknown command: mkdri (did you mean \"mkdir\"?)\n"},
		{"frobnicate\n", "Unknown command: frobnicate\n"},
		{"MKDIR x\n", "Unknown command: MKDIR"},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			h := newHarness(t, fstree.Limits{})
			before, err := fstree.TakeSnapshot(h.tree.Root()).Fingerprint()
			if err != nil {
				t.Fatalf("Fingerprint: %v", err)
			}

			got := h.run(t, test.input)
			if !strings.Contains(got, test.want) {
				t.Errorf("transcript = %q, want %q", got, test.want)
			}
			after, err := fstree.TakeSnapshot(h.tree.Root()).Fingerprint()
			if err != nil {
				t.Fatalf("Fingerprint: %v", err)
			}
			if before != after {
				t.Error("unknown command changed the tree")
			}
		})
	}
}

func TestMissingArguments(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"mkdir\n", "Usage: mkdir <name>\n"},
		{"touch\n", "Usage: touch <name> <data>\n"},
		{"cd\n", "Usage: cd <dir>\n"},
		{"edit\n", "Usage: edit <file>\n"},
		{"mkdir a b\n", "Usage: mkdir <name>\n"},
	}
	for _, test := range tests {
		t.Run(strings.TrimSpace(test.input), func(t *testing.T) {
			h := newHarness(t, fstree.Limits{})
			got := h.run(t, test.input)
			if !strings.Contains(got, test.want) {
				t.Errorf("transcript = %q, want %q", got, test.want)
			}
		})
	}
}

func TestHelp(t *testing.T) {
	h := newHarness(t, fstree.Limits{})

	got := h.run(t, "help\n")
	shell := New(h.tree, strings.NewReader(""), &bytes.Buffer{}, Options{})
	for _, command := range shell.Commands() {
		if !strings.Contains(got, command.Usage) {
			t.Errorf("help lacks %q", command.Usage)
		}
	}

	got = h.run(t, "help ls\n")
	if !strings.Contains(got, "--long") {
		t.Errorf("help ls lacks the flag:\n%s", got)
	}
	got = h.run(t, "ls --help\n")
	if !strings.Contains(got, "Usage:\n  ls [-l]\n") {
		t.Errorf("ls --help = %q", got)
	}
}

func TestBanner(t *testing.T) {
	h := newHarness(t, fstree.Limits{})

	got := h.runWith(t, "", Options{Banner: true})
	for _, want := range []string{
		"File System CLI\n",
		"Commands: mkdir <name>, touch <name> <data>, ls [-l], cd <dir>, pwd, edit <file>",
		"RAM Size: 640 KiB\n",
		"File Size Limit: 32 KiB (reflecting typical MS-DOS constraints)\n",
		"Maximum Number of Files/Directories: 64\n",
		"Maximum Name Length: 12\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("banner lacks %q:\n%s", want, got)
		}
	}
}

func TestColoredOutput(t *testing.T) {
	h := newHarness(t, fstree.Limits{})
	styles, err := tui.NewStyles(h.out, tui.DefaultTheme, tui.ColorAlways)
	if err != nil {
		t.Fatalf("NewStyles: %v", err)
	}

	got := h.runWith(t, "mkdir src\nls\n", Options{Styles: styles})
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("colored shell emitted no escapes: %q", got)
	}
	if !strings.Contains(got, "src") {
		t.Errorf("transcript lacks the directory: %q", got)
	}
}

func TestRunContextCancelled(t *testing.T) {
	h := newHarness(t, fstree.Limits{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	shell := New(h.tree, strings.NewReader("mkdir a\n"), h.out, Options{})
	if err := shell.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run: err = %v, want context.Canceled", err)
	}
	if h.tree.Root().ChildCount() != 0 {
		t.Error("a command ran after cancellation")
	}
}

func TestCommandsAreLogged(t *testing.T) {
	h := newHarness(t, fstree.Limits{})
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	h.runWith(t, "mkdir a\nbogus\n", Options{Logger: logger})
	for _, want := range []string{`"msg":"running command"`, `"command":"mkdir"`, `"msg":"unknown command"`} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("logs lack %s:\n%s", want, logs.String())
		}
	}
}

func TestSplitWord(t *testing.T) {
	tests := []struct {
		line, word, rest string
	}{
		{"", "", ""},
		{"pwd", "pwd", ""},
		{"  cd  a ", "cd", "a "},
		{"touch\tf data", "touch", "f data"},
	}
	for _, test := range tests {
		word, rest := splitWord(test.line)
		if word != test.word || rest != test.rest {
			t.Errorf("splitWord(%q) = %q, %q, want %q, %q", test.line, word, rest, test.word, test.rest)
		}
	}
}

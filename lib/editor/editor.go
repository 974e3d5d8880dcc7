// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

package editor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/socdos/socdos/lib/fstree"
)

// Input lines that end an editing session.
const (
	SaveSentinel   = "SAVE"
	CancelSentinel = "CANCEL"
)

var (
	// ErrLineRejected is returned by Feed when a line does not fit in
	// the remaining space. It also matches fstree.ErrSizeLimitReached.
	ErrLineRejected = errors.New("editor: line rejected")

	// ErrFinished is returned by Feed once the editor has reached a
	// terminal state.
	ErrFinished = errors.New("editor: session finished")
)

// State is the position of an Editor in its state machine.
type State int

const (
	// Editing accepts lines.
	Editing State = iota
	// Saved committed the buffer to the entry.
	Saved
	// Cancelled discarded the buffer.
	Cancelled
	// SizeLimitReached stopped with a full buffer, uncommitted.
	SizeLimitReached
	// Exhausted stopped at end of input, uncommitted.
	Exhausted
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Saved:
		return "saved"
	case Cancelled:
		return "cancelled"
	case SizeLimitReached:
		return "size_limit_reached"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Terminal reports whether s accepts no more lines.
func (s State) Terminal() bool { return s != Editing }

// Editor accumulates replacement content for one entry.
type Editor struct {
	entry    *fstree.Entry
	limit    int
	buffer   []byte
	state    State
	rejected int
}

// New returns an editor for entry that accepts at most limit bytes,
// normally the tree's MaxEntrySize. The entry is not touched until a
// save.
func New(entry *fstree.Entry, limit int) *Editor {
	return &Editor{
		entry:  entry,
		limit:  limit,
		buffer: make([]byte, 0, limit),
	}
}

// State returns the current state.
func (e *Editor) State() State { return e.state }

// Len returns the number of bytes accumulated so far.
func (e *Editor) Len() int { return len(e.buffer) }

// Rejected returns how many lines were dropped for lack of space.
func (e *Editor) Rejected() int { return e.rejected }

// Feed processes one input line, which should include its trailing
// newline if it had one. Sentinels are compared with any trailing
// "\n" or "\r\n" removed.
func (e *Editor) Feed(line string) (State, error) {
	if e.state.Terminal() {
		return e.state, ErrFinished
	}

	switch strings.TrimRight(line, "\r\n") {
	case SaveSentinel:
		if err := e.entry.Replace(e.buffer); err != nil {
			return e.state, fmt.Errorf("saving %q: %w", e.entry.Name(), err)
		}
		e.state = Saved
		return e.state, nil
	case CancelSentinel:
		e.state = Cancelled
		return e.state, nil
	}

	if len(e.buffer)+len(line) > e.limit {
		e.rejected++
		return e.state, fmt.Errorf("%d-byte line with %d of %d bytes used: %w: %w",
			len(line), len(e.buffer), e.limit, ErrLineRejected, fstree.ErrSizeLimitReached)
	}
	e.buffer = append(e.buffer, line...)
	if len(e.buffer) >= e.limit {
		e.state = SizeLimitReached
	}
	return e.state, nil
}

// Close ends the session at end of input. It has no effect on an
// editor that already reached a terminal state.
func (e *Editor) Close() State {
	if !e.state.Terminal() {
		e.state = Exhausted
	}
	return e.state
}

// Run reads lines from in until the editor reaches a terminal state,
// writing prompts and status messages to out. End of input closes the
// session without saving. Cancelling ctx stops before the next line is
// read, also without saving.
func (e *Editor) Run(ctx context.Context, in *bufio.Reader, out io.Writer) (State, error) {
	fmt.Fprintf(out, "Editing file '%s'. Type '%s' to save changes and '%s' to discard changes.\n",
		e.entry.Name(), SaveSentinel, CancelSentinel)

	for {
		if e.state == SizeLimitReached {
			fmt.Fprintln(out, "File size limit reached.")
			return e.state, nil
		}
		if err := ctx.Err(); err != nil {
			e.state = Cancelled
			return e.state, fmt.Errorf("editing %q: %w", e.entry.Name(), err)
		}

		fmt.Fprint(out, ">> ")
		line, err := in.ReadString('\n')
		if line == "" && err != nil {
			if errors.Is(err, io.EOF) {
				return e.Close(), nil
			}
			return e.state, fmt.Errorf("reading input for %q: %w", e.entry.Name(), err)
		}

		state, feedErr := e.Feed(line)
		switch {
		case errors.Is(feedErr, ErrLineRejected):
			fmt.Fprintln(out, "Not enough space to add more data.")
			continue
		case feedErr != nil:
			return state, feedErr
		}

		switch state {
		case Saved:
			fmt.Fprintln(out, "File saved.")
			return state, nil
		case Cancelled:
			fmt.Fprintln(out, "Editing cancelled.")
			return state, nil
		}
	}
}

// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

// Package editor replaces the content of one file from a stream of
// input lines.
//
// An [Editor] starts in [Editing] with an empty buffer and accumulates
// every line it is fed, newline included. Two lines are reserved:
// [SaveSentinel] commits the buffer to the entry and ends in [Saved];
// [CancelSentinel] ends in [Cancelled] without touching the entry. A
// line that would push the buffer past the size limit is dropped with
// [ErrLineRejected] and editing continues. Once the buffer is exactly
// full the editor stops in [SizeLimitReached], and running out of input
// stops it in [Exhausted]. Neither of those commits anything: only an
// explicit save writes to the entry.
//
// [Editor.Feed] drives the state machine one line at a time.
// [Editor.Run] reads lines from a bufio.Reader and writes the prompts
// and messages of the interactive shell.
package editor

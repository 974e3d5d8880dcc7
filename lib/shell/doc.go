// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

// Package shell is the interactive line interface over an [fstree.Tree].
//
// A [Shell] reads one command per line, prints a "/<path>> " prompt
// before each, and routes the first word of the line through a table
// of [Command] values. Commands that fail for a user reason (a full
// directory, an unknown name, "cd .." at the root) print a message and
// leave the tree untouched; only input failures and context
// cancellation end [Shell.Run] with an error.
//
// The edit command hands the shell's reader to [editor.Editor], so the
// editing session consumes lines from the same stream as the command
// loop and the loop resumes with the line after SAVE or CANCEL.
package shell

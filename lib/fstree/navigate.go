// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

package fstree

import (
	"fmt"
	"slices"
	"strings"
)

// UpMarker is the segment that moves the cursor to its parent.
const UpMarker = ".."

// Separator joins path segments.
const Separator = "/"

// ChangeDirectory moves the cursor by one segment: UpMarker moves to
// the parent, anything else to the first child of the cursor with
// exactly that name. On error the cursor does not move.
func (t *Tree) ChangeDirectory(segment string) error {
	if segment == UpMarker {
		if t.cwd.parent == nil {
			return fmt.Errorf("cd %s: %w", UpMarker, ErrAlreadyAtRoot)
		}
		t.cwd = t.cwd.parent
		t.logger.Debug("cursor moved", "path", t.Path())
		return nil
	}

	child, err := t.cwd.FindChild(segment)
	if err != nil {
		return err
	}
	t.cwd = child
	t.logger.Debug("cursor moved", "path", t.Path())
	return nil
}

// Path returns the cursor's path, as CurrentPath does.
func (t *Tree) Path() string {
	return CurrentPath(t.cwd)
}

// CurrentPath returns the path from the root to c, root name included
// and without a leading separator: "root", "root/a/b".
func CurrentPath(c *Container) string {
	var segments []string
	for current := c; current != nil; current = current.parent {
		segments = append(segments, current.name)
	}
	slices.Reverse(segments)
	return strings.Join(segments, Separator)
}


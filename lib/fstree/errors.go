// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

package fstree

import "errors"

var (
	// ErrCapacityExceeded is returned when a container already holds
	// the maximum number of children or entries.
	ErrCapacityExceeded = errors.New("fstree: capacity exceeded")

	// ErrNotFound is returned when a name lookup in a container finds
	// no match.
	ErrNotFound = errors.New("fstree: not found")

	// ErrAlreadyAtRoot is returned when navigating up from the root.
	ErrAlreadyAtRoot = errors.New("fstree: already at root")

	// ErrSizeLimitReached is returned when content would exceed the
	// maximum entry size.
	ErrSizeLimitReached = errors.New("fstree: entry size limit reached")

	// ErrAlreadyLinked is returned when a container or entry that is
	// already part of the tree is added a second time.
	ErrAlreadyLinked = errors.New("fstree: already linked")

	// ErrForeignNode is returned when a container is added to a parent
	// other than the one it was created under, or to a different tree.
	ErrForeignNode = errors.New("fstree: node belongs to a different parent")
)

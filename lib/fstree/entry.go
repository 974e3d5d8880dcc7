// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

package fstree

import (
	"bytes"
	"fmt"
	"time"

	"github.com/socdos/socdos/lib/digest"
)

// Entry is a named file: a content buffer whose length is the logical
// size and whose capacity is the tree's maximum entry size.
type Entry struct {
	name     string
	content  []byte
	owner    *Container
	tree     *Tree
	created  time.Time
	modified time.Time
}

// Name returns the entry's (possibly truncated) name.
func (e *Entry) Name() string { return e.name }

// Size returns the logical content length in bytes.
func (e *Entry) Size() int { return len(e.content) }

// Capacity returns the size of the entry's buffer, which is the
// maximum entry size of the tree that created it.
func (e *Entry) Capacity() int { return cap(e.content) }

// Content returns a copy of the entry's content.
func (e *Entry) Content() []byte { return bytes.Clone(e.content) }

// Owner returns the container holding the entry, or nil if the entry
// has not been added to one.
func (e *Entry) Owner() *Container { return e.owner }

// Created returns the time the entry was created.
func (e *Entry) Created() time.Time { return e.created }

// Modified returns the time the content was last replaced, or the
// creation time if it never was.
func (e *Entry) Modified() time.Time { return e.modified }

// Digest returns the BLAKE3 content digest.
func (e *Entry) Digest() digest.Hash { return digest.Content(e.content) }

// Replace overwrites the whole content with data, in place. Data longer
// than the buffer is rejected with ErrSizeLimitReached and the entry is
// left unchanged.
func (e *Entry) Replace(data []byte) error {
	if len(data) > cap(e.content) {
		return fmt.Errorf("replacing %q with %d bytes (limit %d): %w",
			e.name, len(data), cap(e.content), ErrSizeLimitReached)
	}
	e.content = e.content[:len(data)]
	copy(e.content, data)
	e.modified = e.tree.clock.Now()

	e.tree.logger.Debug("entry content replaced",
		"entry", e.name,
		"size", len(data),
	)
	return nil
}

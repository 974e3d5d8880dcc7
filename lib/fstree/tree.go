// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

package fstree

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/socdos/socdos/lib/clock"
)

// Tree owns a root container and the current-directory cursor.
type Tree struct {
	id     string
	limits Limits
	clock  clock.Clock
	logger *slog.Logger
	root   *Container
	cwd    *Container
}

// Option configures a Tree.
type Option func(*Tree)

// WithClock sets the time source for creation and modification
// timestamps. The default is clock.Real().
func WithClock(c clock.Clock) Option {
	return func(t *Tree) { t.clock = c }
}

// WithLogger sets the logger for tree mutations. The default discards
// everything.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tree) { t.logger = logger }
}

// New creates a tree holding only the root container, with the cursor
// on the root.
func New(limits Limits, options ...Option) (*Tree, error) {
	if err := limits.Validate(); err != nil {
		return nil, fmt.Errorf("invalid limits: %w", err)
	}

	tree := &Tree{
		id:     uuid.NewString(),
		limits: limits,
		clock:  clock.Real(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(tree)
	}
	tree.logger = tree.logger.With("tree", tree.id)

	tree.root = &Container{
		name:    limits.TruncateName(RootName),
		tree:    tree,
		linked:  true,
		created: tree.clock.Now(),
	}
	tree.cwd = tree.root
	return tree, nil
}

// ID returns the tree's instance identifier. It only distinguishes
// trees in log output.
func (t *Tree) ID() string { return t.id }

// Limits returns the limits the tree was created with.
func (t *Tree) Limits() Limits { return t.limits }

// Root returns the root container.
func (t *Tree) Root() *Container { return t.root }

// Cwd returns the container under the cursor. It is never nil.
func (t *Tree) Cwd() *Container { return t.cwd }

// CreateContainer allocates an empty container named name (truncated
// to MaxNameLength) whose parent is parent. The container is not part
// of parent until passed to parent.AddChild.
func (t *Tree) CreateContainer(parent *Container, name string) *Container {
	return &Container{
		name:    t.limits.TruncateName(name),
		parent:  parent,
		tree:    t,
		created: t.clock.Now(),
	}
}

// CreateEntry allocates an entry named name (truncated to
// MaxNameLength) holding a copy of content. The buffer is allocated at
// MaxEntrySize regardless of len(content). Content longer than
// MaxEntrySize returns ErrSizeLimitReached. The entry is not part of
// any container until passed to AddEntry.
func (t *Tree) CreateEntry(name string, content []byte) (*Entry, error) {
	name = t.limits.TruncateName(name)
	if len(content) > t.limits.MaxEntrySize {
		return nil, fmt.Errorf("creating %q with %d bytes (limit %d): %w",
			name, len(content), t.limits.MaxEntrySize, ErrSizeLimitReached)
	}

	buffer := make([]byte, len(content), t.limits.MaxEntrySize)
	copy(buffer, content)
	now := t.clock.Now()
	return &Entry{
		name:     name,
		content:  buffer,
		tree:     t,
		created:  now,
		modified: now,
	}, nil
}

// Mkdir creates a container named name under the cursor. Capacity is
// checked first, so a rejected call allocates nothing.
func (t *Tree) Mkdir(name string) (*Container, error) {
	if !t.cwd.hasChildRoom() {
		err := fmt.Errorf("adding directory %q to %q (limit %d): %w",
			t.limits.TruncateName(name), t.cwd.name, t.limits.MaxChildren, ErrCapacityExceeded)
		t.logger.Debug("mkdir rejected", "path", t.Path(), "error", err)
		return nil, err
	}

	child := t.CreateContainer(t.cwd, name)
	if err := t.cwd.AddChild(child); err != nil {
		return nil, err
	}
	t.logger.Debug("directory created", "path", CurrentPath(child))
	return child, nil
}

// Touch creates an entry named name holding content under the cursor.
// Capacity and size are checked first, so a rejected call allocates
// nothing.
func (t *Tree) Touch(name string, content []byte) (*Entry, error) {
	if !t.cwd.hasEntryRoom() {
		err := fmt.Errorf("adding file %q to %q (limit %d): %w",
			t.limits.TruncateName(name), t.cwd.name, t.limits.MaxEntries, ErrCapacityExceeded)
		t.logger.Debug("touch rejected", "path", t.Path(), "error", err)
		return nil, err
	}

	entry, err := t.CreateEntry(name, content)
	if err != nil {
		t.logger.Debug("touch rejected", "path", t.Path(), "error", err)
		return nil, err
	}
	if err := t.cwd.AddEntry(entry); err != nil {
		return nil, err
	}
	t.logger.Debug("file created",
		"path", t.Path(),
		"entry", entry.name,
		"size", entry.Size(),
	)
	return entry, nil
}

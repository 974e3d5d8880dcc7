// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

package fstree

import (
	"fmt"
	"slices"
	"time"
)

// Container is a directory: an ordered list of child containers and an
// ordered list of entries, plus a link to the enclosing container.
type Container struct {
	name     string
	parent   *Container
	tree     *Tree
	linked   bool
	children []*Container
	entries  []*Entry
	created  time.Time
}

// Listing is the read-only view of a container produced by List.
type Listing struct {
	// Name is the listed container's name.
	Name string

	// Entries are the entry names in insertion order.
	Entries []string

	// Children are the child container names in insertion order.
	Children []string
}

// Name returns the container's (possibly truncated) name.
func (c *Container) Name() string { return c.name }

// Parent returns the enclosing container, or nil for the root.
func (c *Container) Parent() *Container { return c.parent }

// IsRoot reports whether c is its tree's root.
func (c *Container) IsRoot() bool { return c.parent == nil }

// Created returns the time the container was created.
func (c *Container) Created() time.Time { return c.created }

// ChildCount returns the number of child containers.
func (c *Container) ChildCount() int { return len(c.children) }

// EntryCount returns the number of entries.
func (c *Container) EntryCount() int { return len(c.entries) }

// Children returns the child containers in insertion order. The slice
// is a copy; the containers are not.
func (c *Container) Children() []*Container { return slices.Clone(c.children) }

// Entries returns the entries in insertion order. The slice is a copy;
// the entries are not.
func (c *Container) Entries() []*Entry { return slices.Clone(c.entries) }

// AddChild appends child, which must have been created with c as its
// parent. When c already holds MaxChildren children the call returns
// ErrCapacityExceeded and c is not modified.
func (c *Container) AddChild(child *Container) error {
	if child.parent != c || child.tree != c.tree {
		return fmt.Errorf("adding %q to %q: %w", child.name, c.name, ErrForeignNode)
	}
	if child.linked {
		return fmt.Errorf("adding %q to %q: %w", child.name, c.name, ErrAlreadyLinked)
	}
	if len(c.children) >= c.tree.limits.MaxChildren {
		return fmt.Errorf("adding directory %q to %q (limit %d): %w",
			child.name, c.name, c.tree.limits.MaxChildren, ErrCapacityExceeded)
	}
	child.linked = true
	c.children = append(c.children, child)
	return nil
}

// AddEntry appends entry. When c already holds MaxEntries entries the
// call returns ErrCapacityExceeded and c is not modified.
func (c *Container) AddEntry(entry *Entry) error {
	if entry.tree != c.tree {
		return fmt.Errorf("adding %q to %q: %w", entry.name, c.name, ErrForeignNode)
	}
	if entry.owner != nil {
		return fmt.Errorf("adding %q to %q: %w", entry.name, c.name, ErrAlreadyLinked)
	}
	if len(c.entries) >= c.tree.limits.MaxEntries {
		return fmt.Errorf("adding file %q to %q (limit %d): %w",
			entry.name, c.name, c.tree.limits.MaxEntries, ErrCapacityExceeded)
	}
	entry.owner = c
	c.entries = append(c.entries, entry)
	return nil
}

// FindChild returns the first child container named exactly name.
func (c *Container) FindChild(name string) (*Container, error) {
	for _, child := range c.children {
		if child.name == name {
			return child, nil
		}
	}
	return nil, fmt.Errorf("directory %q in %q: %w", name, c.name, ErrNotFound)
}

// FindEntry returns the first entry named exactly name.
func (c *Container) FindEntry(name string) (*Entry, error) {
	for _, entry := range c.entries {
		if entry.name == name {
			return entry, nil
		}
	}
	return nil, fmt.Errorf("file %q in %q: %w", name, c.name, ErrNotFound)
}

// List returns the names of c's entries and children, each in
// insertion order.
func (c *Container) List() Listing {
	listing := Listing{
		Name:     c.name,
		Entries:  make([]string, 0, len(c.entries)),
		Children: make([]string, 0, len(c.children)),
	}
	for _, entry := range c.entries {
		listing.Entries = append(listing.Entries, entry.name)
	}
	for _, child := range c.children {
		listing.Children = append(listing.Children, child.name)
	}
	return listing
}

// hasChildRoom reports whether one more child fits.
func (c *Container) hasChildRoom() bool {
	return len(c.children) < c.tree.limits.MaxChildren
}

// hasEntryRoom reports whether one more entry fits.
func (c *Container) hasEntryRoom() bool {
	return len(c.entries) < c.tree.limits.MaxEntries
}

// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

package fstree

import (
	"errors"
	"fmt"
)

// Default limits, matching a small MS-DOS machine.
const (
	DefaultMaxNameLength = 12
	DefaultMaxChildren   = 64
	DefaultMaxEntries    = 64
	DefaultMaxEntrySize  = 32 * 1024
	DefaultMemoryBudget  = 640 * 1024
)

// RootName is the name given to every tree's root container.
const RootName = "root"

// Limits bounds the shape and size of a tree.
type Limits struct {
	// MaxNameLength is the longest container or entry name in bytes.
	// Longer names are truncated, not rejected.
	MaxNameLength int

	// MaxChildren is the most child containers one container may hold.
	MaxChildren int

	// MaxEntries is the most entries one container may hold.
	MaxEntries int

	// MaxEntrySize is the largest entry content in bytes, and the
	// capacity every entry buffer is allocated with.
	MaxEntrySize int

	// MemoryBudget is the nominal amount of memory the tree is meant
	// to fit in. It is displayed by Usage and never enforced.
	MemoryBudget int64
}

// DefaultLimits returns the MS-DOS flavoured defaults: 12-byte names,
// 64 directories and 64 files per directory, 32 KiB files, 640 KiB of
// nominal memory.
func DefaultLimits() Limits {
	return Limits{
		MaxNameLength: DefaultMaxNameLength,
		MaxChildren:   DefaultMaxChildren,
		MaxEntries:    DefaultMaxEntries,
		MaxEntrySize:  DefaultMaxEntrySize,
		MemoryBudget:  DefaultMemoryBudget,
	}
}

// Validate reports every limit that is not positive.
func (l Limits) Validate() error {
	var errs []error
	if l.MaxNameLength <= 0 {
		errs = append(errs, fmt.Errorf("max_name_length must be positive, got %d", l.MaxNameLength))
	}
	if l.MaxChildren <= 0 {
		errs = append(errs, fmt.Errorf("max_children must be positive, got %d", l.MaxChildren))
	}
	if l.MaxEntries <= 0 {
		errs = append(errs, fmt.Errorf("max_entries must be positive, got %d", l.MaxEntries))
	}
	if l.MaxEntrySize <= 0 {
		errs = append(errs, fmt.Errorf("max_entry_size must be positive, got %d", l.MaxEntrySize))
	}
	if l.MemoryBudget <= 0 {
		errs = append(errs, fmt.Errorf("memory_budget must be positive, got %d", l.MemoryBudget))
	}
	return errors.Join(errs...)
}

// TruncateName cuts name to at most MaxNameLength bytes.
func (l Limits) TruncateName(name string) string {
	if len(name) > l.MaxNameLength {
		return name[:l.MaxNameLength]
	}
	return name
}

// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

package fstree

// Usage is an estimate of how much memory a tree holds.
type Usage struct {
	// Containers counts every container, the root included.
	Containers int

	// Entries counts every entry.
	Entries int

	// ContentBytes is the sum of entry sizes.
	ContentBytes int64

	// AllocatedBytes is the sum of entry buffer capacities plus the
	// bytes of every name. Buffers are allocated at the maximum entry
	// size, so this grows by MaxEntrySize per entry.
	AllocatedBytes int64

	// Budget is the tree's MemoryBudget.
	Budget int64
}

// OverBudget reports whether the allocation estimate exceeds the
// budget. Nothing acts on it: the budget is descriptive.
func (u Usage) OverBudget() bool {
	return u.AllocatedBytes > u.Budget
}

// Usage walks the whole tree and totals its containers, entries and
// bytes.
func (t *Tree) Usage() Usage {
	usage := Usage{Budget: t.limits.MemoryBudget}
	// The walk function never fails.
	_ = Walk(t.root, func(container *Container, _ int) error {
		usage.Containers++
		usage.AllocatedBytes += int64(len(container.name))
		for _, entry := range container.entries {
			usage.Entries++
			usage.ContentBytes += int64(len(entry.content))
			usage.AllocatedBytes += int64(cap(entry.content) + len(entry.name))
		}
		return nil
	})
	return usage
}

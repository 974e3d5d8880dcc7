// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

// Package fstree is the in-memory directory tree behind the socdos
// shell: containers (directories) holding child containers and entries
// (files), a single current-directory cursor, and the DOS-style limits
// that bound all of it.
//
// A [Tree] owns its root [Container] and everything below it. Each
// container owns its children and entries exclusively; the parent link
// a container keeps is only a lookup path back towards the root. Nothing
// is ever removed, moved, or renamed once linked.
//
// Limits are enforced at insertion time. [Container.AddChild] and
// [Container.AddEntry] check the fan-out bound before touching the
// container and return [ErrCapacityExceeded] without mutation when it
// is reached; [Tree.Mkdir] and [Tree.Touch] perform the same check
// before allocating anything. Entry buffers are always allocated at
// [Limits].MaxEntrySize so an editor can write up to the limit without
// reallocating. The memory budget in [Limits] is reported by
// [Tree.Usage] but never enforced.
//
// Names are not checked for uniqueness. Two siblings may share a name;
// lookups return the first one inserted.
//
// Navigation resolves exactly one path segment per call:
// [Tree.ChangeDirectory] accepts either [UpMarker] or the name of a
// child of the cursor. [CurrentPath] rebuilds a container's path by
// walking parent links, with the root's own name as the first segment
// ("root/a/b").
//
// A Tree is not safe for concurrent use.
package fstree

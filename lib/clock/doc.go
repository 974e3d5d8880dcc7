// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source.
//
// The file tree stamps containers and entries with creation and
// modification times. Production code passes Real(); tests pass Fake()
// so timestamps are deterministic and listings can be compared exactly.
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	tree := fstree.New(fstree.DefaultLimits(), fstree.WithClock(c))
//	c.Advance(time.Minute) // next edit is stamped one minute later
//
// This package has no socdos-internal dependencies.
package clock

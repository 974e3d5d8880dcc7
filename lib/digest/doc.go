// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

// Package digest computes BLAKE3 keyed digests of entry content and
// encoded tree snapshots.
//
// Each kind of input hashes under its own 32-byte domain key, so an
// entry whose bytes happen to equal a snapshot encoding never shares a
// digest with that snapshot. [Format] and [Parse] convert digests to
// and from the 64-character hex form shown by the shell; [Short] is the
// abbreviated form used in listings.
package digest

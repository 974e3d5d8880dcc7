// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the deterministic CBOR encoding used for tree
// snapshots.
//
// A snapshot's fingerprint is a digest of its encoded bytes, so the
// encoding must be canonical: the encoder uses Core Deterministic
// Encoding (RFC 8949 §4.2), with sorted map keys, smallest integer
// encoding and no indefinite-length items. Same logical data always
// produces identical bytes.
//
//	data, err := codec.Marshal(snapshot)
//	err = codec.Unmarshal(data, &snapshot)
//
// Types encoded through this package use `cbor` struct tags.
package codec

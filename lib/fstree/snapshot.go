// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

package fstree

import (
	"bytes"
	"fmt"

	"github.com/socdos/socdos/lib/codec"
	"github.com/socdos/socdos/lib/digest"
)

// Snapshot is a value copy of a container and everything below it.
// Timestamps are left out: two subtrees with the same names and
// contents in the same order have equal snapshots.
type Snapshot struct {
	Name     string          `cbor:"name"`
	Entries  []EntrySnapshot `cbor:"entries"`
	Children []Snapshot      `cbor:"children"`
}

// EntrySnapshot is a value copy of one entry.
type EntrySnapshot struct {
	Name    string `cbor:"name"`
	Content []byte `cbor:"content"`
}

// TakeSnapshot copies c and its descendants.
func TakeSnapshot(c *Container) Snapshot {
	snapshot := Snapshot{
		Name:     c.name,
		Entries:  make([]EntrySnapshot, 0, len(c.entries)),
		Children: make([]Snapshot, 0, len(c.children)),
	}
	for _, entry := range c.entries {
		snapshot.Entries = append(snapshot.Entries, EntrySnapshot{
			Name:    entry.name,
			Content: bytes.Clone(entry.content),
		})
	}
	for _, child := range c.children {
		snapshot.Children = append(snapshot.Children, TakeSnapshot(child))
	}
	return snapshot
}

// Encode returns the deterministic CBOR encoding of s.
func (s Snapshot) Encode() ([]byte, error) {
	data, err := codec.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot of %q: %w", s.Name, err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot produced by Encode.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snapshot Snapshot
	if err := codec.Unmarshal(data, &snapshot); err != nil {
		return Snapshot{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	return snapshot, nil
}

// Fingerprint returns the snapshot-domain digest of the encoding.
func (s Snapshot) Fingerprint() (digest.Hash, error) {
	data, err := s.Encode()
	if err != nil {
		return digest.Hash{}, err
	}
	return digest.Snapshot(data), nil
}

// Diagnostic returns the encoding in CBOR diagnostic notation.
func (s Snapshot) Diagnostic() (string, error) {
	data, err := s.Encode()
	if err != nil {
		return "", err
	}
	return codec.Diagnose(data)
}

// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Hash is a 32-byte BLAKE3 digest.
type Hash [32]byte

// domainKey is a 32-byte key for BLAKE3 keyed hashing.
type domainKey [32]byte

// Domain separation keys: ASCII domain names, zero-padded to 32 bytes.
// Changing them changes every fingerprint the shell has ever printed.
var (
	contentDomainKey = domainKey{
		's', 'o', 'c', 'd', 'o', 's', '.', 'e', 'n', 't', 'r', 'y', '.',
		'c', 'o', 'n', 't', 'e', 'n', 't', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	snapshotDomainKey = domainKey{
		's', 'o', 'c', 'd', 'o', 's', '.', 't', 'r', 'e', 'e', '.',
		's', 'n', 'a', 'p', 's', 'h', 'o', 't', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
)

// Content computes the content-domain digest of an entry's bytes.
func Content(data []byte) Hash {
	return keyedHash(contentDomainKey, data)
}

// Snapshot computes the snapshot-domain digest of an encoded snapshot.
func Snapshot(encoded []byte) Hash {
	return keyedHash(snapshotDomainKey, encoded)
}

// Format returns the hex-encoded string representation of a hash.
func Format(hash Hash) string {
	return hex.EncodeToString(hash[:])
}

// Short returns the abbreviated form: "b3-" followed by the first 12
// hex characters.
func Short(hash Hash) string {
	return "b3-" + hex.EncodeToString(hash[:6])
}

// Parse parses a 64-character hex string into a Hash.
func Parse(hexString string) (Hash, error) {
	var hash Hash
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return hash, fmt.Errorf("parsing digest: %w", err)
	}
	if len(decoded) != len(hash) {
		return hash, fmt.Errorf("digest is %d bytes, want %d", len(decoded), len(hash))
	}
	copy(hash[:], decoded)
	return hash, nil
}

// keyedHash computes the BLAKE3 keyed hash of data under key.
func keyedHash(key domainKey, data []byte) Hash {
	// NewKeyed only fails for a key that is not 32 bytes, which the
	// domainKey type rules out.
	hasher, err := blake3.NewKeyed(key[:])
	if err != nil {
		panic("digest: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var hash Hash
	copy(hash[:], hasher.Sum(nil))
	return hash
}

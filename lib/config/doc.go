// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for socdos.
//
// Configuration is loaded from a single file specified by either the
// SOCDOS_CONFIG environment variable (via [Load]) or the --config flag
// (via [LoadFile]). Running without a file is normal: [Default] holds
// the MS-DOS limits and interactive shell settings, and a file only
// overrides the keys it sets.
//
// Files ending in .json or .jsonc are stripped of comments and trailing
// commas before parsing; everything else is parsed as YAML. Byte sizes
// accept plain integers or humanized strings ("32KiB", "640 KiB").
//
// Key exports:
//
//   - [Config] -- master struct with Limits, Shell and Log
//   - [Default] -- returns a Config with the built-in defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//
// This package depends on no other socdos package except lib/fstree,
// whose Limits it produces.
package config

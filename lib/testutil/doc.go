// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for socdos packages.
package testutil

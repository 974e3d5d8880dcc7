// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides the terminal presentation layer for the socdos
// shell: a colour theme, lipgloss styles bound to one output stream,
// ANSI-aware column layout, and chroma syntax highlighting for file
// contents.
//
// Colour is decided once per output stream by [NewStyles]. With colour
// disabled every style renders its input unchanged, so shell transcripts
// written to a pipe or a test buffer are plain text.
package tui

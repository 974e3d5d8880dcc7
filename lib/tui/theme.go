// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the shell. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Listing colors.
	DirectoryForeground lipgloss.Color
	FileForeground      lipgloss.Color

	// Prompt and banner chrome.
	PromptForeground lipgloss.Color
	HeaderForeground lipgloss.Color

	// Outcome colors.
	SuccessForeground lipgloss.Color
	WarningForeground lipgloss.Color
	ErrorForeground   lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	DirectoryForeground: lipgloss.Color("75"),  // blue
	FileForeground:      lipgloss.Color("252"), // same as NormalText

	PromptForeground: lipgloss.Color("114"), // green
	HeaderForeground: lipgloss.Color("255"),

	SuccessForeground: lipgloss.Color("114"), // green
	WarningForeground: lipgloss.Color("220"), // yellow/amber
	ErrorForeground:   lipgloss.Color("196"), // red
}

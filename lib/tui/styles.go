// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color modes accepted by NewStyles.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Styles holds the lipgloss styles for one output stream.
type Styles struct {
	renderer *lipgloss.Renderer

	Prompt    lipgloss.Style
	Header    lipgloss.Style
	Directory lipgloss.Style
	File      lipgloss.Style
	Faint     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
}

// NewStyles binds theme to out. In ColorAuto mode the profile comes
// from the environment: a terminal gets color, a pipe does not, and
// NO_COLOR is honored. ColorAlways forces the 256-color profile.
func NewStyles(out io.Writer, theme Theme, mode string) (*Styles, error) {
	var profile termenv.Profile
	switch mode {
	case ColorAuto, "":
		profile = termenv.NewOutput(out).EnvColorProfile()
	case ColorAlways:
		profile = termenv.ANSI256
	case ColorNever:
		profile = termenv.Ascii
	default:
		return nil, fmt.Errorf("unknown color mode %q (want %s, %s or %s)", mode, ColorAuto, ColorAlways, ColorNever)
	}

	// lipgloss re-detects the profile from the writer unless it is set
	// explicitly after construction.
	renderer := lipgloss.NewRenderer(out, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)

	return &Styles{
		renderer:  renderer,
		Prompt:    renderer.NewStyle().Foreground(theme.PromptForeground).Bold(true),
		Header:    renderer.NewStyle().Foreground(theme.HeaderForeground).Bold(true),
		Directory: renderer.NewStyle().Foreground(theme.DirectoryForeground).Bold(true),
		File:      renderer.NewStyle().Foreground(theme.FileForeground),
		Faint:     renderer.NewStyle().Foreground(theme.FaintText),
		Success:   renderer.NewStyle().Foreground(theme.SuccessForeground),
		Warning:   renderer.NewStyle().Foreground(theme.WarningForeground),
		Error:     renderer.NewStyle().Foreground(theme.ErrorForeground),
	}, nil
}

// PlainStyles returns styles that never emit escape sequences.
func PlainStyles(out io.Writer) *Styles {
	styles, _ := NewStyles(out, DefaultTheme, ColorNever)
	return styles
}

// Colored reports whether the styles emit color escapes.
func (s *Styles) Colored() bool {
	return s.renderer.ColorProfile() != termenv.Ascii
}

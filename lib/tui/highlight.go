// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"io"
	"slices"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/quick"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultHighlightStyle is the chroma style used when none is
// configured.
const DefaultHighlightStyle = "monokai"

// LexerFor returns the chroma lexer name for filename, or "" when the
// name matches no known language.
func LexerFor(filename string) string {
	lexer := lexers.Match(filename)
	if lexer == nil {
		return ""
	}
	return lexer.Config().Name
}

// KnownHighlightStyle reports whether chroma has a style called name.
func KnownHighlightStyle(name string) bool {
	return slices.Contains(styles.Names(), name)
}

// Highlight writes content to w, syntax-highlighted by the language
// its filename implies. Content is written unchanged when the styles
// are uncolored, when the filename matches no lexer, or when chroma
// fails.
func (s *Styles) Highlight(w io.Writer, filename, content, style string) error {
	language := LexerFor(filename)
	if !s.Colored() || language == "" {
		_, err := io.WriteString(w, content)
		return err
	}
	if style == "" {
		style = DefaultHighlightStyle
	}
	if err := quick.Highlight(w, content, language, "terminal256", style); err != nil {
		_, err = io.WriteString(w, content)
		return err
	}
	return nil
}

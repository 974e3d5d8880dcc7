// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

package shell

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"mkdir", "mkdir", 0},
		{"mkdri", "mkdir", 2},
		{"mkdr", "mkdir", 1},
		{"kitten", "sitting", 3},
	}
	for _, test := range tests {
		if got := levenshtein(test.a, test.b); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{
		{Name: "mkdir"},
		{Name: "touch"},
		{Name: "quit", Aliases: []string{"exit"}},
	}
	tests := []struct {
		input string
		want  string
	}{
		{"mkdr", "mkdir"},
		{"tuch", "touch"},
		{"exti", "exit"},
		{"xyzzyplugh", ""},
	}
	for _, test := range tests {
		if got := suggestCommand(test.input, commands); got != test.want {
			t.Errorf("suggestCommand(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

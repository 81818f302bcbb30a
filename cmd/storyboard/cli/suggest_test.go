// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1}, // substitution
		{"abc", "ab", 1},  // deletion
		{"ab", "abc", 1},  // insertion
		{"abc", "bac", 2}, // transposition
		{"kitten", "sitting", 3},
		{"export", "exprot", 2},
		{"version", "verison", 2},
	}

	for _, test := range tests {
		t.Run(test.a+"/"+test.b, func(t *testing.T) {
			if got := levenshtein(test.a, test.b); got != test.want {
				t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
			}
			if got := levenshtein(test.b, test.a); got != test.want {
				t.Errorf("levenshtein(%q, %q) = %d, want %d", test.b, test.a, got, test.want)
			}
		})
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{
		{Name: "init"},
		{Name: "list"},
		{Name: "export"},
		{Name: "version"},
	}

	tests := []struct {
		input string
		want  string
	}{
		{"lst", "list"},
		{"exprot", "export"},
		{"vrsion", "version"},
		{"inti", "init"},
		{"zzzzzzzzz", ""},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			if got := suggestCommand(test.input, commands); got != test.want {
				t.Errorf("suggestCommand(%q) = %q, want %q", test.input, got, test.want)
			}
		})
	}
}

func TestSuggestFlag(t *testing.T) {
	makeFlagSet := func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flagSet.String("store", "", "")
		flagSet.String("format", "", "")
		flagSet.String("log-level", "", "")
		flagSet.BoolP("force", "f", false, "")
		return flagSet
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "double dash typo", args: []string{"--stroe"}, want: "--store"},
		{name: "single dash typo", args: []string{"-fromat"}, want: "--format"},
		{name: "with value", args: []string{"--log-levle=debug"}, want: "--log-level"},
		{name: "known flags skipped", args: []string{"--store", "x", "-f", "--forse"}, want: "--force"},
		{name: "nothing close", args: []string{"--zzzzzzzzz"}, want: ""},
		{name: "positional only", args: []string{"backup.json"}, want: ""},
		{name: "after terminator", args: []string{"--", "--stroe"}, want: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := suggestFlag(test.args, makeFlagSet()); got != test.want {
				t.Errorf("suggestFlag(%v) = %q, want %q", test.args, got, test.want)
			}
		})
	}
}

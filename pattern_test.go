// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package excise

import "testing"

func TestStripClassGroups(t *testing.T) {
	for _, tc := range []struct {
		pattern string
		want    string
	}{
		{pattern: "", want: ""},
		{pattern: "abc", want: "abc"},
		{pattern: "[:digit:]", want: ""},
		{pattern: "x[:digit:]y", want: "xy"},
		{pattern: "[:alpha:][:digit:]", want: ""},
		{pattern: "a[:alpha:]b[:digit:]c", want: "abc"},
		// unmatched "[:" stays literal
		{pattern: "[:x", want: "[:x"},
		{pattern: "a[:digit:]b[:x", want: "ab[:x"},
		// a stray ":]" with no opener is literal
		{pattern: "a:]b", want: "a:]b"},
	} {
		if got := stripClassGroups(tc.pattern); got != tc.want {
			t.Errorf("stripClassGroups(%q) = %q, want %q", tc.pattern, got, tc.want)
		}
	}
}

func TestClassNames(t *testing.T) {
	want := []string{
		"[:alnum:]", "[:alpha:]", "[:blank:]", "[:cntrl:]", "[:digit:]",
		"[:graph:]", "[:lower:]", "[:print:]", "[:punct:]", "[:space:]",
		"[:htab:]", "[:vtab:]", "[:newline:]", "[:upper:]", "[:xdigit:]",
	}
	got := ClassNames()
	if len(got) != len(want) {
		t.Fatalf("len(ClassNames()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ClassNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package excise

import (
	"strings"

	"github.com/mdhender/excise/chartype"
)

// A pattern mixes literal characters with bracketed class tokens like
// "[:digit:]". Class tokens select an entire category for unbounded removal;
// whatever is left after the tokens are stripped is treated as literal
// characters subject to the removal limit.

// classToken binds a bracketed class name to its membership predicate.
type classToken struct {
	name string
	pred func(byte) bool
}

// classTokens lists the recognized class tokens in the order they are
// checked against the pattern. A token is either present or absent in the
// pattern text; repeating one has no additional effect.
//
// Note that "[:space:]" matches the space character itself, not the full
// whitespace class.
var classTokens = []classToken{
	{"[:alnum:]", chartype.IsAlnum},
	{"[:alpha:]", chartype.IsAlpha},
	{"[:blank:]", chartype.IsBlank},
	{"[:cntrl:]", chartype.IsCntrl},
	{"[:digit:]", chartype.IsDigit},
	{"[:graph:]", chartype.IsGraph},
	{"[:lower:]", chartype.IsLower},
	{"[:print:]", chartype.IsPrint},
	{"[:punct:]", chartype.IsPunct},
	{"[:space:]", chartype.IsASpace},
	{"[:htab:]", chartype.IsHTab},
	{"[:vtab:]", chartype.IsVTab},
	{"[:newline:]", chartype.IsNewline},
	{"[:upper:]", chartype.IsUpper},
	{"[:xdigit:]", chartype.IsXDigit},
}

// ClassNames returns the names of the recognized class tokens in the order
// they are checked.
func ClassNames() []string {
	names := make([]string, 0, len(classTokens))
	for _, tok := range classTokens {
		names = append(names, tok.name)
	}
	return names
}

// stripClassGroups removes every well-formed "[:" ... ":]" group from the
// pattern, leaving only its literal-character portion. An unmatched "[:"
// with no closing ":]" is left intact; its characters are treated as
// literals.
func stripClassGroups(pattern string) string {
	for {
		i := strings.Index(pattern, "[:")
		if i < 0 {
			return pattern
		}
		j := strings.Index(pattern[i+2:], ":]")
		if j < 0 {
			return pattern
		}
		pattern = pattern[:i] + pattern[i+2+j+2:]
	}
}

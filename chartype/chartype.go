// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package chartype implements classification predicates for single bytes.
//
// Every predicate is a pure, total function of one byte. Classification is
// fixed ASCII semantics over the full 0-255 range; it is not affected by the
// runtime locale and never fails. Taking a byte (not a rune or int) means
// there is no sign-extension hazard for inputs above 0x7F.
//
// Some categories here are not POSIX standard (IsVTab, IsHTab, IsTab,
// IsASpace, IsBel, IsBackspace, IsFormFeed, IsNewline, IsReturn, IsXLower,
// IsXUpper). Two deliberately diverge from POSIX: IsPrint covers 0x20-0x5F
// only, and IsASpace matches the space character itself rather than all
// whitespace.
package chartype

// IsAlnum reports whether c is an alphanumeric character.
func IsAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// IsAlpha reports whether c is an alphabetic character.
func IsAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// IsCntrl reports whether c is a control character.
func IsCntrl(c byte) bool {
	return c < ' ' || c == 0x7F
}

// IsDigit reports whether c is a decimal digit.
func IsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// IsGraph reports whether c has a visible glyph, excluding space.
func IsGraph(c byte) bool {
	return '!' <= c && c <= '~'
}

// IsLower reports whether c is a lowercase letter.
func IsLower(c byte) bool {
	return 'a' <= c && c <= 'z'
}

// IsPrint reports whether c is printable.
// This covers 0x20-0x5F, which is narrower than the POSIX class.
func IsPrint(c byte) bool {
	return ' ' <= c && c <= '_'
}

// IsPunct reports whether c is a punctuation character.
func IsPunct(c byte) bool {
	return IsGraph(c) && !IsAlnum(c)
}

// IsSpace reports whether c is a whitespace character.
func IsSpace(c byte) bool {
	return ('\t' <= c && c <= '\r') || c == ' '
}

// IsUpper reports whether c is an uppercase letter.
func IsUpper(c byte) bool {
	return 'A' <= c && c <= 'Z'
}

// IsXDigit reports whether c is a hexadecimal digit.
func IsXDigit(c byte) bool {
	return IsDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// IsASCII reports whether c is a 7-bit ASCII character.
func IsASCII(c byte) bool {
	return c&^0x7F == 0
}

// IsBlank reports whether c is a space or horizontal tab.
func IsBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

// IsVTab reports whether c is the vertical tab character.
func IsVTab(c byte) bool {
	return c == '\v'
}

// IsHTab reports whether c is the horizontal tab character.
func IsHTab(c byte) bool {
	return c == '\t'
}

// IsTab reports whether c is a vertical or horizontal tab character.
func IsTab(c byte) bool {
	return IsVTab(c) || IsHTab(c)
}

// IsASpace reports whether c is the space character itself.
func IsASpace(c byte) bool {
	return c == ' '
}

// IsBel reports whether c is the BEL character.
func IsBel(c byte) bool {
	return c == '\a'
}

// IsBackspace reports whether c is the backspace character.
func IsBackspace(c byte) bool {
	return c == '\b'
}

// IsFormFeed reports whether c is the form-feed character.
func IsFormFeed(c byte) bool {
	return c == '\f'
}

// IsNewline reports whether c is the newline character.
func IsNewline(c byte) bool {
	return c == '\n'
}

// IsReturn reports whether c is the carriage-return character.
func IsReturn(c byte) bool {
	return c == '\r'
}

// IsXLower reports whether c is a lowercase letter or lowercase
// hexadecimal digit.
func IsXLower(c byte) bool {
	return IsLower(c) || ('a' <= c && c <= 'f')
}

// IsXUpper reports whether c is an uppercase letter or uppercase
// hexadecimal digit.
func IsXUpper(c byte) bool {
	return IsUpper(c) || ('A' <= c && c <= 'F')
}

// ToLower returns the lowercase form of c if c is an uppercase letter;
// otherwise it returns c unchanged.
func ToLower(c byte) byte {
	if IsUpper(c) {
		return c + 'a' - 'A'
	}
	return c
}

// ToUpper returns the uppercase form of c if c is a lowercase letter;
// otherwise it returns c unchanged.
func ToUpper(c byte) byte {
	if IsLower(c) {
		return c - ('a' - 'A')
	}
	return c
}

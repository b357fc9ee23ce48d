// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package excise removes characters from a byte buffer according to a
// pattern mixing literal characters and bracketed class tokens such as
// "[:digit:]". Classification of single bytes lives in the chartype
// subpackage; this package resolves patterns against buffers.
package excise

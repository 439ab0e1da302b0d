// Copyright 2021-2024 Sebastian Lederer. See the file LICENSE.md for details
package machine

import (
	"unicode"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// The driver stores one byte per cell and the display interprets it as code
// page 437. Host text is converted on the way in, cell codes on the way out.

// NewEncoder returns a UTF-8 to CP437 encoder that substitutes characters the
// code page lacks. Encoders are stateful, use one per stream.
func NewEncoder() *encoding.Encoder {
	return encoding.ReplaceUnsupported(charmap.CodePage437.NewEncoder())
}

// ToCodePage converts a complete UTF-8 text.
func ToCodePage(p []byte) []byte {
	out, err := NewEncoder().Bytes(p)
	if err != nil {
		return p
	}
	return out
}

// KeyByte converts a typed character to its cell code.
func KeyByte(r rune) (byte, bool) {
	return charmap.CodePage437.EncodeRune(r)
}

// Glyph is the character drawn for a cell code. Code 0 and control codes
// show as blanks.
func Glyph(code byte) rune {
	r := charmap.CodePage437.DecodeByte(code)
	if code == 0 || unicode.IsControl(r) {
		return ' '
	}
	return r
}

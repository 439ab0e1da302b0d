// Copyright 2021-2024 Sebastian Lederer. See the file LICENSE.md for details
package vga

// Color is one of the 16 text mode colours.
type Color uint8

const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	Pink
	Yellow
	White
)

// Attr is the packed attribute byte of a cell:
// bits 0-3 foreground, bits 4-6 background, bit 7 blink.
type Attr uint8

// DefaultAttr is white on black without blink.
var DefaultAttr = NewAttr(White, Black, false)

// NewAttr packs a foreground, background and blink flag. Only the low three
// bits of the background survive, bit 7 belongs to blink.
func NewAttr(fg, bg Color, blink bool) Attr {
	a := Attr(bg&0x07)<<4 | Attr(fg&0x0F)
	if blink {
		a |= 0x80
	}
	return a
}

func (a Attr) Foreground() Color { return Color(a & 0x0F) }
func (a Attr) Background() Color { return Color(a>>4) & 0x07 }
func (a Attr) Blink() bool       { return a&0x80 != 0 }

// WithForeground returns a with the foreground replaced.
func (a Attr) WithForeground(fg Color) Attr {
	return NewAttr(fg, a.Background(), a.Blink())
}

// Copyright 2021-2024 Sebastian Lederer. See the file LICENSE.md for details
package machine

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"vgaemu/vga"
)

const CharWidth = 8
const CharHeight = 16
const ScreenWidth = vga.Width * CharWidth
const ScreenHeight = vga.Height * CharHeight

// basicfont glyphs are 13 pixels high, centred in the 16 pixel cell
const glyphBaseline = 13

// Palette is the default 16 colour text mode palette.
var Palette = [16]color.RGBA{
	{0x00, 0x00, 0x00, 0xFF},
	{0x00, 0x00, 0xAA, 0xFF},
	{0x00, 0xAA, 0x00, 0xFF},
	{0x00, 0xAA, 0xAA, 0xFF},
	{0xAA, 0x00, 0x00, 0xFF},
	{0xAA, 0x00, 0xAA, 0xFF},
	{0xAA, 0x55, 0x00, 0xFF},
	{0xAA, 0xAA, 0xAA, 0xFF},
	{0x55, 0x55, 0x55, 0xFF},
	{0x55, 0x55, 0xFF, 0xFF},
	{0x55, 0xFF, 0x55, 0xFF},
	{0x55, 0xFF, 0xFF, 0xFF},
	{0xFF, 0x55, 0x55, 0xFF},
	{0xFF, 0x55, 0xFF, 0xFF},
	{0xFF, 0xFF, 0x55, 0xFF},
	{0xFF, 0xFF, 0xFF, 0xFF},
}

// Painter renders text memory into pixels the way the display controller
// scans it out. It only repaints when memory, cursor or blink phase changed.
type Painter struct {
	Pixels *image.RGBA

	painted     bool
	last        [vga.Size]byte
	lastCursor  int
	lastEnabled bool
	lastPhase   bool
}

func NewPainter() *Painter {
	return &Painter{Pixels: image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight))}
}

// Paint returns false when nothing changed since the last call.
func (p *Painter) Paint(bus *Bus, crtc *CRTC, phase bool) bool {
	var mem [vga.Size]byte
	bus.Snapshot(&mem)
	cursor := crtc.CursorOffset()
	enabled := crtc.CursorEnabled()

	if p.painted && mem == p.last && cursor == p.lastCursor && enabled == p.lastEnabled && phase == p.lastPhase {
		return false
	}

	for i := 0; i < vga.Width*vga.Height; i++ {
		p.paintCell(i/vga.Width, i%vga.Width, mem[i*vga.CellSize], vga.Attr(mem[i*vga.CellSize+1]), phase)
	}
	if enabled && phase && cursor < vga.Width*vga.Height {
		p.paintCursor(crtc, cursor/vga.Width, cursor%vga.Width, vga.Attr(mem[cursor*vga.CellSize+1]))
	}

	p.painted = true
	p.last = mem
	p.lastCursor = cursor
	p.lastEnabled = enabled
	p.lastPhase = phase
	return true
}

func (p *Painter) paintCell(row, col int, code byte, attr vga.Attr, phase bool) {
	x, y := col*CharWidth, row*CharHeight
	bg := Palette[attr.Background()]
	draw.Draw(p.Pixels, image.Rect(x, y, x+CharWidth, y+CharHeight), image.NewUniform(bg), image.Point{}, draw.Src)

	if attr.Blink() && !phase {
		return
	}
	r := Glyph(code)
	if r == ' ' {
		return
	}
	d := font.Drawer{
		Dst:  p.Pixels,
		Src:  image.NewUniform(Palette[attr.Foreground()]),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y+glyphBaseline),
	}
	d.DrawString(string(r))
}

func (p *Painter) paintCursor(crtc *CRTC, row, col int, attr vga.Attr) {
	start, end := crtc.CursorShape()
	if end > CharHeight-1 {
		end = CharHeight - 1
	}
	if start > end {
		return
	}
	x, y := col*CharWidth, row*CharHeight
	fg := Palette[attr.Foreground()]
	draw.Draw(p.Pixels, image.Rect(x, y+start, x+CharWidth, y+end+1), image.NewUniform(fg), image.Point{}, draw.Src)
}

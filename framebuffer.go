// Copyright 2021-2024 Sebastian Lederer. See the file LICENSE.md for details
package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"vgaemu/machine"
)

// Framebuffer is the window's view of text memory. The painter does the
// scan out, the image is only refreshed when it reports a change.
type Framebuffer struct {
	framebuffer *ebiten.Image
	painter     *machine.Painter
}

func (f *Framebuffer) initialize() {
	f.framebuffer = ebiten.NewImage(machine.ScreenWidth, machine.ScreenHeight)
	f.painter = machine.NewPainter()
}

func (f *Framebuffer) refresh(bus *machine.Bus, crtc *machine.CRTC, phase bool) {
	if f.painter.Paint(bus, crtc, phase) {
		f.framebuffer.WritePixels(f.painter.Pixels.Pix)
	}
}

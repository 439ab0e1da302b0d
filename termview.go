// Copyright 2021-2024 Sebastian Lederer. See the file LICENSE.md for details
package main

import (
	"time"

	"github.com/nsf/termbox-go"

	"vgaemu/machine"
	"vgaemu/vga"
)

// termbox only has the eight dark colours, the bright half is drawn bold
var termColors = [8]termbox.Attribute{
	termbox.ColorBlack,
	termbox.ColorBlue,
	termbox.ColorGreen,
	termbox.ColorCyan,
	termbox.ColorRed,
	termbox.ColorMagenta,
	termbox.ColorYellow,
	termbox.ColorWhite,
}

func termAttr(attr vga.Attr, phase bool) (fg, bg termbox.Attribute) {
	bg = termColors[attr.Background()&0x07]
	fg = termColors[attr.Foreground()&0x07]
	if attr.Foreground() >= vga.DarkGray {
		fg |= termbox.AttrBold
	}
	if attr.Blink() && !phase {
		fg = bg
	}
	return fg, bg
}

func drawTerm() {
	phase := blink.Phase()
	for r := 0; r < vga.Height; r++ {
		for c := 0; c < vga.Width; c++ {
			code, attr := bus.Cell(r, c)
			fg, bg := termAttr(attr, phase)
			termbox.SetCell(c, r, machine.Glyph(code), fg, bg)
		}
	}
	row, col := crtc.CursorPos()
	if crtc.CursorEnabled() && row < vga.Height {
		termbox.SetCursor(col, row)
	} else {
		termbox.HideCursor()
	}
	termbox.Flush()
}

func termKey(ev termbox.Event) (byte, bool) {
	if ev.Ch != 0 {
		return machine.KeyByte(ev.Ch)
	}
	// the remaining keys below 0x80 carry their ASCII code
	if ev.Key < 0x80 {
		return byte(ev.Key), true
	}
	return 0, false
}

func runTerm(inputs <-chan machine.Input) error {
	if err := termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()

	events := make(chan termbox.Event)
	go func() {
		for {
			events <- termbox.PollEvent()
		}
	}()

	ticker := time.NewTicker(machine.MSecsPerTick * time.Millisecond)
	defer ticker.Stop()

	for {
		drawTerm()
		select {
		case ev := <-events:
			switch ev.Type {
			case termbox.EventKey:
				if ev.Key == termbox.KeyCtrlC || ev.Key == termbox.KeyF12 {
					return nil
				}
				if b, ok := termKey(ev); ok {
					kernel.Key(b)
				}
			case termbox.EventError:
				return ev.Err
			}
		case in := <-inputs:
			kernel.Handle(in)
		case <-ticker.C:
		}
	}
}

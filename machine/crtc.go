// Copyright 2021-2024 Sebastian Lederer. See the file LICENSE.md for details
package machine

import (
	"fmt"
	"log"

	"vgaemu/vga"
)

const CRTC_INDEX = 0x3D4
const CRTC_DATA = 0x3D5
const CRTC_REGS = 0x19

const CR_CURSOR_START = 0x0A
const CR_CURSOR_END = 0x0B
const CR_CURSOR_HI = 0x0E
const CR_CURSOR_LO = 0x0F

const CURSOR_DISABLE = 0x20

// CRTC is the part of the CRT controller the console touches: an index
// register selecting one of the data registers.
type CRTC struct {
	index byte
	regs  [CRTC_REGS]byte
	trace bool
}

func NewCRTC(trace bool) *CRTC {
	c := &CRTC{trace: trace}
	// BIOS defaults for mode 03h: underline cursor on scanlines 13-14
	c.regs[CR_CURSOR_START] = 0x0D
	c.regs[CR_CURSOR_END] = 0x0E
	return c
}

func (c *CRTC) read(port uint16) (byte, error) {
	switch port {
	case CRTC_INDEX:
		return c.index, nil
	case CRTC_DATA:
		if int(c.index) >= CRTC_REGS {
			return 0xFF, nil
		}
		return c.regs[c.index], nil
	}
	return 0, fmt.Errorf("CRTC has no port %04X", port)
}

func (c *CRTC) write(value byte, port uint16) error {
	switch port {
	case CRTC_INDEX:
		c.index = value
	case CRTC_DATA:
		if int(c.index) >= CRTC_REGS {
			return fmt.Errorf("CRTC register %02X out of range", c.index)
		}
		c.regs[c.index] = value
		if c.trace {
			log.Printf("CRTC reg %02X = %02X", c.index, value)
		}
	default:
		return fmt.Errorf("CRTC has no port %04X", port)
	}
	return nil
}

// CursorOffset is the cell index held in the cursor location registers.
func (c *CRTC) CursorOffset() int {
	return int(c.regs[CR_CURSOR_HI])<<8 | int(c.regs[CR_CURSOR_LO])
}

// CursorPos returns the cursor cell. Offsets past the screen are reported
// as is, the display just doesn't draw them.
func (c *CRTC) CursorPos() (row, col int) {
	off := c.CursorOffset()
	return off / vga.Width, off % vga.Width
}

// CursorEnabled reports whether the disable bit is clear. Setting the
// cursor location does not touch it.
func (c *CRTC) CursorEnabled() bool {
	return c.regs[CR_CURSOR_START]&CURSOR_DISABLE == 0
}

// CursorShape returns the first and last scanline of the cursor.
func (c *CRTC) CursorShape() (start, end int) {
	return int(c.regs[CR_CURSOR_START] & 0x1F), int(c.regs[CR_CURSOR_END] & 0x1F)
}

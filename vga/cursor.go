// Copyright 2021-2024 Sebastian Lederer. See the file LICENSE.md for details
package vga

const (
	CommandPort uint16 = 0x3D4
	DataPort    uint16 = 0x3D5

	regCursorStart = 0x0A
	regCursorHigh  = 0x0E
	regCursorLow   = 0x0F

	cursorDisable = 0x20
)

// Ports writes a byte to an I/O port.
type Ports interface {
	Outb(port uint16, value byte)
}

// Cursor drives the CRT controller's cursor registers through an
// index/data port pair.
type Cursor struct {
	ports Ports
}

func NewCursor(ports Ports) *Cursor {
	return &Cursor{ports: ports}
}

// SetPosition moves the hardware cursor to (row, col). The low byte goes
// first.
func (c *Cursor) SetPosition(row, col int) {
	pos := uint16(row*Width + col)

	c.ports.Outb(CommandPort, regCursorLow)
	c.ports.Outb(DataPort, byte(pos&0xFF))

	c.ports.Outb(CommandPort, regCursorHigh)
	c.ports.Outb(DataPort, byte((pos>>8)&0xFF))
}

// Hide sets the cursor disable bit.
func (c *Cursor) Hide() {
	c.ports.Outb(CommandPort, regCursorStart)
	c.ports.Outb(DataPort, cursorDisable)
}

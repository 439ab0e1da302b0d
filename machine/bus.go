// Copyright 2021-2024 Sebastian Lederer. See the file LICENSE.md for details
package machine

import (
	"fmt"
	"log"
	"unsafe"

	"vgaemu/vga"
)

// VRAMBase is the physical address the emulated text memory answers to.
const VRAMBase = 0xB8000

type ioSlot struct {
	first, count uint16
	handler      IOHandler
}

// Bus is the emulated machine seen from the driver: the VGA text memory and
// the I/O port space with its attached devices.
type Bus struct {
	vram  [vga.Size]byte
	slots []ioSlot
	trace bool
}

func NewBus(trace bool) *Bus {
	return &Bus{trace: trace}
}

// AttachIO maps count ports starting at first to h.
func (b *Bus) AttachIO(h IOHandler, first, count uint16) {
	for _, s := range b.slots {
		if first < s.first+s.count && s.first < first+count {
			log.Panicf("I/O ports %04X-%04X already attached", s.first, s.first+s.count-1)
		}
	}
	b.slots = append(b.slots, ioSlot{first, count, h})
}

func (b *Bus) handler(port uint16) IOHandler {
	for _, s := range b.slots {
		if port >= s.first && port < s.first+s.count {
			return s.handler
		}
	}
	return nil
}

// Outb implements vga.Ports. Writes nobody listens to are dropped.
func (b *Bus) Outb(port uint16, value byte) {
	if b.trace {
		log.Printf("outb %04X <- %02X", port, value)
	}
	h := b.handler(port)
	if h == nil {
		if b.trace {
			log.Printf("outb to unattached port %04X", port)
		}
		return
	}
	if err := h.write(value, port); err != nil {
		log.Printf("outb %04X: %v", port, err)
	}
}

// Inb reads a port. Unattached ports float high.
func (b *Bus) Inb(port uint16) (byte, error) {
	h := b.handler(port)
	if h == nil {
		return 0xFF, nil
	}
	v, err := h.read(port)
	if err != nil {
		return 0, fmt.Errorf("inb %04X: %w", port, err)
	}
	return v, nil
}

// Screen maps a driver buffer onto the emulated text memory.
func (b *Bus) Screen() *vga.Buffer {
	return vga.NewBuffer(unsafe.Pointer(&b.vram[0]))
}

// Cell reads a cell straight from text memory, the way the display
// controller does.
func (b *Bus) Cell(row, col int) (byte, vga.Attr) {
	off := (row*vga.Width + col) * vga.CellSize
	return b.vram[off], vga.Attr(b.vram[off+1])
}

// Snapshot copies the text memory.
func (b *Bus) Snapshot(dst *[vga.Size]byte) {
	*dst = b.vram
}

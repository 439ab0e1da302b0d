// Copyright 2021-2024 Sebastian Lederer. See the file LICENSE.md for details

//go:build baremetal && amd64

package vga

// outb is implemented in ports_baremetal_amd64.s.
func outb(port uint16, value byte)

// HardwarePorts writes to real x86 I/O ports.
type HardwarePorts struct{}

func (HardwarePorts) Outb(port uint16, value byte) {
	outb(port, value)
}

// InitHardware binds the console to the text buffer at base, PhysBase on an
// identity mapped kernel or HigherHalfBase on a higher half one.
func InitHardware(base uintptr) {
	Init(MapBuffer(base), HardwarePorts{})
}

// Copyright 2021-2024 Sebastian Lederer. See the file LICENSE.md for details
package vga

import (
	"unsafe"
)

const (
	Width  = 80
	Height = 25

	// CellSize is the number of bytes a cell occupies in video memory.
	CellSize = 2
	// Size is the number of bytes of video memory used by one screen.
	Size = Width * Height * CellSize

	// PhysBase is where the text buffer sits in physical memory.
	PhysBase uintptr = 0xB8000
	// HigherHalfBase is PhysBase as seen by a kernel linked at 0xC0000000.
	HigherHalfBase uintptr = 0xC00B8000
)

// Cell is a character position as the display controller reads it:
// the display code followed by its attribute.
type Cell struct {
	Code byte
	Attr Attr
}

// Blank returns the empty cell drawn with attr.
func Blank(attr Attr) Cell {
	return Cell{Code: 0, Attr: attr}
}

// Buffer is the 80x25 grid of cells in video memory. Indices are not checked,
// callers keep them in range.
type Buffer struct {
	cells *[Height][Width]Cell
}

// NewBuffer maps a Buffer onto the memory at base, which must hold at least
// Size bytes.
func NewBuffer(base unsafe.Pointer) *Buffer {
	return &Buffer{cells: (*[Height][Width]Cell)(base)}
}

// MapBuffer maps a Buffer onto a fixed address, such as PhysBase on a kernel
// with identity mapped low memory.
func MapBuffer(addr uintptr) *Buffer {
	// addr is a fixed hardware mapping, not Go memory; vet flags this conversion.
	return NewBuffer(unsafe.Pointer(addr))
}

// Read and Write are kept out of line: the display controller observes the
// memory behind them, so no access may be merged or dropped.

//go:noinline
func (b *Buffer) Read(row, col int) Cell {
	return b.cells[row][col]
}

//go:noinline
func (b *Buffer) Write(row, col int, c Cell) {
	b.cells[row][col] = c
}

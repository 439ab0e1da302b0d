// Copyright 2021-2024 Sebastian Lederer. See the file LICENSE.md for details
package vga

import (
	"testing"
	"unsafe"
)

func TestNewAttr(t *testing.T) {
	tests := []struct {
		fg, bg Color
		blink  bool
		want   Attr
	}{
		{White, Black, false, 0x0F},
		{Black, Green, false, 0x20},
		{Yellow, Blue, true, 0x9E},
		{LightRed, LightGray, false, 0x7C},
		// bright backgrounds lose their high bit to blink
		{White, White, false, 0x7F},
	}
	for _, tt := range tests {
		got := NewAttr(tt.fg, tt.bg, tt.blink)
		if got != tt.want {
			t.Errorf("NewAttr(%d, %d, %v) = %#x, expected %#x", tt.fg, tt.bg, tt.blink, got, tt.want)
		}
	}
}

func TestAttrFields(t *testing.T) {
	a := NewAttr(Pink, Cyan, true)
	if a.Foreground() != Pink || a.Background() != Cyan || !a.Blink() {
		t.Fatalf("fields of %#x are %d %d %v", a, a.Foreground(), a.Background(), a.Blink())
	}
	b := a.WithForeground(Green)
	if b.Foreground() != Green || b.Background() != Cyan || !b.Blink() {
		t.Fatalf("WithForeground changed more than the foreground: %#x", b)
	}
}

func TestCellLayout(t *testing.T) {
	if unsafe.Sizeof(Cell{}) != CellSize {
		t.Fatalf("cell is %d bytes", unsafe.Sizeof(Cell{}))
	}
	mem := make([]byte, Size)
	buf := NewBuffer(unsafe.Pointer(&mem[0]))

	buf.Write(1, 2, Cell{Code: 'G', Attr: NewAttr(Green, Black, true)})

	off := (1*Width + 2) * CellSize
	if mem[off] != 'G' || mem[off+1] != 0x82 {
		t.Fatalf("memory holds %#x %#x", mem[off], mem[off+1])
	}
	buf.Write(Height-1, Width-1, Cell{Code: 'z', Attr: DefaultAttr})
	if mem[Size-2] != 'z' || mem[Size-1] != 0x0F {
		t.Fatalf("last cell is %#x %#x", mem[Size-2], mem[Size-1])
	}
}

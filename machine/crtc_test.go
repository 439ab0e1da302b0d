// Copyright 2021-2024 Sebastian Lederer. See the file LICENSE.md for details
package machine

import (
	"testing"

	"vgaemu/vga"
)

func newTestMachine(t *testing.T) (*Bus, *CRTC) {
	t.Helper()
	b := NewBus(false)
	c := NewCRTC(false)
	b.AttachIO(c, CRTC_INDEX, 2)
	return b, c
}

func TestCRTCFollowsDriverCursor(t *testing.T) {
	b, c := newTestMachine(t)
	w := vga.NewWriter(b.Screen(), b, vga.DefaultAttr)

	w.PutString("hello\nworld")
	if row, col := c.CursorPos(); row != 1 || col != 5 {
		t.Fatalf("hardware cursor at (%d, %d)", row, col)
	}
	for i := 0; i < 300; i++ {
		w.PutByte('.')
	}
	if row, col := c.CursorPos(); row != 4 || col != 65 {
		t.Fatalf("hardware cursor at (%d, %d)", row, col)
	}
	if !c.CursorEnabled() {
		t.Fatal("cursor should be enabled")
	}
}

func TestCRTCHideIsSticky(t *testing.T) {
	b, c := newTestMachine(t)
	w := vga.NewWriter(b.Screen(), b, vga.DefaultAttr)

	w.SetCursorVisible(false)
	if c.CursorEnabled() {
		t.Fatal("cursor still enabled after hide")
	}
	w.PutString("abc")
	if c.CursorOffset() != 0 {
		t.Fatalf("hidden cursor moved to %d", c.CursorOffset())
	}

	// Showing only re-issues the location, the disable bit stays set.
	w.SetCursorVisible(true)
	if c.CursorOffset() != 3 {
		t.Fatalf("cursor offset is %d", c.CursorOffset())
	}
	if c.CursorEnabled() {
		t.Fatal("location writes must not clear the disable bit")
	}
}

func TestCRTCRegisterAccess(t *testing.T) {
	b, c := newTestMachine(t)
	b.Outb(CRTC_INDEX, CR_CURSOR_END)
	b.Outb(CRTC_DATA, 0x0F)
	if v, _ := b.Inb(CRTC_DATA); v != 0x0F {
		t.Fatalf("read back %#x", v)
	}
	if v, _ := b.Inb(CRTC_INDEX); v != CR_CURSOR_END {
		t.Fatalf("index reads %#x", v)
	}
	if start, end := c.CursorShape(); start != 0x0D || end != 0x0F {
		t.Fatalf("cursor shape %d-%d", start, end)
	}

	b.Outb(CRTC_INDEX, 0x40)
	if err := c.write(1, CRTC_DATA); err == nil {
		t.Fatal("write past the register file should fail")
	}
	if v, _ := b.Inb(CRTC_DATA); v != 0xFF {
		t.Fatalf("missing register reads %#x", v)
	}
}

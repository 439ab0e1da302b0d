// Copyright 2021-2024 Sebastian Lederer. See the file LICENSE.md for details
package vga

import (
	"strings"
	"sync"
	"testing"
	"unsafe"
)

func initTestConsole(t *testing.T) *testScreen {
	t.Helper()
	mem := make([]byte, Size)
	buf := NewBuffer(unsafe.Pointer(&mem[0]))
	ports := &portRecorder{}
	Init(buf, ports)
	return &testScreen{mem: mem, buf: buf, ports: ports, w: Active()}
}

func TestConsoleEntryPoints(t *testing.T) {
	s := initTestConsole(t)

	Print("boot\n")
	Printf("%d cpus, %s\n", 2, "ok")
	PrintChar('>')
	PrintColor(Red, "!")

	if s.rowText(0) != "boot" || s.rowText(1) != "2 cpus, ok" || s.rowText(2) != ">!" {
		t.Fatalf("rows are %q %q %q", s.rowText(0), s.rowText(1), s.rowText(2))
	}
	if got := s.buf.Read(2, 1).Attr; got != NewAttr(Red, Black, false) {
		t.Fatalf("coloured cell has attr %#x", got)
	}
	assertPos(t, s.w, 2, 2)

	ClearCurrentRow()
	assertPos(t, s.w, 2, 0)
	assertBlankRow(t, s, 2)

	ClearAll()
	assertPos(t, s.w, 0, 0)
	for r := 0; r < 3; r++ {
		assertBlankRow(t, s, r)
	}
}

func TestConsoleCursorVisibility(t *testing.T) {
	s := initTestConsole(t)
	Print("ab")

	SetCursorVisible(false)
	s.ports.reset()
	Print("cd")
	if len(s.ports.writes) != 0 {
		t.Fatalf("hidden cursor moved: %x", s.ports.writes)
	}

	InitCursor()
	var expected []portWrite
	expected = append(expected, positionWrites(0, 4)...)
	expected = append(expected, positionWrites(0, 4)...)
	assertWrites(t, s.ports.writes, expected)
}

func TestConsoleSerializesPrints(t *testing.T) {
	s := initTestConsole(t)
	line := strings.Repeat("-", 39) + "\n"

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				Print(line)
			}
		}()
	}
	wg.Wait()

	// Each print is one whole line, so no row may hold parts of two.
	for r := 0; r < lastRow; r++ {
		if got := s.rowText(r); got != line[:39] {
			t.Fatalf("row %d is %q", r, got)
		}
	}
	assertPos(t, s.w, lastRow, 0)
}

func TestFaultBypassesLock(t *testing.T) {
	s := initTestConsole(t)
	Print("working")

	var disabled, halted bool
	oldDisable, oldHalt := DisableInterrupts, Halt
	DisableInterrupts = func() { disabled = true }
	Halt = func() { halted = true }
	defer func() { DisableInterrupts, Halt = oldDisable, oldHalt }()

	// A print interrupted halfway still holds the lock.
	console.mu.Lock()
	Fault("mm/page.go", 42, 9, "double free")
	console.mu.Unlock()

	if !disabled || !halted {
		t.Fatalf("interrupts disabled: %v, halted: %v", disabled, halted)
	}
	expected := []string{
		"working:(",
		"A kernel error that the LeonOS system couldn't handle occurred.",
		"Please E-Mail to the developer with this panic log to fix this error.",
		strings.Repeat("-", 70),
		"Panic in mm/page.go at 42:9",
		"double free",
	}
	for r, want := range expected {
		if got := s.rowText(r); got != want {
			t.Fatalf("row %d is %q, expected %q", r, got, want)
		}
	}
}

func TestFaultBeforeInitHalts(t *testing.T) {
	oldWriter := console.w
	console.w = nil
	defer func() { console.w = oldWriter }()

	var halted bool
	oldDisable, oldHalt := DisableInterrupts, Halt
	DisableInterrupts = func() {}
	Halt = func() { halted = true }
	defer func() { DisableInterrupts, Halt = oldDisable, oldHalt }()

	Fault("boot.go", 1, 1, "too early")
	if !halted {
		t.Fatal("fault before Init did not halt")
	}
}

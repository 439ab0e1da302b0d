// Copyright 2021-2024 Sebastian Lederer. See the file LICENSE.md for details
package vga

import (
	"fmt"
	"sync"
)

// The console is the one Writer the rest of the kernel prints through. Every
// entry point holds mu for the whole call so a print is never interleaved
// with another one. Fault is the exception, see there.
var console struct {
	mu sync.Mutex
	w  *Writer
}

// Hooks used by Fault. A kernel replaces them with cli and a hlt loop.
var (
	DisableInterrupts = func() {}
	Halt              = func() {
		for {
		}
	}
)

// Init binds the console to a buffer and the cursor ports, drawing with
// DefaultAttr. It must run before any output.
func Init(buf *Buffer, ports Ports) {
	console.mu.Lock()
	console.w = NewWriter(buf, ports, DefaultAttr)
	console.mu.Unlock()
}

// Active returns the console writer, nil before Init. Callers that use it
// directly take over the serialization Print provides.
func Active() *Writer {
	return console.w
}

func Print(s string) {
	console.mu.Lock()
	defer console.mu.Unlock()
	console.w.PutString(s)
}

func Printf(format string, a ...any) {
	console.mu.Lock()
	defer console.mu.Unlock()
	fmt.Fprintf(console.w, format, a...)
}

// PrintColor prints s in fg on the default background.
func PrintColor(fg Color, s string) {
	console.mu.Lock()
	defer console.mu.Unlock()
	console.w.WriteStringAttr(s, console.w.Attr().WithForeground(fg))
}

func PrintChar(b byte) {
	console.mu.Lock()
	defer console.mu.Unlock()
	console.w.PutByte(b)
}

func ClearCurrentRow() {
	console.mu.Lock()
	defer console.mu.Unlock()
	console.w.ClearCurrentRow()
}

func ClearAll() {
	console.mu.Lock()
	defer console.mu.Unlock()
	console.w.ClearAll()
}

func SetCursorVisible(visible bool) {
	console.mu.Lock()
	defer console.mu.Unlock()
	console.w.SetCursorVisible(visible)
}

// InitCursor makes the cursor visible and puts it at the write position.
func InitCursor() {
	console.mu.Lock()
	defer console.mu.Unlock()
	console.w.SetCursorVisible(true)
	console.w.UpdateCursor()
}

// Fault prints a diagnostic and halts. It writes without taking the console
// lock: the interrupted code may hold it, and a garbled line is better than
// a reporter that never prints. col is 0 when the caller does not know it.
// Before Init there is nowhere to print, so Fault only halts. Halt is not
// expected to return.
func Fault(file string, line, col int, msg string) {
	DisableInterrupts()

	w := console.w
	if w == nil {
		Halt()
		return
	}
	w.PutString(":(\n")
	w.PutString("A kernel error that the LeonOS system couldn't handle occurred.\n")
	w.PutString("Please E-Mail to the developer with this panic log to fix this error.\n")
	w.PutString("----------------------------------------------------------------------\n")
	fmt.Fprintf(w, "Panic in %s at %d:%d\n", file, line, col)
	w.PutString(msg)
	w.PutByte('\n')

	Halt()
}

// Copyright 2021-2024 Sebastian Lederer. See the file LICENSE.md for details
package machine

import (
	"bytes"
	"io"
	"log"
	"path/filepath"
	"runtime"

	"vgaemu/vga"
)

const (
	KEY_CTRL_L = 0x0C
	KEY_CTRL_P = 0x10
	KEY_CTRL_T = 0x14
	KEY_CTRL_U = 0x15
	KEY_BS     = 0x08
	KEY_DEL    = 0x7F
	KEY_LF     = '\n'
	KEY_CR     = '\r'
)

const helpText = "ctrl-l clear, ctrl-u clear row, ctrl-t cursor, ctrl-p fault\n"

type InputKind int

const (
	// KeyInput is keyboard input for the kernel.
	KeyInput InputKind = iota
	// TextOutput is text some source wants printed, already in CP437.
	TextOutput
	// SourceDone tells that a hosted program has exited.
	SourceDone
)

type Input struct {
	Kind InputKind
	Data []byte
}

// Kernel is the small piece of kernel the emulator runs: it owns the console
// and echoes the keyboard into it.
type Kernel struct {
	// Version is shown in the boot banner and must be a semantic version.
	Version string

	bus     *Bus
	halted  bool
	program io.Writer
}

func NewKernel(bus *Bus) *Kernel {
	return &Kernel{Version: KernelVersion, bus: bus}
}

// Boot binds the console to the bus and prints the banner.
func (k *Kernel) Boot() error {
	ver, err := BannerVersion(k.Version)
	if err != nil {
		return err
	}

	vga.Init(k.bus.Screen(), k.bus)
	vga.DisableInterrupts = func() {
		if k.bus.trace {
			log.Print("cli")
		}
	}
	// A real halt would stop the emulator with it.
	vga.Halt = func() {
		if k.bus.trace {
			log.Print("hlt")
		}
		k.halted = true
	}

	vga.ClearAll()
	vga.PrintColor(vga.LightGreen, "LeonOS "+ver+"\n")
	vga.Print(helpText)
	vga.InitCursor()
	return nil
}

func (k *Kernel) Halted() bool {
	return k.halted
}

// Drain handles every input already waiting on inputs and returns once none
// is left, without waiting for more.
func (k *Kernel) Drain(inputs <-chan Input) {
	for {
		select {
		case in := <-inputs:
			k.Handle(in)
		default:
			return
		}
	}
}

// SetProgram sends keyboard input to w instead of the console.
func (k *Kernel) SetProgram(w io.Writer) {
	k.program = w
}

func (k *Kernel) Handle(in Input) {
	switch in.Kind {
	case KeyInput:
		for _, b := range in.Data {
			k.Key(b)
		}
	case TextOutput:
		k.Output(in.Data)
	}
}

func (k *Kernel) Key(b byte) {
	if k.halted {
		return
	}
	if k.program != nil {
		if _, err := k.program.Write([]byte{b}); err != nil {
			log.Printf("writing key to program: %v", err)
		}
		return
	}

	switch b {
	case KEY_CR, KEY_LF:
		vga.PrintChar('\n')
	case KEY_BS, KEY_DEL:
		vga.PrintChar(0x08)
	case KEY_CTRL_L:
		vga.ClearAll()
	case KEY_CTRL_U:
		vga.ClearCurrentRow()
	case KEY_CTRL_T:
		vga.SetCursorVisible(!vga.Active().CursorVisible())
	case KEY_CTRL_P:
		_, file, line, _ := runtime.Caller(0)
		vga.Fault(filepath.Base(file), line, 0, "fault requested from the keyboard")
	default:
		if b >= 0x20 {
			vga.PrintChar(b)
		}
	}
}

// Output prints text from a host source. Carriage returns are dropped, the
// console only knows line feeds.
func (k *Kernel) Output(p []byte) {
	if k.halted {
		return
	}
	vga.Print(string(bytes.ReplaceAll(p, []byte{'\r'}, nil)))
}

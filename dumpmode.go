// Copyright 2021-2024 Sebastian Lederer. See the file LICENSE.md for details
package main

import (
	"bytes"
	"os"

	"golang.org/x/term"

	"vgaemu/machine"
)

const KEY_CTRL_D = 0x04
const KEY_CTRL_Z = 0x1A

// readKeys forwards stdin until end of input or ^D/^Z, then closes keys.
func readKeys(keys chan<- []byte) {
	defer close(keys)
	buf := make([]byte, 256)
	for {
		n, err := ConsoleRead(buf)
		if n > 0 {
			data := buf[:n]
			end := bytes.IndexAny(data, string([]byte{KEY_CTRL_D, KEY_CTRL_Z}))
			if end >= 0 {
				data = data[:end]
			}
			if len(data) > 0 {
				keys <- append([]byte(nil), data...)
			}
			if end >= 0 {
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// runDump feeds stdin to the kernel without any display and prints the
// screen once input has ended and a hosted program, if any, has exited.
func runDump(inputs <-chan machine.Input, waitProgram bool) error {
	var oldState *ConsoleState
	if term.IsTerminal(int(os.Stdin.Fd())) {
		var err error
		if oldState, err = SetRawConsole(); err != nil {
			return err
		}
	}

	keys := make(chan []byte)
	go readKeys(keys)

	programRunning := waitProgram
	for keys != nil || programRunning {
		select {
		case data, ok := <-keys:
			if !ok {
				keys = nil
				// a hosted program sees end of input too
				kernel.Key(KEY_CTRL_D)
				continue
			}
			kernel.Handle(machine.Input{Kind: machine.KeyInput, Data: data})
		case in := <-inputs:
			if in.Kind == machine.SourceDone {
				programRunning = false
			}
			kernel.Handle(in)
		}
	}

	// the feed may have queued text before the keys ran out
	kernel.Drain(inputs)

	if oldState != nil {
		if err := RestoreConsole(oldState); err != nil {
			return err
		}
	}
	return machine.DumpScreen(os.Stdout, bus)
}

// Copyright 2021-2024 Sebastian Lederer. See the file LICENSE.md for details
package main

import (
	"os"

	"golang.org/x/sys/windows"
)

type ConsoleState struct {
	modeStdin uint32
}

func SetRawConsole() (*ConsoleState, error) {
	var stIn uint32

	stdinFd := os.Stdin.Fd()

	if err := windows.GetConsoleMode(windows.Handle(stdinFd), &stIn); err != nil {
		return nil, err
	}
	raw := stIn &^ (windows.ENABLE_ECHO_INPUT | windows.ENABLE_PROCESSED_INPUT | windows.ENABLE_LINE_INPUT | windows.ENABLE_PROCESSED_OUTPUT)
	raw |= windows.ENABLE_VIRTUAL_TERMINAL_INPUT
	if err := windows.SetConsoleMode(windows.Handle(stdinFd), raw); err != nil {
		return nil, err
	}
	return &ConsoleState{stIn}, nil
}

func RestoreConsole(st *ConsoleState) error {
	return windows.SetConsoleMode(windows.Handle(os.Stdin.Fd()), st.modeStdin)
}

// ConsoleRead reads raw console input. ^Z arrives as a byte, the dump loop
// treats it as end of input.
func ConsoleRead(buf []byte) (count int, err error) {
	return os.Stdin.Read(buf)
}

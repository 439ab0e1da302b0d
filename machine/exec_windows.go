// Copyright 2021-2024 Sebastian Lederer. See the file LICENSE.md for details
package machine

import (
	"errors"
	"os"
)

func StartProgram(command string, out chan<- Input) (*os.File, error) {
	return nil, errors.New("hosting programs needs a pty, which windows does not have")
}

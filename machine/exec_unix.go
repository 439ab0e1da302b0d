// Copyright 2021-2024 Sebastian Lederer. See the file LICENSE.md for details

//go:build !windows

package machine

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/text/transform"

	"vgaemu/vga"
)

// StartProgram runs command under a pseudo terminal sized like the console.
// Its output arrives on out as CP437 text, followed by SourceDone when it
// exits. Writing to the returned file types into the program.
func StartProgram(command string, out chan<- Input) (*os.File, error) {
	cmd := exec.Command("/bin/sh", "-c", command)
	cmd.Env = append(os.Environ(), "TERM=dumb")

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Cols: vga.Width, Rows: vga.Height})
	if err != nil {
		return nil, fmt.Errorf("failed to start PTY %w", err)
	}

	go func() {
		defer func() {
			cmd.Wait()
			out <- Input{Kind: SourceDone}
		}()
		r := transform.NewReader(ptmx, NewEncoder())
		buf := make([]byte, 1024)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				out <- Input{Kind: TextOutput, Data: append([]byte(nil), buf[:n]...)}
			}
			if err != nil {
				// linux reports EIO once the child side is gone
				if !errors.Is(err, io.EOF) && !errors.Is(err, syscall.EIO) {
					log.Printf("program output: %v", err)
				}
				return
			}
		}
	}()
	return ptmx, nil
}

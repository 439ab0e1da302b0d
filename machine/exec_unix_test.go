// Copyright 2021-2024 Sebastian Lederer. See the file LICENSE.md for details

//go:build !windows

package machine

import (
	"bytes"
	"testing"
	"time"
)

func TestStartProgramConvertsOutput(t *testing.T) {
	out := make(chan Input, 16)
	ptmx, err := StartProgram(`printf 'caf\303\251'`, out)
	if err != nil {
		t.Skipf("no pty here: %v", err)
	}
	defer ptmx.Close()

	var got []byte
	timeout := time.After(5 * time.Second)
	for {
		select {
		case in := <-out:
			if in.Kind == SourceDone {
				if !bytes.Equal(got, []byte("caf\x82")) {
					t.Fatalf("program output is %q", got)
				}
				return
			}
			got = append(got, in.Data...)
		case <-timeout:
			t.Fatalf("program did not finish, output so far %q", got)
		}
	}
}

// Copyright 2021-2024 Sebastian Lederer. See the file LICENSE.md for details
package machine

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"vgaemu/vga"
)

// DumpScreen writes the text memory as lines with trailing blanks trimmed,
// followed by the hardware cursor state as read back through the CRTC ports.
func DumpScreen(w io.Writer, bus *Bus) error {
	bw := bufio.NewWriter(w)
	var sb strings.Builder
	for r := 0; r < vga.Height; r++ {
		sb.Reset()
		for c := 0; c < vga.Width; c++ {
			code, _ := bus.Cell(r, c)
			sb.WriteRune(Glyph(code))
		}
		fmt.Fprintln(bw, strings.TrimRight(sb.String(), " "))
	}

	off, enabled, err := readCursor(bus)
	if err != nil {
		return err
	}
	state := "shown"
	if !enabled {
		state = "hidden"
	}
	fmt.Fprintf(bw, "cursor: row %d col %d (%s)\n", off/vga.Width, off%vga.Width, state)
	return bw.Flush()
}

// readCursor reads the cursor location and disable bit the way a driver
// would, leaving the index register as it found it.
func readCursor(bus *Bus) (off int, enabled bool, err error) {
	index, err := bus.Inb(CRTC_INDEX)
	if err != nil {
		return 0, false, err
	}
	defer bus.Outb(CRTC_INDEX, index)

	var regs [3]byte
	for i, reg := range []byte{CR_CURSOR_HI, CR_CURSOR_LO, CR_CURSOR_START} {
		bus.Outb(CRTC_INDEX, reg)
		if regs[i], err = bus.Inb(CRTC_DATA); err != nil {
			return 0, false, err
		}
	}
	return int(regs[0])<<8 | int(regs[1]), regs[2]&CURSOR_DISABLE == 0, nil
}

// Copyright 2021-2024 Sebastian Lederer. See the file LICENSE.md for details
package machine

// IOHandler is a device occupying a range of I/O ports.
type IOHandler interface {
	read(port uint16) (byte, error)
	write(value byte, port uint16) error
}

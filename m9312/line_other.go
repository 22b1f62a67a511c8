//go:build !linux

package m9312

import (
	"errors"

	"golang.org/x/sys/unix"
)

func setLine(attr *unix.Termios, cfg SerialConfig) error {
	return errors.New(f("serial line configuration is only supported on linux"))
}

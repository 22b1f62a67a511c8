package m9312

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Channel is the byte stream between the console and the operator.
type Channel interface {
	ReadByte() (byte, error)
	Write(p []byte) (int, error)
	Close() error
}

// Terminal is a Channel over a tty device, or over the process' standard
// streams when no device is named.
type Terminal struct {
	path   string
	in     *os.File
	out    *os.File
	opened bool

	raw                    bool
	originalTerminalConfig unix.Termios
}

var _ Channel = (*Terminal)(nil)

// OpenTerminal opens device for console I/O and puts it into raw mode. An
// empty device selects stdin/stdout.
func OpenTerminal(device string) (*Terminal, error) {
	t := &Terminal{path: device}

	if device == "" {
		t.in = os.Stdin
		t.out = os.Stdout
	} else {
		fd, err := os.OpenFile(device, os.O_RDWR|unix.O_NOCTTY, 0)
		if err != nil {
			return nil, &ErrDevice{Path: device, Err: err}
		}
		t.in = fd
		t.out = fd
		t.opened = true
	}

	if err := t.enableRawMode(); err != nil {
		t.closeFiles()
		return nil, &ErrDevice{Path: device, Err: err}
	}

	return t, nil
}

// this configures the terminal to run in raw mode, when it is one
func (t *Terminal) enableRawMode() error {
	if !term.IsTerminal(int(t.in.Fd())) {
		log.Printf("%v", f("input is not a terminal, leaving line settings alone"))
		return nil
	}

	if err := termios.Tcgetattr(t.in.Fd(), &t.originalTerminalConfig); err != nil {
		return err
	}

	rawTermios := t.originalTerminalConfig
	termios.Cfmakeraw(&rawTermios)
	if err := termios.Tcsetattr(t.in.Fd(), termios.TCSANOW, &rawTermios); err != nil {
		return err
	}

	t.raw = true
	return nil
}

func (t *Terminal) disableRawMode() error {
	if !t.raw {
		return nil
	}
	t.raw = false
	return termios.Tcsetattr(t.in.Fd(), termios.TCSANOW, &t.originalTerminalConfig)
}

// Configure applies serial line parameters. They only make sense on an
// explicitly opened tty, so anything else is left untouched.
func (t *Terminal) Configure(cfg SerialConfig) error {
	if cfg.IsZero() {
		return nil
	}

	if !t.opened || !t.raw {
		log.Printf("%v", f("warning: serial configuration %v ignored, no tty device opened", cfg.String()))
		return nil
	}

	baud, exact := NearestBaud(cfg.Baud)
	if !exact {
		log.Printf("%v", f("warning: baud rate %v not supported, using %v instead", integer(cfg.Baud), integer(baud)))
		cfg.Baud = baud
	}

	var attr unix.Termios
	if err := termios.Tcgetattr(t.in.Fd(), &attr); err != nil {
		return &ErrDevice{Path: t.path, Err: err}
	}

	if err := setLine(&attr, cfg); err != nil {
		return &ErrDevice{Path: t.path, Err: err}
	}

	if err := termios.Tcsetattr(t.in.Fd(), termios.TCSANOW, &attr); err != nil {
		return &ErrDevice{Path: t.path, Err: err}
	}

	return nil
}

// ReadByte blocks until one byte is available.
func (t *Terminal) ReadByte() (byte, error) {
	var one [1]byte
	for {
		n, err := t.in.Read(one[:])
		if n == 1 {
			return one[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

// Interrupt wakes a ReadByte blocked in another goroutine. Pollable inputs
// (ttys, pipes) get an expired read deadline; an opened device that cannot
// take one is closed instead. The process' stdin, when not pollable, can
// only be woken by the next byte typed.
func (t *Terminal) Interrupt() error {
	err := t.in.SetReadDeadline(time.Now())
	if errors.Is(err, os.ErrNoDeadline) && t.opened {
		return t.in.Close()
	}
	return err
}

// Write sends p to the operator.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// Close restores the original line settings, and closes the device if it
// was opened by OpenTerminal.
func (t *Terminal) Close() error {
	err := t.disableRawMode()
	if cerr := t.closeFiles(); err == nil {
		err = cerr
	}
	return err
}

func (t *Terminal) closeFiles() error {
	if !t.opened {
		return nil
	}
	t.opened = false
	if err := t.in.Close(); !errors.Is(err, os.ErrClosed) {
		return err
	}
	return nil
}

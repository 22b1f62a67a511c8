package m9312

import (
	"fmt"

	"golang.org/x/sys/unix"
)

var baudRates = map[int]uint32{
	110:   unix.B110,
	300:   unix.B300,
	600:   unix.B600,
	1200:  unix.B1200,
	2400:  unix.B2400,
	4800:  unix.B4800,
	9600:  unix.B9600,
	19200: unix.B19200,
	38400: unix.B38400,
}

// setLine writes the line parameters of cfg into attr.
func setLine(attr *unix.Termios, cfg SerialConfig) error {
	rate, ok := baudRates[cfg.Baud]
	if !ok {
		return fmt.Errorf("%v", f("unsupported baud rate %v", integer(cfg.Baud)))
	}
	attr.Cflag &^= unix.CBAUD
	attr.Cflag |= rate
	attr.Ispeed = rate
	attr.Ospeed = rate

	attr.Cflag &^= unix.CSIZE
	if cfg.DataBits == 7 {
		attr.Cflag |= unix.CS7
	} else {
		attr.Cflag |= unix.CS8
	}

	switch cfg.Parity {
	case ParityNone:
		attr.Cflag &^= unix.PARENB
	case ParityOdd:
		attr.Cflag |= unix.PARENB | unix.PARODD
	default:
		attr.Cflag |= unix.PARENB
		attr.Cflag &^= unix.PARODD
	}

	if cfg.StopBits == 2 {
		attr.Cflag |= unix.CSTOPB
	} else {
		attr.Cflag &^= unix.CSTOPB
	}

	return nil
}

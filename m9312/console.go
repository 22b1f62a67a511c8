package m9312

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

type command string

// command tokens, as typed by the operator
const (
	CMD_NONE         command = ""
	CMD_LOAD_ADDRESS command = "L "
	CMD_EXAMINE      command = "E "
	CMD_DEPOSIT      command = "D "
	CMD_START        command = "S\r"
)

const (
	CTRL_C = 0x03
	CTRL_D = 0x04
	CR     = '\r'
	LF     = '\n'
)

const prompt = "\r\n@"

// statusLine is the canned front panel display printed by a reset.
const statusLine = "\r\n000000 173000 165212 000000"

// Console interprets the M9312 console command language over a Channel.
type Console struct {
	Verbose bool

	memory   *Memory
	channel  Channel
	log      *ActivityLog
	address  uint16
	previous command

	ctx context.Context // set for the duration of Run
}

// NewConsole returns a console with zeroed memory talking over channel.
// activity may be nil.
func NewConsole(channel Channel, activity *ActivityLog) *Console {
	return &Console{
		memory:  newMemory(),
		channel: channel,
		log:     activity,
	}
}

// Memory returns the console's memory image.
func (con *Console) Memory() *Memory {
	return con.memory
}

// Address returns the current address cursor.
func (con *Console) Address() uint16 {
	return con.address
}

// Run resets the console, then prompts for and processes commands until
// the operator interrupts, the input ends, or ctx is cancelled. A command
// in progress when ctx is cancelled is abandoned at its next byte.
func (con *Console) Run(ctx context.Context) error {
	con.ctx = ctx
	defer func() { con.ctx = nil }()

	if err := con.Reset(); err != nil {
		return con.finish(ctx, err)
	}

	for ctx.Err() == nil {
		if err := con.write(prompt); err != nil {
			return con.finish(ctx, err)
		}
		if err := con.ProcessCommand(); err != nil {
			return con.finish(ctx, err)
		}
	}

	return nil
}

// finish sorts the ways a session can end normally from real failures.
func (con *Console) finish(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, ErrInterrupted), errors.Is(err, io.EOF):
		return nil
	case ctx.Err() != nil && (errors.Is(err, ctx.Err()) ||
		errors.Is(err, os.ErrClosed) ||
		errors.Is(err, os.ErrDeadlineExceeded)):
		// the channel was woken up to end the session
		return nil
	}
	return err
}

// Reset clears the address cursor and command history, and prints the
// status line.
func (con *Console) Reset() error {
	con.address = 0
	con.previous = CMD_NONE
	return con.write(statusLine)
}

// ProcessCommand reads one command from the operator and executes it.
// Errors returned are channel errors or ErrInterrupted; operator mistakes
// are handled within the command language.
//
// A CR or LF typed where a command should start is echoed and skipped, so
// "\rE" is read as an Examine rather than reset as an unknown command.
// This lets the operator end commands with return, as in "E \rE \r".
func (con *Console) ProcessCommand() error {
	var token [2]byte
	for i := 0; i < len(token); {
		ch, err := con.readChar()
		if err != nil {
			return err
		}
		// blank lines between commands are echoed and otherwise ignored
		if i == 0 && (ch == CR || ch == LF) {
			continue
		}
		token[i] = ch
		i++
	}
	cmd := command(token[:])

	switch cmd {
	case CMD_LOAD_ADDRESS:
		addr, err := con.readArg()
		if errors.Is(err, errMalformedArgument) {
			con.trace("L: malformed address")
			return nil
		} else if err != nil {
			return err
		}
		con.address = addr
		con.trace("L: address=%06o", addr)

	case CMD_EXAMINE:
		if con.address&1 != 0 {
			con.trace("E: odd address %06o", con.address)
			return con.Reset()
		}

		if con.previous == CMD_EXAMINE {
			con.address += 2
		}

		value := con.memory.ReadWord(con.address)
		con.trace("E: address=%06o value=%06o", con.address, value)
		if err := con.write(fmt.Sprintf("%06o %06o", con.address, value)); err != nil {
			return err
		}

	case CMD_DEPOSIT:
		if con.address&1 != 0 {
			con.trace("D: odd address %06o", con.address)
			return con.Reset()
		}

		value, err := con.readArg()
		if errors.Is(err, errMalformedArgument) {
			con.trace("D: malformed value")
			return nil
		} else if err != nil {
			return err
		}
		con.memory.WriteWord(con.address, value)
		con.trace("D: address=%06o value=%06o", con.address, value)

	case CMD_START:
		// nothing to run; history is left as it was
		con.trace("S: address=%06o", con.address)
		return nil

	default:
		con.trace("unknown command %q", string(cmd))
		return con.Reset()
	}

	con.previous = cmd
	return nil
}

// readArg collects an octal argument terminated by carriage return. The
// value is kept to 16 bits as each digit arrives.
func (con *Console) readArg() (value uint16, err error) {
	for {
		var ch byte
		ch, err = con.readChar()
		if err != nil {
			return
		}
		if ch == CR {
			return
		}
		if ch < '0' || ch > '7' {
			err = errMalformedArgument
			return
		}
		value = (value << 3) + uint16(ch-'0')
	}
}

// readChar reads one byte from the operator, logs it and echoes it back.
func (con *Console) readChar() (byte, error) {
	ch, err := con.channel.ReadByte()
	if err != nil {
		return 0, err
	}

	if con.ctx != nil && con.ctx.Err() != nil {
		return 0, con.ctx.Err()
	}

	if ch == CTRL_C || ch == CTRL_D {
		return 0, ErrInterrupted
	}

	con.log.Log(ch, In)
	if err := con.write(string(ch)); err != nil {
		return 0, err
	}

	return ch, nil
}

// write sends s to the operator, logging each byte.
func (con *Console) write(s string) error {
	for i := 0; i < len(s); i++ {
		con.log.Log(s[i], Out)
	}
	_, err := io.WriteString(con.channel, s)
	return err
}

func (con *Console) trace(format string, args ...any) {
	if con.Verbose {
		log.Printf(format, args...)
	}
}

package m9312

import (
	"errors"

	"github.com/jaylogue/pdp1105-console-adapter-v2/translate"
)

var (
	f       = translate.From
	integer = translate.Integer
)

var (
	// ErrInterrupted is returned by the console when the operator types
	// control-C or control-D. It ends the session normally.
	ErrInterrupted = errors.New(f("interrupted"))

	// ErrSerialConfig indicates a malformed serial configuration string.
	ErrSerialConfig = errors.New(f("invalid serial configuration"))

	errMalformedArgument = errors.New(f("malformed octal argument"))
)

// ErrDevice reports a failure to open or configure the console device.
type ErrDevice struct {
	Path string
	Err  error
}

func (err *ErrDevice) Error() string {
	path := err.Path
	if path == "" {
		path = "stdin"
	}
	return f("device %v: %v", path, err.Err)
}

func (err *ErrDevice) Unwrap() error {
	return err.Err
}

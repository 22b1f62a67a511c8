package m9312

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Direction of a byte relative to the console.
type Direction string

const (
	In  Direction = "IN"
	Out Direction = "OUT"
)

const timestampLayout = "2006-01-02 15:04:05"

// ActivityLog records every byte exchanged with the operator, grouped in
// runs by direction. Logging is best effort: write errors are dropped. A nil
// *ActivityLog discards everything.
type ActivityLog struct {
	w             io.Writer
	closer        io.Closer
	lastDirection Direction
	now           func() time.Time
}

// OpenActivityLog appends to the log file at path, creating it if needed.
func OpenActivityLog(path string) (*ActivityLog, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	al := NewActivityLog(file)
	al.closer = file
	return al, nil
}

// NewActivityLog starts a session log on w.
func NewActivityLog(w io.Writer) *ActivityLog {
	al := &ActivityLog{w: w, now: time.Now}
	al.marker("Started")
	return al
}

func (al *ActivityLog) marker(what string) {
	fmt.Fprintf(al.w, "\n--- M9312 Simulator Session %s at %s ---\n", what, al.now().Format(timestampLayout))
}

// Log records b as transferred in direction dir.
func (al *ActivityLog) Log(b byte, dir Direction) {
	if al == nil {
		return
	}

	if al.lastDirection != dir {
		fmt.Fprintf(al.w, "\n%s: ", dir)
		al.lastDirection = dir
	}

	if b <= ' ' || b > '~' {
		fmt.Fprintf(al.w, `\x%02X`, b)
	} else {
		al.w.Write([]byte{b})
	}
}

// Close writes the end of session marker and closes the underlying file.
func (al *ActivityLog) Close() error {
	if al == nil {
		return nil
	}

	al.marker("Ended")
	fmt.Fprint(al.w, "\n")

	if al.closer != nil {
		return al.closer.Close()
	}
	return nil
}

package m9312

import (
	"context"
	"errors"
	"log"
	"sync"
)

// Options select the console device, its line settings and the activity log.
type Options struct {
	Device  string       // tty device, empty for stdin/stdout
	Serial  SerialConfig // applied to Device when set
	LogFile string       // activity log, empty for none
	Verbose bool
}

// Session ties a Console to its Terminal and ActivityLog, and guarantees
// both are restored and closed on the way out.
type Session struct {
	Console *Console

	channel   Channel
	activity  *ActivityLog
	closeOnce sync.Once
	closeErr  error
}

// NewSession opens the log and the console device. A log that cannot be
// opened is reported and the session continues without one; a device that
// cannot be opened or configured is fatal.
func NewSession(opts Options) (*Session, error) {
	var activity *ActivityLog
	if opts.LogFile != "" {
		var err error
		activity, err = OpenActivityLog(opts.LogFile)
		if err != nil {
			log.Printf("%v", f("error opening log file %v: %v", opts.LogFile, err))
		}
	}

	terminal, err := OpenTerminal(opts.Device)
	if err != nil {
		activity.Close()
		return nil, err
	}

	if err := terminal.Configure(opts.Serial); err != nil {
		terminal.Close()
		activity.Close()
		return nil, err
	}

	return newSession(terminal, activity, opts.Verbose), nil
}

func newSession(channel Channel, activity *ActivityLog, verbose bool) *Session {
	con := NewConsole(channel, activity)
	con.Verbose = verbose

	return &Session{
		Console:  con,
		channel:  channel,
		activity: activity,
	}
}

// Run processes commands until the operator ends the session or ctx is
// cancelled. Cancelling ctx wakes the console's blocked read; Close is left
// to the caller, once Run has returned.
func (s *Session) Run(ctx context.Context) error {
	if in, ok := s.channel.(interface{ Interrupt() error }); ok {
		stop := context.AfterFunc(ctx, func() {
			if err := in.Interrupt(); err != nil {
				log.Printf("%v", f("waiting for input to end the session: %v", err))
			}
		})
		defer stop()
	}

	return s.Console.Run(ctx)
}

// Close restores the console device and closes the activity log. Only the
// first call has any effect. It must not race with Run.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = errors.Join(s.channel.Close(), s.activity.Close())
	})
	return s.closeErr
}

// Command m9312sim emulates the console interface of a PDP-11 M9312
// bootstrap/terminator module on a terminal or serial line.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/jaylogue/pdp1105-console-adapter-v2/m9312"
	"github.com/jaylogue/pdp1105-console-adapter-v2/translate"
)

var f = translate.From

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)
}

func main() {
	os.Exit(m9312sim())
}

func m9312sim() int {
	var opts m9312.Options

	flag.StringVar(&opts.Device, "device", "", "Device to use for console I/O (default: stdin/stdout)")
	flag.StringVar(&opts.Device, "d", "", "Shorthand for -device")
	flag.Var(&opts.Serial, "serial-config", "Serial configuration of the device, <baud>-<data-bits>-<parity>-<stop-bits>")
	flag.Var(&opts.Serial, "s", "Shorthand for -serial-config")
	flag.StringVar(&opts.LogFile, "log-file", "", "Log I/O activity to the specified file")
	flag.StringVar(&opts.LogFile, "l", "", "Shorthand for -log-file")
	flag.BoolVar(&opts.Verbose, "v", false, "Trace each command on stderr")
	flag.Parse()

	if flag.NArg() != 0 {
		log.Printf("%v", f("unknown arguments: %v", flag.Args()))
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	session, err := m9312.NewSession(opts)
	if err != nil {
		log.Println(err)
		return 1
	}
	defer session.Close()

	// a signal cancels ctx, which wakes the console out of its read; the
	// device and log are then closed here, never from another goroutine
	if err := session.Run(ctx); err != nil {
		log.Println(err)
		return 1
	}

	fmt.Fprint(os.Stdout, "\r\nExiting...\r\n")
	return 0
}

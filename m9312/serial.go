package m9312

import (
	"fmt"
	"regexp"
	"strconv"
)

// Parity of the serial line.
type Parity byte

const (
	ParityNone Parity = 'N'
	ParityOdd  Parity = 'O'
	ParityEven Parity = 'E'
)

const (
	MinBaud = 110
	MaxBaud = 38400
)

// supportedBauds are the line rates the terminal driver can be set to.
var supportedBauds = []int{110, 300, 600, 1200, 2400, 4800, 9600, 19200, 38400}

var serialConfigPattern = regexp.MustCompile(`^(\d+)-([78])-(O|E|N)-([12])$`)

// SerialConfig holds the line parameters applied to an opened device.
// It implements flag.Value in the <baud>-<data-bits>-<parity>-<stop-bits>
// form, e.g. "9600-8-N-1".
type SerialConfig struct {
	Baud     int
	DataBits int
	Parity   Parity
	StopBits int
}

// ParseSerialConfig parses a <baud>-<data-bits>-<parity>-<stop-bits> string.
func ParseSerialConfig(s string) (cfg SerialConfig, err error) {
	match := serialConfigPattern.FindStringSubmatch(s)
	if match == nil {
		err = fmt.Errorf("%w: %q: %v", ErrSerialConfig, s,
			f("format is <baud-rate>-<data-bits>-<parity>-<stop-bits>, data bits 7 or 8, parity O, E or N, stop bits 1 or 2"))
		return
	}

	baud, err := strconv.Atoi(match[1])
	if err != nil || baud < MinBaud || baud > MaxBaud {
		err = fmt.Errorf("%w: %v", ErrSerialConfig,
			f("baud rate must be between %v and %v, got %v", integer(MinBaud), integer(MaxBaud), match[1]))
		return
	}

	cfg.Baud = baud
	cfg.DataBits = int(match[2][0] - '0')
	cfg.Parity = Parity(match[3][0])
	cfg.StopBits = int(match[4][0] - '0')

	return
}

// String returns the configuration in the form accepted by Set.
func (cfg *SerialConfig) String() string {
	if cfg == nil || cfg.Baud == 0 {
		return ""
	}
	return fmt.Sprintf("%d-%d-%c-%d", cfg.Baud, cfg.DataBits, cfg.Parity, cfg.StopBits)
}

// Set parses s into cfg.
func (cfg *SerialConfig) Set(s string) error {
	parsed, err := ParseSerialConfig(s)
	if err != nil {
		return err
	}
	*cfg = parsed
	return nil
}

// IsZero reports whether no configuration was given.
func (cfg SerialConfig) IsZero() bool {
	return cfg.Baud == 0
}

// NearestBaud returns the supported rate closest to baud, and whether baud
// was itself supported. Ties go to the lower rate.
func NearestBaud(baud int) (nearest int, exact bool) {
	nearest = supportedBauds[0]
	for _, rate := range supportedBauds {
		if rate == baud {
			return rate, true
		}
		if abs(rate-baud) < abs(nearest-baud) {
			nearest = rate
		}
	}
	return nearest, false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

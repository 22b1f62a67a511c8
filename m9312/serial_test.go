package m9312

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSerialConfig(t *testing.T) {
	table := []struct {
		in  string
		cfg SerialConfig
	}{
		{"9600-8-N-1", SerialConfig{9600, 8, ParityNone, 1}},
		{"110-7-E-2", SerialConfig{110, 7, ParityEven, 2}},
		{"38400-8-O-1", SerialConfig{38400, 8, ParityOdd, 1}},
		{"1000-8-N-1", SerialConfig{1000, 8, ParityNone, 1}},
	}

	for _, entry := range table {
		t.Run(entry.in, func(t *testing.T) {
			cfg, err := ParseSerialConfig(entry.in)
			assert.NoError(t, err)
			assert.Equal(t, entry.cfg, cfg)
			assert.Equal(t, entry.in, cfg.String())
		})
	}
}

func TestParseSerialConfig_Invalid(t *testing.T) {
	for _, in := range []string{
		"",
		"9600",
		"9600-9-N-1",
		"9600-8-X-1",
		"9600-8-n-1",
		"9600-8-N-3",
		"9600-8-N-1-",
		"-8-N-1",
		"109-8-N-1",
		"38401-8-N-1",
		"99999999999999999999-8-N-1",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseSerialConfig(in)
			assert.ErrorIs(t, err, ErrSerialConfig)
		})
	}
}

func TestSerialConfig_Flag(t *testing.T) {
	assert := assert.New(t)

	var cfg SerialConfig
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(&cfg, "s", "serial config")

	assert.True(cfg.IsZero())
	assert.NoError(fs.Parse([]string{"-s", "4800-7-E-1"}))
	assert.Equal(SerialConfig{4800, 7, ParityEven, 1}, cfg)
	assert.False(cfg.IsZero())

	assert.Error(fs.Parse([]string{"-s", "4800/7/E/1"}))
}

func TestNearestBaud(t *testing.T) {
	table := []struct {
		in      int
		nearest int
		exact   bool
	}{
		{110, 110, true},
		{9600, 9600, true},
		{38400, 38400, true},
		{111, 110, false},
		{1000, 1200, false},
		{14400, 9600, false},
		{14401, 19200, false},
		{30000, 38400, false},
		{205, 110, false},
		{206, 300, false},
	}

	for _, entry := range table {
		nearest, exact := NearestBaud(entry.in)
		assert.Equal(t, entry.nearest, nearest, "baud %d", entry.in)
		assert.Equal(t, entry.exact, exact, "baud %d", entry.in)
	}
}

package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("device /dev/ttyS0", From("device %v", "/dev/ttyS0"))
	assert.Equal("plain text", From("plain text"))
}

func TestInteger(t *testing.T) {
	assert := assert.New(t)

	p := newPrinter([]string{"en-US"})

	assert.Equal("38,400", p.Sprintf("%d", 38400))
	assert.Equal("38400", p.Sprintf("%v", Integer(38400)))
	assert.Equal("baud 110", p.Sprintf("baud %v", Integer(110)))
}

func TestNewPrinter_Fallback(t *testing.T) {
	p := newPrinter(nil)

	assert.Equal(t, "using 9600", p.Sprintf("using %v", Integer(9600)))
}

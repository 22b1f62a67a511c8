package m9312

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_ZeroAtStart(t *testing.T) {
	mem := newMemory()
	for addr := 0; addr < MemorySize; addr += 2 {
		if mem.ReadWord(uint16(addr)) != 0 {
			t.Fatalf("word at %06o is not zero", addr)
		}
	}
}

func TestMemory_LittleEndian(t *testing.T) {
	assert := assert.New(t)

	mem := newMemory()
	mem.WriteWord(0o1000, 0o123456)

	assert.Equal(byte(0o123456&0xff), mem.ram[0o1000])
	assert.Equal(byte(0o123456>>8), mem.ram[0o1001])
	assert.Equal(uint16(0o123456), mem.ReadWord(0o1000))
	assert.Equal(uint16(0), mem.ReadWord(0o1002))
}

func TestMemory_TopWord(t *testing.T) {
	assert := assert.New(t)

	mem := newMemory()
	mem.WriteWord(0o177776, 0xbeef)

	assert.Equal(uint16(0xbeef), mem.ReadWord(0o177776))
	assert.Equal(uint16(0), mem.ReadWord(0))
}

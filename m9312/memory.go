package m9312

// MemorySize is the size in bytes of the target address space (32K words).
const MemorySize = 1 << 16

// Memory is the byte addressable store behind the console. Words are little
// endian; callers are responsible for keeping word addresses even.
type Memory struct {
	ram [MemorySize]byte
}

// ReadWord returns the word stored at addr and addr+1.
func (mem *Memory) ReadWord(addr uint16) uint16 {
	return uint16(mem.ram[addr]) | uint16(mem.ram[addr+1])<<8
}

// WriteWord stores the low byte of value at addr and the high byte at addr+1.
func (mem *Memory) WriteWord(addr, value uint16) {
	mem.ram[addr] = byte(value)
	mem.ram[addr+1] = byte(value >> 8)
}

func newMemory() *Memory {
	return &Memory{}
}

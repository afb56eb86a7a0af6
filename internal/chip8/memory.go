package chip8

// Memory layout constants.
const (
	// MemorySize is the size of the addressable memory block.
	MemorySize = 4096

	// FontBase is the address of the first font glyph.
	FontBase = 0x50

	// ProgramStart is the address programs are loaded to and execution starts at.
	ProgramStart = 0x200

	// DisplayBufferSize covers both the display and the authoritative frame.
	DisplayBufferSize = 512

	// FrameSize is the size of a single bit-packed 64x32 frame.
	FrameSize = DisplayBufferSize / 2

	// DisplayFrameStart is the first address of the host facing frame.
	DisplayFrameStart = MemorySize - DisplayBufferSize

	// FrameStart is the first address of the authoritative frame.
	FrameStart = MemorySize - FrameSize

	// StackTop is the initial stack pointer, the stack grows downward from here.
	StackTop = DisplayFrameStart

	// StackDepth is the maximum number of nested subroutine calls.
	StackDepth = 16

	// StackBase is the lowest address the stack may occupy.
	StackBase = StackTop - 2*StackDepth

	// MaxProgramSize is the number of bytes available for program code.
	MaxProgramSize = StackBase - ProgramStart
)

// Screen dimensions in pixels.
const (
	ScreenWidth  = 64
	ScreenHeight = 32
)

const (
	glyphSize    = 5
	instructSize = 2
	flagRegister = 0xF
	registers    = 16
	keys         = 16
)

// fontGlyphs are the hexadecimal digits 0-F as 4x5 pixel sprites.
var fontGlyphs = [registers * glyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// readWord reads a big-endian 16 bit value.
func (c *Chip8) readWord(address uint16) uint16 {
	return uint16(c.memory[address])<<8 | uint16(c.memory[address+1])
}

// writeWord writes a big-endian 16 bit value.
func (c *Chip8) writeWord(address, value uint16) {
	c.memory[address] = byte(value >> 8)
	c.memory[address+1] = byte(value)
}

// span returns the memory range [address, address+length) or an error if
// the range leaves the memory block.
func (c *Chip8) span(address uint16, length int) ([]byte, error) {
	end := int(address) + length
	if end > MemorySize {
		return nil, ErrMemoryOutOfBounds
	}
	return c.memory[address:end], nil
}

package chip8

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/retroenv/retrogolib/log"
)

// RandomSource supplies the random bytes for the Cxkk instruction.
type RandomSource interface {
	Uint32() uint32
}

// Config contains the host controlled machine settings.
type Config struct {
	Resolver        Resolver     // title lookup for LoadProgram, may be nil
	Random          RandomSource // defaults to a PCG generator seeded with Seed
	Seed            uint64       // 0 seeds from the current time
	StrictAlignment bool         // fail on odd program counters
}

// Chip8 is a CHIP-8 machine instance. It is not safe for concurrent use.
type Chip8 struct {
	logger *log.Logger
	config Config
	random RandomSource

	memory [MemorySize]byte
	v      [registers]byte
	index  uint16
	delay  byte
	sound  byte

	pc uint16
	sp uint16

	keypad [keys]bool
	quirks Quirks
	title  string

	halted error
}

// New returns a freshly initialized machine with the font loaded and the
// program counter at ProgramStart.
func New(logger *log.Logger, cfg Config) *Chip8 {
	random := cfg.Random
	if random == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		random = rand.New(rand.NewPCG(seed, seed>>32|seed<<32))
	}

	c := &Chip8{
		logger: logger,
		config: cfg,
		random: random,
	}
	c.Reset()
	return c
}

// Reset restores the power-on state. The keypad state is kept since it
// mirrors the host input devices.
func (c *Chip8) Reset() {
	c.memory = [MemorySize]byte{}
	copy(c.memory[FontBase:], fontGlyphs[:])

	c.v = [registers]byte{}
	c.index = 0
	c.delay = 0
	c.sound = 0
	c.pc = ProgramStart
	c.sp = StackTop
	c.quirks = DefaultQuirks
	c.title = ""
	c.halted = nil
}

// LoadProgram resolves the title using the configured resolver and loads
// the program. On error the machine state is unchanged.
func (c *Chip8) LoadProgram(title string) error {
	if c.config.Resolver == nil {
		return fmt.Errorf("%w: '%s'", ErrUnknownProgram, title)
	}
	program, err := c.config.Resolver.Resolve(title)
	if err != nil {
		return fmt.Errorf("resolving program: %w", err)
	}
	return c.Load(program)
}

// Load resets the machine, copies the program code to ProgramStart and
// applies the program quirks. On error the machine state is unchanged.
func (c *Chip8) Load(program Program) error {
	switch {
	case len(program.Code) == 0:
		return fmt.Errorf("loading '%s': %w", program.Title, ErrEmptyProgram)
	case len(program.Code) > MaxProgramSize:
		return fmt.Errorf("loading '%s' with %d bytes, maximum is %d: %w",
			program.Title, len(program.Code), MaxProgramSize, ErrProgramTooLarge)
	}

	c.Reset()
	copy(c.memory[ProgramStart:], program.Code)
	c.quirks = program.Quirks
	c.title = program.Title

	c.logger.Debug("Program loaded",
		log.String("title", program.Title),
		log.Int("size", len(program.Code)),
		log.Stringer("quirks", program.Quirks))
	return nil
}

// DecrementTimers decrements the delay and sound timers, stopping at zero.
func (c *Chip8) DecrementTimers() {
	if c.delay > 0 {
		c.delay--
	}
	if c.sound > 0 {
		c.sound--
	}
}

// Memory returns the full memory block. The slice aliases machine memory
// and is only valid until the next call that mutates the machine.
func (c *Chip8) Memory() []byte {
	return c.memory[:]
}

// Display returns the host facing, OR-blended frame.
func (c *Chip8) Display() []byte {
	return c.memory[DisplayFrameStart:FrameStart]
}

// DisplaySize returns the byte length of the display frame.
func (c *Chip8) DisplaySize() int {
	return FrameSize
}

// Frame returns the authoritative frame as modified by draw instructions.
func (c *Chip8) Frame() []byte {
	return c.memory[FrameStart:]
}

// PC returns the program counter.
func (c *Chip8) PC() uint16 { return c.pc }

// SP returns the stack pointer.
func (c *Chip8) SP() uint16 { return c.sp }

// Index returns the index register.
func (c *Chip8) Index() uint16 { return c.index }

// V returns the general purpose register x.
func (c *Chip8) V(x int) byte { return c.v[x&0xF] }

// DelayTimer returns the delay timer value.
func (c *Chip8) DelayTimer() byte { return c.delay }

// SoundTimer returns the sound timer value, the host sounds a tone while it is non-zero.
func (c *Chip8) SoundTimer() byte { return c.sound }

// Quirks returns the quirks of the loaded program.
func (c *Chip8) Quirks() Quirks { return c.quirks }

// Title returns the title of the loaded program.
func (c *Chip8) Title() string { return c.title }

// Halted returns the execution error that stopped the machine, if any.
func (c *Chip8) Halted() error { return c.halted }

package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestNew(t *testing.T) {
	t.Parallel()

	c := New(log.NewTestLogger(t), Config{})

	assert.Equal(t, uint16(ProgramStart), c.PC())
	assert.Equal(t, uint16(StackTop), c.SP())
	assert.Equal(t, uint16(0), c.Index())
	assert.Equal(t, DefaultQuirks, c.Quirks())
	assert.Equal(t, fontGlyphs[:], c.Memory()[FontBase:FontBase+len(fontGlyphs)])
	for x := range registers {
		assert.Equal(t, byte(0), c.V(x))
	}
	assert.Len(t, c.Memory(), MemorySize)
	assert.Len(t, c.Display(), c.DisplaySize())
}

func TestMemoryLayout(t *testing.T) {
	t.Parallel()

	assert.True(t, FontBase+len(fontGlyphs) <= ProgramStart)
	assert.True(t, ProgramStart+MaxProgramSize == StackBase)
	assert.Equal(t, 0xDE0, StackBase)
	assert.Equal(t, 0xE00, DisplayFrameStart)
	assert.Equal(t, 0xF00, FrameStart)
	assert.Equal(t, ScreenWidth*ScreenHeight/8, FrameSize)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	code := []byte{0x12, 0x00, 0xA2, 0x34}
	c := newTestMachine(t, Quirks{})
	c.v[3] = 7

	err := c.Load(Program{Title: "loop", Code: code, Quirks: Quirks{Shift: false, LoadStore: true}})
	assert.NoError(t, err)
	assert.Equal(t, code, c.Memory()[ProgramStart:ProgramStart+len(code)])
	assert.Equal(t, Quirks{LoadStore: true}, c.Quirks())
	assert.Equal(t, byte(0), c.V(3))
	assert.Equal(t, "loop", c.Title())
}

func TestLoadErrorsLeaveStateUnchanged(t *testing.T) {
	t.Parallel()

	c := newTestMachine(t, Quirks{Shift: true}, 0x6042, 0x1202)
	step(t, c, 1)

	tests := []struct {
		name    string
		program Program
		err     error
	}{
		{"empty program", Program{Title: "empty"}, ErrEmptyProgram},
		{"program too large", Program{Title: "big", Code: make([]byte, MaxProgramSize+1)}, ErrProgramTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := c.Load(tt.program)
			assert.True(t, errors.Is(err, tt.err))
			assert.Equal(t, byte(0x42), c.V(0))
			assert.Equal(t, uint16(0x202), c.PC())
			assert.Equal(t, byte(0x60), c.Memory()[ProgramStart])
			assert.Equal(t, Quirks{Shift: true}, c.Quirks())
		})
	}
}

func TestLoadMaxProgramSize(t *testing.T) {
	t.Parallel()

	c := newTestMachine(t, Quirks{})
	code := make([]byte, MaxProgramSize)
	code[len(code)-1] = 0xAB

	assert.NoError(t, c.Load(Program{Title: "max", Code: code}))
	assert.Equal(t, byte(0xAB), c.Memory()[StackBase-1])
}

func TestLoadProgram(t *testing.T) {
	t.Parallel()

	tetris := Program{Title: "TETRIS", Code: []byte{0xA2, 0xB4, 0x23, 0xE6}, Quirks: Quirks{Shift: true}}
	c := New(log.NewTestLogger(t), Config{
		Resolver: mapResolver{"tetris": tetris},
	})

	assert.NoError(t, c.LoadProgram("Tetris"))
	assert.Equal(t, tetris.Code, c.Memory()[ProgramStart:ProgramStart+len(tetris.Code)])
	assert.Equal(t, tetris.Quirks, c.Quirks())

	err := c.LoadProgram("unknown")
	assert.True(t, errors.Is(err, ErrUnknownProgram))
	assert.Equal(t, tetris.Code, c.Memory()[ProgramStart:ProgramStart+len(tetris.Code)])
	assert.Equal(t, "TETRIS", c.Title())
}

func TestLoadProgramWithoutResolver(t *testing.T) {
	t.Parallel()

	c := New(log.NewTestLogger(t), Config{})
	err := c.LoadProgram("pong")
	assert.True(t, errors.Is(err, ErrUnknownProgram))
}

func TestDecrementTimers(t *testing.T) {
	t.Parallel()

	c := newTestMachine(t, Quirks{}, 0x6002, 0xF015, 0x6001, 0xF018)
	step(t, c, 4)
	assert.Equal(t, byte(2), c.DelayTimer())
	assert.Equal(t, byte(1), c.SoundTimer())

	c.DecrementTimers()
	assert.Equal(t, byte(1), c.DelayTimer())
	assert.Equal(t, byte(0), c.SoundTimer())

	c.DecrementTimers()
	c.DecrementTimers()
	assert.Equal(t, byte(0), c.DelayTimer())
	assert.Equal(t, byte(0), c.SoundTimer())
}

func TestSetKey(t *testing.T) {
	t.Parallel()

	c := newTestMachine(t, Quirks{})

	assert.NoError(t, c.SetKey(0xF, true))
	assert.True(t, c.KeyPressed(0xF))
	assert.NoError(t, c.SetKey(0xF, false))
	assert.False(t, c.KeyPressed(0xF))

	for _, index := range []int{-1, 16, 255} {
		err := c.SetKey(index, true)
		assert.True(t, errors.Is(err, ErrKeyOutOfRange))
	}
	assert.False(t, c.KeyPressed(16))
}

func TestResetKeepsKeypad(t *testing.T) {
	t.Parallel()

	c := newTestMachine(t, Quirks{}, 0x6011)
	assert.NoError(t, c.SetKey(4, true))
	step(t, c, 1)

	c.Reset()
	assert.Equal(t, byte(0), c.V(0))
	assert.Equal(t, uint16(ProgramStart), c.PC())
	assert.True(t, c.KeyPressed(4))
}

package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

var glyphE = []byte{0xF0, 0x80, 0xF0, 0x80, 0xF0}

func TestDrawCollision(t *testing.T) {
	t.Parallel()

	c := newTestMachine(t, DefaultQuirks, 0xA300, 0xD015, 0xD015)
	copy(c.memory[0x300:], glyphE)

	step(t, c, 2)
	for row, bits := range glyphE {
		assert.Equal(t, bits, c.Frame()[row*ScreenWidth/8])
	}
	assert.Equal(t, byte(0), c.V(flagRegister))

	step(t, c, 1)
	for row := range glyphE {
		assert.Equal(t, byte(0), c.Frame()[row*ScreenWidth/8])
	}
	assert.Equal(t, byte(1), c.V(flagRegister))
}

func TestDrawResetsFlag(t *testing.T) {
	t.Parallel()

	c := newTestMachine(t, DefaultQuirks, 0xA300, 0xD015)
	copy(c.memory[0x300:], glyphE)
	c.v[flagRegister] = 1

	step(t, c, 2)
	assert.Equal(t, byte(0), c.V(flagRegister))
}

func TestDrawWrapsAround(t *testing.T) {
	t.Parallel()

	c := newTestMachine(t, DefaultQuirks, 0xA300, 0x603E, 0x611F, 0xD012)
	c.memory[0x300] = 0xFF
	c.memory[0x301] = 0x81

	step(t, c, 4)
	for _, x := range []int{62, 63, 0, 1, 2, 3, 4, 5} {
		assert.True(t, PixelSet(c.Frame(), x, 31))
	}
	assert.False(t, PixelSet(c.Frame(), 61, 31))
	assert.False(t, PixelSet(c.Frame(), 6, 31))

	assert.True(t, PixelSet(c.Frame(), 62, 0))
	assert.True(t, PixelSet(c.Frame(), 5, 0))
	assert.False(t, PixelSet(c.Frame(), 63, 0))
	assert.False(t, PixelSet(c.Frame(), 0, 0))
}

func TestDrawLargeOriginWraps(t *testing.T) {
	t.Parallel()

	c := newTestMachine(t, DefaultQuirks, 0xA300, 0x6041, 0x6122, 0xD011)
	c.memory[0x300] = 0x80

	step(t, c, 4)
	assert.True(t, PixelSet(c.Frame(), 1, 2))
}

func TestDisplayBlendsPreviousFrame(t *testing.T) {
	t.Parallel()

	// draw E at 0,0 twice to erase it, then draw E at 8,0 using V0 and V1
	c := newTestMachine(t, DefaultQuirks, 0xA300, 0xD015, 0xD015, 0x6008, 0xD015)
	copy(c.memory[0x300:], glyphE)

	step(t, c, 2)
	assert.Equal(t, c.Frame(), c.Display())

	step(t, c, 1)
	for row, bits := range glyphE {
		assert.Equal(t, byte(0), c.Frame()[row*8])
		assert.Equal(t, bits, c.Display()[row*8])
	}

	step(t, c, 2)
	for row, bits := range glyphE {
		assert.Equal(t, byte(0), c.Display()[row*8])
		assert.Equal(t, bits, c.Display()[row*8+1])
	}
}

func TestClearDisplayKeepsPreviousFrameVisible(t *testing.T) {
	t.Parallel()

	c := newTestMachine(t, DefaultQuirks, 0xA300, 0xD015, 0x00E0, 0x6008, 0xD015)
	copy(c.memory[0x300:], glyphE)

	step(t, c, 2)
	step(t, c, 1)
	for row, bits := range glyphE {
		assert.Equal(t, byte(0), c.Frame()[row*8])
		assert.Equal(t, bits, c.Display()[row*8])
	}

	step(t, c, 2)
	for row, bits := range glyphE {
		assert.Equal(t, byte(0), c.Display()[row*8])
		assert.Equal(t, bits, c.Display()[row*8+1])
	}
}

func TestClearDisplayTwiceEmptiesDisplay(t *testing.T) {
	t.Parallel()

	c := newTestMachine(t, DefaultQuirks, 0xA300, 0xD015, 0x00E0, 0x00E0)
	copy(c.memory[0x300:], glyphE)

	step(t, c, 4)
	assert.Equal(t, make([]byte, FrameSize), c.Display())
}

func TestBlend(t *testing.T) {
	t.Parallel()

	previous := []byte{0b1010_0000, 0x00, 0xFF}
	current := []byte{0b0101_0000, 0x0F, 0x00}

	blend(previous, current)
	assert.Equal(t, []byte{0b1111_0000, 0x0F, 0xFF}, previous)
	assert.Equal(t, []byte{0b0101_0000, 0x0F, 0x00}, current)
}

func TestPixelSet(t *testing.T) {
	t.Parallel()

	frame := make([]byte, FrameSize)
	frame[0] = 0x80
	frame[FrameSize-1] = 0x01

	assert.True(t, PixelSet(frame, 0, 0))
	assert.False(t, PixelSet(frame, 1, 0))
	assert.True(t, PixelSet(frame, ScreenWidth-1, ScreenHeight-1))
	assert.True(t, PixelSet(frame, ScreenWidth, ScreenHeight))
}

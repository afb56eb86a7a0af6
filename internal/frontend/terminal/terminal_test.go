package terminal

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

type keyRecorder struct {
	events []string
}

func (r *keyRecorder) Frame() error    { return nil }
func (r *keyRecorder) Display() []byte { return make([]byte, chip8.FrameSize) }
func (r *keyRecorder) Title() string   { return "TEST" }

func (r *keyRecorder) SetKey(index int, pressed bool) error {
	state := "up"
	if pressed {
		state = "down"
	}
	r.events = append(r.events, string(rune('0'+index))+" "+state)
	return nil
}

func TestKeyStateHoldsAndReleases(t *testing.T) {
	driver := &keyRecorder{}
	keys := newKeyState()

	// w is key 5, p is not mapped
	assert.NoError(t, keys.press(driver, 'w'))
	assert.NoError(t, keys.press(driver, 'w'))
	assert.NoError(t, keys.press(driver, 'p'))
	assert.Equal(t, []string{"5 down"}, driver.events)

	for range holdFrames - 1 {
		assert.NoError(t, keys.tick(driver))
	}
	assert.Len(t, driver.events, 1)

	assert.NoError(t, keys.tick(driver))
	assert.Equal(t, []string{"5 down", "5 up"}, driver.events)

	assert.NoError(t, keys.tick(driver))
	assert.Len(t, driver.events, 2)
}

func TestKeyStateRepeatExtendsHold(t *testing.T) {
	driver := &keyRecorder{}
	keys := newKeyState()

	assert.NoError(t, keys.press(driver, '1'))
	for range holdFrames - 1 {
		assert.NoError(t, keys.tick(driver))
	}
	assert.NoError(t, keys.press(driver, '1'))
	assert.NoError(t, keys.tick(driver))
	assert.Equal(t, []string{"1 down"}, driver.events)
}

func TestRenderHalfBlocks(t *testing.T) {
	frame := make([]byte, chip8.FrameSize)
	frame[0] = 0xE0    // y=0: x=0,1,2
	frame[8] = 0xA0    // y=1: x=0,2
	frame[8*31] = 0x80 // y=31: x=0

	lines := strings.Split(renderHalfBlocks(frame, "LOGO"), "\r\n")
	assert.Equal(t, "LOGO  [esc] quit", lines[0])
	assert.Len(t, lines, chip8.ScreenHeight/2+2)
	assert.True(t, strings.HasPrefix(lines[1], "█▀█ "))
	assert.True(t, strings.HasPrefix(lines[16], "▄ "))
}

func TestReadInput(t *testing.T) {
	input := make(chan []byte, 4)
	done := make(chan struct{})
	readInput(bytes.NewReader([]byte("qw")), input, done)

	var got []byte
	for chunk := range input {
		got = append(got, chunk...)
	}
	assert.Equal(t, []byte("qw"), got)
}

func TestQuitRequested(t *testing.T) {
	tests := []struct {
		name     string
		chunk    []byte
		expected bool
	}{
		{"lone escape", []byte{keyEscape}, true},
		{"ctrl c", []byte{keyCtrlC}, true},
		{"ctrl c after key", []byte{'q', keyCtrlC}, true},
		{"cursor up", []byte("\x1b[A"), false},
		{"function key", []byte("\x1bOP"), false},
		{"key", []byte("q"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, quitRequested(tt.chunk))
		})
	}
}

func TestKeyBytes(t *testing.T) {
	assert.Equal(t, []byte("qw"), keyBytes([]byte("qw")))
	assert.Equal(t, []byte("q"), keyBytes([]byte("q\x1b[A")))
	assert.Empty(t, keyBytes([]byte("\x1b[B")))
}

func TestRunRequiresTerminal(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "stdin")
	assert.NoError(t, err)
	defer func() { _ = file.Close() }()

	f := New(log.NewTestLogger(t))
	f.in = file
	err = f.Run(context.Background(), &keyRecorder{})
	assert.True(t, errors.Is(err, errNotTerminal))
}

// Package frontend contains the interfaces and helpers shared by the host
// frontends.
package frontend

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// FrameRate is the number of frames per second of interactive frontends.
const FrameRate = 60

// Driver is the emulation side driven by a frontend.
type Driver interface {
	// Frame runs the instructions of one frame and decrements the timers.
	Frame() error
	// SetKey updates the state of a keypad key.
	SetKey(index int, pressed bool) error
	// Display returns the frame to show on the host.
	Display() []byte
	// Title returns the title of the running program.
	Title() string
}

// Frontend runs a host loop until the context is cancelled, the user quits
// or the driver fails.
type Frontend interface {
	Run(ctx context.Context, driver Driver) error
}

// Layout maps each keypad key to its host key in the COSMAC VIP layout:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  q w e r
//	7 8 9 E      a s d f
//	A 0 B F      z x c v
var Layout = [16]rune{
	'x', '1', '2', '3',
	'q', 'w', 'e', 'a',
	's', 'd', 'z', 'c',
	'4', 'r', 'f', 'v',
}

// KeyForRune returns the keypad key of a host key.
func KeyForRune(r rune) (int, bool) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	for key, host := range Layout {
		if host == r {
			return key, true
		}
	}
	return 0, false
}

// Render writes the frame as text, one line per pixel row.
func Render(w io.Writer, frame []byte, on, off rune) error {
	var b strings.Builder
	b.Grow((chip8.ScreenWidth + 1) * chip8.ScreenHeight)

	for y := range chip8.ScreenHeight {
		for x := range chip8.ScreenWidth {
			if chip8.PixelSet(frame, x, y) {
				b.WriteRune(on)
			} else {
				b.WriteRune(off)
			}
		}
		b.WriteByte('\n')
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

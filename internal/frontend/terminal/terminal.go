// Package terminal implements an interactive frontend for ANSI terminals.
// Raw mode input is read from stdin and the display is drawn with half
// block characters, two pixel rows per text line.
package terminal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// Terminals report key presses only, a key counts as held for this many
// frames after its last press or auto repeat.
const holdFrames = 8

const readBufferSize = 16

const (
	keyCtrlC  = 0x03
	keyEscape = 0x1B

	ansiHome       = "\x1b[H"
	ansiClear      = "\x1b[2J"
	ansiHideCursor = "\x1b[?25l"
	ansiShowCursor = "\x1b[?25h"
)

var errNotTerminal = errors.New("stdin is not a terminal")

// Compile-time check to ensure Frontend implements frontend.Frontend.
var _ frontend.Frontend = (*Frontend)(nil)

// Frontend drives a session at 60 Hz from a terminal.
type Frontend struct {
	logger *log.Logger
	in     *os.File
	out    io.Writer
}

// New returns a terminal frontend using stdin and stdout.
func New(logger *log.Logger) *Frontend {
	return &Frontend{
		logger: logger,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// Run puts the terminal into raw mode and runs frames until Escape or
// Ctrl-C is pressed, the context is cancelled or the driver fails.
func (f *Frontend) Run(ctx context.Context, driver frontend.Driver) error {
	fd := int(f.in.Fd())
	if !term.IsTerminal(fd) {
		return errNotTerminal
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("setting terminal raw mode: %w", err)
	}
	defer func() {
		_, _ = io.WriteString(f.out, ansiShowCursor+"\r\n")
		_ = term.Restore(fd, oldState)
	}()

	done := make(chan struct{})
	defer close(done)
	input := make(chan []byte, 16)
	go readInput(f.in, input, done)

	_, _ = io.WriteString(f.out, ansiHideCursor+ansiClear)
	f.logger.Debug("Terminal frontend started", log.String("title", driver.Title()))

	ticker := time.NewTicker(time.Second / frontend.FrameRate)
	defer ticker.Stop()

	keys := newKeyState()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case chunk, ok := <-input:
			if !ok || quitRequested(chunk) {
				return nil
			}
			for _, b := range keyBytes(chunk) {
				if err := keys.press(driver, b); err != nil {
					return err
				}
			}

		case <-ticker.C:
			if err := driver.Frame(); err != nil {
				return fmt.Errorf("running frame: %w", err)
			}
			if err := keys.tick(driver); err != nil {
				return err
			}
			screen := ansiHome + renderHalfBlocks(driver.Display(), driver.Title())
			if _, err := io.WriteString(f.out, screen); err != nil {
				return fmt.Errorf("writing screen: %w", err)
			}
		}
	}
}

// readInput forwards the bytes of every stdin read as one chunk until a read
// fails or done is closed. The input channel is closed when stdin reaches its end.
func readInput(in io.Reader, input chan<- []byte, done <-chan struct{}) {
	defer close(input)
	buf := make([]byte, readBufferSize)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			select {
			case input <- slices.Clone(buf[:n]):
			case <-done:
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// quitRequested returns whether a read chunk is Ctrl-C or a lone Escape.
// Escape followed by more bytes in the same read starts an escape sequence
// such as a cursor key.
func quitRequested(chunk []byte) bool {
	if len(chunk) == 1 && chunk[0] == keyEscape {
		return true
	}
	return slices.Contains(chunk, keyCtrlC)
}

// keyBytes returns the chunk up to the first escape sequence.
func keyBytes(chunk []byte) []byte {
	if i := bytes.IndexByte(chunk, keyEscape); i >= 0 {
		return chunk[:i]
	}
	return chunk
}

// keyState emulates key releases for terminals.
type keyState struct {
	remaining [16]int
}

func newKeyState() *keyState {
	return &keyState{}
}

func (k *keyState) press(driver frontend.Driver, b byte) error {
	key, ok := frontend.KeyForRune(rune(b))
	if !ok {
		return nil
	}
	if k.remaining[key] == 0 {
		if err := driver.SetKey(key, true); err != nil {
			return fmt.Errorf("pressing key: %w", err)
		}
	}
	k.remaining[key] = holdFrames
	return nil
}

func (k *keyState) tick(driver frontend.Driver) error {
	for key, remaining := range k.remaining {
		if remaining == 0 {
			continue
		}
		k.remaining[key]--
		if k.remaining[key] > 0 {
			continue
		}
		if err := driver.SetKey(key, false); err != nil {
			return fmt.Errorf("releasing key: %w", err)
		}
	}
	return nil
}

// renderHalfBlocks draws the frame with one text line per two pixel rows.
// Raw mode needs explicit carriage returns.
func renderHalfBlocks(frame []byte, title string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  [esc] quit\r\n", title)

	for y := 0; y < chip8.ScreenHeight; y += 2 {
		for x := range chip8.ScreenWidth {
			top := chip8.PixelSet(frame, x, y)
			bottom := chip8.PixelSet(frame, x, y+1)
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteString("\r\n")
	}
	return b.String()
}

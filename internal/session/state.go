package session

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// State is a snapshot of the machine registers.
type State struct {
	Title      string
	Quirks     chip8.Quirks
	PC         uint16
	Index      uint16
	SP         uint16
	DelayTimer byte
	SoundTimer byte
	V          [16]byte
	Keys       [16]bool
}

func snapshot(c *chip8.Chip8) State {
	state := State{
		Title:      c.Title(),
		Quirks:     c.Quirks(),
		PC:         c.PC(),
		Index:      c.Index(),
		SP:         c.SP(),
		DelayTimer: c.DelayTimer(),
		SoundTimer: c.SoundTimer(),
	}
	for i := range state.V {
		state.V[i] = c.V(i)
	}
	for i := range state.Keys {
		state.Keys[i] = c.KeyPressed(i)
	}
	return state
}

// RegisterString returns the general purpose registers as hex bytes.
func (s State) RegisterString() string {
	parts := make([]string, len(s.V))
	for i, value := range s.V {
		parts[i] = fmt.Sprintf("%02X", value)
	}
	return strings.Join(parts, " ")
}

// KeyString returns the held down keys as hex digits, or "-" if no key is held.
func (s State) KeyString() string {
	var b strings.Builder
	for i, pressed := range s.Keys {
		if pressed {
			fmt.Fprintf(&b, "%X", i)
		}
	}
	if b.Len() == 0 {
		return "-"
	}
	return b.String()
}

// String returns a multi line register dump.
func (s State) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "title: %s (%s)\n", s.Title, s.Quirks)
	fmt.Fprintf(&b, "pc: $%03X  i: $%03X  sp: $%03X  dt: %d  st: %d\n",
		s.PC, s.Index, s.SP, s.DelayTimer, s.SoundTimer)
	fmt.Fprintf(&b, "keys: %s\n", s.KeyString())
	for i, value := range s.V {
		fmt.Fprintf(&b, "v%X: $%02X", i, value)
		if i%8 == 7 {
			b.WriteByte('\n')
		} else {
			b.WriteString("  ")
		}
	}
	return b.String()
}

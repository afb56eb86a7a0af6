package chip8

import (
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/log"
)

type fixedRandom uint32

func (f fixedRandom) Uint32() uint32 {
	return uint32(f)
}

type mapResolver map[string]Program

func (m mapResolver) Resolve(title string) (Program, error) {
	program, ok := m[strings.ToLower(title)]
	if !ok {
		return Program{}, ErrUnknownProgram
	}
	return program, nil
}

// newTestMachine returns a machine with the given opcodes loaded at ProgramStart.
func newTestMachine(t *testing.T, quirks Quirks, opcodes ...uint16) *Chip8 {
	t.Helper()

	c := New(log.NewTestLogger(t), Config{Seed: 1})
	if len(opcodes) == 0 {
		return c
	}

	code := make([]byte, 0, 2*len(opcodes))
	for _, op := range opcodes {
		code = append(code, byte(op>>8), byte(op))
	}
	if err := c.Load(Program{Title: "test", Code: code, Quirks: quirks}); err != nil {
		t.Fatalf("loading test program: %v", err)
	}
	return c
}

// step advances the machine n times and fails the test on error.
func step(t *testing.T, c *Chip8, n int) {
	t.Helper()
	for i := range n {
		if err := c.Advance(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
}

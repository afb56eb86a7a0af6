package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func parseArgs(t *testing.T, args ...string) (options.Program, options.Session, error) {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = append([]string{"prog"}, args...)
	return ParseFlags()
}

func TestParseFlags_Defaults(t *testing.T) {
	opts, session, err := parseArgs(t, "logo")
	assert.NoError(t, err)
	assert.Equal(t, "logo", opts.Input)
	assert.Equal(t, options.FrontendTerminal, opts.Frontend)
	assert.Equal(t, 10, session.Speed)
	assert.Equal(t, 60, session.Frames)
	assert.Equal(t, 10, session.Scale)
	assert.Equal(t, options.ToggleAuto, session.QuirkShift)
	assert.Equal(t, options.ToggleAuto, session.QuirkLoadStore)
	assert.Empty(t, session.Breakpoints)
}

func TestParseFlags_SessionOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Session
	}{
		{
			name: "speed and frames",
			args: []string{"-speed", "20", "-frames", "5", "pong.ch8"},
			want: options.Session{Speed: 20, Frames: 5, Scale: 10, QuirkShift: options.ToggleAuto, QuirkLoadStore: options.ToggleAuto},
		},
		{
			name: "quirk overrides",
			args: []string{"-quirk-shift", "off", "-quirk-loadstore", "ON", "pong.ch8"},
			want: options.Session{Speed: 10, Frames: 60, Scale: 10, QuirkShift: options.ToggleOff, QuirkLoadStore: options.ToggleOn},
		},
		{
			name: "breakpoints",
			args: []string{"-break", "200, 0x2A4,$3fe", "-strict", "-trace", "-seed", "7", "logo"},
			want: options.Session{
				Speed: 10, Frames: 60, Scale: 10, Seed: 7,
				Breakpoints: []uint16{0x200, 0x2A4, 0x3FE},
				Strict:      true, Trace: true,
				QuirkShift: options.ToggleAuto, QuirkLoadStore: options.ToggleAuto,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got, err := parseArgs(t, tt.args...)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		usage bool
	}{
		{name: "missing program", args: nil, usage: true},
		{name: "flag after program", args: []string{"logo", "-debug"}, usage: true},
		{name: "unknown frontend", args: []string{"-frontend", "vga", "logo"}},
		{name: "zero speed", args: []string{"-speed", "0", "logo"}},
		{name: "invalid quirk", args: []string{"-quirk-shift", "maybe", "logo"}},
		{name: "invalid breakpoint", args: []string{"-break", "xyz", "logo"}},
		{name: "breakpoint outside memory", args: []string{"-break", "1000", "logo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseArgs(t, tt.args...)
			assert.Error(t, err)
			var usageErr *UsageError
			assert.Equal(t, tt.usage, errors.As(err, &usageErr))
		})
	}
}

func TestParseFlags_ListWithoutProgram(t *testing.T) {
	opts, _, err := parseArgs(t, "-list")
	assert.NoError(t, err)
	assert.True(t, opts.List)
	assert.Equal(t, "", opts.Input)
}

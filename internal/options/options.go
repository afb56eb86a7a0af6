// Package options contains the program options.
package options

import "strings"

// Frontend names.
const (
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"
	FrontendHeadless = "headless"
)

// Positional contains positional arguments.
type Positional struct {
	Program string `arg:"positional" usage:"built-in title or ROM file"`
}

// Parameters contains program source and host options.
type Parameters struct {
	Input    string
	RomDir   string `flag:"romdir" usage:"directory of .ch8 ROM files to add to the catalog"`
	Frontend string `flag:"frontend" usage:"host frontend: terminal, window, headless" default:"terminal"`
	Break    string `flag:"break" usage:"comma separated hex breakpoint addresses"`
}

// Flags contains behavior options.
type Flags struct {
	Speed          int    `flag:"speed" usage:"instructions per frame" default:"10"`
	Frames         int    `flag:"frames" usage:"frames to run in headless mode" default:"60"`
	Scale          int    `flag:"scale" usage:"window pixel scale" default:"10"`
	Seed           uint64 `flag:"seed" usage:"random seed, 0 seeds from the clock"`
	QuirkShift     string `flag:"quirk-shift" usage:"shift quirk: auto, on, off" default:"auto"`
	QuirkLoadStore string `flag:"quirk-loadstore" usage:"load/store quirk: auto, on, off" default:"auto"`
	Strict         bool   `flag:"strict" usage:"fail on odd program counters"`
	List           bool   `flag:"list" usage:"list the program catalog and exit"`
	Trace          bool   `flag:"trace" usage:"log every executed instruction"`
	Debug          bool   `flag:"debug" usage:"enable debug logging"`
	Quiet          bool   `flag:"q" usage:"quiet mode"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
}

// Toggle overrides a boolean setting. ToggleAuto keeps the value chosen by
// the program catalog.
type Toggle string

// Toggle values.
const (
	ToggleAuto Toggle = "auto"
	ToggleOn   Toggle = "on"
	ToggleOff  Toggle = "off"
)

// ParseToggle converts a flag value to a Toggle.
func ParseToggle(s string) (Toggle, bool) {
	switch t := Toggle(strings.ToLower(strings.TrimSpace(s))); t {
	case ToggleAuto, ToggleOn, ToggleOff:
		return t, true
	case "":
		return ToggleAuto, true
	default:
		return "", false
	}
}

// Apply returns the overridden value.
func (t Toggle) Apply(value bool) bool {
	switch t {
	case ToggleOn:
		return true
	case ToggleOff:
		return false
	default:
		return value
	}
}

// Session defines options to control an emulation session.
type Session struct {
	Speed       int      // instructions per frame
	Frames      int      // frames to run in headless mode
	Scale       int      // window pixel scale
	Seed        uint64   // random seed
	Breakpoints []uint16 // addresses that log machine state when reached
	Strict      bool
	Trace       bool

	QuirkShift     Toggle
	QuirkLoadStore Toggle
}

// NewSession returns a new options instance with default options.
func NewSession() Session {
	return Session{
		Speed:          10,
		Frames:         60,
		Scale:          10,
		QuirkShift:     ToggleAuto,
		QuirkLoadStore: ToggleAuto,
	}
}

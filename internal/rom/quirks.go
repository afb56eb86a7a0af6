package rom

import "github.com/retroenv/retrochip8/internal/chip8"

// quirkTable contains the quirk settings of known titles. It is the only
// place where per title behavior is assigned.
var quirkTable = map[string]chip8.Quirks{
	"tetris":      {Shift: true, LoadStore: true},
	"brix":        {Shift: true, LoadStore: true},
	"pong":        {Shift: true, LoadStore: true},
	"pong2":       {Shift: true, LoadStore: true},
	"invaders":    {Shift: true, LoadStore: true},
	"sctest":      {Shift: true, LoadStore: true},
	"bctest":      {Shift: true, LoadStore: true},
	"c8test":      {Shift: true, LoadStore: true},
	"sample":      {Shift: true, LoadStore: true},
	"opcode_test": {Shift: true, LoadStore: true},

	"logo":    {Shift: true, LoadStore: true},
	"counter": {Shift: true, LoadStore: false},
	"keypad":  {Shift: true, LoadStore: true},
}

// QuirksFor returns the quirks for a title, unknown titles get chip8.DefaultQuirks.
func QuirksFor(title string) chip8.Quirks {
	quirks, ok := quirkTable[canonical(title)]
	if !ok {
		return chip8.DefaultQuirks
	}
	return quirks
}

package chip8

// Quirks selects between historically divergent instruction semantics.
type Quirks struct {
	// Shift makes 8xy6 and 8xyE shift Vx in place, ignoring Vy.
	Shift bool
	// LoadStore keeps the index register unchanged after Fx55 and Fx65.
	LoadStore bool
}

// DefaultQuirks are active before any program is loaded.
var DefaultQuirks = Quirks{
	Shift:     true,
	LoadStore: true,
}

// Program is a loadable code blob together with the quirks it expects.
type Program struct {
	Title  string
	Code   []byte
	Quirks Quirks
}

// Resolver resolves a program title to a program.
type Resolver interface {
	Resolve(title string) (Program, error)
}

func (q Quirks) String() string {
	return "shift=" + onOff(q.Shift) + " loadstore=" + onOff(q.LoadStore)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

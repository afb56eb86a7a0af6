// Package session orchestrates program selection and drives a machine
// frame by frame for a frontend.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/rom"
	"github.com/retroenv/retrochip8/internal/trace"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

var errNotStarted = errors.New("session not started")

// Compile-time check to ensure Session implements frontend.Driver.
var _ frontend.Driver = (*Session)(nil)

// Session runs a single program. It is not safe for concurrent use.
type Session struct {
	logger   *log.Logger
	opts     options.Session
	detector *detector.Detector
	loader   *loader.Loader
	catalog  *rom.Catalog

	machine     *chip8.Chip8
	breakpoints set.Set[uint16]
	frames      uint64
}

// New creates a new session with the built-in program catalog.
func New(logger *log.Logger, opts options.Session) *Session {
	breakpoints := set.New[uint16]()
	for _, address := range opts.Breakpoints {
		breakpoints.Add(address)
	}

	return &Session{
		logger:      logger,
		opts:        opts,
		detector:    detector.New(logger),
		loader:      loader.New(logger),
		catalog:     rom.Builtin(),
		breakpoints: breakpoints,
	}
}

// Catalog returns the program catalog of the session.
func (s *Session) Catalog() *rom.Catalog {
	return s.catalog
}

// AddROMDir registers all ROM files of a directory in the catalog.
func (s *Session) AddROMDir(dir string) error {
	programs, err := s.loader.LoadDir(dir)
	if err != nil {
		return fmt.Errorf("loading ROM directory: %w", err)
	}
	for _, program := range programs {
		if err := s.catalog.Register(program); err != nil {
			s.logger.Warn("Skipping ROM file", log.String("title", program.Title), log.Err(err))
		}
	}
	return nil
}

// Start resolves the input to a program and loads it into a new machine.
// The input is either a catalog title or a ROM file path.
func (s *Session) Start(input string) error {
	source := s.detector.Detect(input)
	if source.IsFile() {
		program, err := s.loader.Load(source.Path)
		if err != nil {
			return fmt.Errorf("loading program: %w", err)
		}
		replaced, err := s.catalog.Override(program)
		if err != nil {
			return fmt.Errorf("registering program: %w", err)
		}
		if replaced {
			s.logger.Info("ROM file replaces catalog program", log.String("title", program.Title))
		}
	}

	resolver := quirkResolver{catalog: s.catalog, opts: s.opts}
	s.machine = chip8.New(s.logger, config.MachineConfig(resolver, s.opts))
	if err := s.machine.LoadProgram(source.Title); err != nil {
		return fmt.Errorf("starting program: %w", err)
	}
	s.frames = 0

	s.logger.Info("Running program",
		log.String("title", s.machine.Title()),
		log.Stringer("quirks", s.machine.Quirks()),
		log.Int("speed", s.opts.Speed))
	return nil
}

// Run hands control to the frontend.
func (s *Session) Run(ctx context.Context, fe frontend.Frontend) error {
	if s.machine == nil {
		return errNotStarted
	}
	if err := fe.Run(ctx, s); err != nil {
		return fmt.Errorf("running frontend: %w", err)
	}
	return nil
}

// Frame executes the instructions of one 60 Hz frame and decrements the
// timers afterwards. A fatal machine error aborts the frame.
func (s *Session) Frame() error {
	if s.machine == nil {
		return errNotStarted
	}

	for range s.opts.Speed {
		pc := s.machine.PC()
		if s.breakpoints.Contains(pc) {
			s.logBreakpoint(pc)
		}
		if s.opts.Trace {
			s.logInstruction(pc)
		}

		if err := s.machine.Advance(); err != nil {
			return fmt.Errorf("frame %d: %w", s.frames, err)
		}
	}

	s.machine.DecrementTimers()
	s.frames++
	return nil
}

// SetKey updates the state of a keypad key.
func (s *Session) SetKey(index int, pressed bool) error {
	if s.machine == nil {
		return errNotStarted
	}
	if err := s.machine.SetKey(index, pressed); err != nil {
		return fmt.Errorf("setting key: %w", err)
	}
	return nil
}

// Display returns the display frame of the machine.
func (s *Session) Display() []byte {
	if s.machine == nil {
		return make([]byte, chip8.FrameSize)
	}
	return s.machine.Display()
}

// Title returns the title of the running program.
func (s *Session) Title() string {
	if s.machine == nil {
		return ""
	}
	return s.machine.Title()
}

// Frames returns the number of completed frames.
func (s *Session) Frames() uint64 {
	return s.frames
}

// State returns a snapshot of the machine registers.
func (s *Session) State() State {
	if s.machine == nil {
		return State{}
	}
	return snapshot(s.machine)
}

func (s *Session) logBreakpoint(pc uint16) {
	state := snapshot(s.machine)
	s.logger.Info("Breakpoint reached",
		log.Hex("pc", pc),
		log.Hex("i", state.Index),
		log.Hex("sp", state.SP),
		log.Uint8("dt", state.DelayTimer),
		log.Uint8("st", state.SoundTimer),
		log.String("v", state.RegisterString()),
		log.String("keys", state.KeyString()))
}

func (s *Session) logInstruction(pc uint16) {
	memory := s.machine.Memory()
	if int(pc)+1 >= len(memory) {
		return
	}
	opcode := uint16(memory[pc])<<8 | uint16(memory[pc+1])

	s.logger.Debug("Execute", instructionFields(pc, opcode, s.machine.Index())...)
}

// instructionFields returns the trace log fields of an instruction. The index
// register is added for memory accessing instructions.
func instructionFields(pc, opcode, index uint16) []log.Field {
	fields := []log.Field{
		log.Hex("pc", pc),
		log.String("instruction", trace.Format(opcode)),
	}
	if trace.AccessesMemory(opcode) {
		fields = append(fields, log.Hex("i", index))
	}
	if trace.IsSkip(opcode) {
		fields = append(fields, log.Bool("skip", true))
	}
	return fields
}

// quirkResolver applies the session quirk overrides to catalog programs.
type quirkResolver struct {
	catalog *rom.Catalog
	opts    options.Session
}

func (r quirkResolver) Resolve(title string) (chip8.Program, error) {
	program, err := r.catalog.Resolve(title)
	if err != nil {
		return chip8.Program{}, err
	}
	program.Quirks = config.ApplyQuirks(program.Quirks, r.opts)
	return program, nil
}

// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses command line flags and returns program and session options
func ParseFlags() (options.Program, options.Session, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && !opts.List) {
		return opts, options.Session{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Session{}, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, options.Session{}, err
	}

	if len(args) > 0 {
		opts.Input = args[0]
	}

	sessionOptions, err := createSessionOptions(opts)
	if err != nil {
		return opts, options.Session{}, err
	}
	return opts, sessionOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <built-in title or ROM file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after program to run, please pass the program as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Frontend = strings.ToLower(opts.Frontend)
	validFrontends := []string{options.FrontendTerminal, options.FrontendWindow, options.FrontendHeadless}
	valid := false
	for _, name := range validFrontends {
		if opts.Frontend == name {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unsupported frontend: %s. Valid options: %s",
			opts.Frontend, strings.Join(validFrontends, ", "))
	}

	switch {
	case opts.Speed < 1:
		return fmt.Errorf("invalid speed %d: must be at least 1", opts.Speed)
	case opts.Frames < 1:
		return fmt.Errorf("invalid frame count %d: must be at least 1", opts.Frames)
	case opts.Scale < 1:
		return fmt.Errorf("invalid scale %d: must be at least 1", opts.Scale)
	}
	return nil
}

// createSessionOptions creates session options based on program options
func createSessionOptions(opts options.Program) (options.Session, error) {
	sessionOptions := options.NewSession()
	sessionOptions.Speed = opts.Speed
	sessionOptions.Frames = opts.Frames
	sessionOptions.Scale = opts.Scale
	sessionOptions.Seed = opts.Seed
	sessionOptions.Strict = opts.Strict
	sessionOptions.Trace = opts.Trace

	var ok bool
	if sessionOptions.QuirkShift, ok = options.ParseToggle(opts.QuirkShift); !ok {
		return options.Session{}, fmt.Errorf("invalid shift quirk value '%s': expected auto, on or off", opts.QuirkShift)
	}
	if sessionOptions.QuirkLoadStore, ok = options.ParseToggle(opts.QuirkLoadStore); !ok {
		return options.Session{}, fmt.Errorf("invalid load/store quirk value '%s': expected auto, on or off", opts.QuirkLoadStore)
	}

	breakpoints, err := parseBreakpoints(opts.Break)
	if err != nil {
		return options.Session{}, err
	}
	sessionOptions.Breakpoints = breakpoints
	return sessionOptions, nil
}

// parseBreakpoints parses a comma separated list of hex addresses.
func parseBreakpoints(s string) ([]uint16, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var addresses []uint16
	for field := range strings.SplitSeq(s, ",") {
		field = strings.ToLower(strings.TrimSpace(field))
		field = strings.TrimPrefix(strings.TrimPrefix(field, "0x"), "$")
		value, err := strconv.ParseUint(field, 16, 16)
		if err != nil {
			return nil, fmt.Errorf("parsing breakpoint '%s': %w", field, err)
		}
		if value >= chip8.MemorySize {
			return nil, fmt.Errorf("breakpoint $%X is outside of memory", value)
		}
		addresses = append(addresses, uint16(value))
	}
	return addresses, nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Frontend, "frontend", options.FrontendTerminal, "host frontend to use (terminal/window/headless)")
	flags.StringVar(&opts.RomDir, "romdir", "", "directory of .ch8 ROM files to add to the program catalog")
	flags.StringVar(&opts.Break, "break", "", "comma separated hex addresses that log the machine state when reached, for example 200,2a4")
	flags.StringVar(&opts.QuirkShift, "quirk-shift", string(options.ToggleAuto), "shift instructions operate on Vx only (auto/on/off)")
	flags.StringVar(&opts.QuirkLoadStore, "quirk-loadstore", string(options.ToggleAuto), "bulk load and store keep the index register unchanged (auto/on/off)")
	flags.IntVar(&opts.Speed, "speed", 10, "instructions executed per 60 Hz frame")
	flags.IntVar(&opts.Frames, "frames", 60, "number of frames to run in headless mode")
	flags.IntVar(&opts.Scale, "scale", 10, "pixel scale of the window frontend")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed of the random number generator, 0 seeds from the clock")
	flags.BoolVar(&opts.Strict, "strict", false, "stop on odd program counter values")
	flags.BoolVar(&opts.List, "list", false, "list the titles of the program catalog and exit")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, implies -debug")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

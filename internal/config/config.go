// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// ApplyQuirks returns the quirks of a program with the session overrides applied.
func ApplyQuirks(quirks chip8.Quirks, opts options.Session) chip8.Quirks {
	return chip8.Quirks{
		Shift:     opts.QuirkShift.Apply(quirks.Shift),
		LoadStore: opts.QuirkLoadStore.Apply(quirks.LoadStore),
	}
}

// MachineConfig returns the machine settings for a session.
func MachineConfig(resolver chip8.Resolver, opts options.Session) chip8.Config {
	return chip8.Config{
		Resolver:        resolver,
		Seed:            opts.Seed,
		StrictAlignment: opts.Strict,
	}
}

// Package loader handles ROM file loading operations.
package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/rom"
	"github.com/retroenv/retrogolib/log"
)

// Loader handles loading ROM files from disk.
type Loader struct {
	logger *log.Logger
}

// New creates a new ROM loader.
func New(logger *log.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// Load reads a raw CHIP-8 ROM file. The program title is derived from the
// file name and selects the quirks from the catalog quirk table.
func (l *Loader) Load(path string) (chip8.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return chip8.Program{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	switch {
	case len(data) == 0:
		return chip8.Program{}, fmt.Errorf("loading %s: %w", path, chip8.ErrEmptyProgram)
	case len(data) > chip8.MaxProgramSize:
		return chip8.Program{}, fmt.Errorf("loading %s: %w: %d bytes exceed %d",
			path, chip8.ErrProgramTooLarge, len(data), chip8.MaxProgramSize)
	}

	title := detector.TitleFromPath(path)
	program := chip8.Program{
		Title:  title,
		Code:   data,
		Quirks: rom.QuirksFor(title),
	}
	l.logger.Debug("Loaded ROM file",
		log.String("file", path),
		log.String("title", title),
		log.Int("size", len(data)))
	return program, nil
}

// LoadDir loads all ROM files of a directory, sorted by file name.
// ROM files either carry a known ROM extension or have no extension at all.
// Files that fail to load are skipped with a warning.
func (l *Loader) LoadDir(dir string) ([]chip8.Program, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading ROM directory: %w", err)
	}

	var programs []chip8.Program
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if !entry.Type().IsRegular() || !isROMFileName(entry.Name()) {
			l.logger.Debug("Ignoring file in ROM directory", log.String("file", path))
			continue
		}

		program, err := l.Load(path)
		if err != nil {
			l.logger.Warn("Skipping ROM file", log.String("file", path), log.Err(err))
			continue
		}
		programs = append(programs, program)
	}
	return programs, nil
}

func isROMFileName(name string) bool {
	return detector.IsROMExtension(name) || filepath.Ext(name) == ""
}

// Package detector decides whether a program argument names a catalog
// title or a ROM file.
package detector

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/log"
)

// Source describes where a program comes from.
type Source struct {
	Title string // catalog title of the program
	Path  string // ROM file path, empty for catalog titles
}

// IsFile returns whether the program is read from a ROM file.
func (s Source) IsFile() bool {
	return s.Path != ""
}

// Detector handles program source detection from file extensions and the file system.
type Detector struct {
	logger *log.Logger
}

// New creates a new program source detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the program source of the input argument.
// Inputs with a ROM extension or naming an existing file are treated as
// ROM files, everything else as a catalog title.
func (d *Detector) Detect(input string) Source {
	if !d.isFile(input) {
		d.logger.Debug("Detected catalog title", log.String("title", input))
		return Source{Title: input}
	}

	source := Source{
		Title: TitleFromPath(input),
		Path:  input,
	}
	d.logger.Debug("Detected ROM file",
		log.String("title", source.Title),
		log.String("file", input))
	return source
}

func (d *Detector) isFile(input string) bool {
	if IsROMExtension(input) {
		return true
	}
	info, err := os.Stat(input)
	return err == nil && info.Mode().IsRegular()
}

// IsROMExtension returns whether the file name has a known CHIP-8 ROM extension.
func IsROMExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".ch8", ".c8", ".rom":
		return true
	default:
		return false
	}
}

// TitleFromPath returns the catalog title for a ROM file, which is the
// upper-cased base name without extension.
func TitleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.ToUpper(strings.TrimSuffix(base, filepath.Ext(base)))
}

// Package rom provides the catalog that resolves program titles to code
// and quirk settings.
package rom

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// ErrDuplicateTitle is returned when registering a title twice.
var ErrDuplicateTitle = errors.New("program title already registered")

var errEmptyTitle = errors.New("program title is empty")

// Compile-time check to ensure Catalog implements chip8.Resolver.
var _ chip8.Resolver = (*Catalog)(nil)

// Catalog maps program titles to programs. Titles are matched case-insensitively.
type Catalog struct {
	programs map[string]chip8.Program
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		programs: make(map[string]chip8.Program),
	}
}

// Builtin returns a catalog containing the compiled-in programs.
func Builtin() *Catalog {
	c := NewCatalog()
	for _, program := range builtinPrograms() {
		c.programs[canonical(program.Title)] = program
	}
	return c
}

// Register adds a program to the catalog.
func (c *Catalog) Register(program chip8.Program) error {
	key, err := validate(program)
	if err != nil {
		return err
	}
	if _, ok := c.programs[key]; ok {
		return fmt.Errorf("registering '%s': %w", program.Title, ErrDuplicateTitle)
	}

	c.programs[key] = program
	return nil
}

// Override adds a program to the catalog, replacing a registered program of
// the same title. It returns whether a program was replaced.
func (c *Catalog) Override(program chip8.Program) (bool, error) {
	key, err := validate(program)
	if err != nil {
		return false, err
	}
	_, replaced := c.programs[key]
	c.programs[key] = program
	return replaced, nil
}

// Resolve returns the program registered for the title.
func (c *Catalog) Resolve(title string) (chip8.Program, error) {
	program, ok := c.programs[canonical(title)]
	if !ok {
		return chip8.Program{}, fmt.Errorf("%w: '%s'", chip8.ErrUnknownProgram, title)
	}
	return program, nil
}

// Titles returns the sorted titles of all registered programs.
func (c *Catalog) Titles() []string {
	titles := make([]string, 0, len(c.programs))
	for _, program := range c.programs {
		titles = append(titles, program.Title)
	}
	slices.Sort(titles)
	return titles
}

func validate(program chip8.Program) (string, error) {
	key := canonical(program.Title)
	switch {
	case key == "":
		return "", errEmptyTitle
	case len(program.Code) == 0:
		return "", fmt.Errorf("registering '%s': %w", program.Title, chip8.ErrEmptyProgram)
	}
	return key, nil
}

func canonical(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

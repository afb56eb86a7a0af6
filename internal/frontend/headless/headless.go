// Package headless implements a frontend without host input that runs a
// fixed number of frames and prints the final display.
package headless

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/frontend"
)

// Compile-time check to ensure Frontend implements frontend.Frontend.
var _ frontend.Frontend = (*Frontend)(nil)

// Frontend runs frames as fast as possible.
type Frontend struct {
	frames int
	out    io.Writer
}

// New returns a headless frontend that runs the given number of frames and
// renders the display to out. A nil writer skips rendering.
func New(frames int, out io.Writer) *Frontend {
	return &Frontend{
		frames: frames,
		out:    out,
	}
}

// Run executes the frames and renders the resulting display.
func (f *Frontend) Run(ctx context.Context, driver frontend.Driver) error {
	for i := range f.frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := driver.Frame(); err != nil {
			return fmt.Errorf("running frame %d: %w", i, err)
		}
	}

	if f.out == nil {
		return nil
	}
	return frontend.Render(f.out, driver.Display(), '#', '.')
}

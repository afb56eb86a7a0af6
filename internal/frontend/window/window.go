//go:build !headless

// Package window implements a desktop window frontend using ebiten.
package window

import (
	"context"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrogolib/log"
)

// Compile-time check to ensure Frontend implements frontend.Frontend.
var _ frontend.Frontend = (*Frontend)(nil)

// keys maps each keypad key to its host key, see frontend.Layout.
var keys = [16]ebiten.Key{
	ebiten.KeyX, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyQ, ebiten.KeyW, ebiten.KeyE, ebiten.KeyA,
	ebiten.KeyS, ebiten.KeyD, ebiten.KeyZ, ebiten.KeyC,
	ebiten.KeyDigit4, ebiten.KeyR, ebiten.KeyF, ebiten.KeyV,
}

// Frontend shows the display in a scaled window.
type Frontend struct {
	logger *log.Logger
	scale  int
}

// New returns a window frontend with the given pixel scale.
func New(logger *log.Logger, scale int) *Frontend {
	return &Frontend{
		logger: logger,
		scale:  scale,
	}
}

// Run opens the window and runs frames until it is closed, Escape is
// pressed, the context is cancelled or the driver fails.
func (f *Frontend) Run(ctx context.Context, driver frontend.Driver) error {
	g := &game{
		ctx:    ctx,
		driver: driver,
		pixels: make([]byte, chip8.ScreenWidth*chip8.ScreenHeight*4),
	}

	ebiten.SetWindowSize(chip8.ScreenWidth*f.scale, chip8.ScreenHeight*f.scale)
	ebiten.SetWindowTitle("retrochip8 - " + driver.Title())
	ebiten.SetTPS(frontend.FrameRate)

	f.logger.Debug("Window frontend started",
		log.String("title", driver.Title()),
		log.Int("scale", f.scale))

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running window: %w", err)
	}
	if g.err != nil {
		return g.err
	}
	return ctx.Err()
}

// game implements ebiten.Game.
type game struct {
	ctx    context.Context
	driver frontend.Driver
	pixels []byte
	err    error
}

func (g *game) Update() error {
	if g.ctx.Err() != nil || ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for index, key := range keys {
		if err := g.driver.SetKey(index, ebiten.IsKeyPressed(key)); err != nil {
			g.err = fmt.Errorf("setting key: %w", err)
			return ebiten.Termination
		}
	}

	if err := g.driver.Frame(); err != nil {
		g.err = fmt.Errorf("running frame: %w", err)
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	fillPixels(g.pixels, g.driver.Display())
	screen.WritePixels(g.pixels)
}

func (g *game) Layout(_, _ int) (int, int) {
	return chip8.ScreenWidth, chip8.ScreenHeight
}

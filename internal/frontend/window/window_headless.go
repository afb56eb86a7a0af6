//go:build headless

// Package window implements a desktop window frontend using ebiten.
package window

import (
	"context"
	"errors"

	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrogolib/log"
)

var errUnavailable = errors.New("window frontend is not available in headless builds")

// Frontend is unavailable in headless builds.
type Frontend struct{}

// New returns a frontend that fails to run.
func New(_ *log.Logger, _ int) *Frontend {
	return &Frontend{}
}

// Run returns an error.
func (f *Frontend) Run(_ context.Context, _ frontend.Driver) error {
	return errUnavailable
}

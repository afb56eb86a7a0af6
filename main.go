// Package main implements the main entry point for a CHIP-8 emulator
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/frontend/headless"
	"github.com/retroenv/retrochip8/internal/frontend/terminal"
	"github.com/retroenv/retrochip8/internal/frontend/window"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/rom"
	"github.com/retroenv/retrochip8/internal/session"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, sessionOptions, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			cli.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug || opts.Trace, opts.Quiet)
	cli.PrintBanner(logger, opts, version, commit, date)

	s := session.New(logger, sessionOptions)
	if opts.RomDir != "" {
		if err := s.AddROMDir(opts.RomDir); err != nil {
			logger.Fatal(err.Error())
		}
	}

	if opts.List {
		listCatalog(s.Catalog())
		return
	}

	if err := s.Start(opts.Input); err != nil {
		logger.Fatal(err.Error())
	}

	if err := s.Run(ctx, createFrontend(logger, opts, sessionOptions)); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Emulation cancelled")
			return
		}
		logger.Error("Emulation failed", log.Err(err))
		os.Exit(1)
	}
}

func createFrontend(logger *log.Logger, opts options.Program, sessionOptions options.Session) frontend.Frontend {
	switch opts.Frontend {
	case options.FrontendWindow:
		return window.New(logger, sessionOptions.Scale)
	case options.FrontendHeadless:
		return headless.New(sessionOptions.Frames, os.Stdout)
	default:
		return terminal.New(logger)
	}
}

func listCatalog(catalog *rom.Catalog) {
	for _, title := range catalog.Titles() {
		program, err := catalog.Resolve(title)
		if err != nil {
			continue
		}
		fmt.Printf("%-16s %5d bytes  %s\n", title, len(program.Code), program.Quirks)
	}
}

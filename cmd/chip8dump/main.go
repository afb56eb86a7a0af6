// Package main implements a tool that runs a CHIP-8 program without a
// display and dumps the resulting screen and registers.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/frontend/headless"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/session"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

type optionFlags struct {
	input  string
	romDir string

	debug bool
	quiet bool
}

func main() {
	opts, sessionOptions := readArguments()

	if !opts.quiet {
		printBanner()
	}

	if err := dump(opts, sessionOptions); err != nil {
		fmt.Println(fmt.Errorf("dumping failed: %w", err))
		os.Exit(1)
	}
}

func readArguments() (optionFlags, options.Session) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	opts := optionFlags{}
	sessionOptions := options.NewSession()

	flags.IntVar(&sessionOptions.Frames, "frames", sessionOptions.Frames, "number of frames to run")
	flags.IntVar(&sessionOptions.Speed, "speed", sessionOptions.Speed, "instructions executed per frame")
	flags.Uint64Var(&sessionOptions.Seed, "seed", 1, "seed of the random number generator")
	flags.StringVar(&opts.romDir, "romdir", "", "directory of .ch8 ROM files to add to the program catalog")
	flags.BoolVar(&opts.debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.quiet, "q", false, "perform operations quietly")

	err := flags.Parse(os.Args[1:])
	args := flags.Args()

	if err != nil || len(args) == 0 || sessionOptions.Frames < 1 || sessionOptions.Speed < 1 {
		printBanner()
		fmt.Printf("usage: chip8dump [options] <built-in title or ROM file>\n\n")
		flags.PrintDefaults()
		os.Exit(1)
	}
	opts.input = args[0]

	return opts, sessionOptions
}

func printBanner() {
	fmt.Println("[-----------------------------------]")
	fmt.Println("[ chip8dump - CHIP-8 program dumper ]")
	fmt.Printf("[-----------------------------------]\n\n")
	fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
}

func dump(opts optionFlags, sessionOptions options.Session) error {
	logger := config.CreateLogger(opts.debug, opts.quiet)
	s := session.New(logger, sessionOptions)

	if opts.romDir != "" {
		if err := s.AddROMDir(opts.romDir); err != nil {
			return err
		}
	}
	if err := s.Start(opts.input); err != nil {
		return err
	}

	runErr := s.Run(app.Context(), headless.New(sessionOptions.Frames, os.Stdout))

	fmt.Printf("\nframes: %d\n", s.Frames())
	fmt.Print(s.State())
	if runErr != nil {
		return fmt.Errorf("running program: %w", runErr)
	}
	return nil
}

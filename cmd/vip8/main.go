// Package main implements a COSMAC VIP CHIP-8 interpreter.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/retroenv/retrogolib/buildinfo"

	"meszarosd.hu/vip8/internal/chip8"
	"meszarosd.hu/vip8/internal/cli"
	"meszarosd.hu/vip8/internal/clock"
	"meszarosd.hu/vip8/internal/config"
	"meszarosd.hu/vip8/internal/options"
	"meszarosd.hu/vip8/internal/screen"
	"meszarosd.hu/vip8/internal/sdlio"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

const title = "vip8 | CHIP-8 interpreter"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	opts, interp, err := cli.ParseFlags(args)
	if err != nil {
		var usage *cli.UsageError
		if errors.As(err, &usage) {
			usage.ShowUsage()
			fmt.Fprintln(os.Stderr, usage.Error())
			return 2
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if opts.Version {
		fmt.Fprintf(stdout, "vip8 %s\n", buildinfo.Version(version, commit, date))
		return 0
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	if !opts.Quiet && !opts.Disasm {
		logger.Printf("version %s, profile %s (%s), %d instructions per second",
			buildinfo.Version(version, commit, date), opts.Profile, interp.Quirks, interp.IPS)
	}

	if err := runROM(opts, interp, logger, stdout); err != nil {
		logger.Print(err)
		if opts.Quiet {
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}
	return 0
}

func runROM(opts options.Program, interp options.Interpreter, logger *log.Logger, stdout io.Writer) error {
	rom, err := os.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("reading ROM file '%s': %w", opts.Input, err)
	}

	if opts.Disasm {
		for _, line := range chip8.Disassemble(rom, chip8.ProgramStart) {
			fmt.Fprintln(stdout, line)
		}
		return nil
	}

	machine, err := chip8.NewMachine(rom)
	if err != nil {
		return fmt.Errorf("loading ROM file '%s': %w", opts.Input, err)
	}

	var cpuOpts []chip8.Option
	var driverOpts = []clock.Option{clock.WithIPS(interp.IPS)}
	if opts.Debug {
		cpuOpts = append(cpuOpts, chip8.WithLogger(logger))
		driverOpts = append(driverOpts, clock.WithLogger(logger))
	}
	cpu := chip8.NewCpu(interp.Quirks, cpuOpts...)
	driver := clock.New(cpu, machine, &chip8.KeyState{}, driverOpts...)

	switch opts.Frontend {
	case options.FrontendHeadless:
		err = driver.RunFrames(opts.Frames)
		snap := driver.Snapshot()
		fmt.Fprint(stdout, snap.Display.String())
	case options.FrontendSDL:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = sdlio.Run(ctx, driver, title, opts.Scale)
	default:
		err = screen.Run(driver, title, opts.Scale)
	}
	if err != nil {
		return fmt.Errorf("running ROM: %w", err)
	}
	return nil
}

// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"meszarosd.hu/vip8/internal/chip8"
	"meszarosd.hu/vip8/internal/clock"
	"meszarosd.hu/vip8/internal/options"
)

const (
	defaultFrames = 600
	defaultScale  = 10
)

// quirkFlags hold the per-quirk flag values. Only flags that were given on
// the command line are applied.
type quirkFlags struct {
	shift, jump, storeLoad, displayWait, vfReset bool
}

// ParseFlags parses the command line arguments, without the program name,
// and returns program and interpreter options.
func ParseFlags(args []string) (options.Program, options.Interpreter, error) {
	flags := flag.NewFlagSet("vip8", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var opts options.Program
	var quirks quirkFlags
	readOptionFlags(flags, &opts)
	readQuirkFlags(flags, &quirks)

	if err := flags.Parse(args); err != nil {
		return opts, options.Interpreter{}, &UsageError{flags: flags, msg: err.Error()}
	}
	if opts.Version {
		return opts, options.Interpreter{}, nil
	}

	rest := flags.Args()
	if len(rest) == 0 {
		return opts, options.Interpreter{}, &UsageError{flags: flags, msg: "missing ROM file"}
	}
	if err := validateArgs(flags, rest); err != nil {
		return opts, options.Interpreter{}, err
	}
	opts.Input = rest[0]

	if err := normalizeOptions(&opts); err != nil {
		return opts, options.Interpreter{}, err
	}

	q, err := chip8.ParseProfile(opts.Profile)
	if err != nil {
		return opts, options.Interpreter{}, err
	}
	applyQuirkOverrides(flags, quirks, &q)

	return opts, options.Interpreter{Quirks: q, IPS: opts.IPS}, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	e.WriteUsage(os.Stdout)
}

func (e *UsageError) WriteUsage(w io.Writer) {
	fmt.Fprintf(w, "usage: vip8 [options] <ROM file>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(w)
		e.flags.PrintDefaults()
		e.flags.SetOutput(io.Discard)
	}
	fmt.Fprintln(w)
}

// validateArgs checks if arguments are in correct order
func validateArgs(flags *flag.FlagSet, args []string) error {
	for i, arg := range args {
		if i > 0 && strings.HasPrefix(arg, "-") {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	if len(args) > 1 {
		return &UsageError{flags: flags, msg: fmt.Sprintf("unexpected arguments after ROM file: %s", strings.Join(args[1:], " "))}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Profile = strings.ToLower(opts.Profile)
	opts.Frontend = strings.ToLower(opts.Frontend)

	if opts.IPS <= 0 {
		return fmt.Errorf("invalid instruction rate %d, must be positive", opts.IPS)
	}
	if opts.Frames < 0 {
		return fmt.Errorf("invalid frame count %d", opts.Frames)
	}
	if opts.Scale <= 0 {
		return fmt.Errorf("invalid scale %d, must be positive", opts.Scale)
	}

	validFrontends := []string{options.FrontendEbiten, options.FrontendSDL, options.FrontendHeadless}
	for _, valid := range validFrontends {
		if opts.Frontend == valid {
			return nil
		}
	}
	return fmt.Errorf("unsupported frontend: %s. Valid options: %s",
		opts.Frontend, strings.Join(validFrontends, ", "))
}

// applyQuirkOverrides lets explicitly given quirk flags win over the profile.
func applyQuirkOverrides(flags *flag.FlagSet, f quirkFlags, q *chip8.Quirks) {
	flags.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "shift-original":
			q.ShiftOriginal = f.shift
		case "jump-offset-original":
			q.JumpWithOffsetOriginal = f.jump
		case "store-load-original":
			q.StoreLoadOriginal = f.storeLoad
		case "display-wait":
			q.DisplayWait = f.displayWait
		case "vf-reset":
			q.VFReset = f.vfReset
		}
	})
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Profile, "profile", chip8.ProfileVIP, "quirk profile (vip/modern)")
	flags.StringVar(&opts.Frontend, "frontend", options.FrontendEbiten, "frontend to run the ROM with (ebiten/sdl/headless)")
	flags.IntVar(&opts.IPS, "ips", clock.DefaultIPS, "instructions executed per second")
	flags.IntVar(&opts.Frames, "frames", defaultFrames, "number of 60 Hz frames to run in headless mode")
	flags.IntVar(&opts.Scale, "scale", defaultScale, "window pixels per display pixel")
	flags.BoolVar(&opts.Disasm, "disasm", false, "print a disassembly listing of the ROM and exit")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Version, "version", false, "print the version and exit")
}

func readQuirkFlags(flags *flag.FlagSet, f *quirkFlags) {
	flags.BoolVar(&f.shift, "shift-original", false, "8XY6/8XYE shift VY into VX (overrides profile)")
	flags.BoolVar(&f.jump, "jump-offset-original", false, "BNNN jumps to NNN+V0 (overrides profile)")
	flags.BoolVar(&f.storeLoad, "store-load-original", false, "FX55/FX65 advance I (overrides profile)")
	flags.BoolVar(&f.displayWait, "display-wait", false, "DXYN waits for the vertical blank (overrides profile)")
	flags.BoolVar(&f.vfReset, "vf-reset", false, "8XY1/8XY2/8XY3 reset VF (overrides profile)")
}

// Package options contains the program options.
package options

import "meszarosd.hu/vip8/internal/chip8"

// Frontends that can present a running machine.
const (
	FrontendEbiten   = "ebiten"
	FrontendSDL      = "sdl"
	FrontendHeadless = "headless"
)

// Program options of the interpreter.
type Program struct {
	Input    string // ROM file
	Profile  string // quirk profile name
	Frontend string

	IPS    int // instructions per second
	Frames int // frames to run in headless mode
	Scale  int // window pixels per display pixel

	Disasm  bool
	Debug   bool
	Quiet   bool
	Version bool
}

// Interpreter holds the resolved machine configuration.
type Interpreter struct {
	Quirks chip8.Quirks
	IPS    int
}

// Package clock schedules the interpreter: a configurable instruction rate,
// a fixed 60 Hz timer/vblank frame, and consistent snapshots for frontends.
package clock

import (
	"context"
	"log"
	"sync"
	"time"

	"meszarosd.hu/vip8/internal/chip8"
)

const (
	FrameRate = 60
	// DefaultIPS is the instruction rate used when none is configured.
	DefaultIPS = 700
)

// Snapshot is what a frontend needs to present one frame.
type Snapshot struct {
	Display    chip8.Framebuffer
	SoundTimer uint8
	Frame      uint64
}

// Driver serializes Step and DecayTimers on one machine. Frame and the
// snapshot readers may be called from different goroutines.
type Driver struct {
	mu      sync.Mutex
	cpu     *chip8.Cpu
	machine *chip8.Machine
	keys    *chip8.KeyState
	ips     int
	logger  *log.Logger

	acc   int // instruction budget carried between frames, in 1/FrameRate units
	frame uint64
	err   error
}

type Option func(*Driver)

func WithIPS(ips int) Option {
	return func(d *Driver) {
		d.ips = ips
	}
}

// WithLogger enables a summary line per frame.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) {
		d.logger = l
	}
}

func New(cpu *chip8.Cpu, machine *chip8.Machine, keys *chip8.KeyState, opts ...Option) *Driver {
	d := &Driver{
		cpu:     cpu,
		machine: machine,
		keys:    keys,
		ips:     DefaultIPS,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.keys == nil {
		d.keys = &chip8.KeyState{}
	}
	if d.ips <= 0 {
		d.ips = DefaultIPS
	}
	return d
}

func (d *Driver) Keys() *chip8.KeyState {
	return d.keys
}

// Frame runs one 60 Hz frame: the instructions due in this frame, then the
// timer decay and the vertical blank. After an error every later call
// returns the same error without running.
func (d *Driver) Frame() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.err != nil {
		return d.err
	}

	d.acc += d.ips
	steps := d.acc / FrameRate
	d.acc %= FrameRate

	executed, drawn := 0, 0
	for ; executed < steps; executed++ {
		res, err := d.cpu.Step(d.machine, d.keys)
		if err != nil {
			d.err = err
			return err
		}
		if res == chip8.StepDrew {
			drawn++
		}
		if res == chip8.StepWaitingVBlank {
			break
		}
	}

	chip8.DecayTimers(d.machine)
	d.machine.BeginFrame()
	d.frame++

	if d.logger != nil {
		d.logger.Printf("frame %d: %d/%d steps, %d draws, %s",
			d.frame, executed, steps, drawn, d.machine)
	}
	return nil
}

// RunFrames runs n frames back to back without waiting for wall-clock time.
func (d *Driver) RunFrames(n int) error {
	for i := 0; i < n; i++ {
		if err := d.Frame(); err != nil {
			return err
		}
	}
	return nil
}

// Run paces Frame at 60 Hz of wall-clock time until ctx is done or the
// machine fails.
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / FrameRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := d.Frame(); err != nil {
				return err
			}
		}
	}
}

func (d *Driver) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return Snapshot{
		Display:    d.machine.Display,
		SoundTimer: d.machine.SoundTimer,
		Frame:      d.frame,
	}
}

// Err returns the error that stopped the machine, if any.
func (d *Driver) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}

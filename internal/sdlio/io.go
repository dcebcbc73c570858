// Package sdlio is the SDL frontend. The interpreter runs on its own
// goroutine at the clock's pace; the calling goroutine owns the window.
package sdlio

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/sync/errgroup"

	"meszarosd.hu/vip8/internal/chip8"
	"meszarosd.hu/vip8/internal/clock"
)

const (
	DefaultScale = 10

	screenColor = 0x1A237E
	spriteColor = 0x9FA8DA
)

// SDL wants its window and event calls on the main thread.
func init() {
	runtime.LockOSThread()
}

// IO is the window and keyboard side of a running machine.
type IO struct {
	window  *sdl.Window
	surface *sdl.Surface
	scale   int32

	driver    *clock.Driver
	lastFrame uint64
	drawn     bool
}

func NewIO(driver *clock.Driver, scale int) *IO {
	if scale <= 0 {
		scale = DefaultScale
	}
	return &IO{
		driver: driver,
		scale:  int32(scale),
	}
}

// SetupWindow initialises SDL and opens the main window.
func (io *IO) SetupWindow(title string) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("initialising SDL: %w", err)
	}

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		chip8.ScreenWidth*io.scale, chip8.ScreenHeight*io.scale, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("creating window: %w", err)
	}
	io.window = window

	io.surface, err = window.GetSurface()
	if err != nil {
		io.Destroy()
		return fmt.Errorf("getting window surface: %w", err)
	}
	return io.surface.FillRect(nil, screenColor)
}

// Destroy should be called before quitting the application
func (io *IO) Destroy() {
	if io.window != nil {
		io.window.Destroy()
		io.window = nil
	}
	sdl.Quit()
}

// Loop pumps window events and presents new frames until ctx is done or
// the window is closed. Closing the window calls quit.
func (io *IO) Loop(ctx context.Context, quit func()) error {
	ticker := time.NewTicker(time.Second / clock.FrameRate)
	defer ticker.Stop()

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch t := event.(type) {
			case *sdl.KeyboardEvent:
				if t.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
					quit()
					continue
				}
				key, ok := keymap(t.Keysym.Scancode)
				if !ok || t.Repeat != 0 {
					continue
				}
				switch t.GetType() {
				case sdl.KEYDOWN:
					io.driver.Keys().Press(key)
				case sdl.KEYUP:
					io.driver.Keys().Release(key)
				}
			case *sdl.QuitEvent:
				quit()
			}
		}

		if err := io.present(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// present redraws the window when the driver has finished a new frame.
func (io *IO) present() error {
	snap := io.driver.Snapshot()
	if io.drawn && snap.Frame == io.lastFrame {
		return nil
	}
	io.lastFrame, io.drawn = snap.Frame, true

	if err := io.surface.FillRect(nil, screenColor); err != nil {
		return err
	}
	for y := int32(0); y < chip8.ScreenHeight; y++ {
		for x := int32(0); x < chip8.ScreenWidth; x++ {
			if !snap.Display.Pixel(int(x), int(y)) {
				continue
			}
			rect := &sdl.Rect{X: x * io.scale, Y: y * io.scale, W: io.scale, H: io.scale}
			if err := io.surface.FillRect(rect, spriteColor); err != nil {
				return err
			}
		}
	}
	return io.window.UpdateSurface()
}

// Run opens a window and runs the machine until the window is closed or the
// machine fails.
func Run(ctx context.Context, driver *clock.Driver, title string, scale int) error {
	io := NewIO(driver, scale)
	if err := io.SetupWindow(title); err != nil {
		return err
	}
	defer io.Destroy()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return driver.Run(ctx)
	})
	loopErr := io.Loop(ctx, cancel)
	cancel()

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return loopErr
}

// Maps keys from a QWERTY keyboard to the keypad used by CHIP-8
// +--------+--------+--------+--------+
// | 1 -> 1 | 2 -> 2 | 3 -> 3 | 4 -> C |
// +--------+--------+--------+--------+
// | Q -> 4 | W -> 5 | E -> 6 | R -> D |
// +--------+--------+--------+--------+
// | A -> 7 | S -> 8 | D -> 9 | F -> E |
// +--------+--------+--------+--------+
// | Z -> A | X -> 0 | C -> B | V -> F |
// +--------+--------+--------+--------+
func keymap(code sdl.Scancode) (uint8, bool) {
	switch code {
	case sdl.SCANCODE_1:
		return 0x1, true
	case sdl.SCANCODE_2:
		return 0x2, true
	case sdl.SCANCODE_3:
		return 0x3, true
	case sdl.SCANCODE_4:
		return 0xC, true
	case sdl.SCANCODE_Q:
		return 0x4, true
	case sdl.SCANCODE_W:
		return 0x5, true
	case sdl.SCANCODE_E:
		return 0x6, true
	case sdl.SCANCODE_R:
		return 0xD, true
	case sdl.SCANCODE_A:
		return 0x7, true
	case sdl.SCANCODE_S:
		return 0x8, true
	case sdl.SCANCODE_D:
		return 0x9, true
	case sdl.SCANCODE_F:
		return 0xE, true
	case sdl.SCANCODE_Z:
		return 0xA, true
	case sdl.SCANCODE_X:
		return 0x0, true
	case sdl.SCANCODE_C:
		return 0xB, true
	case sdl.SCANCODE_V:
		return 0xF, true
	}
	return 0, false
}

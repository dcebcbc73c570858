// Package screen is the ebiten frontend: it paces the interpreter from the
// game loop, shows the framebuffer and plays the buzzer.
package screen

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"meszarosd.hu/vip8/internal/beep"
	"meszarosd.hu/vip8/internal/chip8"
	"meszarosd.hu/vip8/internal/clock"
)

const DefaultScale = 10

var (
	pixelOn  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	pixelOff = color.RGBA{A: 0xFF}
)

// keys maps the hex keypad onto the left block of a QWERTY keyboard,
// indexed by keypad value.
var keys = [chip8.KeyCount]ebiten.Key{
	ebiten.KeyX,
	ebiten.Key1, ebiten.Key2, ebiten.Key3,
	ebiten.KeyQ, ebiten.KeyW, ebiten.KeyE,
	ebiten.KeyA, ebiten.KeyS, ebiten.KeyD,
	ebiten.KeyZ, ebiten.KeyC,
	ebiten.Key4, ebiten.KeyR, ebiten.KeyF, ebiten.KeyV,
}

// F1 pauses, F2 advances one frame while paused.
type Debug struct {
	paused bool
	step   bool
}

type Display struct {
	driver *clock.Driver
	scale  int

	frameBuffer []byte
	img         *ebiten.Image

	debug Debug

	audioContext *audio.Context
	audioPlayer  *audio.Player
}

func NewDisplay(driver *clock.Driver, scale int) *Display {
	if scale <= 0 {
		scale = DefaultScale
	}
	return &Display{
		driver:      driver,
		scale:       scale,
		frameBuffer: make([]byte, chip8.ScreenWidth*chip8.ScreenHeight*4),
		img:         ebiten.NewImage(chip8.ScreenWidth, chip8.ScreenHeight),
	}
}

func (d *Display) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if err := d.initAudio(); err != nil {
		return err
	}

	var held [chip8.KeyCount]bool
	for i, k := range keys {
		held[i] = ebiten.IsKeyPressed(k)
	}
	d.driver.Keys().SetHeld(held)

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		d.debug.paused = !d.debug.paused
	}
	d.debug.step = inpututil.IsKeyJustPressed(ebiten.KeyF2)

	if !d.debug.paused || d.debug.step {
		if err := d.driver.Frame(); err != nil {
			return err
		}
	}

	snap := d.driver.Snapshot()
	snap.Display.WriteRGBA(d.frameBuffer, pixelOn, pixelOff)
	d.img.WritePixels(d.frameBuffer)

	if snap.SoundTimer > 0 && !d.debug.paused {
		if !d.audioPlayer.IsPlaying() {
			d.audioPlayer.Play()
		}
	} else {
		d.audioPlayer.Pause()
	}
	return nil
}

func (d *Display) initAudio() error {
	if d.audioContext == nil {
		d.audioContext = audio.CurrentContext()
		if d.audioContext == nil {
			d.audioContext = audio.NewContext(beep.SampleRate)
		}
	}
	if d.audioPlayer == nil {
		var err error
		d.audioPlayer, err = d.audioContext.NewPlayerF32(beep.NewTone(beep.Frequency, 0.3))
		if err != nil {
			return err
		}
	}
	return nil
}

func (d *Display) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(d.scale), float64(d.scale))
	screen.DrawImage(d.img, op)
}

func (d *Display) Layout(outsideWidth, outsideHeight int) (int, int) {
	return chip8.ScreenWidth * d.scale, chip8.ScreenHeight * d.scale
}

// Run opens the window and blocks until it is closed, Escape is pressed or
// the machine fails.
func Run(driver *clock.Driver, title string, scale int) error {
	display := NewDisplay(driver, scale)
	ebiten.SetWindowSize(chip8.ScreenWidth*display.scale, chip8.ScreenHeight*display.scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(clock.FrameRate)
	if err := ebiten.RunGame(display); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

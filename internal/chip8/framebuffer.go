package chip8

import (
	"image/color"
	"strings"
)

const (
	ScreenWidth  = 64
	ScreenHeight = 32
)

// Framebuffer holds the 64x32 monochrome display, one bit per pixel.
// Bit 63 of a row is column 0. Copying a Framebuffer yields a snapshot.
type Framebuffer [ScreenHeight]uint64

func (f *Framebuffer) Clear() {
	*f = Framebuffer{}
}

func (f *Framebuffer) Pixel(x, y int) bool {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return false
	}
	return f[y]&(1<<(63-uint(x))) != 0
}

// DrawRow XORs the 8 sprite bits into row y starting at column x. Columns
// past the right edge are clipped. It reports whether a lit pixel was cleared.
func (f *Framebuffer) DrawRow(x, y int, bits uint8) bool {
	if y < 0 || y >= ScreenHeight || x < 0 || x >= ScreenWidth {
		return false
	}
	sprite := uint64(bits) << 56 >> uint(x)
	collision := f[y]&sprite != 0
	f[y] ^= sprite
	return collision
}

// Lit returns the number of set pixels.
func (f *Framebuffer) Lit() int {
	n := 0
	for _, row := range f {
		for ; row != 0; row &= row - 1 {
			n++
		}
	}
	return n
}

// WriteRGBA expands the display into dst, which must hold ScreenWidth*ScreenHeight*4 bytes.
func (f *Framebuffer) WriteRGBA(dst []byte, on, off color.RGBA) {
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			c := off
			if f.Pixel(x, y) {
				c = on
			}
			idx := (y*ScreenWidth + x) * 4
			dst[idx+0] = c.R
			dst[idx+1] = c.G
			dst[idx+2] = c.B
			dst[idx+3] = c.A
		}
	}
}

func (f *Framebuffer) String() string {
	var sb strings.Builder
	sb.Grow((ScreenWidth + 1) * ScreenHeight)
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			if f.Pixel(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Package beep produces the buzzer tone played while the sound timer runs.
package beep

import (
	"math"
)

const (
	SampleRate = 48000
	Frequency  = 440

	// stereo float32 little endian
	bytesPerFrame = 8
)

// Tone is an endless sine wave in the 32-bit float stereo format that
// audio players such as ebiten's NewPlayerF32 consume.
type Tone struct {
	period int64 // in sample frames
	pos    int64 // in sample frames, always < period
	volume float64
}

func NewTone(frequency int, volume float64) *Tone {
	if frequency <= 0 {
		frequency = Frequency
	}
	period := int64(SampleRate / frequency)
	if period < 2 {
		period = 2
	}
	return &Tone{period: period, volume: volume}
}

// Read fills buf with whole sample frames; a trailing partial frame is left
// for the next call.
func (t *Tone) Read(buf []byte) (int, error) {
	frames := len(buf) / bytesPerFrame

	for i := 0; i < frames; i++ {
		phase := float64((t.pos+int64(i))%t.period) / float64(t.period)
		v := math.Float32bits(float32(t.volume * math.Sin(2*math.Pi*phase)))
		o := i * bytesPerFrame
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
		copy(buf[o+4:o+8], buf[o:o+4])
	}

	t.pos = (t.pos + int64(frames)) % t.period
	return frames * bytesPerFrame, nil
}

func (t *Tone) Close() error {
	return nil
}

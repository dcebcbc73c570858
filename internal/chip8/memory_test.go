package chip8

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemory_Font(t *testing.T) {
	m := NewMemory()

	assert.Equal(t, byte(0xF0), m[FontAddress])
	assert.Equal(t, font[:], m[FontAddress:FontAddress+len(font)])
	assert.Equal(t, byte(0), m[ProgramStart])
	assert.Equal(t, uint16(FontAddress+0xA*5), GlyphAddress(0xA))
	assert.Equal(t, uint16(FontAddress+0xA*5), GlyphAddress(0x1A))
}

func TestMemory_LoadROM(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"empty", 0, false},
		{"small", 2, false},
		{"exactly fits", MaxROMSize, false},
		{"one byte too large", MaxROMSize + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rom := make([]byte, tt.size)
			for i := range rom {
				rom[i] = 0xAB
			}
			m := NewMemory()
			err := m.LoadROM(rom)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrROMTooLarge))
				var loadErr *LoadError
				require.True(t, errors.As(err, &loadErr))
				assert.Equal(t, tt.size, loadErr.Size)
				assert.Equal(t, byte(0), m[ProgramStart])
				return
			}
			require.NoError(t, err)
			if tt.size > 0 {
				assert.Equal(t, byte(0xAB), m[ProgramStart])
				assert.Equal(t, byte(0xAB), m[ProgramStart+tt.size-1])
			}
		})
	}
}

func TestMemory_Bounds(t *testing.T) {
	m := NewMemory()

	require.NoError(t, m.Write(0xFFF, 0x42))
	b, err := m.Read(0xFFF)
	require.NoError(t, err)
	assert.Equal(t, byte(0x42), b)

	_, err = m.Read(0x1000)
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))
	assert.True(t, errors.Is(m.Write(0x1000, 1), ErrAddressOutOfRange))

	window, err := m.Slice(0xFFE, 2)
	require.NoError(t, err)
	assert.Len(t, window, 2)

	_, err = m.Slice(0xFFE, 3)
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))
}

package chip8

import "fmt"

const (
	MemorySize   = 0x1000
	ProgramStart = 0x200
	MaxROMSize   = MemorySize - ProgramStart

	// FontAddress is where the built-in hex glyphs live.
	FontAddress = 0x050
	glyphSize   = 5
)

var font = [16 * glyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the flat 4 KiB address space of the VIP interpreter.
type Memory [MemorySize]byte

// NewMemory returns zeroed memory with the font copied in.
func NewMemory() Memory {
	var m Memory
	copy(m[FontAddress:], font[:])
	return m
}

// GlyphAddress returns the address of the font sprite for the low nibble of digit.
func GlyphAddress(digit uint8) uint16 {
	return FontAddress + uint16(digit&0xF)*glyphSize
}

func (m *Memory) LoadROM(rom []byte) error {
	if len(rom) > MaxROMSize {
		return &LoadError{
			Size: len(rom),
			Err:  fmt.Errorf("%w: limit is %d bytes", ErrROMTooLarge, MaxROMSize),
		}
	}
	copy(m[ProgramStart:], rom)
	return nil
}

func (m *Memory) Read(addr uint16) (byte, error) {
	if int(addr) >= MemorySize {
		return 0, fmt.Errorf("%w: read 0x%04X", ErrAddressOutOfRange, addr)
	}
	return m[addr], nil
}

func (m *Memory) Write(addr uint16, b byte) error {
	if int(addr) >= MemorySize {
		return fmt.Errorf("%w: write 0x%04X", ErrAddressOutOfRange, addr)
	}
	m[addr] = b
	return nil
}

// Slice returns the n bytes starting at addr, sharing storage with m.
func (m *Memory) Slice(addr uint16, n int) ([]byte, error) {
	end := int(addr) + n
	if n < 0 || end > MemorySize {
		return nil, fmt.Errorf("%w: 0x%04X+%d", ErrAddressOutOfRange, addr, n)
	}
	return m[addr:end], nil
}

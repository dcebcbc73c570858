package chip8

import "fmt"

const StackSize = 16

// Registers is the register file. It is a value so quirk handlers can map
// one register state to the next.
type Registers struct {
	V  [16]uint8
	I  uint16
	PC uint16
}

type Stack struct {
	addrs [StackSize]uint16
	depth int
}

func (s *Stack) Push(addr uint16) error {
	if s.depth == StackSize {
		return ErrStackOverflow
	}
	s.addrs[s.depth] = addr
	s.depth++
	return nil
}

func (s *Stack) Pop() (uint16, error) {
	if s.depth == 0 {
		return 0, ErrStackUnderflow
	}
	s.depth--
	return s.addrs[s.depth], nil
}

// Peek returns the address RET would jump to.
func (s *Stack) Peek() (uint16, bool) {
	if s.depth == 0 {
		return 0, false
	}
	return s.addrs[s.depth-1], true
}

func (s *Stack) Depth() int {
	return s.depth
}

// Frames returns the pushed return addresses, oldest first.
func (s *Stack) Frames() []uint16 {
	return append([]uint16(nil), s.addrs[:s.depth]...)
}

// Machine is everything a running program can observe or change.
type Machine struct {
	Registers
	Stack      Stack
	DelayTimer uint8
	SoundTimer uint8
	Memory     Memory
	Display    Framebuffer

	// set once a sprite has been drawn in the current frame
	drewThisFrame bool
}

// NewMachine returns the power-on state with rom loaded at ProgramStart.
func NewMachine(rom []byte) (*Machine, error) {
	m := &Machine{
		Registers: Registers{PC: ProgramStart},
		Memory:    NewMemory(),
	}
	if err := m.Memory.LoadROM(rom); err != nil {
		return nil, err
	}
	return m, nil
}

// BeginFrame marks a vertical blank: the display-wait quirk allows a new draw.
func (m *Machine) BeginFrame() {
	m.drewThisFrame = false
}

func (m *Machine) SoundOn() bool {
	return m.SoundTimer > 0
}

func (m *Machine) String() string {
	return fmt.Sprintf("PC: 0x%03X I: 0x%03X Stack: %X DT: %d ST: %d V: % X",
		m.PC, m.I, m.Stack.Frames(), m.DelayTimer, m.SoundTimer, m.V[:])
}

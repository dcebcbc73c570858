package chip8

import (
	"fmt"
	"log"
	"math/rand"
	"time"
)

// StepResult tells the driver loop what a Step did.
type StepResult int

const (
	StepExecuted StepResult = iota
	StepDrew
	// FX0A found no key press; the same instruction runs again next step.
	StepWaitingKey
	// DXYN has to wait for the next frame because of the display-wait quirk.
	StepWaitingVBlank
)

func (r StepResult) String() string {
	switch r {
	case StepExecuted:
		return "executed"
	case StepDrew:
		return "drew"
	case StepWaitingKey:
		return "waiting for key"
	case StepWaitingVBlank:
		return "waiting for vblank"
	}
	return fmt.Sprintf("StepResult(%d)", int(r))
}

// Cpu executes instructions against a Machine. It holds no machine state,
// so one Cpu can drive any number of machines, one step at a time.
type Cpu struct {
	quirks Quirks
	rand   *rand.Rand
	logger *log.Logger
}

type Option func(*Cpu)

// WithRand sets the source used by CXNN.
func WithRand(r *rand.Rand) Option {
	return func(c *Cpu) {
		c.rand = r
	}
}

// WithLogger enables a trace line per executed instruction.
func WithLogger(l *log.Logger) Option {
	return func(c *Cpu) {
		c.logger = l
	}
}

func NewCpu(q Quirks, opts ...Option) *Cpu {
	c := &Cpu{quirks: q}
	for _, opt := range opts {
		opt(c)
	}
	if c.rand == nil {
		c.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return c
}

func (c *Cpu) Quirks() Quirks {
	return c.quirks
}

// Fetch reads the instruction word at PC and advances PC past it.
func (c *Cpu) Fetch(m *Machine) (uint16, error) {
	if m.PC&1 != 0 {
		return 0, fmt.Errorf("%w: 0x%04X", ErrMisalignedPC, m.PC)
	}
	word, err := m.Memory.Slice(m.PC, 2)
	if err != nil {
		return 0, err
	}
	m.PC += 2
	return uint16(word[0])<<8 | uint16(word[1]), nil
}

// Step runs one fetch-decode-execute cycle.
func (c *Cpu) Step(m *Machine, in Input) (StepResult, error) {
	if in == nil {
		in = noKeys{}
	}

	pc := m.PC
	opcode, err := c.Fetch(m)
	if err != nil {
		return StepExecuted, fmt.Errorf("fetching instruction: %w", err)
	}

	op := Decode(opcode)
	if !op.Valid() {
		m.PC = pc
		return StepExecuted, &DecodeError{Opcode: opcode, PC: pc}
	}

	if c.logger != nil {
		c.logger.Printf("%03X: %04X  %s", pc, opcode, op)
	}

	res, err := c.Execute(m, in, op)
	if err != nil {
		return res, &ExecError{Op: op, PC: pc, Err: err}
	}
	return res, nil
}

// Execute applies op to m. PC must already point past op.
func (c *Cpu) Execute(m *Machine, in Input, op Operation) (StepResult, error) {
	switch op.Kind {
	case OP_CLEAR:
		m.Display.Clear()
	case OP_RET:
		addr, err := m.Stack.Pop()
		if err != nil {
			return StepExecuted, err
		}
		m.PC = addr
	case OP_JMP:
		m.PC = op.NNN
	case OP_SUBROUTINE:
		if err := m.Stack.Push(m.PC); err != nil {
			return StepExecuted, err
		}
		m.PC = op.NNN
	case OP_EQUAL:
		m.skipIf(m.V[op.X] == op.NN)
	case OP_NEQUAL:
		m.skipIf(m.V[op.X] != op.NN)
	case OP_REG_EQUAL:
		m.skipIf(m.V[op.X] == m.V[op.Y])
	case OP_REG_NEQUAL:
		m.skipIf(m.V[op.X] != m.V[op.Y])
	case OP_REG_SET:
		m.V[op.X] = op.NN
	case OP_REG_ADD:
		m.V[op.X] += op.NN
	case OP_REG_SET_REG:
		m.V[op.X] = m.V[op.Y]
	case OP_OR, OP_AND, OP_XOR:
		m.Registers = execLogic(c.quirks, m.Registers, op)
	case OP_ADD_EQUAL:
		sum := uint16(m.V[op.X]) + uint16(m.V[op.Y])
		m.V[op.X] = uint8(sum)
		m.V[0xF] = flag(sum > 0xFF)
	case OP_SUB:
		vx, vy := m.V[op.X], m.V[op.Y]
		m.V[op.X] = vx - vy
		m.V[0xF] = flag(vx >= vy)
	case OP_SUB_INV:
		vx, vy := m.V[op.X], m.V[op.Y]
		m.V[op.X] = vy - vx
		m.V[0xF] = flag(vy >= vx)
	case OP_RSHIFT, OP_LSHIFT:
		m.Registers = execShift(c.quirks, m.Registers, op)
	case OP_SET_IDX:
		m.I = op.NNN
	case OP_JMP_OFF:
		m.Registers = execJumpOffset(c.quirks, m.Registers, op)
	case OP_RANDOM:
		m.V[op.X] = uint8(c.rand.Intn(256)) & op.NN
	case OP_DISPLAY:
		return c.draw(m, op)
	case OP_KEY_PRESSED:
		m.skipIf(in.IsPressed(m.V[op.X] & 0xF))
	case OP_KEY_NOT_PRESSED:
		m.skipIf(!in.IsPressed(m.V[op.X] & 0xF))
	case OP_GET_DTIMER:
		m.V[op.X] = m.DelayTimer
	case OP_GET_KEY:
		key, ok := in.TakeKeyPress()
		if !ok {
			m.PC -= 2
			return StepWaitingKey, nil
		}
		m.V[op.X] = key
	case OP_SET_DTIMER:
		m.DelayTimer = m.V[op.X]
	case OP_SET_STIMER:
		m.SoundTimer = m.V[op.X]
	case OP_ADD_IDX:
		sum := uint32(m.I) + uint32(m.V[op.X])
		m.I = uint16(sum)
		m.V[0xF] = flag(sum > 0x0FFF)
	case OP_FONT:
		m.I = GlyphAddress(m.V[op.X])
	case OP_BCD:
		digits, err := m.Memory.Slice(m.I, 3)
		if err != nil {
			return StepExecuted, err
		}
		v := m.V[op.X]
		digits[0] = v / 100
		digits[1] = v / 10 % 10
		digits[2] = v % 10
	case OP_STORE_MEM, OP_LOAD_MEM:
		regs, err := execStoreLoad(c.quirks, m.Registers, &m.Memory, op)
		if err != nil {
			return StepExecuted, err
		}
		m.Registers = regs
	default:
		return StepExecuted, fmt.Errorf("%w: %s", ErrUnknownOpcode, op.Kind)
	}
	return StepExecuted, nil
}

// draw runs DXYN. The start position wraps around the screen, the sprite
// itself is clipped at the right and bottom edges.
func (c *Cpu) draw(m *Machine, op Operation) (StepResult, error) {
	if c.quirks.DisplayWait && m.drewThisFrame {
		m.PC -= 2
		return StepWaitingVBlank, nil
	}

	sprite, err := m.Memory.Slice(m.I, int(op.N))
	if err != nil {
		return StepExecuted, err
	}

	x := int(m.V[op.X] % ScreenWidth)
	y := int(m.V[op.Y] % ScreenHeight)
	collision := false
	for row, bits := range sprite {
		if y+row >= ScreenHeight {
			break
		}
		if m.Display.DrawRow(x, y+row, bits) {
			collision = true
		}
	}
	m.V[0xF] = flag(collision)
	m.drewThisFrame = true
	return StepDrew, nil
}

func (m *Machine) skipIf(cond bool) {
	if cond {
		m.PC += 2
	}
}

func flag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

type noKeys struct{}

func (noKeys) IsPressed(uint8) bool         { return false }
func (noKeys) TakeKeyPress() (uint8, bool) { return 0, false }

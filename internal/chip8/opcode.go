package chip8

import "fmt"

// Operation is a decoded instruction word.
type Operation struct {
	Raw  uint16
	Kind OPCODE
	X    uint8
	Y    uint8
	N    uint8
	NN   uint8
	NNN  uint16
}

type OPCODE int

const (
	OP_NONE            OPCODE = iota // not an instruction
	OP_CLEAR                         // 00E0
	OP_RET                           // 00EE
	OP_JMP                           // 1NNN
	OP_SUBROUTINE                    // 2NNN
	OP_EQUAL                         // 3XNN
	OP_NEQUAL                        // 4XNN
	OP_REG_EQUAL                     // 5XY0
	OP_REG_SET                       // 6XNN
	OP_REG_ADD                       // 7XNN
	OP_REG_SET_REG                   // 8XY0
	OP_OR                            // 8XY1
	OP_AND                           // 8XY2
	OP_XOR                           // 8XY3
	OP_ADD_EQUAL                     // 8XY4
	OP_SUB                           // 8XY5
	OP_RSHIFT                        // 8XY6
	OP_SUB_INV                       // 8XY7
	OP_LSHIFT                        // 8XYE
	OP_REG_NEQUAL                    // 9XY0
	OP_SET_IDX                       // ANNN
	OP_JMP_OFF                       // BNNN
	OP_RANDOM                        // CXNN
	OP_DISPLAY                       // DXYN
	OP_KEY_PRESSED                   // EX9E
	OP_KEY_NOT_PRESSED               // EXA1
	OP_GET_DTIMER                    // FX07
	OP_GET_KEY                       // FX0A
	OP_SET_DTIMER                    // FX15
	OP_SET_STIMER                    // FX18
	OP_ADD_IDX                       // FX1E
	OP_FONT                          // FX29
	OP_BCD                           // FX33
	OP_STORE_MEM                     // FX55
	OP_LOAD_MEM                      // FX65
)

var mnemonics = [...]string{
	OP_NONE:            ".word",
	OP_CLEAR:           "CLS",
	OP_RET:             "RET",
	OP_JMP:             "JP",
	OP_SUBROUTINE:      "CALL",
	OP_EQUAL:           "SE",
	OP_NEQUAL:          "SNE",
	OP_REG_EQUAL:       "SE",
	OP_REG_SET:         "LD",
	OP_REG_ADD:         "ADD",
	OP_REG_SET_REG:     "LD",
	OP_OR:              "OR",
	OP_AND:             "AND",
	OP_XOR:             "XOR",
	OP_ADD_EQUAL:       "ADD",
	OP_SUB:             "SUB",
	OP_RSHIFT:          "SHR",
	OP_SUB_INV:         "SUBN",
	OP_LSHIFT:          "SHL",
	OP_REG_NEQUAL:      "SNE",
	OP_SET_IDX:         "LD",
	OP_JMP_OFF:         "JP",
	OP_RANDOM:          "RND",
	OP_DISPLAY:         "DRW",
	OP_KEY_PRESSED:     "SKP",
	OP_KEY_NOT_PRESSED: "SKNP",
	OP_GET_DTIMER:      "LD",
	OP_GET_KEY:         "LD",
	OP_SET_DTIMER:      "LD",
	OP_SET_STIMER:      "LD",
	OP_ADD_IDX:         "ADD",
	OP_FONT:            "LD",
	OP_BCD:             "LD",
	OP_STORE_MEM:       "LD",
	OP_LOAD_MEM:        "LD",
}

func (o OPCODE) String() string {
	if o < 0 || int(o) >= len(mnemonics) {
		return fmt.Sprintf("OPCODE(%d)", int(o))
	}
	return mnemonics[o]
}

// Decode splits a big-endian instruction word into its fields and identifies
// the instruction. Words that are not CHIP-8 instructions decode to OP_NONE.
func Decode(opcode uint16) Operation {
	op := Operation{
		Raw: opcode,
		X:   uint8((opcode & 0x0F00) >> 8),
		Y:   uint8((opcode & 0x00F0) >> 4),
		N:   uint8(opcode & 0x000F),
		NN:  uint8(opcode & 0x00FF),
		NNN: opcode & 0x0FFF,
	}

	switch opcode >> 12 {
	case 0x0:
		switch opcode {
		case 0x00E0:
			op.Kind = OP_CLEAR
		case 0x00EE:
			op.Kind = OP_RET
		}
	case 0x1:
		op.Kind = OP_JMP
	case 0x2:
		op.Kind = OP_SUBROUTINE
	case 0x3:
		op.Kind = OP_EQUAL
	case 0x4:
		op.Kind = OP_NEQUAL
	case 0x5:
		if op.N == 0 {
			op.Kind = OP_REG_EQUAL
		}
	case 0x6:
		op.Kind = OP_REG_SET
	case 0x7:
		op.Kind = OP_REG_ADD
	case 0x8:
		switch op.N {
		case 0x0:
			op.Kind = OP_REG_SET_REG
		case 0x1:
			op.Kind = OP_OR
		case 0x2:
			op.Kind = OP_AND
		case 0x3:
			op.Kind = OP_XOR
		case 0x4:
			op.Kind = OP_ADD_EQUAL
		case 0x5:
			op.Kind = OP_SUB
		case 0x6:
			op.Kind = OP_RSHIFT
		case 0x7:
			op.Kind = OP_SUB_INV
		case 0xE:
			op.Kind = OP_LSHIFT
		}
	case 0x9:
		if op.N == 0 {
			op.Kind = OP_REG_NEQUAL
		}
	case 0xA:
		op.Kind = OP_SET_IDX
	case 0xB:
		op.Kind = OP_JMP_OFF
	case 0xC:
		op.Kind = OP_RANDOM
	case 0xD:
		op.Kind = OP_DISPLAY
	case 0xE:
		switch op.NN {
		case 0x9E:
			op.Kind = OP_KEY_PRESSED
		case 0xA1:
			op.Kind = OP_KEY_NOT_PRESSED
		}
	case 0xF:
		switch op.NN {
		case 0x07:
			op.Kind = OP_GET_DTIMER
		case 0x0A:
			op.Kind = OP_GET_KEY
		case 0x15:
			op.Kind = OP_SET_DTIMER
		case 0x18:
			op.Kind = OP_SET_STIMER
		case 0x1E:
			op.Kind = OP_ADD_IDX
		case 0x29:
			op.Kind = OP_FONT
		case 0x33:
			op.Kind = OP_BCD
		case 0x55:
			op.Kind = OP_STORE_MEM
		case 0x65:
			op.Kind = OP_LOAD_MEM
		}
	}
	return op
}

// Valid reports whether the word decoded to an instruction.
func (op Operation) Valid() bool {
	return op.Kind != OP_NONE
}

// String formats the instruction in assembler syntax, e.g. "LD V3, $12".
func (op Operation) String() string {
	name := op.Kind.String()
	if params := op.params(); params != "" {
		return name + " " + params
	}
	return name
}

func (op Operation) params() string {
	switch op.Kind {
	case OP_NONE:
		return fmt.Sprintf("$%04X", op.Raw)
	case OP_CLEAR, OP_RET:
		return ""
	case OP_JMP, OP_SUBROUTINE:
		return fmt.Sprintf("$%03X", op.NNN)
	case OP_JMP_OFF:
		return fmt.Sprintf("V0, $%03X", op.NNN)
	case OP_SET_IDX:
		return fmt.Sprintf("I, $%03X", op.NNN)
	case OP_EQUAL, OP_NEQUAL, OP_REG_SET, OP_REG_ADD, OP_RANDOM:
		return fmt.Sprintf("V%X, $%02X", op.X, op.NN)
	case OP_REG_EQUAL, OP_REG_NEQUAL, OP_REG_SET_REG, OP_OR, OP_AND, OP_XOR,
		OP_ADD_EQUAL, OP_SUB, OP_SUB_INV:
		return fmt.Sprintf("V%X, V%X", op.X, op.Y)
	case OP_RSHIFT, OP_LSHIFT:
		return fmt.Sprintf("V%X {, V%X}", op.X, op.Y)
	case OP_DISPLAY:
		return fmt.Sprintf("V%X, V%X, $%X", op.X, op.Y, op.N)
	case OP_KEY_PRESSED, OP_KEY_NOT_PRESSED:
		return fmt.Sprintf("V%X", op.X)
	case OP_GET_DTIMER:
		return fmt.Sprintf("V%X, DT", op.X)
	case OP_GET_KEY:
		return fmt.Sprintf("V%X, K", op.X)
	case OP_SET_DTIMER:
		return fmt.Sprintf("DT, V%X", op.X)
	case OP_SET_STIMER:
		return fmt.Sprintf("ST, V%X", op.X)
	case OP_ADD_IDX:
		return fmt.Sprintf("I, V%X", op.X)
	case OP_FONT:
		return fmt.Sprintf("F, V%X", op.X)
	case OP_BCD:
		return fmt.Sprintf("B, V%X", op.X)
	case OP_STORE_MEM:
		return fmt.Sprintf("[I], V%X", op.X)
	case OP_LOAD_MEM:
		return fmt.Sprintf("V%X, [I]", op.X)
	}
	return ""
}

// Disassemble lists rom word by word as if loaded at origin. A trailing odd
// byte is emitted as data.
func Disassemble(rom []byte, origin uint16) []string {
	lines := make([]string, 0, len(rom)/2+1)
	for i := 0; i+1 < len(rom); i += 2 {
		word := uint16(rom[i])<<8 | uint16(rom[i+1])
		lines = append(lines, fmt.Sprintf("%03X: %04X  %s", origin+uint16(i), word, Decode(word)))
	}
	if len(rom)%2 == 1 {
		last := len(rom) - 1
		lines = append(lines, fmt.Sprintf("%03X: %02X    .byte $%02X", origin+uint16(last), rom[last], rom[last]))
	}
	return lines
}

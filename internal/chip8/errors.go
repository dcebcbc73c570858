package chip8

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownOpcode     = errors.New("unknown opcode")
	ErrStackOverflow     = errors.New("stack overflow")
	ErrStackUnderflow    = errors.New("stack underflow")
	ErrAddressOutOfRange = errors.New("address out of range")
	ErrMisalignedPC      = errors.New("program counter not aligned to an instruction")
	ErrROMTooLarge       = errors.New("rom too large")
)

// DecodeError is returned by Step when the fetched word is not a CHIP-8 instruction.
type DecodeError struct {
	Opcode uint16
	PC     uint16
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unknown opcode 0x%04X at 0x%03X", e.Opcode, e.PC)
}

func (e *DecodeError) Unwrap() error {
	return ErrUnknownOpcode
}

// ExecError wraps a failure raised while executing a decoded instruction.
type ExecError struct {
	Op  Operation
	PC  uint16
	Err error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("executing 0x%04X (%s) at 0x%03X: %v", e.Op.Raw, e.Op, e.PC, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// LoadError reports a ROM that could not be placed in memory.
type LoadError struct {
	Size int
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading rom of %d bytes: %v", e.Size, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

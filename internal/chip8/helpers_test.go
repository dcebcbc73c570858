package chip8

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// assemble turns instruction words into a big-endian ROM image.
func assemble(words ...uint16) []byte {
	rom := make([]byte, 0, len(words)*2)
	for _, w := range words {
		rom = append(rom, byte(w>>8), byte(w))
	}
	return rom
}

func newTestMachine(t *testing.T, words ...uint16) *Machine {
	t.Helper()
	m, err := NewMachine(assemble(words...))
	require.NoError(t, err)
	return m
}

func newTestCpu(q Quirks) *Cpu {
	return NewCpu(q, WithRand(rand.New(rand.NewSource(1))))
}

func step(t *testing.T, c *Cpu, m *Machine, in Input) StepResult {
	t.Helper()
	res, err := c.Step(m, in)
	require.NoError(t, err)
	return res
}

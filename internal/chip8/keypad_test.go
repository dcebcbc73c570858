package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyState_PressRelease(t *testing.T) {
	var k KeyState

	k.Press(0xA)
	assert.True(t, k.IsPressed(0xA))
	assert.False(t, k.IsPressed(0xB))

	k.Release(0xA)
	assert.False(t, k.IsPressed(0xA))

	// out of range keys are ignored
	k.Press(0x10)
	assert.False(t, k.IsPressed(0x10))
}

func TestKeyState_TakeKeyPressConsumesEdge(t *testing.T) {
	var k KeyState

	_, ok := k.TakeKeyPress()
	assert.False(t, ok)

	k.Press(0x5)
	key, ok := k.TakeKeyPress()
	assert.True(t, ok)
	assert.Equal(t, uint8(0x5), key)

	// still held, but the press was already read
	_, ok = k.TakeKeyPress()
	assert.False(t, ok)
	assert.True(t, k.IsPressed(0x5))

	// holding the key down does not create a new edge
	k.Press(0x5)
	_, ok = k.TakeKeyPress()
	assert.False(t, ok)

	k.Release(0x5)
	k.Press(0x5)
	key, ok = k.TakeKeyPress()
	assert.True(t, ok)
	assert.Equal(t, uint8(0x5), key)
}

func TestKeyState_ReleasedBeforeRead(t *testing.T) {
	var k KeyState

	k.Press(0x3)
	k.Release(0x3)

	_, ok := k.TakeKeyPress()
	assert.False(t, ok)
}

func TestKeyState_SetHeld(t *testing.T) {
	var k KeyState
	var keys [KeyCount]bool
	keys[0x2] = true
	keys[0xF] = true

	k.SetHeld(keys)
	assert.Equal(t, keys, k.Held())

	key, ok := k.TakeKeyPress()
	assert.True(t, ok)
	assert.Equal(t, uint8(0x2), key)
	key, ok = k.TakeKeyPress()
	assert.True(t, ok)
	assert.Equal(t, uint8(0xF), key)

	k.SetHeld(keys)
	_, ok = k.TakeKeyPress()
	assert.False(t, ok)

	k.SetHeld([KeyCount]bool{})
	assert.False(t, k.IsPressed(0x2))
}

package chip8

import "sync"

const KeyCount = 16

// Input is the keypad as seen by the interpreter.
type Input interface {
	// IsPressed reports whether key (0x0-0xF) is currently held.
	IsPressed(key uint8) bool
	// TakeKeyPress returns a key that went down since the last call and
	// consumes that press.
	TakeKeyPress() (key uint8, ok bool)
}

// KeyState is the 16-key hex keypad. Frontends write it from their own
// goroutine while the interpreter reads it.
type KeyState struct {
	mu      sync.Mutex
	held    [KeyCount]bool
	pending uint16 // keys with an unconsumed press edge
}

var _ Input = (*KeyState)(nil)

func (k *KeyState) Press(key uint8) {
	if key >= KeyCount {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	k.press(key)
}

func (k *KeyState) Release(key uint8) {
	if key >= KeyCount {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	k.held[key] = false
	k.pending &^= 1 << key
}

// SetHeld replaces the whole keypad, recording press edges for keys that
// were up and are now down.
func (k *KeyState) SetHeld(keys [KeyCount]bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	for i, down := range keys {
		if down {
			k.press(uint8(i))
		} else {
			k.held[i] = false
			k.pending &^= 1 << i
		}
	}
}

func (k *KeyState) press(key uint8) {
	if !k.held[key] {
		k.pending |= 1 << key
	}
	k.held[key] = true
}

func (k *KeyState) Held() [KeyCount]bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.held
}

func (k *KeyState) IsPressed(key uint8) bool {
	if key >= KeyCount {
		return false
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.held[key]
}

func (k *KeyState) TakeKeyPress() (uint8, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	for i := uint8(0); i < KeyCount; i++ {
		if k.pending&(1<<i) != 0 && k.held[i] {
			k.pending &^= 1 << i
			return i, true
		}
	}
	return 0, false
}

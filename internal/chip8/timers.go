package chip8

// DecayTimers is the 60 Hz tick: both timers count down to zero.
// It must be driven by wall-clock frames, not by executed instructions.
func DecayTimers(m *Machine) {
	if m.DelayTimer > 0 {
		m.DelayTimer--
	}
	if m.SoundTimer > 0 {
		m.SoundTimer--
	}
}

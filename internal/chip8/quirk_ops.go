package chip8

// The instructions whose behaviour depends on Quirks. Each one maps the
// register state before the instruction to the state after it.

func execLogic(q Quirks, r Registers, op Operation) Registers {
	switch op.Kind {
	case OP_OR:
		r.V[op.X] |= r.V[op.Y]
	case OP_AND:
		r.V[op.X] &= r.V[op.Y]
	case OP_XOR:
		r.V[op.X] ^= r.V[op.Y]
	}
	if q.VFReset {
		r.V[0xF] = 0
	}
	return r
}

func execShift(q Quirks, r Registers, op Operation) Registers {
	src := r.V[op.X]
	if q.ShiftOriginal {
		src = r.V[op.Y]
	}
	if op.Kind == OP_RSHIFT {
		r.V[op.X] = src >> 1
		r.V[0xF] = src & 0x1
	} else {
		r.V[op.X] = src << 1
		r.V[0xF] = src >> 7
	}
	return r
}

func execJumpOffset(q Quirks, r Registers, op Operation) Registers {
	offset := r.V[op.X]
	if q.JumpWithOffsetOriginal {
		offset = r.V[0]
	}
	r.PC = op.NNN + uint16(offset)
	return r
}

// execStoreLoad runs FX55 and FX65.
func execStoreLoad(q Quirks, r Registers, mem *Memory, op Operation) (Registers, error) {
	window, err := mem.Slice(r.I, int(op.X)+1)
	if err != nil {
		return r, err
	}
	if op.Kind == OP_STORE_MEM {
		copy(window, r.V[:op.X+1])
	} else {
		copy(r.V[:op.X+1], window)
	}
	if q.StoreLoadOriginal {
		r.I += uint16(op.X) + 1
	}
	return r, nil
}

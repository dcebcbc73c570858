package chip8

import (
	"fmt"
	"strings"
)

// Quirks selects between the COSMAC VIP behaviour ("original") and the later
// CHIP-48/SUPER-CHIP behaviour for the ambiguous instructions.
type Quirks struct {
	// 8XY6/8XYE shift VY into VX instead of shifting VX in place.
	ShiftOriginal bool
	// BNNN jumps to NNN+V0 instead of XNN+VX.
	JumpWithOffsetOriginal bool
	// FX55/FX65 leave I incremented by X+1.
	StoreLoadOriginal bool
	// DXYN waits for the vertical blank, so at most one sprite is drawn per frame.
	DisplayWait bool
	// 8XY1/8XY2/8XY3 clear VF.
	VFReset bool
}

const (
	ProfileVIP    = "vip"
	ProfileModern = "modern"
)

var profiles = map[string]Quirks{
	ProfileVIP: {
		ShiftOriginal:          true,
		JumpWithOffsetOriginal: true,
		StoreLoadOriginal:      true,
		DisplayWait:            true,
		VFReset:                true,
	},
	ProfileModern: {},
}

// ParseProfile returns the quirk set of a named platform profile.
func ParseProfile(name string) (Quirks, error) {
	q, ok := profiles[strings.ToLower(name)]
	if !ok {
		return Quirks{}, fmt.Errorf("unsupported profile %q, valid options: %s, %s",
			name, ProfileVIP, ProfileModern)
	}
	return q, nil
}

func (q Quirks) String() string {
	return fmt.Sprintf("shift=%t jump=%t storeload=%t displaywait=%t vfreset=%t",
		q.ShiftOriginal, q.JumpWithOffsetOriginal, q.StoreLoadOriginal, q.DisplayWait, q.VFReset)
}

package cpu

// Registers is the Sharp LR35902 register file: eight 8-bit slots viewed
// individually (A, F, B, C, D, E, H, L) or pairwise (AF, BC, DE, HL). F's
// low nibble is architecturally always zero; every path that writes F masks
// to 0xF0.
type Registers struct {
	A, F, B, C, D, E, H, L uint8
}

// SetF writes F, masking the low nibble to zero.
func (r *Registers) SetF(v uint8) { r.F = v & 0xF0 }

// AF returns the AF register pair.
func (r *Registers) AF() uint16 { return uint16(r.A)<<8 | uint16(r.F) }

// SetAF writes the AF register pair, masking F's low nibble to zero.
func (r *Registers) SetAF(v uint16) {
	r.A = uint8(v >> 8)
	r.SetF(uint8(v))
}

// BC returns the BC register pair.
func (r *Registers) BC() uint16 { return uint16(r.B)<<8 | uint16(r.C) }

// SetBC writes the BC register pair.
func (r *Registers) SetBC(v uint16) {
	r.B = uint8(v >> 8)
	r.C = uint8(v)
}

// DE returns the DE register pair.
func (r *Registers) DE() uint16 { return uint16(r.D)<<8 | uint16(r.E) }

// SetDE writes the DE register pair.
func (r *Registers) SetDE(v uint16) {
	r.D = uint8(v >> 8)
	r.E = uint8(v)
}

// HL returns the HL register pair.
func (r *Registers) HL() uint16 { return uint16(r.H)<<8 | uint16(r.L) }

// SetHL writes the HL register pair.
func (r *Registers) SetHL(v uint16) {
	r.H = uint8(v >> 8)
	r.L = uint8(v)
}

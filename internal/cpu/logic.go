package cpu

// aluAnd implements AND A,v: H is always set, C always cleared.
func (c *CPU) aluAnd(v uint8) {
	c.A &= v
	c.setZ(zFlag(c.A))
	c.setN(false)
	c.setH(true)
	c.setC(false)
}

// aluXor implements XOR A,v: H and C always cleared.
func (c *CPU) aluXor(v uint8) {
	c.A ^= v
	c.setZ(zFlag(c.A))
	c.setN(false)
	c.setH(false)
	c.setC(false)
}

// aluOr implements OR A,v: H and C always cleared.
func (c *CPU) aluOr(v uint8) {
	c.A |= v
	c.setZ(zFlag(c.A))
	c.setN(false)
	c.setH(false)
	c.setC(false)
}

package cpu

// init builds the control-flow and miscellaneous opcodes that don't belong
// to a regular family: NOP, STOP, HALT, DI, EI, CPL, SCF, CCF, DAA, and the
// CB-prefix dispatcher itself.
func init() {
	define(0x00, func(c *CPU) {})

	// STOP is a documented 2-byte opcode (the second byte is conventionally
	// 0x00); this core treats it identically to HALT, since speed-switching
	// and LCD-off behaviour are out of scope for a DMG-only core.
	define(0x10, func(c *CPU) {
		c.fetch()
		c.halted = true
	})

	define(0x76, func(c *CPU) { c.halted = true })

	define(0xF3, func(c *CPU) {
		c.IME = false
		c.pendingEnable = false
	})
	define(0xFB, func(c *CPU) {
		c.pendingEnable = true
	})

	define(0x2F, func(c *CPU) {
		c.A = ^c.A
		c.setN(true)
		c.setH(true)
	})
	define(0x37, func(c *CPU) {
		c.setN(false)
		c.setH(false)
		c.setC(true)
	})
	define(0x3F, func(c *CPU) {
		c.setN(false)
		c.setH(false)
		c.setC(!c.getC())
	})

	// DAA adjusts A after a BCD ADD/SUB using the standard correction table.
	define(0x27, func(c *CPU) {
		a := c.A
		adjust := uint8(0)
		carry := c.getC()
		if !c.getN() {
			if c.getH() || a&0x0F > 0x09 {
				adjust |= 0x06
			}
			if carry || a > 0x99 {
				adjust |= 0x60
				carry = true
			}
			a += adjust
		} else {
			if c.getH() {
				adjust |= 0x06
			}
			if carry {
				adjust |= 0x60
			}
			a -= adjust
		}
		c.A = a
		c.setZ(zFlag(a))
		c.setH(false)
		c.setC(carry)
	})

	define(0xCB, func(c *CPU) {
		op := c.fetch()
		cbSet[op](c)
	})
}

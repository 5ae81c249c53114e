package cpu

// init builds every 8-bit and 16-bit load opcode: LD r,r' (0x40-0x7F, minus
// 0x76 which is HALT), LD r,n, LD rr,nn, the four (BC)/(DE)/(HL+)/(HL-)
// accumulator loads and their reverses, LD SP,HL, LD (nn),SP, and the
// high-memory family (LDH, LD (C),A, LD (nn),A).
func init() {
	// LD r,r'
	for op := 0x40; op <= 0x7F; op++ {
		if op == 0x76 {
			continue // HALT, defined in control.go
		}
		dst := uint8((op >> 3) & 7)
		src := uint8(op & 7)
		define(uint8(op), func(c *CPU) {
			c.setR8(dst, c.getR8(src))
		})
	}

	// LD r,n
	for r := uint8(0); r < 8; r++ {
		r := r
		op := r*8 + 0x06
		define(op, func(c *CPU) {
			c.setR8(r, c.fetch())
		})
	}

	// LD rr,nn
	for pair := uint8(0); pair < 4; pair++ {
		pair := pair
		op := pair*16 + 0x01
		define(op, func(c *CPU) {
			c.setR16(pair, c.fetch16())
		})
	}

	define(0x02, func(c *CPU) { c.writeByte(c.BC(), c.A) })
	define(0x12, func(c *CPU) { c.writeByte(c.DE(), c.A) })
	define(0x22, func(c *CPU) { c.writeByte(c.HL(), c.A); c.SetHL(c.HL() + 1) })
	define(0x32, func(c *CPU) { c.writeByte(c.HL(), c.A); c.SetHL(c.HL() - 1) })

	define(0x0A, func(c *CPU) { c.A = c.readByte(c.BC()) })
	define(0x1A, func(c *CPU) { c.A = c.readByte(c.DE()) })
	define(0x2A, func(c *CPU) { c.A = c.readByte(c.HL()); c.SetHL(c.HL() + 1) })
	define(0x3A, func(c *CPU) { c.A = c.readByte(c.HL()); c.SetHL(c.HL() - 1) })

	define(0x08, func(c *CPU) {
		addr := c.fetch16()
		c.writeByte(addr, uint8(c.SP))
		c.writeByte(addr+1, uint8(c.SP>>8))
	})

	define(0xF9, func(c *CPU) {
		c.SP = c.HL()
		c.tick()
	})

	define(0xE0, func(c *CPU) {
		n := c.fetch()
		c.writeByte(0xFF00+uint16(n), c.A)
	})
	define(0xF0, func(c *CPU) {
		n := c.fetch()
		c.A = c.readByte(0xFF00 + uint16(n))
	})
	define(0xE2, func(c *CPU) { c.writeByte(0xFF00+uint16(c.C), c.A) })
	define(0xF2, func(c *CPU) { c.A = c.readByte(0xFF00 + uint16(c.C)) })
	define(0xEA, func(c *CPU) { c.writeByte(c.fetch16(), c.A) })
	define(0xFA, func(c *CPU) { c.A = c.readByte(c.fetch16()) })
}

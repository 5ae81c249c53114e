package cpu

// init builds JR, JP, CALL, RET, RETI and RST. Conditional forms (JR cc,
// JP cc, CALL cc, RET cc) each account the "taken" cycle cost only when the
// condition holds, so the taken/not-taken timing split falls out naturally.
func init() {
	define(0x18, func(c *CPU) {
		e := int8(c.fetch())
		c.PC = uint16(int32(c.PC) + int32(e))
		c.tick()
	})

	for cc := uint8(0); cc < 4; cc++ {
		cc := cc
		define(0x20+cc*8, func(c *CPU) {
			e := int8(c.fetch())
			if c.condition(cc) {
				c.PC = uint16(int32(c.PC) + int32(e))
				c.tick()
			}
		})
	}

	define(0xC3, func(c *CPU) {
		addr := c.fetch16()
		c.PC = addr
		c.tick()
	})
	for cc := uint8(0); cc < 4; cc++ {
		cc := cc
		define(0xC2+cc*8, func(c *CPU) {
			addr := c.fetch16()
			if c.condition(cc) {
				c.PC = addr
				c.tick()
			}
		})
	}
	define(0xE9, func(c *CPU) { c.PC = c.HL() })

	define(0xCD, func(c *CPU) {
		addr := c.fetch16()
		c.tick()
		c.pushWord(c.PC)
		c.PC = addr
	})
	for cc := uint8(0); cc < 4; cc++ {
		cc := cc
		define(0xC4+cc*8, func(c *CPU) {
			addr := c.fetch16()
			if c.condition(cc) {
				c.tick()
				c.pushWord(c.PC)
				c.PC = addr
			}
		})
	}

	define(0xC9, func(c *CPU) {
		c.PC = c.popWord()
		c.tick()
	})
	for cc := uint8(0); cc < 4; cc++ {
		cc := cc
		define(0xC0+cc*8, func(c *CPU) {
			c.tick()
			if c.condition(cc) {
				c.PC = c.popWord()
				c.tick()
			}
		})
	}
	define(0xD9, func(c *CPU) {
		c.PC = c.popWord()
		c.IME = true
		c.pendingEnable = false
		c.tick()
	})

	for n := uint8(0); n < 8; n++ {
		n := n
		vector := uint16(n) * 8
		define(0xC7+n*8, func(c *CPU) {
			c.tick()
			c.pushWord(c.PC)
			c.PC = vector
		})
	}
}

package cpu

// init builds PUSH rr and POP rr over the stack register-pair encoding
// (0=BC 1=DE 2=HL 3=AF). POP into AF routes through setR16Stack, which masks
// F's low nibble, so PUSH AF; POP AF round-trips exactly the flag bits that
// exist.
func init() {
	for pair := uint8(0); pair < 4; pair++ {
		pair := pair
		define(0xC5+pair*16, func(c *CPU) {
			c.tick()
			c.pushWord(c.getR16Stack(pair))
		})
		define(0xC1+pair*16, func(c *CPU) {
			c.setR16Stack(pair, c.popWord())
		})
	}
}

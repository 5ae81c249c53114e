package cpu

// aluAdd implements ADD A,v. Z set iff the result byte is zero, N=0, H set
// iff carry out of bit 3, C set iff carry out of bit 7.
func (c *CPU) aluAdd(v uint8) {
	result := uint16(c.A) + uint16(v)
	c.setH((c.A&0xF)+(v&0xF) > 0xF)
	c.setC(result > 0xFF)
	c.A = uint8(result)
	c.setZ(zFlag(c.A))
	c.setN(false)
}

// aluAdc implements ADC A,v, folding in the current carry flag before
// computing H/C so both reflect the 9-bit addition including carry-in.
func (c *CPU) aluAdc(v uint8) {
	carry := uint16(0)
	if c.getC() {
		carry = 1
	}
	result := uint16(c.A) + uint16(v) + carry
	c.setH((c.A&0xF)+(v&0xF)+uint8(carry) > 0xF)
	c.setC(result > 0xFF)
	c.A = uint8(result)
	c.setZ(zFlag(c.A))
	c.setN(false)
}

// aluSub implements SUB A,v. N=1, H set iff borrow from bit 4, C set iff
// borrow (v > A).
func (c *CPU) aluSub(v uint8) {
	c.setH(c.A&0xF < v&0xF)
	c.setC(c.A < v)
	c.A -= v
	c.setZ(zFlag(c.A))
	c.setN(true)
}

// aluSbc implements SBC A,v, folding in the current carry flag.
func (c *CPU) aluSbc(v uint8) {
	carry := uint8(0)
	if c.getC() {
		carry = 1
	}
	result := int16(c.A) - int16(v) - int16(carry)
	c.setH(int16(c.A&0xF)-int16(v&0xF)-int16(carry) < 0)
	c.setC(result < 0)
	c.A = uint8(result)
	c.setZ(zFlag(c.A))
	c.setN(true)
}

// aluCp implements CP A,v: identical to SUB's flag computation, but A is
// left untouched.
func (c *CPU) aluCp(v uint8) {
	c.setH(c.A&0xF < v&0xF)
	c.setC(c.A < v)
	c.setZ(zFlag(c.A - v))
	c.setN(true)
}

// aluOps is indexed by the 3-bit operation field of the 0x80-0xBF / 0xC6-0xFE
// ALU-A blocks: 0=ADD 1=ADC 2=SUB 3=SBC 4=AND 5=XOR 6=OR 7=CP. AND/XOR/OR are
// defined in logic.go; this table is what lets the opcode generator below
// treat all eight as one family.
var aluOps = [8]func(*CPU, uint8){}

func init() {
	aluOps[0] = (*CPU).aluAdd
	aluOps[1] = (*CPU).aluAdc
	aluOps[2] = (*CPU).aluSub
	aluOps[3] = (*CPU).aluSbc
	aluOps[4] = (*CPU).aluAnd
	aluOps[5] = (*CPU).aluXor
	aluOps[6] = (*CPU).aluOr
	aluOps[7] = (*CPU).aluCp

	// ALU A,r -- 0x80-0xBF
	for group := uint8(0); group < 8; group++ {
		group := group
		for r := uint8(0); r < 8; r++ {
			r := r
			op := 0x80 + group*8 + r
			define(op, func(c *CPU) {
				aluOps[group](c, c.getR8(r))
			})
		}
	}

	// ALU A,n -- 0xC6, 0xCE, 0xD6, 0xDE, 0xE6, 0xEE, 0xF6, 0xFE
	for group := uint8(0); group < 8; group++ {
		group := group
		op := 0xC6 + group*8
		define(op, func(c *CPU) {
			aluOps[group](c, c.fetch())
		})
	}

	// INC rr / DEC rr -- no flags touched
	for pair := uint8(0); pair < 4; pair++ {
		pair := pair
		define(pair*16+0x03, func(c *CPU) {
			c.setR16(pair, c.getR16(pair)+1)
			c.tick()
		})
		define(pair*16+0x0B, func(c *CPU) {
			c.setR16(pair, c.getR16(pair)-1)
			c.tick()
		})
	}

	// ADD HL,rr -- N=0, H from bit 11 carry, C from bit 15 carry
	for pair := uint8(0); pair < 4; pair++ {
		pair := pair
		define(pair*16+0x09, func(c *CPU) {
			hl := c.HL()
			rr := c.getR16(pair)
			result := uint32(hl) + uint32(rr)
			c.setN(false)
			c.setH((hl&0xFFF)+(rr&0xFFF) > 0xFFF)
			c.setC(result > 0xFFFF)
			c.SetHL(uint16(result))
			c.tick()
		})
	}

	// INC r / DEC r -- C untouched
	for r := uint8(0); r < 8; r++ {
		r := r
		define(r*8+0x04, func(c *CPU) {
			v := c.getR8(r)
			res := v + 1
			c.setH(v&0xF == 0xF)
			c.setR8(r, res)
			c.setZ(zFlag(res))
			c.setN(false)
		})
		define(r*8+0x05, func(c *CPU) {
			v := c.getR8(r)
			res := v - 1
			c.setH(v&0xF == 0)
			c.setR8(r, res)
			c.setZ(zFlag(res))
			c.setN(true)
		})
	}

	// ADD SP,e and LD HL,SP+e: Z=0, N=0, H/C from the unsigned 8-bit add of
	// SP's low byte with e, not from the signed displacement arithmetic.
	define(0xE8, func(c *CPU) {
		e := int8(c.fetch())
		sp := c.SP
		c.setH((uint8(sp)&0xF)+(uint8(e)&0xF) > 0xF)
		c.setC(uint16(uint8(sp))+uint16(uint8(e)) > 0xFF)
		c.SP = uint16(int32(sp) + int32(e))
		c.setZ(false)
		c.setN(false)
		c.tick()
		c.tick()
	})
	define(0xF8, func(c *CPU) {
		e := int8(c.fetch())
		sp := c.SP
		c.setH((uint8(sp)&0xF)+(uint8(e)&0xF) > 0xF)
		c.setC(uint16(uint8(sp))+uint16(uint8(e)) > 0xFF)
		c.SetHL(uint16(int32(sp) + int32(e)))
		c.setZ(false)
		c.setN(false)
		c.tick()
	})
}

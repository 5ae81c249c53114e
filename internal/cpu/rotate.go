package cpu

// The eight rotate/shift primitives share one flag rule: N=0, H=0, C=ejected
// bit (SWAP ejects nothing and clears C). They never touch Z themselves -- RLCA/RRCA/RLA/RRA always clear it,
// while the CB-prefixed register forms set it from the result -- so each
// returns the new value and leaves Z to its caller.

func (c *CPU) rlc(v uint8) uint8 {
	carry := v&0x80 != 0
	res := v << 1
	if carry {
		res |= 1
	}
	c.setN(false)
	c.setH(false)
	c.setC(carry)
	return res
}

func (c *CPU) rrc(v uint8) uint8 {
	carry := v&0x01 != 0
	res := v >> 1
	if carry {
		res |= 0x80
	}
	c.setN(false)
	c.setH(false)
	c.setC(carry)
	return res
}

func (c *CPU) rl(v uint8) uint8 {
	oldCarry := uint8(0)
	if c.getC() {
		oldCarry = 1
	}
	carry := v&0x80 != 0
	res := v<<1 | oldCarry
	c.setN(false)
	c.setH(false)
	c.setC(carry)
	return res
}

func (c *CPU) rr(v uint8) uint8 {
	oldCarry := uint8(0)
	if c.getC() {
		oldCarry = 0x80
	}
	carry := v&0x01 != 0
	res := v>>1 | oldCarry
	c.setN(false)
	c.setH(false)
	c.setC(carry)
	return res
}

func (c *CPU) sla(v uint8) uint8 {
	carry := v&0x80 != 0
	res := v << 1
	c.setN(false)
	c.setH(false)
	c.setC(carry)
	return res
}

func (c *CPU) sra(v uint8) uint8 {
	carry := v&0x01 != 0
	res := v>>1 | v&0x80
	c.setN(false)
	c.setH(false)
	c.setC(carry)
	return res
}

func (c *CPU) swap(v uint8) uint8 {
	res := v<<4 | v>>4
	c.setN(false)
	c.setH(false)
	c.setC(false)
	return res
}

func (c *CPU) srl(v uint8) uint8 {
	carry := v&0x01 != 0
	res := v >> 1
	c.setN(false)
	c.setH(false)
	c.setC(carry)
	return res
}

// shiftOps is indexed by the CB table's group field (bits 5:3 of 0x00-0x3F):
// 0=RLC 1=RRC 2=RL 3=RR 4=SLA 5=SRA 6=SWAP 7=SRL.
var shiftOps = [8]func(*CPU, uint8) uint8{}

func init() {
	shiftOps[0] = (*CPU).rlc
	shiftOps[1] = (*CPU).rrc
	shiftOps[2] = (*CPU).rl
	shiftOps[3] = (*CPU).rr
	shiftOps[4] = (*CPU).sla
	shiftOps[5] = (*CPU).sra
	shiftOps[6] = (*CPU).swap
	shiftOps[7] = (*CPU).srl

	for group := uint8(0); group < 8; group++ {
		group := group
		for r := uint8(0); r < 8; r++ {
			r := r
			op := group*8 + r
			defineCB(op, func(c *CPU) {
				res := shiftOps[group](c, c.getR8(r))
				c.setR8(r, res)
				c.setZ(zFlag(res))
			})
		}
	}

	define(0x07, func(c *CPU) { c.A = c.rlc(c.A); c.setZ(false) })
	define(0x0F, func(c *CPU) { c.A = c.rrc(c.A); c.setZ(false) })
	define(0x17, func(c *CPU) { c.A = c.rl(c.A); c.setZ(false) })
	define(0x1F, func(c *CPU) { c.A = c.rr(c.A); c.setZ(false) })
}

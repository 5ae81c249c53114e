package cpu

import "github.com/thelolagemann/dmgcore/pkg/bits"

// init builds the CB-prefixed BIT/RES/SET opcodes: BIT at 0x40-0x7F, RES at
// 0x80-0xBF, SET at 0xC0-0xFF, each laid out as bit*8+r.
func init() {
	for b := uint8(0); b < 8; b++ {
		b := b
		for r := uint8(0); r < 8; r++ {
			r := r
			defineCB(0x40+b*8+r, func(c *CPU) {
				v := c.getR8(r)
				c.setZ(!bits.Test(v, b))
				c.setN(false)
				c.setH(true)
			})
			defineCB(0x80+b*8+r, func(c *CPU) {
				c.setR8(r, bits.Reset(c.getR8(r), b))
			})
			defineCB(0xC0+b*8+r, func(c *CPU) {
				c.setR8(r, bits.Set(c.getR8(r), b))
			})
		}
	}
}

package cpu

// r8 register index encoding, used by the load/arithmetic/logic/CB opcode
// families: 0=B 1=C 2=D 3=E 4=H 5=L 6=(HL) 7=A.
func (c *CPU) getR8(i uint8) uint8 {
	switch i {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return c.readByte(c.HL())
	default:
		return c.A
	}
}

func (c *CPU) setR8(i uint8, v uint8) {
	switch i {
	case 0:
		c.B = v
	case 1:
		c.C = v
	case 2:
		c.D = v
	case 3:
		c.E = v
	case 4:
		c.H = v
	case 5:
		c.L = v
	case 6:
		c.writeByte(c.HL(), v)
	default:
		c.A = v
	}
}

// r16 register-pair index encoding used by LD rr,nn / INC rr / DEC rr /
// ADD HL,rr: 0=BC 1=DE 2=HL 3=SP.
func (c *CPU) getR16(i uint8) uint16 {
	switch i {
	case 0:
		return c.BC()
	case 1:
		return c.DE()
	case 2:
		return c.HL()
	default:
		return c.SP
	}
}

func (c *CPU) setR16(i uint8, v uint16) {
	switch i {
	case 0:
		c.SetBC(v)
	case 1:
		c.SetDE(v)
	case 2:
		c.SetHL(v)
	default:
		c.SP = v
	}
}

// r16Stack index encoding used by PUSH/POP: 0=BC 1=DE 2=HL 3=AF.
func (c *CPU) getR16Stack(i uint8) uint16 {
	if i == 3 {
		return c.AF()
	}
	return c.getR16(i)
}

func (c *CPU) setR16Stack(i uint8, v uint16) {
	if i == 3 {
		c.SetAF(v)
		return
	}
	c.setR16(i, v)
}

// condition index encoding used by JR/JP/CALL/RET: 0=NZ 1=Z 2=NC 3=C.
func (c *CPU) condition(i uint8) bool {
	switch i {
	case 0:
		return !c.getZ()
	case 1:
		return c.getZ()
	case 2:
		return !c.getC()
	default:
		return c.getC()
	}
}

// Package apu is the audio register sink. Synthesis and audio output are
// out of scope for this core; what remains is the one responsibility the
// bus must still get right -- routing reads and writes for 0xFF10-0xFF3F
// somewhere, so a real sound chip implementation (or a host-side one) can be
// plugged in later without changing the bus's address decode table.
package apu

// Sink is a 48-byte store covering the square/wave/noise channel registers
// plus wave RAM, with no synthesis behind it.
type Sink struct {
	regs [0x30]uint8
}

// New returns a Sink with every register zeroed.
func New() *Sink {
	return &Sink{}
}

// Read returns the stored value at addr, which must be in 0xFF10..0xFF3F.
func (s *Sink) Read(addr uint16) uint8 {
	return s.regs[addr-0xFF10]
}

// Write stores v at addr, which must be in 0xFF10..0xFF3F.
func (s *Sink) Write(addr uint16, v uint8) {
	s.regs[addr-0xFF10] = v
}

// postBootValues are the documented DMG post-boot contents of NR10-NR52;
// wave RAM is left zeroed since its post-boot state is undefined.
var postBootValues = map[uint16]uint8{
	0xFF10: 0x80, 0xFF11: 0xBF, 0xFF12: 0xF3, 0xFF14: 0xBF,
	0xFF16: 0x3F, 0xFF17: 0x00, 0xFF19: 0xBF,
	0xFF1A: 0x7F, 0xFF1B: 0xFF, 0xFF1C: 0x9F, 0xFF1E: 0xBF,
	0xFF20: 0xFF, 0xFF21: 0x00, 0xFF22: 0x00, 0xFF23: 0xBF,
	0xFF24: 0x77, 0xFF25: 0xF3, 0xFF26: 0xF1,
}

// LoadPostBootState resets every register to the value it holds immediately
// after the DMG boot ROM hands off to the cartridge.
func (s *Sink) LoadPostBootState() {
	for i := range s.regs {
		s.regs[i] = 0
	}
	for addr, v := range postBootValues {
		s.regs[addr-0xFF10] = v
	}
}

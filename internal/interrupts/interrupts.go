// Package interrupts holds the IE/IF byte pair shared by the bus, CPU, timer,
// joypad and the coordinator (which raises the PPU's requests on its behalf). It does not dispatch interrupts itself -- that is the CPU's
// job -- it only tracks which are requested and which are enabled.
package interrupts

import "github.com/thelolagemann/dmgcore/pkg/bits"

// Flag identifies one of the five interrupt sources. The bit position
// doubles as the index into both IE and IF.
type Flag uint8

const (
	// VBlank fires once per frame, when the PPU enters line 144.
	VBlank Flag = 0
	// STAT fires on the LCD-status conditions the PPU's STAT register enables.
	STAT Flag = 1
	// Timer fires when TIMA overflows.
	Timer Flag = 2
	// Serial fires on link-cable transfer completion (unused by this core;
	// the bit exists so IE/IF bookkeeping is complete).
	Serial Flag = 3
	// Joypad fires on a selected-group button press.
	Joypad Flag = 4
)

// Vector returns the dispatch address for f.
func (f Flag) Vector() uint16 {
	return 0x0040 + uint16(f)*8
}

// Service is the interrupt enable/flag register pair at 0xFFFF and 0xFF0F.
type Service struct {
	Enable uint8 // IE, 0xFFFF
	Flag   uint8 // IF, 0xFF0F
}

// NewService returns a fresh Service with both registers cleared.
func NewService() *Service {
	return &Service{}
}

// Request sets f's bit in IF. Multiple sources may be pending at once; the
// CPU resolves priority when it services them.
func (s *Service) Request(f Flag) {
	s.Flag = bits.Set(s.Flag, uint8(f))
}

// Pending reports whether any enabled interrupt is currently requested.
func (s *Service) Pending() bool {
	return s.Enable&s.Flag&0x1F != 0
}

// ReadIE returns the IE register as seen by a bus read.
func (s *Service) ReadIE() uint8 { return s.Enable }

// WriteIE stores a new IE register value.
func (s *Service) WriteIE(v uint8) { s.Enable = v }

// ReadIF returns the IF register as seen by a bus read. The upper three
// bits always read back set, matching real hardware.
func (s *Service) ReadIF() uint8 { return s.Flag&0x1F | 0xE0 }

// WriteIF stores a new IF register value; only the low 5 bits are writable.
func (s *Service) WriteIF(v uint8) { s.Flag = v & 0x1F }

// Highest returns the highest-priority pending-and-enabled interrupt and
// true, or the zero Flag and false if none is pending. It does not clear
// anything; the caller must call Clear once it has committed to servicing it.
func (s *Service) Highest() (Flag, bool) {
	pending := s.Enable & s.Flag & 0x1F
	if pending == 0 {
		return 0, false
	}
	for f := Flag(0); f <= Joypad; f++ {
		if pending&(1<<uint8(f)) != 0 {
			return f, true
		}
	}
	return 0, false
}

// Clear clears f's bit in IF, marking it serviced.
func (s *Service) Clear(f Flag) {
	s.Flag = bits.Reset(s.Flag, uint8(f))
}

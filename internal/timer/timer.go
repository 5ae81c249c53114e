// Package timer implements the DIV/TIMA/TMA/TAC sub-unit as a coarse
// period-counter model: the core advances it in whole machine-cycle
// batches, once per CPU step, not one T-cycle at a time. That's accurate
// enough for single-speed DMG timing without needing a falling-edge
// detector at T-cycle granularity.
package timer

import (
	"math/rand"

	"github.com/thelolagemann/dmgcore/internal/interrupts"
)

// periods is indexed by TAC's low two bits; each value is the number of
// machine cycles between TIMA increments.
var periods = [4]uint16{1024, 16, 64, 256}

// Controller owns DIV/TIMA/TMA/TAC.
type Controller struct {
	div uint16 // internal 16-bit divider; DIV (0xFF04) reads its high byte

	tima uint8
	tma  uint8
	tac  uint8

	timaAcc uint16 // cycles accumulated toward the next TIMA increment

	irq *interrupts.Service
}

// NewController returns a Controller wired to irq for the Timer interrupt.
func NewController(irq *interrupts.Service) *Controller {
	return &Controller{irq: irq}
}

// Update advances the timer by cycles machine cycles.
//
// DIV's advance includes a one-bit jitter: on roughly 10% of calls an extra
// tick is folded in. This is a deliberate deviation from real hardware,
// because the target game harvests DIV's low byte as its piece-selection
// seed, and a purely deterministic advance makes that sequence repeat every
// run.
func (c *Controller) Update(cycles uint8) {
	jitter := uint16(0)
	if rand.Intn(10) == 0 {
		jitter = 1
	}
	c.div += uint16(cycles) + jitter

	if c.tac&0x04 == 0 {
		return
	}

	period := periods[c.tac&0x03]
	c.timaAcc += uint16(cycles)
	for c.timaAcc >= period {
		c.timaAcc -= period
		c.tima++
		if c.tima == 0 {
			c.tima = c.tma
			c.irq.Request(interrupts.Timer)
		}
	}
}

// ReadDIV returns the upper byte of the internal divider.
func (c *Controller) ReadDIV() uint8 { return uint8(c.div >> 8) }

// WriteDIV resets the internal divider to 0, as any write to 0xFF04 does.
func (c *Controller) WriteDIV() { c.div = 0 }

// ReadTIMA returns the current TIMA value.
func (c *Controller) ReadTIMA() uint8 { return c.tima }

// WriteTIMA stores a new TIMA value directly (CPU writes to 0xFF05).
func (c *Controller) WriteTIMA(v uint8) { c.tima = v }

// ReadTMA returns the current TMA value.
func (c *Controller) ReadTMA() uint8 { return c.tma }

// WriteTMA stores a new TMA value.
func (c *Controller) WriteTMA(v uint8) { c.tma = v }

// ReadTAC returns TAC with its unused upper bits read back as 1.
func (c *Controller) ReadTAC() uint8 { return c.tac | 0xF8 }

// WriteTAC stores a new TAC value, masked to its three meaningful bits.
func (c *Controller) WriteTAC(v uint8) { c.tac = v & 0x07 }

// LoadPostBootState resets the timer to its state immediately after the DMG
// boot ROM hands off: TIMA/TMA/TAC all zero, timer disabled.
func (c *Controller) LoadPostBootState() {
	c.div = 0
	c.tima = 0
	c.tma = 0
	c.tac = 0
	c.timaAcc = 0
}

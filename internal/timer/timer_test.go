package timer

import (
	"testing"

	"github.com/thelolagemann/dmgcore/internal/interrupts"
)

func TestTIMAOverflowReloadsAndRaisesInterrupt(t *testing.T) {
	irq := interrupts.NewService()
	c := NewController(irq)

	c.WriteTAC(0x05) // enabled, period 16
	c.WriteTMA(0xAB)
	c.WriteTIMA(0xFF)

	c.Update(16)

	if c.ReadTIMA() != 0xAB {
		t.Errorf("TIMA = 0x%02X, want 0xAB", c.ReadTIMA())
	}
	if irq.ReadIF()&0x04 == 0 {
		t.Error("expected IF bit 2 (Timer) set after overflow")
	}
}

func TestTIMADisabledByTAC(t *testing.T) {
	irq := interrupts.NewService()
	c := NewController(irq)
	c.WriteTAC(0x00) // disabled
	for i := 0; i < 40; i++ {
		c.Update(250) // 10000 cycles in total
	}
	if c.ReadTIMA() != 0 {
		t.Errorf("TIMA = 0x%02X, want 0 (timer disabled)", c.ReadTIMA())
	}
}

func TestDIVAdvancesAndWriteResets(t *testing.T) {
	irq := interrupts.NewService()
	c := NewController(irq)
	for i := 0; i < 200; i++ {
		c.Update(128)
	}
	if c.ReadDIV() == 0 {
		t.Fatal("expected DIV to have advanced")
	}
	c.WriteDIV()
	if c.ReadDIV() != 0 {
		t.Errorf("DIV after write = 0x%02X, want 0", c.ReadDIV())
	}
}

func TestTACReadBackSetsUnusedBits(t *testing.T) {
	irq := interrupts.NewService()
	c := NewController(irq)
	c.WriteTAC(0x05)
	if got := c.ReadTAC(); got != 0xFD {
		t.Errorf("TAC = 0x%02X, want 0xFD", got)
	}
}

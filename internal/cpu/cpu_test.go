package cpu

import (
	"testing"

	"github.com/thelolagemann/dmgcore/internal/interrupts"
)

// flatMemory is a 64 KiB byte-addressed cpu.Memory with no special regions,
// used to exercise the CPU in isolation from the bus.
type flatMemory struct {
	b [0x10000]byte
}

func (m *flatMemory) Read(addr uint16) uint8    { return m.b[addr] }
func (m *flatMemory) Write(addr uint16, v uint8) { m.b[addr] = v }

func newTestCPU() (*CPU, *flatMemory, *interrupts.Service) {
	mem := &flatMemory{}
	irq := interrupts.NewService()
	return New(mem, irq), mem, irq
}

func TestNOPTiming(t *testing.T) {
	c, mem, _ := newTestCPU()
	c.PC = 0xC000
	mem.b[0xC000] = 0x00

	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.PC != 0xC001 {
		t.Errorf("PC = 0x%04X, want 0xC001", c.PC)
	}
	if cycles != 4 {
		t.Errorf("cycles = %d, want 4", cycles)
	}
}

func TestLDBCnnTiming(t *testing.T) {
	c, mem, _ := newTestCPU()
	c.PC = 0xC000
	mem.b[0xC000] = 0x01
	mem.b[0xC001] = 0x34
	mem.b[0xC002] = 0x12

	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.BC() != 0x1234 {
		t.Errorf("BC = 0x%04X, want 0x1234", c.BC())
	}
	if c.PC != 0xC003 {
		t.Errorf("PC = 0x%04X, want 0xC003", c.PC)
	}
	if cycles != 12 {
		t.Errorf("cycles = %d, want 12", cycles)
	}
}

func TestConditionalBranchCycles(t *testing.T) {
	// JR Z,+5
	c, mem, _ := newTestCPU()
	c.PC = 0xC000
	mem.b[0xC000] = 0x28
	mem.b[0xC001] = 0x05

	c.setZ(true)
	cycles, _ := c.Step()
	if c.PC != 0xC007 {
		t.Errorf("taken: PC = 0x%04X, want 0xC007", c.PC)
	}
	if cycles != 12 {
		t.Errorf("taken: cycles = %d, want 12", cycles)
	}

	c2, mem2, _ := newTestCPU()
	c2.PC = 0xC000
	mem2.b[0xC000] = 0x28
	mem2.b[0xC001] = 0x05
	c2.setZ(false)
	cycles2, _ := c2.Step()
	if c2.PC != 0xC002 {
		t.Errorf("not taken: PC = 0x%04X, want 0xC002", c2.PC)
	}
	if cycles2 != 8 {
		t.Errorf("not taken: cycles = %d, want 8", cycles2)
	}
}

func TestCallRetRoundTrip(t *testing.T) {
	c, mem, _ := newTestCPU()
	c.PC = 0xC000
	c.SP = 0xFFFE
	mem.b[0xC000] = 0xCD // CALL 0x8000
	mem.b[0xC001] = 0x00
	mem.b[0xC002] = 0x80
	mem.b[0x8000] = 0xC9 // RET

	callCycles, err := c.Step()
	if err != nil {
		t.Fatalf("CALL: unexpected error: %v", err)
	}
	if c.PC != 0x8000 {
		t.Errorf("after CALL: PC = 0x%04X, want 0x8000", c.PC)
	}
	if callCycles != 24 {
		t.Errorf("CALL cycles = %d, want 24", callCycles)
	}

	retCycles, err := c.Step()
	if err != nil {
		t.Fatalf("RET: unexpected error: %v", err)
	}
	if c.PC != 0xC003 {
		t.Errorf("after RET: PC = 0x%04X, want 0xC003", c.PC)
	}
	if c.SP != 0xFFFE {
		t.Errorf("after RET: SP = 0x%04X, want 0xFFFE", c.SP)
	}
	if retCycles != 16 {
		t.Errorf("RET cycles = %d, want 16", retCycles)
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	c, _, _ := newTestCPU()
	c.SP = 0xFFFE
	c.SetBC(0xBEEF)
	c.pushWord(c.BC())
	sp := c.SP
	c.SetBC(0x0000)
	c.SetBC(c.popWord())
	if c.BC() != 0xBEEF {
		t.Errorf("BC = 0x%04X, want 0xBEEF", c.BC())
	}
	if c.SP != sp+2 {
		t.Errorf("SP = 0x%04X, want 0x%04X", c.SP, sp+2)
	}
}

func TestPushPopAFRoundTrip(t *testing.T) {
	c, _, _ := newTestCPU()
	c.SP = 0xFFFE
	c.A = 0x42
	c.setZ(true)
	c.setN(false)
	c.setH(true)
	c.setC(false)
	wantF := c.F

	c.pushWord(c.AF())
	c.SetAF(c.popWord())

	if c.A != 0x42 {
		t.Errorf("A = 0x%02X, want 0x42", c.A)
	}
	if c.F != wantF {
		t.Errorf("F = 0x%02X, want 0x%02X", c.F, wantF)
	}
}

func TestCPLIdempotence(t *testing.T) {
	c, _, _ := newTestCPU()
	c.A = 0x5A
	cplFn := instructionSet[0x2F]
	cplFn(c)
	cplFn(c)
	if c.A != 0x5A {
		t.Errorf("A = 0x%02X, want 0x5A", c.A)
	}
}

func TestSCFCCFIdempotence(t *testing.T) {
	c, _, _ := newTestCPU()
	instructionSet[0x37](c) // SCF
	instructionSet[0x3F](c) // CCF
	instructionSet[0x3F](c) // CCF
	if !c.getC() {
		t.Errorf("C = false, want true")
	}
}

func TestFLowNibbleAlwaysZero(t *testing.T) {
	c, mem, _ := newTestCPU()
	c.PC = 0xC000
	c.A = 0xFF
	mem.b[0xC000] = 0x3C // INC A (wraps to 0, sets Z and H)
	c.Step()
	if c.F&0x0F != 0 {
		t.Errorf("F low nibble = 0x%X, want 0", c.F&0x0F)
	}
}

func TestInterruptDispatch(t *testing.T) {
	c, mem, irq := newTestCPU()
	c.PC = 0xC123
	c.SP = 0xFFFE
	c.IME = true
	irq.WriteIE(0x01)
	irq.Request(interrupts.VBlank)
	mem.b[0xC123] = 0x00 // would be a NOP if dispatch didn't intervene

	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.IME {
		t.Errorf("IME = true, want false after dispatch")
	}
	if irq.ReadIF()&0x01 != 0 {
		t.Errorf("IF bit 0 still set after dispatch")
	}
	if c.PC != interrupts.VBlank.Vector() {
		t.Errorf("PC = 0x%04X, want 0x%04X", c.PC, interrupts.VBlank.Vector())
	}
	if c.SP != 0xFFFC {
		t.Errorf("SP = 0x%04X, want 0xFFFC", c.SP)
	}
	lo := mem.Read(0xFFFC)
	hi := mem.Read(0xFFFD)
	if uint16(hi)<<8|uint16(lo) != 0xC123 {
		t.Errorf("stacked PC = 0x%04X, want 0xC123", uint16(hi)<<8|uint16(lo))
	}
	if cycles != 20 {
		t.Errorf("cycles = %d, want 20", cycles)
	}
}

func TestIllegalOpcode(t *testing.T) {
	c, mem, _ := newTestCPU()
	c.PC = 0xC000
	mem.b[0xC000] = 0xD3

	cycles, err := c.Step()
	if err == nil {
		t.Fatal("expected an error for illegal opcode 0xD3")
	}
	if _, ok := err.(*IllegalInstructionError); !ok {
		t.Errorf("error type = %T, want *IllegalInstructionError", err)
	}
	if cycles != 0 {
		t.Errorf("cycles = %d, want 0", cycles)
	}
}

func TestHaltWakesWithoutDispatchWhenIMEOff(t *testing.T) {
	c, mem, irq := newTestCPU()
	c.PC = 0xC000
	mem.b[0xC000] = 0x76 // HALT
	mem.b[0xC001] = 0x00 // NOP
	c.IME = false
	irq.WriteIE(0x01)

	c.Step() // executes HALT
	if !c.Halted() {
		t.Fatal("expected halted after executing HALT")
	}

	irq.Request(interrupts.VBlank)
	c.Step() // should wake but not dispatch (IME off), and execute the NOP at 0xC001
	if c.Halted() {
		t.Error("expected wake from HALT on pending interrupt regardless of IME")
	}
	if c.PC != 0xC002 {
		t.Errorf("PC = 0x%04X, want 0xC002 (resumed fetch, no dispatch)", c.PC)
	}
}

// Package cpu implements the Sharp LR35902-compatible execution engine:
// fetch/decode/execute, the full documented instruction set plus the
// CB-prefixed bit-operation table, HALT/STOP handling and interrupt
// dispatch. It never touches VRAM/OAM/timer/joypad state directly -- all of
// that goes through the Memory it is given, which keeps the CPU from
// re-entering into its own caller mid-instruction.
package cpu

import (
	"github.com/thelolagemann/dmgcore/internal/interrupts"
)

// Memory is everything the CPU needs from the bus: byte-addressed reads and
// writes over the full 16-bit space. The bus owns address decoding, OAM-DMA,
// echo mirroring and all the other routing; the CPU only ever sees a flat
// Read/Write surface.
type Memory interface {
	Read(addr uint16) uint8
	Write(addr uint16, v uint8)
}

// CPU is the fetch/decode/execute engine plus interrupt dispatcher.
type CPU struct {
	Registers
	PC, SP uint16

	// IME is the interrupt master-enable flag. pendingEnable is the
	// one-instruction-delayed latch EI sets; it is promoted to IME at the
	// top of the next Step.
	IME           bool
	pendingEnable bool

	halted bool

	mem Memory
	irq *interrupts.Service

	// cycles accumulates the machine cycles spent by the instruction
	// currently executing; Step resets it to 0 and returns it.
	cycles uint8

	// totalCycles is the running total across every Step call, exposed via
	// TotalCycles for gameboy.Stats.
	totalCycles uint64
}

// New returns a CPU wired to mem for memory access and irq for interrupt
// bookkeeping. Registers start zeroed; callers that want the DMG post-boot
// state call gameboy.GameBoy.LoadRom, which sets it explicitly.
func New(mem Memory, irq *interrupts.Service) *CPU {
	return &CPU{mem: mem, irq: irq}
}

// Halted reports whether the CPU is currently parked in HALT.
func (c *CPU) Halted() bool { return c.halted }

// TotalCycles returns the running total of machine cycles consumed across
// every Step call so far.
func (c *CPU) TotalCycles() uint64 { return c.totalCycles }

// Step executes exactly one instruction (or one HALT tick, or one interrupt
// dispatch) and returns the number of machine cycles it consumed. An
// IllegalInstructionError is returned, with zero cycles consumed, if the
// fetched opcode is one of the eleven undefined ones.
func (c *CPU) Step() (uint8, error) {
	c.cycles = 0
	defer func() { c.totalCycles += uint64(c.cycles) }()

	if c.pendingEnable {
		c.IME = true
		c.pendingEnable = false
	}

	if f, ok := c.irq.Highest(); ok {
		if c.halted {
			c.halted = false
		}
		if c.IME {
			c.serviceInterrupt(f)
			return c.cycles, nil
		}
	}

	if c.halted {
		c.tick()
		return c.cycles, nil
	}

	opcode := c.fetch()
	if illegalOpcodes[opcode] {
		c.cycles = 0
		return 0, &IllegalInstructionError{Opcode: opcode, PC: c.PC - 1}
	}

	instr := instructionSet[opcode]
	if instr == nil {
		c.cycles = 0
		return 0, &IllegalInstructionError{Opcode: opcode, PC: c.PC - 1}
	}
	instr(c)

	return c.cycles, nil
}

// serviceInterrupt pushes PC, jumps to f's vector, clears IME and f's IF
// bit, and consumes the fixed 20-cycle dispatch cost -- no instruction
// executes this Step.
func (c *CPU) serviceInterrupt(f interrupts.Flag) {
	c.tick() // 2 internal wait cycles
	c.tick()
	c.pushWord(c.PC) // 2 cycles, one per pushed byte
	c.irq.Clear(f)
	c.IME = false
	c.PC = f.Vector()
	c.tick() // 1 cycle to latch the new PC
}

// tick accounts one machine cycle (4 T-states) against the instruction in
// progress. Every memory access and every documented "internal" cycle goes
// through this (directly, or via fetch/readByte/writeByte below), so the
// cycle totals Step returns match the standard timing table.
func (c *CPU) tick() { c.cycles += 4 }

// fetch reads the byte at PC, advances PC, and accounts one cycle.
func (c *CPU) fetch() uint8 {
	v := c.mem.Read(c.PC)
	c.PC++
	c.tick()
	return v
}

// fetch16 reads a little-endian word starting at PC, advancing PC by 2.
func (c *CPU) fetch16() uint16 {
	lo := c.fetch()
	hi := c.fetch()
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) readByte(addr uint16) uint8 {
	v := c.mem.Read(addr)
	c.tick()
	return v
}

func (c *CPU) writeByte(addr uint16, v uint8) {
	c.mem.Write(addr, v)
	c.tick()
}

func (c *CPU) pushWord(v uint16) {
	c.SP--
	c.writeByte(c.SP, uint8(v>>8))
	c.SP--
	c.writeByte(c.SP, uint8(v))
}

func (c *CPU) popWord() uint16 {
	lo := c.readByte(c.SP)
	c.SP++
	hi := c.readByte(c.SP)
	c.SP++
	return uint16(hi)<<8 | uint16(lo)
}

// Package bus implements the single 16-bit address decoder and data router:
// it owns ROM, VRAM, external RAM, work RAM (plus its echo mirror), OAM, the
// I/O page, HRAM and the IE byte, and forwards joypad/timer/APU/interrupt
// register traffic to their owning components.
package bus

import (
	"github.com/thelolagemann/dmgcore/internal/apu"
	"github.com/thelolagemann/dmgcore/internal/cartridge"
	"github.com/thelolagemann/dmgcore/internal/interrupts"
	"github.com/thelolagemann/dmgcore/internal/joypad"
	"github.com/thelolagemann/dmgcore/internal/timer"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

const (
	vramSize   = 0x2000
	extRAMSize = 0x2000
	wramSize   = 0x2000
	oamSize    = 0xA0
	ioSize     = 0x80
	hramSize   = 0x7F
)

// Bus is the unified memory map. It holds no logic of its own beyond
// address decode and the handful of registers (DIV/TIMA/TMA/TAC, P1, IF/IE,
// the APU range) that must be routed to their owning component.
type Bus struct {
	rom *cartridge.Cartridge

	vram   [vramSize]byte
	extRAM [extRAMSize]byte
	wram   [wramSize]byte
	oam    [oamSize]byte
	io     [ioSize]byte
	hram   [hramSize]byte

	joypad *joypad.State
	timer  *timer.Controller
	irq    *interrupts.Service
	apu    *apu.Sink

	log log.Logger
}

// New wires a Bus to its sibling components. The bus holds references to
// each, but none of them hold a reference back -- the coordinator is the
// only thing that wires both directions, which keeps the PPU and other
// components from needing a pointer to the bus that owns them.
func New(irq *interrupts.Service, t *timer.Controller, jp *joypad.State, a *apu.Sink, logger log.Logger) *Bus {
	return &Bus{
		rom:    &cartridge.Cartridge{},
		joypad: jp,
		timer:  t,
		irq:    irq,
		apu:    a,
		log:    logger,
	}
}

// LoadRom installs cart as the ROM backing 0x0000-0x7FFF.
func (b *Bus) LoadRom(cart *cartridge.Cartridge) {
	b.rom = cart
}

// SetLogger overrides the logger the bus was constructed with. No bus path
// currently logs through it.
func (b *Bus) SetLogger(l log.Logger) {
	b.log = l
}

// Read returns the byte at addr, decoded across the full 16-bit address space.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr < 0x8000:
		return b.rom.Read(addr)
	case addr < 0xA000:
		return b.vram[addr-0x8000]
	case addr < 0xC000:
		return b.extRAM[addr-0xA000]
	case addr < 0xE000:
		return b.wram[addr-0xC000]
	case addr < 0xFE00:
		return b.wram[addr-0xE000] // echo of 0xC000-0xDDFF
	case addr < 0xFEA0:
		return b.oam[addr-0xFE00]
	case addr < 0xFF00:
		return 0xFF // unusable region
	case addr == 0xFF00:
		return b.joypad.Read()
	case addr == 0xFF04:
		return b.timer.ReadDIV()
	case addr == 0xFF05:
		return b.timer.ReadTIMA()
	case addr == 0xFF06:
		return b.timer.ReadTMA()
	case addr == 0xFF07:
		return b.timer.ReadTAC()
	case addr == 0xFF0F:
		return b.irq.ReadIF()
	case addr >= 0xFF10 && addr <= 0xFF3F:
		return b.apu.Read(addr)
	case addr == 0xFFFF:
		return b.irq.ReadIE()
	case addr >= 0xFF80 && addr <= 0xFFFE:
		return b.hram[addr-0xFF80]
	default:
		return b.io[addr-0xFF00]
	}
}

// Write stores v at addr. Writes to
// ROM are dropped, writes to the unusable region are dropped, and writes to
// LY (0xFF44) are dropped -- LY is read-only from the CPU side; only the
// PPU (via WriteReg) may change it.
func (b *Bus) Write(addr uint16, v uint8) {
	switch {
	case addr < 0x8000:
		// ROM is read-only.
	case addr < 0xA000:
		b.vram[addr-0x8000] = v
	case addr < 0xC000:
		b.extRAM[addr-0xA000] = v
	case addr < 0xE000:
		b.wram[addr-0xC000] = v
	case addr < 0xFE00:
		b.wram[addr-0xE000] = v
	case addr < 0xFEA0:
		b.oam[addr-0xFE00] = v
	case addr < 0xFF00:
		// unusable region, dropped
	case addr == 0xFF00:
		b.joypad.Write(v)
	case addr == 0xFF04:
		b.timer.WriteDIV()
	case addr == 0xFF05:
		b.timer.WriteTIMA(v)
	case addr == 0xFF06:
		b.timer.WriteTMA(v)
	case addr == 0xFF07:
		b.timer.WriteTAC(v)
	case addr == 0xFF0F:
		b.irq.WriteIF(v)
	case addr >= 0xFF10 && addr <= 0xFF3F:
		b.apu.Write(addr, v)
	case addr == 0xFF44:
		// LY is read-only from the CPU side.
	case addr == 0xFF46:
		b.io[addr-0xFF00] = v
		b.triggerOAMDMA(v)
	case addr == 0xFFFF:
		b.irq.WriteIE(v)
	case addr >= 0xFF80 && addr <= 0xFFFE:
		b.hram[addr-0xFF80] = v
	default:
		b.io[addr-0xFF00] = v
	}
}

// Read16 and Write16 are little-endian, implemented as two byte accesses.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := b.Read(addr)
	hi := b.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (b *Bus) Write16(addr uint16, v uint16) {
	b.Write(addr, uint8(v))
	b.Write(addr+1, uint8(v>>8))
}

// WriteReg is the PPU's privileged path into the 0xFF40-0xFF4B register
// page: it bypasses the LY read-only guard in Write, since the PPU is the
// one thing allowed to change LY and STAT's mode bits.
func (b *Bus) WriteReg(addr uint16, v uint8) {
	b.io[addr-0xFF00] = v
}

// triggerOAMDMA performs the 160-byte copy into OAM from the page written to
// 0xFF46, reading the source through the normal Read path and completing
// atomically within the call -- this core does not model the DMA occupying
// the bus for 160 machine cycles.
func (b *Bus) triggerOAMDMA(page uint8) {
	src := uint16(page) << 8
	for i := uint16(0); i < oamSize; i++ {
		b.oam[i] = b.Read(src + i)
	}
}

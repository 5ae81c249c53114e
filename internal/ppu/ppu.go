// Package ppu implements a scanline-based picture processing unit: a
// 456-cycle-per-line, 154-line frame timer driving mode 2 (OAM search),
// mode 3 (pixel transfer) and mode 0 (H-blank) during the visible lines,
// mode 1 (V-blank) during lines 144-153, and a whole-scanline-at-once
// background/window/sprite compositor rather than a dot-accurate pixel FIFO.
package ppu

const (
	ScreenWidth  = 160
	ScreenHeight = 144

	cyclesPerLine = 456
	vblankStartLn = 144
	linesPerFrame = 154

	oamSearchCycles  = 80
	pixelXferCycles  = 172 // mode 3; mode 0 picks up the remainder of the line
)

// Mode is the PPU's current STAT mode.
type Mode uint8

const (
	ModeHBlank Mode = 0
	ModeVBlank Mode = 1
	ModeOAM    Mode = 2
	ModeXfer   Mode = 3
)

// Memory is the slice of the bus the PPU reads tile data, tile maps, OAM and
// its own register page through, plus the privileged register-write path
// (WriteReg) it uses to update LY and STAT -- the one exception to the
// otherwise CPU-only Write in bus.Bus.
type Memory interface {
	Read(addr uint16) uint8
	WriteReg(addr uint16, v uint8)
}

// PPU owns the framebuffer and the line/dot timing state machine. It does
// not own VRAM, OAM or its own register bytes -- those live on the bus (see
// internal/bus), and the PPU reaches them through the Memory it is given
// each Step, never storing that reference between calls.
type PPU struct {
	lineCycles int
	mode       Mode

	// Framebuffer holds one 2-bit shade (0..3) per pixel, already mapped
	// through BGP/OBP0/OBP1 by the renderer; turning shades into display
	// colours is left to the caller.
	Framebuffer [ScreenHeight][ScreenWidth]uint8

	// VBlankRequested and StatRequested are read and cleared by the
	// coordinator after each Step, which is the only thing allowed to turn
	// them into IF bits -- the PPU itself never touches interrupts.Service.
	VBlankRequested bool
	StatRequested   bool
}

// New returns a PPU parked at the start of line 0, mode 2.
func New() *PPU {
	return &PPU{mode: ModeOAM}
}

// Step advances the PPU by cycles machine cycles (as returned by a single
// cpu.CPU.Step call) and performs whatever mode transitions, rendering and
// interrupt-flag raises fall within that span.
func (p *PPU) Step(mem Memory, cycles uint8) {
	lcdc := mem.Read(0xFF40)
	if lcdc&0x80 == 0 {
		// LCD disabled: park at line 0, mode 0, do not advance timing, and
		// blank the framebuffer to palette index 0 rather than leaving
		// whatever was last rendered on screen.
		p.lineCycles = 0
		p.mode = ModeHBlank
		mem.WriteReg(0xFF44, 0)
		p.updateSTAT(mem)
		for y := 0; y < ScreenHeight; y++ {
			for x := 0; x < ScreenWidth; x++ {
				p.Framebuffer[y][x] = 0
			}
		}
		return
	}

	p.lineCycles += int(cycles)
	for p.lineCycles >= cyclesPerLine {
		p.lineCycles -= cyclesPerLine
		p.advanceLine(mem)
	}
	p.updateMode(mem)
	p.updateSTAT(mem)
}

// advanceLine is called once per 456-cycle line boundary crossed: it
// renders the line about to be retired (if visible), increments LY and
// raises V-blank when entering line 144.
func (p *PPU) advanceLine(mem Memory) {
	ly := mem.Read(0xFF44)
	if ly < vblankStartLn {
		p.renderLine(mem, ly)
	}
	ly++
	if ly == linesPerFrame {
		ly = 0
	}
	mem.WriteReg(0xFF44, ly)
	if ly == vblankStartLn {
		p.VBlankRequested = true
	}
	lyc := mem.Read(0xFF45)
	if ly == lyc {
		stat := mem.Read(0xFF41)
		if stat&0x40 != 0 {
			p.StatRequested = true
		}
	}
}

// updateMode derives the current STAT mode from line position within the
// 456-cycle line, raising STAT interrupts on the rising edge of any enabled
// mode-change source.
func (p *PPU) updateMode(mem Memory) {
	ly := mem.Read(0xFF44)
	var mode Mode
	switch {
	case ly >= vblankStartLn:
		mode = ModeVBlank
	case p.lineCycles < oamSearchCycles:
		mode = ModeOAM
	case p.lineCycles < oamSearchCycles+pixelXferCycles:
		mode = ModeXfer
	default:
		mode = ModeHBlank
	}

	if mode != p.mode {
		p.mode = mode
		stat := mem.Read(0xFF41)
		switch mode {
		case ModeHBlank:
			if stat&0x08 != 0 {
				p.StatRequested = true
			}
		case ModeVBlank:
			if stat&0x10 != 0 {
				p.StatRequested = true
			}
		case ModeOAM:
			if stat&0x20 != 0 {
				p.StatRequested = true
			}
		}
	}
}

// updateSTAT writes the mode and LY==LYC bits back into the STAT register,
// preserving the interrupt-enable bits the CPU last wrote.
func (p *PPU) updateSTAT(mem Memory) {
	stat := mem.Read(0xFF41)
	stat = stat&0xF8 | uint8(p.mode)
	ly := mem.Read(0xFF44)
	lyc := mem.Read(0xFF45)
	if ly == lyc {
		stat |= 0x04
	} else {
		stat &^= 0x04
	}
	mem.WriteReg(0xFF41, stat)
}

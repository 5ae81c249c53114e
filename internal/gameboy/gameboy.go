// Package gameboy is the top-level coordinator: it owns the CPU, bus, PPU,
// timer, joypad, APU sink and interrupt service, and drives them in a fixed
// order -- CPU step, then PPU advance, then timer advance, then
// interrupt-flag propagation -- once per Step call; RunFrame repeats Step
// until CyclesPerFrame machine cycles have accumulated.
package gameboy

import (
	"github.com/thelolagemann/dmgcore/internal/apu"
	"github.com/thelolagemann/dmgcore/internal/bus"
	"github.com/thelolagemann/dmgcore/internal/cartridge"
	"github.com/thelolagemann/dmgcore/internal/cpu"
	"github.com/thelolagemann/dmgcore/internal/interrupts"
	"github.com/thelolagemann/dmgcore/internal/joypad"
	"github.com/thelolagemann/dmgcore/internal/ppu"
	"github.com/thelolagemann/dmgcore/internal/timer"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// CyclesPerFrame is the nominal machine-cycle length of one DMG frame
// (59.7 Hz at 4.194304 MHz).
const CyclesPerFrame = 70224

// Stats is the snapshot gameboy.GameBoy.Stats returns for host code driving
// the core (logging, a debugger, a display loop) to poll after each frame.
type Stats struct {
	TotalCycles uint64
	CPUCycles   uint8
	LY          uint8
	PPUMode     ppu.Mode
	Running     bool
}

// GameBoy wires every sub-component together and drives the shared cycle
// budget. It is not safe for concurrent use -- exactly one goroutine may
// call Step/RunFrame/SetButton at a time.
type GameBoy struct {
	cpu  *cpu.CPU
	bus  *bus.Bus
	ppu  *ppu.PPU
	tmr  *timer.Controller
	jp   *joypad.State
	apu  *apu.Sink
	irq  *interrupts.Service

	lastCycles uint8
	running    bool

	watchdog int
	log      log.Logger
}

// New wires a fresh GameBoy. No ROM is loaded and no post-boot state is
// applied until LoadRom is called.
func New(opts ...GameBoyOpt) *GameBoy {
	irq := interrupts.NewService()
	tmr := timer.NewController(irq)
	jp := joypad.New(irq)
	a := apu.New()
	logger := log.NewNullLogger()

	b := bus.New(irq, tmr, jp, a, logger)
	c := cpu.New(b, irq)
	p := ppu.New()

	g := &GameBoy{
		cpu:      c,
		bus:      b,
		ppu:      p,
		tmr:      tmr,
		jp:       jp,
		apu:      a,
		irq:      irq,
		watchdog: 2 * CyclesPerFrame,
		log:      logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	b.SetLogger(g.log)
	return g
}

// LoadRom validates and installs rom, then applies the full post-boot
// register and I/O state a real DMG boot ROM would have left behind -- this
// core never executes the boot ROM itself.
func (g *GameBoy) LoadRom(rom []byte) error {
	cart, err := cartridge.New(rom)
	if err != nil {
		return err
	}
	g.bus.LoadRom(cart)
	g.loadPostBootState()
	g.running = true
	return nil
}

// loadPostBootState sets every register to its standard value at the instant
// the DMG boot ROM hands off to the cartridge.
func (g *GameBoy) loadPostBootState() {
	g.cpu.SetAF(0x01B0)
	g.cpu.SetBC(0x0013)
	g.cpu.SetDE(0x00D8)
	g.cpu.SetHL(0x014D)
	g.cpu.SP = 0xFFFE
	g.cpu.PC = 0x0100
	g.cpu.IME = false

	g.irq.WriteIE(0x00)
	g.irq.WriteIF(0x00)

	g.tmr.LoadPostBootState()
	g.apu.LoadPostBootState()

	g.bus.WriteReg(0xFF40, 0x91) // LCDC
	g.bus.WriteReg(0xFF41, 0x85) // STAT
	g.bus.WriteReg(0xFF42, 0x00) // SCY
	g.bus.WriteReg(0xFF43, 0x00) // SCX
	g.bus.WriteReg(0xFF44, 0x00) // LY
	g.bus.WriteReg(0xFF45, 0x00) // LYC
	g.bus.WriteReg(0xFF46, 0xFF) // DMA (last value, arbitrary)
	g.bus.WriteReg(0xFF47, 0xFC) // BGP
	g.bus.WriteReg(0xFF48, 0xFF) // OBP0
	g.bus.WriteReg(0xFF49, 0xFF) // OBP1
	g.bus.WriteReg(0xFF4A, 0x00) // WY
	g.bus.WriteReg(0xFF4B, 0x00) // WX
	g.bus.WriteReg(0xFF01, 0x00) // SB
	g.bus.WriteReg(0xFF02, 0x7E) // SC
}

// Step executes one slice of work and advances every sub-component by the
// same cycle count: if the CPU is halted, everything advances by 4 cycles;
// otherwise the CPU executes one instruction and everything else advances by
// however many cycles that took.
func (g *GameBoy) Step() error {
	cycles, err := g.cpu.Step()
	if err != nil {
		g.running = false
		return err
	}

	g.ppu.Step(g.bus, cycles)
	g.tmr.Update(cycles)
	g.propagateInterrupts()

	g.lastCycles = cycles
	return nil
}

// propagateInterrupts turns PPU-raised flags into IF bits. The PPU never
// touches interrupts.Service directly -- this is the only place a
// ppu.PPU's V-blank/STAT signals become real interrupts.
func (g *GameBoy) propagateInterrupts() {
	if g.ppu.VBlankRequested {
		g.irq.Request(interrupts.VBlank)
		g.ppu.VBlankRequested = false
	}
	if g.ppu.StatRequested {
		g.irq.Request(interrupts.STAT)
		g.ppu.StatRequested = false
	}
}

// RunFrame steps until CyclesPerFrame machine cycles have accumulated. If
// the accumulated count reaches the watchdog bound first (only possible when
// WithWatchdog has set it below CyclesPerFrame), RunFrame logs a warning and
// returns early; the next RunFrame call resumes from wherever the CPU
// stopped.
func (g *GameBoy) RunFrame() error {
	accumulated := 0
	for accumulated < CyclesPerFrame {
		if err := g.Step(); err != nil {
			return err
		}
		accumulated += int(g.lastCycles)
		if accumulated >= g.watchdog {
			g.log.Warnf("gameboy: frame watchdog triggered after %d cycles", accumulated)
			return nil
		}
	}
	return nil
}

// SetButton updates one button's pressed state.
func (g *GameBoy) SetButton(b joypad.Button, pressed bool) {
	g.jp.Set(b, pressed)
}

// Framebuffer returns a read-only view over the current 160x144 buffer of
// palette indices 0..3.
func (g *GameBoy) Framebuffer() *[ppu.ScreenHeight][ppu.ScreenWidth]uint8 {
	return &g.ppu.Framebuffer
}

// Stats returns a snapshot of the coordinator's current state.
func (g *GameBoy) Stats() Stats {
	return Stats{
		TotalCycles: g.cpu.TotalCycles(),
		CPUCycles:   g.lastCycles,
		LY:          g.bus.Read(0xFF44),
		PPUMode:     ppu.Mode(g.bus.Read(0xFF41) & 0x03),
		Running:     g.running,
	}
}

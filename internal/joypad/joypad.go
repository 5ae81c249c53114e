// Package joypad implements the P1 (0xFF00) register state machine: eight
// button booleans multiplexed onto a 4-bit nibble by two group-select bits.
package joypad

import (
	"github.com/thelolagemann/dmgcore/internal/interrupts"
	"github.com/thelolagemann/dmgcore/pkg/bits"
)

// Button identifies one of the eight physical buttons.
type Button uint8

const (
	Right Button = iota
	Left
	Up
	Down
	A
	B
	Select
	Start
)

// State is the joypad. Pressed buttons are tracked as true; P1's own
// convention is inverted (0 = pressed), which State translates at read time.
type State struct {
	pressed [8]bool

	// selectAction/selectDPad mirror P1 bits 5/4: true means the group is
	// selected (bit clear on the wire, stored here as "selected = true" for
	// readability).
	selectAction bool
	selectDPad   bool

	irq *interrupts.Service
}

// New returns a joypad with no buttons pressed and no group selected.
func New(irq *interrupts.Service) *State {
	return &State{irq: irq}
}

// Read returns the current value of P1: bits 7/6 always 1, bits 5/4 the
// stored group selects, bits 3..0 derived from whichever group(s) are
// selected (both may be selected simultaneously; their nibbles are ANDed, so
// a press in either group reads as 0, matching real hardware's
// open-collector behaviour).
func (s *State) Read() uint8 {
	v := uint8(0xC0)
	if !s.selectAction {
		v = bits.Set(v, 5)
	}
	if !s.selectDPad {
		v = bits.Set(v, 4)
	}

	lo := uint8(0x0F)
	if s.selectDPad {
		lo &= s.dpadNibble()
	}
	if s.selectAction {
		lo &= s.actionNibble()
	}
	return v | lo
}

func (s *State) dpadNibble() uint8 {
	n := uint8(0x0F)
	if s.pressed[Right] {
		n = bits.Reset(n, 0)
	}
	if s.pressed[Left] {
		n = bits.Reset(n, 1)
	}
	if s.pressed[Up] {
		n = bits.Reset(n, 2)
	}
	if s.pressed[Down] {
		n = bits.Reset(n, 3)
	}
	return n
}

func (s *State) actionNibble() uint8 {
	n := uint8(0x0F)
	if s.pressed[A] {
		n = bits.Reset(n, 0)
	}
	if s.pressed[B] {
		n = bits.Reset(n, 1)
	}
	if s.pressed[Select] {
		n = bits.Reset(n, 2)
	}
	if s.pressed[Start] {
		n = bits.Reset(n, 3)
	}
	return n
}

// Write stores the group-select bits (5 and 4); the low nibble is read-only
// from the CPU's perspective and ignored here.
func (s *State) Write(v uint8) {
	s.selectAction = !bits.Test(v, 5)
	s.selectDPad = !bits.Test(v, 4)
}

// Set updates a single button's pressed state. A transition to pressed on
// a bit belonging to a currently-selected group raises the Joypad
// interrupt, matching real hardware.
func (s *State) Set(b Button, pressed bool) {
	wasPressed := s.pressed[b]
	s.pressed[b] = pressed

	if pressed && !wasPressed && s.selects(b) {
		s.irq.Request(interrupts.Joypad)
	}
}

func (s *State) selects(b Button) bool {
	if b <= Down {
		return s.selectDPad
	}
	return s.selectAction
}

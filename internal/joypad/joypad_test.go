package joypad

import (
	"testing"

	"github.com/thelolagemann/dmgcore/internal/interrupts"
)

func TestReadNoGroupSelected(t *testing.T) {
	s := New(interrupts.NewService())
	s.Write(0x30) // both group-select bits set -> neither group selected
	if got := s.Read(); got != 0xFF {
		t.Errorf("Read() = 0x%02X, want 0xFF", got)
	}
}

func TestDPadSelection(t *testing.T) {
	s := New(interrupts.NewService())
	s.Set(Right, true)
	s.Set(Down, true)
	s.Write(0x20) // bit 4 clear -> dpad selected

	got := s.Read()
	if got&0x01 != 0 {
		t.Errorf("Right bit should be 0 (pressed), got 0x%02X", got)
	}
	if got&0x08 != 0 {
		t.Errorf("Down bit should be 0 (pressed), got 0x%02X", got)
	}
	if got&0x02 == 0 {
		t.Errorf("Left bit should be 1 (not pressed), got 0x%02X", got)
	}
}

func TestActionSelection(t *testing.T) {
	s := New(interrupts.NewService())
	s.Set(A, true)
	s.Write(0x10) // bit 5 clear -> action selected

	got := s.Read()
	if got&0x01 != 0 {
		t.Errorf("A bit should be 0 (pressed), got 0x%02X", got)
	}
	if got&0x02 == 0 {
		t.Errorf("B bit should be 1 (not pressed), got 0x%02X", got)
	}
}

func TestJoypadInterruptOnPressWhenGroupSelected(t *testing.T) {
	irq := interrupts.NewService()
	s := New(irq)
	s.Write(0x20) // dpad selected
	s.Set(Up, true)
	if irq.ReadIF()&0x10 == 0 {
		t.Error("expected Joypad IF bit set on press while dpad selected")
	}
}

func TestNoJoypadInterruptWhenGroupNotSelected(t *testing.T) {
	irq := interrupts.NewService()
	s := New(irq)
	s.Write(0x30) // neither group selected
	s.Set(Up, true)
	if irq.ReadIF()&0x10 != 0 {
		t.Error("expected no Joypad interrupt when dpad group is not selected")
	}
}

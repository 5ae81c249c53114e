package ppu

import "testing"

func TestSpritePartiallyAboveTopIsStillVisibleAt8x16(t *testing.T) {
	p := New()
	mem := newTestMem()
	mem.b[0xFF40] = 0x06 // OBJ enable, 8x16 size, BG/window off
	mem.b[0xFF48] = 0xE4 // OBP0 identity mapping

	mem.b[0xFE00] = 15 // Y byte 15 -> true top at y = -1
	mem.b[0xFE01] = 8  // X byte 8 -> true left at x = 0
	mem.b[0xFE02] = 0  // tile 0
	mem.b[0xFE03] = 0  // no flip, OBP0

	// Row 1 of tile 0 (ly 0 maps to tile row 0-(-1)=1), all columns set.
	mem.b[0x8002] = 0xFF
	mem.b[0x8003] = 0x00

	p.renderLine(mem, 0)

	for x := 0; x < 8; x++ {
		if got := p.Framebuffer[0][x]; got != 1 {
			t.Errorf("Framebuffer[0][%d] = %d, want 1", x, got)
		}
	}
}

func TestSpriteFullyAboveTopIsExcluded(t *testing.T) {
	p := New()
	mem := newTestMem()
	mem.b[0xFF40] = 0x02 // OBJ enable, 8x8 size, BG/window off
	mem.b[0xFF48] = 0xE4

	mem.b[0xFE00] = 0 // Y byte 0 -> true top at y = -16, bottom at y = -9
	mem.b[0xFE01] = 8
	mem.b[0xFE02] = 0
	mem.b[0xFE03] = 0

	mem.b[0x8000] = 0xFF
	mem.b[0x8001] = 0x00

	p.renderLine(mem, 0)

	for x := 0; x < 8; x++ {
		if got := p.Framebuffer[0][x]; got != 0 {
			t.Errorf("Framebuffer[0][%d] = %d, want 0 (sprite should not be visible)", x, got)
		}
	}
}

func TestRenderBackgroundSamplesTileMapAndScroll(t *testing.T) {
	p := New()
	mem := newTestMem()
	mem.b[0xFF40] = 0x11 // BG enable, unsigned tile data at 0x8000, tile map at 0x9800
	mem.b[0xFF42] = 0    // SCY
	mem.b[0xFF43] = 0    // SCX
	mem.b[0xFF47] = 0xE4 // BGP identity mapping

	mem.b[0x9800] = 1 // tile index 1 for the first tile column
	mem.b[0x8010] = 0xFF
	mem.b[0x8011] = 0x00

	p.renderLine(mem, 0)

	for x := 0; x < 8; x++ {
		if got := p.Framebuffer[0][x]; got != 1 {
			t.Errorf("Framebuffer[0][%d] = %d, want 1", x, got)
		}
	}
}

func TestRenderWindowOverlaysBackgroundWhenInBounds(t *testing.T) {
	p := New()
	mem := newTestMem()
	mem.b[0xFF40] = 0x31 // BG enable, window enable, unsigned tile data at 0x8000
	mem.b[0xFF47] = 0xE4
	mem.b[0xFF4A] = 0 // WY: window active from ly 0
	mem.b[0xFF4B] = 7 // WX: window starts at screen column 0

	// Background tile (all colour 0) underneath the window.
	mem.b[0x9800] = 0

	// Window tile, colour 2 everywhere.
	mem.b[0x9C00] = 2
	mem.b[0x8020] = 0x00
	mem.b[0x8021] = 0xFF

	mem.b[0xFF40] |= 0x40 // window map at 0x9C00 instead of 0x9800

	p.renderLine(mem, 0)

	if got := p.Framebuffer[0][0]; got != 2 {
		t.Errorf("Framebuffer[0][0] = %d, want 2 (window overlay)", got)
	}
}

func TestOverlappingSpritesLowestXWins(t *testing.T) {
	p := New()
	mem := newTestMem()
	mem.b[0xFF40] = 0x02 // OBJ enable, 8x8 size, BG/window off
	mem.b[0xFF48] = 0xE4 // OBP0 identity mapping

	// OAM index 0: true x = 5, tile 0 (colour 1 everywhere).
	mem.b[0xFE00] = 16
	mem.b[0xFE01] = 13
	mem.b[0xFE02] = 0
	mem.b[0xFE03] = 0

	// OAM index 1: true x = 10, tile 1 (colour 2 everywhere). Columns
	// 10-12 overlap index 0's sprite at columns 5-12.
	mem.b[0xFE04] = 16
	mem.b[0xFE05] = 18
	mem.b[0xFE06] = 1
	mem.b[0xFE07] = 0

	mem.b[0x8000] = 0xFF
	mem.b[0x8001] = 0x00
	mem.b[0x8010] = 0x00
	mem.b[0x8011] = 0xFF

	p.renderLine(mem, 0)

	for x := 10; x <= 12; x++ {
		if got := p.Framebuffer[0][x]; got != 1 {
			t.Errorf("Framebuffer[0][%d] = %d, want 1 (OAM index 0, lower X, should be on top)", x, got)
		}
	}
	for x := 13; x <= 17; x++ {
		if got := p.Framebuffer[0][x]; got != 2 {
			t.Errorf("Framebuffer[0][%d] = %d, want 2 (only OAM index 1 covers this column)", x, got)
		}
	}
}

func TestSpriteBehindBackgroundUsesRawColorIDNotShade(t *testing.T) {
	p := New()
	mem := newTestMem()
	mem.b[0xFF40] = 0x13 // BG enable, OBJ enable, unsigned tile data, 8x8
	mem.b[0xFF47] = 0x01 // BGP: colour 0 -> shade 1 (non-identity)
	mem.b[0xFF48] = 0x08 // OBP0: colour 1 -> shade 2

	// Background tile 0 is entirely raw colour 0 (transparent), even though
	// BGP maps that to the non-zero shade 1.
	mem.b[0x9800] = 0
	mem.b[0x8000] = 0x00
	mem.b[0x8001] = 0x00

	// Sprite behind the background (attribute bit 7 set), raw colour 1
	// everywhere.
	mem.b[0xFE00] = 16
	mem.b[0xFE01] = 8
	mem.b[0xFE02] = 1
	mem.b[0xFE03] = 0x80
	mem.b[0x8010] = 0xFF
	mem.b[0x8011] = 0x00

	p.renderLine(mem, 0)

	for x := 0; x < 8; x++ {
		if got := p.Framebuffer[0][x]; got != 2 {
			t.Errorf("Framebuffer[0][%d] = %d, want 2 (sprite should show through a transparent-but-shaded background)", x, got)
		}
	}
}

func TestTileDataAddrSignedModeWrapsAroundZero(t *testing.T) {
	if got := tileDataAddr(0x00, 0); got != 0x9000 {
		t.Errorf("tileDataAddr(signed, 0) = 0x%04X, want 0x9000", got)
	}
	if got := tileDataAddr(0x00, 0x80); got != 0x8800 {
		t.Errorf("tileDataAddr(signed, -128) = 0x%04X, want 0x8800", got)
	}
	if got := tileDataAddr(0x00, 0xFF); got != 0x8FF0 {
		t.Errorf("tileDataAddr(signed, -1) = 0x%04X, want 0x8FF0", got)
	}
}

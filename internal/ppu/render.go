package ppu

import "github.com/thelolagemann/dmgcore/pkg/bits"

// renderLine composites background, window and sprites for scanline ly in
// one pass: no per-dot FIFO, just one BG/window sample and one sprite sample
// per pixel column.
func (p *PPU) renderLine(mem Memory, ly uint8) {
	lcdc := mem.Read(0xFF40)
	bgp := mem.Read(0xFF47)

	// bgColorID holds the raw, pre-palette 2-bit background colour id for
	// each column; renderSprites needs this (not the BGP-mapped shade) to
	// decide OBJ-to-BG priority, since BGP can map colour 0 to a non-zero
	// shade.
	var bgColorID [ScreenWidth]uint8
	var bgColor [ScreenWidth]uint8
	if lcdc&0x01 != 0 {
		p.renderBackground(mem, ly, lcdc, bgp, &bgColorID, &bgColor)
	}
	if lcdc&0x20 != 0 {
		p.renderWindow(mem, ly, lcdc, bgp, &bgColorID, &bgColor)
	}
	for x := 0; x < ScreenWidth; x++ {
		p.Framebuffer[ly][x] = bgColor[x]
	}
	if lcdc&0x02 != 0 {
		p.renderSprites(mem, ly, lcdc, &bgColorID)
	}
}

// renderBackground samples the background tile map/data for scanline ly,
// writing the raw colour id into idOut and the palette-applied shade into
// out.
func (p *PPU) renderBackground(mem Memory, ly, lcdc, bgp uint8, idOut, out *[ScreenWidth]uint8) {
	scy := mem.Read(0xFF42)
	scx := mem.Read(0xFF43)

	mapBase := uint16(0x9800)
	if lcdc&0x08 != 0 {
		mapBase = 0x9C00
	}

	y := ly + scy
	tileRow := uint16(y/8) * 32
	fineY := y % 8

	for x := 0; x < ScreenWidth; x++ {
		px := uint8(x) + scx
		tileCol := uint16(px / 8)
		fineX := px % 8

		tileIdx := mem.Read(mapBase + tileRow + tileCol)
		tileAddr := tileDataAddr(lcdc, tileIdx)
		lo := mem.Read(tileAddr + uint16(fineY)*2)
		hi := mem.Read(tileAddr + uint16(fineY)*2 + 1)

		colorID := pixelColorID(lo, hi, fineX)
		idOut[x] = colorID
		out[x] = applyPalette(bgp, colorID)
	}
}

// renderWindow overlays the window layer wherever it is visible on this
// scanline, per the LCDC bit 5 enable and WY/WX positioning.
func (p *PPU) renderWindow(mem Memory, ly, lcdc, bgp uint8, idOut, out *[ScreenWidth]uint8) {
	wy := mem.Read(0xFF4A)
	wx := mem.Read(0xFF4B)
	if ly < wy {
		return
	}
	if wx > 166 {
		return
	}

	mapBase := uint16(0x9800)
	if lcdc&0x40 != 0 {
		mapBase = 0x9C00
	}

	winY := ly - wy
	tileRow := uint16(winY/8) * 32
	fineY := winY % 8

	startX := int(wx) - 7
	for x := 0; x < ScreenWidth; x++ {
		if x < startX {
			continue
		}
		winX := uint8(x - startX)
		tileCol := uint16(winX / 8)
		fineX := winX % 8

		tileIdx := mem.Read(mapBase + tileRow + tileCol)
		tileAddr := tileDataAddr(lcdc, tileIdx)
		lo := mem.Read(tileAddr + uint16(fineY)*2)
		hi := mem.Read(tileAddr + uint16(fineY)*2 + 1)

		colorID := pixelColorID(lo, hi, fineX)
		idOut[x] = colorID
		out[x] = applyPalette(bgp, colorID)
	}
}

// spriteAttr mirrors one 4-byte OAM entry. y and x are stored with their
// -16/-8 screen-space offsets already applied, as plain ints so they can go
// negative without uint8 wraparound corrupting the visibility/position math.
type spriteAttr struct {
	y, x        int
	tile, flags uint8
	oamIndex    int
}

// renderSprites selects up to 10 sprites intersecting ly (in OAM order,
// ties broken by X then OAM index, matching DMG hardware priority) and
// draws them over the background/window composite already in Framebuffer.
// bgColorID is the raw, pre-palette background colour id per column, used
// for the OBJ-to-BG priority check (attribute bit 7) -- the paletted shade
// in Framebuffer is not a reliable stand-in, since BGP can map colour 0 to
// a non-zero shade.
func (p *PPU) renderSprites(mem Memory, ly, lcdc uint8, bgColorID *[ScreenWidth]uint8) {
	height := 8
	if lcdc&0x04 != 0 {
		height = 16
	}

	var visible []spriteAttr
	for i := 0; i < 40 && len(visible) < 10; i++ {
		base := uint16(0xFE00 + i*4)
		sy := int(mem.Read(base)) - 16
		if int(ly) < sy || int(ly) >= sy+height {
			continue
		}
		visible = append(visible, spriteAttr{
			y:        sy,
			x:        int(mem.Read(base+1)) - 8,
			tile:     mem.Read(base + 2),
			flags:    mem.Read(base + 3),
			oamIndex: i,
		})
	}

	obp0 := mem.Read(0xFF48)
	obp1 := mem.Read(0xFF49)

	// Sort ascending by priority (visible[0] highest: lowest X, ties broken
	// by lowest OAM index), then draw back to front so the highest-priority
	// sprite is painted last and ends up on top, matching DMG sprite
	// priority.
	for i := len(visible) - 1; i >= 0; i-- {
		for j := 0; j < i; j++ {
			if higherPriority(visible[j+1], visible[j]) {
				visible[j], visible[j+1] = visible[j+1], visible[j]
			}
		}
	}

	for i := len(visible) - 1; i >= 0; i-- {
		s := visible[i]
		row := int(ly) - s.y
		if s.flags&0x40 != 0 {
			row = height - 1 - row
		}
		tile := s.tile
		if height == 16 {
			tile &^= 0x01
		}
		tileAddr := 0x8000 + uint16(tile)*16
		lo := mem.Read(tileAddr + uint16(row)*2)
		hi := mem.Read(tileAddr + uint16(row)*2 + 1)

		palette := obp0
		if s.flags&0x10 != 0 {
			palette = obp1
		}
		behindBG := s.flags&0x80 != 0

		for col := 0; col < 8; col++ {
			fineX := col
			if s.flags&0x20 != 0 {
				fineX = 7 - col
			}
			x := s.x + col
			if x < 0 || x >= ScreenWidth {
				continue
			}
			colorID := pixelColorID(lo, hi, uint8(fineX))
			if colorID == 0 {
				continue // sprite colour 0 is always transparent
			}
			if behindBG && bgColorID[x] != 0 {
				continue
			}
			p.Framebuffer[ly][x] = applyPalette(palette, colorID)
		}
	}
}

// higherPriority reports whether a takes priority over b (and so is drawn
// after it, ending up on top) under DMG's "lowest X wins, ties broken by OAM
// index" sprite ordering.
func higherPriority(a, b spriteAttr) bool {
	if a.x != b.x {
		return a.x < b.x
	}
	return a.oamIndex < b.oamIndex
}

// tileDataAddr resolves a background/window tile index to its tile-data
// address under LCDC bit 4's two addressing modes: unsigned from 0x8000, or
// signed from 0x9000.
func tileDataAddr(lcdc, tileIdx uint8) uint16 {
	if lcdc&0x10 != 0 {
		return 0x8000 + uint16(tileIdx)*16
	}
	return uint16(0x9000 + int(int8(tileIdx))*16)
}

// pixelColorID extracts the 2-bit colour ID for column fineX (0 = leftmost)
// from a tile row's two bitplane bytes.
func pixelColorID(lo, hi uint8, fineX uint8) uint8 {
	bit := 7 - fineX
	loBit := uint8(0)
	if bits.Test(lo, bit) {
		loBit = 1
	}
	hiBit := uint8(0)
	if bits.Test(hi, bit) {
		hiBit = 1
	}
	return hiBit<<1 | loBit
}

// applyPalette maps a 2-bit colour ID through a BGP/OBP palette byte to a
// 2-bit shade.
func applyPalette(palette, colorID uint8) uint8 {
	return (palette >> (colorID * 2)) & 0x03
}

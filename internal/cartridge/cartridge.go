// Package cartridge parses and validates the 32 KiB no-MBC ROM image this
// core is built to run. Banking (MBC1+) is out of scope; New rejects
// anything the header claims otherwise.
package cartridge

import "fmt"

const (
	romSize = 0x8000 // 32 KiB

	logoOffset  = 0x0104
	titleOffset = 0x0134
	titleLen    = 16
	typeOffset  = 0x0147
	sizeOffset  = 0x0148
)

// RomLoadError reports why a ROM image was rejected at load time. It is
// fatal to the load attempt but not to the process: the host surfaces it
// and may try again with a different image.
type RomLoadError struct {
	Reason string
}

func (e *RomLoadError) Error() string {
	return fmt.Sprintf("rom load error: %s", e.Reason)
}

// Cartridge is a validated, zero-padded 32 KiB ROM image with its header
// fields pulled out for inspection.
type Cartridge struct {
	ROM   [romSize]byte
	Title string
}

// New validates rom's header and returns a Cartridge wrapping a zero-padded
// 32 KiB copy. It never mutates rom.
func New(rom []byte) (*Cartridge, error) {
	if len(rom) > romSize {
		return nil, &RomLoadError{Reason: fmt.Sprintf("rom is %d bytes, exceeds 32768 byte limit", len(rom))}
	}
	if len(rom) < sizeOffset+1 {
		return nil, &RomLoadError{Reason: "rom is too short to contain a header"}
	}

	if rom[logoOffset] != 0xCE {
		return nil, &RomLoadError{Reason: "invalid Nintendo logo header"}
	}
	if rom[typeOffset] != 0x00 {
		return nil, &RomLoadError{Reason: fmt.Sprintf("unsupported cartridge type 0x%02X, only ROM-only (0x00) is supported", rom[typeOffset])}
	}
	if rom[sizeOffset] != 0x00 {
		return nil, &RomLoadError{Reason: fmt.Sprintf("unsupported rom size code 0x%02X, only 32 KiB (0x00) is supported", rom[sizeOffset])}
	}

	c := &Cartridge{}
	copy(c.ROM[:], rom)
	c.Title = parseTitle(c.ROM[titleOffset : titleOffset+titleLen])

	return c, nil
}

func parseTitle(b []byte) string {
	n := len(b)
	for n > 0 && b[n-1] == 0 {
		n--
	}
	return string(b[:n])
}

// Read returns the byte at addr, which must be in 0x0000..0x7FFF.
func (c *Cartridge) Read(addr uint16) uint8 {
	return c.ROM[addr]
}

// Command dmgcore is a headless harness for the core: it loads a ROM, runs
// it frame by frame, and periodically logs gameboy.Stats. It exists to
// exercise the core, not to play it -- there is no display output beyond an
// optional framebuffer dump.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/thelolagemann/dmgcore/internal/gameboy"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

func main() {
	romPath := flag.String("rom", "", "path to a 32 KiB ROM-only cartridge image")
	frames := flag.Int("frames", 60, "number of frames to run")
	dumpPath := flag.String("dump", "", "if set, write the final framebuffer to this path as a PGM image")
	statEvery := flag.Int("stat-every", 30, "log a stats snapshot every N frames")
	flag.Parse()

	if *romPath == "" {
		fmt.Fprintln(os.Stderr, "dmgcore: -rom is required")
		os.Exit(2)
	}

	logger := log.New()

	rom, err := os.ReadFile(*romPath)
	if err != nil {
		logger.Errorf("dmgcore: reading rom: %v", err)
		os.Exit(1)
	}

	gb := gameboy.New(gameboy.WithLogger(logger))
	if err := gb.LoadRom(rom); err != nil {
		logger.Errorf("dmgcore: loading rom: %v", err)
		os.Exit(1)
	}

	for frame := 0; frame < *frames; frame++ {
		if err := gb.RunFrame(); err != nil {
			logger.Errorf("dmgcore: frame %d: %v", frame, err)
			os.Exit(1)
		}
		if *statEvery > 0 && frame%*statEvery == 0 {
			s := gb.Stats()
			logger.Infof("frame=%d total_cycles=%d cpu_cycles=%d ly=%d ppu_mode=%d running=%t",
				frame, s.TotalCycles, s.CPUCycles, s.LY, s.PPUMode, s.Running)
		}
	}

	if *dumpPath != "" {
		if err := dumpPGM(*dumpPath, gb.Framebuffer()); err != nil {
			logger.Errorf("dmgcore: dumping framebuffer: %v", err)
			os.Exit(1)
		}
	}
}

// shades maps the four DMG palette indices to a greyscale PGM sample,
// darkest index last (matching the classic olive-green panel's visual
// ordering closely enough for a debug dump).
var shades = [4]byte{255, 170, 85, 0}

func dumpPGM(path string, fb *[144][160]uint8) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "P5\n160 144\n255\n"); err != nil {
		return err
	}
	buf := make([]byte, 160)
	for y := 0; y < 144; y++ {
		for x := 0; x < 160; x++ {
			buf[x] = shades[fb[y][x]&0x03]
		}
		if _, err := f.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

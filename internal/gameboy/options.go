package gameboy

import "github.com/thelolagemann/dmgcore/pkg/log"

// GameBoyOpt configures a GameBoy at construction time.
type GameBoyOpt func(*GameBoy)

// WithLogger overrides the default null logger.
func WithLogger(l log.Logger) GameBoyOpt {
	return func(g *GameBoy) { g.log = l }
}

// WithWatchdog overrides the frame-loop safety bound. It defaults to
// 2*CyclesPerFrame; tests that want a tighter bound (to assert the timeout
// actually fires) can set it lower.
func WithWatchdog(cycles int) GameBoyOpt {
	return func(g *GameBoy) { g.watchdog = cycles }
}

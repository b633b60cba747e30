package systems

import "github.com/hajimehoshi/ebiten/v2"

// TickDeltaMS returns the wall-clock milliseconds one update tick covers.
// Ebiten runs updates at a fixed TPS, so this is constant at runtime.
func TickDeltaMS() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = 60
	}
	return 1000.0 / float64(tps)
}

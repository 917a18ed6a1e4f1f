package game

import "image/color"

// State is the presentation state of the manager.
type State int

const (
	// StatePlaying steps the simulation every frame.
	StatePlaying State = iota
	// StateGameOver shows the final score and waits for the player to continue.
	// The simulation has already reset; it is just not stepped.
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Palette colours for the draw routine.
var (
	ColorBackground = color.RGBA{0x33, 0x33, 0x33, 0xff}
	ColorPlayerBody = color.RGBA{0x4a, 0x90, 0xe2, 0xff}
	ColorPlayerLegs = color.RGBA{0x2c, 0x3e, 0x50, 0xff}
	ColorTargetBody = color.RGBA{0xe7, 0x4c, 0x3c, 0xff}
	ColorTargetLegs = color.RGBA{0xc0, 0x39, 0x2b, 0xff}
	ColorGun        = color.RGBA{0x33, 0x33, 0x33, 0xff}
	ColorBullet     = color.RGBA{0xff, 0xff, 0x00, 0xff}
	ColorText       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColorBanner     = color.RGBA{0x00, 0x00, 0x00, 0xc0}
)

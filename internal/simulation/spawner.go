package simulation

import "math/rand"

// Edge identifies a side of the playfield.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// Spawner introduces targets just outside a random playfield edge.
type Spawner struct {
	Chance float64 // Probability of a spawn per tick
	rng    *rand.Rand
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(chance float64, rng *rand.Rand) *Spawner {
	return &Spawner{Chance: chance, rng: rng}
}

// Tick rolls once and, on success, adds one target to w. It reports whether
// a target was spawned.
func (sp *Spawner) Tick(w *World) bool {
	if sp.Chance <= 0 || sp.rng.Float64() >= sp.Chance {
		return false
	}
	w.Store.AddTarget(sp.newTarget(w))
	return true
}

func (sp *Spawner) newTarget(w *World) *Target {
	cfg := w.Config
	width, height := cfg.Playfield.Width, cfg.Playfield.Height
	off := cfg.Target.Size

	var pos Point
	switch Edge(sp.rng.Intn(4)) {
	case EdgeTop:
		pos = Point{X: sp.rng.Float64() * width, Y: -off}
	case EdgeRight:
		pos = Point{X: width + off, Y: sp.rng.Float64() * height}
	case EdgeBottom:
		pos = Point{X: sp.rng.Float64() * width, Y: height + off}
	case EdgeLeft:
		pos = Point{X: -off, Y: sp.rng.Float64() * height}
	}

	return &Target{
		ID:     w.Store.NewID(),
		Pos:    pos,
		Size:   cfg.Target.Size,
		Speed:  cfg.Target.Speed,
		Facing: FacingRight,
	}
}

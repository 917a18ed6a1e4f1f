package game

import (
	"chosenoffset.com/targetrush/internal/simulation"
)

// Autopilot plays the game by itself for headless runs: it fires at the
// nearest target on a fixed cadence and walks away from it.
type Autopilot struct {
	FireEvery int     // Ticks between shots
	Flee      float64 // Start backing off inside this distance
}

// NewAutopilot returns an autopilot with a reasonable cadence.
func NewAutopilot() *Autopilot {
	return &Autopilot{FireEvery: 8, Flee: 150}
}

// Drive feeds one tick worth of events into in.
func (a *Autopilot) Drive(w *simulation.World, in *simulation.Input) {
	in.Release()

	nearest, ok := nearestTarget(w)
	if !ok {
		return
	}

	if a.FireEvery > 0 && w.Tick%int64(a.FireEvery) == 0 {
		in.Click(nearest.Pos.X, nearest.Pos.Y)
	}

	p := w.Player.Pos
	if p.Dist(nearest.Pos) > a.Flee {
		return
	}
	if nearest.Pos.X > p.X {
		in.KeyDown("a")
	} else {
		in.KeyDown("d")
	}
	if nearest.Pos.Y > p.Y {
		in.KeyDown("w")
	} else {
		in.KeyDown("s")
	}
}

func nearestTarget(w *simulation.World) (simulation.Target, bool) {
	var (
		best  simulation.Target
		bestD float64
		found bool
	)
	for _, t := range w.Store.Targets() {
		d := w.Player.Pos.Dist(t.Pos)
		if !found || d < bestD {
			best, bestD, found = *t, d, true
		}
	}
	return best, found
}

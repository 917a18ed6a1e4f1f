package simulation

// Snapshot is an immutable copy of the world for rendering.
// Uses value types (not pointers) so a renderer never sees a tick in progress.
type Snapshot struct {
	Width, Height float64
	Player        Player
	Bullets       []Bullet
	Targets       []Target
	Score         int
	Tick          int64
}

// Snapshot copies the current world state.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Width:   w.Config.Playfield.Width,
		Height:  w.Config.Playfield.Height,
		Player:  w.Player,
		Bullets: make([]Bullet, 0, w.Store.LenBullets()),
		Targets: make([]Target, 0, w.Store.LenTargets()),
		Score:   w.Score,
		Tick:    w.Tick,
	}
	for _, b := range w.Store.Bullets() {
		snap.Bullets = append(snap.Bullets, *b)
	}
	for _, t := range w.Store.Targets() {
		snap.Targets = append(snap.Targets, *t)
	}
	return snap
}

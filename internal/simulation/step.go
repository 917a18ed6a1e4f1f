package simulation

import "math"

// Outcome tags the result of a tick.
type Outcome int

const (
	Continue Outcome = iota
	GameOver
)

func (o Outcome) String() string {
	if o == GameOver {
		return "game over"
	}
	return "continue"
}

// Result is what a tick hands back to the driver. On GameOver the world has
// already been reset and FinalScore holds the score at the moment of death.
type Result struct {
	Outcome    Outcome
	FinalScore int
	Tick       int64
}

// Step advances the world by one tick using the input sampled since the last
// tick.
func Step(w *World, in *Input) Result {
	w.Tick++

	for _, click := range in.Drain() {
		w.Fire(click.X, click.Y)
	}

	movePlayer(w, in)
	moveBullets(w)

	if final, over := moveTargets(w); over {
		w.Reset()
		return Result{Outcome: GameOver, FinalScore: final, Tick: w.Tick}
	}

	if w.Spawner != nil {
		w.Spawner.Tick(w)
	}

	return Result{Outcome: Continue, Tick: w.Tick}
}

// movePlayer applies each held key on its own axis. Diagonals are not
// normalised, so two keys move faster than one.
func movePlayer(w *World, in *Input) {
	p := &w.Player
	width, height := w.Config.Playfield.Width, w.Config.Playfield.Height

	if in.Held(KeyUp) {
		p.Pos.Y = math.Max(p.Pos.Y-p.Speed, p.Size*2)
	}
	if in.Held(KeyDown) {
		p.Pos.Y = math.Min(p.Pos.Y+p.Speed, height-p.Size)
	}
	if in.Held(KeyLeft) {
		p.Pos.X = math.Max(p.Pos.X-p.Speed, p.Size)
		p.Facing = FacingLeft
	}
	if in.Held(KeyRight) {
		p.Pos.X = math.Min(p.Pos.X+p.Speed, width-p.Size)
		p.Facing = FacingRight
	}
}

func moveBullets(w *World) {
	bullets := w.Store.Bullets()
	for i := len(bullets) - 1; i >= 0; i-- {
		b := bullets[i]
		b.Pos.X += b.DX * b.Speed
		b.Pos.Y += b.DY * b.Speed
		if !w.InBounds(b.Pos) {
			w.Store.RemoveBullet(b.ID)
		}
	}
}

// moveTargets steers every target at the player and resolves collisions.
// It returns the final score and true as soon as a target reaches the
// player; the remaining targets are left untouched.
func moveTargets(w *World) (int, bool) {
	player := w.Player
	touch := player.Size * w.Config.Collision.PlayerRadiusFactor

	targets := w.Store.Targets()
	for i := len(targets) - 1; i >= 0; i-- {
		t := targets[i]
		dx := player.Pos.X - t.Pos.X
		dy := player.Pos.Y - t.Pos.Y
		dist := math.Hypot(dx, dy)

		t.Facing = facingToward(dx)

		// Checked before the move so a target sitting on the player never
		// gets normalised by a zero distance.
		if dist < touch {
			return w.Score, true
		}
		if dist > 0 {
			t.Pos.X += dx / dist * t.Speed
			t.Pos.Y += dy / dist * t.Speed
		}

		hitBullet(w, t)
	}
	return 0, false
}

// hitBullet removes t and the first bullet within range of it. At most one
// bullet is spent per target.
func hitBullet(w *World, t *Target) bool {
	hit := t.Size * w.Config.Collision.BulletRadiusFactor

	bullets := w.Store.Bullets()
	for j := len(bullets) - 1; j >= 0; j-- {
		b := bullets[j]
		if b.Pos.Dist(t.Pos) < hit {
			w.Store.RemoveTarget(t.ID)
			w.Store.RemoveBullet(b.ID)
			w.addScore(w.Config.Scoring.KillPoints)
			return true
		}
	}
	return false
}

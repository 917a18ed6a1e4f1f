package simulation

import "math"

// World is the whole simulation context: tunables, the player, the entity
// store and the score. The driver owns it and passes it to Step each tick.
type World struct {
	Config  *Config
	Player  Player
	Store   Store
	Spawner *Spawner
	Score   int
	Tick    int64

	// OnScore is called with the new score whenever it changes or is reset.
	OnScore func(score int)
}

// NewWorld creates a world in its reset state.
func NewWorld(cfg *Config, spawner *Spawner) *World {
	w := &World{
		Config:  cfg,
		Spawner: spawner,
		Player: Player{
			Size:  cfg.Player.Size,
			Speed: cfg.Player.Speed,
		},
	}
	w.Reset()
	return w
}

// Reset recentres the player, clears every bullet and target and zeroes
// the score. Calling it again from a reset state changes nothing.
func (w *World) Reset() {
	w.Player.Pos = Point{X: w.Config.Playfield.Width / 2, Y: w.Config.Playfield.Height / 2}
	w.Player.Facing = FacingRight
	w.Store.Clear()
	w.Score = 0
	w.notifyScore()
}

// Fire spawns one bullet from the gun muzzle toward (x, y) and turns the
// player to face the click.
func (w *World) Fire(x, y float64) *Bullet {
	p := &w.Player
	p.Facing = facingToward(x - p.Pos.X)

	angle := math.Atan2(y-p.Pos.Y, x-p.Pos.X)
	b := &Bullet{
		ID: w.Store.NewID(),
		Pos: Point{
			X: p.Pos.X + p.Facing.Sign()*w.Config.Player.MuzzleOffsetX,
			Y: p.Pos.Y + w.Config.Player.MuzzleOffsetY,
		},
		DX:    math.Cos(angle),
		DY:    math.Sin(angle),
		Speed: w.Config.Bullet.Speed,
		Size:  w.Config.Bullet.Size,
	}
	w.Store.AddBullet(b)
	return b
}

// InBounds reports whether p lies inside the playfield, edges included.
func (w *World) InBounds(p Point) bool {
	return p.X >= 0 && p.X <= w.Config.Playfield.Width &&
		p.Y >= 0 && p.Y <= w.Config.Playfield.Height
}

func (w *World) addScore(points int) {
	w.Score += points
	w.notifyScore()
}

func (w *World) notifyScore() {
	if w.OnScore != nil {
		w.OnScore(w.Score)
	}
}

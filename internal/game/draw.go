package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/targetrush/internal/render"
	"chosenoffset.com/targetrush/internal/simulation"
)

// DrawFrame renders one frame of snap onto screen. It makes no game
// decisions and reads nothing but the snapshot.
func DrawFrame(r render.Renderer, screen render.Image, snap simulation.Snapshot) {
	screen.Fill(ColorBackground)

	p := snap.Player
	drawCharacter(r, screen, p.Pos, p.Size, true, p.Facing)

	for _, t := range snap.Targets {
		drawCharacter(r, screen, t.Pos, t.Size, false, t.Facing)
	}

	for _, b := range snap.Bullets {
		r.FillCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Size), ColorBullet)
	}
}

// drawCharacter draws a body, a head and two legs centred on pos. The
// player also gets a gun on its facing side.
func drawCharacter(r render.Renderer, screen render.Image, pos simulation.Point, size float64, isPlayer bool, facing simulation.Facing) {
	x, y := pos.X, pos.Y
	body, legs := ColorTargetBody, ColorTargetLegs
	if isPlayer {
		body, legs = ColorPlayerBody, ColorPlayerLegs
	}

	// Body and head
	fillRect(r, screen, x-size/2, y-size, size, size*2, body)
	r.FillCircle(screen, float32(x), float32(y-size-size/4), float32(size/2), body)

	if isPlayer {
		dir := facing.Sign()
		fillRect(r, screen, x+dir*size/2, y-size/4, dir*size, size/4, ColorGun)
	}

	// Legs
	fillRect(r, screen, x-size/2, y+size, size/3, size/2, legs)
	fillRect(r, screen, x+size/6, y+size, size/3, size/2, legs)
}

// fillRect accepts a negative width or height, as the gun does when facing left.
func fillRect(r render.Renderer, screen render.Image, x, y, w, h float64, clr color.Color) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	r.FillRect(screen, float32(x), float32(y), float32(w), float32(h), clr)
}

func (g *Game) drawHUD(screen render.Image) {
	g.Renderer.DrawText(screen, g.ScoreText, 10, 10, ColorText)
}

func (m *Manager) drawGameOver(screen render.Image) {
	r := m.Game.Renderer
	w, h := screen.Size()

	r.FillRect(screen, 0, float32(h)/2-40, float32(w), 80, ColorBanner)

	title := fmt.Sprintf("Game Over! Final Score: %d", m.FinalScore)
	hint := "Click or press Enter to play again"
	tw, th := r.MeasureText(title)
	hw, _ := r.MeasureText(hint)
	r.DrawText(screen, title, (w-tw)/2, h/2-th-4, ColorText)
	r.DrawText(screen, hint, (w-hw)/2, h/2+4, ColorText)
}

package game

import (
	"fmt"

	"chosenoffset.com/targetrush/internal/render"
	"chosenoffset.com/targetrush/internal/simulation"
)

// Game holds the simulation and the per-frame input pump.
type Game struct {
	World    *simulation.World
	Input    *simulation.Input
	Renderer render.Renderer
	InputMgr render.InputManager

	// ScoreText is the score display, refreshed through World.OnScore.
	ScoreText string

	// Debug
	FrameCount int
}

// NewGame wires a world to its renderer and input backend.
func NewGame(world *simulation.World, r render.Renderer, input render.InputManager) *Game {
	g := &Game{
		World:    world,
		Input:    simulation.NewInput(),
		Renderer: r,
		InputMgr: input,
	}
	world.OnScore = g.setScore
	g.setScore(world.Score)
	return g
}

func (g *Game) setScore(score int) {
	g.ScoreText = fmt.Sprintf("Score: %d", score)
}

// PollInput forwards this frame's raw events to the input state.
func (g *Game) PollInput() {
	if g.InputMgr == nil {
		return
	}
	if !g.InputMgr.IsFocused() {
		g.Input.Release()
		return
	}

	for _, name := range g.InputMgr.JustPressedKeys() {
		g.Input.KeyDown(name)
	}
	for _, name := range g.InputMgr.JustReleasedKeys() {
		g.Input.KeyUp(name)
	}
	if g.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		x, y := g.InputMgr.GetCursorPosition()
		g.Input.Click(float64(x), float64(y))
	}
}

// Update polls input and advances the simulation one tick.
func (g *Game) Update() simulation.Result {
	g.FrameCount++
	g.PollInput()
	return simulation.Step(g.World, g.Input)
}

// Draw renders the world and the score display.
func (g *Game) Draw(screen render.Image) {
	DrawFrame(g.Renderer, screen, g.World.Snapshot())
	g.drawHUD(screen)
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.World.Config.Playfield.Width), int(g.World.Config.Playfield.Height)
}

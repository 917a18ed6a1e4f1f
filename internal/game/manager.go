package game

import (
	"log"

	"chosenoffset.com/targetrush/internal/render"
	"chosenoffset.com/targetrush/internal/simulation"
)

// Manager handles the overall game state: playing, and the game over banner.
type Manager struct {
	State      State
	Game       *Game
	InputMgr   render.InputManager
	FinalScore int
	Runs       int

	// OnGameOver, if set, is called once per lost run with the final score.
	OnGameOver func(finalScore int)
}

// NewManager creates a new game manager.
func NewManager(world *simulation.World, r render.Renderer, input render.InputManager) *Manager {
	return &Manager{
		State:    StatePlaying,
		Game:     NewGame(world, r, input),
		InputMgr: input,
	}
}

// Update updates the game state.
func (m *Manager) Update() error {
	if m.InputMgr != nil && m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrTerminated
	}

	switch m.State {
	case StatePlaying:
		res := m.Game.Update()
		if res.Outcome == simulation.GameOver {
			m.gameOver(res.FinalScore)
		}
	case StateGameOver:
		// Keep key holds current while the banner is up, but never fire.
		m.Game.PollInput()
		m.Game.Input.Drain()
		if m.continuePressed() {
			m.State = StatePlaying
		}
	}
	return nil
}

func (m *Manager) gameOver(finalScore int) {
	m.State = StateGameOver
	m.FinalScore = finalScore
	m.Runs++
	log.Printf("Game Over! Final Score: %d (run %d)", finalScore, m.Runs)
	if m.OnGameOver != nil {
		m.OnGameOver(finalScore)
	}
}

func (m *Manager) continuePressed() bool {
	if m.InputMgr == nil {
		return true
	}
	return m.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) ||
		m.InputMgr.IsKeyJustPressed(render.KeyEnter) ||
		m.InputMgr.IsKeyJustPressed(render.KeySpace)
}

// Draw draws the current state.
func (m *Manager) Draw(screen render.Image) {
	m.Game.Draw(screen)
	if m.State == StateGameOver {
		m.drawGameOver(screen)
	}
}

// Layout handles window resize. The playfield has a fixed logical size.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.Game.Layout(outsideWidth, outsideHeight)
}

package game

import (
	"errors"
	"image"
	"image/color"
	"math/rand"
	"strings"
	"testing"

	"chosenoffset.com/targetrush/internal/render"
	"chosenoffset.com/targetrush/internal/simulation"
)

// fakeInput replays one frame of events per Update.
type fakeInput struct {
	pressed, released []string
	just              map[render.Key]bool
	click             bool
	x, y              int
	unfocused         bool
}

func (f *fakeInput) JustPressedKeys() []string  { return f.pressed }
func (f *fakeInput) JustReleasedKeys() []string { return f.released }
func (f *fakeInput) IsKeyJustPressed(k render.Key) bool {
	return f.just[k]
}
func (f *fakeInput) IsMouseButtonJustPressed(b render.MouseButton) bool {
	return b == render.MouseButtonLeft && f.click
}
func (f *fakeInput) GetCursorPosition() (int, int) { return f.x, f.y }
func (f *fakeInput) IsFocused() bool               { return !f.unfocused }

func (f *fakeInput) next() {
	f.pressed, f.released, f.just, f.click = nil, nil, nil, false
}

type drawCall struct {
	kind string
	x, y float32
	text string
}

// fakeRenderer records draw calls.
type fakeRenderer struct {
	calls []drawCall
}

func (r *fakeRenderer) FillRect(dst render.Image, x, y, w, h float32, clr color.Color) {
	r.calls = append(r.calls, drawCall{kind: "rect", x: x, y: y})
}
func (r *fakeRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	r.calls = append(r.calls, drawCall{kind: "circle", x: x, y: y})
}
func (r *fakeRenderer) DrawText(dst render.Image, text string, x, y int, clr color.Color) {
	r.calls = append(r.calls, drawCall{kind: "text", x: float32(x), y: float32(y), text: text})
}
func (r *fakeRenderer) MeasureText(text string) (int, int) { return 7 * len(text), 13 }

func (r *fakeRenderer) count(kind string) int {
	n := 0
	for _, c := range r.calls {
		if c.kind == kind {
			n++
		}
	}
	return n
}

type fakeImage struct {
	fills int
}

func (i *fakeImage) Bounds() image.Rectangle { return image.Rect(0, 0, 800, 600) }
func (i *fakeImage) Size() (int, int)        { return 800, 600 }
func (i *fakeImage) Fill(color.Color)        { i.fills++ }

func newTestManager() (*Manager, *fakeInput, *fakeRenderer) {
	world := simulation.NewWorld(simulation.DefaultConfig(), simulation.NewSpawner(0, rand.New(rand.NewSource(1))))
	in := &fakeInput{}
	r := &fakeRenderer{}
	return NewManager(world, r, in), in, r
}

func TestKeyEventsMovePlayer(t *testing.T) {
	m, in, _ := newTestManager()

	in.pressed = []string{"D"}
	if err := m.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	in.next()
	if err := m.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if got := m.Game.World.Player.Pos.X; got != 410 {
		t.Errorf("Expected player x 410 after two held ticks, got %v", got)
	}

	in.released = []string{"d"}
	m.Update()
	in.next()
	m.Update()
	if got := m.Game.World.Player.Pos.X; got != 410 {
		t.Errorf("Expected player to stop after release, got %v", got)
	}
}

func TestClickFires(t *testing.T) {
	m, in, _ := newTestManager()

	in.click, in.x, in.y = true, 500, 300
	m.Update()

	if got := m.Game.World.Store.LenBullets(); got != 1 {
		t.Errorf("Expected 1 bullet, got %d", got)
	}
}

func TestFocusLossReleasesKeys(t *testing.T) {
	m, in, _ := newTestManager()

	in.pressed = []string{"a"}
	m.Update()
	in.next()
	in.unfocused = true
	m.Update()

	if m.Game.Input.Held(simulation.KeyLeft) {
		t.Error("Expected keys released after focus loss")
	}
}

func TestGameOverBannerAndResume(t *testing.T) {
	m, in, r := newTestManager()
	var reported []int
	m.OnGameOver = func(score int) { reported = append(reported, score) }

	w := m.Game.World
	w.Score = 20
	w.Store.AddTarget(&simulation.Target{ID: w.Store.NewID(), Pos: simulation.Point{X: 400, Y: 320}, Size: 20, Speed: 2})

	m.Update()

	if m.State != StateGameOver {
		t.Fatalf("Expected game over state, got %v", m.State)
	}
	if m.FinalScore != 20 || len(reported) != 1 || reported[0] != 20 {
		t.Errorf("Expected final score 20 reported once, got %d %v", m.FinalScore, reported)
	}
	if m.Game.ScoreText != "Score: 0" {
		t.Errorf("Expected score display reset, got %q", m.Game.ScoreText)
	}

	// Banner frames do not step the world.
	tick := w.Tick
	m.Update()
	if w.Tick != tick {
		t.Errorf("Expected no ticks while banner is shown, got %d -> %d", tick, w.Tick)
	}

	m.Draw(&fakeImage{})
	found := false
	for _, c := range r.calls {
		if c.kind == "text" && strings.Contains(c.text, "Final Score: 20") {
			found = true
		}
	}
	if !found {
		t.Error("Expected a banner with the final score")
	}

	// The dismissing click must not fire a bullet.
	in.click, in.x, in.y = true, 600, 300
	m.Update()
	if m.State != StatePlaying {
		t.Fatalf("Expected playing after click, got %v", m.State)
	}
	in.next()
	m.Update()
	if got := w.Store.LenBullets(); got != 0 {
		t.Errorf("Expected dismissing click to be swallowed, got %d bullets", got)
	}
}

func TestKeyReleaseDuringBannerIsKept(t *testing.T) {
	m, in, _ := newTestManager()
	w := m.Game.World

	in.pressed = []string{"d"}
	m.Update()
	in.next()
	w.Store.AddTarget(&simulation.Target{ID: w.Store.NewID(), Pos: w.Player.Pos, Size: 20, Speed: 2})
	m.Update()
	if m.State != StateGameOver {
		t.Fatalf("Expected game over, got %v", m.State)
	}

	in.released = []string{"d"}
	m.Update()
	if m.Game.Input.Held(simulation.KeyRight) {
		t.Error("Expected release seen during banner")
	}
}

func TestEscapeTerminates(t *testing.T) {
	m, in, _ := newTestManager()
	in.just = map[render.Key]bool{render.KeyEscape: true}

	if err := m.Update(); !errors.Is(err, render.ErrTerminated) {
		t.Errorf("Expected ErrTerminated, got %v", err)
	}
}

func TestScoreDisplayFollowsKills(t *testing.T) {
	m, _, _ := newTestManager()
	w := m.Game.World
	w.Store.AddTarget(&simulation.Target{ID: w.Store.NewID(), Pos: simulation.Point{X: 100, Y: 100}, Size: 20, Speed: 2})
	w.Store.AddBullet(&simulation.Bullet{ID: w.Store.NewID(), Pos: simulation.Point{X: 100, Y: 100}, DX: 1, Speed: 0.1, Size: 3})

	m.Update()

	if m.Game.ScoreText != "Score: 10" {
		t.Errorf("Expected \"Score: 10\", got %q", m.Game.ScoreText)
	}
}

func TestDrawFrameShapes(t *testing.T) {
	world := simulation.NewWorld(simulation.DefaultConfig(), nil)
	world.Fire(500, 300)
	world.Fire(520, 300)
	world.Store.AddTarget(&simulation.Target{ID: world.Store.NewID(), Pos: simulation.Point{X: 50, Y: 50}, Size: 20})

	r := &fakeRenderer{}
	img := &fakeImage{}
	DrawFrame(r, img, world.Snapshot())

	if img.fills != 1 {
		t.Errorf("Expected one background fill, got %d", img.fills)
	}
	// Player: body, gun, two legs. Target: body, two legs.
	if got := r.count("rect"); got != 7 {
		t.Errorf("Expected 7 rects, got %d", got)
	}
	// Two heads plus two bullets.
	if got := r.count("circle"); got != 4 {
		t.Errorf("Expected 4 circles, got %d", got)
	}
}

func TestGunFlipsWithFacing(t *testing.T) {
	world := simulation.NewWorld(simulation.DefaultConfig(), nil)
	world.Player.Facing = simulation.FacingLeft

	r := &fakeRenderer{}
	DrawFrame(r, &fakeImage{}, world.Snapshot())

	// Body, head, then the gun spanning x in [355, 385].
	gun := r.calls[2]
	if gun.kind != "rect" || gun.x != 355 {
		t.Errorf("Expected gun rect at x=355 when facing left, got %+v", gun)
	}
}

func TestLayoutIsPlayfield(t *testing.T) {
	m, _, _ := newTestManager()
	w, h := m.Layout(1920, 1080)
	if w != 800 || h != 600 {
		t.Errorf("Expected 800x600 layout, got %dx%d", w, h)
	}
}

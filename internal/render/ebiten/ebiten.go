package ebiten

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"chosenoffset.com/targetrush/internal/render"
)

// face is the bitmap font used for all HUD text.
var face font.Face = basicfont.Face7x13

// EbitenRenderer implements the Renderer interface using Ebiten.
type EbitenRenderer struct{}

// NewRenderer creates a new Ebiten-based render.
func NewRenderer() render.Renderer {
	return &EbitenRenderer{}
}

// FillRect draws a filled axis-aligned rectangle on the destination image.
func (r *EbitenRenderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	vector.DrawFilledRect(unwrap(dst), x, y, width, height, clr, false)
}

// FillCircle draws a filled circle on the destination image.
func (r *EbitenRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	vector.DrawFilledCircle(unwrap(dst), x, y, radius, clr, true)
}

// DrawText draws text with its top-left corner at (x, y).
func (r *EbitenRenderer) DrawText(dst render.Image, str string, x, y int, clr color.Color) {
	text.Draw(unwrap(dst), str, face, x, y+face.Metrics().Ascent.Ceil(), clr)
}

// MeasureText measures the width and height of a single line of text.
func (r *EbitenRenderer) MeasureText(str string) (width, height int) {
	return font.MeasureString(face, str).Ceil(), face.Metrics().Height.Ceil()
}

func unwrap(img render.Image) *ebiten.Image {
	return img.(*EbitenImage).img
}

// EbitenImage wraps an ebiten.Image to implement the render.Image interface.
type EbitenImage struct {
	img *ebiten.Image
}

// Bounds returns the bounds of the image.
func (i *EbitenImage) Bounds() image.Rectangle {
	return i.img.Bounds()
}

// Size returns the width and height of the image.
func (i *EbitenImage) Size() (width, height int) {
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

// Fill fills the entire image with the given color.
func (i *EbitenImage) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct {
	keys []ebiten.Key
}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// JustPressedKeys returns the names of keys pressed this frame.
func (m *EbitenInputManager) JustPressedKeys() []string {
	m.keys = inpututil.AppendJustPressedKeys(m.keys[:0])
	return keyNames(m.keys)
}

// JustReleasedKeys returns the names of keys released this frame.
func (m *EbitenInputManager) JustReleasedKeys() []string {
	m.keys = inpututil.AppendJustReleasedKeys(m.keys[:0])
	return keyNames(m.keys)
}

// IsKeyJustPressed returns whether the specified key was just pressed this frame.
func (m *EbitenInputManager) IsKeyJustPressed(key render.Key) bool {
	k, ok := keyToEbitenKey(key)
	return ok && inpututil.IsKeyJustPressed(k)
}

// IsMouseButtonJustPressed returns whether the button went down this frame.
func (m *EbitenInputManager) IsMouseButtonJustPressed(button render.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(mouseButtonToEbiten(button))
}

// GetCursorPosition returns the current cursor position.
func (m *EbitenInputManager) GetCursorPosition() (x, y int) {
	return ebiten.CursorPosition()
}

// IsFocused reports whether the window has input focus.
func (m *EbitenInputManager) IsFocused() bool {
	return ebiten.IsFocused()
}

func keyNames(keys []ebiten.Key) []string {
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return names
}

// keyToEbitenKey converts a render.Key to an ebiten.Key.
func keyToEbitenKey(key render.Key) (ebiten.Key, bool) {
	switch key {
	case render.KeyEnter:
		return ebiten.KeyEnter, true
	case render.KeySpace:
		return ebiten.KeySpace, true
	case render.KeyEscape:
		return ebiten.KeyEscape, true
	default:
		return 0, false
	}
}

// mouseButtonToEbiten converts a render.MouseButton to an ebiten.MouseButton.
func mouseButtonToEbiten(button render.MouseButton) ebiten.MouseButton {
	switch button {
	case render.MouseButtonLeft:
		return ebiten.MouseButtonLeft
	case render.MouseButtonRight:
		return ebiten.MouseButtonRight
	case render.MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButtonLeft
	}
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// RunGame runs the game loop with the provided game.
func (e *EbitenEngine) RunGame(game render.Game) error {
	return ebiten.RunGame(&gameAdapter{game: game})
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	if err := a.game.Update(); err != nil {
		if errors.Is(err, render.ErrTerminated) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenImage{img: screen})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}

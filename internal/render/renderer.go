package render

import (
	"errors"
	"image"
	"image/color"
)

// ErrTerminated is returned from Game.Update to end the game loop cleanly.
var ErrTerminated = errors.New("render: game terminated")

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without changing
// game logic.
type Renderer interface {
	// Vector operations (for drawing shapes)
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)

	// Text operations. y is the top of the text box.
	DrawText(dst Image, text string, x, y int, clr color.Color)
	MeasureText(text string) (width, height int)
}

// Image represents a renderable image surface that can be drawn to.
// It abstracts the underlying image implementation.
type Image interface {
	Bounds() image.Rectangle
	Size() (width, height int)
	Fill(clr color.Color)
}

// InputManager handles input from the user (keyboard, mouse, etc).
type InputManager interface {
	// JustPressedKeys returns the names of keys pressed since the last frame.
	JustPressedKeys() []string
	// JustReleasedKeys returns the names of keys released since the last frame.
	JustReleasedKeys() []string
	IsKeyJustPressed(key Key) bool
	IsMouseButtonJustPressed(button MouseButton) bool
	GetCursorPosition() (x, y int)
	IsFocused() bool
}

// Key represents a keyboard key the driver reacts to directly.
type Key int

// Key constants for common keys
const (
	KeyEnter Key = iota
	KeySpace
	KeyEscape
)

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Game represents the game interface that the engine will call.
// This is typically implemented by the main game struct.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	// The logical screen size is used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}

package render

import "image/color"

// Renderer is the drawing interface that abstracts the underlying graphics
// backend. Game logic only ever describes what to draw; each backend decides
// how to put it on screen.
type Renderer interface {
	// StrokeLine draws a line segment from (x1, y1) to (x2, y2).
	StrokeLine(dst Image, x1, y1, x2, y2 float32, strokeWidth float32, clr color.Color)

	// FillCircle draws a filled circle centered at (x, y).
	FillCircle(dst Image, x, y, radius float32, clr color.Color)

	// StrokeCircle draws a circle outline centered at (x, y).
	StrokeCircle(dst Image, x, y, radius float32, strokeWidth float32, clr color.Color)
}

// Image represents a renderable surface.
type Image interface {
	// Size returns the width and height of the surface in logical pixels.
	Size() (width, height int)

	// Fill fills the entire surface with the given color.
	Fill(clr color.Color)

	// Clear clears the surface.
	Clear()
}

// InputManager handles input from the user (keyboard, mouse, etc).
type InputManager interface {
	IsKeyPressed(key Key) bool
	CursorPosition() (x, y int)
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game reads.
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
)

// Game is the interface the engine drives: Update is called once per tick,
// Draw once per frame, strictly in that order within a frame.
type Game interface {
	// Update advances the game logic. It is called every tick (typically 60
	// times per second) and always completes before Draw runs.
	Update() error

	// Draw draws the current frame onto screen.
	Draw(screen Image)

	// Layout accepts the outside (window) size and returns the logical
	// screen size used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine manages the window and the frame loop.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// RunGame runs the frame loop with the provided game. Blocks until the
	// game ends.
	RunGame(game Game) error
}

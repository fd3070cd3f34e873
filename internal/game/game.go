// Package game wires the raycasting core into the host frame loop. All run
// state lives in the Game struct, constructed once and driven by the engine:
// Update mutates the viewer, Draw casts the fan and describes the frame.
package game

import (
	"image/color"
	"math/rand"

	"chosenoffset.com/sightline/internal/config"
	"chosenoffset.com/sightline/internal/geom"
	"chosenoffset.com/sightline/internal/render"
	"chosenoffset.com/sightline/internal/scene"
	"chosenoffset.com/sightline/internal/viewer"
)

// Frame palette.
var (
	colorBackground = color.RGBA{20, 20, 28, 255}
	colorRay        = color.RGBA{90, 90, 110, 255}
	colorWall       = color.RGBA{220, 220, 230, 255}
	colorViewer     = color.RGBA{255, 220, 100, 255}
	colorHeading    = color.RGBA{255, 120, 80, 255}
)

// Game holds the whole run: the static wall set, the viewer, and the host
// interfaces it draws and reads through. Everything is owned by the single
// frame-loop goroutine; no locking.
type Game struct {
	cfg      *config.Config
	walls    []geom.Segment
	viewer   *viewer.Viewer
	renderer render.Renderer
	input    render.InputManager
}

// New builds the run state: generates the wall set once from the given
// random source and places the viewer at the screen center.
func New(cfg *config.Config, rng *rand.Rand, renderer render.Renderer, input render.InputManager) *Game {
	w := float64(cfg.Screen.Width)
	h := float64(cfg.Screen.Height)

	v := viewer.New(geom.Vec2{X: w / 2, Y: h / 2}, cfg.Viewer.FOVDegrees)
	v.Speed = cfg.Viewer.MoveSpeed

	return &Game{
		cfg:      cfg,
		walls:    scene.Generate(w, h, cfg.Screen.Padding, rng),
		viewer:   v,
		renderer: renderer,
		input:    input,
	}
}

// Walls exposes the generated wall set.
func (g *Game) Walls() []geom.Segment {
	return g.walls
}

// Viewer exposes the viewer.
func (g *Game) Viewer() *viewer.Viewer {
	return g.viewer
}

// Update reads the host input and moves the viewer. It always runs to
// completion before Draw, so the fan Draw casts is never stale.
func (g *Game) Update() error {
	cx, cy := g.input.CursorPosition()

	g.viewer.Update(viewer.InputState{
		CursorX: float64(cx),
		CursorY: float64(cy),
		Up:      g.input.IsKeyPressed(render.KeyW) || g.input.IsKeyPressed(render.KeyUp),
		Down:    g.input.IsKeyPressed(render.KeyS) || g.input.IsKeyPressed(render.KeyDown),
		Left:    g.input.IsKeyPressed(render.KeyA) || g.input.IsKeyPressed(render.KeyLeft),
		Right:   g.input.IsKeyPressed(render.KeyD) || g.input.IsKeyPressed(render.KeyRight),
	})

	return nil
}

// Draw renders one frame: the ray fan first, then the walls on top so they
// occlude the ray overlay, then the viewer marker and heading indicator.
// Rays without a hit are simply not drawn.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(colorBackground)

	pos := g.viewer.Pos
	for _, hit := range g.viewer.CastAll(g.walls) {
		if !hit.OK {
			continue
		}
		g.renderer.StrokeLine(screen,
			float32(pos.X), float32(pos.Y),
			float32(hit.Point.X), float32(hit.Point.Y),
			1, colorRay)
	}

	for _, wall := range g.walls {
		g.renderer.StrokeLine(screen,
			float32(wall.A.X), float32(wall.A.Y),
			float32(wall.B.X), float32(wall.B.Y),
			1, colorWall)
	}

	g.renderer.FillCircle(screen,
		float32(pos.X), float32(pos.Y),
		float32(g.cfg.Viewer.MarkerRadius), colorViewer)

	from, to := g.viewer.Heading()
	g.renderer.StrokeLine(screen,
		float32(from.X), float32(from.Y),
		float32(to.X), float32(to.Y),
		1, colorHeading)
}

// Layout reports the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}

// Package terminal implements the render interfaces on a terminal using
// tcell. Frames are rasterized into an off-screen cell buffer and sampled to
// the terminal size with half-block characters, so one terminal cell carries
// two vertically stacked pixels.
package terminal

import (
	"image/color"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/sightline/internal/render"
)

// keyHoldWindow is how long a key counts as held after its last event.
// Terminals report key repeats but no key-up, so a pressed state has to be
// inferred from event recency.
const keyHoldWindow = 150 * time.Millisecond

// frameInterval is the tick cadence of the frame loop, ~60 FPS.
const frameInterval = 16 * time.Millisecond

// Frame is an off-screen pixel buffer implementing render.Image.
type Frame struct {
	width, height int
	pixels        []color.RGBA
}

// NewFrame creates a frame buffer with the given logical size.
func NewFrame(width, height int) *Frame {
	return &Frame{
		width:  width,
		height: height,
		pixels: make([]color.RGBA, width*height),
	}
}

// Size returns the width and height of the frame in logical pixels.
func (f *Frame) Size() (width, height int) {
	return f.width, f.height
}

// Fill fills the entire frame with the given color.
func (f *Frame) Fill(clr color.Color) {
	c := toRGBA(clr)
	for i := range f.pixels {
		f.pixels[i] = c
	}
}

// Clear clears the frame to black.
func (f *Frame) Clear() {
	f.Fill(color.RGBA{})
}

// set writes one pixel, ignoring out-of-bounds coordinates.
func (f *Frame) set(x, y int, c color.RGBA) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.pixels[y*f.width+x] = c
}

// at reads one pixel. Out-of-bounds reads return black.
func (f *Frame) at(x, y int) color.RGBA {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return color.RGBA{}
	}
	return f.pixels[y*f.width+x]
}

func toRGBA(clr color.Color) color.RGBA {
	r, g, b, a := clr.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// TerminalRenderer implements the Renderer interface by rasterizing into a
// Frame.
type TerminalRenderer struct{}

// NewRenderer creates a new terminal renderer.
func NewRenderer() render.Renderer {
	return &TerminalRenderer{}
}

// StrokeLine draws a one-pixel line with Bresenham's algorithm. The stroke
// width is ignored; terminal cells have no use for sub-cell widths.
func (r *TerminalRenderer) StrokeLine(dst render.Image, x1, y1, x2, y2 float32, strokeWidth float32, clr color.Color) {
	f := dst.(*Frame)
	c := toRGBA(clr)

	x0, y0 := int(x1), int(y1)
	xe, ye := int(x2), int(y2)
	dx := abs(xe - x0)
	dy := -abs(ye - y0)
	sx := 1
	if x0 > xe {
		sx = -1
	}
	sy := 1
	if y0 > ye {
		sy = -1
	}
	err := dx + dy

	for {
		f.set(x0, y0, c)
		if x0 == xe && y0 == ye {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// FillCircle draws a filled circle by scanning its bounding box.
func (r *TerminalRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	f := dst.(*Frame)
	c := toRGBA(clr)
	cx, cy, rad := float64(x), float64(y), float64(radius)

	for py := int(cy - rad); py <= int(cy+rad)+1; py++ {
		for px := int(cx - rad); px <= int(cx+rad)+1; px++ {
			ddx := float64(px) - cx
			ddy := float64(py) - cy
			if ddx*ddx+ddy*ddy <= rad*rad {
				f.set(px, py, c)
			}
		}
	}
}

// StrokeCircle draws a circle outline one pixel wide.
func (r *TerminalRenderer) StrokeCircle(dst render.Image, x, y, radius float32, strokeWidth float32, clr color.Color) {
	f := dst.(*Frame)
	c := toRGBA(clr)
	cx, cy := int(x), int(y)

	// Midpoint circle.
	px, py := int(radius), 0
	e := 1 - px
	for px >= py {
		f.set(cx+px, cy+py, c)
		f.set(cx+py, cy+px, c)
		f.set(cx-py, cy+px, c)
		f.set(cx-px, cy+py, c)
		f.set(cx-px, cy-py, c)
		f.set(cx-py, cy-px, c)
		f.set(cx+py, cy-px, c)
		f.set(cx+px, cy-py, c)
		py++
		if e < 0 {
			e += 2*py + 1
		} else {
			px--
			e += 2*(py-px) + 1
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// TerminalInputManager implements InputManager from the event stream the
// engine feeds it. Key-pressed state is inferred from event recency because
// terminals never report key releases.
type TerminalInputManager struct {
	mu       sync.Mutex
	lastSeen map[render.Key]time.Time
	cursorX  int
	cursorY  int
}

// NewInputManager creates a terminal input manager. It only reports input
// once the engine running alongside it starts feeding events.
func NewInputManager() *TerminalInputManager {
	return &TerminalInputManager{
		lastSeen: make(map[render.Key]time.Time),
	}
}

// IsKeyPressed reports whether the key was seen within the hold window.
func (m *TerminalInputManager) IsKeyPressed(key render.Key) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return time.Since(m.lastSeen[key]) < keyHoldWindow
}

// CursorPosition returns the last mouse position in logical screen
// coordinates.
func (m *TerminalInputManager) CursorPosition() (x, y int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cursorX, m.cursorY
}

func (m *TerminalInputManager) noteKey(key render.Key) {
	m.mu.Lock()
	m.lastSeen[key] = time.Now()
	m.mu.Unlock()
}

func (m *TerminalInputManager) noteCursor(x, y int) {
	m.mu.Lock()
	m.cursorX = x
	m.cursorY = y
	m.mu.Unlock()
}

// TerminalEngine implements the Engine interface on a tcell screen.
type TerminalEngine struct {
	input  *TerminalInputManager
	title  string
	width  int
	height int
}

// NewEngine creates a terminal engine that reports input through the given
// input manager.
func NewEngine(input *TerminalInputManager) render.Engine {
	return &TerminalEngine{input: input}
}

// SetWindowSize records the requested size. The terminal decides its own
// cell grid; the logical size comes from the game's Layout.
func (e *TerminalEngine) SetWindowSize(width, height int) {
	e.width = width
	e.height = height
}

// SetWindowTitle sets the terminal title.
func (e *TerminalEngine) SetWindowTitle(title string) {
	e.title = title
}

// RunGame runs the frame loop: a goroutine pumps tcell events into a channel
// while a ticker drives Update then Draw at a fixed cadence. Returns when
// the user hits Escape or Ctrl+C.
func (e *TerminalEngine) RunGame(game render.Game) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	screen.EnableMouse()
	if e.title != "" {
		screen.SetTitle(e.title)
	}

	logicalW, logicalH := game.Layout(e.width, e.height)
	frame := NewFrame(logicalW, logicalH)

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !e.handleEvent(ev, screen, logicalW, logicalH) {
				return nil
			}

		case <-ticker.C:
			if err := game.Update(); err != nil {
				return err
			}
			game.Draw(frame)
			e.flush(screen, frame)
		}
	}
}

// handleEvent feeds one tcell event into the input manager. Returns false
// when the game should exit.
func (e *TerminalEngine) handleEvent(ev tcell.Event, screen tcell.Screen, logicalW, logicalH int) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			e.input.noteKey(render.KeyUp)
		case tcell.KeyDown:
			e.input.noteKey(render.KeyDown)
		case tcell.KeyLeft:
			e.input.noteKey(render.KeyLeft)
		case tcell.KeyRight:
			e.input.noteKey(render.KeyRight)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'w', 'W':
				e.input.noteKey(render.KeyW)
			case 'a', 'A':
				e.input.noteKey(render.KeyA)
			case 's', 'S':
				e.input.noteKey(render.KeyS)
			case 'd', 'D':
				e.input.noteKey(render.KeyD)
			}
		}

	case *tcell.EventMouse:
		mx, my := ev.Position()
		termW, termH := screen.Size()
		if termW > 0 && termH > 0 {
			e.input.noteCursor(mx*logicalW/termW, my*logicalH/termH)
		}

	case *tcell.EventResize:
		screen.Sync()
	}

	return true
}

// flush samples the frame to the terminal grid. Each cell shows two
// vertically stacked pixels with the upper-half-block glyph: the pixel above
// as foreground, the pixel below as background.
func (e *TerminalEngine) flush(screen tcell.Screen, frame *Frame) {
	termW, termH := screen.Size()
	if termW <= 0 || termH <= 0 {
		return
	}
	w, h := frame.Size()

	for cy := 0; cy < termH; cy++ {
		for cx := 0; cx < termW; cx++ {
			top := frame.at(cx*w/termW, (2*cy)*h/(2*termH))
			bottom := frame.at(cx*w/termW, (2*cy+1)*h/(2*termH))
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
	screen.Show()
}

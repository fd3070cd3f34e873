package terminal

import (
	"image/color"
	"testing"
)

var white = color.RGBA{255, 255, 255, 255}

func TestFrameFillAndClear(t *testing.T) {
	f := NewFrame(4, 3)

	f.Fill(white)
	if f.at(0, 0) != white || f.at(3, 2) != white {
		t.Error("Fill did not cover the frame")
	}

	f.Clear()
	if f.at(1, 1) != (color.RGBA{}) {
		t.Error("Clear did not reset the frame")
	}
}

func TestFrameIgnoresOutOfBounds(t *testing.T) {
	f := NewFrame(4, 3)

	f.set(-1, 0, white)
	f.set(4, 0, white)
	f.set(0, 3, white)

	if f.at(-1, 0) != (color.RGBA{}) || f.at(4, 0) != (color.RGBA{}) {
		t.Error("out-of-bounds reads must return black")
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if f.at(x, y) != (color.RGBA{}) {
				t.Fatalf("out-of-bounds write leaked into pixel (%d, %d)", x, y)
			}
		}
	}
}

func TestStrokeLineCoversEndpoints(t *testing.T) {
	f := NewFrame(20, 20)
	r := NewRenderer()

	r.StrokeLine(f, 2, 3, 15, 11, 1, white)

	if f.at(2, 3) != white {
		t.Error("line start pixel not set")
	}
	if f.at(15, 11) != white {
		t.Error("line end pixel not set")
	}
}

func TestStrokeLineHorizontal(t *testing.T) {
	f := NewFrame(20, 5)
	r := NewRenderer()

	r.StrokeLine(f, 0, 2, 19, 2, 1, white)

	for x := 0; x < 20; x++ {
		if f.at(x, 2) != white {
			t.Errorf("expected pixel (%d, 2) set on a horizontal line", x)
		}
	}
}

func TestFillCircleCoversCenter(t *testing.T) {
	f := NewFrame(20, 20)
	r := NewRenderer()

	r.FillCircle(f, 10, 10, 3, white)

	if f.at(10, 10) != white {
		t.Error("circle center not filled")
	}
	if f.at(10, 13) != white {
		t.Error("circle edge not filled")
	}
	if f.at(10, 15) == white {
		t.Error("fill leaked outside the radius")
	}
}

func TestInputManagerKeyDecay(t *testing.T) {
	m := NewInputManager()

	if m.IsKeyPressed(0) {
		t.Error("expected no key pressed initially")
	}

	m.noteKey(0)
	if !m.IsKeyPressed(0) {
		t.Error("expected key pressed right after its event")
	}
}

func TestInputManagerCursor(t *testing.T) {
	m := NewInputManager()

	m.noteCursor(12, 34)
	x, y := m.CursorPosition()
	if x != 12 || y != 34 {
		t.Errorf("expected cursor (12, 34), got (%d, %d)", x, y)
	}
}

package viewer

import (
	"math"
	"testing"

	"chosenoffset.com/sightline/internal/geom"
)

const tolerance = 1e-9

func TestNewBuildsOneRayPerDegree(t *testing.T) {
	v := New(geom.Vec2{X: 120, Y: 68}, 90)

	if len(v.Rays) != 90 {
		t.Fatalf("expected 90 rays for a 90 degree fan, got %d", len(v.Rays))
	}
	if v.Facing != 0 {
		t.Errorf("expected initial facing 0, got %g", v.Facing)
	}

	for i, r := range v.Rays {
		wantOffset := i - 45
		if r.Offset != wantOffset {
			t.Errorf("ray %d: expected offset %d, got %d", i, wantOffset, r.Offset)
		}
		wantAngle := float64(wantOffset) * math.Pi / 180
		if math.Abs(r.Angle-wantAngle) > tolerance {
			t.Errorf("ray %d: expected angle %g, got %g", i, wantAngle, r.Angle)
		}
		if l := r.Dir.Length(); math.Abs(l-1) > tolerance {
			t.Errorf("ray %d: expected unit direction, got length %g", i, l)
		}
	}
}

func TestSetFacingShiftsWholeFan(t *testing.T) {
	v := New(geom.Vec2{}, 90)
	facing := math.Pi / 3
	v.SetFacing(facing)

	if v.Facing != facing {
		t.Errorf("expected facing %g, got %g", facing, v.Facing)
	}
	for i, r := range v.Rays {
		want := facing + float64(r.Offset)*math.Pi/180
		if math.Abs(r.Angle-want) > tolerance {
			t.Errorf("ray %d: expected angle %g, got %g", i, want, r.Angle)
		}
	}
}

func TestSetFacingSameAngleIsNoOp(t *testing.T) {
	v := New(geom.Vec2{}, 90)
	v.SetFacing(1.25)

	before := make([]float64, len(v.Rays))
	for i, r := range v.Rays {
		before[i] = r.Angle
	}

	v.SetFacing(1.25)

	for i, r := range v.Rays {
		if r.Angle != before[i] {
			t.Errorf("ray %d: angle changed on repeated SetFacing: %g -> %g", i, before[i], r.Angle)
		}
	}
}

func TestUpdateFacesCursor(t *testing.T) {
	v := New(geom.Vec2{X: 10, Y: 10}, 90)
	v.Update(InputState{CursorX: 20, CursorY: 20})

	want := math.Pi / 4
	if math.Abs(v.Facing-want) > tolerance {
		t.Errorf("expected facing %g toward cursor, got %g", want, v.Facing)
	}
}

func TestUpdateMovesDiagonally(t *testing.T) {
	v := New(geom.Vec2{X: 50, Y: 50}, 90)
	v.Update(InputState{CursorX: 50, CursorY: 0, Up: true, Right: true})

	if v.Pos.X != 51 || v.Pos.Y != 49 {
		t.Errorf("expected diagonal move to (51, 49), got (%g, %g)", v.Pos.X, v.Pos.Y)
	}
}

func TestUpdateOpposedInputsCancel(t *testing.T) {
	v := New(geom.Vec2{X: 50, Y: 50}, 90)
	v.Update(InputState{CursorX: 100, CursorY: 50, Up: true, Down: true, Left: true, Right: true})

	if v.Pos.X != 50 || v.Pos.Y != 50 {
		t.Errorf("expected opposed inputs to cancel, got (%g, %g)", v.Pos.X, v.Pos.Y)
	}
}

func TestCastAllReportsEuclideanDistanceAhead(t *testing.T) {
	v := New(geom.Vec2{X: 120, Y: 68}, 90)
	walls := []geom.Segment{geom.NewSegment(200, 0, 200, 136)}

	hits := v.CastAll(walls)
	if len(hits) != len(v.Rays) {
		t.Fatalf("expected one result per ray, got %d for %d rays", len(hits), len(v.Rays))
	}

	// The offset-0 ray points straight along +x at the wall.
	var zero int
	for i, r := range v.Rays {
		if r.Offset == 0 {
			zero = i
		}
	}
	if !hits[zero].OK {
		t.Fatal("expected the offset-0 ray to hit the wall ahead")
	}
	if math.Abs(hits[zero].Dist-80) > tolerance {
		t.Errorf("expected distance 80, got %g", hits[zero].Dist)
	}
	if math.Abs(hits[zero].Point.X-200) > tolerance || math.Abs(hits[zero].Point.Y-68) > tolerance {
		t.Errorf("expected hit at (200, 68), got (%g, %g)", hits[zero].Point.X, hits[zero].Point.Y)
	}
}

func TestCastAllKeepsNearestHit(t *testing.T) {
	v := New(geom.Vec2{X: 120, Y: 68}, 90)
	walls := []geom.Segment{
		geom.NewSegment(200, 0, 200, 136),
		geom.NewSegment(180, 0, 180, 136),
	}

	hits := v.CastAll(walls)
	for i, r := range v.Rays {
		if r.Offset != 0 {
			continue
		}
		if !hits[i].OK {
			t.Fatal("expected a hit straight ahead")
		}
		if math.Abs(hits[i].Dist-60) > tolerance {
			t.Errorf("expected nearest wall at distance 60, got %g", hits[i].Dist)
		}
	}
}

func TestCastAllNoWallsMeansNoHits(t *testing.T) {
	v := New(geom.Vec2{X: 120, Y: 68}, 90)

	for i, hit := range v.CastAll(nil) {
		if hit.OK {
			t.Errorf("ray %d: expected no hit with an empty wall set", i)
		}
	}
}

func TestHeadingIndicator(t *testing.T) {
	v := New(geom.Vec2{X: 30, Y: 40}, 90)

	from, to := v.Heading()
	if from != v.Pos {
		t.Errorf("expected heading to start at the viewer position, got (%g, %g)", from.X, from.Y)
	}
	want := geom.Vec2{X: 38, Y: 40}
	if math.Abs(to.X-want.X) > tolerance || math.Abs(to.Y-want.Y) > tolerance {
		t.Errorf("expected heading end (%g, %g), got (%g, %g)", want.X, want.Y, to.X, to.Y)
	}

	// Pure query: repeated calls must not move anything.
	v.Heading()
	if v.Pos != (geom.Vec2{X: 30, Y: 40}) || v.Facing != 0 {
		t.Error("Heading mutated viewer state")
	}
}

// Package viewer implements the point-of-view entity: a position, a facing
// angle, and a fan of rays spanning its field of view. Each frame the viewer
// is re-aimed at the cursor, moved by the directional inputs, and then casts
// its whole fan against the wall set.
package viewer

import (
	"math"

	"chosenoffset.com/sightline/internal/geom"
)

// InputState is the per-frame snapshot of host input the viewer reacts to.
type InputState struct {
	CursorX, CursorY      float64
	Up, Down, Left, Right bool
}

// Hit is the nearest intersection found for one ray of the fan. OK is false
// when the ray crossed no wall at all, which is a normal outcome; the
// renderer just skips that ray.
type Hit struct {
	Point geom.Vec2
	Dist  float64
	OK    bool
}

// Viewer owns the ray fan. The fan has one ray per integer degree offset in
// [-fov/2, fov/2), in ascending offset order, and is never resized after
// construction.
type Viewer struct {
	Pos    geom.Vec2
	Facing float64
	FOV    float64
	Speed  float64
	Rays   []geom.Ray
}

// New creates a viewer at pos facing angle 0 with a fan spanning fovDegrees,
// moving one unit per active input per tick.
func New(pos geom.Vec2, fovDegrees float64) *Viewer {
	v := &Viewer{
		Pos:   pos,
		FOV:   fovDegrees,
		Speed: 1,
	}
	half := int(fovDegrees / 2)
	v.Rays = make([]geom.Ray, 0, 2*half)
	for off := -half; off < half; off++ {
		v.Rays = append(v.Rays, geom.NewRay(off, radians(float64(off))))
	}
	return v
}

// SetFacing points the whole fan at the new facing angle. Each ray's angle
// is recomputed from its fixed degree offset, so repeated calls with the
// same angle leave the fan untouched and no incremental drift accumulates.
func (v *Viewer) SetFacing(angle float64) {
	v.Facing = angle
	for i := range v.Rays {
		v.Rays[i].SetAngle(angle + radians(float64(v.Rays[i].Offset)))
	}
}

// Update re-aims the fan at the cursor and applies directional movement.
// Each active direction contributes one unit on its axis independently, so
// diagonal input moves diagonally.
func (v *Viewer) Update(in InputState) {
	v.SetFacing(math.Atan2(in.CursorY-v.Pos.Y, in.CursorX-v.Pos.X))

	if in.Up {
		v.Pos.Y -= v.Speed
	}
	if in.Down {
		v.Pos.Y += v.Speed
	}
	if in.Left {
		v.Pos.X -= v.Speed
	}
	if in.Right {
		v.Pos.X += v.Speed
	}
}

// CastAll intersects every ray of the fan against every wall and returns one
// result per ray, in ray order. For each ray the nearest hit wins by
// strictly smaller distance, so a tie keeps the earlier wall in the slice.
// Walls are tested in the order the caller supplies them.
func (v *Viewer) CastAll(walls []geom.Segment) []Hit {
	hits := make([]Hit, len(v.Rays))
	for i, ray := range v.Rays {
		for _, wall := range walls {
			h, ok := ray.Cast(v.Pos, wall)
			if !ok {
				continue
			}
			if !hits[i].OK || h.Dist < hits[i].Dist {
				hits[i] = Hit{Point: h.Point, Dist: h.Dist, OK: true}
			}
		}
	}
	return hits
}

// HeadingIndicatorLength is the on-screen length of the facing marker line.
const HeadingIndicatorLength = 8

// Heading returns the endpoints of the viewer's heading indicator: the
// current position and the point HeadingIndicatorLength along the facing
// direction. Pure query, no mutation.
func (v *Viewer) Heading() (from, to geom.Vec2) {
	dir := geom.FromAngle(v.Facing).Scale(HeadingIndicatorLength)
	return v.Pos, v.Pos.Add(dir)
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

package geom

// Ray is one ray of a viewer's fan. It stores its fixed integer degree
// offset from the fan's facing direction plus the current absolute angle and
// the unit direction derived from it. Rays carry no origin; the viewer's
// current position is passed into Cast at call time, so the ray always sees
// the position as it is this frame.
type Ray struct {
	Offset int
	Angle  float64
	Dir    Vec2
}

// NewRay creates a ray with the given degree offset and absolute angle.
func NewRay(offset int, angle float64) Ray {
	r := Ray{Offset: offset}
	r.SetAngle(angle)
	return r
}

// SetAngle sets the ray's absolute angle and re-derives its direction.
// Dir is always the unit vector for Angle.
func (r *Ray) SetAngle(angle float64) {
	r.Angle = angle
	r.Dir = FromAngle(angle)
}

// Hit is a successful ray/segment intersection. Dist is the ray's u
// parameter from the intersection solve: because the ray direction is unit
// length it equals the Euclidean distance from the origin to the hit, but it
// is only ever used as a comparable for picking the nearest wall.
type Hit struct {
	Point Vec2
	T     float64
	Dist  float64
}

// Cast intersects the ray, anchored at origin, against a wall segment using
// the two-line parametric method. It reports no hit when the ray and
// segment are parallel or when the intersection falls outside the segment's
// endpoints or behind the origin.
//
// The second point defining the ray's line is (x3+dx, y3-dy): the direction
// y component is subtracted because screen-space y grows downward while the
// trig direction vector assumes y grows upward. The sign flip must stay.
func (r Ray) Cast(origin Vec2, seg Segment) (Hit, bool) {
	x1, y1 := seg.A.X, seg.A.Y
	x2, y2 := seg.B.X, seg.B.Y
	x3, y3 := origin.X, origin.Y
	x4 := x3 + r.Dir.X
	y4 := y3 - r.Dir.Y

	den := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if den == 0 {
		// Parallel. Exact comparison on purpose: a near-parallel pair still
		// yields a valid (far) intersection.
		return Hit{}, false
	}

	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / den
	u := -((x1-x2)*(y1-y3) - (y1-y2)*(x1-x3)) / den

	if t < 0 || t > 1 || u < 0 {
		return Hit{}, false
	}

	return Hit{
		Point: Vec2{x1 + t*(x2-x1), y1 + t*(y2-y1)},
		T:     t,
		Dist:  u,
	}, true
}

package geom

// Segment is a static wall segment that rays can intersect. Endpoints are
// copied at construction and never change afterward.
type Segment struct {
	A, B Vec2
}

// NewSegment creates a segment from two endpoint coordinates.
func NewSegment(x1, y1, x2, y2 float64) Segment {
	return Segment{
		A: Vec2{x1, y1},
		B: Vec2{x2, y2},
	}
}

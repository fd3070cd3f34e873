// Package scene generates the static wall set the viewer casts rays
// against. Generation happens once at startup; the wall slice is read-only
// for the rest of the run.
package scene

import (
	"math/rand"

	"chosenoffset.com/sightline/internal/geom"
)

// RandomWallCount is the number of interior walls scattered across the
// field, before the four boundary walls are added.
const RandomWallCount = 5

// Generate produces the wall set for a width x height field: RandomWallCount
// segments with every endpoint coordinate drawn independently and uniformly
// from the field, followed by four boundary walls inset by padding from each
// edge (top, right, bottom, left, each running clockwise from the previous
// wall's endpoint). The random source is injected so tests can fix the seed.
func Generate(width, height, padding float64, rng *rand.Rand) []geom.Segment {
	walls := make([]geom.Segment, 0, RandomWallCount+4)

	for i := 0; i < RandomWallCount; i++ {
		walls = append(walls, geom.NewSegment(
			rng.Float64()*width,
			rng.Float64()*height,
			rng.Float64()*width,
			rng.Float64()*height,
		))
	}

	left := padding
	top := padding
	right := width - padding
	bottom := height - padding

	walls = append(walls,
		geom.NewSegment(left, top, right, top),
		geom.NewSegment(right, top, right, bottom),
		geom.NewSegment(right, bottom, left, bottom),
		geom.NewSegment(left, bottom, left, top),
	)

	return walls
}

package advanced

import "math/rand"

// Uniformly random points in the rectangle spanned by min and max.
func RandomPoints(rng *rand.Rand, count int, min, max Point) []Point {
	points := make([]Point, count)
	for i := range points {
		points[i] = Point{
			X: min.X + rng.Float64()*(max.X-min.X),
			Y: min.Y + rng.Float64()*(max.Y-min.Y),
		}
	}
	return points
}

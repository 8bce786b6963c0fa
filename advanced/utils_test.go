package advanced

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// Tolerance for comparing computed coordinates. The predicates themselves
// never use one.
const Epsilon = 1e-9

// The unit square, ordered so that the first pairing crosses.
func unitSquare() []Point {
	return []Point{{0, 0}, {1, 1}, {1, 0}, {0, 1}}
}

// Vertices of a regular polygon, counterclockwise from the positive x axis.
func regularPolygon(count int, radius float64, center Point) []Point {
	points := make([]Point, count)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(count)
		points[i] = Point{center.X + radius*math.Cos(angle), center.Y + radius*math.Sin(angle)}
	}
	return points
}

// No input point is a centerpoint here, but the diagonals of the inner square
// cross at the origin, which is.
func crossedSquareInTriangle() []Point {
	return []Point{
		{-1, -1}, {1, 1}, {1, -1}, {-1, 1},
		{0, 5}, {-4.33, -2.5}, {4.33, -2.5},
	}
}

// Assert that every line from the candidate point i to another point leaves
// at least floor((n-1)/3) points strictly on each side.
func assertPointHalfspaces(t *testing.T, points []Point, i int) {
	n := len(points)
	bound := (n - 1) / 3
	for j := range points {
		if j == i {
			continue
		}
		left, right := 0, 0
		for k, p := range points {
			if k == i || k == j {
				continue
			}
			switch Orient(points[i], points[j], p) {
			case CounterClockwise:
				left++
			default:
				right++
			}
		}
		require.GreaterOrEqual(t, left, bound, "left of line %d->%d", i, j)
		require.GreaterOrEqual(t, right, bound, "right of line %d->%d", i, j)
	}
}

// Step from the start to the end, collecting every outcome.
func collectSteps(t *testing.T, points []Point) []StepOutcome {
	var outcomes []StepOutcome
	RunSteps(points, func(outcome StepOutcome) {
		outcomes = append(outcomes, outcome)
		require.Less(t, len(outcomes), 1_000_000, "stepped search does not terminate")
	})
	return outcomes
}

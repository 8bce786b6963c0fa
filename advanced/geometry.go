package advanced

import "math"

// Geometric primitives. None of these use a tolerance: orientation ties are
// exact zeros only, so nearly collinear points may land on either side under
// floating point error.

type Orientation int

const (
	Clockwise Orientation = iota - 1
	Collinear
	CounterClockwise
)

var orientationLabels = [3]string{"clockwise", "collinear", "counterclockwise"}

func (o Orientation) String() string {
	if o < Clockwise || o > CounterClockwise {
		return "invalid"
	}
	return orientationLabels[int(o)+1]
}

// Sign of the determinant of (a-c, b-c). CounterClockwise means c lies to the
// left of the directed line a->b, Clockwise means it lies to the right.
func Orient(a, b, c Point) Orientation {
	det := Determinant([][]float64{
		{a.X - c.X, a.Y - c.Y},
		{b.X - c.X, b.Y - c.Y},
	})
	if det > 0 {
		return CounterClockwise
	}
	if det < 0 {
		return Clockwise
	}
	return Collinear
}

// Determinant of a square matrix. The 2x2 case is closed form, larger
// matrices are expanded along the first column.
func Determinant(matrix [][]float64) float64 {
	switch len(matrix) {
	case 0:
		return 1
	case 1:
		return matrix[0][0]
	case 2:
		return matrix[0][0]*matrix[1][1] - matrix[0][1]*matrix[1][0]
	}

	var sum float64
	for i, row := range matrix {
		minor := make([][]float64, 0, len(matrix)-1)
		for j, other := range matrix {
			if j != i {
				minor = append(minor, other[1:])
			}
		}
		sign := 1.0
		if i%2 == 1 {
			sign = -1
		}
		sum += sign * row[0] * Determinant(minor)
	}
	return sum
}

// Slope of the line through p and q. Vertical lines give an infinite (or NaN)
// slope, which never survives the rectangle test in SegmentIntersect.
func Slope(p, q Point) float64 {
	return (p.Y - q.Y) / (p.X - q.X)
}

// Bearing from center to point, in (-π, π].
func Angle(center, point Point) float64 {
	return math.Atan2(point.Y-center.Y, point.X-center.X)
}

// Arithmetic mean of the points. It is generally not a member of the set.
func CenterOf(points []Point) Point {
	var sum Point
	for _, p := range points {
		sum.X += p.X
		sum.Y += p.Y
	}
	n := float64(len(points))
	return Point{sum.X / n, sum.Y / n}
}

// Intersection of the line through p with slope m and the line through q with
// slope n, solved in point-slope form.
func LineIntersection(p Point, m float64, q Point, n float64) (Point, error) {
	if m == n {
		return Point{}, &DegenerateLineError{SlopeP: m, SlopeQ: n}
	}
	x := (q.Y - p.Y + m*p.X - n*q.X) / (m - n)
	y := m*(x-p.X) + p.Y
	return Point{x, y}, nil
}

// Is i strictly inside the axis aligned rectangle with corners a and b? The
// open interval means points on the rectangle's border never qualify.
func InRect(i, a, b Point) bool {
	left, right := math.Min(a.X, b.X), math.Max(a.X, b.X)
	bottom, top := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return i.X > left && i.X < right && i.Y > bottom && i.Y < top
}

// Is p strictly inside triangle abc? Works for either winding.
func InTriangle(p, a, b, c Point) bool {
	o := Orient(a, b, p)
	return o != Collinear && o == Orient(b, c, p) && o == Orient(c, a, p)
}

// Given four points, find the pairing of them into two segments which cross,
// and where they cross. Pairings are tried in the order (a,b)&(c,d),
// (a,c)&(b,d), (a,d)&(b,c), and the first one whose line intersection lies
// strictly within both segments' bounding rectangles wins. Parallel pairings
// are skipped. Crossings exactly at an endpoint are not detected.
func SegmentIntersect(a, b, c, d Point) (Intersection, bool) {
	quad := [4]Point{a, b, c, d}
	for _, pairing := range allPairings {
		segments := pairing.Segments(Quad{0, 1, 2, 3})
		p, q := quad[segments[0][0]], quad[segments[0][1]]
		r, s := quad[segments[1][0]], quad[segments[1][1]]

		i, err := LineIntersection(p, Slope(p, q), r, Slope(r, s))
		if err != nil {
			continue
		}
		if InRect(i, p, q) && InRect(i, r, s) {
			return Intersection{Point: i, Pairing: pairing}, true
		}
	}
	return Intersection{}, false
}

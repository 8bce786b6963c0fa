package advanced

// Centerpoint search.
//
// A centerpoint here is a point through which every line to another input
// point leaves at least a third of the remaining points strictly on each side.
// The search has two phases:
//
// 1. Try every input point i. For every other point j, count the points
// strictly left of the directed line i->j. Everything else except i and j is
// counted as right. Both counts must be at least floor((n-1)/3).
//
// 2. If no input point qualifies, try every quadruple a<b<c<d. If two of the
// segments between them cross, the crossing is the candidate. For every point
// j outside the quadruple, count the points strictly left of the line
// crossing->j, ignoring the quadruple and j, and treat the rest as right. Both
// counts must be at least floor((n-4)/3).
//
// In both phases, the first candidate to pass every test wins, and a candidate
// is rejected as soon as one test fails. There is no attempt to find the
// "best" centerpoint. If nothing passes, the result is simply empty; for some
// configurations there is no answer to be found this way.

// The outcome of counting points on either side of one dividing line.
type HalfspaceTest struct {
	Left, Right int
	// Both counts must reach this
	Bound  int
	Passed bool
}

func newHalfspaceTest(left, right, bound int) HalfspaceTest {
	return HalfspaceTest{
		Left:   left,
		Right:  right,
		Bound:  bound,
		Passed: left >= bound && right >= bound,
	}
}

// Least population of each side of a line through a candidate input point.
func PointBound(n int) int {
	return (n - 1) / 3
}

// Least population of each side of a line through a crossing of four points.
func IntersectionBound(n int) int {
	if n < MinPoints {
		return 0
	}
	return (n - 4) / 3
}

// Halfspace test for input point i against the line to input point j.
func PointHalfspace(points []Point, i, j int) HalfspaceTest {
	n := len(points)
	if i == j || i < 0 || j < 0 || i >= n || j >= n {
		fatalf("invalid point test: i=%d j=%d n=%d", i, j, n)
	}
	left := 0
	for _, p := range points {
		if Orient(points[i], points[j], p) == CounterClockwise {
			left++
		}
	}
	// i and j are on the line, so they are on neither side
	right := n - left - 2
	return newHalfspaceTest(left, right, PointBound(n))
}

// Halfspace test for the crossing of a quadruple against the line to input
// point j. The quadruple and j itself are not counted on either side.
func IntersectionHalfspace(points []Point, center Point, quad Quad, j int) HalfspaceTest {
	n := len(points)
	if j < 0 || j >= n || quad.Contains(j) {
		fatalf("invalid intersection test: quad=%v j=%d n=%d", quad, j, n)
	}
	left := 0
	for k, p := range points {
		if k == j || quad.Contains(k) {
			continue
		}
		if Orient(center, points[j], p) == CounterClockwise {
			left++
		}
	}
	right := n - 5 - left
	return newHalfspaceTest(left, right, IntersectionBound(n))
}

func (q Quad) Contains(index int) bool {
	return q[0] == index || q[1] == index || q[2] == index || q[3] == index
}

// The first quadruple in enumeration order, if there are at least four points.
func FirstQuad(n int) (Quad, bool) {
	if n < MinPoints {
		return Quad{}, false
	}
	return Quad{0, 1, 2, 3}, true
}

// The quadruple after q in lexicographic order, keeping a<b<c<d. d varies
// fastest, a slowest.
func (q Quad) Next(n int) (Quad, bool) {
	for k := 3; k >= 0; k-- {
		// The largest index position k can hold while leaving room for the
		// positions after it
		if q[k] < n-4+k {
			q[k]++
			for m := k + 1; m < 4; m++ {
				q[m] = q[m-1] + 1
			}
			return q, true
		}
	}
	return q, false
}

// Test input point i against every other point.
func isPointCenter(points []Point, i int) bool {
	for j := range points {
		if j == i {
			continue
		}
		if !PointHalfspace(points, i, j).Passed {
			return false
		}
	}
	return true
}

// Test a quadruple's crossing against every point outside it.
func isIntersectionCenter(points []Point, quad Quad, center Point) bool {
	for j := range points {
		if quad.Contains(j) {
			continue
		}
		if !IntersectionHalfspace(points, center, quad, j).Passed {
			return false
		}
	}
	return true
}

func pointCandidate(points []Point, i int) *Candidate {
	return &Candidate{
		Phase:    PointPhase,
		Index:    i,
		Center:   points[i],
		Excluded: []int{i},
	}
}

// Find the crossing of a quadruple, if any pairing of it crosses.
func QuadIntersection(points []Point, quad Quad) (Intersection, bool) {
	return SegmentIntersect(points[quad[0]], points[quad[1]], points[quad[2]], points[quad[3]])
}

func intersectionCandidate(quad Quad, intersection Intersection) *Candidate {
	return &Candidate{
		Phase:        IntersectionPhase,
		Quad:         quad,
		Intersection: intersection,
		Center:       intersection.Point,
		Excluded:     []int{quad[0], quad[1], quad[2], quad[3]},
	}
}

// Phase 1.
func FindPointCenter(points []Point) (*Candidate, bool) {
	for i := range points {
		if isPointCenter(points, i) {
			return pointCandidate(points, i), true
		}
	}
	return nil, false
}

// Phase 2.
func FindIntersectionCenter(points []Point) (*Candidate, bool) {
	n := len(points)
	for quad, ok := FirstQuad(n); ok; quad, ok = quad.Next(n) {
		intersection, crosses := QuadIntersection(points, quad)
		if !crosses {
			continue
		}
		if isIntersectionCenter(points, quad, intersection.Point) {
			return intersectionCandidate(quad, intersection), true
		}
	}
	return nil, false
}

// Run both phases in order, returning the first candidate found.
func FindCenter(points []Point) (*Candidate, bool) {
	if candidate, ok := FindPointCenter(points); ok {
		return candidate, true
	}
	return FindIntersectionCenter(points)
}

// Search for a centerpoint and fan the remaining points into triangles around
// it. When no centerpoint exists, the result has no triangles, no lines and a
// nil center.
func Search(points []Point) PartitionResult {
	candidate, ok := FindCenter(points)
	if !ok {
		return emptyResult()
	}
	return ResultFor(points, candidate)
}

// Build the partition for a resolved candidate.
func ResultFor(points []Point, candidate *Candidate) PartitionResult {
	center := candidate.Center
	return PartitionResult{
		Triangles: TriangleFan(points, center, candidate.Excluded),
		Lines:     candidate.Lines(),
		Center:    &center,
		Candidate: candidate,
	}
}

// Partition around the mean of all points. Nothing is excluded, so this
// always produces floor(n/3) triangles, though without the halfspace
// guarantee of Search.
func CentroidPartition(points []Point) PartitionResult {
	if len(points) == 0 {
		return emptyResult()
	}
	center := CenterOf(points)
	return PartitionResult{
		Triangles: TriangleFan(points, center, nil),
		Lines:     []IndexSegment{},
		Center:    &center,
	}
}

package advanced

// Points are plain values. Everything downstream of a point set (triangles,
// dividing lines, search cursors) refers to points by their index in the set,
// so a caller can move points around between searches without invalidating
// anything but the previous result.
type Point struct {
	X float64
	Y float64
}

type Segment struct {
	Start Point
	End   Point
}

// Index based triangle, referencing three points of the input set.
type IndexTriangle [3]int

// Index based segment, referencing two points of the input set.
type IndexSegment [2]int

// The three ways four points can be split into two segments, in the order
// they are tried.
type Pairing int

const (
	PairingABCD Pairing = iota // (a,b) & (c,d)
	PairingACBD                // (a,c) & (b,d)
	PairingADBC                // (a,d) & (b,c)
)

var allPairings = [3]Pairing{PairingABCD, PairingACBD, PairingADBC}

// Map the pairing onto a concrete quadruple, giving the two crossing segments.
func (pairing Pairing) Segments(quad Quad) [2]IndexSegment {
	a, b, c, d := quad[0], quad[1], quad[2], quad[3]
	switch pairing {
	case PairingABCD:
		return [2]IndexSegment{{a, b}, {c, d}}
	case PairingACBD:
		return [2]IndexSegment{{a, c}, {b, d}}
	case PairingADBC:
		return [2]IndexSegment{{a, d}, {b, c}}
	}
	fatalf("invalid pairing: %d", pairing)
	return [2]IndexSegment{}
}

// Indices a < b < c < d of four points of the set.
type Quad [4]int

// The crossing of two diagonals among four points.
type Intersection struct {
	Point   Point
	Pairing Pairing
}

type Phase int

const (
	// A single input point is the centerpoint.
	PointPhase Phase = iota + 1
	// The crossing of two segments between four input points is the centerpoint.
	IntersectionPhase
)

func (phase Phase) String() string {
	switch phase {
	case PointPhase:
		return "point"
	case IntersectionPhase:
		return "intersection"
	}
	return "none"
}

// A centerpoint that passed every halfspace test. Excluded lists the indices
// which must not be used in triangles: the point itself in the point phase,
// or the four segment endpoints in the intersection phase.
type Candidate struct {
	Phase Phase
	// Only meaningful in the point phase
	Index int
	// Only meaningful in the intersection phase
	Quad         Quad
	Intersection Intersection
	Center       Point
	Excluded     []int
}

// Dividing lines are the two crossing segments of an intersection candidate.
func (c Candidate) Lines() []IndexSegment {
	if c.Phase != IntersectionPhase {
		return []IndexSegment{}
	}
	segments := c.Intersection.Pairing.Segments(c.Quad)
	return segments[:]
}

type PartitionResult struct {
	Triangles []IndexTriangle
	Lines     []IndexSegment
	// Nil when no centerpoint was found
	Center *Point
	// The candidate that produced the result. Nil in centroid mode and when no
	// centerpoint was found.
	Candidate *Candidate
}

func (r PartitionResult) Found() bool {
	return r.Center != nil
}

// Err reports ErrNoCenterFound for an empty result, nil otherwise. An empty
// result is a normal outcome, this is only provided so callers can present it.
func (r PartitionResult) Err() error {
	if r.Found() {
		return nil
	}
	return ErrNoCenterFound
}

func emptyResult() PartitionResult {
	return PartitionResult{
		Triangles: []IndexTriangle{},
		Lines:     []IndexSegment{},
	}
}

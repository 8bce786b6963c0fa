package advanced

import "fmt"

// The step iterator runs exactly the same search as FindCenter, one halfspace
// test per call, so that it can be paused and shown as it goes.
//
// The cursor holds the phase 1 candidate I, the phase 2 quadruple and the probe
// index J. Phase 1 is active while I is a valid index. Once I runs off the end,
// the quadruple is the candidate. A quadruple past the end of the enumeration
// (all indices out of range) means both phases are exhausted.
//
// J == n means every probe for the current candidate passed, and the next step
// reports it as found. A failing test doesn't continue to the remaining probes,
// and doesn't park the cursor at J == n for an extra step either: the returned
// cursor is already on the next candidate with J = 0, just as the full search
// short-circuits. So J == n only ever means "all passed".
type Cursor struct {
	I    int
	Quad Quad
	J    int
}

// The cursor at the very start of the search.
func NewCursor() Cursor {
	return Cursor{I: 0, Quad: Quad{0, 1, 2, 3}, J: 0}
}

func (c Cursor) Phase(n int) Phase {
	if c.I < n {
		return PointPhase
	}
	if c.Quad[3] < n {
		return IntersectionPhase
	}
	return 0
}

func (c Cursor) String() string {
	return fmt.Sprintf("{i=%d a=%d b=%d c=%d d=%d j=%d}", c.I, c.Quad[0], c.Quad[1], c.Quad[2], c.Quad[3], c.J)
}

type StepKind int

const (
	// One halfspace test ran against the current candidate.
	StepTested StepKind = iota
	// The current quadruple has no crossing segments, so it was skipped.
	StepNoIntersection
	// Every test passed for the current candidate.
	StepFound
	// Both phases are exhausted.
	StepNotFound
)

func (k StepKind) String() string {
	switch k {
	case StepTested:
		return "tested"
	case StepNoIntersection:
		return "no intersection"
	case StepFound:
		return "found"
	case StepNotFound:
		return "not found"
	}
	return "invalid"
}

type StepOutcome struct {
	Kind  StepKind
	Phase Phase
	// The cursor that was evaluated, after skipping excluded probes
	Cursor Cursor
	// The line whose halfspaces were tested. Nil unless Kind is StepTested.
	Divider *Segment
	// In phase 2, the crossing segments of the quadruple, or every possible
	// pairing if none cross.
	Lines   []IndexSegment
	Test    HalfspaceTest
	Message string
	// The final partition, once the search is done.
	Result *PartitionResult
}

func (o StepOutcome) Done() bool {
	return o.Kind == StepFound || o.Kind == StepNotFound
}

func (o StepOutcome) Passed() bool {
	switch o.Kind {
	case StepTested:
		return o.Test.Passed
	case StepFound:
		return true
	}
	return false
}

// Run one test of the search at the cursor, and return its outcome along with
// the cursor for the next test. Once the outcome is done, the returned cursor
// is the same as the one given, so stepping again repeats the final outcome.
func Step(points []Point, cursor Cursor) (StepOutcome, Cursor) {
	n := len(points)
	cursor.validate(n)
	cursor = cursor.skipExcluded(n)

	switch cursor.Phase(n) {
	case PointPhase:
		return stepPoint(points, cursor)
	case IntersectionPhase:
		return stepIntersection(points, cursor)
	}

	result := emptyResult()
	return StepOutcome{
		Kind:    StepNotFound,
		Cursor:  cursor,
		Lines:   []IndexSegment{},
		Message: ErrNoCenterFound.Error(),
		Result:  &result,
	}, cursor
}

// Step from the start until the search is done, calling onStep (if not nil)
// with every outcome along the way.
func RunSteps(points []Point, onStep func(StepOutcome)) PartitionResult {
	cursor := NewCursor()
	for {
		var outcome StepOutcome
		outcome, cursor = Step(points, cursor)
		if onStep != nil {
			onStep(outcome)
		}
		if outcome.Done() {
			return *outcome.Result
		}
	}
}

func stepPoint(points []Point, cursor Cursor) (StepOutcome, Cursor) {
	n := len(points)
	i, j := cursor.I, cursor.J
	if j == n {
		result := ResultFor(points, pointCandidate(points, i))
		return StepOutcome{
			Kind:    StepFound,
			Phase:   PointPhase,
			Cursor:  cursor,
			Lines:   result.Lines,
			Message: fmt.Sprintf("point %d passes every line: centerpoint found", i),
			Result:  &result,
		}, cursor
	}

	test := PointHalfspace(points, i, j)
	outcome := StepOutcome{
		Kind:    StepTested,
		Phase:   PointPhase,
		Cursor:  cursor,
		Divider: &Segment{Start: points[i], End: points[j]},
		Lines:   []IndexSegment{},
		Test:    test,
		Message: fmt.Sprintf("point %d, line to point %d: %s", i, j, describeTest(test)),
	}
	return outcome, cursor.after(test.Passed, n)
}

func stepIntersection(points []Point, cursor Cursor) (StepOutcome, Cursor) {
	n := len(points)
	quad, j := cursor.Quad, cursor.J

	intersection, crosses := QuadIntersection(points, quad)
	if !crosses {
		var lines []IndexSegment
		for _, pairing := range allPairings {
			segments := pairing.Segments(quad)
			lines = append(lines, segments[:]...)
		}
		return StepOutcome{
			Kind:    StepNoIntersection,
			Phase:   IntersectionPhase,
			Cursor:  cursor,
			Lines:   lines,
			Message: fmt.Sprintf("points %d, %d, %d, %d: no crossing segments", quad[0], quad[1], quad[2], quad[3]),
		}, cursor.nextCandidate(n)
	}

	segments := intersection.Pairing.Segments(quad)
	crossing := fmt.Sprintf("crossing of %d-%d and %d-%d at (%.2f, %.2f)",
		segments[0][0], segments[0][1], segments[1][0], segments[1][1],
		intersection.Point.X, intersection.Point.Y)

	if j == n {
		result := ResultFor(points, intersectionCandidate(quad, intersection))
		return StepOutcome{
			Kind:    StepFound,
			Phase:   IntersectionPhase,
			Cursor:  cursor,
			Lines:   result.Lines,
			Message: crossing + " passes every line: centerpoint found",
			Result:  &result,
		}, cursor
	}

	test := IntersectionHalfspace(points, intersection.Point, quad, j)
	outcome := StepOutcome{
		Kind:    StepTested,
		Phase:   IntersectionPhase,
		Cursor:  cursor,
		Divider: &Segment{Start: intersection.Point, End: points[j]},
		Lines:   segments[:],
		Test:    test,
		Message: fmt.Sprintf("%s, line to point %d: %s", crossing, j, describeTest(test)),
	}
	return outcome, cursor.after(test.Passed, n)
}

func describeTest(test HalfspaceTest) string {
	verdict := "pass"
	if !test.Passed {
		verdict = "fail"
	}
	return fmt.Sprintf("%d left, %d right, need %d: %s", test.Left, test.Right, test.Bound, verdict)
}

// The cursor after a test: the next probe on a pass, the next candidate on a
// failure.
func (c Cursor) after(passed bool, n int) Cursor {
	if passed {
		c.J++
		return c
	}
	return c.nextCandidate(n)
}

// Move on to the next candidate, which may mean moving from phase 1 into phase
// 2, or off the end of phase 2.
func (c Cursor) nextCandidate(n int) Cursor {
	c.J = 0
	if c.I < n {
		c.I++
		if c.I < n {
			return c
		}
		quad, ok := FirstQuad(n)
		if !ok {
			c.Quad = exhaustedQuad(n)
			return c
		}
		c.Quad = quad
		return c
	}

	quad, ok := c.Quad.Next(n)
	if !ok {
		quad = exhaustedQuad(n)
	}
	c.Quad = quad
	return c
}

func exhaustedQuad(n int) Quad {
	return Quad{n, n, n, n}
}

// Advance J past the indices which aren't probes for the current candidate.
func (c Cursor) skipExcluded(n int) Cursor {
	switch c.Phase(n) {
	case PointPhase:
		if c.J == c.I {
			c.J++
		}
	case IntersectionPhase:
		for c.J < n && c.Quad.Contains(c.J) {
			c.J++
		}
	}
	return c
}

func (c Cursor) validate(n int) {
	if c.I < 0 || c.J < 0 || c.J > n {
		fatalf("cursor %v out of range for %d points", c, n)
	}
	if c.Phase(n) == IntersectionPhase {
		if c.Quad[0] < 0 || c.Quad[0] >= c.Quad[1] || c.Quad[1] >= c.Quad[2] || c.Quad[2] >= c.Quad[3] {
			fatalf("cursor %v has an unordered quadruple", c)
		}
	}
}

// Centerpoint search and triangle partitions of planar point sets.
//
// Given n points, this package looks for a centerpoint: a point (either one of
// the inputs, or the crossing of two segments between four inputs) such that
// every line through it and another input leaves at least a third of the
// remaining points on each side. The remaining points are then dealt into
// triangles fanned around the centerpoint, each straddling it. With n = 3r-2
// points, that gives the r subsets of a Tverberg style partition.
//
// The search is exhaustive but not guaranteed to succeed; an empty result is a
// normal outcome. See the advanced package for the individual phases and the
// step-by-step variant.
package tverberg

import "github.com/osuushi/tverberg/advanced"

type Point = advanced.Point
type Segment = advanced.Segment
type IndexTriangle = advanced.IndexTriangle
type IndexSegment = advanced.IndexSegment
type Candidate = advanced.Candidate
type PartitionResult = advanced.PartitionResult
type Cursor = advanced.Cursor
type StepOutcome = advanced.StepOutcome
type InvalidInputSizeError = advanced.InvalidInputSizeError
type DegenerateLineError = advanced.DegenerateLineError

var ErrNoCenterFound = advanced.ErrNoCenterFound

// Search the points for a centerpoint and partition the rest into triangles
// around it. At least four points are required, so that both search phases
// can run. Not finding a centerpoint is not an error: check result.Found().
func Partition(points []Point) (result PartitionResult, err error) {
	defer func() {
		recoveredErr := advanced.HandlePartitionPanicRecover(recover())
		if recoveredErr != nil {
			result = PartitionResult{}
			err = recoveredErr
		}
	}()
	if err := checkSize(points); err != nil {
		return PartitionResult{}, err
	}
	return advanced.Search(points), nil
}

// Like Partition, but first checks that there are enough points for r subsets
// (3r-2 points).
func PartitionSubsets(points []Point, r int) (PartitionResult, error) {
	if err := advanced.ValidateSize(points, r); err != nil {
		return PartitionResult{}, err
	}
	return Partition(points)
}

// Partition around the mean of the points. This always produces triangles
// when there are at least three points, but the center has no halfspace
// guarantee.
func CentroidPartition(points []Point) (result PartitionResult, err error) {
	defer func() {
		recoveredErr := advanced.HandlePartitionPanicRecover(recover())
		if recoveredErr != nil {
			result = PartitionResult{}
			err = recoveredErr
		}
	}()
	return advanced.CentroidPartition(points), nil
}

// Fan the points not listed in excluded into triangles around center.
func TriangleFan(points []Point, center Point, excluded []int) (triangles []IndexTriangle, err error) {
	defer func() {
		recoveredErr := advanced.HandlePartitionPanicRecover(recover())
		if recoveredErr != nil {
			triangles = nil
			err = recoveredErr
		}
	}()
	return advanced.TriangleFan(points, center, excluded), nil
}

// The cursor to start a stepped search from.
func NewCursor() Cursor {
	return advanced.NewCursor()
}

// Run one halfspace test of the search. Feed the returned cursor back in for
// the next one, until the outcome is Done(). Like Partition, this needs at
// least four points.
func Step(points []Point, cursor Cursor) (outcome StepOutcome, next Cursor, err error) {
	defer func() {
		recoveredErr := advanced.HandlePartitionPanicRecover(recover())
		if recoveredErr != nil {
			outcome = StepOutcome{}
			next = cursor
			err = recoveredErr
		}
	}()
	if err := checkSize(points); err != nil {
		return StepOutcome{}, cursor, err
	}
	outcome, next = advanced.Step(points, cursor)
	return outcome, next, nil
}

// Run the stepped search to completion, calling onStep (if not nil) with every
// outcome. The result, and the error for too few points, are the same as
// Partition's.
func Run(points []Point, onStep func(StepOutcome)) (result PartitionResult, err error) {
	defer func() {
		recoveredErr := advanced.HandlePartitionPanicRecover(recover())
		if recoveredErr != nil {
			result = PartitionResult{}
			err = recoveredErr
		}
	}()
	if err := checkSize(points); err != nil {
		return PartitionResult{}, err
	}
	return advanced.RunSteps(points, onStep), nil
}

// Both search phases need at least four points to run.
func checkSize(points []Point) error {
	if len(points) < advanced.MinPoints {
		return &InvalidInputSizeError{
			Got:    len(points),
			Need:   advanced.MinPoints,
			Reason: "intersection search",
		}
	}
	return nil
}

package advanced

import (
	"fmt"

	"github.com/pkg/errors"
)

// Returned by PartitionResult.Err when both search phases were exhausted. This
// is an expected outcome for some point sets, not a failure of the search.
var ErrNoCenterFound = errors.New("no centerpoint found for this configuration")

// Two lines with equal slopes are parallel or identical, so they have no
// single intersection point.
type DegenerateLineError struct {
	SlopeP, SlopeQ float64
}

func (e *DegenerateLineError) Error() string {
	return fmt.Sprintf("degenerate line intersection: slopes %g and %g are equal", e.SlopeP, e.SlopeQ)
}

// Too few points for the requested operation. Callers are expected to fall
// back to a simpler mode (such as the centroid partition) or ask for more
// points.
type InvalidInputSizeError struct {
	Got, Need int
	Reason    string
}

func (e *InvalidInputSizeError) Error() string {
	return fmt.Sprintf("invalid input size: got %d points, need at least %d (%s)", e.Got, e.Need, e.Reason)
}

// The least number of points at which the intersection phase can run.
const MinPoints = 4

// The number of points needed to split into r subsets: 3r - 2.
func PointsForSubsets(r int) int {
	return 3*r - 2
}

// Check that there are enough points to partition into r subsets.
func ValidateSize(points []Point, r int) error {
	if r < 1 {
		return &InvalidInputSizeError{Got: len(points), Need: PointsForSubsets(1), Reason: fmt.Sprintf("subset count %d is not positive", r)}
	}
	need := PointsForSubsets(r)
	if need < MinPoints {
		need = MinPoints
	}
	if len(points) < need {
		return &InvalidInputSizeError{Got: len(points), Need: need, Reason: fmt.Sprintf("%d subsets", r)}
	}
	return nil
}

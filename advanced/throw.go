package advanced

import "github.com/pkg/errors"

// The search and fan construction only panic when one of their own
// invariants is broken (a cursor outside the enumeration, an excluded index
// that isn't in the point set). Rather than threading those through every
// pure function, we panic, and the public API recovers to convert to an error.
//
// Any other panic, including runtime errors, is not ours and is re-raised.
type PartitionError struct {
	err error
}

func (e *PartitionError) Error() string {
	return e.err.Error()
}

func (e *PartitionError) Unwrap() error {
	return e.err
}

// Panic with a PartitionError.
func fatalf(format string, args ...interface{}) {
	panic(&PartitionError{errors.Errorf(format, args...)})
}

func HandlePartitionPanicRecover(r interface{}) error {
	if r != nil {
		if partitionError, ok := r.(*PartitionError); ok {
			return partitionError
		}
		panic(r)
	}
	return nil
}

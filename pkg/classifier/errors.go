package classifier

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrParse                = errors.New("malformed model file")
	ErrUnsupportedModelKind = errors.New("unsupported model kind")
	ErrInsufficientData     = errors.New("insufficient data")
	ErrInvalidParameter     = errors.New("invalid parameter")
	ErrDegenerateShape      = errors.New("degenerate shape")
	ErrDimensionMismatch    = errors.New("dimension mismatch")
)

// NeighboursError reports a k larger than the number of stored instances.
// It matches both ErrInvalidParameter and ErrInsufficientData.
type NeighboursError struct {
	K         int
	Instances int
}

func (e *NeighboursError) Error() string {
	return fmt.Sprintf("k=%v exceeds the %v stored instances", e.K, e.Instances)
}

func (e *NeighboursError) Is(target error) bool {
	return target == ErrInvalidParameter || target == ErrInsufficientData
}

package kernel

import (
	"fmt"
	"math"

	"logistics/internal/pkg/errs"
)

// Weight is a finite, non-negative mass. Orders carry one; a package's weight
// is the sum of the weights of the orders linked to it.
type Weight struct {
	value float64
}

// ZeroWeight is the weight of an empty package.
func ZeroWeight() Weight {
	return Weight{}
}

// NewWeight validates value.
func NewWeight(value float64) (Weight, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight is invalid", fmt.Errorf("%v is not finite", value))
	}
	if value < 0 {
		return Weight{}, errs.NewValueIsOutOfRangeError("weight", value, 0, math.MaxFloat64)
	}
	return Weight{value: value}, nil
}

func (w Weight) Float64() float64 {
	return w.value
}

// Add returns the sum, failing if it overflows to infinity.
func (w Weight) Add(other Weight) (Weight, error) {
	return NewWeight(w.value + other.value)
}

func (w Weight) String() string {
	return fmt.Sprintf("%g", w.value)
}

package lazy

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the set of types a Range may step through.
type Number interface {
	constraints.Integer | constraints.Float
}

// Range produces the values start, start+step, start+2·step, … as long as
// they are less than end.
//
// The k-th value is computed as start + k·step rather than by repeated
// addition, so floating-point ranges do not accumulate rounding errors:
// NewRange(0.0, 1.0, 0.1) yields exactly 10 values.
//
// A range yields ceil((end-start)/step) values if these are exactly
// representable. With rounding, start + k·step may land on end although the
// quotient is slightly above k, and the range is one value shorter:
// NewRange(0.0, 0.30000000000000004, 0.1) yields 3 values, not 4. Every
// value produced is strictly less than end.
type Range[N Number] struct {
	start, end, step N
	current          N
	count            int // number of values produced so far
	exhausted        bool
}

// NewRange creates a producer for the half-open interval [start, end).
//
// A non-positive step with start < end results in a producer which is never
// exhausted. NewRange does not check for this; it is the caller's
// responsibility (see NewCheckedRange).
func NewRange[N Number](start, end, step N) *Range[N] {
	return &Range[N]{
		start:   start,
		end:     end,
		step:    step,
		current: start,
	}
}

// NewCheckedRange is like NewRange, but refuses to create a producer which
// would never be exhausted.
func NewCheckedRange[N Number](start, end, step N) (*Range[N], error) {
	if start < end && !(step > 0) { // catches NaN, too
		return nil, fmt.Errorf("%w: [%v, %v) with step %v", ErrNonTerminating, start, end, step)
	}
	return NewRange(start, end, step), nil
}

// Next returns the current value and advances the range. Once the current
// value reaches end, the range is exhausted for good.
func (r *Range[N]) Next() (N, bool) {
	if r.exhausted || !(r.current < r.end) {
		r.exhausted = true
		var zero N
		return zero, false
	}
	result := r.current
	r.count++
	r.current = r.start + N(r.count)*r.step
	return result, true
}

// Exhausted reports whether the range has reported its end.
func (r *Range[N]) Exhausted() bool {
	return r.exhausted
}

func (r *Range[N]) String() string {
	return fmt.Sprintf("range[%v, %v) step %v @ %v", r.start, r.end, r.step, r.current)
}

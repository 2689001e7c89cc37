package section

import (
	"fmt"
	"math"
	"strconv"

	"github.com/arloliu/npy/errs"
)

// Shape is the ordered list of dimension sizes of an array, outermost first.
// Elements are laid out row-major: the last dimension varies fastest.
type Shape []int

// Vector returns the rank-1 shape of an n-element sequence.
func Vector(n int) Shape {
	return Shape{n}
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// Validate checks that the shape has rank >= 1, no negative dimension and
// an element count that fits in int.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: rank must be at least 1", errs.ErrInvalidShape)
	}

	size := 1
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d is negative (%d)", errs.ErrInvalidShape, i, dim)
		}
		if dim != 0 && size > math.MaxInt/dim {
			return fmt.Errorf("%w: element count overflows int", errs.ErrInvalidShape)
		}
		size *= dim
	}

	return nil
}

// Size returns the number of elements, the product of all dimensions.
// The result is only meaningful for a shape that passes Validate.
func (s Shape) Size() int {
	size := 1
	for _, dim := range s {
		size *= dim
	}

	return size
}

// Equal reports whether both shapes have the same dimensions.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}

	return true
}

// String returns the tuple text used in the header, e.g. "(5,)" or "(2,3)".
func (s Shape) String() string {
	return string(s.appendTuple(make([]byte, 0, 2+len(s)*4)))
}

// appendTuple appends the tuple text; rank 1 gets a trailing comma so the
// value reads as a one-element tuple rather than a parenthesized scalar.
func (s Shape) appendTuple(dst []byte) []byte {
	dst = append(dst, '(')
	for i, dim := range s {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = strconv.AppendInt(dst, int64(dim), 10)
	}
	if len(s) == 1 {
		dst = append(dst, ',')
	}

	return append(dst, ')')
}

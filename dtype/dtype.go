// Package dtype is the closed registry of scalar element types that can be
// written into an NPY array.
//
// The set of supported Go types is the Element type-set constraint. Every
// generic API in npy is constrained by Element, so asking for the descriptor
// of any other type is a compile error rather than a runtime failure:
//
//	dtype.Describe[float32]()  // {Code: "f4", Size: 4, Kind: Float}
//	dtype.Describe[string]()   // does not compile
//
// Adding a type means adding one term to Element and one entry to the table
// below; nothing in the header or payload encoders changes.
package dtype

import (
	"fmt"

	"github.com/arloliu/npy/errs"
	"github.com/arloliu/npy/format"
)

// Element is the set of Go scalar types with a registered NPY descriptor.
type Element interface {
	bool |
		int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		complex64 | complex128
}

// Descriptor describes how one element type is encoded.
type Descriptor struct {
	// Code is the NPY type code without the byte-order marker, e.g. "f4".
	Code string
	// Size is the encoded width of one element in bytes.
	Size int
	// Kind is the numeric kind of the element.
	Kind format.Kind
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s(%s, %d bytes)", d.Code, d.Kind, d.Size)
}

var (
	boolDesc       = Descriptor{Code: "?", Size: 1, Kind: format.KindBool}
	int8Desc       = Descriptor{Code: "i1", Size: 1, Kind: format.KindInt}
	int16Desc      = Descriptor{Code: "i2", Size: 2, Kind: format.KindInt}
	int32Desc      = Descriptor{Code: "i4", Size: 4, Kind: format.KindInt}
	int64Desc      = Descriptor{Code: "i8", Size: 8, Kind: format.KindInt}
	uint8Desc      = Descriptor{Code: "u1", Size: 1, Kind: format.KindUint}
	uint16Desc     = Descriptor{Code: "u2", Size: 2, Kind: format.KindUint}
	uint32Desc     = Descriptor{Code: "u4", Size: 4, Kind: format.KindUint}
	uint64Desc     = Descriptor{Code: "u8", Size: 8, Kind: format.KindUint}
	float32Desc    = Descriptor{Code: "f4", Size: 4, Kind: format.KindFloat}
	float64Desc    = Descriptor{Code: "f8", Size: 8, Kind: format.KindFloat}
	complex64Desc  = Descriptor{Code: "c8", Size: 8, Kind: format.KindComplex}
	complex128Desc = Descriptor{Code: "c16", Size: 16, Kind: format.KindComplex}
)

// registry lists every descriptor in a stable order.
var registry = []Descriptor{
	boolDesc,
	int8Desc, int16Desc, int32Desc, int64Desc,
	uint8Desc, uint16Desc, uint32Desc, uint64Desc,
	float32Desc, float64Desc,
	complex64Desc, complex128Desc,
}

var byCode = func() map[string]Descriptor {
	m := make(map[string]Descriptor, len(registry))
	for _, d := range registry {
		m[d.Code] = d
	}

	return m
}()

// Describe returns the descriptor of T.
func Describe[T Element]() Descriptor {
	var zero T
	switch any(zero).(type) {
	case bool:
		return boolDesc
	case int8:
		return int8Desc
	case int16:
		return int16Desc
	case int32:
		return int32Desc
	case int64:
		return int64Desc
	case uint8:
		return uint8Desc
	case uint16:
		return uint16Desc
	case uint32:
		return uint32Desc
	case uint64:
		return uint64Desc
	case float32:
		return float32Desc
	case float64:
		return float64Desc
	case complex64:
		return complex64Desc
	case complex128:
		return complex128Desc
	}

	// unreachable: Element is a closed type set
	panic(fmt.Sprintf("dtype: no descriptor for %T", zero))
}

// CodeOf returns the NPY type code of T.
func CodeOf[T Element]() string {
	return Describe[T]().Code
}

// SizeOf returns the encoded width of T in bytes.
func SizeOf[T Element]() int {
	return Describe[T]().Size
}

// Lookup returns the descriptor registered for code.
//
// Returns:
//   - Descriptor: the registered descriptor
//   - error: errs.ErrUnknownTypeCode if no type uses code
func Lookup(code string) (Descriptor, error) {
	d, ok := byCode[code]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", errs.ErrUnknownTypeCode, code)
	}

	return d, nil
}

// All returns a copy of every registered descriptor.
func All() []Descriptor {
	out := make([]Descriptor, len(registry))
	copy(out, registry)

	return out
}

package encoding

import (
	"fmt"
	"io"
	"iter"
	"math"

	"github.com/arloliu/npy/dtype"
	"github.com/arloliu/npy/endian"
	"github.com/arloliu/npy/errs"
	"github.com/arloliu/npy/internal/pool"
)

// Unlimited disables the element count check of WriteSeq.
const Unlimited = -1

// PayloadWriter encodes elements of type T into NPY payload bytes.
//
// Every element is serialized explicitly in the byte order of the engine;
// nothing relies on the in-memory representation of T. The same serializer
// backs the bulk (WriteSlice) and the incremental (WriteSeq) path, so both
// produce identical bytes for the same elements.
//
// A PayloadWriter holds no mutable state and is safe for concurrent use.
type PayloadWriter[T dtype.Element] struct {
	engine endian.EndianEngine
	desc   dtype.Descriptor
}

// NewPayloadWriter creates a payload writer for T using the specified endian engine.
//
// Parameters:
//   - engine: byte order of multi-byte elements; nil selects the native order
//
// Returns:
//   - *PayloadWriter[T]: a new writer
func NewPayloadWriter[T dtype.Element](engine endian.EndianEngine) *PayloadWriter[T] {
	if engine == nil {
		engine = endian.GetNativeEngine()
	}

	return &PayloadWriter[T]{
		engine: engine,
		desc:   dtype.Describe[T](),
	}
}

// Engine returns the byte order used for multi-byte elements.
func (p *PayloadWriter[T]) Engine() endian.EndianEngine {
	return p.engine
}

// ElementSize returns the encoded width of one element in bytes.
func (p *PayloadWriter[T]) ElementSize() int {
	return p.desc.Size
}

// AppendSlice appends the encoding of values to dst and returns the extended slice.
//
// Encoding rules:
//   - bool: one byte, 0x00 or 0x01
//   - integers: two's complement in the engine's byte order
//   - floats: IEEE 754 bits in the engine's byte order
//   - complex: real part, then imaginary part, each as a float
func (p *PayloadWriter[T]) AppendSlice(dst []byte, values []T) []byte {
	e := p.engine

	switch vs := any(values).(type) {
	case []bool:
		for _, v := range vs {
			if v {
				dst = append(dst, 1)
			} else {
				dst = append(dst, 0)
			}
		}
	case []int8:
		for _, v := range vs {
			dst = append(dst, byte(v))
		}
	case []uint8:
		dst = append(dst, vs...)
	case []int16:
		for _, v := range vs {
			dst = e.AppendUint16(dst, uint16(v)) //nolint:gosec // bit-preserving conversion
		}
	case []uint16:
		for _, v := range vs {
			dst = e.AppendUint16(dst, v)
		}
	case []int32:
		for _, v := range vs {
			dst = e.AppendUint32(dst, uint32(v)) //nolint:gosec // bit-preserving conversion
		}
	case []uint32:
		for _, v := range vs {
			dst = e.AppendUint32(dst, v)
		}
	case []int64:
		for _, v := range vs {
			dst = e.AppendUint64(dst, uint64(v)) //nolint:gosec // bit-preserving conversion
		}
	case []uint64:
		for _, v := range vs {
			dst = e.AppendUint64(dst, v)
		}
	case []float32:
		for _, v := range vs {
			dst = e.AppendUint32(dst, math.Float32bits(v))
		}
	case []float64:
		for _, v := range vs {
			dst = e.AppendUint64(dst, math.Float64bits(v))
		}
	case []complex64:
		for _, v := range vs {
			dst = e.AppendUint32(dst, math.Float32bits(real(v)))
			dst = e.AppendUint32(dst, math.Float32bits(imag(v)))
		}
	case []complex128:
		for _, v := range vs {
			dst = e.AppendUint64(dst, math.Float64bits(real(v)))
			dst = e.AppendUint64(dst, math.Float64bits(imag(v)))
		}
	default:
		// unreachable: Element is a closed type set
		panic(fmt.Sprintf("encoding: no serializer for %T", values))
	}

	return dst
}

// WriteSlice writes values to w with a single Write of len(values)*ElementSize() bytes.
//
// Returns:
//   - int64: number of bytes written
//   - error: the error returned by w, if any
func (p *PayloadWriter[T]) WriteSlice(w io.Writer, values []T) (int64, error) {
	if len(values) == 0 {
		return 0, nil
	}

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	buf.Grow(len(values) * p.desc.Size)
	buf.B = p.AppendSlice(buf.B, values)

	return buf.WriteTo(w)
}

// WriteSeq writes the elements yielded by seq to w one element at a time.
//
// Each element is encoded into a small fixed buffer which is then written.
// When limit is not Unlimited, the sequence must yield exactly limit
// elements: iteration stops as soon as an extra element is produced, and a
// short sequence is reported after it ends. Both cases return
// errs.ErrShapeMismatch; the elements already written stay written.
//
// Returns:
//   - int: number of elements written
//   - int64: number of bytes written
//   - error: write error or errs.ErrShapeMismatch
func (p *PayloadWriter[T]) WriteSeq(w io.Writer, seq iter.Seq[T], limit int) (int, int64, error) {
	var (
		count   int
		written int64
		err     error
		one     [1]T
	)
	buf := make([]byte, 0, 16) // widest element is complex128

	for v := range seq {
		if limit != Unlimited && count == limit {
			err = fmt.Errorf("%w: sequence yields more than %d elements", errs.ErrShapeMismatch, limit)
			break
		}

		one[0] = v
		buf = p.AppendSlice(buf[:0], one[:])

		var n int
		n, err = w.Write(buf)
		written += int64(n)
		if err != nil {
			break
		}
		count++
	}

	if err != nil {
		return count, written, err
	}

	if limit != Unlimited && count != limit {
		return count, written, fmt.Errorf("%w: sequence yielded %d of %d elements", errs.ErrShapeMismatch, count, limit)
	}

	return count, written, nil
}

// Package npy writes typed N-dimensional arrays in the NumPy NPY v2.0 format.
//
// An NPY file is a self-describing binary container: a preamble with the
// magic string and format version, a textual header declaring the element
// type, memory order and shape, and the raw row-major element bytes.
//
// # Core Features
//
//   - Closed element type set: bool, signed and unsigned 8 to 64-bit
//     integers, float32, float64, complex64 and complex128, checked at
//     compile time
//   - Headers padded to 16 bytes (or any multiple of 16) for aligned reads
//   - Native, little-endian or big-endian payloads, always matching the
//     declared byte-order marker
//   - Bulk writes from slices and incremental writes from iterators with
//     byte-identical output
//   - Output to caller-owned writers, files (optionally atomic), zstd, S2 or
//     LZ4 compressed streams, S3 and MinIO objects
//   - xxHash64 or BLAKE3 digest of every written array
//
// # Basic Usage
//
// Writing a matrix to a file:
//
//	import "github.com/arloliu/npy"
//
//	values := []float32{1, 2, 3, 4, 5, 6}
//	res, err := npy.WriteFile("matrix.npy", npy.Shape{2, 3}, values)
//
// Writing a vector to any io.Writer:
//
//	var buf bytes.Buffer
//	_, err := npy.WriteTo(&buf, npy.Shape{3}, []uint8{1, 2, 3})
//
// Streaming elements from an iterator:
//
//	_, err := npy.WriteSeq(target.File("ramp.npy"), npy.Shape{n}, func(yield func(float64) bool) {
//	    for i := range n {
//	        if !yield(float64(i)) {
//	            return
//	        }
//	    }
//	})
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the array
// package. Use array.Encoder directly to reuse one configuration for many
// arrays, and the target package for other destinations.
package npy

import (
	"bytes"
	"io"
	"iter"

	"github.com/arloliu/npy/array"
	"github.com/arloliu/npy/dtype"
	"github.com/arloliu/npy/section"
	"github.com/arloliu/npy/target"
)

// Shape is the extent of each array dimension, outermost first.
type Shape = section.Shape

// Result describes one written array.
type Result = array.Result

// Option configures how arrays are encoded.
type Option = array.Option

// Write writes values as an array of the given shape to t.
//
// len(values) must equal the product of shape; otherwise errs.ErrShapeMismatch
// is returned before t is opened.
//
// Parameters:
//   - t: the destination (see target.Stream, target.File, target.Compressed)
//   - shape: array dimensions, at least one
//   - values: elements in row-major order
//   - opts: encoding options (see array.Option)
//
// Returns:
//   - Result: sizes and digest of the written array
//   - error: shape, option or I/O error
//
// Available options:
//   - array.WithNativeEndian() / array.WithLittleEndian() / array.WithBigEndian()
//   - array.WithAlignment(16|32|64|...)
//   - array.WithDigest(format.DigestNone|DigestXXH64|DigestBLAKE3)
//   - array.WithLogger(*slog.Logger)
//
// Example:
//
//	res, err := npy.Write(target.Compressed(target.File("m.npy.zst"), format.CompressionZstd),
//	    npy.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6},
//	    array.WithLittleEndian(),
//	)
func Write[T dtype.Element](t target.Target, shape Shape, values []T, opts ...Option) (Result, error) {
	enc, err := array.NewEncoder[T](opts...)
	if err != nil {
		return Result{}, err
	}

	return enc.Write(t, shape, values)
}

// WriteSeq writes the elements yielded by seq as an array of the given shape to t.
//
// Elements are written as they are produced, one write per element. A
// sequence longer or shorter than the shape fails with errs.ErrShapeMismatch
// and the sink is aborted.
func WriteSeq[T dtype.Element](t target.Target, shape Shape, seq iter.Seq[T], opts ...Option) (Result, error) {
	enc, err := array.NewEncoder[T](opts...)
	if err != nil {
		return Result{}, err
	}

	return enc.WriteSeq(t, shape, seq)
}

// WriteVector writes values as a one-dimensional array of shape (len(values),).
func WriteVector[T dtype.Element](t target.Target, values []T, opts ...Option) (Result, error) {
	return Write(t, section.Vector(len(values)), values, opts...)
}

// WriteFile writes values to the file at path, creating or truncating it.
func WriteFile[T dtype.Element](path string, shape Shape, values []T, opts ...Option) (Result, error) {
	return Write(target.File(path), shape, values, opts...)
}

// WriteFileVector writes values to the file at path as a one-dimensional array.
func WriteFileVector[T dtype.Element](path string, values []T, opts ...Option) (Result, error) {
	return WriteVector(target.File(path), values, opts...)
}

// WriteTo writes values to w. w is not closed.
func WriteTo[T dtype.Element](w io.Writer, shape Shape, values []T, opts ...Option) (Result, error) {
	return Write(target.Stream(w), shape, values, opts...)
}

// Encode returns the complete NPY bytes of values.
//
// Example:
//
//	data, err := npy.Encode(npy.Shape{3}, []int64{1, 2, 3})
func Encode[T dtype.Element](shape Shape, values []T, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := WriteTo(&buf, shape, values, opts...); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

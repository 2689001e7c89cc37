package array

import (
	"github.com/arloliu/npy/format"
	"github.com/arloliu/npy/section"
)

// Result describes one array written to a target.
type Result struct {
	// Descr is the declared element type, e.g. "<f4".
	Descr string
	// Shape is the array shape.
	Shape section.Shape
	// HeaderLen is the size of the header block in bytes, preamble included.
	HeaderLen int
	// PayloadLen is the number of payload bytes written.
	PayloadLen int64
	// Elements is the number of elements written.
	Elements int
	// Digest is the digest algorithm of Sum.
	Digest format.DigestType
	// Sum is the hex digest of the uncompressed NPY bytes; empty when disabled.
	Sum string
}

// Size returns the total number of NPY bytes, before any compression.
func (r Result) Size() int64 {
	return int64(r.HeaderLen) + r.PayloadLen
}

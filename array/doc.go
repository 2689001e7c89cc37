// Package array writes typed N-dimensional arrays as NPY v2.0 byte streams.
//
// An Encoder[T] binds an element type to an encoding configuration and
// writes arrays to any target.Target. Each call runs the same sequence:
//
//	validate shape -> open sink -> header -> payload -> close
//
// and aborts the sink when any step after opening fails.
//
// # Encoding Workflow
//
//	enc, err := array.NewEncoder[float32](
//	    array.WithLittleEndian(),
//	    array.WithAlignment(64),
//	)
//
//	// contiguous slice: one bulk payload write
//	res, err := enc.Write(target.File("m.npy"), section.Shape{2, 3}, values)
//
//	// iterator: one write per element, counted against the shape
//	res, err = enc.WriteSeq(target.Stream(w), section.Vector(n), seq)
//
// # Element Count
//
// The number of elements must equal the product of the shape. A slice of the
// wrong length is rejected before the target is opened. An iterator is
// checked while it is consumed: the write stops at the first element beyond
// the shape, or fails once a short iterator ends, and the sink is aborted.
//
// # Result
//
// A successful call returns a Result with the header and payload sizes and,
// unless disabled, a digest of every byte handed to the target.
package array

// Package encoding writes the payload section of an NPY file.
//
// The payload is the row-major sequence of elements that follows the header.
// PayloadWriter offers two paths over one serializer:
//
//   - WriteSlice: the source is a contiguous slice. All elements are encoded
//     into one pooled buffer and written with a single Write call.
//   - WriteSeq: the source is an iter.Seq. Each element is encoded into a
//     small buffer and written as it is produced.
//
// Elements are always serialized explicitly in the byte order of the
// configured endian.EndianEngine, so the payload agrees with the byte-order
// marker the header derives from the same engine, on any host.
//
// Example:
//
//	pw := encoding.NewPayloadWriter[float32](endian.GetNativeEngine())
//	n, err := pw.WriteSlice(w, []float32{1, 2, 3})
package encoding

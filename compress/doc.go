// Package compress provides streaming compressors for compressed NPY outputs.
//
// A compressed target wraps the whole NPY byte stream (header and payload)
// in one container:
//
//   - None: bytes pass through unchanged
//   - Zstd: Zstandard frame (klauspost/compress, or libzstd via valyala/gozstd
//     when built with -tags gozstd and cgo enabled)
//   - S2: S2 stream format (klauspost/compress/s2), readable by s2.NewReader
//   - LZ4: LZ4 frame format (pierrec/lz4/v4), readable by the lz4 CLI
//
// Usage:
//
//	zw, err := compress.NewWriter(f, format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	// write header and payload to zw
//	if err := zw.Close(); err != nil { // flushes the frame, leaves f open
//	    return err
//	}
//
// Zstd and LZ4 writers are pooled; a writer must not be used after Close.
package compress

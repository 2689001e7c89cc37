package compress

import (
	"fmt"
	"io"

	"github.com/arloliu/npy/errs"
	"github.com/arloliu/npy/format"
)

// NewWriter wraps w in a streaming compressor of the given type.
//
// Closing the returned writer flushes and finalizes the compressed stream
// but never closes w.
//
// Parameters:
//   - w: destination of the compressed stream
//   - compressionType: None, Zstd, S2 or LZ4
//
// Returns:
//   - io.WriteCloser: compressing writer
//   - error: errs.ErrUnsupportedCompression for an unknown type
func NewWriter(w io.Writer, compressionType format.CompressionType) (io.WriteCloser, error) {
	switch compressionType {
	case format.CompressionNone:
		return newNoOpWriter(w), nil
	case format.CompressionZstd:
		return newZstdWriter(w)
	case format.CompressionS2:
		return newS2Writer(w), nil
	case format.CompressionLZ4:
		return newLZ4Writer(w), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
	}
}

// Supported reports whether NewWriter accepts the compression type.
func Supported(compressionType format.CompressionType) bool {
	switch compressionType {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
		return true
	default:
		return false
	}
}

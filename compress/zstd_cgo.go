//go:build gozstd && cgo

package compress

import (
	"io"

	"github.com/valyala/gozstd"
)

// zstdWriter streams a zstd frame through the cgo libzstd binding.
// Build with -tags gozstd to select it.
type zstdWriter struct {
	zw *gozstd.Writer
}

var _ io.WriteCloser = (*zstdWriter)(nil)

func newZstdWriter(w io.Writer) (io.WriteCloser, error) {
	return &zstdWriter{zw: gozstd.NewWriterLevel(w, zstdLevel)}, nil
}

func (z *zstdWriter) Write(p []byte) (int, error) {
	if z.zw == nil {
		return 0, io.ErrClosedPipe
	}

	return z.zw.Write(p)
}

// Close finalizes the frame and frees the C encoder.
func (z *zstdWriter) Close() error {
	if z.zw == nil {
		return nil
	}

	err := z.zw.Close()
	z.zw.Release()
	z.zw = nil

	return err
}

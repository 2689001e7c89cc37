//go:build !gozstd || !cgo

package compress

import (
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdEncoderPool pools zstd encoders. The klauspost encoder is designed to
// be reused through Reset, which avoids re-allocating its window buffers.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(zstdLevel)),
			zstd.WithEncoderConcurrency(1),
		)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}

		return encoder
	},
}

// zstdWriter streams a zstd frame and returns the encoder to the pool on Close.
type zstdWriter struct {
	enc *zstd.Encoder
}

var _ io.WriteCloser = (*zstdWriter)(nil)

func newZstdWriter(w io.Writer) (io.WriteCloser, error) {
	enc, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	enc.Reset(w)

	return &zstdWriter{enc: enc}, nil
}

func (z *zstdWriter) Write(p []byte) (int, error) {
	if z.enc == nil {
		return 0, io.ErrClosedPipe
	}

	return z.enc.Write(p)
}

func (z *zstdWriter) Close() error {
	if z.enc == nil {
		return nil
	}

	err := z.enc.Close()
	z.enc.Reset(nil)
	zstdEncoderPool.Put(z.enc)
	z.enc = nil

	return err
}

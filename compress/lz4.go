package compress

import (
	"io"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4WriterPool pools lz4 frame writers; Reset rebinds them to a new destination.
var lz4WriterPool = sync.Pool{
	New: func() any {
		return lz4.NewWriter(nil)
	},
}

// lz4Writer writes an LZ4 frame and returns the frame writer to the pool on Close.
type lz4Writer struct {
	zw *lz4.Writer
}

var _ io.WriteCloser = (*lz4Writer)(nil)

func newLZ4Writer(w io.Writer) *lz4Writer {
	zw, _ := lz4WriterPool.Get().(*lz4.Writer)
	zw.Reset(w)

	return &lz4Writer{zw: zw}
}

func (l *lz4Writer) Write(p []byte) (int, error) {
	if l.zw == nil {
		return 0, io.ErrClosedPipe
	}

	return l.zw.Write(p)
}

// Close writes the frame end mark. The frame writer is pooled again even if
// flushing fails.
func (l *lz4Writer) Close() error {
	if l.zw == nil {
		return nil
	}

	err := l.zw.Close()
	l.zw.Reset(nil)
	lz4WriterPool.Put(l.zw)
	l.zw = nil

	return err
}

package compress

import (
	"io"

	"github.com/klauspost/compress/s2"
)

// newS2Writer returns an S2 stream writer. s2.Writer.Close flushes the
// final block and leaves the underlying writer open.
func newS2Writer(w io.Writer) io.WriteCloser {
	return s2.NewWriter(w, s2.WriterConcurrency(1))
}

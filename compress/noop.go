package compress

import "io"

// noOpWriter passes bytes through unchanged; Close is a no-op.
type noOpWriter struct {
	w io.Writer
}

var _ io.WriteCloser = (*noOpWriter)(nil)

func newNoOpWriter(w io.Writer) *noOpWriter {
	return &noOpWriter{w: w}
}

func (n *noOpWriter) Write(p []byte) (int, error) {
	return n.w.Write(p)
}

func (n *noOpWriter) Close() error {
	return nil
}

// Package hash computes digests of the bytes written to an output target.
package hash

import (
	"encoding/hex"
	"fmt"
	stdhash "hash"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"

	"github.com/arloliu/npy/errs"
	"github.com/arloliu/npy/format"
)

// New returns a fresh hash for the digest type, or nil for format.DigestNone.
func New(typ format.DigestType) (stdhash.Hash, error) {
	switch typ {
	case format.DigestNone:
		return nil, nil
	case format.DigestXXH64:
		return xxhash.New(), nil
	case format.DigestBLAKE3:
		return blake3.New(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedDigest, typ)
	}
}

// Writer forwards writes to an underlying writer while counting the bytes
// and feeding them to a digest.
type Writer struct {
	w   io.Writer
	h   stdhash.Hash
	typ format.DigestType
	n   int64
}

// NewWriter wraps w with a digest of the given type.
func NewWriter(w io.Writer, typ format.DigestType) (*Writer, error) {
	h, err := New(typ)
	if err != nil {
		return nil, err
	}

	return &Writer{w: w, h: h, typ: typ}, nil
}

// Write writes p to the underlying writer; only the accepted bytes are hashed.
func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	if n > 0 {
		w.n += int64(n)
		if w.h != nil {
			_, _ = w.h.Write(p[:n])
		}
	}

	return n, err
}

// Count returns the number of bytes written so far.
func (w *Writer) Count() int64 {
	return w.n
}

// Type returns the digest type.
func (w *Writer) Type() format.DigestType {
	return w.typ
}

// Sum returns the hex encoded digest of the bytes written so far, or ""
// when digests are disabled.
func (w *Writer) Sum() string {
	if w.h == nil {
		return ""
	}

	return hex.EncodeToString(w.h.Sum(nil))
}

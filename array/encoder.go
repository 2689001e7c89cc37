package array

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/arloliu/npy/dtype"
	"github.com/arloliu/npy/encoding"
	"github.com/arloliu/npy/errs"
	"github.com/arloliu/npy/internal/hash"
	"github.com/arloliu/npy/internal/options"
	"github.com/arloliu/npy/section"
	"github.com/arloliu/npy/target"
)

// Encoder writes arrays of element type T.
//
// An Encoder holds only its configuration, so it is safe for concurrent use
// and can be reused for any number of arrays. Each call owns the sink it
// opens.
type Encoder[T dtype.Element] struct {
	*EncoderConfig

	desc    dtype.Descriptor
	payload *encoding.PayloadWriter[T]
}

// NewEncoder creates an encoder for T.
//
// Returns:
//   - *Encoder[T]: the encoder
//   - error: an option error, e.g. ErrInvalidAlignment
func NewEncoder[T dtype.Element](opts ...Option) (*Encoder[T], error) {
	cfg := NewEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Encoder[T]{
		EncoderConfig: cfg,
		desc:          dtype.Describe[T](),
		payload:       encoding.NewPayloadWriter[T](cfg.engine),
	}, nil
}

// Descriptor returns the element type descriptor of T.
func (e *Encoder[T]) Descriptor() dtype.Descriptor {
	return e.desc
}

// Header builds the header this encoder writes for shape.
func (e *Encoder[T]) Header(shape section.Shape) (*section.Header, error) {
	return section.NewHeader(e.desc, shape, e.headerOptions()...)
}

// Write writes values as an array of the given shape to t.
//
// len(values) must equal the product of shape; otherwise ErrShapeMismatch is
// returned and t is never opened. The payload is written with one bulk write.
func (e *Encoder[T]) Write(t target.Target, shape section.Shape, values []T) (Result, error) {
	header, err := e.Header(shape)
	if err != nil {
		return Result{}, err
	}

	if size := header.Shape.Size(); len(values) != size {
		return Result{}, fmt.Errorf("%w: shape %s holds %d elements, got %d",
			errs.ErrShapeMismatch, header.Shape, size, len(values))
	}

	return e.write(t, header, func(w io.Writer) (int, int64, error) {
		n, err := e.payload.WriteSlice(w, values)
		if err != nil {
			return 0, n, err
		}

		return len(values), n, nil
	})
}

// WriteSeq writes the elements yielded by seq as an array of the given shape to t.
//
// Elements are written one at a time as they are produced. If seq yields more
// elements than the shape holds, iteration stops at the first extra one; if it
// yields fewer, the mismatch is detected when it ends. Both return
// ErrShapeMismatch and abort the sink.
func (e *Encoder[T]) WriteSeq(t target.Target, shape section.Shape, seq iter.Seq[T]) (Result, error) {
	header, err := e.Header(shape)
	if err != nil {
		return Result{}, err
	}

	limit := header.Shape.Size()

	return e.write(t, header, func(w io.Writer) (int, int64, error) {
		return e.payload.WriteSeq(w, seq, limit)
	})
}

// payloadFunc writes the payload and reports elements and bytes written.
type payloadFunc func(w io.Writer) (int, int64, error)

func (e *Encoder[T]) write(t target.Target, header *section.Header, writePayload payloadFunc) (Result, error) {
	if t == nil {
		return Result{}, fmt.Errorf("%w: nil target", errs.ErrInvalidTarget)
	}

	res := Result{
		Descr:     header.Descr,
		Shape:     header.Shape,
		HeaderLen: header.Len(),
		Digest:    e.digest,
	}

	sink, err := t.Open()
	if err != nil {
		return res, fmt.Errorf("open %s: %w", t, err)
	}

	hw, err := hash.NewWriter(sink, e.digest)
	if err != nil {
		return res, e.abort(t, sink, res, err)
	}

	if _, err := header.WriteTo(hw); err != nil {
		return res, e.abort(t, sink, res, fmt.Errorf("write header: %w", err))
	}

	count, n, err := writePayload(hw)
	res.Elements = count
	res.PayloadLen = n
	if err != nil {
		if !errors.Is(err, errs.ErrShapeMismatch) {
			err = fmt.Errorf("write payload: %w", err)
		}

		return res, e.abort(t, sink, res, err)
	}

	if err := sink.Close(); err != nil {
		e.logger.Warn("closing target failed",
			"target", t.String(),
			"descr", res.Descr,
			"shape", res.Shape.String(),
			"error", err,
		)

		return res, fmt.Errorf("close %s: %w", t, err)
	}

	res.Sum = hw.Sum()

	e.logger.Debug("array written",
		"target", t.String(),
		"descr", res.Descr,
		"shape", res.Shape.String(),
		"bytes", res.Size(),
		"digest", res.Digest.String(),
		"sum", res.Sum,
	)

	return res, nil
}

// abort releases sink after a failed write and returns cause, joined with
// any error from the abort itself.
func (e *Encoder[T]) abort(t target.Target, sink target.Sink, res Result, cause error) error {
	e.logger.Warn("array write aborted",
		"target", t.String(),
		"descr", res.Descr,
		"shape", res.Shape.String(),
		"elements", res.Elements,
		"error", cause,
	)

	if err := sink.Abort(cause); err != nil {
		return errors.Join(cause, fmt.Errorf("abort %s: %w", t, err))
	}

	return cause
}

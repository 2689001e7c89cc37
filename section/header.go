package section

import (
	"fmt"
	"io"

	"github.com/arloliu/npy/dtype"
	"github.com/arloliu/npy/endian"
	"github.com/arloliu/npy/errs"
	"github.com/arloliu/npy/internal/options"
)

// HeaderConfig holds the settings used to build a Header.
type HeaderConfig struct {
	engine    endian.EndianEngine
	alignment int
}

// HeaderOption configures a HeaderConfig.
type HeaderOption = options.Option[*HeaderConfig]

// WithEngine sets the byte order declared in the descr field.
// It must be the engine the payload is encoded with. The default is the native engine.
func WithEngine(engine endian.EndianEngine) HeaderOption {
	return options.NoError(func(c *HeaderConfig) {
		if engine != nil {
			c.engine = engine
		}
	})
}

// WithAlignment sets the block size the header is padded to.
// n must be a positive multiple of 16; 16 is the default and 64 matches
// current NumPy writers.
func WithAlignment(n int) HeaderOption {
	return options.New(func(c *HeaderConfig) error {
		if n <= 0 || n%DefaultAlignment != 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidAlignment, n)
		}
		c.alignment = n

		return nil
	})
}

// Header is the immutable NPY v2.0 header of one array.
//
// Layout:
//
//	offset 0   : 6 bytes   magic 0x93 'NUMPY'
//	offset 6   : 1 byte    version major (0x02)
//	offset 7   : 1 byte    version minor (0x00)
//	offset 8   : 4 bytes   little-endian uint32 L
//	offset 12  : L bytes   metadata text, padding spaces, '\n'
type Header struct {
	// Descr is the byte-order marker followed by the type code, e.g. "<f4".
	Descr string
	// Shape is the array shape.
	Shape Shape

	dict      []byte
	padding   int
	alignment int
}

// NewHeader builds the header for an array of desc elements with the given shape.
//
// Returns:
//   - *Header: the built header
//   - error: ErrInvalidShape, ErrInvalidAlignment or ErrHeaderTooLarge
func NewHeader(desc dtype.Descriptor, shape Shape, opts ...HeaderOption) (*Header, error) {
	cfg := &HeaderConfig{
		engine:    endian.GetNativeEngine(),
		alignment: DefaultAlignment,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if err := shape.Validate(); err != nil {
		return nil, err
	}

	h := &Header{
		Descr:     string(endian.Marker(cfg.engine)) + desc.Code,
		Shape:     append(Shape(nil), shape...),
		alignment: cfg.alignment,
	}
	h.dict = h.appendDict(make([]byte, 0, 64+len(shape)*8))

	// An already aligned block still receives a full block of padding.
	unpadded := DictOffset + len(h.dict) + 1
	h.padding = h.alignment - unpadded%h.alignment

	if uint64(len(h.dict)+h.padding+1) > MaxHeaderLength {
		return nil, errs.ErrHeaderTooLarge
	}

	return h, nil
}

// appendDict appends the metadata text:
//
//	{'descr': '<f4', 'fortran_order': False, 'shape': (2,3), }
func (h *Header) appendDict(dst []byte) []byte {
	dst = append(dst, "{'descr': '"...)
	dst = append(dst, h.Descr...)
	dst = append(dst, "', 'fortran_order': False, 'shape': "...)
	dst = h.Shape.appendTuple(dst)

	return append(dst, ", }"...)
}

// Dict returns the metadata text without padding and newline.
func (h *Header) Dict() string {
	return string(h.dict)
}

// Padding returns the number of space bytes between the metadata text and the newline.
func (h *Header) Padding() int {
	return h.padding
}

// Alignment returns the block size the header is padded to.
func (h *Header) Alignment() int {
	return h.alignment
}

// HeaderLen returns the value of the 4-byte length field: text + padding + newline.
func (h *Header) HeaderLen() uint32 {
	return uint32(len(h.dict) + h.padding + 1) //nolint:gosec // bounded in NewHeader
}

// Len returns the total size of the header in bytes, a multiple of Alignment.
func (h *Header) Len() int {
	return DictOffset + int(h.HeaderLen())
}

// AppendTo appends the encoded header to dst.
func (h *Header) AppendTo(dst []byte) []byte {
	dst = append(dst, Magic[:]...)
	dst = append(dst, VersionMajor, VersionMinor)
	// the length field is little-endian regardless of the payload byte order
	dst = endian.GetLittleEndianEngine().AppendUint32(dst, h.HeaderLen())
	dst = append(dst, h.dict...)
	for range h.padding {
		dst = append(dst, headerPad)
	}

	return append(dst, headerNewline)
}

// Bytes returns the encoded header.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, h.Len()))
}

// WriteTo writes the encoded header to w in a single Write call.
func (h *Header) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(h.Bytes())
	return int64(n), err
}

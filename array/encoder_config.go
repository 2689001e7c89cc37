package array

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/npy/endian"
	"github.com/arloliu/npy/errs"
	"github.com/arloliu/npy/format"
	"github.com/arloliu/npy/internal/options"
	"github.com/arloliu/npy/section"
)

// EncoderConfig holds the settings shared by all encoders.
type EncoderConfig struct {
	engine    endian.EndianEngine
	alignment int
	digest    format.DigestType
	logger    *slog.Logger
}

// NewEncoderConfig returns the default configuration: native byte order,
// 16-byte header alignment, xxHash64 digest and a discarding logger.
func NewEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		engine:    endian.GetNativeEngine(),
		alignment: section.DefaultAlignment,
		digest:    format.DigestXXH64,
		logger:    slog.New(slog.DiscardHandler),
	}
}

// Engine returns the byte order of the header marker and the payload.
func (c *EncoderConfig) Engine() endian.EndianEngine {
	return c.engine
}

// Alignment returns the header block size.
func (c *EncoderConfig) Alignment() int {
	return c.alignment
}

// Digest returns the digest computed over written bytes.
func (c *EncoderConfig) Digest() format.DigestType {
	return c.digest
}

func (c *EncoderConfig) headerOptions() []section.HeaderOption {
	return []section.HeaderOption{
		section.WithEngine(c.engine),
		section.WithAlignment(c.alignment),
	}
}

// Option represents a functional option for configuring the EncoderConfig.
type Option = options.Option[*EncoderConfig]

// WithNativeEndian uses the byte order of the host. It is the default option.
func WithNativeEndian() Option {
	return options.NoError(func(c *EncoderConfig) {
		c.engine = endian.GetNativeEngine()
	})
}

// WithLittleEndian declares '<' and writes multi-byte elements little-endian.
func WithLittleEndian() Option {
	return options.NoError(func(c *EncoderConfig) {
		c.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian declares '>' and writes multi-byte elements big-endian.
func WithBigEndian() Option {
	return options.NoError(func(c *EncoderConfig) {
		c.engine = endian.GetBigEndianEngine()
	})
}

// WithAlignment pads headers to a multiple of n bytes.
// n must be a positive multiple of 16.
func WithAlignment(n int) Option {
	return options.New(func(c *EncoderConfig) error {
		if n <= 0 || n%section.DefaultAlignment != 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidAlignment, n)
		}
		c.alignment = n

		return nil
	})
}

// WithDigest selects the digest reported in Result.
// format.DigestNone disables hashing.
func WithDigest(typ format.DigestType) Option {
	return options.New(func(c *EncoderConfig) error {
		switch typ {
		case format.DigestNone, format.DigestXXH64, format.DigestBLAKE3:
			c.digest = typ
			return nil
		default:
			return fmt.Errorf("%w: %s", errs.ErrUnsupportedDigest, typ)
		}
	})
}

// WithLogger sets the logger for write and abort records. nil discards.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *EncoderConfig) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		c.logger = logger
	})
}

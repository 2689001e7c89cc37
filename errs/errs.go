// Package errs defines the sentinel errors returned by the npy packages.
//
// Errors are wrapped with context using fmt.Errorf("...: %w", err), so callers
// should compare with errors.Is rather than equality.
package errs

import "errors"

var (
	// ErrInvalidShape is returned when a shape has rank zero or a negative dimension.
	ErrInvalidShape = errors.New("invalid array shape")
	// ErrShapeMismatch is returned when the element count differs from the product of the shape.
	ErrShapeMismatch = errors.New("element count does not match shape")
	// ErrHeaderTooLarge is returned when the header length does not fit the 4-byte length field.
	ErrHeaderTooLarge = errors.New("header length exceeds uint32")
	// ErrInvalidAlignment is returned when the header alignment is not a positive multiple of 16.
	ErrInvalidAlignment = errors.New("header alignment must be a positive multiple of 16")
	// ErrUnsupportedCompression is returned for an unknown compression type.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
	// ErrUnsupportedDigest is returned for an unknown digest type.
	ErrUnsupportedDigest = errors.New("unsupported digest type")
	// ErrUnknownTypeCode is returned when a type code is not in the registry.
	ErrUnknownTypeCode = errors.New("unknown type code")
	// ErrSinkClosed is returned when writing to a sink that was already closed or aborted.
	ErrSinkClosed = errors.New("sink already closed")
	// ErrInvalidTarget is returned when a target is missing a required field.
	ErrInvalidTarget = errors.New("invalid output target")
)

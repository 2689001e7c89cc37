// Package npytest parses NPY byte streams in tests.
//
// Parse is an independent reader: it checks the preamble and the metadata
// text against the published format rather than reusing the writer's code.
package npytest

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	magic = []byte("\x93NUMPY")

	descrRe   = regexp.MustCompile(`'descr':\s*'([^']*)'`)
	fortranRe = regexp.MustCompile(`'fortran_order':\s*(True|False)`)
	shapeRe   = regexp.MustCompile(`'shape':\s*\(([^)]*)\)`)
)

// File is a parsed NPY stream.
type File struct {
	Major, Minor uint8
	// HeaderLen is the value of the length field.
	HeaderLen int
	// DataOffset is where the payload starts.
	DataOffset int
	// Dict is the metadata text without padding and newline.
	Dict         string
	Descr        string
	FortranOrder bool
	Shape        []int
	Data         []byte
}

// Parse parses data as an NPY stream of version 1.0, 2.0 or 3.0.
func Parse(data []byte) (*File, error) {
	if len(data) < 10 || !bytes.Equal(data[:6], magic) {
		return nil, errors.New("npytest: bad magic")
	}

	f := &File{Major: data[6], Minor: data[7]}

	var lenSize int
	switch f.Major {
	case 1:
		lenSize = 2
		f.HeaderLen = int(binary.LittleEndian.Uint16(data[8:10]))
	case 2, 3:
		lenSize = 4
		if len(data) < 12 {
			return nil, errors.New("npytest: truncated preamble")
		}
		f.HeaderLen = int(binary.LittleEndian.Uint32(data[8:12]))
	default:
		return nil, fmt.Errorf("npytest: unsupported version %d.%d", f.Major, f.Minor)
	}

	start := 8 + lenSize
	f.DataOffset = start + f.HeaderLen
	if len(data) < f.DataOffset {
		return nil, errors.New("npytest: truncated header")
	}

	text := string(data[start:f.DataOffset])
	if !strings.HasSuffix(text, "\n") {
		return nil, errors.New("npytest: header does not end with newline")
	}
	f.Dict = strings.TrimRight(text, " \n")
	if !strings.HasPrefix(f.Dict, "{") || !strings.HasSuffix(f.Dict, "}") {
		return nil, fmt.Errorf("npytest: malformed dict %q", f.Dict)
	}

	m := descrRe.FindStringSubmatch(f.Dict)
	if m == nil {
		return nil, errors.New("npytest: missing descr")
	}
	f.Descr = m[1]

	m = fortranRe.FindStringSubmatch(f.Dict)
	if m == nil {
		return nil, errors.New("npytest: missing fortran_order")
	}
	f.FortranOrder = m[1] == "True"

	m = shapeRe.FindStringSubmatch(f.Dict)
	if m == nil {
		return nil, errors.New("npytest: missing shape")
	}
	for _, part := range strings.Split(m[1], ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("npytest: bad shape entry %q", part)
		}
		f.Shape = append(f.Shape, n)
	}

	f.Data = data[f.DataOffset:]

	return f, nil
}

// Count returns the product of the shape.
func (f *File) Count() int {
	n := 1
	for _, d := range f.Shape {
		n *= d
	}

	return n
}

// ByteOrder returns the byte order declared by the descr marker.
func (f *File) ByteOrder() binary.ByteOrder {
	if strings.HasPrefix(f.Descr, ">") {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// Float64s decodes an "f8" payload.
func (f *File) Float64s() []float64 {
	order := f.ByteOrder()
	out := make([]float64, 0, len(f.Data)/8)
	for i := 0; i+8 <= len(f.Data); i += 8 {
		out = append(out, math.Float64frombits(order.Uint64(f.Data[i:])))
	}

	return out
}

// Float32s decodes an "f4" payload.
func (f *File) Float32s() []float32 {
	order := f.ByteOrder()
	out := make([]float32, 0, len(f.Data)/4)
	for i := 0; i+4 <= len(f.Data); i += 4 {
		out = append(out, math.Float32frombits(order.Uint32(f.Data[i:])))
	}

	return out
}

// Int32s decodes an "i4" payload.
func (f *File) Int32s() []int32 {
	order := f.ByteOrder()
	out := make([]int32, 0, len(f.Data)/4)
	for i := 0; i+4 <= len(f.Data); i += 4 {
		out = append(out, int32(order.Uint32(f.Data[i:]))) //nolint:gosec // bit-preserving conversion
	}

	return out
}

// Uint16s decodes a "u2" payload.
func (f *File) Uint16s() []uint16 {
	order := f.ByteOrder()
	out := make([]uint16, 0, len(f.Data)/2)
	for i := 0; i+2 <= len(f.Data); i += 2 {
		out = append(out, order.Uint16(f.Data[i:]))
	}

	return out
}

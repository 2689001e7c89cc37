package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/arloliu/npy/dtype"
)

// parseFunc parses one text token into an element.
type parseFunc[T dtype.Element] func(token string) (T, error)

// readValues parses whitespace separated tokens from r.
func readValues[T dtype.Element](r io.Reader, parse parseFunc[T]) ([]T, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	var values []T
	for sc.Scan() {
		v, err := parse(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", len(values)+1, err)
		}
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return values, nil
}

func parseBool(s string) (bool, error) {
	return strconv.ParseBool(s)
}

func parseInt[T int8 | int16 | int32 | int64](bits int) parseFunc[T] {
	return func(s string) (T, error) {
		v, err := strconv.ParseInt(s, 0, bits)
		return T(v), err
	}
}

func parseUint[T uint8 | uint16 | uint32 | uint64](bits int) parseFunc[T] {
	return func(s string) (T, error) {
		v, err := strconv.ParseUint(s, 0, bits)
		return T(v), err
	}
}

func parseFloat32(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	return float32(v), err
}

func parseFloat64(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func parseComplex64(s string) (complex64, error) {
	v, err := strconv.ParseComplex(s, 64)
	return complex64(v), err
}

func parseComplex128(s string) (complex128, error) {
	return strconv.ParseComplex(s, 128)
}

// Package endian provides byte order utilities for the NPY payload and header.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine interface,
// and maps an engine to the byte-order marker written into the NPY descr field.
//
// # Basic Usage
//
// The default for npy is the host byte order:
//
//	engine := endian.GetNativeEngine()
//	marker := endian.Marker(engine) // '<' on amd64/arm64
//
// The host order is answered by golang.org/x/sys/cpu.IsBigEndian, a constant
// fixed per GOARCH, so no memory reinterpretation is involved.
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

const (
	// LittleMarker is the NPY descr prefix for little-endian data.
	LittleMarker = '<'
	// BigMarker is the NPY descr prefix for big-endian data.
	BigMarker = '>'
)

// CheckEndianness returns the host's byte order.
func CheckEndianness() EndianEngine {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return !cpu.IsBigEndian
}

func IsNativeBigEndian() bool {
	return cpu.IsBigEndian
}

func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetNativeEngine returns the engine matching the host byte order.
func GetNativeEngine() EndianEngine {
	return CheckEndianness()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Marker returns the NPY byte-order marker for engine: '>' for big-endian,
// '<' for everything else.
func Marker(engine EndianEngine) byte {
	if engine == binary.BigEndian {
		return BigMarker
	}

	return LittleMarker
}

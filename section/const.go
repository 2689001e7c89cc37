package section

import "math"

// Magic is the 6-byte prefix of every NPY file.
var Magic = [6]byte{0x93, 'N', 'U', 'M', 'P', 'Y'}

const (
	VersionMajor = 0x02 // VersionMajor is the NPY format major version written by this package.
	VersionMinor = 0x00 // VersionMinor is the NPY format minor version written by this package.
)

// offsets and section sizes in the NPY file
const (
	MagicSize        = 6                             // magic string size in bytes
	PreambleSize     = MagicSize + 2                 // magic + version major + version minor
	LengthFieldSize  = 4                             // v2.0 little-endian uint32 header length
	DictOffset       = PreambleSize + LengthFieldSize // byte offset where the metadata text starts
	DefaultAlignment = 16                            // header block alignment of the v2.0 layout
	MaxHeaderLength  = math.MaxUint32                // largest value of the length field
)

const (
	headerPad     = ' '
	headerNewline = '\n'
)

// Package section defines the fixed binary structure of an NPY v2.0 file:
// the preamble, the length field and the padded metadata text.
//
// # File Structure
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Preamble (8 bytes)                                      │
//	│  - Magic: 0x93 'N' 'U' 'M' 'P' 'Y'                      │
//	│  - Version: 0x02 0x00                                   │
//	├─────────────────────────────────────────────────────────┤
//	│ Header length L (4 bytes, little-endian uint32)         │
//	├─────────────────────────────────────────────────────────┤
//	│ Metadata text (L bytes)                                 │
//	│  - {'descr': '<f4', 'fortran_order': False,             │
//	│     'shape': (2,3), }                                   │
//	│  - space padding                                        │
//	│  - '\n'                                                 │
//	├─────────────────────────────────────────────────────────┤
//	│ Payload (row-major elements, byte order from descr)     │
//	└─────────────────────────────────────────────────────────┘
//
// The header block (preamble + length field + L) is always a multiple of
// the alignment, 16 bytes unless configured otherwise. When the unpadded
// block is already aligned a full block of spaces is still added, the same
// rule NumPy's own writer applies.
//
// The payload itself is written by the encoding package.
package section

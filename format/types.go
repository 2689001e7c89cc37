package format

type (
	Kind            uint8
	CompressionType uint8
	DigestType      uint8
)

const (
	KindBool    Kind = 0x1 // KindBool represents a one-byte boolean.
	KindInt     Kind = 0x2 // KindInt represents a signed two's complement integer.
	KindUint    Kind = 0x3 // KindUint represents an unsigned integer.
	KindFloat   Kind = 0x4 // KindFloat represents an IEEE 754 floating point number.
	KindComplex Kind = 0x5 // KindComplex represents a pair of IEEE 754 floats (real, imaginary).

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 frame compression.

	DigestNone   DigestType = 0x1 // DigestNone disables digest computation.
	DigestXXH64  DigestType = 0x2 // DigestXXH64 represents the 64-bit xxHash digest.
	DigestBLAKE3 DigestType = 0x3 // DigestBLAKE3 represents the 256-bit BLAKE3 digest.
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindUint:
		return "Uint"
	case KindFloat:
		return "Float"
	case KindComplex:
		return "Complex"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Extension returns the conventional file name suffix for the compression type.
func (c CompressionType) Extension() string {
	switch c {
	case CompressionZstd:
		return ".zst"
	case CompressionS2:
		return ".s2"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

func (d DigestType) String() string {
	switch d {
	case DigestNone:
		return "None"
	case DigestXXH64:
		return "XXH64"
	case DigestBLAKE3:
		return "BLAKE3"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a lower-case name ("none", "zstd", "s2", "lz4") to a CompressionType.
func ParseCompression(name string) (CompressionType, bool) {
	switch name {
	case "", "none":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}

// ParseDigest maps a lower-case name ("none", "xxh64", "blake3") to a DigestType.
func ParseDigest(name string) (DigestType, bool) {
	switch name {
	case "none":
		return DigestNone, true
	case "", "xxh64":
		return DigestXXH64, true
	case "blake3":
		return DigestBLAKE3, true
	default:
		return 0, false
	}
}

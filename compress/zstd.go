package compress

// zstdLevel is the compression level used by both zstd implementations.
// Level 3 is the zstd reference default and maps to zstd.SpeedDefault.
const zstdLevel = 3

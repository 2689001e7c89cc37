package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of one npywrite run.
//
// Values are resolved in order: built-in defaults, the YAML file given by
// --config, then flags set explicitly on the command line.
type Config struct {
	// DType is the element type code, e.g. "f4" or "u1".
	DType string `yaml:"dtype"`
	// Shape is the array shape; empty means a vector of all input values.
	Shape []int `yaml:"shape"`
	// Input is the path of the text input; "-" reads stdin.
	Input string `yaml:"input"`
	// Output is a file path, "-" for stdout, s3://bucket/key or minio://bucket/key.
	Output string `yaml:"output"`
	// Compression is none, zstd, s2 or lz4.
	Compression string `yaml:"compression"`
	// Align is the header block size, a multiple of 16.
	Align int `yaml:"align"`
	// Endian is native, little or big.
	Endian string `yaml:"endian"`
	// Digest is none, xxh64 or blake3.
	Digest string `yaml:"digest"`
	// Atomic writes file outputs through a temporary file.
	Atomic bool `yaml:"atomic"`

	Log   LogConfig   `yaml:"log"`
	S3    S3Config    `yaml:"s3"`
	Minio MinioConfig `yaml:"minio"`
}

// LogConfig configures the diagnostic logger.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `yaml:"level"`
	// Format is text or json.
	Format string `yaml:"format"`
}

// S3Config configures s3:// outputs. Credentials come from the default AWS chain.
type S3Config struct {
	Region      string `yaml:"region"`
	ContentType string `yaml:"content_type"`
	PartSize    int64  `yaml:"part_size"`
}

// MinioConfig configures minio:// outputs.
type MinioConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Secure    bool   `yaml:"secure"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		DType:       "f8",
		Input:       "-",
		Output:      "-",
		Compression: "none",
		Align:       16,
		Endian:      "native",
		Digest:      "xxh64",
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		S3: S3Config{
			ContentType: "application/octet-stream",
		},
	}
}

// LoadFile overlays the YAML file at path onto c. Unknown keys are rejected.
func (c *Config) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	return nil
}

// flagValues receives the raw flag values before they are merged.
type flagValues struct {
	config      string
	dtype       string
	shape       []int
	input       string
	output      string
	compression string
	align       int
	endian      string
	digest      string
	atomic      bool
	logLevel    string
	logFormat   string
}

func (v *flagValues) register(fs *pflag.FlagSet, defaults *Config) {
	fs.StringVarP(&v.config, "config", "c", "", "YAML file with default settings")
	fs.StringVarP(&v.dtype, "dtype", "t", defaults.DType, "element type code: ?, i1, u1, i2, u2, i4, u4, i8, u8, f4, f8, c8, c16")
	fs.IntSliceVarP(&v.shape, "shape", "s", nil, "array shape, e.g. 2,3 (default: vector of all values)")
	fs.StringVarP(&v.input, "input", "i", defaults.Input, "whitespace separated values, - for stdin")
	fs.StringVarP(&v.output, "output", "o", defaults.Output, "file path, - for stdout, s3://bucket/key or minio://bucket/key")
	fs.StringVar(&v.compression, "compression", defaults.Compression, "none, zstd, s2 or lz4")
	fs.IntVar(&v.align, "align", defaults.Align, "header alignment, a multiple of 16")
	fs.StringVar(&v.endian, "endian", defaults.Endian, "native, little or big")
	fs.StringVar(&v.digest, "digest", defaults.Digest, "none, xxh64 or blake3")
	fs.BoolVar(&v.atomic, "atomic", defaults.Atomic, "write files through a temporary file renamed on success")
	fs.StringVar(&v.logLevel, "log-level", defaults.Log.Level, "debug, info, warn or error")
	fs.StringVar(&v.logFormat, "log-format", defaults.Log.Format, "text or json")
}

// apply copies the flags set on the command line into c.
func (v *flagValues) apply(fs *pflag.FlagSet, c *Config) {
	if fs.Changed("dtype") {
		c.DType = v.dtype
	}
	if fs.Changed("shape") {
		c.Shape = v.shape
	}
	if fs.Changed("input") {
		c.Input = v.input
	}
	if fs.Changed("output") {
		c.Output = v.output
	}
	if fs.Changed("compression") {
		c.Compression = v.compression
	}
	if fs.Changed("align") {
		c.Align = v.align
	}
	if fs.Changed("endian") {
		c.Endian = v.endian
	}
	if fs.Changed("digest") {
		c.Digest = v.digest
	}
	if fs.Changed("atomic") {
		c.Atomic = v.atomic
	}
	if fs.Changed("log-level") {
		c.Log.Level = v.logLevel
	}
	if fs.Changed("log-format") {
		c.Log.Format = v.logFormat
	}
}

// parseConfig parses args into a Config.
func parseConfig(fs *pflag.FlagSet, args []string) (*Config, error) {
	cfg := DefaultConfig()

	var v flagValues
	v.register(fs, cfg)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}

	if v.config != "" {
		if err := cfg.LoadFile(v.config); err != nil {
			return nil, err
		}
	}
	v.apply(fs, cfg)

	return cfg, nil
}

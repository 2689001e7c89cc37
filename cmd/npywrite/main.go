// npywrite converts whitespace separated text values into an NPY v2.0 file.
//
// Values are read from a file or stdin, parsed as the requested element type
// and written to a file, stdout, or an S3 / MinIO object, optionally
// compressed. Settings come from flags and an optional YAML config file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/pflag"

	"github.com/arloliu/npy"
	"github.com/arloliu/npy/array"
	"github.com/arloliu/npy/dtype"
	"github.com/arloliu/npy/errs"
	"github.com/arloliu/npy/format"
	"github.com/arloliu/npy/section"
	"github.com/arloliu/npy/target"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("npywrite", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printHelp(stderr, fs) }

	cfg, err := parseConfig(fs, args)
	if err != nil {
		return err
	}

	logger, err := newLogger(stderr, cfg.Log)
	if err != nil {
		return err
	}

	opts, err := encoderOptions(cfg, logger)
	if err != nil {
		return err
	}

	desc, err := dtype.Lookup(cfg.DType)
	if err != nil {
		return err
	}

	in, closeInput, err := openInput(cfg.Input, stdin)
	if err != nil {
		return err
	}
	defer closeInput()

	t, err := resolveTarget(ctx, cfg, stdout)
	if err != nil {
		return err
	}

	res, err := write(desc, t, cfg.Shape, in, opts)
	if err != nil {
		return err
	}

	logger.Info("array written",
		"output", t.String(),
		"descr", res.Descr,
		"shape", res.Shape.String(),
		"bytes", res.Size(),
		"digest", res.Digest.String(),
		"sum", res.Sum,
	)

	return nil
}

// encoderOptions maps the encoding settings to array options.
func encoderOptions(cfg *Config, logger *slog.Logger) ([]array.Option, error) {
	opts := []array.Option{
		array.WithAlignment(cfg.Align),
		array.WithLogger(logger),
	}

	switch strings.ToLower(cfg.Endian) {
	case "", "native":
		opts = append(opts, array.WithNativeEndian())
	case "little", "<":
		opts = append(opts, array.WithLittleEndian())
	case "big", ">":
		opts = append(opts, array.WithBigEndian())
	default:
		return nil, fmt.Errorf("invalid endian %q", cfg.Endian)
	}

	digest, ok := format.ParseDigest(cfg.Digest)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnsupportedDigest, cfg.Digest)
	}
	opts = append(opts, array.WithDigest(digest))

	return opts, nil
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return stdin, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}

// write parses the input as the element type of desc and writes it to t.
func write(desc dtype.Descriptor, t target.Target, shape []int, in io.Reader, opts []array.Option) (array.Result, error) {
	switch desc.Code {
	case "?":
		return writeAs[bool](t, shape, in, parseBool, opts)
	case "i1":
		return writeAs[int8](t, shape, in, parseInt[int8](8), opts)
	case "u1":
		return writeAs[uint8](t, shape, in, parseUint[uint8](8), opts)
	case "i2":
		return writeAs[int16](t, shape, in, parseInt[int16](16), opts)
	case "u2":
		return writeAs[uint16](t, shape, in, parseUint[uint16](16), opts)
	case "i4":
		return writeAs[int32](t, shape, in, parseInt[int32](32), opts)
	case "u4":
		return writeAs[uint32](t, shape, in, parseUint[uint32](32), opts)
	case "i8":
		return writeAs[int64](t, shape, in, parseInt[int64](64), opts)
	case "u8":
		return writeAs[uint64](t, shape, in, parseUint[uint64](64), opts)
	case "f4":
		return writeAs[float32](t, shape, in, parseFloat32, opts)
	case "f8":
		return writeAs[float64](t, shape, in, parseFloat64, opts)
	case "c8":
		return writeAs[complex64](t, shape, in, parseComplex64, opts)
	case "c16":
		return writeAs[complex128](t, shape, in, parseComplex128, opts)
	default:
		return array.Result{}, fmt.Errorf("%w: %q", errs.ErrUnknownTypeCode, desc.Code)
	}
}

func writeAs[T dtype.Element](t target.Target, shape []int, in io.Reader, parse parseFunc[T], opts []array.Option) (array.Result, error) {
	values, err := readValues(in, parse)
	if err != nil {
		return array.Result{}, err
	}

	if len(shape) == 0 {
		shape = section.Vector(len(values))
	}

	return npy.Write(t, shape, values, opts...)
}

func printHelp(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprint(w, `npywrite converts whitespace separated values into an NPY v2.0 file.

Usage:
  npywrite [flags]

Examples:
  # 2x3 float32 matrix from a text file
  npywrite --dtype f4 --shape 2,3 --input values.txt --output matrix.npy

  # byte vector from stdin to stdout
  echo 1 2 3 | npywrite --dtype u1 > v.npy

  # zstd compressed upload
  npywrite -t f8 -i data.txt --compression zstd -o s3://arrays/data.npy.zst

Flags:
`)
	fs.PrintDefaults()
}

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/s2"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/npy/errs"
	"github.com/arloliu/npy/internal/npytest"
)

func runCmd(t *testing.T, stdin string, args ...string) (stdout, stderr *bytes.Buffer, err error) {
	t.Helper()

	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	err = run(context.Background(), args, strings.NewReader(stdin), stdout, stderr)

	return stdout, stderr, err
}

func TestRun_StdinToStdout(t *testing.T) {
	stdout, _, err := runCmd(t, "1 2\n3", "--dtype", "u1", "--endian", "little")
	require.NoError(t, err)

	f, err := npytest.Parse(stdout.Bytes())
	require.NoError(t, err)
	require.Equal(t, "<u1", f.Descr)
	require.Equal(t, []int{3}, f.Shape)
	require.Equal(t, []byte{1, 2, 3}, f.Data)
}

func TestRun_FileMatrix(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "values.txt")
	output := filepath.Join(dir, "m.npy")
	require.NoError(t, os.WriteFile(input, []byte("1 2 3\n4 5 6\n"), 0o644))

	_, stderr, err := runCmd(t, "",
		"-t", "f4", "-s", "2,3", "-i", input, "-o", output,
		"--atomic", "--align", "64", "--log-level", "info")
	require.NoError(t, err)
	require.Contains(t, stderr.String(), "array written")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	f, err := npytest.Parse(data)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, f.Shape)
	require.Zero(t, f.DataOffset%64)
	require.Equal(t, []float32{1, 2, 3, 4, 5, 6}, f.Float32s())
}

func TestRun_Compressed(t *testing.T) {
	stdout, _, err := runCmd(t, "10 20 30", "--dtype", "i4", "--compression", "s2", "--endian", "big")
	require.NoError(t, err)

	raw, err := io.ReadAll(s2.NewReader(stdout))
	require.NoError(t, err)
	f, err := npytest.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, ">i4", f.Descr)
	require.Equal(t, []int32{10, 20, 30}, f.Int32s())
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		is    error
		msg   string
	}{
		{name: "shape mismatch", stdin: "1 2 3", args: []string{"--shape", "2,2"}, is: errs.ErrShapeMismatch},
		{name: "unknown dtype", stdin: "1", args: []string{"--dtype", "f16"}, is: errs.ErrUnknownTypeCode},
		{name: "bad value", stdin: "1 x", args: []string{"--dtype", "i2"}, msg: "value 2"},
		{name: "out of range", stdin: "256", args: []string{"--dtype", "u1"}, msg: "value 1"},
		{name: "bad compression", stdin: "1", args: []string{"--compression", "brotli"}, is: errs.ErrUnsupportedCompression},
		{name: "bad digest", stdin: "1", args: []string{"--digest", "md5"}, is: errs.ErrUnsupportedDigest},
		{name: "bad alignment", stdin: "1", args: []string{"--align", "8"}, is: errs.ErrInvalidAlignment},
		{name: "bad endian", stdin: "1", args: []string{"--endian", "middle"}, msg: "invalid endian"},
		{name: "bad log level", stdin: "1", args: []string{"--log-level", "loud"}, msg: "invalid log level"},
		{name: "bad object url", stdin: "1", args: []string{"--output", "s3://bucket-only"}, msg: "bucket/key"},
		{name: "minio without endpoint", stdin: "1", args: []string{"--output", "minio://b/k"}, msg: "minio.endpoint"},
		{name: "extra argument", stdin: "1", args: []string{"stray"}, msg: "unexpected argument"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCmd(t, tt.stdin, tt.args...)
			require.Error(t, err)
			if tt.is != nil {
				require.ErrorIs(t, err, tt.is)
			}
			if tt.msg != "" {
				require.ErrorContains(t, err, tt.msg)
			}
		})
	}
}

func TestRun_Help(t *testing.T) {
	_, stderr, err := runCmd(t, "", "--help")
	require.ErrorIs(t, err, pflag.ErrHelp)
	require.Contains(t, stderr.String(), "Usage:")
}

func TestParseConfig_FileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "npywrite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
dtype: i8
shape: [4, 2]
compression: zstd
align: 64
log:
  level: debug
  format: json
minio:
  endpoint: localhost:9000
  secure: true
`), 0o644))

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg, err := parseConfig(fs, []string{"--config", path, "--align", "32", "--digest", "blake3"})
	require.NoError(t, err)

	require.Equal(t, "i8", cfg.DType)
	require.Equal(t, []int{4, 2}, cfg.Shape)
	require.Equal(t, "zstd", cfg.Compression)
	require.Equal(t, 32, cfg.Align, "flags override the file")
	require.Equal(t, "blake3", cfg.Digest)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, "localhost:9000", cfg.Minio.Endpoint)
	require.True(t, cfg.Minio.Secure)
	require.Equal(t, "-", cfg.Output, "unset keys keep defaults")
}

func TestParseConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("dtyp: f4\n"), 0o644))
	_, err := parseConfig(pflag.NewFlagSet("test", pflag.ContinueOnError), []string{"--config", unknown})
	require.Error(t, err)

	_, err = parseConfig(pflag.NewFlagSet("test", pflag.ContinueOnError), []string{"--config", filepath.Join(dir, "missing.yaml")})
	require.ErrorIs(t, err, os.ErrNotExist)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	cfg, err := parseConfig(pflag.NewFlagSet("test", pflag.ContinueOnError), []string{"--config", empty})
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	logger.Info("hello", "k", 1)
	require.Contains(t, buf.String(), `"msg":"hello"`)

	_, err = newLogger(&buf, LogConfig{Level: "info", Format: "xml"})
	require.ErrorContains(t, err, "invalid log format")
}

func TestReadValues(t *testing.T) {
	bools, err := readValues(strings.NewReader("true false 1 0"), parseBool)
	require.NoError(t, err)
	require.Equal(t, []bool{true, false, true, false}, bools)

	ints, err := readValues(strings.NewReader("-128\t0x7f\n0"), parseInt[int8](8))
	require.NoError(t, err)
	require.Equal(t, []int8{-128, 127, 0}, ints)

	cs, err := readValues(strings.NewReader("1+2i (3-4i)"), parseComplex64)
	require.NoError(t, err)
	require.Equal(t, []complex64{1 + 2i, 3 - 4i}, cs)

	empty, err := readValues(strings.NewReader("  \n "), parseFloat64)
	require.NoError(t, err)
	require.Empty(t, empty)
}

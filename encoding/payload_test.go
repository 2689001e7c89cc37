package encoding

import (
	"bytes"
	"encoding/binary"
	"errors"
	"iter"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/npy/dtype"
	"github.com/arloliu/npy/endian"
	"github.com/arloliu/npy/errs"
)

func engines() map[string]endian.EndianEngine {
	return map[string]endian.EndianEngine{
		"little": endian.GetLittleEndianEngine(),
		"big":    endian.GetBigEndianEngine(),
		"native": endian.GetNativeEngine(),
	}
}

// checkPathsAgree encodes values through both paths and compares the output.
func checkPathsAgree[T dtype.Element](t *testing.T, values []T) {
	t.Helper()

	for name, engine := range engines() {
		pw := NewPayloadWriter[T](engine)

		var bulk, incremental bytes.Buffer
		n, err := pw.WriteSlice(&bulk, values)
		require.NoError(t, err)
		require.Equal(t, int64(len(values)*dtype.SizeOf[T]()), n, name)

		count, m, err := pw.WriteSeq(&incremental, slices.Values(values), len(values))
		require.NoError(t, err)
		require.Equal(t, len(values), count)
		require.Equal(t, n, m)

		require.Equal(t, bulk.Bytes(), incremental.Bytes(), "%s: bulk and incremental output differ", name)
		require.Equal(t, pw.AppendSlice(nil, values), bulk.Bytes())
	}
}

func TestPayloadWriter_PathsAgree(t *testing.T) {
	t.Run("bool", func(t *testing.T) { checkPathsAgree(t, []bool{true, false, true, true}) })
	t.Run("int8", func(t *testing.T) { checkPathsAgree(t, []int8{-128, -1, 0, 1, 127}) })
	t.Run("uint8", func(t *testing.T) { checkPathsAgree(t, []uint8{0, 1, 2, 255}) })
	t.Run("int16", func(t *testing.T) { checkPathsAgree(t, []int16{math.MinInt16, -2, 0, 300, math.MaxInt16}) })
	t.Run("uint16", func(t *testing.T) { checkPathsAgree(t, []uint16{0, 1, 0xBEEF, math.MaxUint16}) })
	t.Run("int32", func(t *testing.T) { checkPathsAgree(t, []int32{math.MinInt32, -7, 0, 1 << 20, math.MaxInt32}) })
	t.Run("uint32", func(t *testing.T) { checkPathsAgree(t, []uint32{0, 0xDEADBEEF, math.MaxUint32}) })
	t.Run("int64", func(t *testing.T) { checkPathsAgree(t, []int64{math.MinInt64, -1, 0, 1 << 40, math.MaxInt64}) })
	t.Run("uint64", func(t *testing.T) { checkPathsAgree(t, []uint64{0, 1 << 63, math.MaxUint64}) })
	t.Run("float32", func(t *testing.T) {
		checkPathsAgree(t, []float32{0, -0.5, 1.25, float32(math.Inf(1)), math.MaxFloat32, math.SmallestNonzeroFloat32})
	})
	t.Run("float64", func(t *testing.T) { checkPathsAgree(t, []float64{0, math.Pi, -math.E, math.Inf(-1), math.NaN()}) })
	t.Run("complex64", func(t *testing.T) { checkPathsAgree(t, []complex64{0, 1 + 2i, -3.5 - 0.25i}) })
	t.Run("complex128", func(t *testing.T) { checkPathsAgree(t, []complex128{0, complex(math.Pi, -math.E)}) })
	t.Run("empty", func(t *testing.T) { checkPathsAgree(t, []float32{}) })
}

func TestPayloadWriter_Uint8Bytes(t *testing.T) {
	pw := NewPayloadWriter[uint8](nil)

	var buf bytes.Buffer
	_, err := pw.WriteSlice(&buf, []uint8{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, buf.Bytes())
}

func TestPayloadWriter_ByteOrder(t *testing.T) {
	t.Run("float32 little-endian", func(t *testing.T) {
		pw := NewPayloadWriter[float32](endian.GetLittleEndianEngine())
		out := pw.AppendSlice(nil, []float32{1.0})
		require.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, out)
	})

	t.Run("float32 big-endian", func(t *testing.T) {
		pw := NewPayloadWriter[float32](endian.GetBigEndianEngine())
		out := pw.AppendSlice(nil, []float32{1.0})
		require.Equal(t, []byte{0x3f, 0x80, 0x00, 0x00}, out)
	})

	t.Run("int16 negative", func(t *testing.T) {
		pw := NewPayloadWriter[int16](endian.GetBigEndianEngine())
		require.Equal(t, []byte{0xff, 0xfe}, pw.AppendSlice(nil, []int16{-2}))
	})

	t.Run("complex64 real then imaginary", func(t *testing.T) {
		pw := NewPayloadWriter[complex64](endian.GetLittleEndianEngine())
		out := pw.AppendSlice(nil, []complex64{complex(1, 2)})
		require.Len(t, out, 8)
		require.Equal(t, math.Float32bits(1), binary.LittleEndian.Uint32(out[0:4]))
		require.Equal(t, math.Float32bits(2), binary.LittleEndian.Uint32(out[4:8]))
	})

	t.Run("bool as 0 and 1", func(t *testing.T) {
		pw := NewPayloadWriter[bool](nil)
		require.Equal(t, []byte{1, 0}, pw.AppendSlice(nil, []bool{true, false}))
	})
}

func TestPayloadWriter_Float32Matrix(t *testing.T) {
	values := []float32{1, 2, 3, 4, 5, 6}
	pw := NewPayloadWriter[float32](endian.GetNativeEngine())

	var buf bytes.Buffer
	n, err := pw.WriteSlice(&buf, values)
	require.NoError(t, err)
	require.Equal(t, int64(24), n)

	for i, v := range values {
		got := endian.GetNativeEngine().Uint32(buf.Bytes()[i*4:])
		require.Equal(t, math.Float32bits(v), got)
	}
}

type countingWriter struct {
	calls int
	buf   bytes.Buffer
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.calls++
	return w.buf.Write(p)
}

func TestPayloadWriter_WriteCalls(t *testing.T) {
	values := make([]uint16, 1000)
	for i := range values {
		values[i] = uint16(i)
	}
	pw := NewPayloadWriter[uint16](nil)

	bulk := &countingWriter{}
	_, err := pw.WriteSlice(bulk, values)
	require.NoError(t, err)
	require.Equal(t, 1, bulk.calls, "bulk path must issue a single write")

	incremental := &countingWriter{}
	_, _, err = pw.WriteSeq(incremental, slices.Values(values), Unlimited)
	require.NoError(t, err)
	require.Equal(t, len(values), incremental.calls, "incremental path writes once per element")
}

func TestPayloadWriter_WriteSeqLimit(t *testing.T) {
	pw := NewPayloadWriter[int32](nil)

	t.Run("unlimited", func(t *testing.T) {
		var buf bytes.Buffer
		count, n, err := pw.WriteSeq(&buf, slices.Values([]int32{1, 2, 3}), Unlimited)
		require.NoError(t, err)
		require.Equal(t, 3, count)
		require.Equal(t, int64(12), n)
	})

	t.Run("too few", func(t *testing.T) {
		var buf bytes.Buffer
		count, _, err := pw.WriteSeq(&buf, slices.Values([]int32{1, 2, 3, 4, 5}), 6)
		require.ErrorIs(t, err, errs.ErrShapeMismatch)
		require.Equal(t, 5, count)
	})

	t.Run("too many stops iteration", func(t *testing.T) {
		var buf bytes.Buffer
		pulled := 0
		seq := func(yield func(int32) bool) {
			for i := range int32(100) {
				pulled++
				if !yield(i) {
					return
				}
			}
		}

		count, n, err := pw.WriteSeq(&buf, seq, 3)
		require.ErrorIs(t, err, errs.ErrShapeMismatch)
		require.Equal(t, 3, count)
		require.Equal(t, int64(12), n)
		require.Equal(t, 4, pulled, "iteration must stop at the first extra element")
	})
}

type failAfter struct {
	remaining int
}

func (w *failAfter) Write(p []byte) (int, error) {
	if w.remaining <= 0 {
		return 0, errors.New("broken pipe")
	}
	w.remaining--

	return len(p), nil
}

func TestPayloadWriter_WriteErrors(t *testing.T) {
	pw := NewPayloadWriter[float64](nil)

	_, err := pw.WriteSlice(&failAfter{}, []float64{1})
	require.EqualError(t, err, "broken pipe")

	var seq iter.Seq[float64] = slices.Values([]float64{1, 2, 3, 4})
	count, n, err := pw.WriteSeq(&failAfter{remaining: 2}, seq, 4)
	require.EqualError(t, err, "broken pipe")
	require.Equal(t, 2, count)
	require.Equal(t, int64(16), n)
}

func TestPayloadWriter_Accessors(t *testing.T) {
	pw := NewPayloadWriter[complex128](endian.GetBigEndianEngine())
	require.Equal(t, 16, pw.ElementSize())
	require.Equal(t, endian.GetBigEndianEngine(), pw.Engine())

	require.Equal(t, endian.GetNativeEngine(), NewPayloadWriter[int8](nil).Engine())
}

func BenchmarkPayloadWriter_WriteSlice(b *testing.B) {
	values := make([]float32, 64*1024)
	for i := range values {
		values[i] = float32(i)
	}
	pw := NewPayloadWriter[float32](nil)
	var buf bytes.Buffer

	b.SetBytes(int64(len(values) * 4))
	b.ResetTimer()
	for range b.N {
		buf.Reset()
		_, _ = pw.WriteSlice(&buf, values)
	}
}

func BenchmarkPayloadWriter_WriteSeq(b *testing.B) {
	values := make([]float32, 64*1024)
	pw := NewPayloadWriter[float32](nil)
	var buf bytes.Buffer

	b.SetBytes(int64(len(values) * 4))
	b.ResetTimer()
	for range b.N {
		buf.Reset()
		_, _, _ = pw.WriteSeq(&buf, slices.Values(values), len(values))
	}
}

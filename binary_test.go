package filestream_test

import (
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/filestream"
)

func TestNumericRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		write func(*filestream.Stream) error
		read  func(*filestream.Stream) (any, error)
		want  any
	}{
		{
			"int8 min",
			func(s *filestream.Stream) error { return s.WriteInt8(math.MinInt8) },
			func(s *filestream.Stream) (any, error) { return s.ReadInt8() },
			int8(math.MinInt8),
		},
		{
			"int8 max",
			func(s *filestream.Stream) error { return s.WriteInt8(math.MaxInt8) },
			func(s *filestream.Stream) (any, error) { return s.ReadInt8() },
			int8(math.MaxInt8),
		},
		{
			"uint8 max",
			func(s *filestream.Stream) error { return s.WriteUint8(math.MaxUint8) },
			func(s *filestream.Stream) (any, error) { return s.ReadUint8() },
			uint8(math.MaxUint8),
		},
		{
			"int16 min LE",
			func(s *filestream.Stream) error { return s.WriteInt16LE(math.MinInt16) },
			func(s *filestream.Stream) (any, error) { return s.ReadInt16LE() },
			int16(math.MinInt16),
		},
		{
			"int16 max BE",
			func(s *filestream.Stream) error { return s.WriteInt16BE(math.MaxInt16) },
			func(s *filestream.Stream) (any, error) { return s.ReadInt16BE() },
			int16(math.MaxInt16),
		},
		{
			"uint16 max LE",
			func(s *filestream.Stream) error { return s.WriteUint16LE(math.MaxUint16) },
			func(s *filestream.Stream) (any, error) { return s.ReadUint16LE() },
			uint16(math.MaxUint16),
		},
		{
			"uint16 BE",
			func(s *filestream.Stream) error { return s.WriteUint16BE(0xBEEF) },
			func(s *filestream.Stream) (any, error) { return s.ReadUint16BE() },
			uint16(0xBEEF),
		},
		{
			"int32 min LE",
			func(s *filestream.Stream) error { return s.WriteInt32LE(math.MinInt32) },
			func(s *filestream.Stream) (any, error) { return s.ReadInt32LE() },
			int32(math.MinInt32),
		},
		{
			"int32 max BE",
			func(s *filestream.Stream) error { return s.WriteInt32BE(math.MaxInt32) },
			func(s *filestream.Stream) (any, error) { return s.ReadInt32BE() },
			int32(math.MaxInt32),
		},
		{
			"uint32 max BE",
			func(s *filestream.Stream) error { return s.WriteUint32BE(math.MaxUint32) },
			func(s *filestream.Stream) (any, error) { return s.ReadUint32BE() },
			uint32(math.MaxUint32),
		},
		{
			"int64 min LE",
			func(s *filestream.Stream) error { return s.WriteInt64LE(math.MinInt64) },
			func(s *filestream.Stream) (any, error) { return s.ReadInt64LE() },
			int64(math.MinInt64),
		},
		{
			"int64 max BE",
			func(s *filestream.Stream) error { return s.WriteInt64BE(math.MaxInt64) },
			func(s *filestream.Stream) (any, error) { return s.ReadInt64BE() },
			int64(math.MaxInt64),
		},
		{
			"uint64 max LE",
			func(s *filestream.Stream) error { return s.WriteUint64LE(math.MaxUint64) },
			func(s *filestream.Stream) (any, error) { return s.ReadUint64LE() },
			uint64(math.MaxUint64),
		},
		{
			"float32 LE",
			func(s *filestream.Stream) error { return s.WriteFloat32LE(math.MaxFloat32) },
			func(s *filestream.Stream) (any, error) { return s.ReadFloat32LE() },
			float32(math.MaxFloat32),
		},
		{
			"float32 BE negative",
			func(s *filestream.Stream) error { return s.WriteFloat32BE(-1.5) },
			func(s *filestream.Stream) (any, error) { return s.ReadFloat32BE() },
			float32(-1.5),
		},
		{
			"float64 LE smallest",
			func(s *filestream.Stream) error { return s.WriteFloat64LE(math.SmallestNonzeroFloat64) },
			func(s *filestream.Stream) (any, error) { return s.ReadFloat64LE() },
			math.SmallestNonzeroFloat64,
		},
		{
			"float64 BE",
			func(s *filestream.Stream) error { return s.WriteFloat64BE(math.Pi) },
			func(s *filestream.Stream) (any, error) { return s.ReadFloat64BE() },
			math.Pi,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := filestream.Open(newFakeFS(""), "num.bin",
				filestream.WithRead(), filestream.WithWrite())
			require.NoError(t, err)

			require.NoError(t, tt.write(s))
			_, err = s.Seek(0, io.SeekStart)
			require.NoError(t, err)
			got, err := tt.read(s)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumericRead_ByteOrder(t *testing.T) {
	// One fixed bit pattern decoded both ways pins down the byte orders.
	s, err := filestream.Open(newFakeFS("\x01\x02\x03\x04"), "num.bin")
	require.NoError(t, err)

	le, err := s.ReadUint32LE()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x04030201), le)

	_, err = s.Seek(0, io.SeekStart)
	require.NoError(t, err)
	be, err := s.ReadUint32BE()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x01020304), be)
}

func TestNumericRead_TruncatedValue(t *testing.T) {
	s, err := filestream.Open(newFakeFS("\x01\x02\x03"), "num.bin")
	require.NoError(t, err)

	_, err = s.ReadUint32LE()
	assert.True(t, filestream.IsEndOfStream(err), "no partial numeric value, got %v", err)
}

func TestExactRead_ShortDataIsConsumed(t *testing.T) {
	s, err := filestream.Open(newFakeFS("abc"), "f.bin")
	require.NoError(t, err)

	_, err = s.ReadBytesExact(5)
	assert.True(t, filestream.IsEndOfStream(err))
	// The short read is discarded, not un-read.
	assert.Equal(t, int64(3), s.Position())
}

func TestReadRemaining_EmptyAtEOFIsSuccess(t *testing.T) {
	s, err := filestream.Open(newFakeFS(""), "f.bin")
	require.NoError(t, err)

	b, err := s.ReadRemaining()
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestReadList(t *testing.T) {
	t.Run("collects in order", func(t *testing.T) {
		s, err := filestream.Open(newFakeFS("\x00\x01\x00\x02\x00\x03"), "f.bin")
		require.NoError(t, err)

		vals, err := filestream.ReadList(s, (*filestream.Stream).ReadUint16BE, 3)
		require.NoError(t, err)
		assert.Equal(t, []uint16{1, 2, 3}, vals)
	})

	t.Run("first error aborts without a partial list", func(t *testing.T) {
		s, err := filestream.Open(newFakeFS("\x00\x01\x00\x02"), "f.bin")
		require.NoError(t, err)

		vals, err := filestream.ReadList(s, (*filestream.Stream).ReadUint16BE, 3)
		assert.True(t, filestream.IsEndOfStream(err))
		assert.Nil(t, vals)
	})
}

func TestBinaryOps_RequireIdentityEncoding(t *testing.T) {
	s, err := filestream.Open(newFakeFS("abcd"), "f.bin",
		filestream.WithRead(), filestream.WithWrite(),
		filestream.WithEncoding(filestream.UTF16LE))
	require.NoError(t, err)

	_, err = s.ReadBytes(2)
	assert.Equal(t, filestream.CodeUnsupported, filestream.CodeOf(err))
	_, err = s.ReadUint16LE()
	assert.Equal(t, filestream.CodeUnsupported, filestream.CodeOf(err))
	err = s.WriteUint8(1)
	assert.Equal(t, filestream.CodeUnsupported, filestream.CodeOf(err))

	// Switching back to the identity encoding restores binary access.
	require.NoError(t, s.SetEncoding(filestream.Latin1))
	_, err = s.ReadBytes(2)
	assert.NoError(t, err)
}

func TestBinaryOps_AllowedOnRawStreams(t *testing.T) {
	s, err := filestream.Open(newFakeFS("\x2A"), "f.bin", filestream.WithRaw())
	require.NoError(t, err)

	v, err := s.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(42), v)
}

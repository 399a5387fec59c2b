package filestream

import (
	"encoding/binary"
	"math"
)

// Typed numeric I/O. Each reader pulls exactly the width of its type via
// an exact read and decodes it as two's-complement or IEEE-754 at the
// named byte order; a stream ending mid-value fails with CodeEndOfStream
// and never yields a partial number. Writers are the symmetric
// encode-then-write compositions. Like all byte-level operations these
// require a raw stream or the identity (Latin-1) encoding.

// ReadInt8 reads a signed 8-bit integer.
func (s *Stream) ReadInt8() (int8, error) {
	v, err := s.ReadUint8()
	return int8(v), err
}

// ReadUint8 reads an unsigned 8-bit integer.
func (s *Stream) ReadUint8() (uint8, error) {
	b, err := s.ReadBytesExact(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadInt16LE reads a signed 16-bit little-endian integer.
func (s *Stream) ReadInt16LE() (int16, error) {
	v, err := s.ReadUint16LE()
	return int16(v), err
}

// ReadInt16BE reads a signed 16-bit big-endian integer.
func (s *Stream) ReadInt16BE() (int16, error) {
	v, err := s.ReadUint16BE()
	return int16(v), err
}

// ReadUint16LE reads an unsigned 16-bit little-endian integer.
func (s *Stream) ReadUint16LE() (uint16, error) {
	b, err := s.ReadBytesExact(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadUint16BE reads an unsigned 16-bit big-endian integer.
func (s *Stream) ReadUint16BE() (uint16, error) {
	b, err := s.ReadBytesExact(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadInt32LE reads a signed 32-bit little-endian integer.
func (s *Stream) ReadInt32LE() (int32, error) {
	v, err := s.ReadUint32LE()
	return int32(v), err
}

// ReadInt32BE reads a signed 32-bit big-endian integer.
func (s *Stream) ReadInt32BE() (int32, error) {
	v, err := s.ReadUint32BE()
	return int32(v), err
}

// ReadUint32LE reads an unsigned 32-bit little-endian integer.
func (s *Stream) ReadUint32LE() (uint32, error) {
	b, err := s.ReadBytesExact(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadUint32BE reads an unsigned 32-bit big-endian integer.
func (s *Stream) ReadUint32BE() (uint32, error) {
	b, err := s.ReadBytesExact(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadInt64LE reads a signed 64-bit little-endian integer.
func (s *Stream) ReadInt64LE() (int64, error) {
	v, err := s.ReadUint64LE()
	return int64(v), err
}

// ReadInt64BE reads a signed 64-bit big-endian integer.
func (s *Stream) ReadInt64BE() (int64, error) {
	v, err := s.ReadUint64BE()
	return int64(v), err
}

// ReadUint64LE reads an unsigned 64-bit little-endian integer.
func (s *Stream) ReadUint64LE() (uint64, error) {
	b, err := s.ReadBytesExact(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadUint64BE reads an unsigned 64-bit big-endian integer.
func (s *Stream) ReadUint64BE() (uint64, error) {
	b, err := s.ReadBytesExact(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// ReadFloat32LE reads a little-endian IEEE-754 single.
func (s *Stream) ReadFloat32LE() (float32, error) {
	v, err := s.ReadUint32LE()
	return math.Float32frombits(v), err
}

// ReadFloat32BE reads a big-endian IEEE-754 single.
func (s *Stream) ReadFloat32BE() (float32, error) {
	v, err := s.ReadUint32BE()
	return math.Float32frombits(v), err
}

// ReadFloat64LE reads a little-endian IEEE-754 double.
func (s *Stream) ReadFloat64LE() (float64, error) {
	v, err := s.ReadUint64LE()
	return math.Float64frombits(v), err
}

// ReadFloat64BE reads a big-endian IEEE-754 double.
func (s *Stream) ReadFloat64BE() (float64, error) {
	v, err := s.ReadUint64BE()
	return math.Float64frombits(v), err
}

// WriteInt8 writes a signed 8-bit integer.
func (s *Stream) WriteInt8(v int8) error {
	return s.WriteUint8(uint8(v))
}

// WriteUint8 writes an unsigned 8-bit integer.
func (s *Stream) WriteUint8(v uint8) error {
	return s.WriteBytes([]byte{v})
}

// WriteInt16LE writes a signed 16-bit little-endian integer.
func (s *Stream) WriteInt16LE(v int16) error {
	return s.WriteUint16LE(uint16(v))
}

// WriteInt16BE writes a signed 16-bit big-endian integer.
func (s *Stream) WriteInt16BE(v int16) error {
	return s.WriteUint16BE(uint16(v))
}

// WriteUint16LE writes an unsigned 16-bit little-endian integer.
func (s *Stream) WriteUint16LE(v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return s.WriteBytes(b[:])
}

// WriteUint16BE writes an unsigned 16-bit big-endian integer.
func (s *Stream) WriteUint16BE(v uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return s.WriteBytes(b[:])
}

// WriteInt32LE writes a signed 32-bit little-endian integer.
func (s *Stream) WriteInt32LE(v int32) error {
	return s.WriteUint32LE(uint32(v))
}

// WriteInt32BE writes a signed 32-bit big-endian integer.
func (s *Stream) WriteInt32BE(v int32) error {
	return s.WriteUint32BE(uint32(v))
}

// WriteUint32LE writes an unsigned 32-bit little-endian integer.
func (s *Stream) WriteUint32LE(v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return s.WriteBytes(b[:])
}

// WriteUint32BE writes an unsigned 32-bit big-endian integer.
func (s *Stream) WriteUint32BE(v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return s.WriteBytes(b[:])
}

// WriteInt64LE writes a signed 64-bit little-endian integer.
func (s *Stream) WriteInt64LE(v int64) error {
	return s.WriteUint64LE(uint64(v))
}

// WriteInt64BE writes a signed 64-bit big-endian integer.
func (s *Stream) WriteInt64BE(v int64) error {
	return s.WriteUint64BE(uint64(v))
}

// WriteUint64LE writes an unsigned 64-bit little-endian integer.
func (s *Stream) WriteUint64LE(v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return s.WriteBytes(b[:])
}

// WriteUint64BE writes an unsigned 64-bit big-endian integer.
func (s *Stream) WriteUint64BE(v uint64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return s.WriteBytes(b[:])
}

// WriteFloat32LE writes a little-endian IEEE-754 single.
func (s *Stream) WriteFloat32LE(v float32) error {
	return s.WriteUint32LE(math.Float32bits(v))
}

// WriteFloat32BE writes a big-endian IEEE-754 single.
func (s *Stream) WriteFloat32BE(v float32) error {
	return s.WriteUint32BE(math.Float32bits(v))
}

// WriteFloat64LE writes a little-endian IEEE-754 double.
func (s *Stream) WriteFloat64LE(v float64) error {
	return s.WriteUint64LE(math.Float64bits(v))
}

// WriteFloat64BE writes a big-endian IEEE-754 double.
func (s *Stream) WriteFloat64BE(v float64) error {
	return s.WriteUint64BE(math.Float64bits(v))
}

// ReadList invokes read count times against s, collecting the results in
// order. The first failure aborts the read and is returned as is; no
// partial list accompanies an error.
func ReadList[T any](s *Stream, read func(*Stream) (T, error), count int) ([]T, error) {
	if count < 0 {
		return nil, streamErr(CodeInvalidArgument, "read", s.path)
	}
	out := make([]T, 0, count)
	for i := 0; i < count; i++ {
		v, err := read(s)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

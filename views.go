package filestream

// Narrowing views of *Stream for callers who want the type system to
// witness a stream's direction. Open always returns *Stream, which
// satisfies all three; assigning it to Reader or Writer hides the other
// direction's methods. The runtime capability checks still apply.

// Reader is the read-capable view of a stream.
type Reader interface {
	Close() error
	Sync() error
	Seek(offset int64, whence int) (int64, error)
	Position() int64
	Size() int64
	Encoding() Encoding
	SetEncoding(enc Encoding) error

	ReadBytes(n int) ([]byte, error)
	ReadBytesExact(n int) ([]byte, error)
	ReadRemaining() ([]byte, error)

	ReadInt8() (int8, error)
	ReadUint8() (uint8, error)
	ReadInt16LE() (int16, error)
	ReadInt16BE() (int16, error)
	ReadUint16LE() (uint16, error)
	ReadUint16BE() (uint16, error)
	ReadInt32LE() (int32, error)
	ReadInt32BE() (int32, error)
	ReadUint32LE() (uint32, error)
	ReadUint32BE() (uint32, error)
	ReadInt64LE() (int64, error)
	ReadInt64BE() (int64, error)
	ReadUint64LE() (uint64, error)
	ReadUint64BE() (uint64, error)
	ReadFloat32LE() (float32, error)
	ReadFloat32BE() (float32, error)
	ReadFloat64LE() (float64, error)
	ReadFloat64BE() (float64, error)

	ReadLine() (string, error)
	ReadChars(count int) (string, error)
}

// Writer is the write-capable view of a stream.
type Writer interface {
	Close() error
	Sync() error
	Seek(offset int64, whence int) (int64, error)
	Position() int64
	Size() int64
	Encoding() Encoding
	SetEncoding(enc Encoding) error

	WriteBytes(p []byte) error
	WriteBits(p []byte, nbits int) error

	WriteInt8(v int8) error
	WriteUint8(v uint8) error
	WriteInt16LE(v int16) error
	WriteInt16BE(v int16) error
	WriteUint16LE(v uint16) error
	WriteUint16BE(v uint16) error
	WriteInt32LE(v int32) error
	WriteInt32BE(v int32) error
	WriteUint32LE(v uint32) error
	WriteUint32BE(v uint32) error
	WriteInt64LE(v int64) error
	WriteInt64BE(v int64) error
	WriteUint64LE(v uint64) error
	WriteUint64BE(v uint64) error
	WriteFloat32LE(v float32) error
	WriteFloat32BE(v float32) error
	WriteFloat64LE(v float64) error
	WriteFloat64BE(v float64) error

	WriteChars(text string) error
}

// ReadWriter combines both views.
type ReadWriter interface {
	Reader
	Writer
}

var (
	_ Reader     = (*Stream)(nil)
	_ Writer     = (*Stream)(nil)
	_ ReadWriter = (*Stream)(nil)
)

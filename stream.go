// Package filestream provides typed, encoding-aware streaming over raw
// positional file devices.
//
// A Stream is a single-owner cursor over one open Device. It offers two
// complementary access modes: binary I/O (bytes and fixed-width numbers in
// either byte order) and text I/O (characters and lines, transcoded
// between the stream's on-disk encoding and Go strings). Which operations
// are legal depends on how the stream was opened; disallowed calls fail
// with CodeUnsupported rather than misbehaving.
//
// A Stream is not safe for concurrent use. Ownership may move between
// goroutines but must not be shared.
package filestream

import (
	"errors"
	"io"
	"io/fs"
)

// readChunk is the accumulation chunk size used by ReadRemaining.
const readChunk = 64 * 1024

// Stream is a cursor over one open Device, tracking position, end of
// file, capability flags, and the active text encoding.
type Stream struct {
	dev  Device
	path string

	readable bool
	writable bool
	append   bool
	raw      bool
	enc      Encoding

	pos  int64
	size int64

	// Delayed-write state. wbuf coalesces sequential writes starting at
	// wbufOff; werr latches a flush failure until the next Sync or Close.
	wbuf    []byte
	wbufOff int64
	wcap    int
	werr    error

	closed bool
}

// Open opens path on fsys and returns a configured stream.
//
// With no direction option the stream is read-only. Opening a missing
// file without write capability fails with CodeNotFound, and opening a
// directory fails with CodeIsDirectory. Text-capable streams default to
// the Latin-1 encoding; combining WithRaw and WithEncoding fails with
// CodeUnsupported before any filesystem call.
func Open(fsys Filesystem, path string, opts ...Option) (*Stream, error) {
	var cfg openConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.resolve(path); err != nil {
		return nil, err
	}

	var size int64
	info, statErr := fsys.Stat(path)
	switch {
	case statErr == nil:
		if info.IsDir() {
			return nil, streamErr(CodeIsDirectory, "open", path)
		}
		size = info.Size()
	case errors.Is(statErr, fs.ErrNotExist) && cfg.write:
		// The open below creates the file.
	default:
		return nil, osErr("open", path, statErr)
	}

	dev, err := fsys.OpenDevice(path, cfg.osFlags(), 0o644)
	if err != nil {
		return nil, osErr("open", path, err)
	}

	return &Stream{
		dev:      dev,
		path:     path,
		readable: cfg.read,
		writable: cfg.write,
		append:   cfg.append,
		raw:      cfg.raw,
		enc:      cfg.enc,
		size:     size,
		wcap:     cfg.writeBuffer,
	}, nil
}

// Path returns the path the stream was opened with.
func (s *Stream) Path() string { return s.path }

// Position returns the current byte offset of the cursor.
func (s *Stream) Position() int64 { return s.pos }

// Size returns the tracked end-of-file offset, including any buffered
// writes not yet flushed to the device.
func (s *Stream) Size() int64 { return s.size }

// Encoding returns the active text encoding. Raw streams report UTF8.
func (s *Stream) Encoding() Encoding { return s.enc }

// Seek moves the cursor. Whence is one of io.SeekStart, io.SeekCurrent,
// io.SeekEnd; end-relative seeks resolve against the tracked end of file.
// A target before the start of the file fails with CodeInvalidArgument
// and leaves the cursor unchanged. Seeking past end of file is legal:
// reads there report end of stream and writes there extend the file.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	if err := s.requireOpen("seek"); err != nil {
		return 0, err
	}
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = s.pos + offset
	case io.SeekEnd:
		target = s.size + offset
	default:
		return 0, streamErr(CodeInvalidArgument, "seek", s.path)
	}
	if target < 0 {
		return 0, streamErr(CodeInvalidArgument, "seek", s.path)
	}
	s.pos = target
	return target, nil
}

// ReadBytes reads up to n bytes from the cursor. It returns fewer than n
// bytes only when the stream ends first; that is a success, not an error.
// It fails with CodeEndOfStream only when zero bytes remain.
func (s *Stream) ReadBytes(n int) ([]byte, error) {
	if err := s.requireRead("read"); err != nil {
		return nil, err
	}
	if err := s.requireBinary("read"); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, streamErr(CodeInvalidArgument, "read", s.path)
	}
	if n == 0 {
		return []byte{}, nil
	}
	b, err := s.readUpTo(n)
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, streamErr(CodeEndOfStream, "read", s.path)
	}
	return b, nil
}

// ReadBytesExact reads exactly n bytes or fails with CodeEndOfStream.
// A short read is discarded, not un-read: the cursor stays where the
// short read left it, so callers must not expect a retry to see the
// same bytes.
func (s *Stream) ReadBytesExact(n int) ([]byte, error) {
	b, err := s.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	if len(b) != n {
		return nil, streamErr(CodeEndOfStream, "read", s.path)
	}
	return b, nil
}

// ReadRemaining reads from the cursor to the end of the stream. An empty
// result at end of file is a success, never CodeEndOfStream.
func (s *Stream) ReadRemaining() ([]byte, error) {
	if err := s.requireRead("read"); err != nil {
		return nil, err
	}
	if err := s.requireBinary("read"); err != nil {
		return nil, err
	}
	out := []byte{}
	for {
		b, err := s.readUpTo(readChunk)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
		if len(b) < readChunk {
			return out, nil
		}
	}
}

// WriteBytes writes p at the cursor, or at end of file on append
// streams. A short write fails with CodeNoSpace. On append streams the
// tracked end of file advances and the cursor does not move.
func (s *Stream) WriteBytes(p []byte) error {
	if err := s.requireWrite("write"); err != nil {
		return err
	}
	if err := s.requireBinary("write"); err != nil {
		return err
	}
	return s.writeAll(p)
}

// writeAll is the write core shared by WriteBytes and the text layer:
// the encoding gate applies only to the public byte surface.
func (s *Stream) writeAll(p []byte) error {
	off := s.pos
	if s.append {
		off = s.size
	}
	if s.wcap > 0 {
		return s.bufferWrite(p, off)
	}
	n, err := s.dev.WriteAt(p, off)
	if err != nil {
		return osErr("write", s.path, err)
	}
	s.advance(off, n)
	if n < len(p) {
		return streamErr(CodeNoSpace, "write", s.path)
	}
	return nil
}

// WriteBits writes the leading nbits bits of p. Only whole-byte
// quantities are supported; a bit count not divisible by 8 fails with
// CodeInvalidArgument before reaching the device.
func (s *Stream) WriteBits(p []byte, nbits int) error {
	if err := s.requireWrite("write"); err != nil {
		return err
	}
	if nbits < 0 || nbits%8 != 0 || nbits/8 > len(p) {
		return streamErr(CodeInvalidArgument, "write", s.path)
	}
	return s.WriteBytes(p[:nbits/8])
}

// Sync flushes buffered writes, reports any latched flush failure, and
// asks the device to reach durable storage.
func (s *Stream) Sync() error {
	if err := s.requireOpen("sync"); err != nil {
		return err
	}
	if err := s.flushWrites(); err != nil {
		s.werr = nil
		return err
	}
	if s.werr != nil {
		err := s.werr
		s.werr = nil
		return err
	}
	if err := s.dev.Sync(); err != nil {
		return osErr("sync", s.path, err)
	}
	return nil
}

// Close flushes buffered writes and releases the device. A pending flush
// failure from an earlier write surfaces here. After Close every
// operation, including another Close, fails with CodeUnsupported.
func (s *Stream) Close() error {
	if s.closed {
		return streamErr(CodeUnsupported, "close", s.path)
	}
	s.closed = true
	flushErr := s.flushWrites()
	if flushErr == nil {
		flushErr = s.werr
	}
	s.werr = nil
	closeErr := s.dev.Close()
	if flushErr != nil {
		return flushErr
	}
	if closeErr != nil {
		return osErr("close", s.path, closeErr)
	}
	return nil
}

// readUpTo reads at most n bytes at the cursor and advances it by the
// number actually read. An immediate end of file yields an empty slice.
func (s *Stream) readUpTo(n int) ([]byte, error) {
	s.latchFlush()
	buf := make([]byte, n)
	got := 0
	for got < n {
		m, err := s.dev.ReadAt(buf[got:], s.pos+int64(got))
		got += m
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, osErr("read", s.path, err)
		}
		if m == 0 {
			break
		}
	}
	s.pos += int64(got)
	return buf[:got], nil
}

// bufferWrite appends p to the delayed-write buffer, flushing first if p
// is not contiguous with it and after if the buffer has filled. Flush
// failures here are latched for Sync/Close rather than failing the write.
func (s *Stream) bufferWrite(p []byte, off int64) error {
	if len(s.wbuf) > 0 && s.wbufOff+int64(len(s.wbuf)) != off {
		s.latchFlush()
	}
	if len(s.wbuf) == 0 {
		s.wbufOff = off
	}
	s.wbuf = append(s.wbuf, p...)
	s.advance(off, len(p))
	if len(s.wbuf) >= s.wcap {
		s.latchFlush()
	}
	return nil
}

func (s *Stream) flushWrites() error {
	if len(s.wbuf) == 0 {
		return nil
	}
	buf := s.wbuf
	off := s.wbufOff
	s.wbuf = s.wbuf[:0]
	n, err := s.dev.WriteAt(buf, off)
	if err != nil {
		return osErr("write", s.path, err)
	}
	if n < len(buf) {
		return streamErr(CodeNoSpace, "write", s.path)
	}
	return nil
}

func (s *Stream) latchFlush() {
	if err := s.flushWrites(); err != nil && s.werr == nil {
		s.werr = err
	}
}

func (s *Stream) advance(off int64, n int) {
	if s.append {
		s.size = off + int64(n)
		return
	}
	s.pos = off + int64(n)
	if s.pos > s.size {
		s.size = s.pos
	}
}

func (s *Stream) requireOpen(op string) *Error {
	if s.closed {
		return streamErr(CodeUnsupported, op, s.path)
	}
	return nil
}

func (s *Stream) requireRead(op string) *Error {
	if err := s.requireOpen(op); err != nil {
		return err
	}
	if !s.readable {
		return streamErr(CodeUnsupported, op, s.path)
	}
	return nil
}

func (s *Stream) requireWrite(op string) *Error {
	if err := s.requireOpen(op); err != nil {
		return err
	}
	if !s.writable {
		return streamErr(CodeUnsupported, op, s.path)
	}
	return nil
}

// requireBinary gates byte and numeric operations: they need the bytes of
// the device to pass through unmodified, so the stream must be raw or on
// the identity (Latin-1) encoding. Anything else fails with
// CodeUnsupported instead of silently transcoding.
func (s *Stream) requireBinary(op string) *Error {
	if s.raw || s.enc.identity() {
		return nil
	}
	return streamErr(CodeUnsupported, op, s.path)
}

package filestream

import "os"

// Option configures an Open call.
type Option func(*openConfig)

type openConfig struct {
	read      bool
	write     bool
	append    bool
	raw       bool
	exclusive bool

	enc    Encoding
	hasEnc bool

	writeBuffer int
}

// WithRead requests read capability. Reading is also the default when no
// direction option is given.
func WithRead() Option {
	return func(c *openConfig) { c.read = true }
}

// WithWrite requests write capability. Combine with WithRead for a
// read-write stream.
func WithWrite() Option {
	return func(c *openConfig) { c.write = true }
}

// WithAppend requests append mode: every write lands at the end of the
// file regardless of the stream position. Append implies write capability.
func WithAppend() Option {
	return func(c *openConfig) { c.append = true }
}

// WithRaw requests raw mode: no encoding translation is ever performed.
// Line and character writes operate in UTF-8, character reads are
// unsupported, and SetEncoding is rejected. Raw mode conflicts with
// WithEncoding.
func WithRaw() Option {
	return func(c *openConfig) { c.raw = true }
}

// WithEncoding selects the text encoding for character and line
// operations. Without this option a text-capable stream defaults to
// Latin-1.
func WithEncoding(enc Encoding) Option {
	return func(c *openConfig) {
		c.enc = enc
		c.hasEnc = true
	}
}

// WithExclusiveCreate makes Open fail with CodeAlreadyExists when the
// file already exists. Implies write capability.
func WithExclusiveCreate() Option {
	return func(c *openConfig) { c.exclusive = true }
}

// WithWriteBuffer enables delayed-write coalescing with the given buffer
// capacity in bytes. Buffered data is flushed when the buffer fills, when
// a read or end-relative state is needed, and on Sync and Close; a flush
// failure outside Sync/Close is latched and reported by the next Sync or
// Close.
func WithWriteBuffer(n int) Option {
	return func(c *openConfig) { c.writeBuffer = n }
}

// resolve applies defaulting and validates flag combinations. It never
// touches the filesystem: conflicts are rejected before any OS call.
func (c *openConfig) resolve(path string) *Error {
	if c.raw && c.hasEnc {
		return streamErr(CodeUnsupported, "open", path)
	}
	if c.append || c.exclusive {
		c.write = true
	}
	if !c.read && !c.write {
		c.read = true
	}
	if c.raw {
		c.enc = UTF8
	} else if !c.hasEnc {
		c.enc = Latin1
	}
	if !c.enc.valid() || c.writeBuffer < 0 {
		return streamErr(CodeInvalidArgument, "open", path)
	}
	return nil
}

// osFlags translates the resolved direction flags into the open flags
// handed to the backend. Append is emulated by the stream's end-of-file
// tracking, so os.O_APPEND is never passed down.
func (c *openConfig) osFlags() int {
	var flag int
	switch {
	case c.read && c.write:
		flag = os.O_RDWR
	case c.write:
		flag = os.O_WRONLY
	default:
		flag = os.O_RDONLY
	}
	if c.write {
		flag |= os.O_CREATE
	}
	if c.exclusive {
		flag |= os.O_EXCL
	}
	return flag
}

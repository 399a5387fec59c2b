package filestream

import "os"

// Device is an open file handle supporting positional I/O. Reads and writes
// take an explicit offset and never touch an implicit cursor; the Stream
// layered on top owns the only cursor.
//
// ReadAt follows io.ReaderAt semantics: it returns io.EOF (possibly with a
// short count) when fewer than len(p) bytes remain.
type Device interface {
	ReadAt(p []byte, off int64) (n int, err error)
	WriteAt(p []byte, off int64) (n int, err error)
	Sync() error
	Close() error
}

// Filesystem opens devices by path. Implementations should report failures
// using the error conventions of the io/fs and syscall packages so the
// stream layer can classify them.
type Filesystem interface {
	OpenDevice(name string, flag int, perm os.FileMode) (Device, error)
	Stat(name string) (os.FileInfo, error)
}

package filestream

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// ErrorCode classifies a stream failure. Codes are string-based for
// debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Codes passed through 1:1 from the operating system.

	// CodeNotFound indicates the file does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates an exclusive create found an existing file.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodePermissionDenied indicates the caller lacks access to the file.
	CodePermissionDenied ErrorCode = "PERMISSION_DENIED"

	// CodeIsDirectory indicates the path names a directory, not a file.
	CodeIsDirectory ErrorCode = "IS_A_DIRECTORY"

	// CodeFileBusy indicates the file is in use and cannot be opened.
	CodeFileBusy ErrorCode = "FILE_BUSY"

	// CodeNoSpace indicates the device is out of space, including short writes.
	CodeNoSpace ErrorCode = "NO_SPACE"

	// CodeTooManyOpenFiles indicates descriptor-table exhaustion.
	CodeTooManyOpenFiles ErrorCode = "TOO_MANY_OPEN_FILES"

	// CodeReadOnlyFilesystem indicates a write to a read-only filesystem.
	CodeReadOnlyFilesystem ErrorCode = "READ_ONLY_FILESYSTEM"

	// CodeIO indicates an unclassified operating system I/O failure.
	CodeIO ErrorCode = "IO_ERROR"

	// Codes raised by the stream layer itself.

	// CodeEndOfStream indicates no data remained to satisfy a read.
	// It is a read outcome, not an OS failure.
	CodeEndOfStream ErrorCode = "END_OF_STREAM"

	// CodeUnsupported indicates the operation is structurally disallowed
	// given how the stream was opened (or that it has been closed).
	CodeUnsupported ErrorCode = "UNSUPPORTED_OPERATION"

	// CodeInvalidArgument indicates a malformed request, such as a seek
	// resolving to a negative offset.
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// CodeDecodeFailed indicates bytes in the stream are not valid under
	// the active text encoding.
	CodeDecodeFailed ErrorCode = "DECODE_FAILED"

	// CodeEncodeFailed indicates characters cannot be represented in the
	// target text encoding.
	CodeEncodeFailed ErrorCode = "ENCODE_FAILED"
)

// Error is the error type returned by every fallible stream operation.
// Callers branch on Code (or CodeOf); Describe renders a one-line summary
// for diagnostics.
type Error struct {
	Code ErrorCode
	Op   string
	Path string

	// From and To identify the encodings involved in a translation
	// failure. They are zero for every other code.
	From Encoding
	To   Encoding

	Err error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("filestream: %s %q: %s", e.Op, e.Path, describeCode(e.Code))
	if e.Code == CodeEncodeFailed {
		msg += fmt.Sprintf(" (%s -> %s)", e.From, e.To)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a *Error with the same code, so that
// errors.Is(err, &Error{Code: CodeEndOfStream}) works across wrapping.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// CodeOf extracts the ErrorCode from err, or CodeIO if err is not a
// stream error.
func CodeOf(err error) ErrorCode {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return CodeIO
}

// IsEndOfStream reports whether err is an end-of-stream outcome.
func IsEndOfStream(err error) bool {
	return CodeOf(err) == CodeEndOfStream
}

// Describe returns a one-line human-readable description of err. It is
// meant for logs and diagnostics, not for programmatic branching.
func Describe(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Error()
	}
	if err == nil {
		return "ok"
	}
	return err.Error()
}

func describeCode(c ErrorCode) string {
	switch c {
	case CodeNotFound:
		return "file not found"
	case CodeAlreadyExists:
		return "file already exists"
	case CodePermissionDenied:
		return "permission denied"
	case CodeIsDirectory:
		return "path is a directory"
	case CodeFileBusy:
		return "file busy"
	case CodeNoSpace:
		return "no space left on device"
	case CodeTooManyOpenFiles:
		return "too many open files"
	case CodeReadOnlyFilesystem:
		return "read-only filesystem"
	case CodeEndOfStream:
		return "end of stream"
	case CodeUnsupported:
		return "unsupported operation"
	case CodeInvalidArgument:
		return "invalid argument"
	case CodeDecodeFailed:
		return "bytes not valid under active encoding"
	case CodeEncodeFailed:
		return "characters not representable in target encoding"
	default:
		return "I/O error"
	}
}

// streamErr builds a stream-layer error with no OS cause.
func streamErr(code ErrorCode, op, path string) *Error {
	return &Error{Code: code, Op: op, Path: path}
}

// osErr classifies an error reported by the backend. The mapping is
// stable: each POSIX condition the taxonomy names has exactly one code,
// and everything else degrades to CodeIO.
func osErr(op, path string, err error) *Error {
	return &Error{Code: classify(err), Op: op, Path: path, Err: err}
}

func classify(err error) ErrorCode {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return CodeNotFound
	case errors.Is(err, fs.ErrExist):
		return CodeAlreadyExists
	case errors.Is(err, fs.ErrPermission):
		return CodePermissionDenied
	case errors.Is(err, syscall.EISDIR):
		return CodeIsDirectory
	case errors.Is(err, syscall.EBUSY), errors.Is(err, syscall.ETXTBSY):
		return CodeFileBusy
	case errors.Is(err, syscall.ENOSPC), errors.Is(err, syscall.EDQUOT):
		return CodeNoSpace
	case errors.Is(err, syscall.EMFILE), errors.Is(err, syscall.ENFILE):
		return CodeTooManyOpenFiles
	case errors.Is(err, syscall.EROFS):
		return CodeReadOnlyFilesystem
	case errors.Is(err, syscall.EINVAL):
		return CodeInvalidArgument
	default:
		return CodeIO
	}
}

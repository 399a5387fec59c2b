// Package streamtest provides a conformance test suite for validating
// filesystem backends against the filestream device contracts.
//
// The suite exercises the stream layer end to end through a backend:
// binary round trips, seek and append semantics, exact and best-effort
// read boundaries, and text encoding behavior. It validates the device
// contract, not backend-specific behavior.
//
// Example usage:
//
//	func TestMyBackend(t *testing.T) {
//	    streamtest.TestSuite(t, func() filestream.Filesystem {
//	        return mybackend.New()
//	    })
//	}
package streamtest

import (
	"bytes"
	"io"
	"testing"

	"github.com/input-output-hk/catalyst-forge-libs/filestream"
)

// TestSuite runs all conformance tests against a backend. The newFS
// function should return a fresh, empty filesystem for each test; tests
// create and modify files, so each invocation should start clean.
func TestSuite(t *testing.T, newFS func() filestream.Filesystem) {
	t.Run("WriteSeekReadWrite", func(t *testing.T) {
		testWriteSeekReadWrite(t, newFS())
	})
	t.Run("TextLinesAndChars", func(t *testing.T) {
		testTextLinesAndChars(t, newFS())
	})
	t.Run("AppendSemantics", func(t *testing.T) {
		testAppendSemantics(t, newFS())
	})
	t.Run("SeekBounds", func(t *testing.T) {
		testSeekBounds(t, newFS())
	})
	t.Run("ReadBoundaries", func(t *testing.T) {
		testReadBoundaries(t, newFS())
	})
	t.Run("NumericRoundTrip", func(t *testing.T) {
		testNumericRoundTrip(t, newFS())
	})
	t.Run("ReadMissing", func(t *testing.T) {
		testReadMissing(t, newFS())
	})
}

// testWriteSeekReadWrite is the byte-level end-to-end scenario: write a
// payload, patch it through a read-write stream, and verify the final
// content on a fresh read-only stream.
func testWriteSeekReadWrite(t *testing.T, fsys filestream.Filesystem) {
	t.Helper()

	w, err := filestream.Open(fsys, "scenario.bin", filestream.WithWrite())
	if err != nil {
		t.Fatalf("Open for write failed: %v", err)
	}
	if err := w.WriteBytes([]byte("Test1234")); err != nil {
		t.Fatalf("WriteBytes failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	rw, err := filestream.Open(fsys, "scenario.bin", filestream.WithRead(), filestream.WithWrite())
	if err != nil {
		t.Fatalf("Open for read+write failed: %v", err)
	}
	if _, err := rw.Seek(4, io.SeekStart); err != nil {
		t.Fatalf("Seek failed: %v", err)
	}
	mid, err := rw.ReadBytesExact(4)
	if err != nil {
		t.Fatalf("ReadBytesExact failed: %v", err)
	}
	if string(mid) != "1234" {
		t.Errorf("ReadBytesExact = %q, want %q", mid, "1234")
	}
	if err := rw.WriteBytes([]byte("5678")); err != nil {
		t.Fatalf("WriteBytes failed: %v", err)
	}
	if err := rw.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	r, err := filestream.Open(fsys, "scenario.bin")
	if err != nil {
		t.Fatalf("Open for read failed: %v", err)
	}
	all, err := r.ReadRemaining()
	if err != nil {
		t.Fatalf("ReadRemaining failed: %v", err)
	}
	if string(all) != "Test12345678" {
		t.Errorf("final content = %q, want %q", all, "Test12345678")
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

// testTextLinesAndChars is the character-level end-to-end scenario,
// including characters outside the Basic Multilingual Plane.
func testTextLinesAndChars(t *testing.T, fsys filestream.Filesystem) {
	t.Helper()

	w, err := filestream.Open(fsys, "text.txt",
		filestream.WithWrite(), filestream.WithEncoding(filestream.UTF8))
	if err != nil {
		t.Fatalf("Open for write failed: %v", err)
	}
	if err := w.WriteChars("Hello\nBoo \U0001F47B!\n1\U0001F991234\nLast"); err != nil {
		t.Fatalf("WriteChars failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	r, err := filestream.Open(fsys, "text.txt", filestream.WithEncoding(filestream.UTF8))
	if err != nil {
		t.Fatalf("Open for read failed: %v", err)
	}
	defer func() { _ = r.Close() }()

	for i, want := range []string{"Hello\n", "Boo \U0001F47B!\n"} {
		line, lerr := r.ReadLine()
		if lerr != nil {
			t.Fatalf("ReadLine %d failed: %v", i, lerr)
		}
		if line != want {
			t.Errorf("ReadLine %d = %q, want %q", i, line, want)
		}
	}

	one, err := r.ReadChars(1)
	if err != nil || one != "1" {
		t.Fatalf("ReadChars(1) = %q, %v, want %q", one, err, "1")
	}
	two, err := r.ReadChars(2)
	if err != nil || two != "\U0001F9912" {
		t.Fatalf("ReadChars(2) = %q, %v, want %q", two, err, "\U0001F9912")
	}
	line, err := r.ReadLine()
	if err != nil || line != "34\n" {
		t.Fatalf("ReadLine = %q, %v, want %q", line, err, "34\n")
	}
	last, err := r.ReadChars(4)
	if err != nil || last != "Last" {
		t.Fatalf("ReadChars(4) = %q, %v, want %q", last, err, "Last")
	}
	if _, err := r.ReadLine(); !filestream.IsEndOfStream(err) {
		t.Errorf("ReadLine after end = %v, want end of stream", err)
	}
}

// testAppendSemantics verifies that append writes land at end of file
// regardless of the cursor, while reads honor the cursor.
func testAppendSemantics(t *testing.T, fsys filestream.Filesystem) {
	t.Helper()

	w, err := filestream.Open(fsys, "append.bin", filestream.WithWrite())
	if err != nil {
		t.Fatalf("Open for write failed: %v", err)
	}
	if err := w.WriteBytes([]byte("abcdef")); err != nil {
		t.Fatalf("WriteBytes failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	a, err := filestream.Open(fsys, "append.bin",
		filestream.WithRead(), filestream.WithAppend())
	if err != nil {
		t.Fatalf("Open for read+append failed: %v", err)
	}
	if _, err := a.Seek(2, io.SeekStart); err != nil {
		t.Fatalf("Seek failed: %v", err)
	}
	if err := a.WriteBytes([]byte("XY")); err != nil {
		t.Fatalf("append WriteBytes failed: %v", err)
	}
	// The write went to the end; the cursor is still where we sought it.
	got, err := a.ReadBytesExact(2)
	if err != nil {
		t.Fatalf("ReadBytesExact failed: %v", err)
	}
	if string(got) != "cd" {
		t.Errorf("read after append = %q, want %q", got, "cd")
	}
	if err := a.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	r, err := filestream.Open(fsys, "append.bin")
	if err != nil {
		t.Fatalf("Open for read failed: %v", err)
	}
	all, err := r.ReadRemaining()
	if err != nil {
		t.Fatalf("ReadRemaining failed: %v", err)
	}
	if string(all) != "abcdefXY" {
		t.Errorf("final content = %q, want %q", all, "abcdefXY")
	}
	_ = r.Close()
}

// testSeekBounds verifies three-origin resolution and that a rejected
// seek does not move the cursor.
func testSeekBounds(t *testing.T, fsys filestream.Filesystem) {
	t.Helper()

	w, err := filestream.Open(fsys, "seek.bin", filestream.WithWrite())
	if err != nil {
		t.Fatalf("Open for write failed: %v", err)
	}
	if err := w.WriteBytes([]byte("0123456789")); err != nil {
		t.Fatalf("WriteBytes failed: %v", err)
	}
	_ = w.Close()

	r, err := filestream.Open(fsys, "seek.bin")
	if err != nil {
		t.Fatalf("Open for read failed: %v", err)
	}
	defer func() { _ = r.Close() }()

	pos, err := r.Seek(-3, io.SeekEnd)
	if err != nil {
		t.Fatalf("Seek end-3 failed: %v", err)
	}
	if pos != 7 {
		t.Errorf("Seek(-3, end) = %d, want 7", pos)
	}

	if _, err := r.Seek(-100, io.SeekCurrent); filestream.CodeOf(err) != filestream.CodeInvalidArgument {
		t.Errorf("negative seek error = %v, want invalid argument", err)
	}
	// The failed seek must not have moved the cursor.
	tail, err := r.ReadRemaining()
	if err != nil {
		t.Fatalf("ReadRemaining failed: %v", err)
	}
	if string(tail) != "789" {
		t.Errorf("read after failed seek = %q, want %q", tail, "789")
	}
}

// testReadBoundaries verifies exact vs best-effort behavior at end of file.
func testReadBoundaries(t *testing.T, fsys filestream.Filesystem) {
	t.Helper()

	w, err := filestream.Open(fsys, "bounds.bin", filestream.WithWrite())
	if err != nil {
		t.Fatalf("Open for write failed: %v", err)
	}
	if err := w.WriteBytes([]byte("12345")); err != nil {
		t.Fatalf("WriteBytes failed: %v", err)
	}
	_ = w.Close()

	r, err := filestream.Open(fsys, "bounds.bin")
	if err != nil {
		t.Fatalf("Open for read failed: %v", err)
	}
	defer func() { _ = r.Close() }()

	b, err := r.ReadBytes(100)
	if err != nil {
		t.Fatalf("ReadBytes over length failed: %v", err)
	}
	if !bytes.Equal(b, []byte("12345")) {
		t.Errorf("ReadBytes = %q, want %q", b, "12345")
	}
	if _, err := r.ReadBytes(1); !filestream.IsEndOfStream(err) {
		t.Errorf("ReadBytes at end = %v, want end of stream", err)
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("Seek failed: %v", err)
	}
	if _, err := r.ReadBytesExact(6); !filestream.IsEndOfStream(err) {
		t.Errorf("ReadBytesExact over length = %v, want end of stream", err)
	}
}

// testNumericRoundTrip writes a mixed record in both byte orders and
// reads it back through a reopened stream.
func testNumericRoundTrip(t *testing.T, fsys filestream.Filesystem) {
	t.Helper()

	w, err := filestream.Open(fsys, "record.bin", filestream.WithWrite())
	if err != nil {
		t.Fatalf("Open for write failed: %v", err)
	}
	if err := w.WriteUint32LE(0xDEADBEEF); err != nil {
		t.Fatalf("WriteUint32LE failed: %v", err)
	}
	if err := w.WriteInt64BE(-42); err != nil {
		t.Fatalf("WriteInt64BE failed: %v", err)
	}
	if err := w.WriteFloat64LE(6.5); err != nil {
		t.Fatalf("WriteFloat64LE failed: %v", err)
	}
	_ = w.Close()

	r, err := filestream.Open(fsys, "record.bin")
	if err != nil {
		t.Fatalf("Open for read failed: %v", err)
	}
	defer func() { _ = r.Close() }()

	u, err := r.ReadUint32LE()
	if err != nil || u != 0xDEADBEEF {
		t.Errorf("ReadUint32LE = %#x, %v, want 0xdeadbeef", u, err)
	}
	i, err := r.ReadInt64BE()
	if err != nil || i != -42 {
		t.Errorf("ReadInt64BE = %d, %v, want -42", i, err)
	}
	f, err := r.ReadFloat64LE()
	if err != nil || f != 6.5 {
		t.Errorf("ReadFloat64LE = %v, %v, want 6.5", f, err)
	}
	if _, err := r.ReadUint8(); !filestream.IsEndOfStream(err) {
		t.Errorf("trailing read = %v, want end of stream", err)
	}
}

// testReadMissing verifies that a read-only open of a missing file maps
// to the not-found code.
func testReadMissing(t *testing.T, fsys filestream.Filesystem) {
	t.Helper()
	_, err := filestream.Open(fsys, "no-such-file.bin")
	if filestream.CodeOf(err) != filestream.CodeNotFound {
		t.Errorf("open missing = %v, want not found", err)
	}
}

package billy

import (
	"io"
	"testing"

	"github.com/input-output-hk/catalyst-forge-libs/filestream"
	"github.com/input-output-hk/catalyst-forge-libs/filestream/streamtest"
)

func TestInMemoryFS_Suite(t *testing.T) {
	streamtest.TestSuite(t, func() filestream.Filesystem {
		return NewInMemoryFS()
	})
}

func TestOSFS_Suite(t *testing.T) {
	streamtest.TestSuite(t, func() filestream.Filesystem {
		return NewOSFS(t.TempDir())
	})
}

func TestDevice_PositionalIO(t *testing.T) {
	fsys := NewInMemoryFS()

	s, err := filestream.Open(fsys, "dev.bin", filestream.WithRead(), filestream.WithWrite())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := s.WriteBytes([]byte("hello world")); err != nil {
		t.Fatalf("WriteBytes failed: %v", err)
	}

	// Positional reads must not disturb the write cursor billy keeps
	// internally for the next write.
	if _, err := s.Seek(6, io.SeekStart); err != nil {
		t.Fatalf("Seek failed: %v", err)
	}
	got, err := s.ReadBytesExact(5)
	if err != nil {
		t.Fatalf("ReadBytesExact failed: %v", err)
	}
	if string(got) != "world" {
		t.Errorf("ReadBytesExact = %q, want %q", got, "world")
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestStat_MissingFile(t *testing.T) {
	fsys := NewInMemoryFS()
	if _, err := fsys.Stat("missing.txt"); err == nil {
		t.Fatal("Stat of missing file succeeded, want error")
	}
}

func TestOpenDevice_Directory(t *testing.T) {
	root := t.TempDir()
	fsys := NewOSFS(root)

	// Opening a directory through the stream layer must classify as
	// is-a-directory before any device call.
	_, err := filestream.Open(fsys, ".")
	if filestream.CodeOf(err) != filestream.CodeIsDirectory {
		t.Errorf("open directory = %v, want is-a-directory", err)
	}
}

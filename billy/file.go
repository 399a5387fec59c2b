package billy

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5"
)

// Device wraps a go-billy File and satisfies filestream.Device. All I/O
// is positional; billy has no WriteAt, so writes seek first. The stream
// layer owns the device exclusively, so the seek cannot race.
type Device struct {
	file billy.File
}

// ReadAt implements Device.ReadAt. io.EOF passes through unwrapped so the
// stream layer can tell end of file from a backend failure.
func (d *Device) ReadAt(p []byte, off int64) (n int, err error) {
	n, err = d.file.ReadAt(p, off)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return n, io.EOF
		}
		return n, fmt.Errorf("billy: readat %q off=%d: %w", d.file.Name(), off, err)
	}
	return n, nil
}

// WriteAt implements Device.WriteAt.
func (d *Device) WriteAt(p []byte, off int64) (n int, err error) {
	if _, err := d.file.Seek(off, io.SeekStart); err != nil {
		return 0, fmt.Errorf("billy: seek %q off=%d: %w", d.file.Name(), off, err)
	}
	n, err = d.file.Write(p)
	if err != nil {
		return n, fmt.Errorf("billy: write %q off=%d: %w", d.file.Name(), off, err)
	}
	return n, nil
}

// Sync implements Device.Sync. billy.File has no sync of its own;
// backends that expose one (osfs wraps os.File) are used, the rest are
// already durable as far as they can be and report success.
func (d *Device) Sync() error {
	if sy, ok := d.file.(interface{ Sync() error }); ok {
		if err := sy.Sync(); err != nil {
			return fmt.Errorf("billy: sync %q: %w", d.file.Name(), err)
		}
	}
	return nil
}

// Close implements Device.Close.
func (d *Device) Close() error {
	if err := d.file.Close(); err != nil {
		return fmt.Errorf("billy: close %q: %w", d.file.Name(), err)
	}
	return nil
}

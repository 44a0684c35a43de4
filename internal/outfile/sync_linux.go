//go:build linux

package outfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync flushes file data. The fullsync flag only matters on darwin.
func fdatasync(f *os.File, _ bool) error {
	return unix.Fdatasync(int(f.Fd()))
}

// syncDir makes the rename durable. Best effort.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	_ = unix.Fsync(int(d.Fd()))
	_ = d.Close()
}

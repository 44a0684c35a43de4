//go:build darwin

package outfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync flushes file data. With fullsync, F_FULLFSYNC pushes past the
// drive cache; darwin has no fdatasync otherwise.
func fdatasync(f *os.File, fullsync bool) error {
	if fullsync {
		_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
		return err
	}
	return unix.Fsync(int(f.Fd()))
}

func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	_ = unix.Fsync(int(d.Fd()))
	_ = d.Close()
}

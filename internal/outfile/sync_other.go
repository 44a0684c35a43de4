//go:build !linux && !darwin

package outfile

import "os"

func fdatasync(f *os.File, _ bool) error {
	return f.Sync()
}

func syncDir(string) {}

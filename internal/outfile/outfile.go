// Package outfile writes patched ebooks without ever exposing a partial
// file: data goes to a temp file in the destination directory, is synced,
// and is renamed over the destination. Writers to the same destination are
// serialised with an advisory lock on <dest>.lock.
package outfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked indicates another writer holds the destination lock.
var ErrLocked = errors.New("outfile: destination is locked by another writer")

// LockSuffix is appended to the destination path to form the lock file.
const LockSuffix = ".lock"

// BackupSuffix is appended to the destination path for backups.
const BackupSuffix = ".bak"

// Options controls how the destination is replaced. A nil *Options uses the
// defaults.
type Options struct {
	// Backup keeps the previous destination contents at <dest>.bak.
	Backup bool

	// FullSync requests F_FULLFSYNC on darwin; ignored elsewhere.
	FullSync bool

	// Perm is the mode of a newly created destination. Default: 0o644.
	// An existing destination keeps its mode.
	Perm os.FileMode
}

// Write replaces path with data.
func Write(path string, data []byte, opts *Options) error {
	var o Options
	if opts != nil {
		o = *opts
	}
	if o.Perm == 0 {
		o.Perm = 0o644
	}

	lock := flock.New(path + LockSuffix)
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("outfile: acquire lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrLocked, path)
	}
	defer func() { _ = lock.Unlock() }()

	perm := o.Perm
	if st, err := os.Stat(path); err == nil {
		if !st.Mode().IsRegular() {
			return fmt.Errorf("outfile: %s is not a regular file", path)
		}
		perm = st.Mode().Perm()
		if o.Backup {
			if err := copyFile(path, path+BackupSuffix, perm); err != nil {
				return fmt.Errorf("outfile: backup: %w", err)
			}
		}
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("outfile: create temp: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("outfile: write temp: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf("outfile: chmod temp: %w", err)
	}
	if err := fdatasync(tmp, o.FullSync); err != nil {
		return fmt.Errorf("outfile: sync temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("outfile: close temp: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("outfile: rename: %w", err)
	}
	committed = true
	syncDir(dir)
	return nil
}

// copyFile copies src to dst, replacing dst.
func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy data: %w", err)
	}
	return out.Close()
}

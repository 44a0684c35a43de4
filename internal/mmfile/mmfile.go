// Package mmfile maps ebook files read-only so the patcher can work on the
// input without an extra copy. The patched output is always a fresh buffer.
package mmfile

import "errors"

// ErrClosed is returned by Bytes after Close.
var ErrClosed = errors.New("mmfile: mapping closed")

// Mapping is a read-only view of a file's contents.
type Mapping struct {
	data  []byte
	unmap func([]byte) error
}

// Bytes returns the mapped contents. The slice must not be written to and
// is invalid after Close.
func (m *Mapping) Bytes() ([]byte, error) {
	if m == nil || m.unmap == nil {
		return nil, ErrClosed
	}
	return m.data, nil
}

// Len returns the mapped size.
func (m *Mapping) Len() int { return len(m.data) }

// Close releases the mapping. Calling it twice is a no-op.
func (m *Mapping) Close() error {
	if m == nil || m.unmap == nil {
		return nil
	}
	err := m.unmap(m.data)
	m.data = nil
	m.unmap = nil
	return err
}

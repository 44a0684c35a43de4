//go:build !unix

package mmfile

import "os"

// Open reads the whole file when mmap is not available.
func Open(path string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Mapping{data: data, unmap: func([]byte) error { return nil }}, nil
}

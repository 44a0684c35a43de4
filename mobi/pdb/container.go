package pdb

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/mobikit/internal/format"
)

// Container is an owned copy of a PalmDB file. Sections are only ever
// replaced whole and at their original length.
type Container struct {
	data   []byte
	header format.PDBHeader
}

// New copies data and validates its directory.
func New(data []byte) (*Container, error) {
	h, err := format.ParsePDBHeader(data)
	if err != nil {
		return nil, err
	}
	return &Container{data: bytes.Clone(data), header: h}, nil
}

// Header returns the decoded PalmDB header.
func (c *Container) Header() format.PDBHeader { return c.header }

// NumSections returns the directory's section count.
func (c *Container) NumSections() int { return c.header.NumSections }

// Len returns the container size in bytes.
func (c *Container) Len() int { return len(c.data) }

// Section returns a read-only view of section i.
func (c *Container) Section(i int) ([]byte, error) {
	start, end, err := locate(c.data, c.header.NumSections, i)
	if err != nil {
		return nil, err
	}
	return c.data[start:end:end], nil
}

// Replace overwrites section i in place.
func (c *Container) Replace(i int, sec []byte) error {
	start, end, err := locate(c.data, c.header.NumSections, i)
	if err != nil {
		return err
	}
	if len(sec) != end-start {
		return fmt.Errorf("%w: section %d is %d bytes, replacement is %d",
			format.ErrLengthMismatch, i, end-start, len(sec))
	}
	copy(c.data[start:end], sec)
	return nil
}

// Bytes returns the container contents. The slice stays owned by c.
func (c *Container) Bytes() []byte { return c.data }

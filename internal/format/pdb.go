package format

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/mobikit/internal/buf"
)

// PDBHeader is the subset of the PalmDB header needed to address sections.
type PDBHeader struct {
	Name        string
	Ident       [PDBIdentSize]byte
	NumSections int
}

// ParsePDBHeader decodes the PalmDB prefix and checks that the whole
// section directory fits in b. It does not check the ident; see
// IsBookMobi.
func ParsePDBHeader(b []byte) (PDBHeader, error) {
	if len(b) < PDBHeaderSize {
		return PDBHeader{}, fmt.Errorf("pdb header: %w", ErrTruncated)
	}
	n := int(ReadU16(b, PDBNumSectionsOffset))
	if _, err := buf.CheckListBounds(len(b), PDBDirectoryOffset, n, PDBEntrySize); err != nil {
		return PDBHeader{}, fmt.Errorf("pdb directory: %w: %v", ErrTruncated, err)
	}
	h := PDBHeader{NumSections: n}
	name := b[PDBNameOffset : PDBNameOffset+PDBNameSize]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	h.Name = string(name)
	copy(h.Ident[:], b[PDBIdentOffset:PDBIdentOffset+PDBIdentSize])
	return h, nil
}

// IsBookMobi reports whether the header carries the BOOKMOBI ident.
func (h PDBHeader) IsBookMobi() bool {
	return bytes.Equal(h.Ident[:], BookMobiIdent)
}

// SectionStart returns the start offset recorded in directory entry i. The
// caller must have validated the directory with ParsePDBHeader.
func SectionStart(b []byte, i int) uint32 {
	return ReadU32(b, PDBDirectoryOffset+i*PDBEntrySize)
}

package format

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/mobikit/internal/buf"
)

// MOBIHeader captures the MOBI header fields used for patching and
// inspection.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------
//	 0x10    4    'M' 'O' 'B' 'I'
//	 0x14    4    Header length (from 0x10)
//	 0x18    4    MOBI type
//	 0x1C    4    Text encoding (1252 or 65001)
//	 0x20    4    Unique ID
//	 0x24    4    File version (8 = standalone KF8)
//	 0x54    4    Full name offset (from section start)
//	 0x58    4    Full name length
type MOBIHeader struct {
	HeaderLength   uint32
	Type           uint32
	TextEncoding   uint32
	UID            uint32
	Version        uint32
	FullNameOffset uint32
	FullNameLength uint32
}

// ParseMOBIHeader decodes the MOBI header at the start of a header section.
func ParseMOBIHeader(sec []byte) (MOBIHeader, error) {
	if len(sec) < MOBIMinSize {
		return MOBIHeader{}, fmt.Errorf("mobi header: %w", ErrTruncated)
	}
	if !bytes.Equal(sec[MOBISignatureOffset:MOBISignatureOffset+4], MOBISignature) {
		return MOBIHeader{}, fmt.Errorf("mobi header: %w", ErrFormat)
	}
	return MOBIHeader{
		HeaderLength:   ReadU32(sec, MOBIHeaderLengthOffset),
		Type:           ReadU32(sec, MOBITypeOffset),
		TextEncoding:   ReadU32(sec, MOBITextEncodingOffset),
		UID:            ReadU32(sec, MOBIUIDOffset),
		Version:        ReadU32(sec, MOBIVersionOffset),
		FullNameOffset: ReadU32(sec, MOBIFullNameOffset),
		FullNameLength: ReadU32(sec, MOBIFullNameLengthOffset),
	}, nil
}

// EXTHOffset returns where the EXTH block starts.
func (h MOBIHeader) EXTHOffset() int {
	return MOBIHeaderBase + int(h.HeaderLength)
}

// IsKF8 reports whether the header describes a standalone KF8 book.
func (h MOBIHeader) IsKF8() bool {
	return h.Version == MOBIVersionKF8
}

// Title decodes the full name stored in sec according to the header's text
// encoding.
func (h MOBIHeader) Title(sec []byte) (string, error) {
	raw, ok := buf.Slice(sec, int(h.FullNameOffset), int(h.FullNameLength))
	if !ok {
		return "", fmt.Errorf("full name: %w", ErrTruncated)
	}
	switch h.TextEncoding {
	case TextEncodingCP1252:
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
		if err != nil {
			return "", fmt.Errorf("failed to decode Windows-1252 title: %w", err)
		}
		return string(decoded), nil
	default:
		if !utf8.Valid(raw) {
			return "", fmt.Errorf("full name: invalid UTF-8")
		}
		return string(raw), nil
	}
}

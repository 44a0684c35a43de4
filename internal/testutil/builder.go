// Package testutil builds synthetic Kindle containers for tests.
package testutil

import (
	"encoding/binary"

	"github.com/joshuapare/mobikit/internal/buf"
	"github.com/joshuapare/mobikit/internal/format"
)

// DefaultHeaderLength is the MOBI header length used by BuildHeader when
// HeaderSpec.HeaderLength is zero. Real KindleGen output uses 0xE8 for
// legacy headers and 0x108 for KF8.
const DefaultHeaderLength = 0xE8

// DefaultPadding is the zero tail BuildHeader leaves after the title.
const DefaultPadding = 256

// Record is an EXTH record to seed a header with.
type Record struct {
	Type    uint32
	Payload []byte
}

// HeaderSpec describes a synthetic MOBI header section.
type HeaderSpec struct {
	Version      uint32
	TextEncoding uint32 // defaults to UTF-8
	HeaderLength uint32 // defaults to DefaultHeaderLength
	Title        string
	Records      []Record
	Padding      int // zero bytes after the title; -1 for none, 0 for DefaultPadding
}

// KF8Ref returns an EXTH 121 record pointing at section idx.
func KF8Ref(idx uint32) Record {
	return Record{Type: format.EXTHTypeKF8Boundary, Payload: binary.BigEndian.AppendUint32(nil, idx)}
}

// BuildHeader lays out PalmDOC + MOBI header, EXTH block (padded to four
// bytes), the title and the zero tail. The title offset field points at the
// title.
func BuildHeader(spec HeaderSpec) []byte {
	hl := spec.HeaderLength
	if hl == 0 {
		hl = DefaultHeaderLength
	}
	enc := spec.TextEncoding
	if enc == 0 {
		enc = format.TextEncodingUTF8
	}
	pad := spec.Padding
	switch {
	case pad == 0:
		pad = DefaultPadding
	case pad < 0:
		pad = 0
	}

	exth := make([]byte, format.EXTHPrologueSize)
	copy(exth, format.EXTHSignature)
	for _, r := range spec.Records {
		exth = binary.BigEndian.AppendUint32(exth, r.Type)
		exth = binary.BigEndian.AppendUint32(exth, uint32(format.EXTHRecordHeaderSize+len(r.Payload)))
		exth = append(exth, r.Payload...)
	}
	binary.BigEndian.PutUint32(exth[format.EXTHLengthOffset:], uint32(len(exth)))
	binary.BigEndian.PutUint32(exth[format.EXTHCountOffset:], uint32(len(spec.Records)))
	for len(exth)%4 != 0 {
		exth = append(exth, 0)
	}

	sec := make([]byte, format.MOBIHeaderBase+int(hl))
	binary.BigEndian.PutUint16(sec[0:], 1) // no compression
	copy(sec[format.MOBISignatureOffset:], format.MOBISignature)
	binary.BigEndian.PutUint32(sec[format.MOBIHeaderLengthOffset:], hl)
	binary.BigEndian.PutUint32(sec[format.MOBITypeOffset:], 2)
	binary.BigEndian.PutUint32(sec[format.MOBITextEncodingOffset:], enc)
	binary.BigEndian.PutUint32(sec[format.MOBIVersionOffset:], spec.Version)

	titleOff := len(sec) + len(exth)
	binary.BigEndian.PutUint32(sec[format.MOBIFullNameOffset:], uint32(titleOff))
	binary.BigEndian.PutUint32(sec[format.MOBIFullNameLengthOffset:], uint32(len(spec.Title)))

	sec = append(sec, exth...)
	sec = append(sec, spec.Title...)
	sec = append(sec, make([]byte, pad)...)
	return sec
}

// BuildContainer wraps sections in a BOOKMOBI PalmDB.
func BuildContainer(name string, sections ...[]byte) []byte {
	dirEnd := format.PDBDirectoryOffset + len(sections)*format.PDBEntrySize
	out := make([]byte, dirEnd+2) // two-byte gap as written by KindleGen
	copy(out[format.PDBNameOffset:format.PDBNameOffset+format.PDBNameSize-1], name)
	copy(out[format.PDBIdentOffset:], format.BookMobiIdent)
	binary.BigEndian.PutUint16(out[format.PDBNumSectionsOffset:], uint16(len(sections)))
	for i, s := range sections {
		ent := format.PDBDirectoryOffset + i*format.PDBEntrySize
		binary.BigEndian.PutUint32(out[ent:], uint32(len(out)))
		binary.BigEndian.PutUint32(out[ent+4:], uint32(2*i)) // uid
		out = append(out, s...)
	}
	return out
}

// SectionAt slices section i out of a container built by BuildContainer.
// It trusts the directory and is meant for assertions only.
func SectionAt(data []byte, i int) []byte {
	n := int(buf.U16BE(data[format.PDBNumSectionsOffset:]))
	start := format.SectionStart(data, i)
	end := uint32(len(data))
	if i+1 < n {
		end = format.SectionStart(data, i+1)
	}
	return data[start:end]
}

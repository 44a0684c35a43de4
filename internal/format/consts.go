// Package format houses low-level decoders for the PalmDB container and the
// MOBI/EXTH headers embedded in Kindle ebooks. Everything on disk is
// big-endian. The package only decodes; mutation lives in the mobi packages.
package format

var (
	// BookMobiIdent is the type+creator pair at 0x3C of every Kindle PalmDB.
	BookMobiIdent = []byte("BOOKMOBI")

	// MOBISignature opens the MOBI header right after the PalmDOC header.
	MOBISignature = []byte("MOBI")

	// EXTHSignature opens the EXTH metadata block.
	EXTHSignature = []byte("EXTH")

	// CDETypeEBOK is the content-type marker for purchased-style books.
	CDETypeEBOK = []byte("EBOK")
)

// PalmDB header.
//
//	Offset  Size  Description
//	------  ----  -----------------------------------------
//	 0x00    32   Database name, NUL padded
//	 0x3C     8   Type + creator ("BOOKMOBI")
//	 0x4C     2   Number of sections
//	 0x4E   8*n   Section directory: u32 start offset, u8 attrs, u24 uid
const (
	PDBNameOffset        = 0x00
	PDBNameSize          = 32
	PDBIdentOffset       = 0x3C
	PDBIdentSize         = 8
	PDBNumSectionsOffset = 0x4C
	PDBDirectoryOffset   = 0x4E
	PDBEntrySize         = 8

	// PDBHeaderSize is the fixed prefix before the section directory.
	PDBHeaderSize = PDBDirectoryOffset
)

// MOBI header fields, relative to the start of a header section (section 0,
// or the KF8 header section of a combo file).
const (
	// MOBIHeaderBase is the size of the PalmDOC header preceding "MOBI".
	// The EXTH block starts at MOBIHeaderBase + header length.
	MOBIHeaderBase = 16

	MOBISignatureOffset      = 16
	MOBIHeaderLengthOffset   = 20
	MOBITypeOffset           = 24
	MOBITextEncodingOffset   = 28
	MOBIUIDOffset            = 32
	MOBIVersionOffset        = 36
	MOBIFullNameOffset       = 84 // title offset, relative to section start
	MOBIFullNameLengthOffset = 88

	// MOBIMinSize covers every field decoded by ParseMOBIHeader.
	MOBIMinSize = MOBIFullNameLengthOffset + 4

	// MOBIVersionKF8 marks a standalone KF8 book (no legacy part).
	MOBIVersionKF8 = 8
)

// Text encodings declared in the MOBI header.
const (
	TextEncodingCP1252 = 1252
	TextEncodingUTF8   = 65001
)

// EXTH block layout.
//
//	Offset  Size  Description
//	------  ----  -----------------------------------------
//	 0x00     4   'E' 'X' 'T' 'H'
//	 0x04     4   Declared length
//	 0x08     4   Record count
//	 0x0C     -   Records: u32 type, u32 length (incl. header), payload
const (
	EXTHLengthOffset     = 4
	EXTHCountOffset      = 8
	EXTHPrologueSize     = 12
	EXTHRecordHeaderSize = 8
)

// EXTH record types touched by this module.
const (
	EXTHTypeASIN        uint32 = 113 // canonical identifier
	EXTHTypeKF8Boundary uint32 = 121 // section index of the KF8 header
	EXTHTypeCDEType     uint32 = 501 // content-type marker
	EXTHTypeASIN2       uint32 = 504 // alternate identifier
)

// KF8BoundaryNone is the EXTH 121 payload meaning "no KF8 part".
const KF8BoundaryNone uint32 = 0xFFFFFFFF

package exth

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// Names for the EXTH record types KindleGen and Calibre commonly write.
var typeNames = map[uint32]string{
	100: "author",
	101: "publisher",
	103: "description",
	104: "isbn",
	105: "subject",
	106: "publishing date",
	108: "contributor",
	109: "rights",
	112: "source",
	113: "asin",
	121: "kf8 boundary",
	125: "resource count",
	129: "kf8 cover uri",
	131: "unknown 131",
	201: "cover offset",
	202: "thumb offset",
	203: "has fake cover",
	204: "creator software",
	205: "creator major",
	206: "creator minor",
	207: "creator build",
	208: "watermark",
	501: "cde type",
	503: "updated title",
	504: "asin (alt)",
	524: "language",
	525: "primary writing mode",
	535: "creator build tag",
	542: "content hash",
}

// numericTypes hold a single big-endian integer payload.
var numericTypes = map[uint32]bool{
	121: true, 125: true, 131: true, 201: true, 202: true, 203: true,
	204: true, 205: true, 206: true, 207: true,
}

// TypeName returns a human readable name for typ, or "" if unknown.
func TypeName(typ uint32) string {
	return typeNames[typ]
}

// FormatPayload renders a payload for display: integers for numeric types,
// text when the payload is valid UTF-8, hex otherwise.
func FormatPayload(typ uint32, payload []byte) string {
	if numericTypes[typ] && len(payload) == 4 {
		return fmt.Sprintf("%d", binary.BigEndian.Uint32(payload))
	}
	if utf8.Valid(payload) {
		return string(payload)
	}
	return fmt.Sprintf("%x", payload)
}

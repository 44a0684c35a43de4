package mobi

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/mobikit/internal/format"
	"github.com/joshuapare/mobikit/internal/testutil"
)

func TestValidateIdent(t *testing.T) {
	require.NoError(t, ValidateIdent(comboBook()))

	short := make([]byte, format.PDBHeaderSize-1)
	assert.ErrorIs(t, ValidateIdent(short), ErrTruncated)

	other := comboBook()
	copy(other[format.PDBIdentOffset:], "TEXtREAd")
	assert.ErrorIs(t, ValidateIdent(other), ErrFormat)

	// Ident present but the directory claims more entries than fit.
	noDir := make([]byte, format.PDBHeaderSize)
	copy(noDir[format.PDBIdentOffset:], format.BookMobiIdent)
	binary.BigEndian.PutUint16(noDir[format.PDBNumSectionsOffset:], 5)
	assert.ErrorIs(t, ValidateIdent(noDir), ErrTruncated)
}

func TestPatchBytes_Combo(t *testing.T) {
	data := comboBook()
	orig := bytes.Clone(data)

	res, err := PatchBytes(data, testASIN, nil)
	require.NoError(t, err)

	assert.Equal(t, orig, data)
	assert.Len(t, res.Data, len(orig))
	assert.True(t, res.Combo)
	assert.Equal(t, 2, res.KF8Section)
	for _, i := range []int{0, 2} {
		sec := testutil.SectionAt(res.Data, i)
		assert.Equal(t, testASIN, firstPayload(t, sec, format.EXTHTypeASIN))
		assert.Equal(t, testASIN, firstPayload(t, sec, format.EXTHTypeASIN2))
		assert.Equal(t, "EBOK", firstPayload(t, sec, format.EXTHTypeCDEType))
	}
	assert.Equal(t, testutil.SectionAt(orig, 1), testutil.SectionAt(res.Data, 1))
}

func TestPatchBytes_Standalone(t *testing.T) {
	res, err := PatchBytes(kf8Book(), testASIN, &PatchOptions{Marker: "PDOC"})
	require.NoError(t, err)
	assert.False(t, res.Combo)
	assert.Equal(t, "PDOC", firstPayload(t, testutil.SectionAt(res.Data, 0), format.EXTHTypeCDEType))
}

func TestPatchBytes_ResolvesURN(t *testing.T) {
	res, err := PatchBytes(kf8Book(), "urn:mobi-asin:B00URN0001", nil)
	require.NoError(t, err)
	assert.Equal(t, "B00URN0001", firstPayload(t, testutil.SectionAt(res.Data, 0), format.EXTHTypeASIN))
}

func TestPatchBytes_Errors(t *testing.T) {
	_, err := PatchBytes(kf8Book(), "", nil)
	assert.ErrorIs(t, err, ErrEmptyIdentifier)

	notMobi := kf8Book()
	copy(notMobi[format.PDBIdentOffset:], "BOOKMOBX")
	_, err = PatchBytes(notMobi, testASIN, nil)
	assert.ErrorIs(t, err, ErrFormat)

	noTag := kf8Book()
	sec := testutil.SectionAt(noTag, 0)
	copy(sec[format.MOBIHeaderBase+testutil.DefaultHeaderLength:], "XXXX")
	_, err = PatchBytes(noTag, testASIN, nil)
	assert.ErrorIs(t, err, ErrFormat)
}

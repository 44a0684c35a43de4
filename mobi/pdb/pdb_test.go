package pdb

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/mobikit/internal/format"
	"github.com/joshuapare/mobikit/internal/testutil"
)

func threeSections() ([]byte, [][]byte) {
	secs := [][]byte{
		[]byte("first-section"),
		[]byte("second"),
		[]byte("third-and-last"),
	}
	return testutil.BuildContainer("book", secs...), secs
}

func TestLocate(t *testing.T) {
	data, secs := threeSections()
	dirEnd := format.PDBDirectoryOffset + 3*format.PDBEntrySize + 2

	tests := []struct {
		index     int
		wantStart int
		wantEnd   int
	}{
		{0, dirEnd, dirEnd + len(secs[0])},
		{1, dirEnd + len(secs[0]), dirEnd + len(secs[0]) + len(secs[1])},
		{2, dirEnd + len(secs[0]) + len(secs[1]), len(data)},
	}
	for _, tt := range tests {
		start, end, err := Locate(data, tt.index)
		require.NoError(t, err)
		assert.Equal(t, tt.wantStart, start, "start of section %d", tt.index)
		assert.Equal(t, tt.wantEnd, end, "end of section %d", tt.index)
	}
}

func TestLocate_OutOfRange(t *testing.T) {
	data, _ := threeSections()
	for _, idx := range []int{-1, 3, 100} {
		_, _, err := Locate(data, idx)
		assert.ErrorIs(t, err, format.ErrRange, "index %d", idx)
	}
}

func TestLocate_NonMonotonicDirectory(t *testing.T) {
	data, _ := threeSections()
	// Point section 1 past section 2.
	binary.BigEndian.PutUint32(data[format.PDBDirectoryOffset+format.PDBEntrySize:], uint32(len(data)-1))
	_, _, err := Locate(data, 0)
	require.NoError(t, err)
	_, _, err = Locate(data, 1)
	assert.ErrorIs(t, err, format.ErrTruncated)
}

func TestRead(t *testing.T) {
	data, secs := threeSections()
	for i, want := range secs {
		got, err := Read(data, i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestReplace(t *testing.T) {
	data, secs := threeSections()
	orig := bytes.Clone(data)

	out, err := Replace(data, 1, []byte("SECOND"))
	require.NoError(t, err)
	assert.Len(t, out, len(data))
	assert.Equal(t, orig, data, "input must not be modified")

	got, err := Read(out, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("SECOND"), got)

	for _, i := range []int{0, 2} {
		got, err := Read(out, i)
		require.NoError(t, err)
		assert.Equal(t, secs[i], got, "section %d must be untouched", i)
	}
}

func TestReplace_LengthMismatch(t *testing.T) {
	data, _ := threeSections()
	_, err := Replace(data, 1, []byte("too long for it"))
	assert.ErrorIs(t, err, format.ErrLengthMismatch)

	_, err = Replace(data, 2, []byte("x"))
	assert.ErrorIs(t, err, format.ErrLengthMismatch)

	_, err = Replace(data, 3, []byte("second"))
	assert.ErrorIs(t, err, format.ErrRange)
}

func TestContainer(t *testing.T) {
	data, secs := threeSections()
	c, err := New(data)
	require.NoError(t, err)

	assert.Equal(t, 3, c.NumSections())
	assert.Equal(t, len(data), c.Len())
	assert.Equal(t, "book", c.Header().Name)

	require.NoError(t, c.Replace(0, []byte("FIRST-SECTION")))
	sec, err := c.Section(0)
	require.NoError(t, err)
	assert.Equal(t, []byte("FIRST-SECTION"), sec)
	assert.Equal(t, secs[0], testutil.SectionAt(data, 0), "New must copy its input")

	assert.ErrorIs(t, c.Replace(1, []byte("short")), format.ErrLengthMismatch)
	_, err = c.Section(-1)
	assert.ErrorIs(t, err, format.ErrRange)
}

func TestNew_Truncated(t *testing.T) {
	_, err := New([]byte("tiny"))
	assert.ErrorIs(t, err, format.ErrTruncated)
}

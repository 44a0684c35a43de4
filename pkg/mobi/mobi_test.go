package mobi

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/mobikit/internal/format"
	"github.com/joshuapare/mobikit/internal/testutil"
	"github.com/joshuapare/mobikit/mobi/exth"
)

const testASIN = "B00TEST123"

func comboBook() []byte {
	primary := testutil.BuildHeader(testutil.HeaderSpec{
		Version: 6,
		Title:   "Combo Book",
		Records: []testutil.Record{
			{Type: 100, Payload: []byte("Jane Doe")},
			testutil.KF8Ref(2),
		},
	})
	kf8 := testutil.BuildHeader(testutil.HeaderSpec{
		Version:      8,
		HeaderLength: 0x108,
		Title:        "Combo Book",
		Records:      []testutil.Record{{Type: 100, Payload: []byte("Jane Doe")}},
	})
	return testutil.BuildContainer("Combo_Book", primary, []byte("text record"), kf8)
}

func kf8Book() []byte {
	h := testutil.BuildHeader(testutil.HeaderSpec{
		Version: 8,
		Title:   "Standalone",
		Records: []testutil.Record{testutil.KF8Ref(format.KF8BoundaryNone)},
	})
	return testutil.BuildContainer("Standalone", h, []byte("text"))
}

func firstPayload(t *testing.T, sec []byte, typ uint32) string {
	t.Helper()
	got, err := exth.ReadRecords(sec, typ)
	require.NoError(t, err)
	require.NotEmpty(t, got, "no record of type %d", typ)
	return string(got[0])
}

package buf

import "testing"

func TestEndianHelpers(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}

	if got := U16BE(data); got != 0x0123 {
		t.Fatalf("U16BE = 0x%x, want 0x0123", got)
	}
	if got := U32BE(data); got != 0x01234567 {
		t.Fatalf("U32BE = 0x%x, want 0x01234567", got)
	}
	if got := U32BE(data[4:]); got != 0x89abcdef {
		t.Fatalf("U32BE = 0x%x, want 0x89abcdef", got)
	}

	short := []byte{0xAA}
	if U16BE(short) != 0 || U32BE(short) != 0 {
		t.Fatalf("short reads should return 0")
	}
}

func TestAppendU32BE(t *testing.T) {
	got := AppendU32BE([]byte{0xff}, 0x45585448)
	want := []byte{0xff, 'E', 'X', 'T', 'H'}
	if string(got) != string(want) {
		t.Fatalf("AppendU32BE = %x, want %x", got, want)
	}
}

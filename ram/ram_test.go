package ram

import "testing"

func TestStoreLoadWordRoundTrip(t *testing.T) {
	var r RAM

	for _, off := range []uint32{0, 4, 100, Size - 4} {
		want := uint32(0xcafebabe) ^ off
		r.StoreWord(off, want)
		if got := r.LoadWord(off); got != want {
			t.Errorf("LoadWord(%d) = %#08x, want %#08x", off, got, want)
		}
	}
}

func TestStoreLoadHalfRoundTrip(t *testing.T) {
	var r RAM

	r.StoreHalf(10, 0xbeef)
	if got := r.LoadHalf(10); got != 0xbeef {
		t.Errorf("LoadHalf(10) = %#04x, want 0xbeef", got)
	}

	// A 16-bit store must not disturb the neighboring byte.
	r.StoreByte(12, 0x11)
	r.StoreHalf(10, 0x2233)
	if got := r.LoadByte(12); got != 0x11 {
		t.Errorf("StoreHalf disturbed neighboring byte: got %#02x", got)
	}
}

func TestStoreLoadByteRoundTrip(t *testing.T) {
	var r RAM

	r.StoreByte(5, 0x42)
	if got := r.LoadByte(5); got != 0x42 {
		t.Errorf("LoadByte(5) = %#02x, want 0x42", got)
	}
}

func TestZeroInitialized(t *testing.T) {
	var r RAM
	if got := r.LoadWord(0); got != 0 {
		t.Errorf("fresh RAM not zeroed: LoadWord(0) = %#08x", got)
	}
}

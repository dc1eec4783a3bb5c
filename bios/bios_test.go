package bios

import "testing"

func TestNewRejectsWrongSize(t *testing.T) {
	if _, err := New(make([]byte, Size-1)); err == nil {
		t.Errorf("expected error for undersized image")
	}
	if _, err := New(make([]byte, Size+1)); err == nil {
		t.Errorf("expected error for oversized image")
	}
}

func TestLoadWordLittleEndian(t *testing.T) {
	data := make([]byte, Size)
	data[0], data[1], data[2], data[3] = 0x78, 0x56, 0x34, 0x12

	b, err := New(data)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if v := b.LoadWord(0); v != 0x12345678 {
		t.Errorf("LoadWord(0) = %#08x, want 0x12345678", v)
	}
	if v := b.LoadHalf(0); v != 0x5678 {
		t.Errorf("LoadHalf(0) = %#04x, want 0x5678", v)
	}
	if v := b.LoadByte(0); v != 0x78 {
		t.Errorf("LoadByte(0) = %#02x, want 0x78", v)
	}
}

func TestLoadWordComposesBytes(t *testing.T) {
	data := make([]byte, Size)
	for i := range 4 {
		data[100+i] = byte(i + 1)
	}

	b, err := New(data)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	want := uint32(1) | uint32(2)<<8 | uint32(3)<<16 | uint32(4)<<24
	if v := b.LoadWord(100); v != want {
		t.Errorf("LoadWord(100) = %#08x, want %#08x", v, want)
	}
}

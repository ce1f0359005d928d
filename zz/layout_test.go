package zz

import "testing"

func TestExportLoHiLittle(t *testing.T) {
	x := mustI64(t, 0x0102030405060708)
	layout := Layout{BitsPerDigit: 32, DigitSizeBytes: 4, DigitOrder: "lo_hi", ByteEndian: "little"}
	buf := make([]byte, 8)
	n, err := x.Export(layout, buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 8 {
		t.Fatalf("Export wrote %d bytes, want 8", n)
	}
	// low 32-bit digit (0x05060708) first, little-endian within digit
	want := []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("buf[%d] = %02x, want %02x", i, buf[i], want[i])
		}
	}
}

func TestExportHiLoBig(t *testing.T) {
	x := mustI64(t, 0x0102030405060708)
	layout := Layout{BitsPerDigit: 32, DigitSizeBytes: 4, DigitOrder: "hi_lo", ByteEndian: "big"}
	buf := make([]byte, 8)
	if _, err := x.Export(layout, buf); err != nil {
		t.Fatal(err)
	}
	want := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("buf[%d] = %02x, want %02x", i, buf[i], want[i])
		}
	}
}

func TestExportBufferTooSmall(t *testing.T) {
	x := mustI64(t, 1<<40)
	layout := Layout{BitsPerDigit: 8, DigitSizeBytes: 1, DigitOrder: "lo_hi", ByteEndian: "big"}
	buf := make([]byte, 1)
	if _, err := x.Export(layout, buf); err == nil {
		t.Fatal("expected VALUE error for undersized buffer")
	}
}

func TestExportInvalidLayout(t *testing.T) {
	x := mustI64(t, 1)
	bad := Layout{BitsPerDigit: 24, DigitSizeBytes: 3, DigitOrder: "lo_hi", ByteEndian: "big"}
	if _, err := x.Export(bad, make([]byte, 8)); err == nil {
		t.Fatal("expected VALUE error for unsupported bits-per-digit")
	}
}

package zz

import "testing"

func TestToBytesFromBytesUnsignedRoundTrip(t *testing.T) {
	for _, endian := range []string{"big", "little"} {
		x := mustI64(t, 0x0102030405)
		buf, err := x.ToBytes(8, endian, false)
		if err != nil {
			t.Fatal(err)
		}
		y, err := new(Int).FromBytes(buf, endian, false)
		if err != nil {
			t.Fatal(err)
		}
		if y.Cmp(x) != 0 {
			t.Errorf("unsigned round trip (%s): got %s, want %s", endian, y, x)
		}
	}
}

func TestToBytesFromBytesSignedRoundTrip(t *testing.T) {
	for _, endian := range []string{"big", "little"} {
		for _, v := range []int64{0, 1, -1, 127, -128, 12345, -12345} {
			x := mustI64(t, v)
			buf, err := x.ToBytes(8, endian, true)
			if err != nil {
				t.Fatalf("ToBytes(%d,%s): %v", v, endian, err)
			}
			y, err := new(Int).FromBytes(buf, endian, true)
			if err != nil {
				t.Fatalf("FromBytes(%d,%s): %v", v, endian, err)
			}
			if y.Cmp(x) != 0 {
				t.Errorf("signed round trip (%d,%s): got %s, want %d", v, endian, y, v)
			}
		}
	}
}

func TestToBytesKnownEncoding(t *testing.T) {
	x := mustI64(t, -1)
	buf, err := x.ToBytes(2, "big", true)
	if err != nil {
		t.Fatal(err)
	}
	if buf[0] != 0xFF || buf[1] != 0xFF {
		t.Errorf("ToBytes(-1, 2 bytes) = %x, want ffff", buf)
	}
}

func TestToBytesUnsignedRejectsNegative(t *testing.T) {
	if _, err := mustI64(t, -1).ToBytes(4, "big", false); err == nil {
		t.Fatal("expected BUFFER error for negative value in unsigned mode")
	} else if StatusOf(err) != BUF {
		t.Errorf("status = %v, want BUF", StatusOf(err))
	}
}

func TestToBytesOverflow(t *testing.T) {
	if _, err := mustI64(t, 256).ToBytes(1, "big", false); err == nil {
		t.Fatal("expected BUFFER error for value overflowing 1 byte unsigned")
	} else if StatusOf(err) != BUF {
		t.Errorf("status = %v, want BUF", StatusOf(err))
	}
	if _, err := mustI64(t, 128).ToBytes(1, "big", true); err == nil {
		t.Fatal("expected BUFFER error for value overflowing 1 byte signed")
	}
	if _, err := mustI64(t, -129).ToBytes(1, "big", true); err == nil {
		t.Fatal("expected BUFFER error for value underflowing 1 byte signed")
	}
}

func TestToBytesZeroLengthSigned(t *testing.T) {
	if _, err := mustI64(t, 0).ToBytes(0, "big", true); err != nil {
		t.Errorf("ToBytes(0, 0 bytes, signed): %v", err)
	}
	if _, err := mustI64(t, -1).ToBytes(0, "big", true); err != nil {
		t.Errorf("ToBytes(-1, 0 bytes, signed): %v", err)
	}
	if _, err := mustI64(t, 1).ToBytes(0, "big", true); err == nil {
		t.Fatal("expected BUFFER error for 1 in a zero-byte signed encoding")
	}
}

func TestToBytesInvalidEndian(t *testing.T) {
	if _, err := mustI64(t, 1).ToBytes(4, "middle", false); err == nil {
		t.Fatal("expected VALUE error for unknown endianness token")
	}
}

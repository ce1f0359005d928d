package main

import (
	"testing"

	"github.com/go-zz/zz"
)

func mustFromI64(t *testing.T, v int64) digits {
	t.Helper()
	z, err := new(zz.Int).FromI64(v)
	if err != nil {
		t.Fatal(err)
	}
	return fromInt(z)
}

func TestCmpI32(t *testing.T) {
	u := mustFromI64(t, 13)
	if got, err := cmpI32(u, 1); err != nil || got != 1 {
		t.Errorf("cmpI32(13,1) = (%d,%v), want (1,nil)", got, err)
	}
	if got, err := cmpI32(u, 100); err != nil || got != -1 {
		t.Errorf("cmpI32(13,100) = (%d,%v), want (-1,nil)", got, err)
	}
}

func TestAddI32(t *testing.T) {
	u := mustFromI64(t, 0)
	sum, err := addI32(u, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := cmpI32(sum, 2); got != 0 {
		t.Errorf("0+2 != 2 (cmp %d)", got)
	}
}

func TestLsbpos(t *testing.T) {
	zero := mustFromI64(t, 0)
	if got, err := lsbpos(zero, 0); err != nil || got != 0 {
		t.Errorf("lsbpos(0,0) = (%d,%v), want (0,nil)", got, err)
	}
	twelve := mustFromI64(t, 12) // 0b1100
	if got, err := lsbpos(twelve, 0); err != nil || got != 2 {
		t.Errorf("lsbpos(12,0) = (%d,%v), want (2,nil)", got, err)
	}
}

func TestMulDigits(t *testing.T) {
	a, b := mustFromI64(t, 2), mustFromI64(t, 3)
	prod, err := mulDigits(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := cmpI32(prod, 6); got != 0 {
		t.Errorf("2*3 != 6 (cmp %d)", got)
	}
}

func TestDivDigitsFloor(t *testing.T) {
	a, b := mustFromI64(t, 4), mustFromI64(t, 2)
	q, _, err := divDigits(a, b, zzRNDD)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := cmpI32(q, 2); got != 0 {
		t.Errorf("4/2 != 2 (cmp %d)", got)
	}
	if _, _, err := divDigits(a, b, 123); err == nil {
		t.Fatal("expected VALUE error for unknown rounding mode")
	} else if zz.StatusOf(err) != zz.VAL {
		t.Errorf("status = %v, want VAL", zz.StatusOf(err))
	}
}

func TestRemU64(t *testing.T) {
	a := mustFromI64(t, 123)
	if _, err := remU64(a, 0); err == nil {
		t.Fatal("expected VALUE error for remainder by zero")
	}

	a = mustFromI64(t, 111)
	if got, err := remU64(a, 12); err != nil || got != 3 {
		t.Errorf("111 rem 12 = (%d,%v), want (3,nil)", got, err)
	}

	a = mustFromI64(t, -111)
	if got, err := remU64(a, 12); err != nil || got != 9 {
		t.Errorf("-111 rem 12 = (%d,%v), want (9,nil)", got, err)
	}
}

func TestPowDigits(t *testing.T) {
	base := mustFromI64(t, 2)
	got, err := powDigits(base, 2)
	if err != nil {
		t.Fatal(err)
	}
	if cmp, _ := cmpI32(got, 4); cmp != 0 {
		t.Errorf("2**2 != 4 (cmp %d)", cmp)
	}
}

func TestSqrtremDigits(t *testing.T) {
	x := mustFromI64(t, 4)
	s, r, err := sqrtremDigits(x)
	if err != nil {
		t.Fatal(err)
	}
	if cmp, _ := cmpI32(s, 2); cmp != 0 {
		t.Errorf("sqrt(4) != 2 (cmp %d)", cmp)
	}
	if cmp, _ := cmpI32(r, 0); cmp != 0 {
		t.Errorf("sqrtrem(4) remainder != 0 (cmp %d)", cmp)
	}
}

func TestPowmDigits(t *testing.T) {
	base, exp, mod := mustFromI64(t, 12), mustFromI64(t, 4), mustFromI64(t, 7)
	got, err := powmDigits(base, exp, mod)
	if err != nil {
		t.Fatal(err)
	}
	if cmp, _ := cmpI32(got, 2); cmp != 0 {
		t.Errorf("12**4 mod 7 != 2 (cmp %d)", cmp)
	}
}

func TestExportDigits(t *testing.T) {
	x := mustFromI64(t, 0x0102030405060708)
	layout := zz.Layout{BitsPerDigit: 8, DigitSizeBytes: 1, DigitOrder: "hi_lo", ByteEndian: "big"}
	buf := make([]byte, 8)
	n, err := exportDigits(x, layout, buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 8 {
		t.Fatalf("exportDigits wrote %d bytes, want 8", n)
	}
	want := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("buf[%d] = %02x, want %02x", i, buf[i], want[i])
		}
	}
}

func TestExportDigitsBufferTooSmall(t *testing.T) {
	x := mustFromI64(t, 123)
	layout := zz.Layout{BitsPerDigit: 8, DigitSizeBytes: 1, DigitOrder: "lo_hi", ByteEndian: "little"}
	if _, err := exportDigits(x, layout, nil); err == nil {
		t.Fatal("expected VALUE error exporting into a zero-length buffer")
	}
}

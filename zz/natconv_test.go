package zz

import "testing"

func TestNatStringRoundTrip(t *testing.T) {
	bases := []int{2, 8, 10, 16, 36}
	for _, base := range bases {
		x := natFromUint64(t, 987654321)
		s := x.string(base)
		y, err := nat(nil).setString("test", s, base)
		if err != nil {
			t.Fatalf("base %d: %v", base, err)
		}
		if y.cmp(x) != 0 {
			t.Errorf("base %d round trip: got %v, want %v", base, y, x)
		}
	}
}

func TestNatSetStringPrefixesAndSeparators(t *testing.T) {
	cases := []struct {
		s    string
		base int
		want uint64
	}{
		{"0x1A", 0, 0x1A},
		{"0o17", 0, 0o17},
		{"0b101", 0, 0b101},
		{"1_000_000", 0, 1000000},
		{"ff", 16, 255},
	}
	for _, c := range cases {
		got, err := nat(nil).setString("test", c.s, c.base)
		if err != nil {
			t.Fatalf("setString(%q, %d): %v", c.s, c.base, err)
		}
		if got.cmp(natFromUint64(t, c.want)) != 0 {
			t.Errorf("setString(%q, %d) = %v, want %d", c.s, c.base, got, c.want)
		}
	}
}

func TestNatSetStringInvalidDigit(t *testing.T) {
	if _, err := nat(nil).setString("test", "12z9", 10); err == nil {
		t.Fatal("expected invalid-digit error")
	}
}

func TestNatStringLargeValueDoesNotPanic(t *testing.T) {
	// 2^40 needs 13 decimal digits; the buffer sizing must not
	// under-count for non-power-of-two bases. See also
	// TestFactorial100 for a much larger (158-digit) case.
	x, err := nat(nil).shl("test", natOne, 40)
	if err != nil {
		t.Fatal(err)
	}
	s := x.string(10)
	if s != "1099511627776" {
		t.Fatalf("string(2^40) = %q, want 1099511627776", s)
	}
}

func TestNatSetStringUnicodeDigits(t *testing.T) {
	got, err := nat(nil).setString("test", "١٢٣", 10)
	if err != nil {
		t.Fatalf("setString(Arabic-Indic digits): %v", err)
	}
	if got.cmp(natFromUint64(t, 123)) != 0 {
		t.Errorf("setString(Arabic-Indic digits) = %v, want 123", got)
	}
}

func TestNatSetStringWhitespace(t *testing.T) {
	got, err := nat(nil).setString("test", "  123  ", 10)
	if err != nil {
		t.Fatalf("setString with surrounding whitespace: %v", err)
	}
	if got.cmp(natFromUint64(t, 123)) != 0 {
		t.Errorf("got %v, want 123", got)
	}
}

func TestNatSetStringUnderscoreValidation(t *testing.T) {
	bad := []string{"_1", "1__2", "1_", "0x_1"}
	for _, s := range bad {
		if _, err := nat(nil).setString("test", s, 0); err == nil {
			t.Errorf("setString(%q) should reject malformed underscore placement", s)
		}
	}
	got, err := nat(nil).setString("test", "0x1_a", 0)
	if err != nil {
		t.Fatalf("setString(%q): %v", "0x1_a", err)
	}
	if got.cmp(natFromUint64(t, 0x1a)) != 0 {
		t.Errorf("setString(0x1_a) = %v, want 0x1a", got)
	}
}

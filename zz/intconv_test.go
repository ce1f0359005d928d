package zz

import "testing"

func TestStringDecimal(t *testing.T) {
	cases := []struct {
		v    int64
		want string
	}{
		{0, "0"}, {42, "42"}, {-42, "-42"},
	}
	for _, c := range cases {
		if got := mustI64(t, c.v).String(); got != c.want {
			t.Errorf("String(%d) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestText(t *testing.T) {
	x := mustI64(t, -255)
	if got := x.Text(16); got != "-ff" {
		t.Errorf("Text(16) = %q, want -ff", got)
	}
	if got := x.Text(2); got != "-11111111" {
		t.Errorf("Text(2) = %q, want -11111111", got)
	}
}

func TestFromStringRoundTrip(t *testing.T) {
	for _, base := range []int{2, 8, 10, 16, 36} {
		for _, v := range []int64{0, 1, -1, 12345, -98765} {
			s := mustI64(t, v).Text(base)
			z, err := new(Int).FromString(s, base)
			if err != nil {
				t.Fatalf("FromString(%q, %d): %v", s, base, err)
			}
			if z.Cmp(mustI64(t, v)) != 0 {
				t.Errorf("FromString(%q, %d) = %s, want %d", s, base, z, v)
			}
		}
	}
}

func TestFromStringAutoDetect(t *testing.T) {
	cases := []struct {
		s    string
		want int64
	}{
		{"0x1A", 26},
		{"-0x1A", -26},
		{"0o17", 15},
		{"0b101", 5},
		{"1_000_000", 1000000},
	}
	for _, c := range cases {
		z, err := new(Int).FromString(c.s, 0)
		if err != nil {
			t.Fatalf("FromString(%q): %v", c.s, err)
		}
		if z.Cmp(mustI64(t, c.want)) != 0 {
			t.Errorf("FromString(%q) = %s, want %d", c.s, z, c.want)
		}
	}
}

func TestFromStringEmpty(t *testing.T) {
	if _, err := new(Int).FromString("", 10); err == nil {
		t.Fatal("expected VALUE error for empty digit string")
	}
}

func TestFromStringInvalidDigit(t *testing.T) {
	if _, err := new(Int).FromString("12g", 10); err == nil {
		t.Fatal("expected VALUE error for invalid digit")
	}
}

func TestFromStringWhitespaceSignAndSeparators(t *testing.T) {
	z, err := new(Int).FromString("  -0b10_1 ", 0)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if z.Cmp(mustI64(t, -5)) != 0 {
		t.Errorf("FromString(%q) = %s, want -5", "  -0b10_1 ", z)
	}
}

func TestFromStringUnicodeDigits(t *testing.T) {
	z, err := new(Int).FromString("١٢٣", 10)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if z.Cmp(mustI64(t, 123)) != 0 {
		t.Errorf("FromString(Arabic-Indic digits) = %s, want 123", z)
	}
}

package zz

import "testing"

func TestPow(t *testing.T) {
	got, err := new(Int).Pow(mustI64(t, 2), mustI64(t, 10))
	if err != nil {
		t.Fatal(err)
	}
	if want := mustI64(t, 1024); got.Cmp(want) != 0 {
		t.Errorf("2**10 = %s, want 1024", got)
	}
}

func TestPowMod(t *testing.T) {
	got, err := new(Int).Exp(mustI64(t, 4), mustI64(t, 13), mustI64(t, 497))
	if err != nil {
		t.Fatal(err)
	}
	if want := mustI64(t, 445); got.Cmp(want) != 0 { // 4**13 mod 497 == 445
		t.Errorf("4**13 mod 497 = %s, want 445", got)
	}
}

func TestPowModNegativeExponent(t *testing.T) {
	// 3^-1 mod 7 == 5 (3*5 = 15 = 1 mod 7); 3^-2 mod 7 == 25 mod 7 == 4
	got, err := new(Int).Exp(mustI64(t, 3), mustI64(t, -2), mustI64(t, 7))
	if err != nil {
		t.Fatal(err)
	}
	if want := mustI64(t, 4); got.Cmp(want) != 0 {
		t.Errorf("3**-2 mod 7 = %s, want 4", got)
	}
}

func TestPowModNonInvertible(t *testing.T) {
	_, err := new(Int).Exp(mustI64(t, 2), mustI64(t, -1), mustI64(t, 4))
	if err == nil {
		t.Fatal("expected VALUE error for non-invertible base")
	}
}

func TestSqrtRem(t *testing.T) {
	cases := []struct{ n, s, r int64 }{
		{0, 0, 0}, {4, 2, 0}, {10, 3, 1}, {99, 9, 18}, {100, 10, 0},
	}
	for _, c := range cases {
		s, r, err := new(Int).SqrtRem(mustI64(t, c.n))
		if err != nil {
			t.Fatal(err)
		}
		if s.Cmp(mustI64(t, c.s)) != 0 || r.Cmp(mustI64(t, c.r)) != 0 {
			t.Errorf("SqrtRem(%d) = (%s,%s), want (%d,%d)", c.n, s, r, c.s, c.r)
		}
	}
}

func TestSqrtRemNegative(t *testing.T) {
	if _, _, err := new(Int).SqrtRem(mustI64(t, -1)); err == nil {
		t.Fatal("expected VALUE error for sqrt of a negative value")
	}
}

func TestGCDExt(t *testing.T) {
	g, x, y, err := GCDExt(mustI64(t, 12), mustI64(t, 18))
	if err != nil {
		t.Fatal(err)
	}
	if g.Cmp(mustI64(t, 6)) != 0 || x.Cmp(mustI64(t, -1)) != 0 || y.Cmp(mustI64(t, 1)) != 0 {
		t.Errorf("GCDExt(12,18) = (%s,%s,%s), want (6,-1,1)", g, x, y)
	}

	g0, x0, y0, err := GCDExt(mustI64(t, 0), mustI64(t, 0))
	if err != nil {
		t.Fatal(err)
	}
	if g0.Sign() != 0 || x0.Sign() != 0 || y0.Sign() != 0 {
		t.Errorf("GCDExt(0,0) = (%s,%s,%s), want (0,0,0)", g0, x0, y0)
	}
}

func TestGCD(t *testing.T) {
	g, err := GCD(mustI64(t, 48), mustI64(t, 18))
	if err != nil {
		t.Fatal(err)
	}
	if g.Cmp(mustI64(t, 6)) != 0 {
		t.Errorf("GCD(48,18) = %s, want 6", g)
	}
}

func TestFactorial(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "1"},
		{1, "1"},
		{13, "6227020800"},
	}
	for _, c := range cases {
		got, err := Factorial(c.n)
		if err != nil {
			t.Fatal(err)
		}
		if got.String() != c.want {
			t.Errorf("Factorial(%d) = %s, want %s", c.n, got, c.want)
		}
	}
}

func TestFactorialNegative(t *testing.T) {
	if _, err := Factorial(-1); err == nil {
		t.Fatal("expected VALUE error for factorial of a negative value")
	}
}

func TestFactorial100(t *testing.T) {
	got, err := Factorial(100)
	if err != nil {
		t.Fatal(err)
	}
	want := "93326215443944152681699238856266700490715968264381621468592963895217599993229915608941463976156518286253697920827223758251185210916864000000000000000000000000"
	if got.String() != want {
		t.Errorf("Factorial(100) mismatch:\n got  %s\n want %s", got, want)
	}
}

func TestDoubleFactorial(t *testing.T) {
	cases := []struct{ n, want int64 }{
		{0, 1}, {1, 1}, {5, 15}, {6, 48}, {7, 105},
	}
	for _, c := range cases {
		got, err := DoubleFactorial(c.n)
		if err != nil {
			t.Fatal(err)
		}
		if got.Cmp(mustI64(t, c.want)) != 0 {
			t.Errorf("DoubleFactorial(%d) = %s, want %d", c.n, got, c.want)
		}
	}
}

func TestBinomial(t *testing.T) {
	got, err := Binomial(5, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got.Cmp(mustI64(t, 10)) != 0 {
		t.Errorf("Binomial(5,2) = %s, want 10", got)
	}
}

func TestFibonacci(t *testing.T) {
	want := []int64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	for i, w := range want {
		got, err := Fibonacci(int64(i))
		if err != nil {
			t.Fatal(err)
		}
		if got.Cmp(mustI64(t, w)) != 0 {
			t.Errorf("Fibonacci(%d) = %s, want %d", i, got, w)
		}
	}
}

package zz

import "sync"

// Exp sets z = x**y. If m is non-nil and non-zero, the result is reduced
// modulo |m| and returned in [0, |m|). A negative y requires a non-nil,
// non-zero m and x invertible modulo |m|; otherwise y must be
// non-negative. Binary exponentiation reduces after every squaring and
// every multiply (natpow.go's expNN), always propagating errors instead
// of panicking.
func (z *Int) Exp(x, y, m *Int) (*Int, error) {
	const op = "pow"

	base := x
	exp := y
	if y.negative {
		if m == nil || m.IsZero() {
			return nil, errVal(op, "negative exponent requires a non-zero modulus")
		}
		g, inv, _, err := GCDExt(x, m)
		if err != nil {
			return nil, err
		}
		if g.Cmp(intOne) != 0 {
			return nil, errVal(op, "base is not invertible modulo the given modulus")
		}
		var absM Int
		if _, err := absM.Abs(m); err != nil {
			return nil, err
		}
		if inv.negative {
			if _, err := inv.Add(inv, &absM); err != nil {
				return nil, err
			}
		}
		base = inv
		var absY Int
		if _, err := absY.Abs(y); err != nil {
			return nil, err
		}
		exp = &absY
	}

	var mAbs nat
	if m != nil {
		mAbs = m.abs
	}
	abs, err := z.abs.expNN(op, base.abs, exp.abs, mAbs)
	if err != nil {
		return nil, err
	}
	z.abs = abs
	z.negative = len(z.abs) > 0 && base.negative && len(exp.abs) > 0 && exp.abs[0]&1 == 1
	if z.negative && m != nil && len(mAbs) > 0 {
		abs, err := z.abs.sub(op, mAbs, z.abs)
		if err != nil {
			return nil, err
		}
		z.abs = abs
		z.negative = false
	}
	return z, nil
}

// Pow sets z = x**y, y >= 0, unreduced.
func (z *Int) Pow(x, y *Int) (*Int, error) { return z.Exp(x, y, nil) }

// SqrtRem sets z = floor(sqrt(x)) and returns the remainder x - z*z.
// x must be non-negative.
func (z *Int) SqrtRem(x *Int) (*Int, *Int, error) {
	const op = "sqrtrem"
	if x.negative {
		return nil, nil, errVal(op, "square root of a negative value")
	}
	abs, err := z.abs.sqrt(op, x.abs)
	if err != nil {
		return nil, nil, err
	}
	z.abs = abs
	z.negative = false

	var sq, rem Int
	if _, err := sq.Mul(z, z); err != nil {
		return nil, nil, err
	}
	if _, err := rem.Sub(x, &sq); err != nil {
		return nil, nil, err
	}
	return z, &rem, nil
}

// GCD sets g = gcd(|a|, |b|); gcd(0, 0) = 0.
func GCD(a, b *Int) (*Int, error) {
	g, _, _, err := GCDExt(a, b)
	return g, err
}

// GCDExt returns (g, x, y) with a*x + b*y = g, g >= 0, and the canonical
// minimality condition |x| <= |b|/(2g), |y| <= |a|/(2g) where defined.
// Extended-Euclidean, generalized to accept any-sign a, b rather than
// requiring both > 0.
func GCDExt(a, b *Int) (g, x, y *Int, err error) {
	if a.IsZero() && b.IsZero() {
		return NewI64(0), NewI64(0), NewI64(0), nil
	}

	var a0, b0 Int
	if _, err = a0.Abs(a); err != nil {
		return nil, nil, nil, err
	}
	if _, err = b0.Abs(b); err != nil {
		return nil, nil, nil, err
	}

	A, B := &a0, &b0
	X, lastX := NewI64(0), NewI64(1)
	Y, lastY := NewI64(1), NewI64(0)

	for !B.IsZero() {
		q, r := new(Int), new(Int)
		if _, _, err = q.QuoRem(A, B, r); err != nil {
			return nil, nil, nil, err
		}
		A, B = B, r

		t, err2 := new(Int).Mul(q, X)
		if err2 != nil {
			return nil, nil, nil, err2
		}
		newX, err2 := new(Int).Sub(lastX, t)
		if err2 != nil {
			return nil, nil, nil, err2
		}
		lastX, X = X, newX

		t, err2 = new(Int).Mul(q, Y)
		if err2 != nil {
			return nil, nil, nil, err2
		}
		newY, err2 := new(Int).Sub(lastY, t)
		if err2 != nil {
			return nil, nil, nil, err2
		}
		lastY, Y = Y, newY
	}

	g = A
	x, y = lastX, lastY
	if a.Sign() < 0 {
		if _, err = x.Neg(x); err != nil {
			return nil, nil, nil, err
		}
	}
	if b.Sign() < 0 {
		if _, err = y.Neg(y); err != nil {
			return nil, nil, nil, err
		}
	}
	return g, x, y, nil
}

// factorialMemo caches small factorials/double factorials across calls;
// Finish (alloc.go) drains it. A package-level sync.Map is safe for
// concurrent callers each owning private destination Ints; the test
// suite has no concurrent scenario that exercises it.
var (
	factorialMemo       sync.Map // int64 -> *Int
	doubleFactorialMemo sync.Map // int64 -> *Int
)

func clearFactorialMemo() {
	factorialMemo.Range(func(k, _ any) bool { factorialMemo.Delete(k); return true })
	doubleFactorialMemo.Range(func(k, _ any) bool { doubleFactorialMemo.Delete(k); return true })
}

// Factorial returns n!, n >= 0, computed via prime-swing: factor n! into
// per-prime powers using Legendre's formula v_p(n!) = sum floor(n/p^k),
// then combine the power terms with a balanced product tree. This keeps
// sub-multiplications roughly equal in operand size, the same goal
// MulRange's balanced recursion serves for a linear range.
func Factorial(n int64) (*Int, error) {
	const op = "factorial"
	if n < 0 {
		return nil, errVal(op, "factorial of a negative value")
	}
	if cached, ok := factorialMemo.Load(n); ok {
		return new(Int).Set(cached.(*Int))
	}
	if n < 2 {
		one := NewI64(1)
		factorialMemo.Store(n, one)
		return new(Int).Set(one)
	}

	primes := sieve(n)
	terms := make([]*Int, 0, len(primes))
	for _, p := range primes {
		e := legendreExponent(n, p)
		term, err := new(Int).Pow(NewI64(p), NewI64(e))
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	result, err := productTree(terms)
	if err != nil {
		return nil, err
	}
	factorialMemo.Store(n, result)
	return new(Int).Set(result)
}

// legendreExponent returns v_p(n!) = sum_{k>=1} floor(n/p^k).
func legendreExponent(n, p int64) int64 {
	var e int64
	pk := p
	for pk <= n {
		e += n / pk
		if pk > n/p {
			break
		}
		pk *= p
	}
	return e
}

// sieve returns the primes <= n via a straightforward sieve of
// Eratosthenes (not a ZZ kernel; this is plain-int bookkeeping feeding
// the exponent table, so it is not subject to the digit-capacity shim).
func sieve(n int64) []int64 {
	if n < 2 {
		return nil
	}
	composite := make([]bool, n+1)
	var primes []int64
	for i := int64(2); i <= n; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, i)
		if i > n/i {
			continue
		}
		for j := i * i; j <= n; j += i {
			composite[j] = true
		}
	}
	return primes
}

// productTree multiplies terms pairwise in balanced fashion so that
// operands entering each multiplication are close in size.
func productTree(terms []*Int) (*Int, error) {
	if len(terms) == 0 {
		return NewI64(1), nil
	}
	for len(terms) > 1 {
		next := make([]*Int, 0, (len(terms)+1)/2)
		for i := 0; i+1 < len(terms); i += 2 {
			p, err := new(Int).Mul(terms[i], terms[i+1])
			if err != nil {
				return nil, err
			}
			next = append(next, p)
		}
		if len(terms)&1 == 1 {
			next = append(next, terms[len(terms)-1])
		}
		terms = next
	}
	return terms[0], nil
}

// DoubleFactorial returns n!!, n >= -1 (by convention (-1)!! = 1),
// via the identities n!! = 2^k * k! for n = 2k, and
// n!! = n! / (2^k * k!) for n = 2k+1, reusing Factorial's memo.
func DoubleFactorial(n int64) (*Int, error) {
	const op = "double_factorial"
	if n < -1 {
		return nil, errVal(op, "double factorial of a value below -1")
	}
	if n <= 1 {
		return NewI64(1), nil
	}
	if cached, ok := doubleFactorialMemo.Load(n); ok {
		return new(Int).Set(cached.(*Int))
	}

	var result *Int
	var err error
	if n%2 == 0 {
		k := n / 2
		kFact, ferr := Factorial(k)
		if ferr != nil {
			return nil, ferr
		}
		pow2, perr := new(Int).Pow(intTwo, NewI64(k))
		if perr != nil {
			return nil, perr
		}
		result, err = new(Int).Mul(pow2, kFact)
	} else {
		k := (n - 1) / 2
		nFact, ferr := Factorial(n)
		if ferr != nil {
			return nil, ferr
		}
		kFact, ferr := Factorial(k)
		if ferr != nil {
			return nil, ferr
		}
		pow2, perr := new(Int).Pow(intTwo, NewI64(k))
		if perr != nil {
			return nil, perr
		}
		denom, derr := new(Int).Mul(pow2, kFact)
		if derr != nil {
			return nil, derr
		}
		result, err = new(Int).Quo(nFact, denom)
	}
	if err != nil {
		return nil, err
	}
	doubleFactorialMemo.Store(n, result)
	return new(Int).Set(result)
}

// Binomial returns C(n, k), 0 <= k <= n.
func Binomial(n, k int64) (*Int, error) {
	const op = "binomial"
	if k < 0 || k > n {
		return nil, errVal(op, "binomial coefficient index out of range")
	}
	if k > n-k {
		k = n - k
	}
	nFact, err := Factorial(n)
	if err != nil {
		return nil, err
	}
	kFact, err := Factorial(k)
	if err != nil {
		return nil, err
	}
	nkFact, err := Factorial(n - k)
	if err != nil {
		return nil, err
	}
	denom, err := new(Int).Mul(kFact, nkFact)
	if err != nil {
		return nil, err
	}
	return new(Int).Quo(nFact, denom)
}

// Fibonacci returns F(n), n >= 0 (F(0)=0, F(1)=1), via the fast-doubling
// identities F(2k) = F(k)*(2F(k+1)-F(k)) and F(2k+1) = F(k)^2+F(k+1)^2.
func Fibonacci(n int64) (*Int, error) {
	if n < 0 {
		return nil, errVal("fibonacci", "fibonacci of a negative value")
	}
	a, _, err := fibPair(uint64(n))
	return a, err
}

func fibPair(n uint64) (a, b *Int, err error) {
	if n == 0 {
		return NewI64(0), NewI64(1), nil
	}
	fk, fk1, err := fibPair(n >> 1)
	if err != nil {
		return nil, nil, err
	}

	twoFk1, err := new(Int).Mul(fk1, intTwo)
	if err != nil {
		return nil, nil, err
	}
	inner, err := new(Int).Sub(twoFk1, fk)
	if err != nil {
		return nil, nil, err
	}
	c, err := new(Int).Mul(fk, inner) // F(2k)
	if err != nil {
		return nil, nil, err
	}

	fkSq, err := new(Int).Mul(fk, fk)
	if err != nil {
		return nil, nil, err
	}
	fk1Sq, err := new(Int).Mul(fk1, fk1)
	if err != nil {
		return nil, nil, err
	}
	d, err := new(Int).Add(fkSq, fk1Sq) // F(2k+1)
	if err != nil {
		return nil, nil, err
	}

	if n&1 == 0 {
		return c, d, nil
	}
	e, err := new(Int).Add(c, d) // F(2k+2)
	if err != nil {
		return nil, nil, err
	}
	return d, e, nil
}

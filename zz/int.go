package zz

// Int is a signed arbitrary-precision integer: a ZZ value. The zero
// value of Int represents 0 and is ready to use.
type Int struct {
	negative bool
	abs      nat
}

// Sign returns -1, 0, or +1 as x is negative, zero, or positive.
func (x *Int) Sign() int {
	if len(x.abs) == 0 {
		return 0
	}
	if x.negative {
		return -1
	}
	return 1
}

// IsZero reports whether x is the value 0.
func (x *Int) IsZero() bool { return len(x.abs) == 0 }

// FromI64 sets z to x and returns z.
func (z *Int) FromI64(x int64) (*Int, error) {
	neg := false
	u := uint64(x)
	if x < 0 {
		neg = true
		u = uint64(-x)
	}
	abs, err := z.abs.setUint64("from_i64", u)
	if err != nil {
		return nil, err
	}
	z.abs = abs
	z.negative = neg
	return z, nil
}

// FromU64 sets z to x (always non-negative) and returns z.
func (z *Int) FromU64(x uint64) (*Int, error) {
	abs, err := z.abs.setUint64("from_u64", x)
	if err != nil {
		return nil, err
	}
	z.abs = abs
	z.negative = false
	return z, nil
}

// NewI64 allocates and returns a new Int set to x.
func NewI64(x int64) *Int {
	z, err := new(Int).FromI64(x)
	if err != nil {
		// only possible failure is a configured digit cap below 1 word,
		// which a caller constructing literals has no way to hit in
		// practice; surface it the same way make([]T, n) would.
		panic(err)
	}
	return z
}

// Set sets z to x and returns z.
func (z *Int) Set(x *Int) (*Int, error) {
	if z == x {
		return z, nil
	}
	abs, err := z.abs.set("set", x.abs)
	if err != nil {
		return nil, err
	}
	z.abs = abs
	z.negative = x.negative
	return z, nil
}

// Bits returns the absolute value of x as a little-endian Word slice
// sharing storage with x; intended for low-level interop (cabi), not for
// general use.
func (x *Int) Bits() []Word { return x.abs }

// SetWords sets z's absolute value to a copy of words (little-endian,
// word 0 least significant) with the given sign, normalizing away any
// trailing zero words. Intended for low-level interop (cabi), not for
// general use.
func (z *Int) SetWords(neg bool, words []Word) (*Int, error) {
	abs, err := z.abs.set("set_words", nat(words))
	if err != nil {
		return nil, err
	}
	abs = abs.norm()
	z.abs = abs
	z.negative = neg && len(abs) > 0
	return z, nil
}

// Abs sets z = |x| and returns z.
func (z *Int) Abs(x *Int) (*Int, error) {
	if _, err := z.Set(x); err != nil {
		return nil, err
	}
	z.negative = false
	return z, nil
}

// Neg sets z = -x and returns z.
func (z *Int) Neg(x *Int) (*Int, error) {
	if _, err := z.Set(x); err != nil {
		return nil, err
	}
	z.negative = len(z.abs) > 0 && !z.negative
	return z, nil
}

// Add sets z = x+y and returns z.
func (z *Int) Add(x, y *Int) (*Int, error) {
	const op = "add"
	neg := x.negative
	var abs nat
	var err error
	if x.negative == y.negative {
		abs, err = z.abs.add(op, x.abs, y.abs)
	} else if x.abs.cmp(y.abs) >= 0 {
		abs, err = z.abs.sub(op, x.abs, y.abs)
	} else {
		neg = !neg
		abs, err = z.abs.sub(op, y.abs, x.abs)
	}
	if err != nil {
		return nil, err
	}
	z.abs = abs
	z.negative = len(abs) > 0 && neg
	return z, nil
}

// Sub sets z = x-y and returns z.
func (z *Int) Sub(x, y *Int) (*Int, error) {
	const op = "sub"
	neg := x.negative
	var abs nat
	var err error
	if x.negative != y.negative {
		abs, err = z.abs.add(op, x.abs, y.abs)
	} else if x.abs.cmp(y.abs) >= 0 {
		abs, err = z.abs.sub(op, x.abs, y.abs)
	} else {
		neg = !neg
		abs, err = z.abs.sub(op, y.abs, x.abs)
	}
	if err != nil {
		return nil, err
	}
	z.abs = abs
	z.negative = len(abs) > 0 && neg
	return z, nil
}

// Mul sets z = x*y and returns z.
func (z *Int) Mul(x, y *Int) (*Int, error) {
	abs, err := z.abs.mul("mul", x.abs, y.abs)
	if err != nil {
		return nil, err
	}
	z.abs = abs
	z.negative = len(abs) > 0 && x.negative != y.negative
	return z, nil
}

// MulRange sets z to the product of all integers in [a, b] and returns
// z. An empty range (a > b) yields 1.
func (z *Int) MulRange(a, b int64) (*Int, error) {
	switch {
	case a > b:
		return z.FromI64(1)
	case a <= 0 && b >= 0:
		return z.FromI64(0)
	}
	neg := false
	if a < 0 {
		neg = (b-a)&1 == 0
		a, b = -b, -a
	}
	abs, err := z.abs.mulRange("mul_range", uint64(a), uint64(b))
	if err != nil {
		return nil, err
	}
	z.abs = abs
	z.negative = neg
	return z, nil
}

// Cmp compares x and y: -1, 0, +1.
func (x *Int) Cmp(y *Int) int {
	switch {
	case x.negative == y.negative:
		r := x.abs.cmp(y.abs)
		if x.negative {
			r = -r
		}
		return r
	case x.negative:
		return -1
	default:
		return 1
	}
}

// CmpAbs compares |x| and |y|: -1, 0, +1.
func (x *Int) CmpAbs(y *Int) int { return x.abs.cmp(y.abs) }

// I64 returns the int64 representation of x; the result is undefined if
// x does not fit in an int64 (matches the host's truncating narrowing
// conversion rather than erroring — exact float/int coercions live in
// the facade, not the core).
func (x *Int) I64() int64 {
	v := int64(low64(x.abs))
	if x.negative {
		v = -v
	}
	return v
}

// U64 returns the uint64 representation of |x|.
func (x *Int) U64() uint64 { return low64(x.abs) }

// BitLen returns the number of bits in |x|; BitLen(0) == 0.
func (x *Int) BitLen() int { return x.abs.bitLen() }

package zz

// nat is an unsigned multi-precision integer: a little-digit-first slice
// of Word, nat[0] least significant. A nat is normalized when it carries
// no leading zero digit; the normalized representation of zero is the
// nil (or zero-length) slice. Normalization happens on every path that
// returns a nat to a caller outside this file; intermediate results may
// be denormalized.
//
// Every growth point (make) consults the active AllocTable via
// checkAlloc and returns an error instead of calling Go's make when the
// request would exceed the configured digit-capacity ceiling.
type nat []Word

var (
	natZero nat
	natOne  = nat{1}
	natTwo  = nat{2}
)

// make grows z to exactly n words, reusing the backing array when it has
// enough capacity. On failure the returned nat is nil and z is
// untouched.
func (z nat) make(op string, n int) (nat, error) {
	if n == 0 {
		return z[:0], nil
	}
	if n <= cap(z) {
		return z[:n], nil
	}
	if err := checkAlloc(op, n); err != nil {
		return nil, err
	}
	const extra = 4
	return make(nat, n, n+extra), nil
}

// norm strips leading zero digits.
func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[:i]
}

func (z nat) normalized() bool {
	return len(z) == 0 || z[len(z)-1] != 0
}

func (z nat) setWord(op string, x Word) (nat, error) {
	if x == 0 {
		return z[:0], nil
	}
	z, err := z.make(op, 1)
	if err != nil {
		return nil, err
	}
	z[0] = x
	return z, nil
}

func (z nat) setUint64(op string, x uint64) (nat, error) {
	if _W == 64 {
		return z.setWord(op, Word(x))
	}
	// _W == 32: up to two words
	if w := Word(x); uint64(w) == x {
		return z.setWord(op, w)
	}
	z, err := z.make(op, 2)
	if err != nil {
		return nil, err
	}
	z[0] = Word(x)
	z[1] = Word(x >> 32)
	return z.norm(), nil
}

func (z nat) set(op string, x nat) (nat, error) {
	z, err := z.make(op, len(x))
	if err != nil {
		return nil, err
	}
	copy(z, x)
	return z, nil
}

// cmp compares the magnitudes of x and y: -1, 0, +1.
func (x nat) cmp(y nat) int {
	m, n := len(x), len(y)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}
	for i := m - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (x nat) isZero() bool { return len(x) == 0 }

// alias reports whether x and y share the same backing array, used to
// decide whether a destination may be reused in place.
func alias(x, y nat) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

func low64(x nat) uint64 {
	if len(x) == 0 {
		return 0
	}
	v := uint64(x[0])
	if _W == 32 && len(x) > 1 {
		v |= uint64(x[1]) << 32
	}
	return v
}

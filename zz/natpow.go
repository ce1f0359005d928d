package zz

// expNN sets z = x**y mod m (m == nil/empty means unreduced x**y), using
// right-to-left binary exponentiation (y's bits are scanned from the
// least significant upward, squaring the base once per bit, not from the
// top bit down) with a reduction after every squaring and every multiply. Windowed/Montgomery fast paths are
// deliberately not implemented: a second, constant-factor-faster path
// would be unreachable code with no caller.
func (z nat) expNN(op string, x, y, m nat) (nat, error) {
	if alias(z, x) || alias(z, y) {
		z = nil
	}

	if len(m) == 1 && m[0] == 1 {
		return z.setWord(op, 0)
	}
	if len(y) == 0 {
		return z.setWord(op, 1)
	}
	if len(y) == 1 && y[0] == 1 {
		if len(m) != 0 {
			_, r, err := nat(nil).div(op, nil, x, m)
			return r, err
		}
		return z.set(op, x)
	}

	result, err := nat(nil).setWord(op, 1)
	if err != nil {
		return nil, err
	}
	base, err := nat(nil).set(op, x)
	if err != nil {
		return nil, err
	}
	if len(m) != 0 && base.cmp(m) >= 0 {
		_, base, err = nat(nil).div(op, nil, base, m)
		if err != nil {
			return nil, err
		}
	}

	for i := 0; i < y.bitLen(); i++ {
		if y.bit(uint(i)) == 1 {
			result, err = result.mul(op, result, base)
			if err != nil {
				return nil, err
			}
			if len(m) != 0 {
				_, result, err = nat(nil).div(op, nil, result, m)
				if err != nil {
					return nil, err
				}
			}
		}
		if i+1 < y.bitLen() {
			base, err = base.mul(op, base, base)
			if err != nil {
				return nil, err
			}
			if len(m) != 0 {
				_, base, err = nat(nil).div(op, nil, base, m)
				if err != nil {
					return nil, err
				}
			}
		}
	}
	return result.norm(), nil
}

// sqrt sets z = floor(sqrt(x)) via Newton's method (Brent & Zimmermann,
// Modern Computer Arithmetic, Algorithm 1.13).
func (z nat) sqrt(op string, x nat) (nat, error) {
	if x.cmp(natOne) <= 0 {
		return z.set(op, x)
	}
	if alias(z, x) {
		z = nil
	}

	z1, err := nat(nil).setWord(op, 1)
	if err != nil {
		return nil, err
	}
	z1, err = z1.shl(op, z1, uint(x.bitLen()/2+1))
	if err != nil {
		return nil, err
	}

	var z2 nat
	for n := 0; ; n++ {
		z2, _, err = z2.div(op, nil, x, z1)
		if err != nil {
			return nil, err
		}
		z2, err = z2.add(op, z2, z1)
		if err != nil {
			return nil, err
		}
		z2, err = z2.shr(op, z2, 1)
		if err != nil {
			return nil, err
		}
		if z2.cmp(z1) >= 0 {
			if n&1 == 0 {
				return z1, nil
			}
			return z.set(op, z1)
		}
		z1, z2 = z2, z1
	}
}

package zz

// Bitwise operators act as if x and y were represented in infinite-
// precision two's complement. Sign-magnitude storage has no native
// two's-complement form, so each operator is expressed algebraically in
// terms of magnitude ops:
//
//	x >= 0, y >= 0:  x & y  ==  x & y               (magnitude and)
//	x <  0, y <  0:  x & y  == ^((-x-1) | (-y-1))    == -(((-x-1)|(-y-1))+1)
//	x >= 0, y <  0:  x & y  ==  x &^ (-y-1)
//	x <  0, y >= 0:  symmetric to the case above

// And sets z = x & y.
func (z *Int) And(x, y *Int) (*Int, error) {
	const op = "and"
	if x.negative == y.negative {
		if x.negative {
			x1, err := nat(nil).sub(op, x.abs, natOne)
			if err != nil {
				return nil, err
			}
			y1, err := nat(nil).sub(op, y.abs, natOne)
			if err != nil {
				return nil, err
			}
			abs, err := z.abs.or(op, x1, y1)
			if err != nil {
				return nil, err
			}
			abs, err = abs.add(op, abs, natOne)
			if err != nil {
				return nil, err
			}
			z.abs = abs
			z.negative = true
			return z, nil
		}
		abs, err := z.abs.and(op, x.abs, y.abs)
		if err != nil {
			return nil, err
		}
		z.abs = abs
		z.negative = false
		return z, nil
	}
	if x.negative {
		x, y = y, x
	}
	y1, err := nat(nil).sub(op, y.abs, natOne)
	if err != nil {
		return nil, err
	}
	abs, err := z.abs.andNot(op, x.abs, y1)
	if err != nil {
		return nil, err
	}
	z.abs = abs
	z.negative = false
	return z, nil
}

// Or sets z = x | y.
func (z *Int) Or(x, y *Int) (*Int, error) {
	const op = "or"
	if x.negative == y.negative {
		if x.negative {
			x1, err := nat(nil).sub(op, x.abs, natOne)
			if err != nil {
				return nil, err
			}
			y1, err := nat(nil).sub(op, y.abs, natOne)
			if err != nil {
				return nil, err
			}
			abs, err := z.abs.and(op, x1, y1)
			if err != nil {
				return nil, err
			}
			abs, err = abs.add(op, abs, natOne)
			if err != nil {
				return nil, err
			}
			z.abs = abs
			z.negative = true
			return z, nil
		}
		abs, err := z.abs.or(op, x.abs, y.abs)
		if err != nil {
			return nil, err
		}
		z.abs = abs
		z.negative = false
		return z, nil
	}
	if x.negative {
		x, y = y, x
	}
	y1, err := nat(nil).sub(op, y.abs, natOne)
	if err != nil {
		return nil, err
	}
	abs, err := y1.andNot(op, y1, x.abs)
	if err != nil {
		return nil, err
	}
	abs, err = abs.add(op, abs, natOne)
	if err != nil {
		return nil, err
	}
	z.abs = abs
	z.negative = true
	return z, nil
}

// Xor sets z = x ^ y.
func (z *Int) Xor(x, y *Int) (*Int, error) {
	const op = "xor"
	if x.negative == y.negative {
		if x.negative {
			x1, err := nat(nil).sub(op, x.abs, natOne)
			if err != nil {
				return nil, err
			}
			y1, err := nat(nil).sub(op, y.abs, natOne)
			if err != nil {
				return nil, err
			}
			abs, err := z.abs.xor(op, x1, y1)
			if err != nil {
				return nil, err
			}
			z.abs = abs
			z.negative = false
			return z, nil
		}
		abs, err := z.abs.xor(op, x.abs, y.abs)
		if err != nil {
			return nil, err
		}
		z.abs = abs
		z.negative = false
		return z, nil
	}
	if x.negative {
		x, y = y, x
	}
	y1, err := nat(nil).sub(op, y.abs, natOne)
	if err != nil {
		return nil, err
	}
	abs, err := z.abs.xor(op, x.abs, y1)
	if err != nil {
		return nil, err
	}
	abs, err = abs.add(op, abs, natOne)
	if err != nil {
		return nil, err
	}
	z.abs = abs
	z.negative = true
	return z, nil
}

// Not sets z = ^x == -x-1.
func (z *Int) Not(x *Int) (*Int, error) {
	const op = "not"
	if x.negative {
		abs, err := z.abs.sub(op, x.abs, natOne)
		if err != nil {
			return nil, err
		}
		z.abs = abs
		z.negative = false
		return z, nil
	}
	abs, err := z.abs.add(op, x.abs, natOne)
	if err != nil {
		return nil, err
	}
	z.abs = abs
	z.negative = true
	return z, nil
}

// AndNot sets z = x &^ y.
func (z *Int) AndNot(x, y *Int) (*Int, error) {
	const op = "andnot"
	var notY Int
	if _, err := notY.Not(y); err != nil {
		return nil, err
	}
	return z.And(x, &notY)
}

// Bit returns the value of the i'th bit of x under infinite-precision
// two's complement.
func (x *Int) Bit(i uint) uint {
	if !x.negative {
		return x.abs.bit(i)
	}
	var t Int
	t.Not(x) // ^x for x < 0 never fails: x.abs is never empty here
	return 1 - t.abs.bit(i)
}

// SetBit sets z to x with its i'th two's-complement bit set to b (0 or 1).
func (z *Int) SetBit(x *Int, i uint, b uint) (*Int, error) {
	const op = "setbit"
	if b > 1 {
		return nil, errVal(op, "bit value must be 0 or 1")
	}
	if !x.negative {
		abs, err := z.abs.setBit(op, x.abs, i, b)
		if err != nil {
			return nil, err
		}
		z.abs = abs
		z.negative = false
		return z, nil
	}
	t, err := nat(nil).sub(op, x.abs, natOne)
	if err != nil {
		return nil, err
	}
	t, err = t.setBit(op, t, i, 1-b)
	if err != nil {
		return nil, err
	}
	t, err = t.add(op, t, natOne)
	if err != nil {
		return nil, err
	}
	z.abs = t
	z.negative = true
	return z, nil
}

// TrailingZeroBits returns the number of trailing zero bits of |x|;
// x must be non-zero.
func (x *Int) TrailingZeroBits() uint { return x.abs.trailingZeroBits() }

package zz

// pow2 returns 2**n as a fresh Int.
func pow2(op string, n uint) (*Int, error) {
	abs, err := nat(nil).shl(op, natOne, n)
	if err != nil {
		return nil, err
	}
	return &Int{abs: abs}, nil
}

func checkEndian(op, endian string) error {
	switch endian {
	case "big", "little":
		return nil
	default:
		return errVal(op, "unknown endianness token")
	}
}

// wordByte returns the byte at position i (0 = least significant) of z's
// little-endian Word storage, 0 beyond z's length; used to extract a
// caller-chosen byte count regardless of Word alignment.
func wordByte(z nat, i int) byte {
	w := i / _S
	if w >= len(z) {
		return 0
	}
	shift := uint(i%_S) * 8
	return byte(z[w] >> shift)
}

// ToBytes encodes x into a length-byte buffer with the given endianness
// and signedness. Unsigned mode rejects a negative x; both modes report
// BUFFER when the value does not fit in the requested width.
func (x *Int) ToBytes(length int, endian string, signed bool) ([]byte, error) {
	const op = "to_bytes"
	if length < 0 {
		return nil, errVal(op, "negative byte length")
	}
	if err := checkEndian(op, endian); err != nil {
		return nil, err
	}

	var v nat // magnitude to emit, already in two's-complement form for signed negatives
	switch {
	case !signed:
		if x.negative {
			return nil, errBuf(op, "negative value with unsigned encoding")
		}
		if x.abs.bytesLen() > length {
			return nil, errBuf(op, "value does not fit in the requested byte length")
		}
		v = x.abs

	case length == 0:
		if x.Sign() != 0 && x.Cmp(NewI64(-1)) != 0 {
			return nil, errBuf(op, "value does not fit in a zero-byte signed encoding")
		}
		if x.Sign() == 0 {
			v = nil
		} else {
			full, err := pow2(op, 0)
			if err != nil {
				return nil, err
			}
			twos, err := new(Int).Add(full, x)
			if err != nil {
				return nil, err
			}
			v = twos.abs
		}

	default:
		limit, err := pow2(op, uint(length)*8-1)
		if err != nil {
			return nil, err
		}
		negLimit, err := new(Int).Neg(limit)
		if err != nil {
			return nil, err
		}
		if x.Cmp(limit) >= 0 || x.Cmp(negLimit) < 0 {
			return nil, errBuf(op, "value does not fit in the requested signed byte length")
		}
		if x.negative {
			full, err := pow2(op, uint(length)*8)
			if err != nil {
				return nil, err
			}
			twos, err := new(Int).Add(full, x)
			if err != nil {
				return nil, err
			}
			v = twos.abs
		} else {
			v = x.abs
		}
	}

	buf := make([]byte, length)
	for i := 0; i < length; i++ {
		buf[length-1-i] = wordByte(v, i)
	}
	if endian == "little" {
		for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}
	return buf, nil
}

// FromBytes decodes buf as a fixed-width integer with the given
// endianness and signedness and sets z to that value.
func (z *Int) FromBytes(buf []byte, endian string, signed bool) (*Int, error) {
	const op = "from_bytes"
	if err := checkEndian(op, endian); err != nil {
		return nil, err
	}
	be := buf
	if endian == "little" {
		be = make([]byte, len(buf))
		for i, b := range buf {
			be[len(buf)-1-i] = b
		}
	}

	abs, err := nat(nil).setBytes(op, be)
	if err != nil {
		return nil, err
	}
	if !signed || len(be) == 0 || be[0]&0x80 == 0 {
		z.abs = abs
		z.negative = false
		return z, nil
	}

	full, err := pow2(op, uint(len(be))*8)
	if err != nil {
		return nil, err
	}
	u := &Int{abs: abs}
	if _, err := z.Sub(u, full); err != nil {
		return nil, err
	}
	return z, nil
}

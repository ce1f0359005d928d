package main

import "github.com/go-zz/zz"

// digits mirrors a zz_t's payload (sign flag + little-endian Word slice)
// independent of the C struct's memory layout, so the marshaling logic
// below can be exercised by `go test` without building the c-shared
// library the cgo wrappers in main.go produce.
type digits struct {
	negative bool
	words    []zz.Word
}

func (d digits) toInt() (*zz.Int, error) { return new(zz.Int).SetWords(d.negative, d.words) }

func fromInt(z *zz.Int) digits {
	return digits{negative: z.Sign() < 0, words: append([]zz.Word(nil), z.Bits()...)}
}

func cmpI32(d digits, v int32) (int, error) {
	x, err := d.toInt()
	if err != nil {
		return 0, err
	}
	return x.Cmp(zz.NewI64(int64(v))), nil
}

func addI32(d digits, v int32) (digits, error) {
	x, err := d.toInt()
	if err != nil {
		return digits{}, err
	}
	sum, err := new(zz.Int).Add(x, zz.NewI64(int64(v)))
	if err != nil {
		return digits{}, err
	}
	return fromInt(sum), nil
}

// lsbpos finds the least-significant set bit at or after start in x's
// infinite two's-complement bit pattern; x == 0 has no set bit, so it
// reports start itself (the position scanning gave up at), matching
// original_source/tests/test_api.py's test_zz_lsbpos.
func lsbpos(d digits, start int64) (int64, error) {
	x, err := d.toInt()
	if err != nil {
		return 0, err
	}
	if x.Sign() == 0 {
		return start, nil
	}
	limit := uint(x.BitLen()) + uint(zz.WordBits) + 1
	for i := uint(start); i <= limit; i++ {
		if x.Bit(i) == 1 {
			return int64(i), nil
		}
	}
	return -1, nil
}

func exportDigits(d digits, layout zz.Layout, buf []byte) (int, error) {
	x, err := d.toInt()
	if err != nil {
		return 0, err
	}
	return x.Export(layout, buf)
}

func mulDigits(a, b digits) (digits, error) {
	x, err := a.toInt()
	if err != nil {
		return digits{}, err
	}
	y, err := b.toInt()
	if err != nil {
		return digits{}, err
	}
	z, err := new(zz.Int).Mul(x, y)
	if err != nil {
		return digits{}, err
	}
	return fromInt(z), nil
}

// Rounding modes accepted by divDigits, mirroring zz_rnd in test_api.py.
const (
	zzRNDD = 0 // floor
	zzRNDN = 1 // round-half-to-even
)

func divDigits(a, b digits, rnd int32) (q, r digits, err error) {
	x, err := a.toInt()
	if err != nil {
		return digits{}, digits{}, err
	}
	y, err := b.toInt()
	if err != nil {
		return digits{}, digits{}, err
	}

	var quo, rem *zz.Int
	switch rnd {
	case zzRNDD:
		quo, rem, err = new(zz.Int).DivMod(x, y, new(zz.Int))
	case zzRNDN:
		quo, rem, err = new(zz.Int).DivModRound(x, y)
	default:
		return digits{}, digits{}, zz.NewValueError("div", "unknown rounding mode")
	}
	if err != nil {
		return digits{}, digits{}, err
	}
	return fromInt(quo), fromInt(rem), nil
}

func remU64(a digits, divisor uint64) (uint64, error) {
	x, err := a.toInt()
	if err != nil {
		return 0, err
	}
	d, err := new(zz.Int).FromU64(divisor)
	if err != nil {
		return 0, err
	}
	_, rem, err := new(zz.Int).DivMod(x, d, new(zz.Int))
	if err != nil {
		return 0, err
	}
	return rem.U64(), nil
}

func powDigits(a digits, exp uint64) (digits, error) {
	x, err := a.toInt()
	if err != nil {
		return digits{}, err
	}
	y, err := new(zz.Int).FromU64(exp)
	if err != nil {
		return digits{}, err
	}
	z, err := new(zz.Int).Pow(x, y)
	if err != nil {
		return digits{}, err
	}
	return fromInt(z), nil
}

func powmDigits(base, exp, mod digits) (digits, error) {
	x, err := base.toInt()
	if err != nil {
		return digits{}, err
	}
	y, err := exp.toInt()
	if err != nil {
		return digits{}, err
	}
	m, err := mod.toInt()
	if err != nil {
		return digits{}, err
	}
	z, err := new(zz.Int).Exp(x, y, m)
	if err != nil {
		return digits{}, err
	}
	return fromInt(z), nil
}

func sqrtremDigits(a digits) (s, r digits, err error) {
	x, err := a.toInt()
	if err != nil {
		return digits{}, digits{}, err
	}
	sq, rem, err := new(zz.Int).SqrtRem(x)
	if err != nil {
		return digits{}, digits{}, err
	}
	return fromInt(sq), fromInt(rem), nil
}

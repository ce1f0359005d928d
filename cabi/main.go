// Command libzz (built with -buildmode=c-shared) exposes the zz engine
// through a flat C ABI: a zz_t struct carrying a negative flag and a
// caller/cgo-managed digits array, plus the zz_* entry points named and
// shaped after original_source/tests/test_api.py's ctypes bindings
// (zz_from_i64, zz_cmp_i32, zz_add_i32, zz_mul, zz_div, zz_rem_u64,
// zz_pow, zz_powm, zz_sqrtrem, zz_export, zz_lsbpos). Every entry point
// returns a zz_err status instead of panicking, so a host that links
// libzz.so never needs to survive a Go panic across the C boundary.
//
// This file only marshals between the C zz_t layout and the pure-Go
// digits type in convert.go, which carries the actual conversion and
// kernel-dispatch logic and is what main_test.go exercises — cgo code
// itself isn't reachable from `go test` without first building the
// shared library.
package main

/*
#include <stdint.h>
#include <stdbool.h>
#include <stdlib.h>

typedef struct {
	bool negative;
	long alloc;
	long size;
	unsigned long *digits;
} zz_t;

typedef struct {
	uint8_t bits_per_digit;
	uint8_t digit_size;
	int8_t digits_order;
	int8_t digit_endianness;
} zz_layout;
*/
import "C"

import (
	"unsafe"

	"github.com/go-zz/zz"
)

func status(err error) C.int32_t { return C.int32_t(zz.StatusOf(err)) }

func toDigits(t *C.zz_t) digits {
	n := int(t.size)
	words := make([]zz.Word, n)
	if n > 0 {
		src := unsafe.Slice((*C.ulong)(unsafe.Pointer(t.digits)), n)
		for i := 0; i < n; i++ {
			words[i] = zz.Word(src[i])
		}
	}
	return digits{negative: bool(t.negative), words: words}
}

// fromDigits copies d's words into t, growing t's C-allocated digits
// array via realloc when it is too small.
func fromDigits(d digits, t *C.zz_t) error {
	n := len(d.words)
	if C.long(n) > t.alloc {
		size := C.size_t(n) * C.size_t(unsafe.Sizeof(C.ulong(0)))
		p := C.realloc(unsafe.Pointer(t.digits), size)
		if p == nil && size != 0 {
			return zz.NewMemoryError("realloc", "out of memory growing zz_t digits")
		}
		t.digits = (*C.ulong)(p)
		t.alloc = C.long(n)
	}
	if n > 0 {
		dst := unsafe.Slice((*C.ulong)(unsafe.Pointer(t.digits)), n)
		for i, w := range d.words {
			dst[i] = C.ulong(w)
		}
	}
	t.size = C.long(n)
	t.negative = C.bool(d.negative)
	return nil
}

//export zz_from_i64
func zz_from_i64(v C.int64_t, out *C.zz_t) C.int32_t {
	z, err := new(zz.Int).FromI64(int64(v))
	if err != nil {
		return status(err)
	}
	return status(fromDigits(fromInt(z), out))
}

//export zz_cmp_i32
func zz_cmp_i32(a *C.zz_t, v C.int32_t) C.int32_t {
	ord, err := cmpI32(toDigits(a), int32(v))
	if err != nil {
		return status(err)
	}
	return C.int32_t(ord)
}

//export zz_add_i32
func zz_add_i32(a *C.zz_t, v C.int32_t, out *C.zz_t) C.int32_t {
	d, err := addI32(toDigits(a), int32(v))
	if err != nil {
		return status(err)
	}
	return status(fromDigits(d, out))
}

//export zz_lsbpos
func zz_lsbpos(a *C.zz_t, start C.int64_t) C.int64_t {
	pos, err := lsbpos(toDigits(a), int64(start))
	if err != nil {
		return -1
	}
	return C.int64_t(pos)
}

//export zz_export
func zz_export(a *C.zz_t, layout C.zz_layout, buf unsafe.Pointer, buflen C.long) C.int32_t {
	order := "lo_hi"
	if layout.digits_order > 0 {
		order = "hi_lo"
	}
	endian := "little"
	if layout.digit_endianness > 0 {
		endian = "big"
	}
	l := zz.Layout{
		BitsPerDigit:   int(layout.bits_per_digit),
		DigitSizeBytes: int(layout.digit_size),
		DigitOrder:     order,
		ByteEndian:     endian,
	}
	var dst []byte
	if buflen > 0 && buf != nil {
		dst = unsafe.Slice((*byte)(buf), int(buflen))
	}
	_, err := exportDigits(toDigits(a), l, dst)
	return status(err)
}

//export zz_mul
func zz_mul(a, b, out *C.zz_t) C.int32_t {
	d, err := mulDigits(toDigits(a), toDigits(b))
	if err != nil {
		return status(err)
	}
	return status(fromDigits(d, out))
}

//export zz_div
func zz_div(a, b *C.zz_t, rnd C.int32_t, q *C.zz_t, r *C.zz_t) C.int32_t {
	qd, rd, err := divDigits(toDigits(a), toDigits(b), int32(rnd))
	if err != nil {
		return status(err)
	}
	if err := fromDigits(qd, q); err != nil {
		return status(err)
	}
	if r != nil {
		if err := fromDigits(rd, r); err != nil {
			return status(err)
		}
	}
	return status(nil)
}

//export zz_rem_u64
func zz_rem_u64(a *C.zz_t, divisor C.uint64_t, out *C.uint64_t) C.int32_t {
	rem, err := remU64(toDigits(a), uint64(divisor))
	if err != nil {
		return status(err)
	}
	*out = C.uint64_t(rem)
	return status(nil)
}

//export zz_pow
func zz_pow(a *C.zz_t, exp C.uint64_t, out *C.zz_t) C.int32_t {
	d, err := powDigits(toDigits(a), uint64(exp))
	if err != nil {
		return status(err)
	}
	return status(fromDigits(d, out))
}

//export zz_powm
func zz_powm(base, exp, mod, out *C.zz_t) C.int32_t {
	d, err := powmDigits(toDigits(base), toDigits(exp), toDigits(mod))
	if err != nil {
		return status(err)
	}
	return status(fromDigits(d, out))
}

//export zz_sqrtrem
func zz_sqrtrem(a *C.zz_t, outS, outR *C.zz_t) C.int32_t {
	sd, rd, err := sqrtremDigits(toDigits(a))
	if err != nil {
		return status(err)
	}
	if err := fromDigits(sd, outS); err != nil {
		return status(err)
	}
	return status(fromDigits(rd, outR))
}

func main() {}

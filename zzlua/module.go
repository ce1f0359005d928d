package zzlua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/go-zz/zz"
)

// newModule builds the "zz" global table: construction, formatting,
// pickling, and the number-theoretic free functions that don't read
// naturally as an operator (gcd, factorial, fibonacci, ...).
func newModule(L *lua.LState) *lua.LTable {
	module := L.NewTable()
	L.SetField(module, "new", L.NewFunction(luaNew))
	L.SetField(module, "tonumber", L.NewFunction(luaToNumber))
	L.SetField(module, "format", L.NewFunction(luaFormat))
	L.SetField(module, "dumps", L.NewFunction(luaDumps))
	L.SetField(module, "loads", L.NewFunction(luaLoads))
	L.SetField(module, "powm", L.NewFunction(luaPowm))
	L.SetField(module, "gcd", L.NewFunction(luaGCD))
	L.SetField(module, "gcdext", L.NewFunction(luaGCDExt))
	L.SetField(module, "sqrtrem", L.NewFunction(luaSqrtRem))
	L.SetField(module, "factorial", L.NewFunction(luaFactorial))
	L.SetField(module, "double_factorial", L.NewFunction(luaDoubleFactorial))
	L.SetField(module, "binomial", L.NewFunction(luaBinomial))
	L.SetField(module, "fibonacci", L.NewFunction(luaFibonacci))
	L.SetField(module, "rat", L.NewFunction(luaNewRat))
	return module
}

// luaNew implements zz.new(v): v may be a whole Lua number, a digit
// string (with 0x/0o/0b auto-detection, base overridable by a second
// argument), or another zz.Int userdata (copied).
func luaNew(L *lua.LState) int {
	base := 0
	if L.GetTop() >= 2 {
		base = L.CheckInt(2)
	}
	switch v := L.Get(1).(type) {
	case lua.LString:
		z, err := new(zz.Int).FromString(string(v), base)
		if err != nil {
			raiseZZError(L, err)
			return 0
		}
		pushInt(L, z)
		return 1
	default:
		z, err := valueToInt(v)
		if err == nil {
			z, err = new(zz.Int).Set(z)
		}
		if err != nil {
			L.ArgError(1, err.Error())
			return 0
		}
		pushInt(L, z)
		return 1
	}
}

// luaToNumber implements zz.tonumber(x): returns a Lua number when |x|
// has fewer than 53 bits (BitLen < 53, so it is exact as a float64),
// else falls back to the decimal string — the host-hash agreement
// documented in SPEC_FULL.md §6.
func luaToNumber(L *lua.LState) int {
	x := checkInt(L, 1)
	if x.BitLen() < 53 {
		L.Push(lua.LNumber(x.I64()))
		return 1
	}
	L.Push(lua.LString(x.String()))
	return 1
}

func luaFormat(L *lua.LState) int {
	x := checkInt(L, 1)
	spec := L.OptString(2, "")
	s, err := Format(x, spec)
	if err != nil {
		L.ArgError(2, err.Error())
		return 0
	}
	L.Push(lua.LString(s))
	return 1
}

// luaDumps implements zz.dumps(x): returns (sign, bytes) where sign is
// -1/0/1 and bytes is the big-endian unsigned magnitude, the pickling
// format described in SPEC_FULL.md §6.
func luaDumps(L *lua.LState) int {
	x := checkInt(L, 1)
	abs, err := new(zz.Int).Abs(x)
	if err != nil {
		raiseZZError(L, err)
		return 0
	}
	length := (abs.BitLen() + 7) / 8
	buf, err := abs.ToBytes(length, "big", false)
	if err != nil {
		raiseZZError(L, err)
		return 0
	}
	L.Push(lua.LNumber(x.Sign()))
	L.Push(lua.LString(string(buf)))
	return 2
}

// luaLoads implements zz.loads(sign, bytes), the inverse of zz.dumps.
func luaLoads(L *lua.LState) int {
	sign := L.CheckInt(1)
	buf := []byte(L.CheckString(2))
	z, err := new(zz.Int).FromBytes(buf, "big", false)
	if err != nil {
		raiseZZError(L, err)
		return 0
	}
	if sign < 0 {
		if _, err := z.Neg(z); err != nil {
			raiseZZError(L, err)
			return 0
		}
	}
	pushInt(L, z)
	return 1
}

func luaPowm(L *lua.LState) int {
	base := checkInt(L, 1)
	exp := checkInt(L, 2)
	mod := checkInt(L, 3)
	z, err := new(zz.Int).Exp(base, exp, mod)
	if err != nil {
		raiseZZError(L, err)
		return 0
	}
	pushInt(L, z)
	return 1
}

func luaGCD(L *lua.LState) int {
	a, b := checkInt(L, 1), checkInt(L, 2)
	g, err := zz.GCD(a, b)
	if err != nil {
		raiseZZError(L, err)
		return 0
	}
	pushInt(L, g)
	return 1
}

func luaGCDExt(L *lua.LState) int {
	a, b := checkInt(L, 1), checkInt(L, 2)
	g, x, y, err := zz.GCDExt(a, b)
	if err != nil {
		raiseZZError(L, err)
		return 0
	}
	pushInt(L, g)
	pushInt(L, x)
	pushInt(L, y)
	return 3
}

func luaSqrtRem(L *lua.LState) int {
	x := checkInt(L, 1)
	s, r, err := new(zz.Int).SqrtRem(x)
	if err != nil {
		raiseZZError(L, err)
		return 0
	}
	pushInt(L, s)
	pushInt(L, r)
	return 2
}

func luaFactorial(L *lua.LState) int {
	n := L.CheckInt64(1)
	z, err := zz.Factorial(n)
	if err != nil {
		raiseZZError(L, err)
		return 0
	}
	pushInt(L, z)
	return 1
}

func luaDoubleFactorial(L *lua.LState) int {
	n := L.CheckInt64(1)
	z, err := zz.DoubleFactorial(n)
	if err != nil {
		raiseZZError(L, err)
		return 0
	}
	pushInt(L, z)
	return 1
}

func luaBinomial(L *lua.LState) int {
	n, k := L.CheckInt64(1), L.CheckInt64(2)
	z, err := zz.Binomial(n, k)
	if err != nil {
		raiseZZError(L, err)
		return 0
	}
	pushInt(L, z)
	return 1
}

func luaFibonacci(L *lua.LState) int {
	n := L.CheckInt64(1)
	z, err := zz.Fibonacci(n)
	if err != nil {
		raiseZZError(L, err)
		return 0
	}
	pushInt(L, z)
	return 1
}

package zzlua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/go-zz/zz"
)

// binop builds an __add/__sub/... metamethod from a zz.Int kernel
// (z, x, y *zz.Int) (*zz.Int, error); both Lua operands are coerced via
// valueToInt so either side of the operator may be a bare Lua number or
// digit string.
func binop(op func(z, x, y *zz.Int) (*zz.Int, error)) lua.LGFunction {
	return func(L *lua.LState) int {
		x, err := valueToInt(L.Get(1))
		if err != nil {
			L.ArgError(1, err.Error())
			return 0
		}
		y, err := valueToInt(L.Get(2))
		if err != nil {
			L.ArgError(2, err.Error())
			return 0
		}
		res, err := op(new(zz.Int), x, y)
		if err != nil {
			raiseZZError(L, err)
			return 0
		}
		pushInt(L, res)
		return 1
	}
}

var (
	intAdd = binop((*zz.Int).Add)
	intSub = binop((*zz.Int).Sub)
	intMul = binop((*zz.Int).Mul)
	intDiv = binop(func(z, x, y *zz.Int) (*zz.Int, error) {
		q, _, err := z.DivMod(x, y, new(zz.Int))
		return q, err
	})
	intMod = binop(func(z, x, y *zz.Int) (*zz.Int, error) {
		_, m, err := new(zz.Int).DivMod(x, y, z)
		return m, err
	})
	intPow = binop(func(z, x, y *zz.Int) (*zz.Int, error) { return z.Pow(x, y) })
)

func intUnm(L *lua.LState) int {
	x := checkInt(L, 1)
	res, err := new(zz.Int).Neg(x)
	if err != nil {
		raiseZZError(L, err)
		return 0
	}
	pushInt(L, res)
	return 1
}

func intEq(L *lua.LState) int {
	x, err := valueToInt(L.Get(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	y, err := valueToInt(L.Get(2))
	if err != nil {
		L.ArgError(2, err.Error())
		return 0
	}
	L.Push(lua.LBool(x.Cmp(y) == 0))
	return 1
}

func intLt(L *lua.LState) int {
	x, err := valueToInt(L.Get(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	y, err := valueToInt(L.Get(2))
	if err != nil {
		L.ArgError(2, err.Error())
		return 0
	}
	L.Push(lua.LBool(x.Cmp(y) < 0))
	return 1
}

func intLe(L *lua.LState) int {
	x, err := valueToInt(L.Get(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	y, err := valueToInt(L.Get(2))
	if err != nil {
		L.ArgError(2, err.Error())
		return 0
	}
	L.Push(lua.LBool(x.Cmp(y) <= 0))
	return 1
}

func intToString(L *lua.LState) int {
	x := checkInt(L, 1)
	L.Push(lua.LString(x.String()))
	return 1
}

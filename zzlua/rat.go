package zzlua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/go-zz/zz"
)

func registerRatType(L *lua.LState) {
	mt := L.NewTypeMetatable(ratTypeName)
	L.SetField(mt, "__add", L.NewFunction(ratBinop((*zz.Rat).Add)))
	L.SetField(mt, "__sub", L.NewFunction(ratBinop((*zz.Rat).Sub)))
	L.SetField(mt, "__mul", L.NewFunction(ratBinop((*zz.Rat).Mul)))
	L.SetField(mt, "__div", L.NewFunction(ratBinop((*zz.Rat).Quo)))
	L.SetField(mt, "__eq", L.NewFunction(ratEq))
	L.SetField(mt, "__lt", L.NewFunction(ratLt))
	L.SetField(mt, "__le", L.NewFunction(ratLe))
	L.SetField(mt, "__tostring", L.NewFunction(ratToString))
}

func pushRat(L *lua.LState, r *zz.Rat) {
	ud := L.NewUserData()
	ud.Value = r
	ud.Metatable = L.GetTypeMetatable(ratTypeName)
	L.Push(ud)
}

func checkRat(L *lua.LState, n int) *zz.Rat {
	ud, ok := L.Get(n).(*lua.LUserData)
	if !ok {
		L.ArgError(n, "zz.Rat expected")
		return nil
	}
	r, ok := ud.Value.(*zz.Rat)
	if !ok {
		L.ArgError(n, "zz.Rat expected")
		return nil
	}
	return r
}

// luaNewRat implements zz.rat(num, den): both arguments are coerced the
// same way zz.new accepts them (Lua number, digit string, or zz.Int).
func luaNewRat(L *lua.LState) int {
	num, err := valueToInt(L.Get(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	den, err := valueToInt(L.Get(2))
	if err != nil {
		L.ArgError(2, err.Error())
		return 0
	}
	r, err := zz.NewRat(num, den)
	if err != nil {
		raiseZZError(L, err)
		return 0
	}
	pushRat(L, r)
	return 1
}

// ratBinop builds an __add/__sub/... metamethod from a zz.Rat kernel,
// mirroring ops.go's binop for zz.Int.
func ratBinop(op func(z, x, y *zz.Rat) (*zz.Rat, error)) lua.LGFunction {
	return func(L *lua.LState) int {
		x, y := checkRat(L, 1), checkRat(L, 2)
		res, err := op(new(zz.Rat), x, y)
		if err != nil {
			raiseZZError(L, err)
			return 0
		}
		pushRat(L, res)
		return 1
	}
}

func ratEq(L *lua.LState) int {
	x, y := checkRat(L, 1), checkRat(L, 2)
	L.Push(lua.LBool(x.Cmp(y) == 0))
	return 1
}

func ratLt(L *lua.LState) int {
	x, y := checkRat(L, 1), checkRat(L, 2)
	L.Push(lua.LBool(x.Cmp(y) < 0))
	return 1
}

func ratLe(L *lua.LState) int {
	x, y := checkRat(L, 1), checkRat(L, 2)
	L.Push(lua.LBool(x.Cmp(y) <= 0))
	return 1
}

func ratToString(L *lua.LState) int {
	x := checkRat(L, 1)
	L.Push(lua.LString(x.String()))
	return 1
}

// Package zzlua embeds zz.Int values inside a gopher-lua state: the
// "dynamic host language" embedding facade named but not built out by
// the engine itself. A *zz.Int is wrapped as Lua userdata carrying a
// metatable that forwards arithmetic, comparison, and string conversion
// back onto the core package; a "zz" global module supplies
// construction, formatting, and number-theoretic helpers a Lua script
// can call directly.
package zzlua

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/go-zz/zz"
)

// intTypeName and ratTypeName name the userdata metatables registered in
// the Lua state's registry, mirroring gopher-lua's own NewTypeMetatable
// convention (see lua_evaluator.go's "minz" module in the pack).
const (
	intTypeName = "zz.Int"
	ratTypeName = "zz.Rat"
)

// Register installs the zz metatables and the "zz" global module into L.
// Call once per *lua.LState before running any script that uses zz.
func Register(L *lua.LState) {
	registerIntType(L)
	registerRatType(L)
	L.SetGlobal("zz", newModule(L))
}

// pushInt wraps z as Lua userdata under the zz.Int metatable and pushes
// it onto L's stack, also returning the userdata for callers that need
// to chain further field access.
func pushInt(L *lua.LState, z *zz.Int) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = z
	ud.Metatable = L.GetTypeMetatable(intTypeName)
	L.Push(ud)
	return ud
}

// checkInt requires the Lua value at stack position n to be a zz.Int
// userdata and returns the wrapped value, raising a Lua argument error
// otherwise.
func checkInt(L *lua.LState, n int) *zz.Int {
	ud, ok := L.Get(n).(*lua.LUserData)
	if !ok {
		L.ArgError(n, "zz.Int expected")
		return nil
	}
	z, ok := ud.Value.(*zz.Int)
	if !ok {
		L.ArgError(n, "zz.Int expected")
		return nil
	}
	return z
}

// valueToInt coerces an arbitrary Lua value into a *zz.Int: a zz.Int
// userdata is unwrapped directly, a whole Lua number is converted
// exactly, and a string is parsed with base auto-detection. This is
// what lets Lua write `x + 1` or `x + "10"` for a zz.Int x, matching the
// metamethod dispatch contract (either operand of an arithmetic
// metamethod call may be the non-userdata side).
func valueToInt(v lua.LValue) (*zz.Int, error) {
	switch x := v.(type) {
	case *lua.LUserData:
		if z, ok := x.Value.(*zz.Int); ok {
			return z, nil
		}
		return nil, fmt.Errorf("cannot convert userdata to zz.Int")
	case lua.LNumber:
		f := float64(x)
		if f != float64(int64(f)) {
			return nil, fmt.Errorf("zz.Int requires a whole Lua number, got %v", f)
		}
		return zz.NewI64(int64(f)), nil
	case lua.LString:
		return new(zz.Int).FromString(string(x), 0)
	default:
		return nil, fmt.Errorf("cannot convert %s to zz.Int", v.Type().String())
	}
}

// raiseZZError raises a Lua error carrying a table {status=, message=}
// instead of a bare string, so a Lua pcall handler can branch
// on err.status the way the cabi layer branches on a zz_err integer.
func raiseZZError(L *lua.LState, err error) {
	tbl := L.NewTable()
	st := zz.StatusOf(err)
	tbl.RawSetString("status", lua.LString(st.String()))
	tbl.RawSetString("message", lua.LString(err.Error()))
	L.Error(tbl, 1)
}

func registerIntType(L *lua.LState) {
	mt := L.NewTypeMetatable(intTypeName)
	L.SetField(mt, "__add", L.NewFunction(intAdd))
	L.SetField(mt, "__sub", L.NewFunction(intSub))
	L.SetField(mt, "__mul", L.NewFunction(intMul))
	L.SetField(mt, "__div", L.NewFunction(intDiv))
	L.SetField(mt, "__mod", L.NewFunction(intMod))
	L.SetField(mt, "__pow", L.NewFunction(intPow))
	L.SetField(mt, "__unm", L.NewFunction(intUnm))
	L.SetField(mt, "__eq", L.NewFunction(intEq))
	L.SetField(mt, "__lt", L.NewFunction(intLt))
	L.SetField(mt, "__le", L.NewFunction(intLe))
	L.SetField(mt, "__tostring", L.NewFunction(intToString))
}

package zzlua

import (
	"fmt"

	"github.com/go-zz/zz"
)

// ToZZer lets a host type outside this package participate in zz.Int
// construction without zzlua needing to know its concrete type: any
// value implementing it is accepted wherever FromHost is used, the
// same way a Lua script hands zz.new a userdata, number, or string.
type ToZZer interface {
	ToZZ() (*zz.Int, error)
}

// FromHost builds a *zz.Int from an arbitrary Go value: a *zz.Int is
// returned as-is, a ToZZer is asked to convert itself, and the
// fixed-width integer kinds and strings are converted directly. This
// is the Go-side counterpart of valueToInt, used by callers embedding
// zzlua without going through a Lua script at all.
func FromHost(v interface{}) (*zz.Int, error) {
	switch x := v.(type) {
	case *zz.Int:
		return x, nil
	case ToZZer:
		return x.ToZZ()
	case int:
		return zz.NewI64(int64(x)), nil
	case int8:
		return zz.NewI64(int64(x)), nil
	case int16:
		return zz.NewI64(int64(x)), nil
	case int32:
		return zz.NewI64(int64(x)), nil
	case int64:
		return zz.NewI64(x), nil
	case uint:
		return new(zz.Int).FromString(fmt.Sprintf("%d", x), 10)
	case uint8:
		return zz.NewI64(int64(x)), nil
	case uint16:
		return zz.NewI64(int64(x)), nil
	case uint32:
		return zz.NewI64(int64(x)), nil
	case uint64:
		return new(zz.Int).FromString(fmt.Sprintf("%d", x), 10)
	case string:
		return new(zz.Int).FromString(x, 0)
	default:
		return nil, fmt.Errorf("zzlua: cannot build zz.Int from %T", v)
	}
}

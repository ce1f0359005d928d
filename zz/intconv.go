package zz

import "strings"

// String renders x in decimal.
func (x *Int) String() string { return x.Text(10) }

// Text renders x in the given base (2..36), with a leading '-' for
// negative x. Bases other than 10 use lowercase digits beyond '9'.
func (x *Int) Text(base int) string {
	s := x.abs.string(base)
	if x.negative {
		return "-" + s
	}
	return s
}

// FromString sets z to the value of s, interpreted in the given base.
// Leading and trailing whitespace is ignored. base == 0 auto-detects a
// 0x/0o/0b prefix (default 10). A leading '+' or '-' sets the sign;
// "_" digit separators are accepted between digits.
func (z *Int) FromString(s string, base int) (*Int, error) {
	const op = "from_str"
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errVal(op, "empty digit string")
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	abs, err := z.abs.setString(op, s, base)
	if err != nil {
		return nil, err
	}
	z.abs = abs
	z.negative = neg && len(abs) > 0
	return z, nil
}

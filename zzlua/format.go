package zzlua

import (
	"fmt"
	"strings"

	"github.com/go-zz/zz"
)

// Format renders x according to a Python-compatible integer format
// mini-language:
//
//	[[fill]align][sign][#][0][width][,_][type]
//
// align is one of <^>=, sign is one of +- (space), # requests the
// 0b/0o/0x prefix, a leading 0 before width zero-pads (equivalent to
// fill='0' align='='), and type is one of b/o/d/x/X/n/c (default d).
// This is grounded on the format-spec generator in the original
// project's test suite, which round-trips mpz formatting against
// Python's built-in int formatting for every spec it generates.
func Format(x *zz.Int, spec string) (string, error) {
	f, err := parseFormatSpec(spec)
	if err != nil {
		return "", err
	}

	if f.typ == 'c' {
		return formatChar(x, f)
	}

	base, prefix, upper := 10, "", false
	switch f.typ {
	case 'b':
		base, prefix = 2, "0b"
	case 'o':
		base, prefix = 8, "0o"
	case 'x':
		base, prefix = 16, "0x"
	case 'X':
		base, prefix, upper = 16, "0X", true
	case 'd', 'n':
		base = 10
	default:
		return "", zz.NewValueError("format", fmt.Sprintf("unknown format type %q", f.typ))
	}
	if !f.alt {
		prefix = ""
	}

	abs, err := new(zz.Int).Abs(x)
	if err != nil {
		return "", err
	}
	digits := abs.Text(base)
	if upper {
		digits = strings.ToUpper(digits)
	}

	sign := ""
	switch {
	case x.Sign() < 0:
		sign = "-"
	case f.sign == '+':
		sign = "+"
	case f.sign == ' ':
		sign = " "
	}

	groupSize := 3
	if f.typ != 'd' && f.typ != 'n' {
		groupSize = 4
	}

	zeroFill := f.align == '=' && f.fill == '0'
	if zeroFill {
		avail := f.width - len(sign) - len(prefix)
		digits = zeroPadGrouped(digits, groupSize, f.grouping, avail)
	} else if f.grouping != 0 {
		digits = groupDigits(digits, groupSize, f.grouping)
	}

	body := sign + prefix + digits
	if len(body) >= f.width {
		return body, nil
	}
	pad := f.width - len(body)
	fillStr := strings.Repeat(string(f.fill), pad)
	switch f.align {
	case '<':
		return body + fillStr, nil
	case '^':
		left := pad / 2
		right := pad - left
		return strings.Repeat(string(f.fill), left) + body + strings.Repeat(string(f.fill), right), nil
	case '=':
		return sign + prefix + fillStr + digits, nil
	default: // '>' or unset: numbers right-align by default
		return fillStr + body, nil
	}
}

// formatChar implements the 'c' type: x is the Unicode code point of a
// single-character result. Sign, alternate form, and grouping make no
// sense for a character and are rejected, matching Python's
// int.__format__.
func formatChar(x *zz.Int, f formatSpec) (string, error) {
	const op = "format"
	if x.Sign() < 0 || x.BitLen() > 21 {
		return "", zz.NewValueError(op, "'c' requires a non-negative code point")
	}
	if f.alt || f.grouping != 0 || f.sign != '-' {
		return "", zz.NewValueError(op, "sign, '#', and ',' are not allowed with 'c'")
	}
	body := string(rune(x.I64()))
	if len(body) >= f.width {
		return body, nil
	}
	pad := strings.Repeat(string(f.fill), f.width-len(body))
	align := f.align
	if align == 0 {
		align = '<' // strings (and 'c') default to left-alignment, unlike numbers
	}
	switch align {
	case '<':
		return body + pad, nil
	case '^':
		left := (f.width - len(body)) / 2
		return pad[:left] + body + pad[left:], nil
	default: // '>' or '='
		return pad + body, nil
	}
}

type formatSpec struct {
	fill     rune
	align    rune
	sign     rune
	alt      bool
	width    int
	grouping rune
	typ      rune
}

func isAlignChar(r rune) bool {
	return r == '<' || r == '^' || r == '>' || r == '='
}

func parseFormatSpec(spec string) (formatSpec, error) {
	f := formatSpec{fill: ' ', sign: '-', typ: 'd'}
	runes := []rune(spec)
	i := 0

	if len(runes) >= 2 && isAlignChar(runes[1]) {
		f.fill, f.align = runes[0], runes[1]
		i = 2
	} else if len(runes) >= 1 && isAlignChar(runes[0]) {
		f.align = runes[0]
		i = 1
	}

	if i < len(runes) && (runes[i] == '+' || runes[i] == '-' || runes[i] == ' ') {
		f.sign = runes[i]
		i++
	}

	if i < len(runes) && runes[i] == '#' {
		f.alt = true
		i++
	}

	if i < len(runes) && runes[i] == '0' {
		if f.align == 0 {
			f.align, f.fill = '=', '0'
		}
		i++
	}

	widthStart := i
	for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
		i++
	}
	if i > widthStart {
		for _, d := range runes[widthStart:i] {
			f.width = f.width*10 + int(d-'0')
		}
	}

	if i < len(runes) && (runes[i] == ',' || runes[i] == '_') {
		f.grouping = runes[i]
		i++
	}

	if i < len(runes) {
		f.typ = runes[i]
		i++
	}

	if i != len(runes) {
		return f, zz.NewValueError("format", fmt.Sprintf("invalid format spec %q", spec))
	}
	if f.grouping == ',' && (f.typ == 'b' || f.typ == 'o' || f.typ == 'x' || f.typ == 'X') {
		return f, zz.NewValueError("format", "comma grouping is not allowed with base b/o/x/X")
	}
	return f, nil
}

// groupDigits inserts sep every groupSize characters counting from the
// right of digits, e.g. groupDigits("1234567", 3, ',') == "1,234,567".
func groupDigits(digits string, groupSize int, sep rune) string {
	if len(digits) <= groupSize {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % groupSize
	if lead == 0 {
		lead = groupSize
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += groupSize {
		b.WriteRune(sep)
		b.WriteString(digits[i : i+groupSize])
	}
	return b.String()
}

// zeroPadGrouped left-pads digits with '0' until the grouped
// representation occupies at least avail characters, then groups it
// (or simply zero-pads to avail when grouping is disabled). This is
// what lets "0" padding and "," / "_" grouping combine the way
// Python's int.__format__ does: the padding zeros participate in the
// grouping instead of sitting outside it.
func zeroPadGrouped(digits string, groupSize int, sep rune, avail int) string {
	if sep == 0 {
		if len(digits) >= avail {
			return digits
		}
		return strings.Repeat("0", avail-len(digits)) + digits
	}
	n := len(digits)
	for groupedLen(n, groupSize) < avail {
		n++
	}
	if n > len(digits) {
		digits = strings.Repeat("0", n-len(digits)) + digits
	}
	return groupDigits(digits, groupSize, sep)
}

func groupedLen(n, groupSize int) int {
	if n == 0 {
		return 0
	}
	return n + (n-1)/groupSize
}

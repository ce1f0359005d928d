package zz

// Rat is a paper-thin rational number built on the integer core: a
// num/den pair kept in lowest terms with a positive denominator,
// exercised by the facade's rational bridge.
type Rat struct {
	num, den *Int
}

// NewRat returns num/den reduced to lowest terms. den must be non-zero.
func NewRat(num, den *Int) (*Rat, error) {
	const op = "rat_new"
	if den.IsZero() {
		return nil, errVal(op, "rational with zero denominator")
	}
	r := &Rat{num: new(Int), den: new(Int)}
	if _, err := r.num.Set(num); err != nil {
		return nil, err
	}
	if _, err := r.den.Set(den); err != nil {
		return nil, err
	}
	if r.den.negative {
		if _, err := r.num.Neg(r.num); err != nil {
			return nil, err
		}
		if _, err := r.den.Neg(r.den); err != nil {
			return nil, err
		}
	}
	if err := r.reduce(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Rat) reduce() error {
	g, err := GCD(r.num, r.den)
	if err != nil {
		return err
	}
	if g.Cmp(intOne) <= 0 {
		return nil
	}
	if _, err := r.num.Quo(r.num, g); err != nil {
		return err
	}
	if _, err := r.den.Quo(r.den, g); err != nil {
		return err
	}
	return nil
}

// Num and Denom return copies of r's numerator and denominator.
func (r *Rat) Num() (*Int, error)   { return new(Int).Set(r.num) }
func (r *Rat) Denom() (*Int, error) { return new(Int).Set(r.den) }

// Add sets z to x + y and returns z.
func (z *Rat) Add(x, y *Rat) (*Rat, error) {
	xnyd, err := new(Int).Mul(x.num, y.den)
	if err != nil {
		return nil, err
	}
	ynxd, err := new(Int).Mul(y.num, x.den)
	if err != nil {
		return nil, err
	}
	num, err := new(Int).Add(xnyd, ynxd)
	if err != nil {
		return nil, err
	}
	den, err := new(Int).Mul(x.den, y.den)
	if err != nil {
		return nil, err
	}
	return z.setReduced(num, den)
}

// Sub sets z to x - y and returns z.
func (z *Rat) Sub(x, y *Rat) (*Rat, error) {
	negY := &Rat{num: new(Int), den: new(Int)}
	if _, err := negY.num.Neg(y.num); err != nil {
		return nil, err
	}
	if _, err := negY.den.Set(y.den); err != nil {
		return nil, err
	}
	return z.Add(x, negY)
}

// Mul sets z to x*y and returns z.
func (z *Rat) Mul(x, y *Rat) (*Rat, error) {
	num, err := new(Int).Mul(x.num, y.num)
	if err != nil {
		return nil, err
	}
	den, err := new(Int).Mul(x.den, y.den)
	if err != nil {
		return nil, err
	}
	return z.setReduced(num, den)
}

// Quo sets z to x/y and returns z. y must be non-zero.
func (z *Rat) Quo(x, y *Rat) (*Rat, error) {
	const op = "rat_quo"
	if y.num.IsZero() {
		return nil, errVal(op, "division by zero")
	}
	num, err := new(Int).Mul(x.num, y.den)
	if err != nil {
		return nil, err
	}
	den, err := new(Int).Mul(x.den, y.num)
	if err != nil {
		return nil, err
	}
	return z.setReduced(num, den)
}

// setReduced builds num/den via NewRat and copies the reduced result
// into z, so z is the Int-style "destination buffer" for every Rat op.
func (z *Rat) setReduced(num, den *Int) (*Rat, error) {
	r, err := NewRat(num, den)
	if err != nil {
		return nil, err
	}
	z.num, z.den = r.num, r.den
	return z, nil
}

// Cmp compares x and y: -1, 0, +1.
func (x *Rat) Cmp(y *Rat) int {
	lhs, _ := new(Int).Mul(x.num, y.den)
	rhs, _ := new(Int).Mul(y.num, x.den)
	return lhs.Cmp(rhs)
}

// Sign returns -1, 0, or +1 as x is negative, zero, or positive.
func (x *Rat) Sign() int { return x.num.Sign() }

// String renders x as "num/den", or just "num" when den == 1.
func (x *Rat) String() string {
	if x.den.Cmp(intOne) == 0 {
		return x.num.String()
	}
	return x.num.String() + "/" + x.den.String()
}

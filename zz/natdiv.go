package zz

// divW computes q, r such that x = q*y + r, 0 <= r < y, for a single-word
// divisor y != 0.
func (z nat) divW(op string, x nat, y Word) (q nat, r Word, err error) {
	m := len(x)
	switch {
	case y == 0:
		return nil, 0, errVal(op, "division by zero")
	case y == 1:
		q, err = z.set(op, x)
		return
	case m == 0:
		return z[:0], 0, nil
	}
	z, err = z.make(op, m)
	if err != nil {
		return nil, 0, err
	}
	r = divWVW(z, 0, x, y)
	return z.norm(), r, nil
}

// modW returns x mod d for a single-word divisor d != 0.
func (x nat) modW(op string, d Word) (Word, error) {
	if d == 0 {
		return 0, errVal(op, "division by zero")
	}
	var q nat
	q, err := q.make(op, len(x))
	if err != nil {
		return 0, err
	}
	return divWVW(q, 0, x, d), nil
}

// div computes quotient q and remainder r of u/v, 0 <= r < v, v != 0.
func (z nat) div(op string, z2, u, v nat) (q, r nat, err error) {
	if len(v) == 0 {
		return nil, nil, errVal(op, "division by zero")
	}
	if u.cmp(v) < 0 {
		q = z[:0]
		r, err = z2.set(op, u)
		return
	}
	if len(v) == 1 {
		var r2 Word
		q, r2, err = z.divW(op, u, v[0])
		if err != nil {
			return nil, nil, err
		}
		r, err = z2.setWord(op, r2)
		return
	}
	return z.divLarge(op, z2, u, v)
}

// divLarge implements Knuth's Algorithm D (TAOCP vol. 2, §4.3.1).
func (z nat) divLarge(op string, u, uIn, v nat) (q, r nat, err error) {
	n := len(v)
	m := len(uIn) - n

	if alias(z, uIn) || alias(z, v) {
		z = nil
	}
	q, err = z.make(op, m+1)
	if err != nil {
		return nil, nil, err
	}

	qhatv, err := nat(nil).make(op, n+1)
	if err != nil {
		return nil, nil, err
	}

	if alias(u, uIn) || alias(u, v) {
		u = nil
	}
	u, err = u.make(op, len(uIn)+1)
	if err != nil {
		return nil, nil, err
	}
	for i := range u {
		u[i] = 0
	}

	shift := uint(_W - bitLen(v[n-1]))
	var v1 nat
	if shift > 0 {
		v1, err = v1.make(op, n)
		if err != nil {
			return nil, nil, err
		}
		shlVU(v1, v, shift)
		v = v1
	}
	u[len(uIn)] = shlVU(u[:len(uIn)], uIn, shift)

	vn1 := v[n-1]
	for j := m; j >= 0; j-- {
		qhat := Word(_M)
		if ujn := u[j+n]; ujn != vn1 {
			var rhat Word
			qhat, rhat = divWW(ujn, u[j+n-1], vn1)

			vn2 := v[n-2]
			x1, x2 := mulWW(qhat, vn2)
			ujn2 := u[j+n-2]
			for greaterThan(x1, x2, rhat, ujn2) {
				qhat--
				prevRhat := rhat
				rhat += vn1
				if rhat < prevRhat {
					break
				}
				x1, x2 = mulWW(qhat, vn2)
			}
		}

		qhatv[n] = mulAddVWW(qhatv[:n], v, qhat, 0)

		c := subVV(u[j:j+len(qhatv)], u[j:], qhatv)
		if c != 0 {
			c := addVV(u[j:j+n], u[j:], v)
			u[j+n] += c
			qhat--
		}
		q[j] = qhat
	}

	q = q.norm()
	shrVU(u, u, shift)
	r = u.norm()
	return q, r, nil
}

// greaterThan reports whether (x1<<_W + x2) > (y1<<_W + y2).
func greaterThan(x1, x2, y1, y2 Word) bool {
	return x1 > y1 || x1 == y1 && x2 > y2
}

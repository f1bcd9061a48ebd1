// Copyright 2020 Aleksandr Demakin. All rights reserved.

package nat

import "errors"

// ErrDivisionByZero is returned by DivMod for a zero divisor.
var ErrDivisionByZero = errors.New("division by zero")

// DivMod returns q and r, such that x = q*y + r and 0 <= r < y.
func DivMod(x, y Nat) (q, r Nat, err error) {
	m, n := sig(x), sig(y)
	if n == 0 {
		return nil, nil, ErrDivisionByZero
	}
	if Cmp(x, y) < 0 {
		return Zero(), Copy(x), nil
	}
	if n == 1 {
		q, rw := divW(x[:m], y[0])
		return q, Nat{rw}, nil
	}
	q, r = divLarge(x[:m], y[:n])
	return q, r, nil
}

// divW returns x / y and x % y for a single non-zero word y.
func divW(x []Word, y Word) (q Nat, r Word) {
	q = make(Nat, len(x))
	var rem uint64
	for i := len(x) - 1; i >= 0; i-- {
		t := rem*Base + uint64(x[i])
		q[i] = Word(t / uint64(y))
		rem = t % uint64(y)
	}
	return Normalize(q), Word(rem)
}

// divLarge implements Knuth's algorithm D (TAOCP vol. 2, 4.3.1) in base Base.
// u and v are normalized, len(v) >= 2 and u >= v.
func divLarge(u, v []Word) (q, r Nat) {
	n := len(v)

	// scale both numbers, so that the top word of the divisor is >= Base/2.
	// this guarantees that the estimated quotient word is at most 2 too large.
	d := Word(Base / (uint64(v[n-1]) + 1))
	vn := make([]Word, n)
	mulAddVWW(vn, v, d, 0)
	un := make([]Word, len(u)+1)
	un[len(u)] = mulAddVWW(un[:len(u)], u, d, 0)

	q = make(Nat, len(u)-n+1)
	vTop, vNext := uint64(vn[n-1]), uint64(vn[n-2])
	for j := len(u) - n; j >= 0; j-- {
		num := uint64(un[j+n])*Base + uint64(un[j+n-1])
		qhat, rhat := num/vTop, num%vTop
		for qhat >= Base || qhat*vNext > rhat*Base+uint64(un[j+n-2]) {
			qhat--
			if rhat += vTop; rhat >= Base {
				break
			}
		}
		// qhat may still be one too large, in which case the partial remainder
		// goes negative and the divisor is added back.
		if subMulVVW(un[j:j+n+1], vn, Word(qhat)) != 0 {
			qhat--
			addVV(un[j:j+n+1], vn)
		}
		q[j] = Word(qhat)
	}

	r, _ = divW(un[:n], d)
	return Normalize(q), r
}

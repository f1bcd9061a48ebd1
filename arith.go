// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigint

import (
	"github.com/avdva/bigint/internal/nat"
)

var natOne = nat.FromUint64(1)

// Neg returns -x.
func (x Int) Neg() Int {
	return newInt(x.sign == Positive, nat.Copy(x.abs))
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return newInt(false, nat.Copy(x.abs))
}

// negated returns -x, sharing the magnitude with x.
// The result must not escape.
func (x Int) negated() Int {
	return Int{sign: -x.sign, abs: x.abs}
}

// Add returns x + y.
func (x Int) Add(y Int) Int {
	switch {
	case x.sign == Zero:
		return y.Copy()
	case y.sign == Zero:
		return x.Copy()
	case x.sign == y.sign:
		// x+y = |x|+|y|
		// or -x+(-y) = -(|x|+|y|)
		return newInt(x.sign == Negative, nat.Add(x.abs, y.abs))
	}
	// the signs differ, so the result has the sign of the larger magnitude.
	switch nat.Cmp(x.abs, y.abs) {
	case 1:
		return newInt(x.sign == Negative, nat.Sub(x.abs, y.abs))
	case -1:
		return newInt(y.sign == Negative, nat.Sub(y.abs, x.abs))
	}
	return Int{}
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return x.Add(y.negated()) // x-y = x+(-y)
}

// Mul returns x * y.
func (x Int) Mul(y Int) Int {
	if x.sign == Zero || y.sign == Zero {
		return Int{}
	}
	return newInt(x.sign != y.sign, nat.Mul(x.abs, y.abs))
}

// Div returns the quotient x/y rounded toward negative infinity,
// so that New(-7).Div(New(2)) is -4.
// Returns ErrDivisionByZero if y == 0.
func (x Int) Div(y Int) (Int, error) {
	q, _, err := x.DivMod(y)
	return q, err
}

// Mod returns the modulus x - y*floor(x/y). The result is 0 or has the sign of y.
// Returns ErrDivisionByZero if y == 0.
func (x Int) Mod(y Int) (Int, error) {
	_, m, err := x.DivMod(y)
	return m, err
}

// DivMod calculates such quo and mod, that x = y*quo + mod, where quo is
// rounded toward negative infinity, and |mod| < |y|.
// mod is either 0 or has the sign of y.
// Returns ErrDivisionByZero if y == 0.
func (x Int) DivMod(y Int) (quo, mod Int, err error) {
	if y.sign == Zero {
		return Int{}, Int{}, ErrDivisionByZero
	}
	q, r, err := nat.DivMod(x.abs, y.abs)
	if err != nil {
		return Int{}, Int{}, err
	}
	neg := x.sign != y.sign
	if neg && !nat.IsZero(r) {
		// |x| = |y|*q + r, so x = y*(-(q+1)) + (|y|-r)*sign(y)
		q = nat.Add(q, natOne)
		r = nat.Sub(y.abs, r)
	}
	return newInt(neg, q), newInt(y.sign == Negative, r), nil
}

// Pow returns x^n. Pow(0) is 1 for any x, including 0.
func (x Int) Pow(n uint) Int {
	result, base := nat.FromUint64(1), x.abs
	for e := n; e > 0; e >>= 1 {
		if e&1 != 0 {
			result = nat.Mul(result, base)
		}
		if e > 1 {
			base = nat.Mul(base, base)
		}
	}
	return newInt(x.sign == Negative && n&1 != 0, result)
}

// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigint

import (
	"fmt"
)

// Operand is anything, that can be converted into an Int.
// It is implemented by Int, Int64, Uint64, and Decimal, and used by
// the *Op methods to accept native integers and strings on a par with Ints.
type Operand interface {
	ToInt() (Int, error)
}

type (
	// Int64 is a native signed integer operand.
	Int64 int64
	// Uint64 is a native unsigned integer operand.
	Uint64 uint64
	// Decimal is a string operand, which is converted with Parse.
	Decimal string
)

// ToInt returns New(int64(v)).
func (v Int64) ToInt() (Int, error) {
	return New(int64(v)), nil
}

// ToInt returns NewUint64(uint64(v)).
func (v Uint64) ToInt() (Int, error) {
	return NewUint64(uint64(v)), nil
}

// ToInt returns Parse(string(s)).
func (s Decimal) ToInt() (Int, error) {
	return Parse(string(s))
}

// ToInt returns a copy of x.
func (x Int) ToInt() (Int, error) {
	return x.Copy(), nil
}

// From converts an operand into a new Int.
func From(op Operand) (Int, error) {
	if op == nil {
		return Int{}, fmt.Errorf("nil operand: %w", ErrInvalidFormat)
	}
	return op.ToInt()
}

// Must is like From but panics if the operand cannot be converted.
func Must(op Operand) Int {
	v, err := From(op)
	if err != nil {
		panic(fmt.Sprintf("bigint.Must(%v) failed: %v", op, err))
	}
	return v
}

// AddOp returns x + op.
func (x Int) AddOp(op Operand) (Int, error) {
	y, err := From(op)
	if err != nil {
		return Int{}, err
	}
	return x.Add(y), nil
}

// SubOp returns x - op.
func (x Int) SubOp(op Operand) (Int, error) {
	y, err := From(op)
	if err != nil {
		return Int{}, err
	}
	return x.Sub(y), nil
}

// MulOp returns x * op.
func (x Int) MulOp(op Operand) (Int, error) {
	y, err := From(op)
	if err != nil {
		return Int{}, err
	}
	return x.Mul(y), nil
}

// DivOp returns x / op rounded toward negative infinity, see Div.
func (x Int) DivOp(op Operand) (Int, error) {
	y, err := From(op)
	if err != nil {
		return Int{}, err
	}
	return x.Div(y)
}

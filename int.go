// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package bigint implements arbitrary-precision signed integers
// with decimal string conversion.
//
// Int values are immutable: every operation returns a new value, which never
// shares memory with the operands. Thus, Ints are safe for concurrent use
// by multiple goroutines.
package bigint

import (
	"fmt"

	mu "github.com/avdva/bigint/internal/mathutil"
	"github.com/avdva/bigint/internal/nat"
	"github.com/avdva/bigint/internal/strutil"
)

var (
	// MaxShift limits the number of zeros an exponent may add to a parsed number.
	// For example, "1e+1048577" fails to parse with the default value.
	// This variable is not thread-safe, so this should be changed on program start.
	MaxShift = 1 << 20
)

// Sign is the sign of an Int.
type Sign int8

const (
	// Negative is the sign of values < 0.
	Negative Sign = -1
	// Zero is the sign of 0 and only 0.
	Zero Sign = 0
	// Positive is the sign of values > 0.
	Positive Sign = 1
)

// String returns "-", "0", or "+".
func (s Sign) String() string {
	switch s {
	case Negative:
		return "-"
	case Positive:
		return "+"
	default:
		return "0"
	}
}

// Int is a signed integer of arbitrary size.
// The zero value represents 0 and is ready to use.
//
// The magnitude of a zero Int is never stored: abs is nil if and only if
// sign is Zero, so that all zeros are equal to Int{}. Functions of package nat
// read a nil magnitude as Nat{0}.
type Int struct {
	sign Sign
	abs  nat.Nat
}

// newInt takes ownership of abs.
func newInt(neg bool, abs nat.Nat) Int {
	if nat.IsZero(abs) {
		return Int{}
	}
	if neg {
		return Int{sign: Negative, abs: abs}
	}
	return Int{sign: Positive, abs: abs}
}

// New returns an Int for given int64 number.
func New(v int64) Int {
	if v == 0 {
		return Int{}
	}
	return Int{sign: Sign(mu.Int64Sign(v)), abs: nat.FromUint64(mu.AbsInt64(v))}
}

// NewUint64 returns an Int for given uint64 number.
func NewUint64(v uint64) Int {
	return newInt(false, nat.FromUint64(v))
}

// Parse parses a decimal string in plain or scientific notation, like
// "-123", "+1.5e3", or "12E-1". Digits after the decimal point, which
// remain after applying the exponent, are truncated: "1.23456e+3" is 1234,
// and "-0.5" is 0.
//
// Surrounding spaces, digit separators, and other bases are not accepted.
// All errors wrap ErrInvalidFormat.
func Parse(s string) (Int, error) {
	neg, digits, err := strutil.Parse(s, MaxShift)
	if err != nil {
		return Int{}, err
	}
	return newInt(neg, nat.FromDigits(digits)), nil
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) Int {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("bigint.MustParse(%q) failed: %v", s, err))
	}
	return v
}

// Copy returns an independent copy of x.
func (x Int) Copy() Int {
	if x.sign == Zero {
		return Int{}
	}
	return Int{sign: x.sign, abs: nat.Copy(x.abs)}
}

// Sign returns the sign of x.
func (x Int) Sign() Sign {
	return x.sign
}

// IsZero returns true, if x == 0.
func (x Int) IsZero() bool {
	return x.sign == Zero
}

// Int64 returns x as an int64 number.
// ok is false, if x does not fit int64. In that case v is 0.
func (x Int) Int64() (v int64, ok bool) {
	u, ok := nat.Uint64(x.abs)
	if !ok {
		return 0, false
	}
	if x.sign == Negative {
		if u > 1<<63 {
			return 0, false
		}
		return int64(-u), true
	}
	if u > 1<<63-1 {
		return 0, false
	}
	return int64(u), true
}

// Digits returns the number of decimal digits in x, not counting the sign.
func (x Int) Digits() int {
	return nat.Digits(x.abs)
}

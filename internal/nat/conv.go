// Copyright 2020 Aleksandr Demakin. All rights reserved.

package nat

import (
	"math"
	"strconv"

	mu "github.com/avdva/bigint/internal/mathutil"
)

// FromUint64 returns v as a Nat.
func FromUint64(v uint64) Nat {
	if v == 0 {
		return Zero()
	}
	z := make(Nat, 0, 3) // MaxUint64 has 20 digits
	for v > 0 {
		z = append(z, Word(v%Base))
		v /= Base
	}
	return z
}

// Uint64 returns x as a uint64 number.
// ok is false, if x overflows uint64.
func Uint64(x Nat) (v uint64, ok bool) {
	for i := sig(x) - 1; i >= 0; i-- {
		if v > (math.MaxUint64-uint64(x[i]))/Base {
			return 0, false
		}
		v = v*Base + uint64(x[i])
	}
	return v, true
}

// FromDigits converts a string of ASCII decimal digits into a Nat.
// Leading zeros are allowed, an empty string is zero.
// s must not contain anything but '0'..'9'.
func FromDigits(s string) Nat {
	if len(s) == 0 {
		return Zero()
	}
	z := make(Nat, (len(s)+WordDigits-1)/WordDigits)
	// fill words from the least significant end of the string.
	for i, end := 0, len(s); end > 0; i, end = i+1, end-WordDigits {
		start := end - WordDigits
		if start < 0 {
			start = 0
		}
		var w Word
		for j := start; j < end; j++ {
			w = w*10 + Word(s[j]-'0')
		}
		z[i] = w
	}
	return Normalize(z)
}

// AppendDecimal appends the decimal representation of x to dst
// without leading zeros. Zero is rendered as "0".
func AppendDecimal(dst []byte, x Nat) []byte {
	n := sig(x)
	if n == 0 {
		return append(dst, '0')
	}
	dst = strconv.AppendUint(dst, uint64(x[n-1]), 10)
	for i := n - 2; i >= 0; i-- {
		w := uint64(x[i])
		for pad := WordDigits - mu.DecimalDigits(w); pad > 0; pad-- {
			dst = append(dst, '0')
		}
		dst = strconv.AppendUint(dst, w, 10)
	}
	return dst
}

// Digits returns the number of decimal digits in x. Zero has one digit.
func Digits(x Nat) int {
	n := sig(x)
	if n == 0 {
		return 1
	}
	return (n-1)*WordDigits + mu.DecimalDigits(uint64(x[n-1]))
}

// String returns the decimal representation of x.
func (x Nat) String() string {
	return string(AppendDecimal(make([]byte, 0, Digits(x)), x))
}

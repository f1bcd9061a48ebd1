// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package nat implements unsigned arbitrary-precision integers, stored as
// little-endian groups of decimal digits.
package nat

const (
	// WordDigits is the number of decimal digits held by a single Word.
	WordDigits = 9
	// Base is the radix of a Nat, 10^WordDigits.
	// A product of two Words plus two carries always fits uint64.
	Base = 1000000000
)

// Word is a single digit group, 0 <= w < Base.
type Word uint32

// Nat is an unsigned integer x of the form
//
//	x = x[n-1]*Base^(n-1) + x[n-2]*Base^(n-2) + ... + x[1]*Base + x[0]
//
// with 0 <= x[i] < Base.
//
// A normalized Nat is never empty and has no leading zero words,
// except the zero value which is Nat{0}.
// Functions of this package accept denormalized values (including nil),
// never modify their arguments, and always return normalized results
// in newly allocated memory.
type Nat []Word

// Zero returns a new zero Nat.
func Zero() Nat {
	return Nat{0}
}

// Copy returns a normalized copy of x.
func Copy(x Nat) Nat {
	n := sig(x)
	if n == 0 {
		return Zero()
	}
	z := make(Nat, n)
	copy(z, x)
	return z
}

// Normalize strips leading zero words from z.
// An empty or all-zero slice becomes Nat{0}.
// The result shares memory with z.
func Normalize(z Nat) Nat {
	n := sig(z)
	if n == 0 {
		if len(z) == 0 {
			return Zero()
		}
		return z[:1]
	}
	return z[:n]
}

// IsZero returns true, if x represents 0.
func IsZero(x Nat) bool {
	return sig(x) == 0
}

// Cmp compares x and y.
// Returns -1 if x < y, 0 if x == y, 1 if x > y
func Cmp(x, y Nat) int {
	m, n := sig(x), sig(y)
	if m != n {
		if m > n {
			return 1
		}
		return -1
	}
	for i := m - 1; i >= 0; i-- {
		switch {
		case x[i] > y[i]:
			return 1
		case x[i] < y[i]:
			return -1
		}
	}
	return 0
}

// Add returns x + y.
func Add(x, y Nat) Nat {
	m, n := sig(x), sig(y)
	if m < n {
		x, y = y, x
		m, n = n, m
	}
	z := make(Nat, m+1)
	var c Word
	for i := 0; i < n; i++ {
		z[i], c = addWW(x[i], y[i], c)
	}
	for i := n; i < m; i++ {
		z[i], c = addWW(x[i], 0, c)
	}
	z[m] = c
	return Normalize(z)
}

// Sub returns x - y. Sub panics if x < y.
func Sub(x, y Nat) Nat {
	if Cmp(x, y) < 0 {
		panic("nat: subtraction underflow")
	}
	m, n := sig(x), sig(y)
	z := make(Nat, m)
	var b Word
	for i := 0; i < n; i++ {
		z[i], b = subWW(x[i], y[i], b)
	}
	for i := n; i < m; i++ {
		z[i], b = subWW(x[i], 0, b)
	}
	return Normalize(z)
}

// Mul returns x * y.
func Mul(x, y Nat) Nat {
	m, n := sig(x), sig(y)
	if m == 0 || n == 0 {
		return Zero()
	}
	if m < n {
		x, y = y, x
		m, n = n, m
	}
	z := make(Nat, m+n)
	for j := 0; j < n; j++ {
		if y[j] == 0 {
			continue
		}
		// z[j+m] has not been touched yet, so the final carry is stored as is.
		z[j+m] = addMulVVW(z[j:j+m], x[:m], y[j])
	}
	return Normalize(z)
}

// sig returns the number of significant words in x, 0 for zero.
func sig(x Nat) int {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return i
}

//-----------------------------------------------------------------------------
// Word and vector primitives. Carries and borrows are either 0 or 1.
//

func addWW(x, y, c Word) (s, carry Word) {
	s = x + y + c
	if s >= Base {
		return s - Base, 1
	}
	return s, 0
}

func subWW(x, y, b Word) (d, borrow Word) {
	if y += b; x >= y {
		return x - y, 0
	}
	return x + Base - y, 1
}

// addVV sets z = z + x, len(z) >= len(x), and returns the carry out of z.
func addVV(z, x []Word) (c Word) {
	for i := 0; i < len(x); i++ {
		z[i], c = addWW(z[i], x[i], c)
	}
	for i := len(x); i < len(z) && c != 0; i++ {
		z[i], c = addWW(z[i], 0, c)
	}
	return c
}

// mulAddVWW sets z = x*y + r, len(z) == len(x), and returns the carry word.
func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	acc := uint64(r)
	for i := 0; i < len(z) && i < len(x); i++ {
		acc += uint64(x[i]) * uint64(y)
		z[i] = Word(acc % Base)
		acc /= Base
	}
	return Word(acc)
}

// addMulVVW sets z = z + x*y, len(z) == len(x), and returns the carry word.
func addMulVVW(z, x []Word, y Word) (c Word) {
	var acc uint64
	for i := 0; i < len(z) && i < len(x); i++ {
		acc += uint64(x[i])*uint64(y) + uint64(z[i])
		z[i] = Word(acc % Base)
		acc /= Base
	}
	return Word(acc)
}

// subMulVVW sets z = z - x*y, len(z) == len(x)+1, and returns 1,
// if the result is negative. In that case z holds the result modulo Base^len(z).
func subMulVVW(z, x []Word, y Word) (borrow Word) {
	var carry uint64
	for i := 0; i < len(x); i++ {
		p := uint64(x[i])*uint64(y) + carry
		carry = p / Base
		z[i], borrow = subWW(z[i], Word(p%Base), borrow)
	}
	z[len(x)], borrow = subWW(z[len(x)], Word(carry), borrow)
	return borrow
}

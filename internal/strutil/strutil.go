// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package strutil parses decimal strings in plain or scientific notation
// into integer digit strings.
package strutil

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	delim = '.'
	// maxExp keeps exp - len(fraction) away from int64 overflow.
	maxExp = math.MaxInt64 / 2
)

// ErrSyntax is wrapped by every error returned from Parse.
var ErrSyntax = errors.New("invalid format")

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	if pe.pos <= 0 {
		return pe.err
	}
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

func (pe *posError) Unwrap() error {
	return ErrSyntax
}

// Parse checks that s is a number of the form
//
//	[+|-] digits [. [digits]] [(e|E) [+|-] digits]
//	[+|-] . digits [(e|E) [+|-] digits]
//
// and returns its sign and the decimal digits of its integer part.
// The fractional part left after applying the exponent is truncated.
// digits has no leading zeros and is empty if the value is zero, in which
// case neg is still reported as written.
// An exponent, which would append more than maxShift zeros, is an error.
// Exponents of any size are accepted otherwise: a huge negative exponent
// yields zero, and so does any exponent applied to a zero mantissa.
func Parse(s string, maxShift int) (neg bool, digits string, err error) {
	if len(s) == 0 {
		return false, "", newPosError("empty input", 0)
	}
	neg, digits, err = doParse(s, maxShift)
	if err != nil {
		return false, "", fmt.Errorf("parsing failed: %w", err)
	}
	return neg, digits, nil
}

func doParse(s string, maxShift int) (neg bool, digits string, err error) {
	i := 0
	switch s[0] {
	case '-':
		neg = true
		i++
	case '+':
		i++
	}

	intPart := s[i : i+countDigits(s[i:])]
	i += len(intPart)
	var fracPart string
	if i < len(s) && s[i] == delim {
		i++
		fracPart = s[i : i+countDigits(s[i:])]
		i += len(fracPart)
	}
	if len(intPart)+len(fracPart) == 0 {
		return false, "", unexpected(s, i)
	}

	var exp int64
	expPos := 0
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		expPos = i
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		n := countDigits(s[i:])
		if n == 0 {
			return false, "", unexpected(s, i)
		}
		i += n
		exp = parseExp(s[expPos:i])
	}
	if i < len(s) {
		return false, "", unexpected(s, i)
	}

	digits = strings.TrimLeft(intPart+fracPart, "0")
	if len(digits) == 0 {
		return neg, "", nil
	}
	switch shift := exp - int64(len(fracPart)); {
	case shift < 0:
		if -shift >= int64(len(digits)) { // the value is less than 1
			return neg, "", nil
		}
		digits = digits[:int64(len(digits))+shift]
	case shift > 0:
		if shift > int64(maxShift) {
			return false, "", newPosError("exponent out of range", expPos+1)
		}
		digits += strings.Repeat("0", int(shift))
	}
	return neg, digits, nil
}

// parseExp parses a signed decimal exponent, saturating at ±maxExp.
// A saturated exponent either drops all digits or fails the maxShift check.
func parseExp(s string) int64 {
	exp, err := strconv.ParseInt(s, 10, 64)
	if err != nil || exp > maxExp || exp < -maxExp {
		if s[0] == '-' {
			return -maxExp
		}
		return maxExp
	}
	return exp
}

func countDigits(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return i
		}
	}
	return len(s)
}

// unexpected returns an error for s[pos], positions are 1-based.
func unexpected(s string, pos int) error {
	if pos >= len(s) {
		return newPosError("unexpected end of input", pos+1)
	}
	r, _ := utf8.DecodeRuneInString(s[pos:])
	if r == delim {
		return newPosError("unexpected delimiter", pos+1)
	}
	return newPosError(fmt.Sprintf("unexpected symbol %q", r), pos+1)
}

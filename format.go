// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigint

import (
	"fmt"
	"io"
	"strings"

	"github.com/avdva/bigint/internal/nat"
)

// String returns the canonical decimal representation of x:
// no leading zeros, and a '-' for negative values.
func (x Int) String() string {
	return string(x.append(make([]byte, 0, x.Digits()+1)))
}

func (x Int) append(dst []byte) []byte {
	if x.sign == Negative {
		dst = append(dst, '-')
	}
	return nat.AppendDecimal(dst, x.abs)
}

// GoString returns debug string representation.
func (x Int) GoString() string {
	return fmt.Sprintf("bigint.MustParse(%q)", x.String())
}

// Format implements fmt.Formatter. It accepts %s, %v, and %d verbs.
// The '+' and ' ' flags force a sign for non-negative values, and a width
// pads the result with spaces, or with zeros after the sign if the '0' flag
// is set. The '-' flag pads on the right. %#v is the same as GoString.
func (x Int) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('#') {
			io.WriteString(s, x.GoString())
			return
		}
	case 's', 'd':
	default:
		fmt.Fprintf(s, "%%!%c(bigint.Int=%s)", verb, x.String())
		return
	}
	var sign string
	switch {
	case x.sign == Negative:
		sign = "-"
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}
	digits := nat.AppendDecimal(nil, x.abs)
	var left, zeros, right int
	if w, ok := s.Width(); ok {
		if pad := w - len(sign) - len(digits); pad > 0 {
			switch {
			case s.Flag('-'):
				right = pad
			case s.Flag('0'):
				zeros = pad
			default:
				left = pad
			}
		}
	}
	io.WriteString(s, strings.Repeat(" ", left))
	io.WriteString(s, sign)
	io.WriteString(s, strings.Repeat("0", zeros))
	s.Write(digits)
	io.WriteString(s, strings.Repeat(" ", right))
}

// MarshalText implements encoding.TextMarshaler.
func (x Int) MarshalText() ([]byte, error) {
	return x.append(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// The text must follow the syntax accepted by Parse. On error x is left unchanged.
func (x *Int) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

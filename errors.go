// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigint

import (
	"github.com/avdva/bigint/internal/nat"
	"github.com/avdva/bigint/internal/strutil"
)

var (
	// ErrInvalidFormat is wrapped by the errors returned for malformed decimal strings.
	// A concrete error also tells what went wrong and where, for instance
	// "parsing failed: unexpected symbol 'x' at pos 4".
	ErrInvalidFormat = strutil.ErrSyntax
	// ErrDivisionByZero is returned by division operations for a zero divisor.
	ErrDivisionByZero = nat.ErrDivisionByZero
)

// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigint

import (
	"math/big"
	"testing"

	gv "github.com/govalues/decimal"
	of "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
)

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		MustParse(bigA)
	}
}

func BenchmarkParseScientific(b *testing.B) {
	for i := 0; i < b.N; i++ {
		MustParse("-1.23456789e+100")
	}
}

func BenchmarkParseBig(b *testing.B) {
	for i := 0; i < b.N; i++ {
		new(big.Int).SetString(bigA, 10)
	}
}

func BenchmarkString(b *testing.B) {
	v := MustParse(bigA)
	for i := 0; i < b.N; i++ {
		_ = v.String()
	}
}

func BenchmarkAdd(b *testing.B) {
	v1, v2 := MustParse(bigA), MustParse(bigB)
	for i := 0; i < b.N; i++ {
		v1.Add(v2)
	}
}

func BenchmarkAddDecimal(b *testing.B) {
	v1, v2 := decimal.RequireFromString(bigA), decimal.RequireFromString(bigB)
	for i := 0; i < b.N; i++ {
		v1.Add(v2)
	}
}

func BenchmarkAddBig(b *testing.B) {
	v1, _ := new(big.Int).SetString(bigA, 10)
	v2, _ := new(big.Int).SetString(bigB, 10)
	for i := 0; i < b.N; i++ {
		new(big.Int).Add(v1, v2)
	}
}

func BenchmarkMul(b *testing.B) {
	v1, v2 := MustParse(bigA), MustParse(bigB)
	for i := 0; i < b.N; i++ {
		v1.Mul(v2)
	}
}

func BenchmarkMulDecimal(b *testing.B) {
	v1, v2 := decimal.RequireFromString(bigA), decimal.RequireFromString(bigB)
	for i := 0; i < b.N; i++ {
		v1.Mul(v2)
	}
}

func BenchmarkMulBig(b *testing.B) {
	v1, _ := new(big.Int).SetString(bigA, 10)
	v2, _ := new(big.Int).SetString(bigB, 10)
	for i := 0; i < b.N; i++ {
		new(big.Int).Mul(v1, v2)
	}
}

func BenchmarkDiv(b *testing.B) {
	v1, v2 := MustParse(bigA).Mul(MustParse(bigA)), MustParse(bigB)
	for i := 0; i < b.N; i++ {
		v1.Div(v2)
	}
}

func BenchmarkDivBig(b *testing.B) {
	v1, _ := new(big.Int).SetString(bigA, 10)
	v1.Mul(v1, v1)
	v2, _ := new(big.Int).SetString(bigB, 10)
	for i := 0; i < b.N; i++ {
		new(big.Int).Div(v1, v2)
	}
}

// The benchmarks below compare small values with fixed-size decimal types.

func BenchmarkMulSmall(b *testing.B) {
	v1, v2 := New(123456789), New(1234)
	for i := 0; i < b.N; i++ {
		v1.Mul(v2)
	}
}

func BenchmarkMulSmallFixed(b *testing.B) {
	f0 := of.NewF(123456789)
	f1 := of.NewF(1234)
	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkMulSmallGovalues(b *testing.B) {
	d0 := gv.MustParse("123456789")
	d1 := gv.MustParse("1234")
	for i := 0; i < b.N; i++ {
		d0.Mul(d1)
	}
}

func BenchmarkAddSmall(b *testing.B) {
	v1, v2 := New(123456789), New(-1234)
	for i := 0; i < b.N; i++ {
		v1.Add(v2)
	}
}

func BenchmarkAddSmallFixed(b *testing.B) {
	f0 := of.NewF(123456789)
	f1 := of.NewF(-1234)
	for i := 0; i < b.N; i++ {
		f0.Add(f1)
	}
}

func BenchmarkAddSmallGovalues(b *testing.B) {
	d0 := gv.MustParse("123456789")
	d1 := gv.MustParse("-1234")
	for i := 0; i < b.N; i++ {
		d0.Add(d1)
	}
}

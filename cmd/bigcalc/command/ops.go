// Copyright 2020 Aleksandr Demakin. All rights reserved.

package command

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/avdva/bigint"
)

type binaryOp struct {
	name  string
	short string
	do    func(x, y bigint.Int) (bigint.Int, error)
}

type unaryOp struct {
	name  string
	short string
	do    func(x bigint.Int) bigint.Int
}

var (
	binaryOps = []binaryOp{
		{"add", "Print A + B", func(x, y bigint.Int) (bigint.Int, error) { return x.Add(y), nil }},
		{"sub", "Print A - B", func(x, y bigint.Int) (bigint.Int, error) { return x.Sub(y), nil }},
		{"mul", "Print A * B", func(x, y bigint.Int) (bigint.Int, error) { return x.Mul(y), nil }},
		{"div", "Print A / B rounded toward negative infinity", bigint.Int.Div},
		{"mod", "Print A mod B, which has the sign of B", bigint.Int.Mod},
		{"pow", "Print A raised to the power of B", pow},
	}

	unaryOps = []unaryOp{
		{"neg", "Print -A", bigint.Int.Neg},
		{"abs", "Print |A|", bigint.Int.Abs},
		{"fmt", "Print A in canonical form", func(x bigint.Int) bigint.Int { return x }},
	}
)

func binaryCommand(op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   op.name + " A B",
		Short: op.short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			y, err := parseOperand(args[1])
			if err != nil {
				return err
			}
			glog.V(1).Infof("%s: operands of %d and %d digits", op.name, x.Digits(), y.Digits())
			result, err := op.do(x, y)
			if err != nil {
				return fmt.Errorf("%s failed: %w", op.name, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
			return err
		},
	}
}

func unaryCommand(op unaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   op.name + " A",
		Short: op.short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			glog.V(1).Infof("%s: operand of %d digits", op.name, x.Digits())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), op.do(x))
			return err
		},
	}
}

func parseOperand(s string) (bigint.Int, error) {
	v, err := bigint.Parse(s)
	if err != nil {
		return bigint.Int{}, fmt.Errorf("invalid operand %q: %w", s, err)
	}
	return v, nil
}

func pow(x, y bigint.Int) (bigint.Int, error) {
	n, ok := y.Int64()
	if !ok || n < 0 || n > 1<<20 {
		return bigint.Int{}, fmt.Errorf("exponent must be in range [0, %d], got %s", 1<<20, y)
	}
	return x.Pow(uint(n)), nil
}

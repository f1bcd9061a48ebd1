// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package command contains the commands of bigcalc.
//
// Every command parses its operands with bigint.Parse, so both plain and
// scientific notation is accepted. Negative operands must follow "--",
// otherwise they are taken for flags:
//
//	bigcalc add -- -1.5e30 42
package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/avdva/bigint"
)

const (
	envPrefix   = "BIGCALC"
	maxShiftKey = "max-shift"
)

// Root returns the root command with all subcommands attached.
// Flags may also be set with environment variables,
// for instance BIGCALC_MAX_SHIFT for --max-shift.
func Root() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:           "bigcalc",
		Short:         "Arbitrary-precision integer calculator",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configure(v)
		},
		Run: func(cmd *cobra.Command, _ []string) { cmd.Help() },
	}
	addFlags(root.PersistentFlags())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// the error is only possible for a nil flag.
	_ = v.BindPFlag(maxShiftKey, root.PersistentFlags().Lookup(maxShiftKey))

	for _, op := range binaryOps {
		root.AddCommand(binaryCommand(op))
	}
	for _, op := range unaryOps {
		root.AddCommand(unaryCommand(op))
	}
	return root
}

func addFlags(fs *pflag.FlagSet) {
	fs.Int(maxShiftKey, bigint.MaxShift, "the maximum number of zeros an exponent may add to an operand")
}

func configure(v *viper.Viper) error {
	maxShift := v.GetInt(maxShiftKey)
	if maxShift < 0 {
		return fmt.Errorf("invalid --%s value %d: must not be negative", maxShiftKey, maxShift)
	}
	bigint.MaxShift = maxShift
	return nil
}

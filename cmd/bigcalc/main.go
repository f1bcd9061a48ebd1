// Copyright 2020 Aleksandr Demakin. All rights reserved.

// bigcalc evaluates arbitrary-precision integer expressions.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/avdva/bigint/cmd/bigcalc/command"
)

func main() {
	root := command.Root()
	// glog registers its flags on the standard flag set.
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	// get rid of glog's "ERROR: logging before flag.Parse".
	args := os.Args
	os.Args = os.Args[:1]
	flag.Parse()
	os.Args = args

	err := root.Execute()
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
	}
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}

// Copyright 2025 Khaled Yassin. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	floatcmp "github.com/KhaledYassin/fast-float-compare"
)

var cmpCmd = &cobra.Command{
	Use:   "cmp A B",
	Short: "Compare two decimal numbers exactly",
	Long: `cmp parses both arguments as exact decimal numbers (no float64
rounding), prints their ordering and shows the normalized sign, mantissa
and exponent of each. Put -- before negative numbers so they are not read
as flags:

	floatcmp cmp -- -1.5 2`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := floatcmp.Parse(args[0])
		if err != nil {
			return err
		}
		b, err := floatcmp.Parse(args[1])
		if err != nil {
			return err
		}
		rel := "=="
		switch a.Cmp(b) {
		case -1:
			rel = "<"
		case 1:
			rel = ">"
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%v %s %v\n", a, rel, b)
		for _, f := range []floatcmp.Float{a, b} {
			mant, exp := f.MantExp()
			fmt.Fprintf(out, "%v: sign=%+d mantissa=%d exponent=%d float64=%v\n",
				f, f.Sign(), mant, exp, f.Float64())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cmpCmd)
}

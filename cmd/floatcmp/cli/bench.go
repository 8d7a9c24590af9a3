// Copyright 2025 Khaled Yassin. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/KhaledYassin/fast-float-compare/internal/benchmark"
)

var benchFlags struct {
	count int
	seed  int64
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure construction, conversion, comparison and sorting cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		suite := benchmark.New(benchmark.Options{
			Count: benchFlags.count,
			Seed:  benchFlags.seed,
		})
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"op", "impl", "n", "total", "per op"})
		for _, r := range suite.Run() {
			table.Append([]string{
				string(r.Op),
				r.Impl,
				strconv.Itoa(r.N),
				r.Elapsed.String(),
				r.PerOp().String(),
			})
		}
		table.Render()
		return nil
	},
}

func init() {
	benchCmd.Flags().IntVar(&benchFlags.count, "count", 1000, "number of values per data set.")
	benchCmd.Flags().Int64Var(&benchFlags.seed, "seed", 1, "seed for the value generator.")
	rootCmd.AddCommand(benchCmd)
}

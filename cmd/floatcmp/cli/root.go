// Copyright 2025 Khaled Yassin. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "floatcmp",
	Short: "Compare decimal floating point representations",
	Long: `floatcmp demonstrates the fast-float-compare value type: it compares
decimal numbers exactly and benchmarks the type against a general-purpose
decimal library, an order-preserving uint64 encoding and native float64.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

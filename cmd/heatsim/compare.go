// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/heatlab/sim"
)

func newCompareCmd() *cobra.Command {
	var (
		n, steps int
		eps      float64
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every stepping method from the same impulse and compare results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := sim.Compare(n, eps, steps)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "METHOD\tNNZ\tMAX|DIFF|\tTOTAL\tELAPSED")
			for _, r := range rows {
				if r.Skipped {
					fmt.Fprintf(tw, "%v\t-\tskipped\t-\t-\n", r.Method)
					continue
				}
				fmt.Fprintf(tw, "%v\t%s\t%.3e\t%.6f\t%s\n", r.Method, nnzCell(r.NNZ), r.MaxAbsDiff, r.Total, r.Elapsed)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&n, "n", 31, "grid side length")
	cmd.Flags().Float64Var(&eps, "eps", 0.2, "combined coefficient alpha*dt/dx^2")
	cmd.Flags().IntVar(&steps, "steps", 200, "number of time steps")

	return cmd
}

// nnzCell prints "-" for methods without an operator.
func nnzCell(nnz int) string {
	if nnz == 0 {
		return "-"
	}

	return strconv.Itoa(nnz)
}

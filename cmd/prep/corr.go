package main

import (
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/spf13/cobra"
	"go-ml.dev/pkg/prep/logger"
	"go-ml.dev/pkg/prep/stats"
)

func runCorrelations(cmd *cobra.Command, _ []string) error {
	df, err := loadDataset(cmd.Context())
	if err != nil {
		return err
	}
	if cleanFirst {
		// keep every encoded column, the report is what the drop list is chosen from
		c := cfg.CleanData(logger.GetDefault())
		c.Drop = []string{}
		if df, err = c.Clean(df); err != nil {
			return err
		}
	}
	cs, err := stats.Correlations(df, cfg.Split.Target)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-20s %8s %12s %12s\n", "column", "r", "mean", "stddev")
	for _, c := range cs {
		fmt.Fprintf(out, "%-20s %8.4f %12.4f %12.4f\n", c.Column, c.R, c.Mean, c.StdDev)
	}
	fmt.Fprintf(out, "weak (|r| < %.2f): %v\n", threshold, stats.Weak(cs, threshold))
	if showMatrix {
		return printMatrix(out, df)
	}
	return nil
}

func printMatrix(out io.Writer, df dataframe.DataFrame) error {
	m, names, err := stats.Matrix(df)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%-20s", "")
	for _, n := range names {
		fmt.Fprintf(out, " %10.10s", n)
	}
	fmt.Fprintln(out)
	for i, n := range names {
		fmt.Fprintf(out, "%-20s", n)
		for j := range names {
			fmt.Fprintf(out, " %10.4f", m.At(i, j))
		}
		fmt.Fprintln(out)
	}
	return nil
}

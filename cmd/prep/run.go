package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go-ml.dev/pkg/prep/loader"
	"go-ml.dev/pkg/prep/logger"
	"go-ml.dev/pkg/prep/model"
)

func runPrepare(cmd *cobra.Command, _ []string) error {
	df, err := loadDataset(cmd.Context())
	if err != nil {
		return err
	}
	log := logger.GetDefault()
	log.Info("dataset loaded", "rows", df.Nrow(), "columns", df.Ncol())
	p := model.NewPipeline(cfg.CleanData(log), cfg.SplitData(log))
	p.Logger = log
	report, err := p.Run(df)
	if err != nil {
		return err
	}
	if err = loader.WritePartition(outputDir, report.Partition); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "rows:     %d\n", report.Rows)
	fmt.Fprintf(out, "columns:  %v\n", report.Columns)
	fmt.Fprintf(out, "train:    %d\n", report.Partition.XTrain.Nrow())
	fmt.Fprintf(out, "test:     %d\n", report.Partition.XTest.Nrow())
	fmt.Fprintf(out, "written:  %s\n", outputDir)
	return nil
}

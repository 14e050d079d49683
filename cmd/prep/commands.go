package main

import (
	"context"
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/spf13/cobra"
	"go-ml.dev/pkg/prep/config"
	"go-ml.dev/pkg/prep/loader"
	"go-ml.dev/pkg/prep/logger"
)

var (
	rootCmd = &cobra.Command{
		Use:           "prep",
		Short:         "Prepares the insurance charges dataset for regression",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = config.Load(configPath); err != nil {
				return err
			}
			logger.Init(cfg.Logger())
			return nil
		},
	}
	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Cleans and splits the dataset, writing X_train, X_test, y_train and y_test",
		Args:  cobra.NoArgs,
		RunE:  runPrepare,
	}
	corrCmd = &cobra.Command{
		Use:   "corr",
		Short: "Prints the correlation of every numeric column with the target",
		Args:  cobra.NoArgs,
		RunE:  runCorrelations,
	}

	cfg        *config.Config
	configPath string
	inputPath  string
	sqlitePath string
	tableName  string
	outputDir  string
	threshold  float64
	cleanFirst bool
	showMatrix bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "dataset file, .csv or .csv.xz")
	rootCmd.PersistentFlags().StringVar(&sqlitePath, "sqlite", "", "SQLite database to read the dataset from")
	rootCmd.PersistentFlags().StringVar(&tableName, "table", "insurance", "table of the SQLite database")

	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&outputDir, "out", "o", ".", "directory to write the partition to")

	rootCmd.AddCommand(corrCmd)
	corrCmd.Flags().Float64Var(&threshold, "threshold", 0.1, "absolute correlation below which a column is reported as weak")
	corrCmd.Flags().BoolVar(&cleanFirst, "clean", true, "encode the dataset before correlating")
	corrCmd.Flags().BoolVar(&showMatrix, "matrix", false, "also print the correlation matrix of all numeric columns")
}

func loadDataset(ctx context.Context) (dataframe.DataFrame, error) {
	switch {
	case sqlitePath != "" && inputPath != "":
		return dataframe.DataFrame{}, fmt.Errorf("--input and --sqlite are mutually exclusive")
	case sqlitePath != "":
		return loader.LoadSQLite(ctx, sqlitePath, tableName)
	case inputPath != "":
		return loader.LoadFile(inputPath)
	default:
		return dataframe.DataFrame{}, fmt.Errorf("one of --input or --sqlite is required")
	}
}

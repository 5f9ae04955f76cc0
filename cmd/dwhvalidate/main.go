// Package main provides the CLI entry point for dwhvalidate.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/steelneuf/DWH---Test/pkg/recon"
	"github.com/steelneuf/DWH---Test/pkg/recon/config"
	"github.com/steelneuf/DWH---Test/pkg/recon/logging"
	"github.com/steelneuf/DWH---Test/pkg/recon/xlsxio"
)

var (
	inputDir      string
	outputDir     string
	validationDir string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dwhvalidate",
		Short: "Reconcile DWH workbook exports against each other",
		Long: `dwhvalidate compares tabular sources (.xlsx and .csv) sheet by sheet on a
configured key column and writes two report workbooks: the reconciled data
and the test results (duplicates, summary, dashboard, logs).`,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVar(&inputDir, "input", "", "Input directory (default: Data/Input)")
	rootCmd.Flags().StringVar(&outputDir, "output", "", "Output directory (default: Data/Output)")
	rootCmd.Flags().StringVar(&validationDir, "validation", "", "Validation directory holding the columns workbook (default: Data/Validation)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	if inputDir != "" {
		cfg.InputDir = inputDir
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if validationDir != "" {
		cfg.ValidationDir = validationDir
	}

	logger, capture, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	runner := recon.NewRunner(recon.Options{
		InputDir:        cfg.InputDir,
		InputColumnsDir: cfg.InputColumnsDir,
		OutputDir:       cfg.OutputDir,
		ValidationDir:   cfg.ValidationDir,
	}, xlsxio.Loader{}, logger, capture)

	if err := runner.Run(); err != nil {
		logger.Error("validation run failed", zap.Error(err))
		return err
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/doc-intelligence/internal/config"
	"github.com/jonathan/doc-intelligence/internal/observability"
	"github.com/jonathan/doc-intelligence/internal/visualdiff"
)

var (
	visualOldDir     string
	visualNewDir     string
	visualOutDir     string
	visualConfigPath string
	visualWorkers    int
	visualJSON       bool
	visualVerbose    bool
)

var visualdiffCmd = &cobra.Command{
	Use:   "visualdiff",
	Short: "Detect visual changes between two sets of page images",
	Long:  "Compares page images pairwise, draws boxes around changed regions, and reports per-page change metrics. Page decoding from PDF is upstream's job; inputs are image directories.",
	RunE:  runVisualdiff,
}

func init() {
	visualdiffCmd.Flags().StringVar(&visualOldDir, "old-dir", "", "Directory of original page images")
	visualdiffCmd.Flags().StringVar(&visualNewDir, "new-dir", "", "Directory of new page images")
	visualdiffCmd.Flags().StringVar(&visualOutDir, "out", "", "Directory to write highlighted page PNGs")
	visualdiffCmd.Flags().StringVar(&visualConfigPath, "config", "", "Path to a JSON config file")
	visualdiffCmd.Flags().IntVar(&visualWorkers, "workers", 0, "Page-diff worker pool size (default: CPU count)")
	visualdiffCmd.Flags().BoolVar(&visualJSON, "json", false, "Emit the report as JSON")
	visualdiffCmd.Flags().BoolVar(&visualVerbose, "verbose", false, "Print a formatted report")
	rootCmd.AddCommand(visualdiffCmd)
}

func runVisualdiff(cmd *cobra.Command, _ []string) error {
	cfg, err := mergeConfig(visualConfigPath, config.Config{
		OldPages:  visualOldDir,
		NewPages:  visualNewDir,
		OutputDir: visualOutDir,
		Workers:   visualWorkers,
	})
	if err != nil {
		return err
	}
	if cfg.OldPages == "" || cfg.NewPages == "" {
		return fmt.Errorf("both --old-dir and --new-dir are required")
	}

	oldPages, err := loadPages(cfg.OldPages)
	if err != nil {
		return err
	}
	newPages, err := loadPages(cfg.NewPages)
	if err != nil {
		return err
	}

	opts := visualdiff.Options{
		Workers:        cfg.Workers,
		PixelThreshold: uint8(cfg.PixelThreshold),
		MinRegionArea:  cfg.MinRegionArea,
		SignificantPct: cfg.SignificantPct,
	}
	report, err := visualdiff.Detect(cmd.Context(), oldPages, newPages, opts)
	if err != nil {
		return err
	}

	if cfg.OutputDir != "" {
		if err := visualdiff.WriteHighlightedPages(report, cfg.OutputDir); err != nil {
			return err
		}
		fmt.Printf("Highlighted pages written to %s\n", cfg.OutputDir)
	}

	if visualJSON {
		return printJSON(report)
	}
	if visualVerbose {
		observability.NewPrinter(os.Stdout).PrintVisualChanges(report)
		return nil
	}
	fmt.Printf("%d page(s) compared, %d changed region(s), average change %.2f%%\n",
		len(report.PageResults), report.TotalChanges, report.AverageChangePercentage)
	if report.PageCountMismatch != "" {
		fmt.Printf("Warning: %s\n", report.PageCountMismatch)
	}
	return nil
}

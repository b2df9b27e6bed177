package main

import (
	"fmt"
	"image"

	"github.com/spf13/cobra"

	"github.com/jonathan/doc-intelligence/internal/config"
	"github.com/jonathan/doc-intelligence/internal/pipeline"
	"github.com/jonathan/doc-intelligence/internal/rules"
	"github.com/jonathan/doc-intelligence/internal/visualdiff"
)

var (
	analyzeOldText    string
	analyzeNewText    string
	analyzeOldDir     string
	analyzeNewDir     string
	analyzeOutDir     string
	analyzeCategory   string
	analyzeFieldsPath string
	analyzeCatalog    string
	analyzeConfigPath string
	analyzeWorkers    int
	analyzeJSON       bool
	analyzeVerbose    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run every applicable engine against a document pair and merge the results",
	Long:  "Runs text diff, visual diff, and compliance checking concurrently, depending on which inputs are supplied, and merges the outputs into one analysis report.",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeOldText, "old", "", "Path to the original text file")
	analyzeCmd.Flags().StringVar(&analyzeNewText, "new", "", "Path to the new text file")
	analyzeCmd.Flags().StringVar(&analyzeOldDir, "old-dir", "", "Directory of original page images")
	analyzeCmd.Flags().StringVar(&analyzeNewDir, "new-dir", "", "Directory of new page images")
	analyzeCmd.Flags().StringVar(&analyzeOutDir, "out", "", "Directory to write highlighted page PNGs")
	analyzeCmd.Flags().StringVar(&analyzeCategory, "category", "", "Document category for compliance checking")
	analyzeCmd.Flags().StringVar(&analyzeFieldsPath, "fields", "", "Path to extracted fields JSON")
	analyzeCmd.Flags().StringVar(&analyzeCatalog, "catalog", "", "Path to a rule catalog JSON overlay")
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to a JSON config file")
	analyzeCmd.Flags().IntVar(&analyzeWorkers, "workers", 0, "Page-diff worker pool size (default: CPU count)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Emit the merged report as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose", false, "Print formatted reports")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := mergeConfig(analyzeConfigPath, config.Config{
		OldText:   analyzeOldText,
		NewText:   analyzeNewText,
		OldPages:  analyzeOldDir,
		NewPages:  analyzeNewDir,
		OutputDir: analyzeOutDir,
		Category:  analyzeCategory,
		Fields:    analyzeFieldsPath,
		Catalog:   analyzeCatalog,
		Workers:   analyzeWorkers,
	})
	if err != nil {
		return err
	}

	opts := pipeline.RunOptions{
		Category: cfg.Category,
		Verbose:  analyzeVerbose,
		VisualOpts: visualdiff.Options{
			Workers:        cfg.Workers,
			PixelThreshold: uint8(cfg.PixelThreshold),
			MinRegionArea:  cfg.MinRegionArea,
			SignificantPct: cfg.SignificantPct,
		},
	}

	if cfg.OldText != "" || cfg.NewText != "" {
		if cfg.OldText == "" || cfg.NewText == "" {
			return fmt.Errorf("--old and --new must be supplied together")
		}
		if opts.OldText, err = loadText(cfg.OldText); err != nil {
			return err
		}
		if opts.NewText, err = loadText(cfg.NewText); err != nil {
			return err
		}
		opts.HasText = true
	}

	if cfg.OldPages != "" || cfg.NewPages != "" {
		if cfg.OldPages == "" || cfg.NewPages == "" {
			return fmt.Errorf("--old-dir and --new-dir must be supplied together")
		}
		var oldPages, newPages []image.Image
		if oldPages, err = loadPages(cfg.OldPages); err != nil {
			return err
		}
		if newPages, err = loadPages(cfg.NewPages); err != nil {
			return err
		}
		opts.OldPages, opts.NewPages = oldPages, newPages
	}

	if cfg.Category != "" {
		if cfg.Fields == "" {
			return fmt.Errorf("--fields is required with --category")
		}
		if opts.Fields, err = loadFields(cfg.Fields); err != nil {
			return err
		}
		if cfg.Catalog != "" {
			if opts.Catalog, err = rules.LoadFile(cfg.Catalog); err != nil {
				return err
			}
		}
	}

	report, err := pipeline.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if cfg.OutputDir != "" && report.VisualChanges != nil {
		if err := visualdiff.WriteHighlightedPages(report.VisualChanges, cfg.OutputDir); err != nil {
			return err
		}
	}

	if analyzeJSON {
		return printJSON(report)
	}
	if !analyzeVerbose {
		fmt.Printf("Analysis %s complete\n", report.RunID)
		for _, notice := range report.Notices {
			fmt.Printf("Notice: %s\n", notice)
		}
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/doc-intelligence/internal/config"
	"github.com/jonathan/doc-intelligence/internal/observability"
	"github.com/jonathan/doc-intelligence/internal/textdiff"
)

var (
	textOldPath    string
	textNewPath    string
	textConfigPath string
	textJSON       bool
	textVerbose    bool
)

var textdiffCmd = &cobra.Command{
	Use:   "textdiff",
	Short: "Detect changes between two text versions of a document",
	RunE:  runTextdiff,
}

func init() {
	textdiffCmd.Flags().StringVar(&textOldPath, "old", "", "Path to the original text file")
	textdiffCmd.Flags().StringVar(&textNewPath, "new", "", "Path to the new text file")
	textdiffCmd.Flags().StringVar(&textConfigPath, "config", "", "Path to a JSON config file")
	textdiffCmd.Flags().BoolVar(&textJSON, "json", false, "Emit the change set as JSON")
	textdiffCmd.Flags().BoolVar(&textVerbose, "verbose", false, "Print a formatted change summary")
	rootCmd.AddCommand(textdiffCmd)
}

func runTextdiff(_ *cobra.Command, _ []string) error {
	cfg, err := mergeConfig(textConfigPath, config.Config{
		OldText: textOldPath,
		NewText: textNewPath,
	})
	if err != nil {
		return err
	}
	if cfg.OldText == "" || cfg.NewText == "" {
		return fmt.Errorf("both --old and --new are required")
	}

	oldText, err := loadText(cfg.OldText)
	if err != nil {
		return err
	}
	newText, err := loadText(cfg.NewText)
	if err != nil {
		return err
	}

	changes, err := textdiff.NewDetector().Detect(oldText, newText)
	if err != nil {
		return err
	}

	if textJSON {
		return printJSON(changes)
	}
	if textVerbose {
		observability.NewPrinter(os.Stdout).PrintTextChanges(changes)
		return nil
	}
	fmt.Println(changes.ChangesSummary)
	if changes.TextDiff != "" {
		fmt.Println()
		fmt.Println(changes.TextDiff)
	}
	return nil
}

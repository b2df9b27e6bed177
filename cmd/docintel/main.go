// Package main provides the entry point for the document intelligence CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "docintel",
	Short: "Document change detection and compliance checking",
	Long:  "docintel compares two versions of a structured business document, highlights what changed, and validates extracted fields against a category-specific rulebook.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Package main provides the scholar CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// patternsFile optionally overrides the built-in pattern tables.
var patternsFile string

func main() {
	godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scholar",
	Short: "Structure extraction for academic documents",
	Long: `scholar reconstructs the structure of academic documents: reading
order, sections, abstract, citations, references, and bounded chunks.

It reads PDF, DOCX, Markdown, HTML, and plain-text files and prints
JSON for easy integration with AI agents and other tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&patternsFile, "patterns", "", "YAML file overriding the built-in section and citation patterns")
	rootCmd.Version = Version
}

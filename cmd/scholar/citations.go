package main

import "github.com/spf13/cobra"

var citationsSummary bool

func init() {
	citationsCmd.Flags().BoolVar(&citationsSummary, "summary", false, "Return a condensed citation summary")
	rootCmd.AddCommand(citationsCmd)
}

var citationsCmd = &cobra.Command{
	Use:   "citations <file>",
	Short: "Extract in-text citations and parse the reference list",
	Long: `Extract in-text citation mentions (author-year and numbered forms)
and parse the reference list into structured entries.

Example:
  scholar citations paper.pdf
  scholar citations --summary paper.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runCitations,
}

func runCitations(cmd *cobra.Command, args []string) error {
	a, err := newAnalyzer()
	if err != nil {
		return err
	}

	if citationsSummary {
		sum, err := a.CitationSummary(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return outputJSON(sum)
	}

	res, err := a.ExtractCitations(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return outputJSON(res)
}

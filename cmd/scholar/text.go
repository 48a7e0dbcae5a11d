package main

import "github.com/spf13/cobra"

var textPage int

func init() {
	textCmd.Flags().IntVar(&textPage, "page", -1, "Extract a single zero-based page instead of the whole document")
	rootCmd.AddCommand(textCmd)
}

var textCmd = &cobra.Command{
	Use:   "text <file>",
	Short: "Extract processed text",
	Long: `Extract text with reading order reconstructed, math isolated into
placeholders, and whitespace normalized.`,
	Args: cobra.ExactArgs(1),
	RunE: runText,
}

func runText(cmd *cobra.Command, args []string) error {
	a, err := newAnalyzer()
	if err != nil {
		return err
	}

	if textPage >= 0 {
		page, err := a.ExtractPage(cmd.Context(), args[0], textPage)
		if err != nil {
			return err
		}
		return outputJSON(page)
	}

	text, err := a.ExtractText(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return outputJSON(text)
}
